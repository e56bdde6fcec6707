package component

import (
	"interstellar-defense/internal/types"
	"interstellar-defense/pkg/vec3"
)

// Turret — оборонительная башня. Живёт до сброса игры.
type Turret struct {
	ID       types.EntityID `json:"id"`
	Position vec3.Vec3      `json:"position"`
	Range    float64        `json:"range"`
	Damage   float64        `json:"damage"`
	FireRate float64        `json:"fireRate"` // выстрелов в секунду
}
