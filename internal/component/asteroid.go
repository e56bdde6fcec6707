package component

import (
	"interstellar-defense/internal/types"
	"interstellar-defense/pkg/vec3"
)

// Asteroid is a minable rock on the ring around the planet.
type Asteroid struct {
	ID        types.EntityID `json:"id"`
	Position  vec3.Vec3      `json:"position"`
	Resources float64        `json:"resources"` // текущий запас, не меньше нуля
	Size      float64        `json:"size"`
}
