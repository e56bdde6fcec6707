package component

import (
	"interstellar-defense/internal/defs"
	"interstellar-defense/internal/types"
	"interstellar-defense/pkg/vec3"
)

// PowerUp drifts toward the planet and is consumed on arrival.
type PowerUp struct {
	ID       types.EntityID   `json:"id"`
	Type     defs.PowerUpType `json:"type"`
	Position vec3.Vec3        `json:"position"`
	Duration float64          `json:"duration"`
	Value    float64          `json:"value"`
}
