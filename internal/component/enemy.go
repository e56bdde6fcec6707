package component

import (
	"time"

	"interstellar-defense/internal/defs"
	"interstellar-defense/internal/types"
	"interstellar-defense/pkg/vec3"
)

// Enemy представляет вражеский корабль.
type Enemy struct {
	ID              types.EntityID `json:"id"`
	Type            defs.EnemyType `json:"type"`
	Health          float64        `json:"health"`
	MaxHealth       float64        `json:"maxHealth"`
	Position        vec3.Vec3      `json:"position"`
	Velocity        vec3.Vec3      `json:"velocity"` // последнее направление движения
	Behavior        defs.Behavior  `json:"behavior"`
	LaserResistance float64        `json:"laserResistance"`
	Scanned         bool           `json:"scanned"`
	ScanProgress    float64        `json:"scanProgress"`
	LastAttackTime  time.Time      `json:"lastAttackTime"`
	AttackCooldown  time.Duration  `json:"attackCooldown"`
}

// Alive reports whether the enemy still has hull left.
func (e *Enemy) Alive() bool {
	return e.Health > 0
}
