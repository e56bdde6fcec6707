package component

import (
	"time"

	"interstellar-defense/internal/types"
	"interstellar-defense/pkg/vec3"
)

// ExplosionKind tells the presentation which event produced the record.
type ExplosionKind string

const (
	ExplosionImpact       ExplosionKind = "impact"
	ExplosionRangedAttack ExplosionKind = "attack"
	ExplosionKill         ExplosionKind = "kill"
	ExplosionPowerUp      ExplosionKind = "powerup"
	ExplosionRepair       ExplosionKind = "repair"
	ExplosionUpgrade      ExplosionKind = "upgrade"
	ExplosionMining       ExplosionKind = "mining"
	ExplosionTurret       ExplosionKind = "turret"
	ExplosionShield       ExplosionKind = "shield"
	ExplosionBeam         ExplosionKind = "beam"
	ExplosionShieldImpact ExplosionKind = "shieldImpact"
	ExplosionScanner      ExplosionKind = "scanner"
	ExplosionScanComplete ExplosionKind = "scanComplete"
	ExplosionGameOver     ExplosionKind = "gameOver"
)

// Explosion — чисто визуальная запись о событии. На геймплей не влияет.
type Explosion struct {
	ID        types.EntityID `json:"id"`
	Kind      ExplosionKind  `json:"kind"`
	Position  vec3.Vec3      `json:"position"`
	Scale     float64        `json:"scale"`
	Duration  time.Duration  `json:"duration"`
	Color     string         `json:"color"`
	CreatedAt time.Time      `json:"createdAt"`
}

// Expired reports whether the record has outlived its duration at now.
func (e *Explosion) Expired(now time.Time) bool {
	return now.Sub(e.CreatedAt) >= e.Duration
}
