// internal/defs/enemies.go
package defs

import "time"

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID                   EnemyType `json:"id"`
	Health               float64   `json:"health"`
	Speed                float64   `json:"speed"`
	ImpactDamage         float64   `json:"impact_damage"`
	ShieldedImpactDamage float64   `json:"shielded_impact_damage"` // делится на shieldStrength
	RangedDamage         float64   `json:"ranged_damage,omitempty"`
	RangedCooldownMs     int       `json:"ranged_cooldown_ms,omitempty"`
	ResourceReward       float64   `json:"resource_reward"`
	ScoreReward          int       `json:"score_reward"`
	ExplosionScale       float64   `json:"explosion_scale"`
	DropChance           float64   `json:"drop_chance"`
	BaseResistance       float64   `json:"base_resistance"`
	ThreatWeight         float64   `json:"threat_weight"`
}

// IsRanged reports whether the type attacks the planet from a distance.
func (d EnemyDefinition) IsRanged() bool {
	return d.RangedCooldownMs > 0
}

// RangedCooldown returns the ranged attack cooldown at game speed 1.
func (d EnemyDefinition) RangedCooldown() time.Duration {
	return time.Duration(d.RangedCooldownMs) * time.Millisecond
}

// EnemyLibrary is a map to hold all enemy definitions, keyed by their type.
var EnemyLibrary = DefaultEnemies()

// DefaultEnemies returns the built-in enemy table.
// Bombers and dreadnoughts share the generic threat weight of 10.
func DefaultEnemies() map[EnemyType]EnemyDefinition {
	return map[EnemyType]EnemyDefinition{
		EnemyScout: {
			ID: EnemyScout, Health: 30, Speed: 0.08,
			ImpactDamage: 5, ShieldedImpactDamage: 5,
			ResourceReward: 10, ScoreReward: 20, ExplosionScale: 0.6, DropChance: 0.05,
			ThreatWeight: 10,
		},
		EnemyFighter: {
			ID: EnemyFighter, Health: 60, Speed: 0.05,
			ImpactDamage: 10, ShieldedImpactDamage: 10,
			ResourceReward: 20, ScoreReward: 50, ExplosionScale: 0.8, DropChance: 0.1,
			ThreatWeight: 20,
		},
		EnemyBomber: {
			ID: EnemyBomber, Health: 80, Speed: 0.04,
			ImpactDamage: 18, ShieldedImpactDamage: 12,
			RangedDamage: 5, RangedCooldownMs: 3000,
			ResourceReward: 25, ScoreReward: 80, ExplosionScale: 1.0, DropChance: 0.2,
			BaseResistance: 0.2, ThreatWeight: 10,
		},
		EnemyCruiser: {
			ID: EnemyCruiser, Health: 100, Speed: 0.03,
			ImpactDamage: 15, ShieldedImpactDamage: 15,
			ResourceReward: 30, ScoreReward: 100, ExplosionScale: 1.2, DropChance: 0.3,
			BaseResistance: 0.3, ThreatWeight: 30,
		},
		EnemyDreadnought: {
			ID: EnemyDreadnought, Health: 200, Speed: 0.02,
			ImpactDamage: 25, ShieldedImpactDamage: 20,
			RangedDamage: 10, RangedCooldownMs: 5000,
			ResourceReward: 50, ScoreReward: 200, ExplosionScale: 1.5, DropChance: 0.5,
			BaseResistance: 0.5, ThreatWeight: 10,
		},
	}
}

// Enemy returns the definition for t, falling back to the scout.
func Enemy(t EnemyType) EnemyDefinition {
	if def, ok := EnemyLibrary[t]; ok {
		return def
	}
	return EnemyLibrary[EnemyScout]
}
