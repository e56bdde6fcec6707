// internal/defs/types.go
package defs

import "fmt"

// EnemyType is the hull class of an enemy ship.
type EnemyType string

const (
	EnemyScout       EnemyType = "scout"
	EnemyFighter     EnemyType = "fighter"
	EnemyBomber      EnemyType = "bomber"
	EnemyCruiser     EnemyType = "cruiser"
	EnemyDreadnought EnemyType = "dreadnought"
)

// Behavior describes how an enemy steers toward the planet. Fixed at spawn.
type Behavior string

const (
	BehaviorDirect   Behavior = "direct"
	BehaviorEvasive  Behavior = "evasive"
	BehaviorFlanking Behavior = "flanking"
	BehaviorSwarming Behavior = "swarming"
	BehaviorKamikaze Behavior = "kamikaze"
)

// Difficulty scales enemy speed, wave size and type thresholds.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyNormal Difficulty = "normal"
	DifficultyHard   Difficulty = "hard"
)

// Modifier returns the scalar applied to motion and spawn math.
func (d Difficulty) Modifier() float64 {
	switch d {
	case DifficultyEasy:
		return 0.7
	case DifficultyHard:
		return 1.3
	default:
		return 1.0
	}
}

// ParseDifficulty validates a difficulty name.
func ParseDifficulty(s string) (Difficulty, error) {
	switch d := Difficulty(s); d {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return d, nil
	}
	return "", fmt.Errorf("unknown difficulty %q", s)
}

// PowerUpType — тип бонуса, летящего к планете.
type PowerUpType string

const (
	PowerUpHealth    PowerUpType = "health"
	PowerUpResources PowerUpType = "resources"
	PowerUpShield    PowerUpType = "shield"
	PowerUpDamage    PowerUpType = "damage"
)

// TechKind names one branch of the tech tree.
type TechKind string

const (
	TechTurretDamage      TechKind = "turretDamage"
	TechShieldStrength    TechKind = "shieldStrength"
	TechResourceGathering TechKind = "resourceGathering"
	TechLaserPower        TechKind = "laserPower"
)

// ParseTechKind validates a tech tree branch name.
func ParseTechKind(s string) (TechKind, error) {
	switch k := TechKind(s); k {
	case TechTurretDamage, TechShieldStrength, TechResourceGathering, TechLaserPower:
		return k, nil
	}
	return "", fmt.Errorf("unknown tech %q", s)
}

// BeamProperty names an independently upgradable property of the beam weapon.
type BeamProperty string

const (
	BeamDamage           BeamProperty = "damage"
	BeamCooldown         BeamProperty = "cooldown"
	BeamEnergyEfficiency BeamProperty = "energyEfficiency"
	BeamRange            BeamProperty = "range"
	BeamWidth            BeamProperty = "beamWidth"
)

// BeamProperties lists every upgradable beam property in display order.
var BeamProperties = []BeamProperty{BeamDamage, BeamCooldown, BeamEnergyEfficiency, BeamRange, BeamWidth}

// ParseBeamProperty validates a beam property name.
func ParseBeamProperty(s string) (BeamProperty, error) {
	for _, p := range BeamProperties {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown beam property %q", s)
}
