// internal/app/beam_upgrades.go
package app

import (
	"math"
	"time"

	"interstellar-defense/internal/component"
	"interstellar-defense/internal/config"
	"interstellar-defense/internal/defs"
)

// beamUpgrade describes one upgradable beam property: its level cap and what
// a single upgrade does to the weapon.
type beamUpgrade struct {
	maxLevel int
	apply    func(w *component.LaserWeapon)
}

var beamUpgrades = map[defs.BeamProperty]beamUpgrade{
	defs.BeamDamage: {config.MaxBeamPropertyLvl, func(w *component.LaserWeapon) {
		w.Damage *= 1.2
	}},
	defs.BeamCooldown: {config.MaxBeamPropertyLvl, func(w *component.LaserWeapon) {
		w.Cooldown = maxDuration(200*time.Millisecond, scaleDuration(w.Cooldown, 0.9))
	}},
	defs.BeamEnergyEfficiency: {config.MaxBeamPropertyLvl, func(w *component.LaserWeapon) {
		w.EnergyCost = math.Max(5, math.Floor(w.EnergyCost*0.9))
	}},
	defs.BeamRange: {config.MaxBeamPropertyLvl, func(w *component.LaserWeapon) {
		w.Range *= 1.15
	}},
	defs.BeamWidth: {config.MaxBeamPropertyLvl, func(w *component.LaserWeapon) {
		w.BeamWidth *= 1.25
	}},
}

// beamUpgradeCost is the price of raising a property from level.
func beamUpgradeCost(level int) float64 {
	return math.Floor(config.BeamPropertyBase * (1 + float64(level)*config.BeamPropertyStep))
}

// BeamUpgradeCost reports what the next upgrade of prop costs and whether it
// is still available.
func (g *Game) BeamUpgradeCost(prop defs.BeamProperty) (float64, bool) {
	up, ok := beamUpgrades[prop]
	if !ok {
		return 0, false
	}
	level := g.World.LaserWeapon.Upgrades[prop]
	return beamUpgradeCost(level), level < up.maxLevel
}

func scaleDuration(d time.Duration, f float64) time.Duration {
	return time.Duration(float64(d) * f)
}

func maxDuration(a, b time.Duration) time.Duration {
	if a > b {
		return a
	}
	return b
}
