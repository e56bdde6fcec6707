// internal/app/commands.go
package app

import (
	"fmt"
	"math"
	"time"

	"interstellar-defense/internal/component"
	"interstellar-defense/internal/config"
	"interstellar-defense/internal/defs"
	"interstellar-defense/internal/types"
	"interstellar-defense/pkg/vec3"
)

// Каждая команда либо выполняется целиком, либо возвращает ошибку и ничего
// не меняет. Платные команды отклоняются на паузе и после конца игры.

// StartGame resets the world and launches wave 1.
func (g *Game) StartGame() error {
	g.reset()
	g.WaveSystem.StartWave(1)
	return nil
}

// ResetGame returns to the pre-start state.
func (g *Game) ResetGame() error {
	g.reset()
	return nil
}

func (g *Game) TogglePause() error {
	g.World.Paused = !g.World.Paused
	return nil
}

// SetDifficulty is only accepted before the first wave or after game over.
func (g *Game) SetDifficulty(d defs.Difficulty) error {
	if _, err := defs.ParseDifficulty(string(d)); err != nil {
		return err
	}
	w := g.World
	if w.Wave != 0 && !w.GameOver {
		return fmt.Errorf("difficulty locked during wave %d: %w", w.Wave, ErrInvalidState)
	}
	w.Difficulty = d
	return nil
}

// SetGameSpeed clamps v to [MinGameSpeed, MaxGameSpeed].
func (g *Game) SetGameSpeed(v float64) error {
	if math.IsNaN(v) {
		return fmt.Errorf("game speed is NaN: %w", ErrInvalidState)
	}
	g.World.GameSpeed = math.Max(config.MinGameSpeed, math.Min(config.MaxGameSpeed, v))
	return nil
}

// FireAtEnemy spends FireCost on a direct hit.
func (g *Game) FireAtEnemy(id types.EntityID) error {
	return g.CombatSystem.FireDirect(id)
}

// FireAtOptimalTarget fires at the highest-ranked threat still alive.
// A stale ranking is recomputed on the spot.
func (g *Game) FireAtOptimalTarget() (types.EntityID, error) {
	w := g.World
	if !w.Active() {
		return 0, ErrInvalidState
	}
	if id, ok := g.optimalTarget(); ok {
		return id, g.CombatSystem.FireDirect(id)
	}
	g.Advisor.Recompute(w, g.Clock.Now())
	if id, ok := g.optimalTarget(); ok {
		return id, g.CombatSystem.FireDirect(id)
	}
	return 0, ErrNotFound
}

func (g *Game) optimalTarget() (types.EntityID, bool) {
	for _, id := range g.Advisor.Advisory().OptimalTargets {
		if _, ok := g.World.Enemies[id]; ok {
			return id, true
		}
	}
	return 0, false
}

// Repair heals the planet; blocked at full health.
func (g *Game) Repair() error {
	w := g.World
	if !w.Active() {
		return ErrInvalidState
	}
	if w.PlanetHealth >= config.MaxPlanetHealth {
		return ErrSaturated
	}
	if !w.Spend(config.RepairCost) {
		return ErrInsufficientResources
	}
	w.HealPlanet(config.RepairAmount)
	w.AddExplosion(component.ExplosionRepair, vec3.Zero, 1.2, 800*time.Millisecond, config.ColorHealth, g.Clock.Now())
	return nil
}

// UpgradeTech raises one tech branch by a level.
func (g *Game) UpgradeTech(kind defs.TechKind) error {
	w := g.World
	if !w.Active() {
		return ErrInvalidState
	}
	level := w.TechTree.Level(kind)
	if level == 0 {
		return fmt.Errorf("tech %q: %w", kind, ErrNotFound)
	}
	if level >= config.MaxTechLevel {
		return ErrSaturated
	}
	if !w.Spend(config.TechUpgradeCost) {
		return ErrInsufficientResources
	}
	w.TechTree.Raise(kind)
	w.Score += config.TechUpgradeScore
	w.AddExplosion(component.ExplosionUpgrade, vec3.Zero, 0.8, 600*time.Millisecond, config.ColorUpgrade, g.Clock.Now())
	return nil
}

// MineAsteroid extracts up to MiningYield·resourceGathering from an asteroid.
func (g *Game) MineAsteroid(id types.EntityID) error {
	w := g.World
	if !w.Active() {
		return ErrInvalidState
	}
	a, ok := w.Asteroids[id]
	if !ok || a.Resources <= 0 {
		return ErrNotFound
	}

	mined := math.Min(config.MiningYield*w.TechTree.ResourceGathering, a.Resources)
	a.Resources -= mined
	w.AddResources(mined)
	w.Score += int(math.Floor(mined / 2))
	w.AddExplosion(component.ExplosionMining, a.Position, 0.4, 400*time.Millisecond, config.ColorMining, g.Clock.Now())
	return nil
}

// MineRichestAsteroid mines whichever asteroid has the most left.
func (g *Game) MineRichestAsteroid() (types.EntityID, error) {
	a, ok := g.richestAsteroid()
	if !ok {
		return 0, ErrNotFound
	}
	return a.ID, g.MineAsteroid(a.ID)
}

// ActivateShield raises the shield, keeping the longer of the current and
// the new duration.
func (g *Game) ActivateShield() error {
	w := g.World
	if !w.Active() {
		return ErrInvalidState
	}
	if !w.Spend(config.ShieldCost) {
		return ErrInsufficientResources
	}
	w.ShieldActive = true
	w.ShieldDuration = math.Max(w.ShieldDuration, config.ShieldBaseDuration*w.TechTree.ShieldStrength)
	w.Score += config.ShieldScore
	w.AddExplosion(component.ExplosionShield, vec3.Zero, 1.8, 700*time.Millisecond, config.ColorShield, g.Clock.Now())
	return nil
}

func (g *Game) ToggleBeamAim() error {
	lw := &g.World.LaserWeapon
	lw.IsAiming = !lw.IsAiming
	return nil
}

// FireBeam fires the beam toward target and returns the ids it hit.
func (g *Game) FireBeam(target vec3.Vec3) ([]types.EntityID, error) {
	hits, err := g.CombatSystem.FireBeam(target)
	if err != nil {
		return nil, err
	}
	g.World.LaserWeapon.AimTarget = &target
	return hits, nil
}

// QuickUpgradeBeam is the flat beam upgrade: laser power, damage and
// cooldown in one purchase.
func (g *Game) QuickUpgradeBeam() error {
	w := g.World
	if !w.Active() {
		return ErrInvalidState
	}
	if w.TechTree.LaserPower >= config.MaxTechLevel {
		return ErrSaturated
	}
	if !w.Spend(config.QuickBeamCost) {
		return ErrInsufficientResources
	}

	lw := &w.LaserWeapon
	w.TechTree.LaserPower++
	lw.Damage *= 1.2
	lw.Cooldown = maxDuration(config.QuickBeamCooldownMin, scaleDuration(lw.Cooldown, 0.9))
	lw.Level++
	w.Score += int(config.QuickBeamCost)
	w.AddExplosion(component.ExplosionUpgrade, vec3.Zero, 1.0, 600*time.Millisecond, config.ColorBeamUpgrade, g.Clock.Now())
	return nil
}

// UpgradeBeamProperty raises a single beam property. It is accepted while
// paused, since the upgrade panel pauses the game.
func (g *Game) UpgradeBeamProperty(prop defs.BeamProperty) error {
	w := g.World
	if w.GameOver {
		return ErrInvalidState
	}
	up, ok := beamUpgrades[prop]
	if !ok {
		return fmt.Errorf("beam property %q: %w", prop, ErrNotFound)
	}
	lw := &w.LaserWeapon
	level := lw.Upgrades[prop]
	if level >= up.maxLevel {
		return ErrSaturated
	}
	cost := beamUpgradeCost(level)
	if !w.Spend(cost) {
		return ErrInsufficientResources
	}

	lw.Upgrades[prop] = level + 1
	up.apply(lw)
	lw.PropertyUpgrades++
	if lw.PropertyUpgrades%config.BeamLevelEvery == 0 {
		lw.Level++
	}
	w.Score += int(cost)
	w.AddExplosion(component.ExplosionUpgrade, vec3.Zero, 1.0, 600*time.Millisecond, config.ColorBeamUpgrade, g.Clock.Now())
	return nil
}

// ToggleScanner switches the scanner. Both directions wait out the cooldown;
// switching on costs energy and is refused on pause or after game over.
func (g *Game) ToggleScanner() error {
	w := g.World
	sc := &w.Scanner
	now := g.Clock.Now()
	if !sc.Ready(now) {
		return ErrCooldown
	}
	if sc.Active {
		sc.Active = false
		return nil
	}

	if !w.Active() {
		return ErrInvalidState
	}
	if !w.Spend(sc.EnergyCost) {
		return ErrInsufficientResources
	}
	sc.Active = true
	sc.LastUsed = now
	w.AddExplosion(component.ExplosionScanner, vec3.Zero, 1.5, 600*time.Millisecond, config.ColorScanner, now)
	return nil
}

// UpgradeScanner extends range and shortens cooldown.
func (g *Game) UpgradeScanner() error {
	w := g.World
	if !w.Active() {
		return ErrInvalidState
	}
	sc := &w.Scanner
	if sc.Level >= config.MaxScannerLevel {
		return ErrSaturated
	}
	if !w.Spend(config.ScannerUpgradeCost) {
		return ErrInsufficientResources
	}
	sc.Level++
	sc.Range *= 1.2
	sc.Cooldown = maxDuration(config.ScannerCooldownMin, scaleDuration(sc.Cooldown, 0.8))
	w.Score += config.ScannerUpgradeScore
	w.AddExplosion(component.ExplosionUpgrade, vec3.Zero, 1.0, 600*time.Millisecond, config.ColorScanner, g.Clock.Now())
	return nil
}
