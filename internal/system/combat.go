// internal/system/combat.go
package system

import (
	"time"

	"interstellar-defense/internal/component"
	"interstellar-defense/internal/config"
	"interstellar-defense/internal/defs"
	"interstellar-defense/internal/entity"
	"interstellar-defense/internal/event"
	"interstellar-defense/internal/types"
	"interstellar-defense/internal/utils"
	"interstellar-defense/pkg/vec3"
)

// KillSource identifies the weapon that destroyed an enemy.
type KillSource int

const (
	KillDirect KillSource = iota
	KillBeam
)

// CombatSystem разрешает выстрелы игрока: прямой огонь и луч.
type CombatSystem struct {
	world  *entity.World
	clock  utils.Clock
	rng    utils.Random
	events *event.Dispatcher
}

func NewCombatSystem(world *entity.World, clock utils.Clock, rng utils.Random, events *event.Dispatcher) *CombatSystem {
	return &CombatSystem{world: world, clock: clock, rng: rng, events: events}
}

// DirectDamage is the damage of one direct shot at the given turret tech level.
// Laser resistance does not apply.
func DirectDamage(turretDamage float64) float64 {
	return config.FireDamage * turretDamage
}

// BeamDamageAgainst returns the beam damage dealt to an enemy with the given
// laser resistance.
func BeamDamageAgainst(base, laserPower, resistance float64) float64 {
	power := 1 + (laserPower-1)*config.BeamPowerPerLevel
	return base * power * (1 - resistance)
}

// FireDirect spends FireCost and hits one enemy.
func (s *CombatSystem) FireDirect(id types.EntityID) error {
	w := s.world
	if !w.Active() {
		return ErrInvalidState
	}
	enemy, ok := w.Enemies[id]
	if !ok {
		return ErrNotFound
	}
	if !w.Spend(config.FireCost) {
		return ErrInsufficientResources
	}

	enemy.Health -= DirectDamage(w.TechTree.TurretDamage)
	if !enemy.Alive() {
		s.kill(enemy, KillDirect, s.clock.Now())
	}
	return nil
}

// FireBeam fires the beam from the origin toward target. Every enemy close
// enough to the ray is hit; the ids are returned in ascending order.
func (s *CombatSystem) FireBeam(target vec3.Vec3) ([]types.EntityID, error) {
	w := s.world
	lw := &w.LaserWeapon
	now := s.clock.Now()

	if !w.Active() {
		return nil, ErrInvalidState
	}
	if !lw.Ready(now) {
		return nil, ErrCooldown
	}
	if !w.Spend(lw.EnergyCost) {
		return nil, ErrInsufficientResources
	}
	lw.LastFired = now
	w.AddExplosion(component.ExplosionBeam, target.Scale(0.5), 0.3, 200*time.Millisecond, config.ColorBeam, now)

	hits := BeamHits(w, target)
	for _, id := range hits {
		enemy := w.Enemies[id]
		if enemy.LaserResistance > config.ShieldImpactMinRes {
			color := config.ColorShieldHitLow
			if enemy.LaserResistance > 0.6 {
				color = config.ColorShieldHitHi
			}
			w.AddExplosion(component.ExplosionShieldImpact, enemy.Position, 0.7, 300*time.Millisecond, color, now)
		}
		enemy.Health -= BeamDamageAgainst(lw.Damage, w.TechTree.LaserPower, enemy.LaserResistance)
		if !enemy.Alive() {
			s.kill(enemy, KillBeam, now)
		}
	}
	return hits, nil
}

// BeamHits lists the enemies a beam toward target would pass through,
// without firing it.
func BeamHits(w *entity.World, target vec3.Vec3) []types.EntityID {
	lw := &w.LaserWeapon
	dir := target.Normalize()
	if dir == vec3.Zero {
		return nil
	}

	widthRatio := lw.BeamWidth / config.BeamWidth
	toleranceSq := config.BeamToleranceSq * widthRatio * widthRatio

	var hits []types.EntityID
	for _, id := range w.EnemyIDs() {
		pos := w.Enemies[id].Position
		along := pos.Dot(dir)
		if along <= 0 || along > lw.Range {
			continue
		}
		perpSq := pos.LengthSq() - along*along
		if perpSq < toleranceSq {
			hits = append(hits, id)
		}
	}
	return hits
}

// kill pays the bounty, rolls the drop and removes the enemy.
func (s *CombatSystem) kill(enemy *component.Enemy, source KillSource, now time.Time) {
	w := s.world
	def := defs.Enemy(enemy.Type)

	w.AddResources(def.ResourceReward)
	w.Score += def.ScoreReward

	color := config.ColorKillDirect
	if source == KillBeam {
		color = config.ColorKillBeam
	}
	w.AddExplosion(component.ExplosionKill, enemy.Position, def.ExplosionScale, time.Second, color, now)

	if s.rng.Float64() < def.DropChance {
		SpawnPowerUp(w, s.rng, defs.KillDropPowerUps, enemy.Position)
	}

	w.RemoveEnemy(enemy.ID)
	s.events.Dispatch(event.Event{Type: event.EnemyDestroyed, Data: event.EnemyData{
		ID: enemy.ID, Type: enemy.Type, Position: enemy.Position,
	}})
}
