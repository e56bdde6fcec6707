// internal/system/movement.go
package system

import (
	"time"

	"interstellar-defense/internal/component"
	"interstellar-defense/internal/config"
	"interstellar-defense/internal/defs"
	"interstellar-defense/internal/entity"
	"interstellar-defense/internal/event"
	"interstellar-defense/internal/utils"
)

// MovementSystem двигает врагов к планете и разрешает столкновения и дальние атаки.
type MovementSystem struct {
	world  *entity.World
	clock  utils.Clock
	events *event.Dispatcher
}

func NewMovementSystem(world *entity.World, clock utils.Clock, events *event.Dispatcher) *MovementSystem {
	return &MovementSystem{world: world, clock: clock, events: events}
}

// Update advances every enemy by dt seconds of simulated time.
func (s *MovementSystem) Update(dt float64) {
	w := s.world
	now := s.clock.Now()
	modifier := w.Difficulty.Modifier()
	flock := NewFlock(w)

	for _, id := range w.EnemyIDs() {
		enemy := w.Enemies[id]
		def := defs.Enemy(enemy.Type)

		dir := Steer(enemy, enemy.Position, flock, now)
		speed := def.Speed * modifier * dt * config.RegenTimeScale
		enemy.Position = enemy.Position.Add(dir.Scale(speed))
		enemy.Velocity = dir

		distance := enemy.Position.Length()
		if distance < config.PlanetImpactRange {
			s.impact(enemy, def, now)
			continue
		}

		if def.IsRanged() && distance < config.RangedAttackRange && s.rangedReady(enemy, def, now) {
			s.rangedAttack(enemy, def, now)
		}
	}
}

// impact always destroys the enemy, whatever health it has left.
func (s *MovementSystem) impact(enemy *component.Enemy, def defs.EnemyDefinition, now time.Time) {
	w := s.world
	damage := mitigated(w, def.ImpactDamage, def.ShieldedImpactDamage)
	w.DamagePlanet(damage)
	w.AddExplosion(component.ExplosionImpact, enemy.Position, def.ExplosionScale, time.Second, config.ColorImpact, now)
	w.RemoveEnemy(enemy.ID)
	s.events.Dispatch(event.Event{Type: event.EnemyImpact, Data: event.EnemyData{
		ID: enemy.ID, Type: enemy.Type, Position: enemy.Position, Damage: damage,
	}})
}

func (s *MovementSystem) rangedReady(enemy *component.Enemy, def defs.EnemyDefinition, now time.Time) bool {
	if enemy.LastAttackTime.IsZero() {
		return true
	}
	cooldown := time.Duration(float64(def.RangedCooldown()) / s.world.GameSpeed)
	return now.Sub(enemy.LastAttackTime) > cooldown
}

func (s *MovementSystem) rangedAttack(enemy *component.Enemy, def defs.EnemyDefinition, now time.Time) {
	w := s.world
	damage := mitigated(w, def.RangedDamage, def.RangedDamage)
	w.DamagePlanet(damage)

	scale := 0.7
	if enemy.Type == defs.EnemyDreadnought {
		scale = 1.0
	}
	w.AddExplosion(component.ExplosionRangedAttack, enemy.Position.Scale(0.5), scale, 800*time.Millisecond, config.ColorAttack, now)

	enemy.LastAttackTime = now
	enemy.AttackCooldown = def.RangedCooldown()
	s.events.Dispatch(event.Event{Type: event.PlanetAttacked, Data: event.EnemyData{
		ID: enemy.ID, Type: enemy.Type, Position: enemy.Position, Damage: damage,
	}})
}

// mitigated picks the damage a hit deals to the planet: the shielded amount is
// divided by shield strength while the shield is up.
func mitigated(w *entity.World, full, shielded float64) float64 {
	if w.ShieldActive {
		return shielded / w.TechTree.ShieldStrength
	}
	return full
}
