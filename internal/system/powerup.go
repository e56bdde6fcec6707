package system

import (
	"time"

	"interstellar-defense/internal/component"
	"interstellar-defense/internal/config"
	"interstellar-defense/internal/defs"
	"interstellar-defense/internal/entity"
	"interstellar-defense/internal/event"
	"interstellar-defense/internal/utils"
	"interstellar-defense/pkg/vec3"
)

// PowerUpSystem тянет бонусы к планете и применяет их при сборе.
type PowerUpSystem struct {
	world  *entity.World
	clock  utils.Clock
	events *event.Dispatcher
}

func NewPowerUpSystem(world *entity.World, clock utils.Clock, events *event.Dispatcher) *PowerUpSystem {
	return &PowerUpSystem{world: world, clock: clock, events: events}
}

// Update moves power-ups a fixed distance per tick; only game speed scales it.
func (s *PowerUpSystem) Update() {
	w := s.world
	now := s.clock.Now()
	for _, id := range entity.SortedIDs(w.PowerUps) {
		p := w.PowerUps[id]
		if p.Position.Length() < config.PowerUpCollectRadius {
			s.collect(p, now)
			continue
		}
		dir := vec3.Zero.Sub(p.Position).Normalize()
		p.Position = p.Position.Add(dir.Scale(config.PowerUpSpeed * w.GameSpeed))
	}
}

func (s *PowerUpSystem) collect(p *component.PowerUp, now time.Time) {
	w := s.world
	var color string
	switch p.Type {
	case defs.PowerUpHealth:
		w.HealPlanet(p.Value)
		color = config.ColorHealth
	case defs.PowerUpResources:
		w.AddResources(p.Value)
		color = config.ColorResources
	case defs.PowerUpShield:
		w.ShieldActive = true
		if p.Value > w.ShieldDuration {
			w.ShieldDuration = p.Value
		}
		color = config.ColorShield
	case defs.PowerUpDamage:
		// Необратимый буст всех башен
		for _, t := range w.Turrets {
			t.Damage *= config.DamagePowerUpMultiplier
			t.FireRate *= config.DamagePowerUpMultiplier
		}
		color = config.ColorDamage
	}

	w.AddExplosion(component.ExplosionPowerUp, p.Position, 0.5, 500*time.Millisecond, color, now)
	delete(w.PowerUps, p.ID)
	s.events.Dispatch(event.Event{Type: event.PowerUpCollected, Data: event.PowerUpData{Type: p.Type, Value: p.Value}})
}

// SpawnPowerUp adds a power-up of a weighted-random type at pos, valued from values.
func SpawnPowerUp(w *entity.World, rng utils.Random, values defs.PowerUpValues, pos vec3.Vec3) *component.PowerUp {
	kind := utils.ChooseWeighted(rng, defs.PowerUpDropTable)
	id := w.NewEntity()
	p := &component.PowerUp{
		ID:       id,
		Type:     kind,
		Position: pos,
		Duration: config.PowerUpDuration,
		Value:    values[kind],
	}
	w.PowerUps[id] = p
	return p
}
