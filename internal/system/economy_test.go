package system

import (
	"testing"
	"time"

	"interstellar-defense/internal/component"
	"interstellar-defense/internal/config"
	"interstellar-defense/internal/defs"
	"interstellar-defense/internal/entity"
	"interstellar-defense/internal/event"
	"interstellar-defense/pkg/vec3"
)

func TestRegenScalesWithGathering(t *testing.T) {
	w := entity.NewWorld()
	econ := NewEconomySystem(w)

	econ.Update(1)
	if w.Resources != 105 {
		t.Fatalf("resources = %v, want 105", w.Resources)
	}
	w.TechTree.ResourceGathering = 2
	econ.Update(1)
	if w.Resources != 115 {
		t.Fatalf("resources = %v, want 115", w.Resources)
	}
	econ.Update(100)
	if w.Resources != config.MaxResources {
		t.Fatalf("resources = %v, want cap", w.Resources)
	}
}

func TestShieldExpires(t *testing.T) {
	w := entity.NewWorld()
	w.ShieldActive = true
	w.ShieldDuration = 10
	econ := NewEconomySystem(w)

	for i := 0; i < 600; i++ {
		econ.Update(1.0 / 60)
	}
	if w.ShieldActive {
		t.Fatalf("shield still active with duration %v", w.ShieldDuration)
	}
	if w.ShieldDuration > 0 {
		t.Fatalf("shield duration = %v, want <= 0", w.ShieldDuration)
	}
}

func TestPowerUpEffects(t *testing.T) {
	tests := []struct {
		kind  defs.PowerUpType
		value float64
		check func(t *testing.T, w *entity.World, turret *component.Turret)
	}{
		{defs.PowerUpHealth, 25, func(t *testing.T, w *entity.World, _ *component.Turret) {
			if w.PlanetHealth != 75 {
				t.Fatalf("planet health = %v, want 75", w.PlanetHealth)
			}
		}},
		{defs.PowerUpResources, 50, func(t *testing.T, w *entity.World, _ *component.Turret) {
			if w.Resources != 150 {
				t.Fatalf("resources = %v, want 150", w.Resources)
			}
		}},
		{defs.PowerUpShield, 15, func(t *testing.T, w *entity.World, _ *component.Turret) {
			if !w.ShieldActive || w.ShieldDuration != 20 {
				t.Fatalf("shield %v duration %v, want active 20", w.ShieldActive, w.ShieldDuration)
			}
		}},
		{defs.PowerUpDamage, 10, func(t *testing.T, _ *entity.World, turret *component.Turret) {
			if turret.Damage != 15 || turret.FireRate != 1.5 {
				t.Fatalf("turret = %+v, want damage 15 fire rate 1.5", turret)
			}
		}},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			w := entity.NewWorld()
			w.PlanetHealth = 50
			w.ShieldDuration = 20
			turret := &component.Turret{ID: w.NewEntity(), Damage: 10, FireRate: 1, Range: 5}
			w.Turrets[turret.ID] = turret
			id := w.NewEntity()
			w.PowerUps[id] = &component.PowerUp{ID: id, Type: tt.kind, Position: vec3.New(1, 0, 0), Value: tt.value}
			events, rec := newDispatcher()

			NewPowerUpSystem(w, newClock(), events).Update()

			if len(w.PowerUps) != 0 {
				t.Fatalf("power-up not consumed")
			}
			if rec.count(event.PowerUpCollected) != 1 {
				t.Fatalf("PowerUpCollected not dispatched")
			}
			tt.check(t, w, turret)
		})
	}
}

func TestPowerUpDriftsWithGameSpeed(t *testing.T) {
	w := entity.NewWorld()
	w.GameSpeed = 2
	id := w.NewEntity()
	w.PowerUps[id] = &component.PowerUp{ID: id, Type: defs.PowerUpHealth, Position: vec3.New(0, 0, 10)}

	NewPowerUpSystem(w, newClock(), nil).Update()

	if z := w.PowerUps[id].Position.Z; z < 9.939 || z > 9.941 {
		t.Fatalf("z = %v, want 9.94", z)
	}
}

func TestExplosionsPruned(t *testing.T) {
	w := entity.NewWorld()
	clock := newClock()
	short := w.AddExplosion(component.ExplosionBeam, vec3.Zero, 1, 200*time.Millisecond, config.ColorBeam, clock.Now())
	long := w.AddExplosion(component.ExplosionGameOver, vec3.Zero, 3, 2*time.Second, config.ColorGameOver, clock.Now())
	prune := NewExplosionSystem(w, clock)

	clock.Advance(200 * time.Millisecond)
	prune.Update()
	if _, ok := w.Explosions[short]; ok {
		t.Fatalf("expired explosion kept")
	}
	if _, ok := w.Explosions[long]; !ok {
		t.Fatalf("live explosion pruned")
	}
}
