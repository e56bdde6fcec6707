// internal/system/wave.go
package system

import (
	"log"
	"math"

	"interstellar-defense/internal/component"
	"interstellar-defense/internal/config"
	"interstellar-defense/internal/defs"
	"interstellar-defense/internal/entity"
	"interstellar-defense/internal/event"
	"interstellar-defense/internal/types"
	"interstellar-defense/internal/utils"
	"interstellar-defense/pkg/vec3"
)

// WaveSize returns how many enemies wave n brings at the given difficulty.
func WaveSize(wave int, difficulty defs.Difficulty) int {
	n := int(math.Floor(float64(wave) * config.EnemiesPerWaveScale * difficulty.Modifier()))
	if n > config.MaxEnemiesPerWave {
		n = config.MaxEnemiesPerWave
	}
	if n < 0 {
		n = 0
	}
	return n
}

// GenerateWave строит ростер волны. Порядок бросков фиксирован, поэтому
// один и тот же сид всегда даёт один и тот же ростер.
func GenerateWave(wave int, difficulty defs.Difficulty, rng utils.Random, nextID func() types.EntityID) []*component.Enemy {
	count := WaveSize(wave, difficulty)
	modifier := difficulty.Modifier()
	enemies := make([]*component.Enemy, 0, count)

	for i := 0; i < count; i++ {
		pos := spawnPosition(rng)
		kind := rollEnemyType(wave, modifier, rng.Float64())
		def := defs.Enemy(kind)
		behavior := rollBehavior(wave, rng.Float64())
		resistance := rollResistance(wave, def.BaseResistance, rng)

		if kind == defs.EnemyScout && wave > defs.ShieldedScoutAfterWave && rng.Float64() < defs.ShieldedScoutChance {
			resistance = defs.ShieldedScoutResistance
		}

		enemies = append(enemies, &component.Enemy{
			ID:              nextID(),
			Type:            kind,
			Health:          def.Health,
			MaxHealth:       def.Health,
			Position:        pos,
			Behavior:        behavior,
			LaserResistance: resistance,
		})
	}
	return enemies
}

// spawnPosition picks a point on a sphere of SpawnRadius, flattened in y.
func spawnPosition(rng utils.Random) vec3.Vec3 {
	phi := rng.Float64() * 2 * math.Pi
	theta := rng.Float64() * math.Pi
	return vec3.New(
		math.Sin(theta)*math.Cos(phi)*config.SpawnRadius,
		math.Cos(theta)*config.SpawnRadius*config.SpawnFlatten,
		math.Sin(theta)*math.Sin(phi)*config.SpawnRadius,
	)
}

func rollEnemyType(wave int, modifier, roll float64) defs.EnemyType {
	for _, tier := range defs.WaveTiers {
		if wave < tier.MinWave {
			continue
		}
		for _, th := range tier.Thresholds {
			if roll < th.Below*modifier {
				return th.Type
			}
		}
		break
	}
	return defs.EnemyScout
}

func rollBehavior(wave int, roll float64) defs.Behavior {
	for _, band := range defs.BehaviorBands {
		if roll < band.Below && wave > band.AfterWave {
			return band.Behavior
		}
	}
	return defs.BehaviorDirect
}

func rollResistance(wave int, base float64, rng utils.Random) float64 {
	r := base
	if wave >= defs.ResistanceWaveBonus1From {
		r += defs.ResistanceWaveBonus1
	}
	if wave >= defs.ResistanceWaveBonus2From {
		r += defs.ResistanceWaveBonus2
	}
	r += utils.Between(rng, -defs.ResistanceJitter, defs.ResistanceJitter)
	return math.Max(0, math.Min(defs.MaxResistance, r))
}

// WaveSystem следит за очисткой волны и запускает следующую.
type WaveSystem struct {
	world  *entity.World
	rng    utils.Random
	events *event.Dispatcher
}

func NewWaveSystem(world *entity.World, rng utils.Random, events *event.Dispatcher) *WaveSystem {
	return &WaveSystem{world: world, rng: rng, events: events}
}

// StartWave sets the wave number and spawns its roster.
func (s *WaveSystem) StartWave(wave int) {
	w := s.world
	w.Wave = wave
	roster := GenerateWave(wave, w.Difficulty, s.rng, w.NewEntity)
	for _, e := range roster {
		w.Enemies[e.ID] = e
	}
	s.events.Dispatch(event.Event{Type: event.WaveStarted, Data: event.WaveData{Wave: wave, Enemies: len(roster)}})
}

// Update advances to the next wave once the field is clear.
func (s *WaveSystem) Update() {
	w := s.world
	if w.Wave == 0 || len(w.Enemies) > 0 {
		return
	}

	next := w.Wave + 1
	w.AddResources(config.WaveBonusResources + float64(next)*config.WaveBonusPerWave)
	w.Score += next * config.WaveScorePerWave
	s.events.Dispatch(event.Event{Type: event.WaveCleared, Data: event.WaveData{Wave: w.Wave}})

	if s.rng.Float64() < config.WavePowerUpChance {
		angle := s.rng.Float64() * 2 * math.Pi
		pos := vec3.New(
			math.Cos(angle)*config.WavePowerUpRadius,
			(s.rng.Float64()-0.5)*config.WavePowerUpHeight,
			math.Sin(angle)*config.WavePowerUpRadius,
		)
		p := SpawnPowerUp(w, s.rng, defs.WaveClearPowerUps, pos)
		log.Printf("Wave %d cleared, bonus %s power-up", next-1, p.Type)
	}

	s.StartWave(next)
}
