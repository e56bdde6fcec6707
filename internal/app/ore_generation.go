// internal/app/ore_generation.go
package app

import (
	"math"

	"interstellar-defense/internal/component"
	"interstellar-defense/internal/config"
	"interstellar-defense/pkg/vec3"
)

// generateAsteroids раскладывает астероиды кольцом вокруг планеты.
// Вызывается один раз за сессию; сброс игры кольцо не трогает.
func (g *Game) generateAsteroids() {
	w := g.World
	for i := 0; i < config.AsteroidCount; i++ {
		angle := float64(i) / config.AsteroidCount * 2 * math.Pi
		distance := config.AsteroidMinDistance + g.Rng.Float64()*config.AsteroidDistanceVar
		y := g.Rng.Float64()*2 - 1

		id := w.NewEntity()
		w.Asteroids[id] = &component.Asteroid{
			ID:        id,
			Position:  vec3.New(math.Cos(angle)*distance, y, math.Sin(angle)*distance),
			Resources: config.AsteroidMinRes + math.Floor(g.Rng.Float64()*config.AsteroidResVar),
			Size:      0.5 + g.Rng.Float64()*0.5,
		}
	}
}

// richestAsteroid returns the asteroid with the most resources left.
// Ties go to the lower id.
func (g *Game) richestAsteroid() (*component.Asteroid, bool) {
	var best *component.Asteroid
	for _, a := range g.World.Asteroids {
		if a.Resources <= 0 {
			continue
		}
		if best == nil || a.Resources > best.Resources || (a.Resources == best.Resources && a.ID < best.ID) {
			best = a
		}
	}
	return best, best != nil
}
