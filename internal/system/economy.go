package system

import (
	"interstellar-defense/internal/config"
	"interstellar-defense/internal/entity"
)

// EconomySystem регенерирует ресурсы и отсчитывает щит.
type EconomySystem struct {
	world *entity.World
}

func NewEconomySystem(world *entity.World) *EconomySystem {
	return &EconomySystem{world: world}
}

func (s *EconomySystem) Update(dt float64) {
	w := s.world
	w.AddResources(w.ResourceRegenRate * w.TechTree.ResourceGathering * dt * config.RegenTimeScale)

	if w.ShieldActive {
		w.ShieldDuration -= dt * config.RegenTimeScale
		if w.ShieldDuration <= 0 {
			w.ShieldActive = false
		}
	}
}
