package system

import (
	"interstellar-defense/internal/entity"
	"interstellar-defense/internal/utils"
)

// ExplosionSystem prunes visual records once they have played out.
type ExplosionSystem struct {
	world *entity.World
	clock utils.Clock
}

func NewExplosionSystem(world *entity.World, clock utils.Clock) *ExplosionSystem {
	return &ExplosionSystem{world: world, clock: clock}
}

func (s *ExplosionSystem) Update() {
	now := s.clock.Now()
	for id, e := range s.world.Explosions {
		if e.Expired(now) {
			delete(s.world.Explosions, id)
		}
	}
}
