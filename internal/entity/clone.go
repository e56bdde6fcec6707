package entity

import "interstellar-defense/internal/types"

// Clone returns a deep copy safe to hand to readers outside the simulation.
func (w *World) Clone() *World {
	c := *w
	c.Enemies = cloneMap(w.Enemies)
	c.Turrets = cloneMap(w.Turrets)
	c.Asteroids = cloneMap(w.Asteroids)
	c.PowerUps = cloneMap(w.PowerUps)
	c.Explosions = cloneMap(w.Explosions)
	c.LaserWeapon = w.LaserWeapon.Clone()
	c.Scanner = w.Scanner.Clone()
	return &c
}

func cloneMap[T any](m map[types.EntityID]*T) map[types.EntityID]*T {
	out := make(map[types.EntityID]*T, len(m))
	for id, v := range m {
		cp := *v
		out[id] = &cp
	}
	return out
}
