package system

import (
	"math"
	"time"

	"interstellar-defense/internal/component"
	"interstellar-defense/internal/config"
	"interstellar-defense/internal/defs"
	"interstellar-defense/internal/entity"
	"interstellar-defense/internal/types"
	"interstellar-defense/pkg/vec3"
)

// Flock is the set of enemy positions visible to swarming enemies during one
// tick, ordered by id. It is captured before anyone moves.
type Flock []FlockMember

// FlockMember is one enemy position in a Flock.
type FlockMember struct {
	ID       types.EntityID
	Position vec3.Vec3
}

// NewFlock snapshots the current positions of the world's enemies.
func NewFlock(w *entity.World) Flock {
	f := make(Flock, 0, len(w.Enemies))
	for _, id := range w.EnemyIDs() {
		f = append(f, FlockMember{ID: id, Position: w.Enemies[id].Position})
	}
	return f
}

// Steer returns the unit heading of enemy e located at pos, at wall time now.
// The same model drives the simulation and the path predictor.
func Steer(e *component.Enemy, pos vec3.Vec3, flock Flock, now time.Time) vec3.Vec3 {
	dir := vec3.Zero.Sub(pos).Normalize()

	switch e.Behavior {
	case defs.BehaviorEvasive:
		// Зигзаг: фаза зависит от времени и ID
		phase := seconds(now) + float64(e.ID)
		dir.X += math.Sin(phase) * config.EvasiveAmplitude
		dir.Z += math.Cos(phase) * config.EvasiveAmplitude
	case defs.BehaviorFlanking:
		perpX, perpZ := -dir.Z, dir.X
		dir.X += perpX * config.FlankingBias
		dir.Z += perpZ * config.FlankingBias
	case defs.BehaviorSwarming:
		if centroid, ok := flock.centroidNear(e.ID, pos); ok {
			dir = dir.Scale(1 - config.SwarmBlend).Add(centroid.Sub(pos).Scale(config.SwarmBlend))
		}
	case defs.BehaviorKamikaze:
		dir = dir.Scale(config.KamikazeBoost)
	}

	return dir.Normalize()
}

// centroidNear averages the positions of other enemies within SwarmRadius of pos.
func (f Flock) centroidNear(self types.EntityID, pos vec3.Vec3) (vec3.Vec3, bool) {
	var sum vec3.Vec3
	n := 0
	for _, m := range f {
		if m.ID == self || vec3.Distance(m.Position, pos) >= config.SwarmRadius {
			continue
		}
		sum = sum.Add(m.Position)
		n++
	}
	if n == 0 {
		return vec3.Zero, false
	}
	return sum.Scale(1 / float64(n)), true
}

// seconds converts a timestamp to fractional unix seconds.
func seconds(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}
