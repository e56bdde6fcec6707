package system

import (
	"time"

	"interstellar-defense/internal/component"
	"interstellar-defense/internal/defs"
	"interstellar-defense/internal/entity"
	"interstellar-defense/internal/event"
	"interstellar-defense/internal/types"
	"interstellar-defense/internal/utils"
	"interstellar-defense/pkg/vec3"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// scripted returns the queued floats in order, then 0.99 forever.
type scripted struct {
	floats []float64
	ints   []int
}

func (s *scripted) Float64() float64 {
	if len(s.floats) == 0 {
		return 0.99
	}
	f := s.floats[0]
	s.floats = s.floats[1:]
	return f
}

func (s *scripted) Intn(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	i := s.ints[0]
	s.ints = s.ints[1:]
	return i % n
}

func spawn(w *entity.World, kind defs.EnemyType, pos vec3.Vec3) *component.Enemy {
	def := defs.Enemy(kind)
	id := w.NewEntity()
	e := &component.Enemy{
		ID:        id,
		Type:      kind,
		Health:    def.Health,
		MaxHealth: def.Health,
		Position:  pos,
		Behavior:  defs.BehaviorDirect,
	}
	w.Enemies[id] = e
	return e
}

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func newDispatcher() (*event.Dispatcher, *recorder) {
	d := event.NewDispatcher()
	r := &recorder{}
	d.SubscribeAll(r, event.All...)
	return d, r
}

func ids(es ...*component.Enemy) []types.EntityID {
	out := make([]types.EntityID, len(es))
	for i, e := range es {
		out[i] = e.ID
	}
	return out
}

func newClock() *utils.ManualClock {
	return utils.NewManualClock(epoch)
}
