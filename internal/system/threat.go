// internal/system/threat.go
package system

import (
	"sort"
	"time"

	"interstellar-defense/internal/component"
	"interstellar-defense/internal/config"
	"interstellar-defense/internal/defs"
	"interstellar-defense/internal/entity"
	"interstellar-defense/internal/types"
	"interstellar-defense/pkg/vec3"
)

// Advisory is the advisor's published output. It is read-only for consumers.
type Advisory struct {
	OptimalTargets []types.EntityID               `json:"optimalTargets"`
	PredictedPaths map[types.EntityID][]vec3.Vec3 `json:"predictedPaths"`
	// TurretTargets maps a turret to the nearest enemy inside its range.
	TurretTargets map[types.EntityID]types.EntityID `json:"turretTargets"`
}

// Clone returns a deep copy.
func (a Advisory) Clone() Advisory {
	out := Advisory{
		OptimalTargets: append([]types.EntityID(nil), a.OptimalTargets...),
		PredictedPaths: make(map[types.EntityID][]vec3.Vec3, len(a.PredictedPaths)),
		TurretTargets:  make(map[types.EntityID]types.EntityID, len(a.TurretTargets)),
	}
	for id, path := range a.PredictedPaths {
		out.PredictedPaths[id] = append([]vec3.Vec3(nil), path...)
	}
	for t, e := range a.TurretTargets {
		out.TurretTargets[t] = e
	}
	return out
}

// Advisor ранжирует угрозы и предсказывает траектории. Мир не меняет.
//
// Пересчёт происходит, когда меняется набор ID врагов, с задержкой
// AdvisorDebounce после последнего изменения. Recompute делает то же синхронно.
type Advisor struct {
	advisory Advisory

	seen    map[types.EntityID]struct{}
	pending bool
	dueAt   time.Time
}

func NewAdvisor() *Advisor {
	return &Advisor{
		advisory: Advisory{
			PredictedPaths: make(map[types.EntityID][]vec3.Vec3),
			TurretTargets:  make(map[types.EntityID]types.EntityID),
		},
		seen: make(map[types.EntityID]struct{}),
	}
}

// Advisory returns the latest published result.
func (a *Advisor) Advisory() Advisory {
	return a.advisory
}

// Update is called once per tick. It refreshes turret targets and runs a
// pending recompute whose debounce has elapsed.
func (a *Advisor) Update(w *entity.World, now time.Time) {
	a.Observe(w, now)
	if a.pending && !now.Before(a.dueAt) {
		a.Recompute(w, now)
	}
	a.advisory.TurretTargets = TurretTargets(w)
}

// Observe schedules a recompute when the enemy id set differs from the last
// one seen. Each further change restarts the debounce.
func (a *Advisor) Observe(w *entity.World, now time.Time) {
	if sameIDs(a.seen, w.Enemies) {
		return
	}
	a.seen = make(map[types.EntityID]struct{}, len(w.Enemies))
	for id := range w.Enemies {
		a.seen[id] = struct{}{}
	}
	a.pending = true
	a.dueAt = now.Add(config.AdvisorDebounce)
}

// Recompute ranks threats and predicts paths immediately.
func (a *Advisor) Recompute(w *entity.World, now time.Time) {
	ids := w.EnemyIDs()
	scores := make(map[types.EntityID]float64, len(ids))
	paths := make(map[types.EntityID][]vec3.Vec3, len(ids))
	flock := NewFlock(w)

	for _, id := range ids {
		e := w.Enemies[id]
		scores[id] = ThreatScore(e)
		paths[id] = PredictPath(e, flock, now)
	}

	sort.SliceStable(ids, func(i, j int) bool {
		si, sj := scores[ids[i]], scores[ids[j]]
		if si != sj {
			return si > sj
		}
		return ids[i] < ids[j]
	})

	a.advisory.OptimalTargets = ids
	a.advisory.PredictedPaths = paths
	a.pending = false
}

// ThreatScore оценивает опасность врага: тип, близость, здоровье, защита.
func ThreatScore(e *component.Enemy) float64 {
	weight := defs.Enemy(e.Type).ThreatWeight
	dist := e.Position.Length()
	return weight + (config.ThreatDistanceRef-dist)*5 + e.Health/10 + e.LaserResistance*20
}

// PredictPath projects PredictionSteps future positions using the simulation's
// steering model at unit game speed and normal difficulty.
// The flock stays where it was captured.
func PredictPath(e *component.Enemy, flock Flock, now time.Time) []vec3.Vec3 {
	def := defs.Enemy(e.Type)
	stepSeconds := config.PredictionStep.Seconds()
	path := make([]vec3.Vec3, 0, config.PredictionSteps)
	pos := e.Position
	for i := 0; i < config.PredictionSteps; i++ {
		at := now.Add(time.Duration(i) * config.PredictionStep)
		dir := Steer(e, pos, flock, at)
		pos = pos.Add(dir.Scale(def.Speed * stepSeconds * config.RegenTimeScale))
		path = append(path, pos)
	}
	return path
}

// TurretTargets picks, for every turret, the nearest enemy within its range
// measured in the x/z plane. Turrets with nothing in range are omitted.
func TurretTargets(w *entity.World) map[types.EntityID]types.EntityID {
	out := make(map[types.EntityID]types.EntityID, len(w.Turrets))
	enemyIDs := w.EnemyIDs()
	for tid, t := range w.Turrets {
		best := t.Range
		found := false
		var target types.EntityID
		for _, eid := range enemyIDs {
			d := vec3.DistanceXZ(t.Position, w.Enemies[eid].Position)
			if d <= best && (!found || d < best) {
				best, target, found = d, eid, true
			}
		}
		if found {
			out[tid] = target
		}
	}
	return out
}

func sameIDs(seen map[types.EntityID]struct{}, enemies map[types.EntityID]*component.Enemy) bool {
	if len(seen) != len(enemies) {
		return false
	}
	for id := range enemies {
		if _, ok := seen[id]; !ok {
			return false
		}
	}
	return true
}
