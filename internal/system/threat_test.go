package system

import (
	"math"
	"reflect"
	"testing"
	"time"

	"interstellar-defense/internal/component"
	"interstellar-defense/internal/defs"
	"interstellar-defense/internal/entity"
	"interstellar-defense/internal/types"
	"interstellar-defense/pkg/vec3"
)

func TestThreatScore(t *testing.T) {
	e := &component.Enemy{Type: defs.EnemyFighter, Health: 60, LaserResistance: 0.5, Position: vec3.New(10, 0, 0)}
	if got := ThreatScore(e); got != 86 {
		t.Fatalf("ThreatScore = %v, want 86", got)
	}
	// бомбер и дредноут получают общий вес 10
	e.Type = defs.EnemyDreadnought
	if got := ThreatScore(e); got != 76 {
		t.Fatalf("dreadnought ThreatScore = %v, want 76", got)
	}
}

func TestRecomputeRanksThreats(t *testing.T) {
	w := entity.NewWorld()
	far := spawn(w, defs.EnemyScout, vec3.New(14, 0, 0))
	twinA := spawn(w, defs.EnemyFighter, vec3.New(0, 0, 9))
	twinB := spawn(w, defs.EnemyFighter, vec3.New(9, 0, 0))
	near := spawn(w, defs.EnemyCruiser, vec3.New(3, 0, 0))

	a := NewAdvisor()
	a.Recompute(w, epoch)

	want := []types.EntityID{near.ID, twinA.ID, twinB.ID, far.ID}
	if got := a.Advisory().OptimalTargets; !reflect.DeepEqual(got, want) {
		t.Fatalf("OptimalTargets = %v, want %v", got, want)
	}
	if len(a.Advisory().PredictedPaths) != 4 {
		t.Fatalf("paths for %d enemies, want 4", len(a.Advisory().PredictedPaths))
	}
}

func TestAdvisorDebouncesIDChanges(t *testing.T) {
	w := entity.NewWorld()
	spawn(w, defs.EnemyScout, vec3.New(10, 0, 0))
	a := NewAdvisor()

	a.Update(w, epoch)
	if a.Advisory().OptimalTargets != nil {
		t.Fatalf("recomputed before the debounce elapsed")
	}
	a.Update(w, epoch.Add(499*time.Millisecond))
	if a.Advisory().OptimalTargets != nil {
		t.Fatalf("recomputed at 499ms")
	}
	a.Update(w, epoch.Add(500*time.Millisecond))
	if len(a.Advisory().OptimalTargets) != 1 {
		t.Fatalf("not recomputed at 500ms")
	}

	spawn(w, defs.EnemyScout, vec3.New(0, 0, 10))
	a.Update(w, epoch.Add(600*time.Millisecond))
	spawn(w, defs.EnemyScout, vec3.New(0, 0, -10))
	a.Update(w, epoch.Add(900*time.Millisecond))
	a.Update(w, epoch.Add(1300*time.Millisecond))
	if len(a.Advisory().OptimalTargets) != 1 {
		t.Fatalf("debounce not restarted by the second change")
	}
	a.Update(w, epoch.Add(1400*time.Millisecond))
	if len(a.Advisory().OptimalTargets) != 3 {
		t.Fatalf("targets = %v after debounce", a.Advisory().OptimalTargets)
	}
}

func TestAdvisorDoesNotMutateWorld(t *testing.T) {
	w := entity.NewWorld()
	spawn(w, defs.EnemyBomber, vec3.New(4, 1, 4)).Behavior = defs.BehaviorSwarming
	spawn(w, defs.EnemyScout, vec3.New(5, 1, 4)).Behavior = defs.BehaviorEvasive
	w.Turrets[w.NewEntity()] = &component.Turret{Position: vec3.New(4, 0, 3), Range: 5}
	before := w.Clone()

	a := NewAdvisor()
	a.Recompute(w, epoch)
	a.Update(w, epoch.Add(time.Second))

	if !reflect.DeepEqual(before, w.Clone()) {
		t.Fatalf("advisor changed the world")
	}
}

func TestPredictPathApproachesPlanet(t *testing.T) {
	e := &component.Enemy{ID: 1, Type: defs.EnemyScout, Position: vec3.New(10, 0, 0), Behavior: defs.BehaviorDirect}
	path := PredictPath(e, nil, epoch)

	if len(path) != 10 {
		t.Fatalf("path has %d points, want 10", len(path))
	}
	prev := e.Position.Length()
	for i, p := range path {
		d := p.Length()
		if d >= prev {
			t.Fatalf("step %d moved away: %v -> %v", i, prev, d)
		}
		prev = d
	}
	if math.Abs(path[9].X-9.2) > 1e-9 {
		t.Fatalf("final x = %v, want 9.2", path[9].X)
	}
	if e.Position.X != 10 {
		t.Fatalf("prediction moved the enemy")
	}
}

func TestTurretTargetsNearestInRange(t *testing.T) {
	w := entity.NewWorld()
	tid := w.NewEntity()
	w.Turrets[tid] = &component.Turret{ID: tid, Position: vec3.New(0, 0, 1), Range: 5}
	idle := w.NewEntity()
	w.Turrets[idle] = &component.Turret{ID: idle, Position: vec3.New(-20, 0, 0), Range: 5}

	nearest := spawn(w, defs.EnemyScout, vec3.New(0, 3, 2))
	spawn(w, defs.EnemyScout, vec3.New(3, 0, 1))
	spawn(w, defs.EnemyScout, vec3.New(10, 0, 0))

	got := TurretTargets(w)
	if len(got) != 1 || got[tid] != nearest.ID {
		t.Fatalf("TurretTargets = %v, want %d -> %d", got, tid, nearest.ID)
	}
}

func TestSteering(t *testing.T) {
	w := entity.NewWorld()
	e := spawn(w, defs.EnemyScout, vec3.New(10, 0, 0))

	dir := Steer(e, e.Position, nil, epoch)
	if dir != vec3.New(-1, 0, 0) {
		t.Fatalf("direct heading = %+v", dir)
	}

	e.Behavior = defs.BehaviorFlanking
	dir = Steer(e, e.Position, nil, epoch)
	if math.Abs(dir.Length()-1) > 1e-9 || dir.Z >= 0 {
		t.Fatalf("flanking heading = %+v", dir)
	}

	e.Behavior = defs.BehaviorSwarming
	if dir := Steer(e, e.Position, NewFlock(w), epoch); dir != vec3.New(-1, 0, 0) {
		t.Fatalf("lone swarmer heading = %+v", dir)
	}
	spawn(w, defs.EnemyScout, vec3.New(10, 0, 2))
	if dir := Steer(e, e.Position, NewFlock(w), epoch); dir.Z <= 0 {
		t.Fatalf("swarmer ignored its neighbour: %+v", dir)
	}

	e.Behavior = defs.BehaviorKamikaze
	if dir := Steer(e, e.Position, nil, epoch); math.Abs(dir.Length()-1) > 1e-9 {
		t.Fatalf("kamikaze heading not unit: %+v", dir)
	}
}
