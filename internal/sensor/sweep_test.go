package sensor

import (
	"bytes"
	"errors"
	"log"
	"os"
	"strings"
	"testing"

	"interstellar-defense/internal/component"
	"interstellar-defense/internal/entity"
	"interstellar-defense/internal/types"
	"interstellar-defense/pkg/vec3"
)

type fakeReporter struct {
	progress  map[types.EntityID]float64
	completed []types.EntityID
	reject    map[types.EntityID]bool
}

var errRejected = errors.New("rejected")

func newFakeReporter() *fakeReporter {
	return &fakeReporter{progress: make(map[types.EntityID]float64)}
}

func (f *fakeReporter) ReportScanProgress(id types.EntityID, p float64) error {
	if f.reject[id] {
		return errRejected
	}
	f.progress[id] = p
	return nil
}

func (f *fakeReporter) CompleteScan(id types.EntityID) error {
	f.completed = append(f.completed, id)
	return nil
}

func world(positions ...vec3.Vec3) *entity.World {
	w := entity.NewWorld()
	w.Scanner.Active = true
	for _, p := range positions {
		id := w.NewEntity()
		w.Enemies[id] = &component.Enemy{ID: id, Position: p, Health: 10}
	}
	return w
}

func TestSweepProgressDependsOnDistance(t *testing.T) {
	w := world(vec3.New(5, 0, 0), vec3.New(0, 0, 12))
	r := newFakeReporter()
	s := NewSweeper()

	s.Sweep(w, 1, r)

	if got := r.progress[1]; got != 0.5 {
		t.Fatalf("progress at distance 5 = %v, want 0.5", got)
	}
	if _, ok := r.progress[2]; ok {
		t.Fatalf("out-of-range enemy reported")
	}
}

func TestSweepCompletes(t *testing.T) {
	w := world(vec3.New(2, 0, 0))
	w.Scanner.Level = 2
	r := newFakeReporter()
	s := NewSweeper()

	s.Sweep(w, 0.5, r) // 0.8 * 2 * 0.5
	if len(r.completed) != 0 {
		t.Fatalf("completed too early")
	}
	s.Sweep(w, 0.5, r)
	if len(r.completed) != 1 || r.completed[0] != 1 {
		t.Fatalf("completed = %v", r.completed)
	}
	if s.Progress(1) != 0 {
		t.Fatalf("progress kept after completion")
	}
}

func TestSweepResetsWhenEnemyLeavesRange(t *testing.T) {
	w := world(vec3.New(5, 0, 0))
	r := newFakeReporter()
	s := NewSweeper()

	s.Sweep(w, 1, r)
	w.Enemies[1].Position = vec3.New(11, 0, 0)
	s.Sweep(w, 1, r)

	if r.progress[1] != 0 || s.Progress(1) != 0 {
		t.Fatalf("progress not reset: reported %v tracked %v", r.progress[1], s.Progress(1))
	}
}

func TestSweepIdleWhenScannerOff(t *testing.T) {
	w := world(vec3.New(5, 0, 0))
	r := newFakeReporter()
	s := NewSweeper()
	s.Sweep(w, 1, r)

	w.Scanner.Active = false
	s.Sweep(w, 1, r)
	if s.Progress(1) != 0 {
		t.Fatalf("progress kept while off")
	}
	if got, ok := r.progress[1]; !ok || got != 0 {
		t.Fatalf("reset not reported when scanner went off: %v %v", got, ok)
	}

	w.Scanner.Active = true
	w.Scanner.ScannedEnemies[1] = true
	delete(r.progress, 1)
	s.Sweep(w, 1, r)
	if _, ok := r.progress[1]; ok {
		t.Fatalf("already scanned enemy reported")
	}
}

func TestSweepLogsRejectedReports(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	w := world(vec3.New(5, 0, 0), vec3.New(0, 0, 5))
	r := newFakeReporter()
	r.reject = map[types.EntityID]bool{1: true}
	s := NewSweeper()
	s.Sweep(w, 1, r)

	if r.progress[2] != 0.5 {
		t.Fatalf("sweep stopped after rejected report: %v", r.progress)
	}
	if !strings.Contains(buf.String(), "enemy 1 rejected") {
		t.Fatalf("rejection not logged: %q", buf.String())
	}
}
