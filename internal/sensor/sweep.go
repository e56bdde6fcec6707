// Package sensor is the reference scanning collaborator: it decides which
// enemies are inside the scanner's range and feeds progress to the core.
package sensor

import (
	"log"

	"interstellar-defense/internal/entity"
	"interstellar-defense/internal/types"
)

// Reporter accepts scan telemetry. *app.Game implements it.
// A rejected report is logged; the sweep carries on with the next enemy.
type Reporter interface {
	ReportScanProgress(id types.EntityID, progress float64) error
	CompleteScan(id types.EntityID) error
}

// Sweeper accumulates scan progress frame by frame.
// Closer enemies scan faster, and a higher scanner level scans faster still.
type Sweeper struct {
	progress map[types.EntityID]float64
}

func NewSweeper() *Sweeper {
	return &Sweeper{progress: make(map[types.EntityID]float64)}
}

// Sweep advances every unscanned enemy by dt seconds and reports the result.
// An enemy that leaves range loses its progress. Turning the scanner off
// resets every unfinished scan to 0.
func (s *Sweeper) Sweep(w *entity.World, dt float64, r Reporter) {
	sc := &w.Scanner

	for id := range s.progress {
		if _, ok := w.Enemies[id]; !ok {
			delete(s.progress, id)
		}
	}

	if !sc.Active {
		// Незавершённые сканы сбрасываются, иначе ядро держит частичный прогресс.
		for _, id := range entity.SortedIDs(s.progress) {
			report(r.ReportScanProgress(id, 0), "reset", id)
		}
		s.progress = make(map[types.EntityID]float64)
		return
	}

	for _, id := range w.EnemyIDs() {
		if sc.ScannedEnemies[id] {
			delete(s.progress, id)
			continue
		}

		dist := w.Enemies[id].Position.Length()
		if dist > sc.Range {
			if s.progress[id] > 0 {
				delete(s.progress, id)
				report(r.ReportScanProgress(id, 0), "reset", id)
			}
			continue
		}

		p := s.progress[id] + (1-dist/sc.Range)*float64(sc.Level)*dt
		if p >= 1 {
			delete(s.progress, id)
			report(r.CompleteScan(id), "complete", id)
			continue
		}
		s.progress[id] = p
		report(r.ReportScanProgress(id, p), "progress", id)
	}
}

// Progress returns the locally tracked progress for id.
func (s *Sweeper) Progress(id types.EntityID) float64 {
	return s.progress[id]
}

func report(err error, what string, id types.EntityID) {
	if err != nil {
		log.Printf("scan %s for enemy %d rejected: %v", what, id, err)
	}
}
