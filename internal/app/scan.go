// internal/app/scan.go
package app

import (
	"math"
	"time"

	"interstellar-defense/internal/component"
	"interstellar-defense/internal/config"
	"interstellar-defense/internal/event"
	"interstellar-defense/internal/types"
)

// Телеметрия сканера. Геометрию (кто в радиусе) считает внешний сенсор,
// ядро только записывает прогресс.

// ReportScanProgress records progress in [0,1] for an enemy not yet scanned.
// Reports for enemies already scanned are ignored.
func (g *Game) ReportScanProgress(id types.EntityID, progress float64) error {
	w := g.World
	if w.GameOver {
		return ErrInvalidState
	}
	e, ok := w.Enemies[id]
	if !ok {
		return ErrNotFound
	}
	if w.Scanner.ScannedEnemies[id] {
		return nil
	}
	if math.IsNaN(progress) {
		progress = 0
	}
	e.ScanProgress = math.Max(0, math.Min(1, progress))
	return nil
}

// CompleteScan marks an enemy as scanned, revealing its resistance.
func (g *Game) CompleteScan(id types.EntityID) error {
	w := g.World
	if w.GameOver {
		return ErrInvalidState
	}
	e, ok := w.Enemies[id]
	if !ok {
		return ErrNotFound
	}
	if w.Scanner.ScannedEnemies[id] {
		return nil
	}

	w.Scanner.ScannedEnemies[id] = true
	e.Scanned = true
	e.ScanProgress = 1
	w.Score += config.ScanCompleteScore
	w.AddExplosion(component.ExplosionScanComplete, e.Position, 0.5, 400*time.Millisecond, config.ColorScanner, g.Clock.Now())
	g.EventDispatcher.Dispatch(event.Event{Type: event.ScanCompleted, Data: event.EnemyData{
		ID: e.ID, Type: e.Type, Position: e.Position,
	}})
	return nil
}
