// internal/app/tower_management.go
package app

import (
	"time"

	"interstellar-defense/internal/component"
	"interstellar-defense/internal/config"
	"interstellar-defense/internal/event"
	"interstellar-defense/internal/types"
	"interstellar-defense/pkg/vec3"
)

// PlaceTurret builds a turret at pos. Its damage is fixed from the turret
// tech level at placement time.
func (g *Game) PlaceTurret(pos vec3.Vec3) (types.EntityID, error) {
	w := g.World
	if !w.Active() {
		return 0, ErrInvalidState
	}
	if !w.Spend(config.TurretCost) {
		return 0, ErrInsufficientResources
	}

	id := g.createTurretEntity(pos)
	w.Score += config.TurretScore
	w.AddExplosion(component.ExplosionTurret, pos, 0.6, 500*time.Millisecond, config.ColorTurret, g.Clock.Now())
	g.EventDispatcher.Dispatch(event.Event{Type: event.TurretPlaced, Data: id})
	return id, nil
}

func (g *Game) createTurretEntity(pos vec3.Vec3) types.EntityID {
	w := g.World
	id := w.NewEntity()
	w.Turrets[id] = &component.Turret{
		ID:       id,
		Position: pos,
		Range:    config.TurretRange,
		Damage:   config.TurretBaseDamage * w.TechTree.TurretDamage,
		FireRate: config.TurretFireRate,
	}
	return id
}

// TurretTarget returns the enemy the advisor assigned to a turret, if any.
func (g *Game) TurretTarget(turretID types.EntityID) (types.EntityID, bool) {
	id, ok := g.Advisor.Advisory().TurretTargets[turretID]
	return id, ok
}
