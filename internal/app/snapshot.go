package app

import (
	"time"

	"interstellar-defense/internal/entity"
	"interstellar-defense/internal/system"
)

// Advisory is the targeting advisor's output.
type Advisory = system.Advisory

// Snapshot is a deep copy of the simulation for presentation layers.
// Mutating it never affects the game.
type Snapshot struct {
	World    *entity.World `json:"world"`
	Advisory Advisory      `json:"advisory"`
	TakenAt  time.Time     `json:"takenAt"`
}

// Snapshot copies the current world and advisory.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		World:    g.World.Clone(),
		Advisory: g.Advisor.Advisory().Clone(),
		TakenAt:  g.Clock.Now(),
	}
}
