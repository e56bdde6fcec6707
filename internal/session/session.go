// Package session serializes ticks and commands against one game.
package session

import (
	"context"
	"sync"
	"time"

	"interstellar-defense/internal/app"
	"interstellar-defense/internal/config"
)

// Session owns a Game. Every access goes through its mutex, so a tick and a
// command never interleave.
type Session struct {
	mu   sync.Mutex
	game *app.Game
}

func New(game *app.Game) *Session {
	return &Session{game: game}
}

// Step runs one tick of dt seconds.
func (s *Session) Step(dt float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.game.Update(dt)
}

// Do runs fn with exclusive access to the game. fn must not retain g.
func (s *Session) Do(fn func(g *app.Game) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.game)
}

// Snapshot returns a deep copy of the current state.
func (s *Session) Snapshot() app.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Snapshot()
}

// Advisory returns a copy of the latest targeting advisory.
func (s *Session) Advisory() app.Advisory {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Advisor.Advisory().Clone()
}

// Run ticks the game every TickInterval until ctx is done. The wall-clock
// delta is capped at MaxDeltaTime so a stalled process does not teleport enemies.
func (s *Session) Run(ctx context.Context) error {
	ticker := time.NewTicker(config.TickInterval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			if dt > config.MaxDeltaTime {
				dt = config.MaxDeltaTime
			}
			s.Step(dt)
		}
	}
}
