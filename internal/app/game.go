// internal/app/game.go
package app

import (
	"log"
	"time"

	"interstellar-defense/internal/component"
	"interstellar-defense/internal/config"
	"interstellar-defense/internal/defs"
	"interstellar-defense/internal/entity"
	"interstellar-defense/internal/event"
	"interstellar-defense/internal/system"
	"interstellar-defense/internal/utils"
	"interstellar-defense/pkg/vec3"
)

// Options configures a new Game. Zero values pick sensible defaults.
type Options struct {
	Seed       int64        // 0: сид из текущего времени
	Random     utils.Random // overrides Seed when set
	Clock      utils.Clock
	Difficulty defs.Difficulty
}

// Game holds the world and the systems that advance it.
// It is not safe for concurrent use; see the session package.
type Game struct {
	World           *entity.World
	MovementSystem  *system.MovementSystem
	EconomySystem   *system.EconomySystem
	PowerUpSystem   *system.PowerUpSystem
	ExplosionSystem *system.ExplosionSystem
	WaveSystem      *system.WaveSystem
	CombatSystem    *system.CombatSystem
	Advisor         *system.Advisor
	EventDispatcher *event.Dispatcher
	Rng             utils.Random
	Clock           utils.Clock
}

// NewGame initializes a new game instance in its pre-start state.
func NewGame(opts Options) *Game {
	rng := opts.Random
	if rng == nil {
		rng = utils.NewPRNGService(opts.Seed)
	}
	clock := opts.Clock
	if clock == nil {
		clock = utils.SystemClock{}
	}

	world := entity.NewWorld()
	if opts.Difficulty != "" {
		world.Difficulty = opts.Difficulty
	}

	eventDispatcher := event.NewDispatcher()
	g := &Game{
		World:           world,
		MovementSystem:  system.NewMovementSystem(world, clock, eventDispatcher),
		EconomySystem:   system.NewEconomySystem(world),
		PowerUpSystem:   system.NewPowerUpSystem(world, clock, eventDispatcher),
		ExplosionSystem: system.NewExplosionSystem(world, clock),
		WaveSystem:      system.NewWaveSystem(world, rng, eventDispatcher),
		CombatSystem:    system.NewCombatSystem(world, clock, rng, eventDispatcher),
		Advisor:         system.NewAdvisor(),
		EventDispatcher: eventDispatcher,
		Rng:             rng,
		Clock:           clock,
	}
	g.generateAsteroids()

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(event.WaveStarted, listener)
	eventDispatcher.Subscribe(event.GameOver, listener)

	return g
}

// GameEventListener пишет ключевые моменты партии в лог.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.WaveStarted:
		if data, ok := e.Data.(event.WaveData); ok {
			log.Printf("Wave %d started: %d enemies (%s)", data.Wave, data.Enemies, l.game.World.Difficulty)
		}
	case event.GameOver:
		if data, ok := e.Data.(event.GameOverData); ok {
			log.Printf("Game over at wave %d, score %d", data.Wave, data.Score)
		}
	}
}

// Update advances the simulation by deltaTime seconds of wall time.
// Expired explosions are pruned even while paused or after game over.
func (g *Game) Update(deltaTime float64) {
	w := g.World
	g.ExplosionSystem.Update()
	if !w.Active() {
		return
	}

	dt := deltaTime * w.GameSpeed
	g.EconomySystem.Update(dt)
	g.PowerUpSystem.Update()
	g.MovementSystem.Update(dt)
	g.WaveSystem.Update()

	if w.PlanetHealth <= 0 {
		g.endGame()
	}
	g.Advisor.Update(w, g.Clock.Now())
}

func (g *Game) endGame() {
	w := g.World
	w.PlanetHealth = 0
	w.GameOver = true
	w.AddExplosion(component.ExplosionGameOver, vec3.Zero, 3, 2*time.Second, config.ColorGameOver, g.Clock.Now())
	g.EventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: event.GameOverData{Wave: w.Wave, Score: w.Score}})
}

// reset restores the starting state. Difficulty, asteroids and the id counter
// survive so asteroid ids stay unique.
func (g *Game) reset() {
	prev := g.World
	fresh := entity.NewWorld()
	fresh.NextID = prev.NextID
	fresh.Difficulty = prev.Difficulty
	fresh.Asteroids = prev.Asteroids
	*g.World = *fresh
	g.Advisor = system.NewAdvisor()
}
