// cmd/game/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"interstellar-defense/internal/app"
	"interstellar-defense/internal/config"
	"interstellar-defense/internal/defs"
	gamenet "interstellar-defense/internal/net"
	"interstellar-defense/internal/session"
	"interstellar-defense/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	if err := config.LoadEnv(); err != nil {
		log.Fatal(err)
	}

	seed := flag.Int64("seed", config.EnvInt64(config.EnvSeed, 0), "PRNG seed, 0 seeds from the clock")
	difficulty := flag.String("difficulty", config.Env(config.EnvDifficulty, string(defs.DifficultyNormal)), "easy, normal or hard")
	enemies := flag.String("enemies", config.Env(config.EnvEnemies, ""), "path to an enemy definitions JSON file")
	listen := flag.String("listen", config.Env(config.EnvListen, ""), "serve the game over websocket on this address instead of opening a window")
	flag.Parse()

	d, err := defs.ParseDifficulty(*difficulty)
	if err != nil {
		log.Fatal(err)
	}
	if *enemies != "" {
		if err := defs.LoadEnemyDefinitions(*enemies); err != nil {
			log.Fatal(err)
		}
	}

	s := session.New(app.NewGame(app.Options{Seed: *seed, Difficulty: d}))

	if *listen != "" {
		if err := serve(*listen, s); err != nil {
			log.Fatal(err)
		}
		return
	}

	sm := state.NewStateMachine()
	sm.SetState(state.NewMenuState(sm, s))
	game := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Interstellar Defense")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

// serve крутит симуляцию без окна и раздаёт снапшоты по /ws.
// На том же адресе доступен /debug/pprof.
func serve(addr string, s *session.Session) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hub := gamenet.NewHub(s, gamenet.HubConfig{Logger: log.Default()})
	http.HandleFunc("/ws", hub.Handle)
	srv := &http.Server{Addr: addr}

	go runLogged(ctx, "simulation", s.Run)
	go runLogged(ctx, "broadcast", hub.Run)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	log.Printf("listening on %s", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// runLogged крутит цикл до отмены ctx. Штатная отмена не логируется.
func runLogged(ctx context.Context, name string, run func(context.Context) error) {
	if err := run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("%s loop stopped: %v", name, err)
	}
}
