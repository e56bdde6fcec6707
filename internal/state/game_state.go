// internal/state/game_state.go
package state

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"time"

	"interstellar-defense/internal/app"
	"interstellar-defense/internal/config"
	"interstellar-defense/internal/sensor"
	"interstellar-defense/internal/session"
	"interstellar-defense/internal/types"
	"interstellar-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const statusTTL = 2 * time.Second

var errNoEnemyUnderCursor = errors.New("no enemy under cursor")

var (
	resourceFill = color.RGBA{255, 220, 0, 220}
	scannerFill  = color.RGBA{0, 200, 220, 220}
)

// GameState — радар: ввод команд, тик симуляции и сканер.
type GameState struct {
	sm       *StateMachine
	session  *session.Session
	sweeper  *sensor.Sweeper
	bindings []binding

	wave      *ui.WaveIndicator
	health    *ui.PlayerHealthIndicator
	resources *ui.LevelIndicator
	scanner   *ui.LevelIndicator

	status   string
	statusAt time.Time
}

func NewGameState(sm *StateMachine, s *session.Session) *GameState {
	return &GameState{
		sm:        sm,
		session:   s,
		sweeper:   sensor.NewSweeper(),
		bindings:  gameBindings(),
		wave:      ui.NewWaveIndicator(config.ScreenWidth/2, 24),
		health:    ui.NewPlayerHealthIndicator(16, 30),
		resources: ui.NewLevelIndicator(16, 170, "RESOURCES / BEAM", resourceFill, config.MaxBeamPropertyLvl),
		scanner:   ui.NewLevelIndicator(16, 220, "SCANNER", scannerFill, config.MaxScannerLevel),
	}
}

func (gs *GameState) Enter() {}

func (gs *GameState) Exit() {}

func (gs *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if gs.run("pause", (*app.Game).TogglePause) {
			gs.sm.SetState(NewPauseState(gs.sm, gs))
		}
		return
	}

	gs.handleInput()
	gs.session.Step(deltaTime)

	over := false
	gs.session.Do(func(g *app.Game) error {
		gs.sweeper.Sweep(g.World, deltaTime*g.World.GameSpeed, g)
		over = g.World.GameOver
		return nil
	})
	if over {
		gs.sm.SetState(NewGameOverState(gs.sm, gs))
	}
}

func (gs *GameState) handleInput() {
	for _, b := range gs.bindings {
		if inpututil.IsKeyJustPressed(b.key) {
			gs.run(b.name, b.run)
		}
	}

	mx, my := ebiten.CursorPosition()
	cursor := toWorld(mx, my)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		gs.run("fire", func(g *app.Game) error {
			id, ok := enemyAt(g.World, cursor)
			if !ok {
				return errNoEnemyUnderCursor
			}
			return g.FireAtEnemy(id)
		})
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) || inpututil.IsKeyJustPressed(ebiten.KeyB) {
		var hits []types.EntityID
		fired := gs.run("beam", func(g *app.Game) error {
			var err error
			hits, err = g.FireBeam(cursor)
			return err
		})
		if fired {
			gs.setStatus(fmt.Sprintf("beam: %d hit", len(hits)))
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		gs.run("turret", func(g *app.Game) error {
			_, err := g.PlaceTurret(cursor)
			return err
		})
	}
}

// run выполняет команду под мьютексом сессии и пишет итог в статус.
func (gs *GameState) run(name string, fn func(g *app.Game) error) bool {
	if err := gs.session.Do(fn); err != nil {
		log.Printf("%s: %v", name, err)
		gs.setStatus(fmt.Sprintf("%s: %v", name, err))
		return false
	}
	gs.setStatus(name)
	return true
}

func (gs *GameState) setStatus(s string) {
	gs.status = s
	gs.statusAt = time.Now()
}

func (gs *GameState) Draw(screen *ebiten.Image) {
	snap := gs.session.Snapshot()
	w := snap.World

	screen.Fill(backgroundColor)
	drawRings(screen, w)
	drawPlanet(screen, w)
	drawAsteroids(screen, w)
	drawPowerUps(screen, w)
	drawPaths(screen, snap.Advisory.PredictedPaths)
	drawTurrets(screen, w, snap.Advisory.TurretTargets)
	drawEnemies(screen, w, snap.Advisory.OptimalTargets, func(id types.EntityID) float64 {
		return gs.sweeper.Progress(id)
	})
	drawExplosions(screen, w, snap.TakenAt)

	mx, my := ebiten.CursorPosition()
	drawBeamAim(screen, w, toWorld(mx, my))

	gs.drawHUD(screen, snap)
}

func (gs *GameState) drawHUD(screen *ebiten.Image, snap app.Snapshot) {
	w := snap.World
	face := basicfont.Face7x13

	gs.wave.Draw(screen, w.Wave)
	gs.health.Draw(screen, w.PlanetHealth, config.MaxPlanetHealth)
	gs.resources.Draw(screen, w.Resources/w.MaxResources, w.LaserWeapon.Level)

	scanReady := 1.0
	if !w.Scanner.LastUsed.IsZero() && w.Scanner.Cooldown > 0 {
		scanReady = snap.TakenAt.Sub(w.Scanner.LastUsed).Seconds() / w.Scanner.Cooldown.Seconds()
	}
	gs.scanner.Draw(screen, scanReady, w.Scanner.Level)

	lines := []string{
		fmt.Sprintf("score %d", w.Score),
		fmt.Sprintf("resources %.0f/%.0f", w.Resources, w.MaxResources),
		fmt.Sprintf("enemies %d  turrets %d", len(w.Enemies), len(w.Turrets)),
		fmt.Sprintf("speed x%.2f  %s", w.GameSpeed, w.Difficulty),
		fmt.Sprintf("beam lvl %d  dmg %.0f  range %.1f", w.LaserWeapon.Level, w.LaserWeapon.Damage, w.LaserWeapon.Range),
		fmt.Sprintf("tech T%.0f S%.0f R%.0f L%.0f", w.TechTree.TurretDamage, w.TechTree.ShieldStrength, w.TechTree.ResourceGathering, w.TechTree.LaserPower),
	}
	if w.ShieldActive {
		lines = append(lines, fmt.Sprintf("shield %.1f", w.ShieldDuration))
	}
	for i, l := range lines {
		text.Draw(screen, l, face, 16, 270+i*16, color.White)
	}

	if gs.status != "" && time.Since(gs.statusAt) < statusTTL {
		text.Draw(screen, gs.status, face, config.ScreenWidth-320, 30, color.RGBA{255, 200, 120, 255})
	}
	for i, l := range helpLines {
		text.Draw(screen, l, face, 16, config.ScreenHeight-28+i*16, color.RGBA{150, 150, 170, 255})
	}
}
