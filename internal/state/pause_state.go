// internal/state/pause_state.go
package state

import (
	"fmt"
	"image/color"

	"interstellar-defense/internal/app"
	"interstellar-defense/internal/config"
	"interstellar-defense/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var _ State = (*PauseState)(nil)

var overlayColor = color.RGBA{0, 0, 0, 128}

// PauseState рисует радар под затемнением. Симуляция стоит: тиков нет,
// а World.Paused отклоняет платные команды даже при внешнем вызове.
// Апгрейды свойств луча на паузе разрешены.
type PauseState struct {
	sm       *StateMachine
	previous *GameState
}

func NewPauseState(sm *StateMachine, previous *GameState) *PauseState {
	return &PauseState{sm: sm, previous: previous}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Exit() {}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if s.previous.run("resume", (*app.Game).TogglePause) {
			s.sm.SetState(s.previous)
		}
		return
	}
	for _, b := range s.previous.bindings {
		if isBeamPropertyKey(b.key) && inpututil.IsKeyJustPressed(b.key) {
			s.previous.run(b.name, b.run)
		}
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previous.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, overlayColor, false)
	drawCentered(screen, "PAUSED", config.ScreenHeight/2, color.White)
	drawCentered(screen, "P - resume   1-5 - beam upgrades", config.ScreenHeight/2+20, color.White)

	var lines []string
	s.previous.session.Do(func(g *app.Game) error {
		lines = upgradeLines(g)
		return nil
	})
	for i, l := range lines {
		drawCentered(screen, l, config.ScreenHeight/2+48+i*16, color.White)
	}
}

// upgradeLines: по строке на свойство луча с уровнем и ценой следующего апгрейда.
func upgradeLines(g *app.Game) []string {
	lines := make([]string, 0, len(defs.BeamProperties))
	for i, prop := range defs.BeamProperties {
		cost, ok := g.BeamUpgradeCost(prop)
		price := "MAX"
		if ok {
			price = fmt.Sprintf("%.0f", cost)
			if g.World.Resources < cost {
				price += " (low)"
			}
		}
		lines = append(lines, fmt.Sprintf("%d %-16s lv %2d  %s", i+1, prop, g.World.LaserWeapon.Upgrades[prop], price))
	}
	return lines
}

// drawCentered пишет строку по центру экрана на базовой линии y.
func drawCentered(screen *ebiten.Image, s string, y int, c color.Color) {
	face := basicfont.Face7x13
	x := (config.ScreenWidth - text.BoundString(face, s).Dx()) / 2
	text.Draw(screen, s, face, x, y, c)
}
