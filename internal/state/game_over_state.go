// internal/state/game_over_state.go
package state

import (
	"fmt"
	"image/color"

	"interstellar-defense/internal/app"
	"interstellar-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var _ State = (*GameOverState)(nil)

// GameOverState держит последний кадр радара. Тики продолжаются, чтобы
// догорели вспышки; остальной мир заморожен флагом GameOver.
type GameOverState struct {
	sm       *StateMachine
	previous *GameState
}

func NewGameOverState(sm *StateMachine, previous *GameState) *GameOverState {
	return &GameOverState{sm: sm, previous: previous}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Exit() {}

func (s *GameOverState) Update(deltaTime float64) {
	s.previous.session.Step(deltaTime)

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		if s.previous.run("restart", (*app.Game).StartGame) {
			s.sm.SetState(NewGameState(s.sm, s.previous.session))
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		if s.previous.run("reset", (*app.Game).ResetGame) {
			s.sm.SetState(NewMenuState(s.sm, s.previous.session))
		}
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.previous.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{40, 0, 0, 140}, false)

	var score, wave int
	s.previous.session.Do(func(g *app.Game) error {
		score, wave = g.World.Score, g.World.Wave
		return nil
	})
	drawCentered(screen, "PLANET LOST", config.ScreenHeight/2-20, color.RGBA{255, 0, 0, 255})
	drawCentered(screen, fmt.Sprintf("wave %d   score %d", wave, score), config.ScreenHeight/2, color.White)
	drawCentered(screen, "SPACE - play again   ESC - menu", config.ScreenHeight/2+20, color.White)
}
