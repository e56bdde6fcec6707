// internal/state/menu_state.go
package state

import (
	"fmt"
	"image/color"

	"interstellar-defense/internal/app"
	"interstellar-defense/internal/defs"
	"interstellar-defense/internal/session"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var difficultyKeys = map[ebiten.Key]defs.Difficulty{
	ebiten.KeyDigit1: defs.DifficultyEasy,
	ebiten.KeyDigit2: defs.DifficultyNormal,
	ebiten.KeyDigit3: defs.DifficultyHard,
}

// MenuState — выбор сложности и старт.
type MenuState struct {
	sm      *StateMachine
	session *session.Session
	status  string
}

func NewMenuState(sm *StateMachine, s *session.Session) *MenuState {
	return &MenuState{sm: sm, session: s}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Exit() {}

func (m *MenuState) Update(deltaTime float64) {
	for key, d := range difficultyKeys {
		if inpututil.IsKeyJustPressed(key) {
			if err := m.session.Do(func(g *app.Game) error { return g.SetDifficulty(d) }); err != nil {
				m.status = err.Error()
			}
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		if err := m.session.Do((*app.Game).StartGame); err != nil {
			m.status = err.Error()
			return
		}
		m.sm.SetState(NewGameState(m.sm, m.session))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0, 0, 0, 255})

	var d defs.Difficulty
	m.session.Do(func(g *app.Game) error {
		d = g.World.Difficulty
		return nil
	})

	y := 300
	drawCentered(screen, "INTERSTELLAR DEFENSE", y, color.White)
	drawCentered(screen, fmt.Sprintf("difficulty: %s", d), y+30, color.RGBA{80, 160, 255, 255})
	drawCentered(screen, "1 easy   2 normal   3 hard", y+50, color.White)
	drawCentered(screen, "SPACE - start", y+80, color.White)
	if m.status != "" {
		drawCentered(screen, m.status, y+110, color.RGBA{255, 80, 80, 255})
	}
}
