// internal/state/state.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// State — один экран вьюера: меню, радар, пауза или конец игры.
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine переключает экраны. Симуляцией не владеет: её держит session.
type StateMachine struct {
	current State
}

// NewStateMachine создаёт машину состояний без начального состояния.
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState вызывает Exit у текущего состояния и Enter у нового.
// nil допустим и означает пустой экран.
func (sm *StateMachine) SetState(next State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = next
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Current returns the active state, or nil.
func (sm *StateMachine) Current() State {
	return sm.current
}

func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
