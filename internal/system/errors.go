package system

import "errors"

// Отказы команд. Состояние мира при отказе не меняется.
var (
	ErrInsufficientResources = errors.New("insufficient resources")
	ErrInvalidState          = errors.New("game paused or over")
	ErrCooldown              = errors.New("cooldown not elapsed")
	ErrNotFound              = errors.New("target not found")
	ErrSaturated             = errors.New("attribute at maximum")
)
