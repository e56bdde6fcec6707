package app

import "interstellar-defense/internal/system"

// Command rejections. A rejected command leaves the world unchanged.
var (
	ErrInsufficientResources = system.ErrInsufficientResources
	ErrInvalidState          = system.ErrInvalidState
	ErrCooldown              = system.ErrCooldown
	ErrNotFound              = system.ErrNotFound
	ErrSaturated             = system.ErrSaturated
)
