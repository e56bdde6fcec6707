package component

import "interstellar-defense/internal/defs"

// TechTree holds the global multipliers. Every branch starts at 1 and only grows.
type TechTree struct {
	TurretDamage      float64 `json:"turretDamage"`
	ShieldStrength    float64 `json:"shieldStrength"`
	ResourceGathering float64 `json:"resourceGathering"`
	LaserPower        float64 `json:"laserPower"`
}

// NewTechTree returns a tree with every branch at level 1.
func NewTechTree() TechTree {
	return TechTree{TurretDamage: 1, ShieldStrength: 1, ResourceGathering: 1, LaserPower: 1}
}

// branch returns a pointer to the multiplier named by kind, or nil.
func (t *TechTree) branch(kind defs.TechKind) *float64 {
	switch kind {
	case defs.TechTurretDamage:
		return &t.TurretDamage
	case defs.TechShieldStrength:
		return &t.ShieldStrength
	case defs.TechResourceGathering:
		return &t.ResourceGathering
	case defs.TechLaserPower:
		return &t.LaserPower
	}
	return nil
}

// Level returns the current value of a branch; unknown kinds report 0.
func (t *TechTree) Level(kind defs.TechKind) float64 {
	if b := t.branch(kind); b != nil {
		return *b
	}
	return 0
}

// Raise adds one to the named branch and reports whether the kind exists.
func (t *TechTree) Raise(kind defs.TechKind) bool {
	b := t.branch(kind)
	if b == nil {
		return false
	}
	*b++
	return true
}
