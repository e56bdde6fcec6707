package component

import (
	"time"

	"interstellar-defense/internal/config"
	"interstellar-defense/internal/defs"
	"interstellar-defense/internal/types"
	"interstellar-defense/pkg/vec3"
)

// LaserWeapon — направленный луч с планеты. Пробивает всех врагов на линии.
type LaserWeapon struct {
	Damage     float64                   `json:"damage"`
	Cooldown   time.Duration             `json:"cooldown"`
	LastFired  time.Time                 `json:"lastFired"`
	IsAiming   bool                      `json:"isAiming"`
	AimTarget  *vec3.Vec3                `json:"aimTarget,omitempty"`
	Level      int                       `json:"level"`
	EnergyCost float64                   `json:"energyCost"`
	Range      float64                   `json:"range"`
	BeamWidth  float64                   `json:"beamWidth"`
	Accuracy   float64                   `json:"accuracy"`
	Upgrades   map[defs.BeamProperty]int `json:"upgrades"`

	// Upgrades performed through UpgradeBeamProperty; every third raises Level.
	PropertyUpgrades int `json:"propertyUpgrades"`
}

// NewLaserWeapon returns the weapon in its starting configuration.
func NewLaserWeapon() LaserWeapon {
	upgrades := make(map[defs.BeamProperty]int, len(defs.BeamProperties))
	for _, p := range defs.BeamProperties {
		upgrades[p] = 1
	}
	return LaserWeapon{
		Damage:     config.BeamDamage,
		Cooldown:   config.BeamCooldown,
		Level:      1,
		EnergyCost: config.BeamEnergyCost,
		Range:      config.BeamRange,
		BeamWidth:  config.BeamWidth,
		Accuracy:   config.BeamAccuracy,
		Upgrades:   upgrades,
	}
}

// Ready reports whether the cooldown has elapsed at now.
func (w *LaserWeapon) Ready(now time.Time) bool {
	return w.LastFired.IsZero() || now.Sub(w.LastFired) >= w.Cooldown
}

// Clone returns a deep copy.
func (w LaserWeapon) Clone() LaserWeapon {
	upgrades := make(map[defs.BeamProperty]int, len(w.Upgrades))
	for k, v := range w.Upgrades {
		upgrades[k] = v
	}
	w.Upgrades = upgrades
	if w.AimTarget != nil {
		target := *w.AimTarget
		w.AimTarget = &target
	}
	return w
}

// Scanner reveals enemy resistance by progressive, range-gated scans.
type Scanner struct {
	Active         bool                    `json:"active"`
	Cooldown       time.Duration           `json:"cooldown"`
	LastUsed       time.Time               `json:"lastUsed"`
	Range          float64                 `json:"range"`
	EnergyCost     float64                 `json:"energyCost"`
	ScannedEnemies map[types.EntityID]bool `json:"scannedEnemies"`
	Level          int                     `json:"level"`
}

// NewScanner returns the scanner in its starting configuration.
func NewScanner() Scanner {
	return Scanner{
		Cooldown:       config.ScannerCooldown,
		Range:          config.ScannerRange,
		EnergyCost:     config.ScannerEnergyCost,
		ScannedEnemies: make(map[types.EntityID]bool),
		Level:          1,
	}
}

// Ready reports whether the scanner may be toggled at now.
func (s *Scanner) Ready(now time.Time) bool {
	return s.LastUsed.IsZero() || now.Sub(s.LastUsed) >= s.Cooldown
}

// Clone returns a deep copy.
func (s Scanner) Clone() Scanner {
	scanned := make(map[types.EntityID]bool, len(s.ScannedEnemies))
	for id := range s.ScannedEnemies {
		scanned[id] = true
	}
	s.ScannedEnemies = scanned
	return s
}
