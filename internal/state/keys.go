// internal/state/keys.go
package state

import (
	"fmt"

	"interstellar-defense/internal/app"
	"interstellar-defense/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
)

const speedStep = 0.25

// Клавиши апгрейдов луча; работают и на паузе.
var beamPropertyKeys = []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4, ebiten.KeyDigit5}

func isBeamPropertyKey(k ebiten.Key) bool {
	for _, bk := range beamPropertyKeys {
		if k == bk {
			return true
		}
	}
	return false
}

// binding связывает клавишу с командой. Результат команды попадает в строку статуса.
type binding struct {
	key  ebiten.Key
	name string
	run  func(g *app.Game) error
}

func gameBindings() []binding {
	b := []binding{
		{ebiten.KeyF, "fire", func(g *app.Game) error {
			_, err := g.FireAtOptimalTarget()
			return err
		}},
		{ebiten.KeyR, "repair", (*app.Game).Repair},
		{ebiten.KeyS, "shield", (*app.Game).ActivateShield},
		{ebiten.KeyA, "aim", (*app.Game).ToggleBeamAim},
		{ebiten.KeyQ, "quick beam upgrade", (*app.Game).QuickUpgradeBeam},
		{ebiten.KeyC, "scanner", (*app.Game).ToggleScanner},
		{ebiten.KeyV, "scanner upgrade", (*app.Game).UpgradeScanner},
		{ebiten.KeyM, "mine", func(g *app.Game) error {
			_, err := g.MineRichestAsteroid()
			return err
		}},
		{ebiten.KeyEqual, "faster", func(g *app.Game) error {
			return g.SetGameSpeed(g.World.GameSpeed + speedStep)
		}},
		{ebiten.KeyMinus, "slower", func(g *app.Game) error {
			return g.SetGameSpeed(g.World.GameSpeed - speedStep)
		}},
	}

	for i, prop := range defs.BeamProperties {
		if i >= len(beamPropertyKeys) {
			break
		}
		prop := prop // per-iteration copy (go < 1.22 loop semantics)
		b = append(b, binding{beamPropertyKeys[i], fmt.Sprintf("beam %s", prop), func(g *app.Game) error {
			return g.UpgradeBeamProperty(prop)
		}})
	}

	techKeys := []ebiten.Key{ebiten.KeyF1, ebiten.KeyF2, ebiten.KeyF3, ebiten.KeyF4}
	for i, kind := range []defs.TechKind{defs.TechTurretDamage, defs.TechShieldStrength, defs.TechResourceGathering, defs.TechLaserPower} {
		kind := kind // per-iteration copy (go < 1.22 loop semantics)
		b = append(b, binding{techKeys[i], fmt.Sprintf("tech %s", kind), func(g *app.Game) error {
			return g.UpgradeTech(kind)
		}})
	}
	return b
}

// Подсказка внизу экрана.
var helpLines = []string{
	"F fire  LMB fire at enemy  RMB/B beam  A aim  T turret at cursor  R repair  S shield  M mine",
	"1-5 beam properties  Q quick beam  F1-F4 tech  C scanner  V scanner upgrade  +/- speed  P pause",
}
