// internal/ui/player_health_indicator.go
package ui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	HealthRows          = 5
	HealthCols          = 4
	HealthCircleRadius  = 7.0
	HealthCircleSpacing = 4.0
)

var (
	healthHighColor  = color.RGBA{60, 110, 255, 255}
	healthLowColor   = color.RGBA{230, 40, 40, 255}
	healthEmptyColor = color.RGBA{0, 0, 0, 255}
)

// PlayerHealthIndicator отображает здоровье планеты сеткой кружков.
type PlayerHealthIndicator struct {
	X, Y float32
}

// NewPlayerHealthIndicator создает новый индикатор здоровья.
func NewPlayerHealthIndicator(x, y float32) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y}
}

// Pips returns how many of the HealthRows*HealthCols circles are lit.
// A partly lost pip stays lit.
func Pips(health, maxHealth float64) int {
	if maxHealth <= 0 || health <= 0 {
		return 0
	}
	total := HealthRows * HealthCols
	n := int(math.Ceil(health / maxHealth * float64(total)))
	if n > total {
		n = total
	}
	return n
}

// pipColor: пока здоровья больше половины, «избыток» синий.
func pipColor(j, lit int) color.RGBA {
	half := HealthRows * HealthCols / 2
	switch {
	case j >= lit:
		return healthEmptyColor
	case lit > half && j < lit-half:
		return healthHighColor
	default:
		return healthLowColor
	}
}

// Draw рисует индикатор здоровья.
func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, health, maxHealth float64) {
	lit := Pips(health, maxHealth)
	step := float32(HealthCircleRadius*2 + HealthCircleSpacing)

	for j := 0; j < HealthRows*HealthCols; j++ {
		cx := i.X + float32(j%HealthCols)*step + HealthCircleRadius
		cy := i.Y + float32(j/HealthCols)*step + HealthCircleRadius
		vector.DrawFilledCircle(screen, cx, cy, HealthCircleRadius, pipColor(j, lit), true)
		vector.StrokeCircle(screen, cx, cy, HealthCircleRadius, 1, color.White, true)
	}

	label := fmt.Sprintf("%.0f/%.0f", health, maxHealth)
	text.Draw(screen, label, basicfont.Face7x13, int(i.X), int(i.Y)-6, color.White)
}

// Height возвращает общую высоту индикатора вместе с подписью.
func (i *PlayerHealthIndicator) Height() float32 {
	return 20 + HealthRows*(HealthCircleRadius*2+HealthCircleSpacing)
}
