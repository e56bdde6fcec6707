// internal/ui/player_level_indicator.go
package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	barWidth        = 118
	barHeight       = 12
	levelRectWidth  = 9
	levelRectHeight = 10
	levelRectGap    = 3
	borderWidth     = 1
)

var borderColor = color.White

// LevelIndicator рисует полосу заполнения и ряд прямоугольников уровня
// (ресурсы и уровень луча, заряд сканера и его уровень).
type LevelIndicator struct {
	X, Y     float32
	Label    string
	Fill     color.RGBA
	MaxLevel int
}

// NewLevelIndicator создает новый индикатор уровня.
func NewLevelIndicator(x, y float32, label string, fill color.RGBA, maxLevel int) *LevelIndicator {
	return &LevelIndicator{X: x, Y: y, Label: label, Fill: fill, MaxLevel: maxLevel}
}

// FillWidth returns the inner bar width for ratio, clamped to [0, 1].
func FillWidth(ratio float64) float32 {
	if ratio < 0 || math.IsNaN(ratio) {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	return float32(float64(barWidth-borderWidth*2) * ratio)
}

// Draw отрисовывает индикатор; ratio задаёт долю заполнения полосы.
func (i *LevelIndicator) Draw(screen *ebiten.Image, ratio float64, level int) {
	text.Draw(screen, i.Label, basicfont.Face7x13, int(i.X), int(i.Y)-4, color.White)

	vector.StrokeRect(screen, i.X, i.Y, barWidth, barHeight, borderWidth, borderColor, true)
	if w := FillWidth(ratio); w > 0 {
		vector.DrawFilledRect(screen, i.X+borderWidth, i.Y+borderWidth, w, barHeight-borderWidth*2, i.Fill, true)
	}

	rectY := i.Y + barHeight + 4
	for j := 0; j < i.MaxLevel; j++ {
		rectX := i.X + float32(j)*(levelRectWidth+levelRectGap)
		vector.StrokeRect(screen, rectX, rectY, levelRectWidth, levelRectHeight, borderWidth, borderColor, true)
		if j < level {
			vector.DrawFilledRect(screen, rectX+borderWidth, rectY+borderWidth, levelRectWidth-borderWidth*2, levelRectHeight-borderWidth*2, i.Fill, true)
		}
	}
}
