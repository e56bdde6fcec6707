// internal/ui/wave_indicator.go
package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Каждая BossWaveEvery-я волна подсвечивается красным.
const BossWaveEvery = 10

var (
	waveColor     = color.RGBA{80, 160, 255, 255}
	bossWaveColor = color.RGBA{255, 60, 60, 255}
	outlineColor  = color.RGBA{255, 255, 255, 255}
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y    int // центр по X, базовая линия по Y
	Outline int
}

// NewWaveIndicator создает новый индикатор волны.
func NewWaveIndicator(x, y int) *WaveIndicator {
	return &WaveIndicator{X: x, Y: y, Outline: 1}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// WaveColor returns the label colour for a wave.
func WaveColor(wave int) color.RGBA {
	if wave > 0 && wave%BossWaveEvery == 0 {
		return bossWaveColor
	}
	return waveColor
}

// Draw отрисовывает индикатор. До первой волны ничего не рисует.
func (i *WaveIndicator) Draw(screen *ebiten.Image, wave int) {
	label := toRoman(wave)
	if label == "" {
		return
	}

	face := basicfont.Face7x13
	x := i.X - text.BoundString(face, label).Dx()/2

	for dy := -i.Outline; dy <= i.Outline; dy++ {
		for dx := -i.Outline; dx <= i.Outline; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			text.Draw(screen, label, face, x+dx, i.Y+dy, outlineColor)
		}
	}
	text.Draw(screen, label, face, x, i.Y, WaveColor(wave))
}
