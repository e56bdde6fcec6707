package ui

import (
	"image/color"
	"math"
	"testing"
)

func TestToRoman(t *testing.T) {
	cases := map[int]string{0: "", -3: "", 1: "I", 4: "IV", 9: "IX", 14: "XIV", 40: "XL", 1994: "MCMXCIV"}
	for n, want := range cases {
		if got := toRoman(n); got != want {
			t.Errorf("toRoman(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestWaveColorMarksBossWaves(t *testing.T) {
	if WaveColor(10) != bossWaveColor || WaveColor(20) != bossWaveColor {
		t.Error("every tenth wave should use the boss colour")
	}
	if WaveColor(9) != waveColor || WaveColor(0) != waveColor {
		t.Error("ordinary waves should use the default colour")
	}
}

func TestPips(t *testing.T) {
	cases := []struct {
		health, max float64
		want        int
	}{
		{100, 100, 20},
		{0, 100, 0},
		{-5, 100, 0},
		{50, 100, 10},
		{51, 100, 11},
		{4, 100, 1},
		{150, 100, 20},
		{10, 0, 0},
	}
	for _, c := range cases {
		if got := Pips(c.health, c.max); got != c.want {
			t.Errorf("Pips(%v, %v) = %d, want %d", c.health, c.max, got, c.want)
		}
	}
}

func TestPipColor(t *testing.T) {
	// 14 из 20: первые четыре синие, следующие десять красные.
	if pipColor(0, 14) != healthHighColor || pipColor(3, 14) != healthHighColor {
		t.Error("excess over half should be blue")
	}
	if pipColor(4, 14) != healthLowColor || pipColor(13, 14) != healthLowColor {
		t.Error("the lower half should be red")
	}
	if pipColor(14, 14) != healthEmptyColor {
		t.Error("unlit pips should be empty")
	}
	if pipColor(0, 5) != healthLowColor {
		t.Error("below half every lit pip is red")
	}
}

func TestFillWidth(t *testing.T) {
	full := float32(barWidth - borderWidth*2)
	if got := FillWidth(1); got != full {
		t.Errorf("FillWidth(1) = %v, want %v", got, full)
	}
	if got := FillWidth(2); got != full {
		t.Errorf("FillWidth(2) = %v, want %v", got, full)
	}
	if got := FillWidth(-1); got != 0 {
		t.Errorf("FillWidth(-1) = %v, want 0", got)
	}
	if got := FillWidth(math.NaN()); got != 0 {
		t.Errorf("FillWidth(NaN) = %v, want 0", got)
	}
}

func TestParseHexColor(t *testing.T) {
	got, err := ParseHexColor("#ff8800")
	if err != nil {
		t.Fatal(err)
	}
	if want := (color.RGBA{R: 0xff, G: 0x88, B: 0x00, A: 0xff}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if _, err := ParseHexColor("4080ff"); err != nil {
		t.Errorf("missing hash should be accepted: %v", err)
	}
	for _, bad := range []string{"", "#fff", "#gg0000", "#ff00ff00"} {
		if _, err := ParseHexColor(bad); err == nil {
			t.Errorf("ParseHexColor(%q) should fail", bad)
		}
	}
}

func TestFade(t *testing.T) {
	c := color.RGBA{200, 100, 0, 255}
	if got := Fade(c, 1); got != c {
		t.Errorf("Fade(1) = %v", got)
	}
	if got := Fade(c, 0); got != (color.RGBA{}) {
		t.Errorf("Fade(0) = %v", got)
	}
	if got := Fade(c, 0.5); got != (color.RGBA{100, 50, 0, 127}) {
		t.Errorf("Fade(0.5) = %v", got)
	}
}
