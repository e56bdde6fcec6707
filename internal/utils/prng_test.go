package utils

import (
	"testing"
	"time"

	"interstellar-defense/internal/defs"
)

func TestSeededServicesReplay(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	for i := 0; i < 100; i++ {
		if x, y := a.Float64(), b.Float64(); x != y {
			t.Fatalf("roll %d differs: %v vs %v", i, x, y)
		}
	}
}

// fixedRandom returns its ints in order.
type fixedRandom struct {
	ints []int
}

func (f *fixedRandom) Intn(n int) int {
	v := f.ints[0] % n
	f.ints = f.ints[1:]
	return v
}

func (f *fixedRandom) Float64() float64 { return 0 }

func TestChooseWeighted(t *testing.T) {
	entries := []defs.LootEntry{
		{PowerUp: defs.PowerUpHealth, Weight: 1},
		{PowerUp: defs.PowerUpShield, Weight: 3},
	}
	tests := []struct {
		roll int
		want defs.PowerUpType
	}{
		{0, defs.PowerUpHealth},
		{1, defs.PowerUpShield},
		{3, defs.PowerUpShield},
	}
	for _, tt := range tests {
		r := &fixedRandom{ints: []int{tt.roll}}
		if got := ChooseWeighted(r, entries); got != tt.want {
			t.Fatalf("roll %d: got %s, want %s", tt.roll, got, tt.want)
		}
	}
	if got := ChooseWeighted(&fixedRandom{}, nil); got != "" {
		t.Fatalf("empty table returned %q", got)
	}
}

func TestManualClock(t *testing.T) {
	start := time.Unix(1000, 0)
	c := NewManualClock(start)
	c.Advance(1500 * time.Millisecond)
	if got := c.Now().Sub(start); got != 1500*time.Millisecond {
		t.Fatalf("advanced %v, want 1.5s", got)
	}
}
