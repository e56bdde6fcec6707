package state

import (
	"math"
	"strings"
	"testing"
	"time"

	"interstellar-defense/internal/app"
	"interstellar-defense/internal/component"
	"interstellar-defense/internal/config"
	"interstellar-defense/internal/defs"
	"interstellar-defense/internal/entity"
	"interstellar-defense/internal/utils"
	"interstellar-defense/pkg/vec3"

	"github.com/hajimehoshi/ebiten/v2"
)

type recordingState struct {
	name string
	log  *[]string
}

func (s *recordingState) Enter() { *s.log = append(*s.log, "enter "+s.name) }
func (s *recordingState) Exit() { *s.log = append(*s.log, "exit "+s.name) }
func (s *recordingState) Update(deltaTime float64) { *s.log = append(*s.log, "update "+s.name) }
func (s *recordingState) Draw(screen *ebiten.Image) {}

func TestStateMachineTransitions(t *testing.T) {
	var log []string
	sm := NewStateMachine()
	sm.Update(0.1) // пустая машина ничего не делает

	a := &recordingState{name: "a", log: &log}
	b := &recordingState{name: "b", log: &log}
	sm.SetState(a)
	sm.Update(0.1)
	sm.SetState(b)
	if sm.Current() != b {
		t.Fatal("current state should be b")
	}
	sm.SetState(nil)
	sm.Update(0.1)

	want := []string{"enter a", "update a", "exit a", "enter b", "exit b"}
	if len(log) != len(want) {
		t.Fatalf("log = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("log = %v, want %v", log, want)
		}
	}
}

func TestScreenProjectionRoundTrip(t *testing.T) {
	p := vec3.New(2, 5, -3)
	x, y := toScreen(p)
	if x != float32(radarCenterX+2*config.WorldScale) || y != float32(radarCenterY-3*config.WorldScale) {
		t.Fatalf("toScreen = (%v, %v)", x, y)
	}
	back := toWorld(int(x), int(y))
	if back.X != 2 || back.Y != 0 || back.Z != -3 {
		t.Errorf("toWorld = %+v, want (2, 0, -3)", back)
	}
	if c := toWorld(radarCenterX, radarCenterY); c != (vec3.Vec3{}) {
		t.Errorf("screen centre should map to the planet, got %+v", c)
	}
}

func TestEnemyAtPicksNearestInRange(t *testing.T) {
	w := entity.NewWorld()
	w.Enemies[1] = &component.Enemy{ID: 1, Position: vec3.New(1, 3, 1)}
	w.Enemies[2] = &component.Enemy{ID: 2, Position: vec3.New(1.5, 0, 1)}

	id, ok := enemyAt(w, vec3.New(1.1, 0, 1))
	if !ok || id != 1 {
		t.Errorf("enemyAt = %d, %v; want 1 (height ignored)", id, ok)
	}
	id, ok = enemyAt(w, vec3.New(1.45, 0, 1))
	if !ok || id != 2 {
		t.Errorf("enemyAt = %d, %v; want 2", id, ok)
	}
	if _, ok := enemyAt(w, vec3.New(5, 0, 5)); ok {
		t.Error("no enemy should be picked far from the cursor")
	}
}

func TestClampToRange(t *testing.T) {
	got := clampToRange(vec3.New(30, 0, 40), 10)
	if math.Abs(got.X-6) > 1e-9 || math.Abs(got.Z-8) > 1e-9 {
		t.Errorf("clampToRange = %+v, want (6, 0, 8)", got)
	}
	in := vec3.New(1, 0, 1)
	if clampToRange(in, 10) != in {
		t.Error("a point inside range should not move")
	}
	if clampToRange(vec3.Vec3{}, 10) != (vec3.Vec3{}) {
		t.Error("the origin should stay put")
	}
}

func TestExplosionAge(t *testing.T) {
	start := time.Unix(1_700_000_000, 0)
	ex := &component.Explosion{CreatedAt: start, Duration: time.Second}

	if got := explosionAge(ex, start); got != 0 {
		t.Errorf("age at creation = %v", got)
	}
	if got := explosionAge(ex, start.Add(250*time.Millisecond)); got != 0.25 {
		t.Errorf("age at 250ms = %v", got)
	}
	if got := explosionAge(ex, start.Add(3*time.Second)); got != 1 {
		t.Errorf("age past the end = %v", got)
	}
	if got := explosionAge(ex, start.Add(-time.Second)); got != 0 {
		t.Errorf("age before creation = %v", got)
	}
	if got := explosionAge(&component.Explosion{CreatedAt: start}, start); got != 1 {
		t.Errorf("zero-duration explosion should be fully aged, got %v", got)
	}
}

func TestGameBindingsAreUniqueAndRun(t *testing.T) {
	clock := utils.NewManualClock(time.Unix(1_700_000_000, 0))
	g := app.NewGame(app.Options{Seed: 7, Clock: clock})
	if err := g.StartGame(); err != nil {
		t.Fatal(err)
	}

	keys := make(map[ebiten.Key]string)
	names := make(map[string]bool)
	for _, b := range gameBindings() {
		if prev, dup := keys[b.key]; dup {
			t.Errorf("key %v bound to both %q and %q", b.key, prev, b.name)
		}
		if names[b.name] {
			t.Errorf("duplicate binding name %q", b.name)
		}
		keys[b.key] = b.name
		names[b.name] = true

		// Ошибки допустимы (нехватка ресурсов, кулдауны), паника нет.
		_ = b.run(g)
		clock.Advance(time.Second)
	}

	if _, ok := keys[ebiten.KeyDigit5]; !ok {
		t.Error("all five beam properties should be bound")
	}
	if !isBeamPropertyKey(ebiten.KeyDigit3) || isBeamPropertyKey(ebiten.KeyF) {
		t.Error("isBeamPropertyKey misclassifies keys")
	}
}

func TestSpeedBindingsStepGameSpeed(t *testing.T) {
	g := app.NewGame(app.Options{Seed: 1})
	var faster, slower binding
	for _, b := range gameBindings() {
		switch b.name {
		case "faster":
			faster = b
		case "slower":
			slower = b
		}
	}
	if err := faster.run(g); err != nil {
		t.Fatal(err)
	}
	if g.World.GameSpeed != 1.25 {
		t.Errorf("GameSpeed = %v, want 1.25", g.World.GameSpeed)
	}
	for i := 0; i < 10; i++ {
		slower.run(g)
	}
	if g.World.GameSpeed != config.MinGameSpeed {
		t.Errorf("GameSpeed = %v, want clamp at %v", g.World.GameSpeed, config.MinGameSpeed)
	}
}

func TestUpgradeLinesShowCostAndAvailability(t *testing.T) {
	g := app.NewGame(app.Options{Seed: 1})
	if err := g.StartGame(); err != nil {
		t.Fatal(err)
	}
	w := g.World
	w.Resources = 50
	w.LaserWeapon.Upgrades[defs.BeamCooldown] = 1
	w.LaserWeapon.Upgrades[defs.BeamRange] = config.MaxBeamPropertyLvl

	lines := upgradeLines(g)
	if len(lines) != len(defs.BeamProperties) {
		t.Fatalf("got %d lines", len(lines))
	}
	want := []string{
		"1 damage           lv  0  40",
		"2 cooldown         lv  1  60 (low)",
		"3 energyEfficiency lv  0  40",
		"4 range            lv 10  MAX",
		"5 beamWidth        lv  0  40",
	}
	for i, l := range lines {
		if l != want[i] {
			t.Errorf("line %d = %q, want %q", i, l, want[i])
		}
	}
	if strings.Contains(lines[0], "low") {
		t.Error("affordable upgrade marked low")
	}
}
