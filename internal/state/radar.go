// internal/state/radar.go
package state

import (
	"image/color"
	"math"
	"time"

	"interstellar-defense/internal/component"
	"interstellar-defense/internal/config"
	"interstellar-defense/internal/defs"
	"interstellar-defense/internal/entity"
	"interstellar-defense/internal/types"
	"interstellar-defense/internal/ui"
	"interstellar-defense/pkg/vec3"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Радар — вид сверху на плоскость XZ, планета в центре экрана.
const (
	radarCenterX = config.ScreenWidth / 2
	radarCenterY = config.ScreenHeight / 2
	pickRadius   = 0.8 // мировых единиц вокруг курсора для выбора цели
)

var (
	backgroundColor = color.RGBA{8, 10, 20, 255}
	ringColor       = color.RGBA{40, 60, 80, 255}
	planetColor     = color.RGBA{40, 120, 200, 255}
	shieldColor     = color.RGBA{64, 128, 255, 255}
	asteroidColor   = color.RGBA{130, 120, 110, 255}
	turretColor     = color.RGBA{136, 0, 255, 255}
	scannerColor    = color.RGBA{0, 255, 255, 255}
	pathColor       = color.RGBA{120, 40, 40, 255}
	targetColor     = color.RGBA{255, 255, 255, 255}
	beamAimColor    = color.RGBA{255, 0, 0, 160}
)

var enemyColors = map[defs.EnemyType]color.RGBA{
	defs.EnemyScout:       {255, 220, 80, 255},
	defs.EnemyFighter:     {255, 140, 40, 255},
	defs.EnemyBomber:      {220, 60, 60, 255},
	defs.EnemyCruiser:     {200, 60, 200, 255},
	defs.EnemyDreadnought: {255, 255, 255, 255},
}

var enemyRadius = map[defs.EnemyType]float32{
	defs.EnemyScout:       3,
	defs.EnemyFighter:     4,
	defs.EnemyBomber:      5,
	defs.EnemyCruiser:     6,
	defs.EnemyDreadnought: 8,
}

var powerUpColors = map[defs.PowerUpType]color.RGBA{
	defs.PowerUpHealth:    {0, 255, 0, 255},
	defs.PowerUpResources: {255, 255, 0, 255},
	defs.PowerUpShield:    {64, 128, 255, 255},
	defs.PowerUpDamage:    {255, 0, 255, 255},
}

// toScreen проецирует мировую точку на экран (Y отбрасывается).
func toScreen(p vec3.Vec3) (float32, float32) {
	return float32(radarCenterX + p.X*config.WorldScale), float32(radarCenterY + p.Z*config.WorldScale)
}

// toWorld: обратная проекция, точка кладётся в плоскость Y = 0.
func toWorld(x, y int) vec3.Vec3 {
	return vec3.New(
		(float64(x)-radarCenterX)/config.WorldScale,
		0,
		(float64(y)-radarCenterY)/config.WorldScale,
	)
}

func radius(worldUnits float64) float32 {
	return float32(worldUnits * config.WorldScale)
}

// enemyAt returns the enemy closest to p in the XZ plane within pickRadius.
func enemyAt(w *entity.World, p vec3.Vec3) (types.EntityID, bool) {
	var (
		best    types.EntityID
		found   bool
		nearest = pickRadius
	)
	for _, id := range w.EnemyIDs() {
		if d := vec3.DistanceXZ(w.Enemies[id].Position, p); d <= nearest {
			best, found, nearest = id, true, d
		}
	}
	return best, found
}

// clampToRange укорачивает вектор от планеты до limit.
func clampToRange(p vec3.Vec3, limit float64) vec3.Vec3 {
	if l := p.Length(); l > limit && l > 0 {
		return p.Scale(limit / l)
	}
	return p
}

func drawRings(screen *ebiten.Image, w *entity.World) {
	cx, cy := float32(radarCenterX), float32(radarCenterY)
	vector.StrokeCircle(screen, cx, cy, radius(config.SpawnRadius), 1, ringColor, true)
	vector.StrokeCircle(screen, cx, cy, radius(config.RangedAttackRange), 1, ringColor, true)
	if w.Scanner.Active {
		vector.StrokeCircle(screen, cx, cy, radius(w.Scanner.Range), 1, ui.Fade(scannerColor, 0.4), true)
	}
}

func drawPlanet(screen *ebiten.Image, w *entity.World) {
	cx, cy := float32(radarCenterX), float32(radarCenterY)
	vector.DrawFilledCircle(screen, cx, cy, radius(config.PlanetImpactRange), planetColor, true)
	if w.ShieldActive {
		vector.StrokeCircle(screen, cx, cy, radius(config.PlanetImpactRange)+4, 2, shieldColor, true)
	}
}

func drawAsteroids(screen *ebiten.Image, w *entity.World) {
	for _, id := range entity.SortedIDs(w.Asteroids) {
		a := w.Asteroids[id]
		x, y := toScreen(a.Position)
		c := asteroidColor
		if a.Resources <= 0 {
			c = ui.Fade(c, 0.3)
		}
		vector.DrawFilledCircle(screen, x, y, float32(2+a.Size*4), c, true)
	}
}

func drawPowerUps(screen *ebiten.Image, w *entity.World) {
	for _, id := range entity.SortedIDs(w.PowerUps) {
		p := w.PowerUps[id]
		x, y := toScreen(p.Position)
		vector.DrawFilledRect(screen, x-3, y-3, 6, 6, powerUpColors[p.Type], true)
	}
}

func drawTurrets(screen *ebiten.Image, w *entity.World, targets map[types.EntityID]types.EntityID) {
	for _, id := range entity.SortedIDs(w.Turrets) {
		t := w.Turrets[id]
		x, y := toScreen(t.Position)
		vector.StrokeCircle(screen, x, y, radius(t.Range), 1, ui.Fade(turretColor, 0.3), true)
		vector.DrawFilledRect(screen, x-4, y-4, 8, 8, turretColor, true)
		if eid, ok := targets[id]; ok {
			if e, ok := w.Enemies[eid]; ok {
				ex, ey := toScreen(e.Position)
				vector.StrokeLine(screen, x, y, ex, ey, 1, ui.Fade(turretColor, 0.6), true)
			}
		}
	}
}

func drawPaths(screen *ebiten.Image, paths map[types.EntityID][]vec3.Vec3) {
	for _, id := range entity.SortedIDs(paths) {
		path := paths[id]
		for i := 1; i < len(path); i++ {
			x0, y0 := toScreen(path[i-1])
			x1, y1 := toScreen(path[i])
			vector.StrokeLine(screen, x0, y0, x1, y1, 1, pathColor, true)
		}
	}
}

func drawEnemies(screen *ebiten.Image, w *entity.World, optimal []types.EntityID, sweeping func(types.EntityID) float64) {
	for _, id := range w.EnemyIDs() {
		e := w.Enemies[id]
		x, y := toScreen(e.Position)
		r := enemyRadius[e.Type]
		vector.DrawFilledCircle(screen, x, y, r, enemyColors[e.Type], true)

		if e.LaserResistance > 0 && w.Scanner.ScannedEnemies[id] {
			// раскрытый щит
			vector.StrokeCircle(screen, x, y, r+3, 1, ui.Fade(shieldColor, 0.4+0.6*e.LaserResistance), true)
		}
		if p := sweeping(id); p > 0 {
			vector.StrokeLine(screen, x-r, y+r+3, x-r+2*r*float32(p), y+r+3, 2, scannerColor, true)
		}
		if e.MaxHealth > 0 && e.Health < e.MaxHealth {
			frac := float32(e.Health / e.MaxHealth)
			vector.DrawFilledRect(screen, x-r, y-r-4, 2*r*frac, 2, color.RGBA{0, 255, 0, 255}, true)
		}
	}
	if len(optimal) > 0 {
		if e, ok := w.Enemies[optimal[0]]; ok {
			x, y := toScreen(e.Position)
			vector.StrokeCircle(screen, x, y, enemyRadius[e.Type]+6, 1, targetColor, true)
		}
	}
}

func drawExplosions(screen *ebiten.Image, w *entity.World, now time.Time) {
	for _, id := range entity.SortedIDs(w.Explosions) {
		ex := w.Explosions[id]
		c, err := ui.ParseHexColor(ex.Color)
		if err != nil {
			continue
		}
		age := explosionAge(ex, now)
		x, y := toScreen(ex.Position)
		r := radius(ex.Scale) * float32(0.5+0.5*age)
		vector.DrawFilledCircle(screen, x, y, r, ui.Fade(c, 0.8*(1-age)), true)
	}
}

// explosionAge returns how far through its lifetime ex is, in [0, 1].
func explosionAge(ex *component.Explosion, now time.Time) float64 {
	if ex.Duration <= 0 {
		return 1
	}
	age := now.Sub(ex.CreatedAt).Seconds() / ex.Duration.Seconds()
	return math.Max(0, math.Min(1, age))
}

func drawBeamAim(screen *ebiten.Image, w *entity.World, cursor vec3.Vec3) {
	if !w.LaserWeapon.IsAiming {
		return
	}
	end := clampToRange(cursor, w.LaserWeapon.Range)
	x, y := toScreen(end)
	vector.StrokeLine(screen, radarCenterX, radarCenterY, x, y, float32(math.Max(1, w.LaserWeapon.BeamWidth*20)), beamAimColor, true)
}
