package entity

import (
	"sort"
	"time"

	"interstellar-defense/internal/component"
	"interstellar-defense/internal/config"
	"interstellar-defense/internal/defs"
	"interstellar-defense/internal/types"
	"interstellar-defense/pkg/vec3"
)

// World — единственный изменяемый агрегат симуляции.
// Всеми записями в коллекциях владеет World; идентичность по ID.
type World struct {
	NextID types.EntityID `json:"-"`

	Wave              int                `json:"wave"`
	PlanetHealth      float64            `json:"planetHealth"`
	Resources         float64            `json:"resources"`
	MaxResources      float64            `json:"maxResources"`
	ResourceRegenRate float64            `json:"resourceRegenRate"`
	GameSpeed         float64            `json:"gameSpeed"`
	TechTree          component.TechTree `json:"techTree"`
	Difficulty        defs.Difficulty    `json:"difficulty"`
	Paused            bool               `json:"paused"`
	GameOver          bool               `json:"gameOver"`
	Score             int                `json:"score"`

	Enemies    map[types.EntityID]*component.Enemy     `json:"enemies"`
	Turrets    map[types.EntityID]*component.Turret    `json:"turrets"`
	Asteroids  map[types.EntityID]*component.Asteroid  `json:"asteroids"`
	PowerUps   map[types.EntityID]*component.PowerUp   `json:"powerUps"`
	Explosions map[types.EntityID]*component.Explosion `json:"explosions"`

	ShieldActive   bool    `json:"shieldActive"`
	ShieldDuration float64 `json:"shieldDuration"`

	LaserWeapon component.LaserWeapon `json:"laserWeapon"`
	Scanner     component.Scanner     `json:"scanner"`
}

// NewWorld returns a world in its pre-start state with empty collections.
func NewWorld() *World {
	return &World{
		NextID:            1,
		PlanetHealth:      config.MaxPlanetHealth,
		Resources:         config.InitialResources,
		MaxResources:      config.MaxResources,
		ResourceRegenRate: config.ResourceRegenRate,
		GameSpeed:         1.0,
		TechTree:          component.NewTechTree(),
		Difficulty:        defs.DifficultyNormal,
		Enemies:           make(map[types.EntityID]*component.Enemy),
		Turrets:           make(map[types.EntityID]*component.Turret),
		Asteroids:         make(map[types.EntityID]*component.Asteroid),
		PowerUps:          make(map[types.EntityID]*component.PowerUp),
		Explosions:        make(map[types.EntityID]*component.Explosion),
		LaserWeapon:       component.NewLaserWeapon(),
		Scanner:           component.NewScanner(),
	}
}

func (w *World) NewEntity() types.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

// Active reports whether gameplay systems and charged commands may run.
func (w *World) Active() bool {
	return !w.Paused && !w.GameOver
}

// AddResources credits amount, clamped to [0, MaxResources].
func (w *World) AddResources(amount float64) {
	w.Resources = clamp(w.Resources+amount, 0, w.MaxResources)
}

// CanAfford reports whether cost can be paid in full.
func (w *World) CanAfford(cost float64) bool {
	return w.Resources >= cost
}

// Spend deducts cost if affordable. Either the whole cost is paid or nothing.
func (w *World) Spend(cost float64) bool {
	if !w.CanAfford(cost) {
		return false
	}
	w.Resources -= cost
	return true
}

// DamagePlanet removes health, never below zero.
func (w *World) DamagePlanet(amount float64) {
	w.PlanetHealth = clamp(w.PlanetHealth-amount, 0, config.MaxPlanetHealth)
}

// HealPlanet restores health, never above the maximum.
func (w *World) HealPlanet(amount float64) {
	w.PlanetHealth = clamp(w.PlanetHealth+amount, 0, config.MaxPlanetHealth)
}

// RemoveEnemy deletes an enemy and forgets its scan record.
func (w *World) RemoveEnemy(id types.EntityID) {
	delete(w.Enemies, id)
	delete(w.Scanner.ScannedEnemies, id)
}

// AddExplosion records a visual event at now and returns its id.
func (w *World) AddExplosion(kind component.ExplosionKind, pos vec3.Vec3, scale float64, duration time.Duration, color string, now time.Time) types.EntityID {
	id := w.NewEntity()
	w.Explosions[id] = &component.Explosion{
		ID:        id,
		Kind:      kind,
		Position:  pos,
		Scale:     scale,
		Duration:  duration,
		Color:     color,
		CreatedAt: now,
	}
	return id
}

// EnemyIDs returns enemy ids in ascending order. Systems iterate in this
// order so seeded runs replay identically.
func (w *World) EnemyIDs() []types.EntityID {
	return SortedIDs(w.Enemies)
}

// SortedIDs returns the keys of m in ascending order.
func SortedIDs[V any](m map[types.EntityID]V) []types.EntityID {
	ids := make([]types.EntityID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
