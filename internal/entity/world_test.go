package entity

import (
	"testing"

	"interstellar-defense/internal/component"
	"interstellar-defense/internal/config"
	"interstellar-defense/internal/defs"
)

func TestSpendIsAllOrNothing(t *testing.T) {
	w := NewWorld()
	w.Resources = 25
	if w.Spend(30) {
		t.Fatalf("Spend(30) with 25 resources succeeded")
	}
	if w.Resources != 25 {
		t.Fatalf("resources = %v after rejected spend, want 25", w.Resources)
	}
	if !w.Spend(25) || w.Resources != 0 {
		t.Fatalf("Spend(25) failed or left %v", w.Resources)
	}
}

func TestClampedScalars(t *testing.T) {
	w := NewWorld()
	w.AddResources(1e6)
	if w.Resources != config.MaxResources {
		t.Fatalf("resources = %v, want cap %v", w.Resources, config.MaxResources)
	}
	w.DamagePlanet(250)
	if w.PlanetHealth != 0 {
		t.Fatalf("planet health = %v, want 0", w.PlanetHealth)
	}
	w.HealPlanet(500)
	if w.PlanetHealth != config.MaxPlanetHealth {
		t.Fatalf("planet health = %v, want %v", w.PlanetHealth, config.MaxPlanetHealth)
	}
}

func TestCloneIsDeep(t *testing.T) {
	w := NewWorld()
	id := w.NewEntity()
	w.Enemies[id] = &component.Enemy{ID: id, Type: defs.EnemyScout, Health: 30, MaxHealth: 30}
	w.Scanner.ScannedEnemies[id] = true

	c := w.Clone()
	c.Enemies[id].Health = 1
	c.LaserWeapon.Upgrades[defs.BeamDamage] = 9
	delete(c.Scanner.ScannedEnemies, id)

	if w.Enemies[id].Health != 30 {
		t.Fatalf("clone shares enemy storage")
	}
	if w.LaserWeapon.Upgrades[defs.BeamDamage] != 1 {
		t.Fatalf("clone shares beam upgrade map")
	}
	if !w.Scanner.ScannedEnemies[id] {
		t.Fatalf("clone shares scanned set")
	}
}

func TestRemoveEnemyForgetsScan(t *testing.T) {
	w := NewWorld()
	id := w.NewEntity()
	w.Enemies[id] = &component.Enemy{ID: id}
	w.Scanner.ScannedEnemies[id] = true
	w.RemoveEnemy(id)
	if _, ok := w.Enemies[id]; ok || w.Scanner.ScannedEnemies[id] {
		t.Fatalf("enemy %d still tracked after removal", id)
	}
}

func TestEnemyIDsSorted(t *testing.T) {
	w := NewWorld()
	for i := 0; i < 20; i++ {
		id := w.NewEntity()
		w.Enemies[id] = &component.Enemy{ID: id}
	}
	ids := w.EnemyIDs()
	for i := 1; i < len(ids); i++ {
		if ids[i-1] >= ids[i] {
			t.Fatalf("ids not ascending: %v", ids)
		}
	}
}
