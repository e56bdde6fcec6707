// internal/defs/loot_tables.go
package defs

// LootEntry представляет одну запись в таблице выпадения бонусов.
// Weight — относительный шанс выпадения.
type LootEntry struct {
	PowerUp PowerUpType `json:"power_up"`
	Weight  int         `json:"weight"`
}

// PowerUpDropTable — равновероятный выбор типа бонуса.
var PowerUpDropTable = []LootEntry{
	{PowerUp: PowerUpHealth, Weight: 1},
	{PowerUp: PowerUpResources, Weight: 1},
	{PowerUp: PowerUpShield, Weight: 1},
	{PowerUp: PowerUpDamage, Weight: 1},
}

// PowerUpValues maps a power-up type to its effect magnitude.
type PowerUpValues map[PowerUpType]float64

// WaveClearPowerUps are granted by the 30% roll on clearing a wave.
var WaveClearPowerUps = PowerUpValues{
	PowerUpHealth:    25,
	PowerUpResources: 50,
	PowerUpShield:    15,
	PowerUpDamage:    10,
}

// KillDropPowerUps are dropped at the position of a destroyed enemy.
var KillDropPowerUps = PowerUpValues{
	PowerUpHealth:    15,
	PowerUpResources: 30,
	PowerUpShield:    10,
	PowerUpDamage:    5,
}
