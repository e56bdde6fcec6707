// internal/event/types.go
package event

import (
	"interstellar-defense/internal/defs"
	"interstellar-defense/internal/types"
	"interstellar-defense/pkg/vec3"
)

const (
	WaveStarted      EventType = "WaveStarted"      // Новая волна заспавнена
	WaveCleared      EventType = "WaveCleared"      // Все враги волны уничтожены
	EnemyDestroyed   EventType = "EnemyDestroyed"   // Враг убит оружием
	EnemyImpact      EventType = "EnemyImpact"      // Враг врезался в планету
	PlanetAttacked   EventType = "PlanetAttacked"   // Дальняя атака по планете
	PowerUpCollected EventType = "PowerUpCollected" // Бонус долетел до планеты
	TurretPlaced     EventType = "TurretPlaced"
	ScanCompleted    EventType = "ScanCompleted"
	GameOver         EventType = "GameOver"
)

// All lists every event type, for subscribers that forward everything.
var All = []EventType{
	WaveStarted, WaveCleared, EnemyDestroyed, EnemyImpact, PlanetAttacked,
	PowerUpCollected, TurretPlaced, ScanCompleted, GameOver,
}

// WaveData accompanies WaveStarted and WaveCleared.
type WaveData struct {
	Wave    int `json:"wave"`
	Enemies int `json:"enemies"`
}

// EnemyData accompanies enemy-related events.
type EnemyData struct {
	ID       types.EntityID `json:"id"`
	Type     defs.EnemyType `json:"type"`
	Position vec3.Vec3      `json:"position"`
	Damage   float64        `json:"damage,omitempty"` // урон планете для Impact/Attacked
}

// PowerUpData accompanies PowerUpCollected.
type PowerUpData struct {
	Type  defs.PowerUpType `json:"type"`
	Value float64          `json:"value"`
}

// GameOverData accompanies GameOver.
type GameOverData struct {
	Wave  int `json:"wave"`
	Score int `json:"score"`
}
