// internal/defs/waves.go
package defs

// TypeThreshold is one bracket of the cumulative type roll.
// The roll selects Type when it falls below Below × difficulty modifier.
type TypeThreshold struct {
	Type  EnemyType
	Below float64
}

// WaveTier unlocks a set of type brackets from MinWave onward.
type WaveTier struct {
	MinWave    int
	Thresholds []TypeThreshold
}

// WaveTiers is ordered from the strongest tier down; the first tier whose
// MinWave is reached decides the brackets. A roll outside every bracket is a scout.
var WaveTiers = []WaveTier{
	{MinWave: 10, Thresholds: []TypeThreshold{
		{EnemyDreadnought, 0.1}, {EnemyCruiser, 0.3}, {EnemyBomber, 0.5}, {EnemyFighter, 0.8},
	}},
	{MinWave: 7, Thresholds: []TypeThreshold{
		{EnemyCruiser, 0.2}, {EnemyBomber, 0.4}, {EnemyFighter, 0.7},
	}},
	{MinWave: 4, Thresholds: []TypeThreshold{
		{EnemyCruiser, 0.1}, {EnemyBomber, 0.3}, {EnemyFighter, 0.6},
	}},
	{MinWave: 2, Thresholds: []TypeThreshold{
		{EnemyFighter, 0.4},
	}},
}

// BehaviorBand is one bracket of the behavior roll, open only past AfterWave.
type BehaviorBand struct {
	Behavior  Behavior
	Below     float64
	AfterWave int
}

// BehaviorBands are evaluated in order; no match means BehaviorDirect.
var BehaviorBands = []BehaviorBand{
	{BehaviorEvasive, 0.2, 0},
	{BehaviorFlanking, 0.4, 0},
	{BehaviorSwarming, 0.6, 3},
	{BehaviorKamikaze, 0.7, 5},
}

// Resistance bonuses by wave.
const (
	ResistanceWaveBonus1     = 0.1 // wave >= 5
	ResistanceWaveBonus1From = 5
	ResistanceWaveBonus2     = 0.2 // wave >= 10
	ResistanceWaveBonus2From = 10
	ResistanceJitter         = 0.1
	MaxResistance            = 0.9
	ShieldedScoutAfterWave   = 8
	ShieldedScoutChance      = 0.2
	ShieldedScoutResistance  = 0.7
)
