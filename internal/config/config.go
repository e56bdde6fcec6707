// internal/config/config.go
package config

import "time"

const (
	ScreenWidth  = 1000
	ScreenHeight = 760
	WorldScale   = 22.0 // пикселей на единицу мира в радаре

	TickInterval      = 16 * time.Millisecond
	MaxDeltaTime      = 0.06
	BroadcastInterval = 100 * time.Millisecond // снапшоты по websocket

	MinGameSpeed = 0.5
	MaxGameSpeed = 2.0

	// Planet & economy
	MaxPlanetHealth   = 100.0
	InitialResources  = 100.0
	MaxResources      = 200.0
	ResourceRegenRate = 0.5
	RegenTimeScale    = 10.0 // regen, shield countdown and movement all scale dt by this
	PlanetImpactRange = 1.2
	RangedAttackRange = 8.0

	// Waves
	MaxEnemiesPerWave   = 30
	EnemiesPerWaveScale = 1.5
	SpawnRadius         = 15.0
	SpawnFlatten        = 0.5
	WaveBonusResources  = 50.0
	WaveBonusPerWave    = 10.0
	WaveScorePerWave    = 100
	WavePowerUpChance   = 0.3
	WavePowerUpRadius   = 10.0
	WavePowerUpHeight   = 4.0
	SwarmRadius         = 3.0
	EvasiveAmplitude    = 0.3
	FlankingBias        = 0.5
	SwarmBlend          = 0.2
	KamikazeBoost       = 1.5

	// Power-ups
	PowerUpSpeed            = 0.03 // per tick, scaled by gameSpeed only
	PowerUpCollectRadius    = 2.0
	PowerUpDuration         = 10.0
	DamagePowerUpMultiplier = 1.5

	// Asteroids
	AsteroidCount       = 12
	AsteroidMinDistance = 5.0
	AsteroidDistanceVar = 3.0
	AsteroidMinRes      = 50
	AsteroidResVar      = 50
	MiningYield         = 10.0

	// Command costs
	FireCost             = 10.0
	FireDamage           = 20.0
	RepairCost           = 20.0
	RepairAmount         = 15.0
	TechUpgradeCost      = 50.0
	TechUpgradeScore     = 50
	MaxTechLevel         = 10
	TurretCost           = 40.0
	TurretRange          = 5.0
	TurretBaseDamage     = 10.0
	TurretFireRate       = 1.0
	TurretScore          = 30
	ShieldCost           = 30.0
	ShieldBaseDuration   = 10.0
	ShieldScore          = 20
	QuickBeamCost        = 60.0
	QuickBeamCooldownMin = 500 * time.Millisecond
	BeamPropertyBase     = 40.0
	BeamPropertyStep     = 0.5
	BeamLevelEvery       = 3
	MaxBeamPropertyLvl   = 10
	ScannerUpgradeCost   = 50.0
	ScannerUpgradeScore  = 50
	MaxScannerLevel      = 10
	ScanCompleteScore    = 10

	// Beam weapon
	BeamDamage         = 50.0
	BeamCooldown       = 1000 * time.Millisecond
	BeamEnergyCost     = 20.0
	BeamRange          = 15.0
	BeamWidth          = 0.1
	BeamAccuracy       = 0.9
	BeamToleranceSq    = 0.5 // squared perpendicular tolerance at base width
	BeamPowerPerLevel  = 0.5
	ShieldImpactMinRes = 0.3

	// Scanner
	ScannerCooldown    = 5000 * time.Millisecond
	ScannerCooldownMin = 1000 * time.Millisecond
	ScannerRange       = 10.0
	ScannerEnergyCost  = 15.0

	// Threat advisor
	AdvisorDebounce   = 500 * time.Millisecond
	PredictionSteps   = 10
	PredictionStep    = 100 * time.Millisecond
	ThreatDistanceRef = 20.0
)

// Цвета вспышек (hex-строки для внешнего рендера).
const (
	ColorImpact       = "#ff4400"
	ColorAttack       = "#ff0000"
	ColorKillDirect   = "#ff8800"
	ColorKillBeam     = "#ff0000"
	ColorHealth       = "#00ff00"
	ColorResources    = "#ffff00"
	ColorShield       = "#4080ff"
	ColorDamage       = "#ff00ff"
	ColorUpgrade      = "#ffff00"
	ColorBeamUpgrade  = "#ff00ff"
	ColorMining       = "#88aaff"
	ColorTurret       = "#8800ff"
	ColorBeam         = "#ff0000"
	ColorShieldHitLow = "#aa00ff"
	ColorShieldHitHi  = "#ff00ff"
	ColorScanner      = "#00ffff"
	ColorGameOver     = "#ff0000"
)
