package config

// DefaultEnemyType is used when no enemy templates could be loaded
const DefaultEnemyType = "slime"

// DefaultTuning returns the built-in tuning. Keys missing from tuning.json keep these values.
func DefaultTuning() TuningConfig {
	return TuningConfig{
		Display: DisplayConfig{
			ScreenWidth:  1024,
			ScreenHeight: 768,
			Scale:        1,
			Framerate:    60,
		},
		Arena: ArenaConfig{
			Width:       1024,
			Height:      768,
			SpawnMargin: 20,
			WaveDelay:   3.0,
		},
		Player: PlayerConfig{
			MaxHealth:        100,
			MaxMana:          50,
			MoveSpeed:        300,
			ManaRegen:        20,
			ProjectileCost:   5,
			ProjectileSpeed:  500,
			ProjectileDamage: 25,
		},
		Waves: WavesConfig{
			ProceduralType:  DefaultEnemyType,
			BaseCount:       3,
			PerWave:         2,
			MaxCount:        15,
			SpawnDelay:      0,
			SpawnDelayDecay: 0.2,
			MinSpawnDelay:   1.0,
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 0.5,
			SampleRate:   44100,
		},
		Shop: ShopConfig{
			Items: []ShopItem{
				{Name: "Health Upgrade", Price: 50, Description: "Increase max health by 25"},
				{Name: "Damage Boost", Price: 75, Description: "Increase projectile damage by 10"},
				{Name: "Speed Enhancement", Price: 60, Description: "Increase movement speed by 50"},
				{Name: "Mana Expansion", Price: 40, Description: "Increase max mana by 20"},
				{Name: "Rapid Fire", Price: 100, Description: "Reduce mana cost by 2"},
			},
		},
	}
}

// DefaultEnemyConfig returns the values an enemy file falls back to for missing keys
func DefaultEnemyConfig() EnemyConfig {
	return EnemyConfig{
		Health:         50,
		Speed:          100,
		Damage:         20,
		Size:           24,
		Color:          [3]int{100, 255, 100},
		Coins:          5,
		ChaseRange:     300,
		AttackCooldown: 1.0,
		ChaseBlend:     0.3,
		WallBounce:     true,
		OffsetJitter:   20,
		BounceMargin:   10,
		BounceDeflect:  0.3,
	}
}

// DefaultEnemies returns the template set used when enemies/ is empty or unreadable
func DefaultEnemies() map[string]EnemyConfig {
	slime := DefaultEnemyConfig()
	slime.Speed = 80
	slime.AttackCooldown = 1.5
	return map[string]EnemyConfig{DefaultEnemyType: slime}
}
