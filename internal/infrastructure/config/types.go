package config

// TuningConfig is the root config for tuning.json
type TuningConfig struct {
	Display DisplayConfig `json:"display"`
	Arena   ArenaConfig   `json:"arena"`
	Player  PlayerConfig  `json:"player"`
	Waves   WavesConfig   `json:"waves"`
	Audio   AudioConfig   `json:"audio"`
	Shop    ShopConfig    `json:"shop"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screen_width"`
	ScreenHeight int `json:"screen_height"`
	Scale        int `json:"scale"`
	Framerate    int `json:"framerate"`
}

// ArenaConfig configures the playfield
type ArenaConfig struct {
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	SpawnMargin float64 `json:"spawn_margin"` // Keeps edge spawns away from the corners (pixels)
	WaveDelay   float64 `json:"wave_delay"`   // Pause between a cleared wave and the next (seconds)
}

type PlayerConfig struct {
	MaxHealth        int     `json:"max_health"`
	MaxMana          float64 `json:"max_mana"`
	MoveSpeed        float64 `json:"move_speed"`
	ManaRegen        float64 `json:"mana_regen"`
	ProjectileCost   float64 `json:"projectile_cost"`
	ProjectileSpeed  float64 `json:"projectile_speed"`
	ProjectileDamage int     `json:"projectile_damage"`
}

// WavesConfig drives procedurally generated waves.
//
// Enemy count is min(BaseCount + PerWave*n, MaxCount).
// Spawn delay is max(MinSpawnDelay, SpawnDelay - SpawnDelayDecay*n),
// or 0 (everything at once) when SpawnDelay is 0.
type WavesConfig struct {
	ProceduralType  string  `json:"procedural_type"`
	BaseCount       int     `json:"base_count"`
	PerWave         int     `json:"per_wave"`
	MaxCount        int     `json:"max_count"`
	SpawnDelay      float64 `json:"spawn_delay"`
	SpawnDelayDecay float64 `json:"spawn_delay_decay"`
	MinSpawnDelay   float64 `json:"min_spawn_delay"`
}

type AudioConfig struct {
	Enabled      bool    `json:"enabled"`
	MasterVolume float64 `json:"master_volume"` // 0..1
	SampleRate   int     `json:"sample_rate"`
}

type ShopConfig struct {
	Items []ShopItem `json:"items"`
}

type ShopItem struct {
	Name        string `json:"name"`
	Price       int    `json:"price"`
	Description string `json:"description"`
}
