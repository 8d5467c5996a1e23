package config

// ApplyPreset modifies the config based on a difficulty preset.
// Normal leaves the loaded values untouched.
func ApplyPreset(cfg *FroggerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Cars.MinDelayMs = scaleMs(cfg.Cars.MinDelayMs, 3, 2)
		cfg.Cars.MaxDelayMs = scaleMs(cfg.Cars.MaxDelayMs, 3, 2)
		cfg.Stork.Enabled = false
	case DifficultyHard:
		cfg.Cars.MinDelayMs = scaleMs(cfg.Cars.MinDelayMs, 2, 3)
		cfg.Cars.MaxDelayMs = scaleMs(cfg.Cars.MaxDelayMs, 2, 3)
		cfg.Cars.Categories.Friendly = cfg.Cars.Categories.Friendly / 2
		cfg.Stork.Enabled = true
		cfg.Stork.DelayMs = max(1, int(cfg.Stork.Delay(cfg.Player.JumpDelay()).Milliseconds())*3/4)
	case DifficultyClassic:
		cfg.Stork.Enabled = false
		cfg.Cars.Categories = CategoriesConfig{}
	}
}

// scaleMs multiplies a delay by num/den, never dropping below 1ms.
func scaleMs(ms, num, den int) int {
	return max(1, ms*num/den)
}
