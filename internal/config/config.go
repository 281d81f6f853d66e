package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env-default:"info"`
	HTTPPort string `yaml:"http-port" env-default:"9090"`
	Game     Game   `yaml:"game"`
}

// Game holds the defaults applied when a start request leaves a field
// empty, plus the AI pacing and seeding knobs.
type Game struct {
	Mode         string `yaml:"mode" env-default:"human_vs_ai"`
	AIDifficulty string `yaml:"ai-difficulty" env-default:"hard"`
	HumanMark    string `yaml:"human-mark" env-default:"X"`
	AIDelayMS    int    `yaml:"ai-delay-ms" env-default:"300"`
	RandomSeed   int64  `yaml:"random-seed" env-default:"0"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}
