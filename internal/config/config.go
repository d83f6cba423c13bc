// Package config loads smoothcam's startup configuration: an optional YAML
// file, then environment overrides. Nothing is ever written back.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

type Camera struct {
	YawSpeed     float32    `yaml:"yawSpeed" env:"YAW_SPEED"`
	PitchSpeed   float32    `yaml:"pitchSpeed" env:"PITCH_SPEED"`
	MoveSpeed    float32    `yaml:"moveSpeed" env:"MOVE_SPEED"`
	FollowOffset [3]float32 `yaml:"followOffset"`
}

type Log struct {
	Level string `yaml:"level" env:"LEVEL"`
	File  string `yaml:"file" env:"FILE"`
}

// Demo configures the interactive host in cmd/camdemo.
type Demo struct {
	Scene        string `yaml:"scene" env:"SCENE"`
	Script       string `yaml:"script" env:"SCRIPT"`
	ToggleHotkey int32  `yaml:"toggleHotkey" env:"TOGGLE_HOTKEY"`
	HideHotkey   int32  `yaml:"hideHotkey" env:"HIDE_HOTKEY"`
	Width        int32  `yaml:"width" env:"WIDTH"`
	Height       int32  `yaml:"height" env:"HEIGHT"`
	TargetFPS    int32  `yaml:"targetFPS" env:"TARGET_FPS"`
}

type Config struct {
	Log    Log    `yaml:"log" envPrefix:"LOG_"`
	Camera Camera `yaml:"camera" envPrefix:"CAMERA_"`
	Demo   Demo   `yaml:"demo" envPrefix:"DEMO_"`
}

// EnvPrefix prefixes every environment variable Load reads.
const EnvPrefix = "SMOOTHCAM_"

// Raylib key codes for Home and End.
const (
	KeyHome int32 = 268
	KeyEnd  int32 = 269
)

func Default() Config {
	return Config{
		Log: Log{Level: "info"},
		Camera: Camera{
			YawSpeed:     1.0,
			PitchSpeed:   0.1,
			MoveSpeed:    3.0,
			FollowOffset: [3]float32{0, 0, 500},
		},
		Demo: Demo{
			ToggleHotkey: KeyHome,
			HideHotkey:   KeyEnd,
			Width:        1280,
			Height:       720,
			TargetFPS:    60,
		},
	}
}

// Load starts from Default, applies the YAML file at path if it exists, then
// applies SMOOTHCAM_* environment variables. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func (c Config) Validate() error {
	if c.Camera.YawSpeed < 0 || c.Camera.PitchSpeed < 0 || c.Camera.MoveSpeed < 0 {
		return fmt.Errorf("camera speeds must not be negative: yaw=%v pitch=%v move=%v",
			c.Camera.YawSpeed, c.Camera.PitchSpeed, c.Camera.MoveSpeed)
	}
	if c.Demo.Width <= 0 || c.Demo.Height <= 0 {
		return fmt.Errorf("demo window size must be positive: %dx%d", c.Demo.Width, c.Demo.Height)
	}
	return nil
}
