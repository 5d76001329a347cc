// Package config loads ggbridge settings with viper from defaults, an
// optional YAML file, GGBRIDGE_ environment variables and bound flags.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gogpu/ggbridge"
	"github.com/gogpu/ggbridge/camera"
	"github.com/gogpu/ggbridge/command"
	"github.com/gogpu/ggbridge/text"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. GGBRIDGE_TEXT_SIZE.
const EnvPrefix = "GGBRIDGE"

// Config is the full ggbridge configuration.
type Config struct {
	Width         int           `mapstructure:"width"`
	Height        int           `mapstructure:"height"`
	Frames        int           `mapstructure:"frames"`
	FrameInterval time.Duration `mapstructure:"frame_interval"`
	Backend       string        `mapstructure:"backend"`

	Text    TextConfig    `mapstructure:"text"`
	Canvas  CanvasConfig  `mapstructure:"canvas"`
	Camera  CameraConfig  `mapstructure:"camera"`
	Log     LogConfig     `mapstructure:"log"`
	Inspect InspectConfig `mapstructure:"inspect"`
	Output  OutputConfig  `mapstructure:"output"`
}

type TextConfig struct {
	Size      float64 `mapstructure:"size"`
	Font      string  `mapstructure:"font"`
	Shaper    string  `mapstructure:"shaper"`
	CacheSize int     `mapstructure:"cache_size"`
}

type CanvasConfig struct {
	Background   string  `mapstructure:"background"`
	CornerRadius float64 `mapstructure:"corner_radius"`
}

type CameraConfig struct {
	Policy string `mapstructure:"policy"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type InspectConfig struct {
	Addr string `mapstructure:"addr"`
}

type OutputConfig struct {
	Dir string `mapstructure:"dir"`
}

// SetDefaults registers the default of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("width", 640)
	v.SetDefault("height", 480)
	v.SetDefault("frames", 1)
	v.SetDefault("frame_interval", ggbridge.DefaultFrameInterval)
	v.SetDefault("backend", "gg")
	v.SetDefault("text.size", 12.0)
	v.SetDefault("text.font", "")
	v.SetDefault("text.shaper", string(text.ShaperXImage))
	v.SetDefault("text.cache_size", 512)
	v.SetDefault("canvas.background", "#ffffff")
	v.SetDefault("canvas.corner_radius", float64(ggbridge.DefaultCornerRadius))
	v.SetDefault("camera.policy", camera.PolicyClamp.String())
	v.SetDefault("log.level", "info")
	v.SetDefault("inspect.addr", "")
	v.SetDefault("output.dir", ".")
}

// New returns a viper instance with defaults and environment overrides set
// up. When file is not empty it is used as the config file, otherwise
// .ggbridge.yaml is searched in the working directory.
func New(file string) *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".ggbridge")
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// ReadFile reads the config file of v. A missing default file is not an
// error; a missing explicit file is.
func ReadFile(v *viper.Viper) error {
	err := v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return nil
	}
	return err
}

// Load decodes and validates the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &c, nil
}

// BackgroundColor parses Canvas.Background.
func (c *Config) BackgroundColor() (command.Color, error) {
	return command.ParseHexColor(c.Canvas.Background)
}

// CameraPolicy parses Camera.Policy.
func (c *Config) CameraPolicy() (camera.Policy, error) {
	return camera.ParsePolicy(c.Camera.Policy)
}

// Shaper parses Text.Shaper.
func (c *Config) Shaper() (text.Shaper, error) {
	return text.ParseShaper(c.Text.Shaper)
}

// LogLevel parses Log.Level.
func (c *Config) LogLevel() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo, err
	}
	return l, nil
}
