package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"ringrace/internal/race"
)

// FileName is the optional JSON config file looked up in the config dir.
const FileName = "ringrace.cfg.json"

// EnvPrefix namespaces environment overrides, e.g. RINGRACE_SEED or
// RINGRACE_TUNING_BASESPEED.
const EnvPrefix = "RINGRACE"

// WindowConfig holds desktop window settings.
type WindowConfig struct {
	Width  int    `json:"width" mapstructure:"width"`
	Height int    `json:"height" mapstructure:"height"`
	Title  string `json:"title" mapstructure:"title"`
	VSync  bool   `json:"vsync" mapstructure:"vsync"`
}

// AudioConfig holds sound settings shared by the desktop and terminal frontends.
type AudioConfig struct {
	Enabled bool    `json:"enabled" mapstructure:"enabled"`
	Volume  float64 `json:"volume" mapstructure:"volume"`
}

// HeadlessConfig drives the autopilot run.
type HeadlessConfig struct {
	Step      time.Duration
	MaxFrames int
	Resets    int
}

// LoggingConfig holds log level, file and remote sink settings.
type LoggingConfig struct {
	Level          string
	LogsDir        string
	ToFile         bool
	GraylogEnabled bool
	GraylogAddress string
}

// Load sets defaults, binds environment overrides and reads the config file
// from configDir. A missing file is not an error.
func Load(configDir string) error {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logsDir", "./ringracelogs")
	viper.SetDefault("logToFile", false)
	viper.SetDefault("frontend", "desktop")
	viper.SetDefault("seed", 0)

	viper.SetDefault("graylog.enabled", false)
	viper.SetDefault("graylog.address", "localhost:12201")

	viper.SetDefault("window.width", 1280)
	viper.SetDefault("window.height", 800)
	viper.SetDefault("window.title", "Ring Race")
	viper.SetDefault("window.vsync", true)

	viper.SetDefault("audio.enabled", true)
	viper.SetDefault("audio.volume", 0.58)

	viper.SetDefault("headless.stepMs", 16)
	viper.SetDefault("headless.maxFrames", 200000)
	viper.SetDefault("headless.resets", 0)

	d := race.DefaultTuning()
	viper.SetDefault("tuning.centerRadius", d.CenterRadius)
	viper.SetDefault("tuning.halfWidth", d.HalfWidth)
	viper.SetDefault("tuning.margin", d.Margin)
	viper.SetDefault("tuning.baseSpeed", d.BaseSpeed)
	viper.SetDefault("tuning.accelMultiplier", d.AccelMultiplier)
	viper.SetDefault("tuning.decelMultiplier", d.DecelMultiplier)
	viper.SetDefault("tuning.steerStep", d.SteerStep)
	viper.SetDefault("tuning.collisionPenalty", d.CollisionPenalty)
	viper.SetDefault("tuning.baseDrain", d.BaseDrain)
	viper.SetDefault("tuning.accelerateDrain", d.AccelerateDrain)
	viper.SetDefault("tuning.decelerateRegen", d.DecelerateRegen)
	viper.SetDefault("tuning.healthMax", d.HealthMax)
	viper.SetDefault("tuning.fuelMax", d.FuelMax)
	viper.SetDefault("tuning.distanceInitial", d.DistanceInitial)
	viper.SetDefault("tuning.distanceScale", d.DistanceScale)
	viper.SetDefault("tuning.spawnBand", d.SpawnBand)
	viper.SetDefault("tuning.carSpeedMin", d.CarSpeedMin)
	viper.SetDefault("tuning.carSpeedMax", d.CarSpeedMax)
	viper.SetDefault("tuning.truckSpeedMin", d.TruckSpeedMin)
	viper.SetDefault("tuning.truckSpeedMax", d.TruckSpeedMax)
	viper.SetDefault("tuning.pickupCount", d.PickupCount)
	viper.SetDefault("tuning.maxStepMs", d.MaxStep.Milliseconds())

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetConfigName(FileName)
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}

	return nil
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value.
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value.
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetSeed returns the configured seed, or the clock when none is set.
func GetSeed() uint64 {
	if s := viper.GetUint64("seed"); s != 0 {
		return s
	}
	return uint64(time.Now().UnixNano())
}

// GetTuning returns the simulation knobs.
func GetTuning() race.Tuning {
	return race.Tuning{
		CenterRadius:     viper.GetFloat64("tuning.centerRadius"),
		HalfWidth:        viper.GetFloat64("tuning.halfWidth"),
		Margin:           viper.GetFloat64("tuning.margin"),
		BaseSpeed:        viper.GetFloat64("tuning.baseSpeed"),
		AccelMultiplier:  viper.GetFloat64("tuning.accelMultiplier"),
		DecelMultiplier:  viper.GetFloat64("tuning.decelMultiplier"),
		SteerStep:        viper.GetFloat64("tuning.steerStep"),
		CollisionPenalty: viper.GetFloat64("tuning.collisionPenalty"),
		BaseDrain:        viper.GetFloat64("tuning.baseDrain"),
		AccelerateDrain:  viper.GetFloat64("tuning.accelerateDrain"),
		DecelerateRegen:  viper.GetFloat64("tuning.decelerateRegen"),
		HealthMax:        viper.GetFloat64("tuning.healthMax"),
		FuelMax:          viper.GetFloat64("tuning.fuelMax"),
		DistanceInitial:  viper.GetFloat64("tuning.distanceInitial"),
		DistanceScale:    viper.GetFloat64("tuning.distanceScale"),
		SpawnBand:        viper.GetFloat64("tuning.spawnBand"),
		CarSpeedMin:      viper.GetFloat64("tuning.carSpeedMin"),
		CarSpeedMax:      viper.GetFloat64("tuning.carSpeedMax"),
		TruckSpeedMin:    viper.GetFloat64("tuning.truckSpeedMin"),
		TruckSpeedMax:    viper.GetFloat64("tuning.truckSpeedMax"),
		PickupCount:      viper.GetInt("tuning.pickupCount"),
		MaxStep:          time.Duration(viper.GetInt64("tuning.maxStepMs")) * time.Millisecond,
	}
}

// GetWindowConfig returns the desktop window settings.
func GetWindowConfig() WindowConfig {
	return WindowConfig{
		Width:  viper.GetInt("window.width"),
		Height: viper.GetInt("window.height"),
		Title:  viper.GetString("window.title"),
		VSync:  viper.GetBool("window.vsync"),
	}
}

// GetAudioConfig returns sound settings.
func GetAudioConfig() AudioConfig {
	return AudioConfig{
		Enabled: viper.GetBool("audio.enabled"),
		Volume:  viper.GetFloat64("audio.volume"),
	}
}

// GetHeadlessConfig returns autopilot settings.
func GetHeadlessConfig() HeadlessConfig {
	return HeadlessConfig{
		Step:      time.Duration(viper.GetInt64("headless.stepMs")) * time.Millisecond,
		MaxFrames: viper.GetInt("headless.maxFrames"),
		Resets:    viper.GetInt("headless.resets"),
	}
}

// GetLoggingConfig returns log settings.
func GetLoggingConfig() LoggingConfig {
	return LoggingConfig{
		Level:          viper.GetString("logLevel"),
		LogsDir:        viper.GetString("logsDir"),
		ToFile:         viper.GetBool("logToFile"),
		GraylogEnabled: viper.GetBool("graylog.enabled"),
		GraylogAddress: viper.GetString("graylog.address"),
	}
}
