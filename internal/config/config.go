package config

import (
	"fmt"
	"time"

	"github.com/OCAP2/arlayout/internal/layout"
	"github.com/OCAP2/arlayout/pkg/core"
	"github.com/spf13/viper"
)

// FileName is the config file looked up in the config directory.
const FileName = "arlayout.cfg.json"

// OTelConfig holds OpenTelemetry settings
type OTelConfig struct {
	Enabled      bool          `json:"enabled" mapstructure:"enabled"`
	ServiceName  string        `json:"serviceName" mapstructure:"serviceName"`
	BatchTimeout time.Duration `json:"batchTimeout" mapstructure:"batchTimeout"`
	Endpoint     string        `json:"endpoint" mapstructure:"endpoint"`
	Insecure     bool          `json:"insecure" mapstructure:"insecure"`
}

// Scene describes a simulated user and camera plus the places to mark.
// Angles are in degrees.
type Scene struct {
	User        core.GeoPosition `json:"user" mapstructure:"user"`
	Heading     float64          `json:"heading" mapstructure:"heading"`
	FieldOfView float64          `json:"fieldOfView" mapstructure:"fieldOfView"`
	Pitch       float64          `json:"pitch" mapstructure:"pitch"`
	Places      []core.Place     `json:"places" mapstructure:"places"`
}

// Load reads configuration from JSON file and sets default values.
// configDir is the directory containing the config file.
func Load(configDir string) error {
	setDefaults()

	viper.SetConfigName(FileName)
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	err := viper.ReadInConfig()
	if err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}

	return nil
}

// LoadDefaults sets default values without reading a config file.
func LoadDefaults() {
	setDefaults()
}

func setDefaults() {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logsDir", "./logs")
	viper.SetDefault("logFormat", "text")

	d := layout.DefaultConfig()
	viper.SetDefault("layout.markerScale", d.MarkerScale)
	viper.SetDefault("layout.imageAngleOffset", d.ImageAngleOffset)
	viper.SetDefault("layout.markerHalfWidth", d.MarkerHalfWidth)
	viper.SetDefault("layout.markerHalfHeight", d.MarkerHalfHeight)
	viper.SetDefault("layout.labelHalfHeight", d.LabelHalfHeight)
	viper.SetDefault("layout.defaultLabelY", d.DefaultLabelY)
	viper.SetDefault("layout.displayOnlySelected", d.DisplayOnlySelected)
	viper.SetDefault("layout.boundary.halfWidth", d.Boundary.HalfWidth)
	viper.SetDefault("layout.boundary.halfHeight", d.Boundary.HalfHeight)
	viper.SetDefault("layout.boundary.projectionHalfWidth", d.Boundary.ProjectionHalfWidth)
	viper.SetDefault("layout.planeDistance", d.PlaneDistance)
	viper.SetDefault("layout.fovBuffer", d.FOVBuffer)
	viper.SetDefault("layout.backBlendWidth", d.BackBlendWidth)

	viper.SetDefault("otel.enabled", false)
	viper.SetDefault("otel.serviceName", "arlayout")
	viper.SetDefault("otel.batchTimeout", "5s")
	viper.SetDefault("otel.endpoint", "")
	viper.SetDefault("otel.insecure", true)

	viper.SetDefault("scene.heading", 0.0)
	viper.SetDefault("scene.fieldOfView", 60.0)
	viper.SetDefault("scene.pitch", 0.0)
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// Layout returns the validated layout config.
func Layout() (layout.Config, error) {
	cfg := layout.DefaultConfig()
	if err := viper.UnmarshalKey("layout", &cfg); err != nil {
		return layout.Config{}, fmt.Errorf("decoding layout config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return layout.Config{}, err
	}
	return cfg, nil
}

// GetOTelConfig returns the OpenTelemetry configuration.
func GetOTelConfig() OTelConfig {
	return OTelConfig{
		Enabled:      viper.GetBool("otel.enabled"),
		ServiceName:  viper.GetString("otel.serviceName"),
		BatchTimeout: viper.GetDuration("otel.batchTimeout"),
		Endpoint:     viper.GetString("otel.endpoint"),
		Insecure:     viper.GetBool("otel.insecure"),
	}
}

// GetScene returns the simulated scene.
func GetScene() (Scene, error) {
	s := Scene{FieldOfView: 60}
	if err := viper.UnmarshalKey("scene", &s); err != nil {
		return Scene{}, fmt.Errorf("decoding scene: %w", err)
	}
	return s, nil
}
