package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/OCAP2/arlayout/internal/layout"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(body), 0644))
	return dir
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := writeConfig(t, `{
		"logLevel": "debug",
		"logFormat": "json",
		"layout": { "markerScale": 2, "boundary": { "halfHeight": 40 } }
	}`)

	err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", viper.GetString("logLevel"))
	assert.Equal(t, "json", viper.GetString("logFormat"))
	assert.Equal(t, 2.0, viper.GetFloat64("layout.markerScale"))
	assert.Equal(t, 40.0, viper.GetFloat64("layout.boundary.halfHeight"))
	assert.Equal(t, 60.0, viper.GetFloat64("layout.boundary.halfWidth"))
}

func TestLoad_DefaultValues(t *testing.T) {
	t.Cleanup(viper.Reset)

	require.NoError(t, Load(writeConfig(t, `{}`)))

	assert.Equal(t, "info", viper.GetString("logLevel"))
	assert.Equal(t, "./logs", viper.GetString("logsDir"))
	assert.Equal(t, "text", viper.GetString("logFormat"))
	assert.Equal(t, 1.0, viper.GetFloat64("layout.markerScale"))
	assert.Equal(t, false, viper.GetBool("layout.displayOnlySelected"))
	assert.Equal(t, 35.0, viper.GetFloat64("layout.boundary.halfHeight"))
	assert.Equal(t, false, viper.GetBool("otel.enabled"))
	assert.Equal(t, "arlayout", viper.GetString("otel.serviceName"))
	assert.Equal(t, "5s", viper.GetString("otel.batchTimeout"))
	assert.Equal(t, true, viper.GetBool("otel.insecure"))
	assert.Equal(t, 60.0, viper.GetFloat64("scene.fieldOfView"))
}

func TestLoad_MissingFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	err := Load("/nonexistent/path")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestGetString(t *testing.T) {
	t.Cleanup(viper.Reset)
	viper.Set("testKey", "testValue")
	assert.Equal(t, "testValue", GetString("testKey"))
}

func TestLayout_Defaults(t *testing.T) {
	t.Cleanup(viper.Reset)
	LoadDefaults()

	cfg, err := Layout()
	require.NoError(t, err)
	assert.Equal(t, layout.DefaultConfig(), cfg)
}

func TestLayout_Override(t *testing.T) {
	t.Cleanup(viper.Reset)

	require.NoError(t, Load(writeConfig(t, `{
		"layout": {
			"markerScale": 1.5,
			"imageAngleOffset": 0.25,
			"displayOnlySelected": true,
			"boundary": { "halfWidth": 50, "halfHeight": 30, "projectionHalfWidth": 70 }
		}
	}`)))

	cfg, err := Layout()
	require.NoError(t, err)
	assert.Equal(t, 1.5, cfg.MarkerScale)
	assert.Equal(t, 0.25, cfg.ImageAngleOffset)
	assert.True(t, cfg.DisplayOnlySelected)
	assert.Equal(t, layout.Boundary{HalfWidth: 50, HalfHeight: 30, ProjectionHalfWidth: 70}, cfg.Boundary)
	assert.Equal(t, layout.DefaultConfig().LabelHalfHeight, cfg.LabelHalfHeight)
}

func TestLayout_Invalid(t *testing.T) {
	t.Cleanup(viper.Reset)

	require.NoError(t, Load(writeConfig(t, `{"layout": {"markerHalfWidth": -1}}`)))

	_, err := Layout()
	assert.ErrorIs(t, err, layout.ErrInvalidConfig)
}

func TestGetOTelConfig_Defaults(t *testing.T) {
	t.Cleanup(viper.Reset)

	require.NoError(t, Load(writeConfig(t, `{}`)))

	cfg := GetOTelConfig()
	assert.Equal(t, false, cfg.Enabled)
	assert.Equal(t, "arlayout", cfg.ServiceName)
	assert.Equal(t, 5*time.Second, cfg.BatchTimeout)
	assert.Equal(t, "", cfg.Endpoint)
	assert.Equal(t, true, cfg.Insecure)
}

func TestGetOTelConfig_Override(t *testing.T) {
	t.Cleanup(viper.Reset)

	require.NoError(t, Load(writeConfig(t, `{
		"otel": {
			"enabled": true,
			"serviceName": "my-service",
			"batchTimeout": "30s",
			"endpoint": "localhost:4318",
			"insecure": false
		}
	}`)))

	oc := GetOTelConfig()
	assert.Equal(t, true, oc.Enabled)
	assert.Equal(t, "my-service", oc.ServiceName)
	assert.Equal(t, 30*time.Second, oc.BatchTimeout)
	assert.Equal(t, "localhost:4318", oc.Endpoint)
	assert.Equal(t, false, oc.Insecure)
}

func TestGetScene(t *testing.T) {
	t.Cleanup(viper.Reset)

	require.NoError(t, Load(writeConfig(t, `{
		"scene": {
			"user": { "lon": 13.405, "lat": 52.52 },
			"heading": 90,
			"places": [
				{ "id": "tv", "name": "TV Tower", "position": { "lon": 13.4094, "lat": 52.5208, "alt": 368 } },
				{ "name": "Gate", "position": { "lon": 13.3777, "lat": 52.5163 } }
			]
		}
	}`)))

	s, err := GetScene()
	require.NoError(t, err)
	assert.Equal(t, 13.405, s.User.Lon)
	assert.Equal(t, 90.0, s.Heading)
	assert.Equal(t, 60.0, s.FieldOfView)
	require.Len(t, s.Places, 2)
	assert.Equal(t, "tv", s.Places[0].ID)
	assert.Equal(t, 368.0, s.Places[0].Position.Alt)
	assert.Equal(t, "", s.Places[1].ID)
}
