package otel

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/contrib/bridges/otelslog"
)

func TestNew_Disabled(t *testing.T) {
	p, err := New(Config{Enabled: false})
	require.NoError(t, err)

	assert.False(t, p.Enabled())
	assert.Nil(t, p.LoggerProvider())
	assert.NoError(t, p.Flush(context.Background()))
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestNew_EnabledWithoutOutput(t *testing.T) {
	_, err := New(Config{Enabled: true, ServiceName: "arlayout"})
	assert.Error(t, err)
}

func TestNew_FileExporter(t *testing.T) {
	var buf bytes.Buffer
	p, err := New(Config{
		Enabled:      true,
		ServiceName:  "arlayout",
		BatchTimeout: time.Second,
		LogWriter:    &buf,
	})
	require.NoError(t, err)
	require.NotNil(t, p.LoggerProvider())

	logger := otelslog.NewLogger("test", otelslog.WithLoggerProvider(p.LoggerProvider()))
	logger.Info("exported record")

	assert.True(t, p.Enabled())
	require.NoError(t, p.Flush(context.Background()))
	assert.Contains(t, buf.String(), "exported record")
	assert.Contains(t, buf.String(), "arlayout")

	assert.NoError(t, p.Shutdown(context.Background()))
}
