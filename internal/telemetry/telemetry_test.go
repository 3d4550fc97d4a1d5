package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/roadmap-lambda/internal/config"
	"github.com/saulo-duarte/roadmap-lambda/internal/telemetry"
)

func TestParseHeaders(t *testing.T) {
	got := telemetry.ParseHeaders(" x-api-key = secret ,broken, =novalue,dataset=roadmap")
	assert.Equal(t, map[string]string{"x-api-key": "secret", "dataset": "roadmap"}, got)
	assert.Empty(t, telemetry.ParseHeaders(""))
}

func TestSetupDisabled(t *testing.T) {
	tel, err := telemetry.Setup(context.Background(), config.OTelConfig{ServiceName: "roadmap"})
	require.NoError(t, err)
	assert.Nil(t, tel)
	assert.NoError(t, tel.Shutdown(context.Background()))
}
