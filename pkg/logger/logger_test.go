package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONWithService(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "debug", Output: &buf, Service: "salon-api"})

	l.Debug().Str("booking_id", "abc").Msg("stored")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "salon-api", entry["service"])
	assert.Equal(t, "abc", entry["booking_id"])
	assert.Equal(t, "stored", entry["message"])
}

func TestNew_DefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "nonsense", Output: &buf})

	l.Debug().Msg("hidden")
	assert.Zero(t, buf.Len())

	l.Info().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}
