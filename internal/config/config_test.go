package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, DriverMongo, cfg.Store.Driver)
	assert.Equal(t, "salon", cfg.Store.MongoDatabase)
	assert.Equal(t, "whatsapp:+917894498135", cfg.Twilio.AdminNumber)
	assert.Equal(t, "whatsapp:+14155238886", cfg.Twilio.WhatsAppNumber)
	assert.Equal(t, ChannelLog, cfg.Notify.Channel)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 100, cfg.Dispatch.QueueSize)
	assert.Equal(t, 10*time.Second, cfg.Dispatch.Timeout)
	assert.Equal(t, 9091, cfg.Worker.MetricsPort)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("STORE_DRIVER", "Postgres")
	t.Setenv("TWILIO_ACCOUNT_SID", "AC123")
	t.Setenv("TWILIO_API_KEY_SID", "SK123")
	t.Setenv("TWILIO_API_KEY_SECRET", "secret")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://salon.example, http://localhost:3000")

	cfg, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, DriverPostgres, cfg.Store.Driver)
	assert.Equal(t, ChannelWhatsApp, cfg.Notify.Channel)
	assert.Equal(t, []string{"https://salon.example", "http://localhost:3000"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_Rejects(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "unknown driver", env: map[string]string{"STORE_DRIVER": "sqlite"}},
		{name: "unknown channel", env: map[string]string{"NOTIFY_CHANNEL": "pigeon"}},
		{name: "email without smtp", env: map[string]string{"NOTIFY_CHANNEL": "email"}},
		{name: "whatsapp without credentials", env: map[string]string{"NOTIFY_CHANNEL": "whatsapp"}},
		{name: "bad queue size", env: map[string]string{"DISPATCH_QUEUE_SIZE": "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := load(viper.New())
			assert.Error(t, err)
		})
	}
}
