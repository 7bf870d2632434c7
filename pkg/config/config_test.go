package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, 8000, cfg.Port)
	assert.Equal(t, "/api", cfg.APIPrefix)
	assert.True(t, cfg.MountUnprefixed)
	assert.Equal(t, StoreMongo, cfg.Store.Driver)
	assert.Equal(t, "portfolio_db", cfg.Mongo.DBName)
	assert.Equal(t, "consultations", cfg.Mongo.ConsultationCollection)
	assert.Equal(t, "status_checks", cfg.Mongo.StatusCheckCollection)
	assert.False(t, cfg.Notifications.Enabled)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("API_PREFIX", "v2/")
	t.Setenv("MONGO_CONSULTATIONS_COLLECTION", "executive_consultations")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("MONGO_OPERATION_TIMEOUT", "not-a-duration")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/v2", cfg.APIPrefix)
	assert.Equal(t, "executive_consultations", cfg.Mongo.ConsultationCollection)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "5s", cfg.Mongo.OperationTimeout.String())
}

func TestValidateRejectsUnknownDriver(t *testing.T) {
	cfg := &Config{Port: 8000, Store: StoreConfig{Driver: "cassandra"}}
	assert.Error(t, cfg.Validate())
}

func TestValidateRequiresMongoURL(t *testing.T) {
	cfg := &Config{Port: 8000, Store: StoreConfig{Driver: StoreMongo}, Mongo: MongoConfig{DBName: "db"}}
	assert.Error(t, cfg.Validate())

	cfg.Mongo.URL = "mongodb://localhost:27017"
	assert.NoError(t, cfg.Validate())
}

func TestNormalizePrefix(t *testing.T) {
	assert.Equal(t, "", normalizePrefix("/"))
	assert.Equal(t, "", normalizePrefix(""))
	assert.Equal(t, "/api", normalizePrefix("/api/"))
}
