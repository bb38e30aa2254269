package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyAgainstEmbeddedSchema(t *testing.T) {
	cfg := &Config{}
	cfg.setDefaults()
	assert.NoError(t, VerifyAgainstEmbeddedSchema(cfg))
}

func TestVerifyAgainstEmbeddedSchema_MissingRequired(t *testing.T) {
	cfg := &Config{}
	cfg.Server.Listen = ":8080"
	// timeout left at zero
	err := VerifyAgainstEmbeddedSchema(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.timeout is required")
}

func TestVerifyAgainstEmbeddedSchema_EnabledScanner(t *testing.T) {
	cfg := &Config{}
	cfg.setDefaults()
	cfg.Telegram.Enabled = true
	err := VerifyAgainstEmbeddedSchema(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "telegram.bot_token is required")

	cfg.Telegram.BotToken = "token"
	assert.NoError(t, VerifyAgainstEmbeddedSchema(cfg))
}

func TestGenerateSchema(t *testing.T) {
	schema, err := GenerateSchema()
	require.NoError(t, err)
	require.NotNil(t, schema)
	assert.NotEmpty(t, schema.Definitions)
}
