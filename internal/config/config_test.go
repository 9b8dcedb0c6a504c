package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSecretEnvPreservesCase(t *testing.T) {
	t.Setenv(AppEnvBase+"VESCPASSWORD", "MixedCase!Secret")

	assert.Equal(t, "MixedCase!Secret", GetSecretEnv("VESCPASSWORD", ""))
}

func TestGetStringEnvLowercases(t *testing.T) {
	t.Setenv(AppEnvBase+"PORT", "CAN0")

	assert.Equal(t, "can0", GetStringEnv("PORT", DefaultPort))
}

func TestGetOptFloatEnv(t *testing.T) {
	assert.Nil(t, GetOptFloatEnv("SERVO_MIN"))

	t.Setenv(AppEnvBase+"SERVO_MIN", "0.2")
	value := GetOptFloatEnv("SERVO_MIN")
	require.NotNil(t, value)
	assert.Equal(t, 0.2, *value)

	t.Setenv(AppEnvBase+"SERVO_MIN", "not a float")
	assert.Nil(t, GetOptFloatEnv("SERVO_MIN"))
}

func TestGetLimitConfigUnsetStaysNil(t *testing.T) {
	cfg := GetLimitConfig()

	assert.Nil(t, cfg.DutyCycleMin)
	assert.Nil(t, cfg.DutyCycleMax)
	assert.Nil(t, cfg.ServoMin)
	assert.Nil(t, cfg.ServoMax)
}
