package app

import (
	"testing"

	"github.com/Speshl/gorrc_vesc/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	msg, err := encode(models.CommandMsg{Value: 0.75, TimeStamp: 1234})
	require.NoError(t, err)

	decoded := models.CommandMsg{}
	require.NoError(t, decode(msg, &decoded))
	assert.Equal(t, 0.75, decoded.Value)
	assert.Equal(t, int64(1234), decoded.TimeStamp)
}

func TestDecodeRejectsBadPayload(t *testing.T) {
	decoded := models.CommandMsg{}

	assert.Error(t, decode("not base64!!", &decoded))
	assert.Error(t, decode("bm90IGpzb24=", &decoded))
}
