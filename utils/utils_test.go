package utils

import (
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCode(t *testing.T) {
	code, err := GenerateCode(4)
	require.NoError(t, err)
	require.Len(t, code, 8)
	assert.Regexp(t, "^[0-9A-F]+$", code)

	// successive codes should differ
	first, err := GenerateCode(8)
	require.NoError(t, err)
	second, err := GenerateCode(8)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestRedisHealthCheck(t *testing.T) {
	client, mock := redismock.NewClientMock()
	mock.ExpectPing().SetVal("PONG")
	assert.NoError(t, RedisHealthCheck(client))
}
