package security

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowLoginWithinLimit(t *testing.T) {
	client, mock := redismock.NewClientMock()
	limiter := NewRateLimiter(client, 3, time.Minute)

	mock.ExpectIncr("login:1.2.3.4").SetVal(1)
	mock.ExpectExpire("login:1.2.3.4", time.Minute).SetVal(true)

	allowed, err := limiter.AllowLogin(context.Background(), "1.2.3.4")
	require.NoError(t, err)
	assert.True(t, allowed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAllowLoginOverLimit(t *testing.T) {
	client, mock := redismock.NewClientMock()
	limiter := NewRateLimiter(client, 3, time.Minute)

	mock.ExpectIncr("login:1.2.3.4").SetVal(4)

	allowed, err := limiter.AllowLogin(context.Background(), "1.2.3.4")
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestAllowLoginFailsOpen(t *testing.T) {
	client, mock := redismock.NewClientMock()
	limiter := NewRateLimiter(client, 3, time.Minute)

	mock.ExpectIncr("login:1.2.3.4").SetErr(errors.New("connection refused"))

	allowed, err := limiter.AllowLogin(context.Background(), "1.2.3.4")
	assert.Error(t, err)
	assert.True(t, allowed)
}

func TestIsSuspiciousUserAgent(t *testing.T) {
	limiter := NewRateLimiter(nil, 3, time.Minute)

	cases := []struct {
		ua         string
		suspicious bool
	}{
		{"Mozilla/5.0 (X11; Linux x86_64)", false},
		{"Googlebot/2.1", true},
		{"my-crawler/1.0", true},
		{"SpiderMonkey", true},
		{"data-scraper", true},
		{"", false},
	}
	for _, c := range cases {
		assert.Equal(t, c.suspicious, limiter.IsSuspiciousUserAgent(c.ua), c.ua)
	}
}
