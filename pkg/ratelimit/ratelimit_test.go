package ratelimit

import (
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowUpToLimit(t *testing.T) {
	rl := New(3, time.Minute)
	defer rl.Close()

	assert.True(t, rl.Allow("1.2.3.4"))
	assert.True(t, rl.Allow("1.2.3.4"))
	assert.True(t, rl.Allow("1.2.3.4"))
	assert.False(t, rl.Allow("1.2.3.4"))

	// Farklı IP'ler birbirini etkilemez
	assert.True(t, rl.Allow("5.6.7.8"))
}

func TestWindowExpiry(t *testing.T) {
	rl := New(1, 50*time.Millisecond)
	defer rl.Close()

	assert.True(t, rl.Allow("1.2.3.4"))
	assert.False(t, rl.Allow("1.2.3.4"))

	time.Sleep(60 * time.Millisecond)
	assert.True(t, rl.Allow("1.2.3.4"))
}

func TestReset(t *testing.T) {
	rl := New(1, time.Minute)
	defer rl.Close()

	assert.True(t, rl.Allow("1.2.3.4"))
	assert.False(t, rl.Allow("1.2.3.4"))

	// Başarılı login sonrası sayaç sıfırlanır
	rl.Reset("1.2.3.4")
	assert.True(t, rl.Allow("1.2.3.4"))
}

func TestRetryAfterSeconds(t *testing.T) {
	rl := New(1, time.Minute)
	defer rl.Close()

	// Limit dolmadan retry-after sıfır
	assert.Equal(t, 0, rl.RetryAfterSeconds("1.2.3.4"))

	require.True(t, rl.Allow("1.2.3.4"))
	require.False(t, rl.Allow("1.2.3.4"))

	after := rl.RetryAfterSeconds("1.2.3.4")
	assert.Greater(t, after, 0)
	assert.LessOrEqual(t, after, 60)
}

func TestExtractIP(t *testing.T) {
	t.Run("remote addr", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/", nil)
		r.RemoteAddr = "10.0.0.1:54321"
		assert.Equal(t, "10.0.0.1", ExtractIP(r))
	})

	t.Run("x-forwarded-for first hop", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/", nil)
		r.RemoteAddr = "10.0.0.1:54321"
		r.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
		assert.Equal(t, "203.0.113.7", ExtractIP(r))
	})

	t.Run("x-real-ip", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/", nil)
		r.RemoteAddr = "10.0.0.1:54321"
		r.Header.Set("X-Real-IP", "203.0.113.9")
		assert.Equal(t, "203.0.113.9", ExtractIP(r))
	})
}

func TestFormatRetryMessage(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{30, "30 second(s)"},
		{90, "1 minute(s)"},
		{120, "2 minute(s)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatRetryMessage(tt.seconds), fmt.Sprintf("seconds=%d", tt.seconds))
	}
}
