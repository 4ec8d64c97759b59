package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestLimiter(config *Config) (*Limiter, *time.Time) {
	l := NewLimiter(config)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }
	return l, &now
}

func TestAllow_BurstThenDeny(t *testing.T) {
	l, _ := newTestLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  100,
		DefaultWindow: time.Minute,
		Rules: []Rule{
			{PathPrefix: "/batch", Method: "POST", Limit: 10, Window: time.Minute, Burst: 2},
		},
	})

	assert.True(t, l.Allow("1.2.3.4", "/batch", "POST"))
	assert.True(t, l.Allow("1.2.3.4", "/batch", "POST"))
	assert.False(t, l.Allow("1.2.3.4", "/batch", "POST"))
}

func TestAllow_RefillsOverTime(t *testing.T) {
	l, now := newTestLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  100,
		DefaultWindow: time.Minute,
		Rules: []Rule{
			{PathPrefix: "/analyze", Method: "POST", Limit: 60, Window: time.Minute, Burst: 1},
		},
	})

	assert.True(t, l.Allow("1.2.3.4", "/analyze", "POST"))
	assert.False(t, l.Allow("1.2.3.4", "/analyze", "POST"))

	*now = now.Add(2 * time.Second) // refills one token at 1/s
	assert.True(t, l.Allow("1.2.3.4", "/analyze", "POST"))
}

func TestAllow_ClientsAreIndependent(t *testing.T) {
	l, _ := newTestLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  100,
		DefaultWindow: time.Minute,
		Rules: []Rule{
			{PathPrefix: "/batch", Method: "POST", Limit: 10, Window: time.Minute, Burst: 1},
		},
	})

	assert.True(t, l.Allow("1.2.3.4", "/batch", "POST"))
	assert.False(t, l.Allow("1.2.3.4", "/batch", "POST"))
	assert.True(t, l.Allow("5.6.7.8", "/batch", "POST"))
}

func TestAllow_HealthNeverLimited(t *testing.T) {
	l, _ := newTestLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1,
		DefaultWindow: time.Hour,
	})

	for i := 0; i < 10; i++ {
		assert.True(t, l.Allow("1.2.3.4", "/health", "GET"))
	}
}

func TestAllow_DisabledAllowsEverything(t *testing.T) {
	l, _ := newTestLimiter(&Config{Enabled: false})

	for i := 0; i < 10; i++ {
		assert.True(t, l.Allow("1.2.3.4", "/batch", "POST"))
	}
}
