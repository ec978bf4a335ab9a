package gemini

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"testing"
)

func Test_IsInternalError(t *testing.T) {
	assert.False(t, isInternalError(nil))
	assert.False(t, isInternalError(errors.New("googleapi: Error 429: quota exceeded")))
	assert.True(t, isInternalError(errors.New("googleapi: Error 500: internal")))
}

func Test_RateLimits(t *testing.T) {
	c := &Client{}

	c.SetMinuteRateLimit(60)
	c.SetDayRateLimit(1000)
	assert.NotNil(t, c.minuteRateLimiter)
	assert.Equal(t, 1000, c.dayRateLimiter.Burst())

	c.SetMinuteRateLimit(0)
	c.SetDayRateLimit(-1)
	assert.Nil(t, c.minuteRateLimiter)
	assert.Nil(t, c.dayRateLimiter)
}
