package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatRinggit(t *testing.T) {
	assert.Equal(t, "RM 19.50", FormatRinggit(19.5))
	assert.Equal(t, "RM 0.00", FormatRinggit(0))
	assert.Equal(t, "RM 1234.57", FormatRinggit(1234.567))
}

func TestFormatNullableRinggit(t *testing.T) {
	price := 7.25
	assert.Equal(t, "RM 7.25", FormatNullableRinggit(&price))
	assert.Equal(t, "RM 0.00", FormatNullableRinggit(nil))
}

func TestRoundCurrency(t *testing.T) {
	assert.Equal(t, 0.3, RoundCurrency(0.1+0.2))
	assert.Equal(t, 10.01, RoundCurrency(10.005000001))
}

func TestFormatHours(t *testing.T) {
	assert.Equal(t, "1 hour", FormatHours(1))
	assert.Equal(t, "0 hours", FormatHours(0))
	assert.Equal(t, "62 hours", FormatHours(62))
}

func TestWholeHoursSince(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, WholeHoursSince(now.Add(59*time.Minute), now))
	assert.Equal(t, 0, WholeHoursSince(now.Add(-59*time.Minute), now))
	assert.Equal(t, 10, WholeHoursSince(now.Add(-10*time.Hour-30*time.Minute), now))
}
