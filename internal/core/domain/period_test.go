package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lakemi26/tech-challenge/internal/core/domain"
)

func TestPeriodOf(t *testing.T) {
	p := domain.PeriodOf(time.Date(2025, time.March, 14, 23, 59, 0, 0, time.UTC))
	assert.Equal(t, domain.Period{Year: 2025, Month: time.March}, p)
}

func TestPeriodContains(t *testing.T) {
	p := domain.Period{Year: 2025, Month: time.March}
	assert.True(t, p.Contains(time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, p.Contains(time.Date(2025, time.March, 31, 23, 59, 59, 0, time.UTC)))
	assert.False(t, p.Contains(time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, p.Contains(time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)))
}

func TestPeriodPreviousAcrossYearBoundary(t *testing.T) {
	p := domain.Period{Year: 2025, Month: time.January}
	assert.Equal(t, domain.Period{Year: 2024, Month: time.December}, p.Previous())
}

func TestPeriodBounds(t *testing.T) {
	p := domain.Period{Year: 2025, Month: time.February}
	assert.Equal(t, time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC), p.Start(time.UTC))
	assert.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), p.End(time.UTC))
}

func TestPeriodString(t *testing.T) {
	assert.Equal(t, "2025-03", domain.Period{Year: 2025, Month: time.March}.String())
}
