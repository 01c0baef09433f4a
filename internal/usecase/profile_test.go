package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"TronLens/internal/domain/models"
)

func TestClassifyActivity(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		count int
		age   time.Duration
		want  models.ActivityLevel
		freq  float64
	}{
		{"half day floors to one day", 5, 12 * time.Hour, models.ActivityActive, 5},
		{"many in one day", 11, time.Hour, models.ActivityHighFrequency, 11},
		{"exactly ten is not high", 10, time.Hour, models.ActivityActive, 10},
		{"exactly three is normal", 3, time.Hour, models.ActivityNormal, 3},
		{"sparse", 1, 20 * 24 * time.Hour, models.ActivityLowFrequency, 0.05},
		{"exactly point one is low", 1, 10 * 24 * time.Hour, models.ActivityLowFrequency, 0.1},
		{"normal over weeks", 10, 20 * 24 * time.Hour, models.ActivityNormal, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldest := now.Add(-tt.age).UnixMilli()
			recs := makePage(tt.count, otherAddr, subjectAddr, 1, now.UnixMilli())
			recs[len(recs)-1].TimestampMillis = oldest

			p := ClassifyActivity(recs, now)
			assert.Equal(t, tt.want, p.Level)
			assert.InDelta(t, tt.freq, p.Frequency, 1e-9)
			assert.Equal(t, tt.count, p.Count)
		})
	}
}

func TestClassifyActivity_Empty(t *testing.T) {
	p := ClassifyActivity(nil, time.Now())
	assert.Equal(t, models.ActivityNone, p.Level)
	assert.Equal(t, "no-transactions", p.String())
}

func TestActivityProfileString(t *testing.T) {
	p := models.ActivityProfile{Level: models.ActivityActive, Frequency: 5}
	assert.Equal(t, "active (5.00 tx/day)", p.String())
}
