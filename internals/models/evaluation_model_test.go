package models

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"snowschool_backend/internals/constants"
)

func f(v float64) *float64 { return &v }

func TestEvaluationAverageScore(t *testing.T) {
	tests := []struct {
		name                          string
		skills, attitude, performance float64
		want                          float64
	}{
		{"whole numbers", 4, 5, 3, 4},
		{"rounded to two decimals", 4, 4, 5, 4.33},
		{"zeros count", 0, 0, 3, 1},
		{"fractions", 3.5, 4.25, 4.1, 3.95},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Evaluation{SkillsScore: tt.skills, AttitudeScore: tt.attitude, PerformanceScore: tt.performance}
			assert.Equal(t, tt.want, e.AverageScore())
		})
	}
}

func TestEvaluationSportAverageScore(t *testing.T) {
	tests := []struct {
		name   string
		eval   Evaluation
		want   float64
		wantOK bool
	}{
		{
			name:   "snow stars complete",
			eval:   Evaluation{SportType: constants.SportSnowStars, MovementQualityScore: f(4), BalanceScore: f(3), ControlScore: f(5), AwarenessScore: f(4)},
			want:   4,
			wantOK: true,
		},
		{
			name:   "snow stars with a zero is unavailable",
			eval:   Evaluation{SportType: constants.SportSnowStars, MovementQualityScore: f(4), BalanceScore: f(0), ControlScore: f(5), AwarenessScore: f(4)},
			wantOK: false,
		},
		{
			name:   "skier missing a score is unavailable",
			eval:   Evaluation{SportType: constants.SportSkier, TechnicalScore: f(4), EdgingScore: f(3), PressureControlScore: f(5)},
			wantOK: false,
		},
		{
			name:   "skier rounded",
			eval:   Evaluation{SportType: constants.SportSkier, TechnicalScore: f(4), EdgingScore: f(3), PressureControlScore: f(5), TurnShapeScore: f(4.3)},
			want:   4.08,
			wantOK: true,
		},
		{
			name:   "snowboarder",
			eval:   Evaluation{SportType: constants.SportSnowboarder, BoardControlScore: f(2), EdgeAwarenessScore: f(3), BodyPositioningScore: f(2), TurnControlScore: f(3)},
			want:   2.5,
			wantOK: true,
		},
		{
			name:   "tie rounds down to even",
			eval:   Evaluation{SportType: constants.SportSnowStars, MovementQualityScore: f(4), BalanceScore: f(4), ControlScore: f(4), AwarenessScore: f(4.5)},
			want:   4.12,
			wantOK: true,
		},
		{
			name:   "tie on an odd digit rounds to even",
			eval:   Evaluation{SportType: constants.SportSnowStars, MovementQualityScore: f(4.5), BalanceScore: f(4.5), ControlScore: f(5), AwarenessScore: f(4.5)},
			want:   4.62,
			wantOK: true,
		},
		{
			name:   "unknown sport",
			eval:   Evaluation{SportType: "luge"},
			wantOK: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.eval.SportAverageScore()
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestEvaluationSetCategoryScores(t *testing.T) {
	e := Evaluation{SportType: constants.SportSnowStars, TechnicalScore: f(3)}
	e.SetCategoryScores(map[string]float64{
		"movement_quality_score": 4,
		"balance_score":          3,
		"control_score":          5,
		"awareness_score":        4,
		"technical_score":        2,
	})

	assert.Nil(t, e.TechnicalScore)
	if assert.NotNil(t, e.BalanceScore) {
		assert.Equal(t, 3.0, *e.BalanceScore)
	}
	avg, ok := e.SnowStarsAverageScore()
	assert.True(t, ok)
	assert.Equal(t, 4.0, avg)
}

func TestUserParticipates(t *testing.T) {
	u := User{ParticipatesSkier: true, ParticipatesSnowStars: true}
	assert.True(t, u.Participates(constants.SportSkier))
	assert.False(t, u.Participates(constants.SportSnowboarder))
	assert.Equal(t, []string{constants.SportSnowStars}, u.AvailableSports())

	u.ParticipatesSnowStars = false
	assert.Empty(t, u.AvailableSports())
}

func TestWeekDays(t *testing.T) {
	d := ParseWeekDays(" Monday, wednesday,,friday ")
	assert.Equal(t, WeekDays{"monday", "wednesday", "friday"}, d)

	v, err := d.Value()
	assert.NoError(t, err)
	assert.Equal(t, "monday,wednesday,friday", v)

	v, err = WeekDays(nil).Value()
	assert.NoError(t, err)
	assert.Nil(t, v)

	var scanned WeekDays
	assert.NoError(t, scanned.Scan([]byte("saturday")))
	assert.Equal(t, WeekDays{"saturday"}, scanned)
	assert.NoError(t, scanned.Scan(nil))
	assert.Nil(t, scanned)
}
