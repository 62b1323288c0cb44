package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"snowschool_backend/internals/constants"
	"snowschool_backend/internals/models"
)

func f(v float64) *float64 { return &v }

func TestNewEvaluationView(t *testing.T) {
	e := models.Evaluation{
		SportType:            constants.SportSnowStars,
		Level:                2,
		SkillsScore:          4,
		AttitudeScore:        4,
		PerformanceScore:     5,
		MovementQualityScore: f(4),
		BalanceScore:         f(4),
		ControlScore:         f(3),
		AwarenessScore:       f(5),
	}
	v := NewEvaluationView(e)
	assert.Equal(t, "Snow Stars", v.SportLabel)
	assert.Equal(t, "4.33", v.Average)
	assert.Equal(t, "4", v.SportAverage)
	assert.Len(t, v.Categories, 4)
	assert.Equal(t, "Balance", v.Categories[1].Label)
	assert.Equal(t, "4", v.Categories[1].Score)

	e.ControlScore = f(0)
	assert.Equal(t, Unavailable, NewEvaluationView(e).SportAverage)

	e.ControlScore = nil
	v = NewEvaluationView(e)
	assert.Equal(t, Unavailable, v.SportAverage)
	assert.Equal(t, "-", v.Categories[2].Score)
}

func TestNormalize(t *testing.T) {
	r := EvaluationRequest{SportType: " snow_stars ", Level: " 3", Categories: map[string]string{"balance_score": " 4 "}}
	r.Normalize()
	assert.Equal(t, "snow_stars", r.SportType)
	assert.Equal(t, "3", r.Level)
	assert.Equal(t, "4", r.Categories["balance_score"])
}
