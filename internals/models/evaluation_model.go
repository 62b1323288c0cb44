package models

import (
	"math"
	"time"

	"snowschool_backend/internals/constants"
)

// Evaluation is one coach assessment of a student at a level of a sport.
// Only the four category scores of SportType are filled in.
type Evaluation struct {
	ID               uint    `gorm:"primaryKey" json:"id"`
	StudentID        uint    `gorm:"not null;uniqueIndex:ux_evaluation_level,priority:1" json:"student_id"`
	CoachID          uint    `gorm:"not null;index:idx_evaluation_coach" json:"coach_id"`
	SportType        string  `gorm:"size:20;not null;uniqueIndex:ux_evaluation_level,priority:2" json:"sport_type"`
	Level            int     `gorm:"not null;uniqueIndex:ux_evaluation_level,priority:3" json:"level"`
	SkillsScore      float64 `gorm:"not null" json:"skills_score"`
	AttitudeScore    float64 `gorm:"not null" json:"attitude_score"`
	PerformanceScore float64 `gorm:"not null" json:"performance_score"`

	// STEP (skier)
	TechnicalScore       *float64 `json:"technical_score,omitempty"`
	EdgingScore          *float64 `json:"edging_score,omitempty"`
	PressureControlScore *float64 `json:"pressure_control_score,omitempty"`
	TurnShapeScore       *float64 `json:"turn_shape_score,omitempty"`

	// RIP (snowboarder)
	BoardControlScore    *float64 `json:"board_control_score,omitempty"`
	EdgeAwarenessScore   *float64 `json:"edge_awareness_score,omitempty"`
	BodyPositioningScore *float64 `json:"body_positioning_score,omitempty"`
	TurnControlScore     *float64 `json:"turn_control_score,omitempty"`

	// Snow Stars
	MovementQualityScore *float64 `json:"movement_quality_score,omitempty"`
	BalanceScore         *float64 `json:"balance_score,omitempty"`
	ControlScore         *float64 `json:"control_score,omitempty"`
	AwarenessScore       *float64 `json:"awareness_score,omitempty"`

	Comments  *string   `gorm:"type:text" json:"comments,omitempty"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`

	Student *User `gorm:"foreignKey:StudentID" json:"student,omitempty"`
}

func (Evaluation) TableName() string {
	return "evaluation"
}

// round2 rounds to two decimals, ties to even.
func round2(v float64) float64 {
	return math.RoundToEven(v*100) / 100
}

// AverageScore is the mean of the three overall scores.
func (e *Evaluation) AverageScore() float64 {
	return round2((e.SkillsScore + e.AttitudeScore + e.PerformanceScore) / 3)
}

// categoryAverage treats a zero score like a missing one.
func categoryAverage(scores ...*float64) (float64, bool) {
	var sum float64
	for _, s := range scores {
		if s == nil || *s == 0 {
			return 0, false
		}
		sum += *s
	}
	return round2(sum / float64(len(scores))), true
}

func (e *Evaluation) StepAverageScore() (float64, bool) {
	return categoryAverage(e.TechnicalScore, e.EdgingScore, e.PressureControlScore, e.TurnShapeScore)
}

func (e *Evaluation) RipAverageScore() (float64, bool) {
	return categoryAverage(e.BoardControlScore, e.EdgeAwarenessScore, e.BodyPositioningScore, e.TurnControlScore)
}

func (e *Evaluation) SnowStarsAverageScore() (float64, bool) {
	return categoryAverage(e.MovementQualityScore, e.BalanceScore, e.ControlScore, e.AwarenessScore)
}

// SportAverageScore returns the category average of the evaluated sport.
func (e *Evaluation) SportAverageScore() (float64, bool) {
	switch e.SportType {
	case constants.SportSkier:
		return e.StepAverageScore()
	case constants.SportSnowboarder:
		return e.RipAverageScore()
	case constants.SportSnowStars:
		return e.SnowStarsAverageScore()
	}
	return 0, false
}

// CategoryScore returns the pointer backing a category column name.
func (e *Evaluation) CategoryScore(column string) **float64 {
	switch column {
	case "technical_score":
		return &e.TechnicalScore
	case "edging_score":
		return &e.EdgingScore
	case "pressure_control_score":
		return &e.PressureControlScore
	case "turn_shape_score":
		return &e.TurnShapeScore
	case "board_control_score":
		return &e.BoardControlScore
	case "edge_awareness_score":
		return &e.EdgeAwarenessScore
	case "body_positioning_score":
		return &e.BodyPositioningScore
	case "turn_control_score":
		return &e.TurnControlScore
	case "movement_quality_score":
		return &e.MovementQualityScore
	case "balance_score":
		return &e.BalanceScore
	case "control_score":
		return &e.ControlScore
	case "awareness_score":
		return &e.AwarenessScore
	}
	return nil
}

// SetCategoryScores fills the category columns of the evaluated sport and
// clears the others.
func (e *Evaluation) SetCategoryScores(scores map[string]float64) {
	for _, cols := range constants.SportCategories {
		for _, col := range cols {
			*e.CategoryScore(col) = nil
		}
	}
	for _, col := range constants.SportCategories[e.SportType] {
		if v, ok := scores[col]; ok {
			v := v
			*e.CategoryScore(col) = &v
		}
	}
}
