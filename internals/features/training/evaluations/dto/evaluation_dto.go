package dto

import (
	"strconv"

	"snowschool_backend/internals/constants"
	helper "snowschool_backend/internals/helpers"
	"snowschool_backend/internals/models"
)

/* =========================
   REQUEST
   ========================= */

// EvaluationRequest keeps the raw form values; the service checks them in
// the order the evaluation form expects.
type EvaluationRequest struct {
	SportType        string `form:"sport_type"`
	Level            string `form:"level"`
	SkillsScore      string `form:"skills_score"`
	AttitudeScore    string `form:"attitude_score"`
	PerformanceScore string `form:"performance_score"`
	Comments         string `form:"comments"`

	// Categories maps category column -> raw value for the chosen sport.
	Categories map[string]string `form:"-"`
}

func (r *EvaluationRequest) Normalize() {
	r.SportType = helper.CleanString(r.SportType)
	r.Level = helper.CleanString(r.Level)
	r.SkillsScore = helper.CleanString(r.SkillsScore)
	r.AttitudeScore = helper.CleanString(r.AttitudeScore)
	r.PerformanceScore = helper.CleanString(r.PerformanceScore)
	for k, v := range r.Categories {
		r.Categories[k] = helper.CleanString(v)
	}
}

/* =========================
   VIEW
   ========================= */

type CategoryView struct {
	Column string
	Label  string
	Score  string
}

// EvaluationView carries the computed scores for templates.
type EvaluationView struct {
	models.Evaluation
	SportLabel   string
	ProgramName  string
	Average      string
	SportAverage string
	Categories   []CategoryView
}

const Unavailable = "unavailable"

func NewEvaluationView(e models.Evaluation) EvaluationView {
	v := EvaluationView{
		Evaluation:   e,
		SportLabel:   labelOr(constants.SportLabels, e.SportType),
		ProgramName:  labelOr(constants.ProgramNames, e.SportType),
		Average:      formatScore(e.AverageScore()),
		SportAverage: Unavailable,
	}
	if avg, ok := e.SportAverageScore(); ok {
		v.SportAverage = formatScore(avg)
	}
	for _, col := range constants.SportCategories[e.SportType] {
		cv := CategoryView{Column: col, Label: constants.CategoryLabels[col], Score: "-"}
		if p := *e.CategoryScore(col); p != nil {
			cv.Score = formatScore(*p)
		}
		v.Categories = append(v.Categories, cv)
	}
	return v
}

func NewEvaluationViews(list []models.Evaluation) []EvaluationView {
	out := make([]EvaluationView, 0, len(list))
	for _, e := range list {
		out = append(out, NewEvaluationView(e))
	}
	return out
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func labelOr(m map[string]string, key string) string {
	if l, ok := m[key]; ok {
		return l
	}
	return key
}
