package constants

// Evaluation sport types (column evaluation.sport_type)
const (
	SportSkier       = "skier"
	SportSnowboarder = "snowboarder"
	SportSnowStars   = "snow_stars"
)

var AllSports = []string{SportSkier, SportSnowboarder, SportSnowStars}

// EnabledSports are the sports offered on the evaluation form.
var EnabledSports = []string{SportSnowStars}

var SportLabels = map[string]string{
	SportSkier:       "Skiing",
	SportSnowboarder: "Snowboarding",
	SportSnowStars:   "Snow Stars",
}

// ProgramNames are the certification programs behind each sport.
var ProgramNames = map[string]string{
	SportSkier:       "STEP",
	SportSnowboarder: "RIP",
	SportSnowStars:   "Snow Stars",
}

// SportCategories lists the four category score columns of each sport.
var SportCategories = map[string][]string{
	SportSkier:       {"technical_score", "edging_score", "pressure_control_score", "turn_shape_score"},
	SportSnowboarder: {"board_control_score", "edge_awareness_score", "body_positioning_score", "turn_control_score"},
	SportSnowStars:   {"movement_quality_score", "balance_score", "control_score", "awareness_score"},
}

var CategoryLabels = map[string]string{
	"technical_score":        "Technical",
	"edging_score":           "Edging",
	"pressure_control_score": "Pressure Control",
	"turn_shape_score":       "Turn Shape",
	"board_control_score":    "Board Control",
	"edge_awareness_score":   "Edge Awareness",
	"body_positioning_score": "Body Positioning",
	"turn_control_score":     "Turn Control",
	"movement_quality_score": "Movement Quality",
	"balance_score":          "Balance",
	"control_score":          "Control",
	"awareness_score":        "Awareness",
}

func IsValidSport(sport string) bool {
	_, ok := SportCategories[sport]
	return ok
}

func IsEnabledSport(sport string) bool {
	for _, s := range EnabledSports {
		if s == sport {
			return true
		}
	}
	return false
}
