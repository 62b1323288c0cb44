package constants

// Program frequency types
const (
	FrequencyDaily       = "daily"
	FrequencyWeekly      = "weekly"
	FrequencyConsecutive = "consecutive"
	FrequencyCustom      = "custom"
)

var FrequencyTypes = []string{
	FrequencyDaily,
	FrequencyWeekly,
	FrequencyConsecutive,
	FrequencyCustom,
}

const (
	DefaultFrequencyValue = 8
	TeamTypeTeam          = "team"
	DateLayout            = "2006-01-02"
)

var WeekDays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}
