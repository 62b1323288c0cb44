package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"gorm.io/datatypes"
)

type Program struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	Name           string          `gorm:"size:100;not null;index:idx_program_name" json:"name"`
	Description    *string         `gorm:"type:text" json:"description,omitempty"`
	FrequencyType  string          `gorm:"size:20;not null" json:"frequency_type"`
	FrequencyValue int             `gorm:"not null" json:"frequency_value"`
	FrequencyDays  WeekDays        `gorm:"size:50" json:"frequency_days,omitempty"`
	StartDate      *datatypes.Date `json:"start_date,omitempty"`
	EndDate        *datatypes.Date `json:"end_date,omitempty"`
	CreatedAt      time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (Program) TableName() string {
	return "program"
}

// WeekDays is stored as a comma separated list ("monday,wednesday").
// An empty list is stored as NULL.
type WeekDays []string

func ParseWeekDays(s string) WeekDays {
	var out WeekDays
	for _, part := range strings.Split(s, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (d WeekDays) String() string {
	return strings.Join(d, ",")
}

func (d WeekDays) Value() (driver.Value, error) {
	if len(d) == 0 {
		return nil, nil
	}
	return d.String(), nil
}

func (d *WeekDays) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*d = nil
	case string:
		*d = ParseWeekDays(v)
	case []byte:
		*d = ParseWeekDays(string(v))
	default:
		return fmt.Errorf("week days: unsupported type %T", value)
	}
	return nil
}

// GormDataType keeps frequency_days a plain varchar column.
func (WeekDays) GormDataType() string {
	return "string"
}
