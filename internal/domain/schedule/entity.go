package schedule

import "time"

type WorkSchedule struct {
	ID               string
	CompanyID        string
	Name             string
	Type             ScheduleType
	StartTime        *string // "HH:MM", fixed schedules only
	EndTime          *string
	BreakStart       *string
	BreakEnd         *string
	WorkHours        *float64 // expected daily hours
	ToleranceMinutes int      // grace period before an entry counts as late
	AllowOvertime    bool
	MaxOvertime      int // minutes
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        *time.Time
}

type ScheduleType string

const (
	ScheduleTypeFixed    ScheduleType = "fixed"
	ScheduleTypeFlexible ScheduleType = "flexible"
	ScheduleTypeShift    ScheduleType = "shift_12x36"
	ScheduleTypeCustom   ScheduleType = "custom"
)

var ScheduleTypeValues = []string{
	string(ScheduleTypeFixed),
	string(ScheduleTypeFlexible),
	string(ScheduleTypeShift),
	string(ScheduleTypeCustom),
}

// StartOn materializes the schedule's start time on the given calendar date,
// in the date's location. The second return is false when the schedule has no
// start time (flexible schedules).
func (s WorkSchedule) StartOn(date time.Time) (time.Time, bool) {
	return timeOfDayOn(s.StartTime, date)
}

// EndOn materializes the schedule's end time on the given calendar date.
func (s WorkSchedule) EndOn(date time.Time) (time.Time, bool) {
	return timeOfDayOn(s.EndTime, date)
}

func timeOfDayOn(hhmm *string, date time.Time) (time.Time, bool) {
	if hhmm == nil {
		return time.Time{}, false
	}
	parsed, err := time.Parse("15:04", *hhmm)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0,
		date.Location(),
	), true
}
