package models

import "time"

// Schedule holds one week of working hours for a user. Each slot is an
// optional free-form time-of-day string; nil means the slot is not worked.
// At most one schedule per user exists by convention (bulk import upserts
// keyed by user_id).
type Schedule struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	Service   string    `bson:"service" json:"service"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`

	MondayStart         *string `bson:"monday_start" json:"monday_start"`
	MondayBreakStart    *string `bson:"monday_break_start" json:"monday_break_start"`
	MondayBreakEnd      *string `bson:"monday_break_end" json:"monday_break_end"`
	MondayEnd           *string `bson:"monday_end" json:"monday_end"`
	TuesdayStart        *string `bson:"tuesday_start" json:"tuesday_start"`
	TuesdayBreakStart   *string `bson:"tuesday_break_start" json:"tuesday_break_start"`
	TuesdayBreakEnd     *string `bson:"tuesday_break_end" json:"tuesday_break_end"`
	TuesdayEnd          *string `bson:"tuesday_end" json:"tuesday_end"`
	WednesdayStart      *string `bson:"wednesday_start" json:"wednesday_start"`
	WednesdayBreakStart *string `bson:"wednesday_break_start" json:"wednesday_break_start"`
	WednesdayBreakEnd   *string `bson:"wednesday_break_end" json:"wednesday_break_end"`
	WednesdayEnd        *string `bson:"wednesday_end" json:"wednesday_end"`
	ThursdayStart       *string `bson:"thursday_start" json:"thursday_start"`
	ThursdayBreakStart  *string `bson:"thursday_break_start" json:"thursday_break_start"`
	ThursdayBreakEnd    *string `bson:"thursday_break_end" json:"thursday_break_end"`
	ThursdayEnd         *string `bson:"thursday_end" json:"thursday_end"`
	FridayStart         *string `bson:"friday_start" json:"friday_start"`
	FridayBreakStart    *string `bson:"friday_break_start" json:"friday_break_start"`
	FridayBreakEnd      *string `bson:"friday_break_end" json:"friday_break_end"`
	FridayEnd           *string `bson:"friday_end" json:"friday_end"`
	SaturdayStart       *string `bson:"saturday_start" json:"saturday_start"`
	SaturdayBreakStart  *string `bson:"saturday_break_start" json:"saturday_break_start"`
	SaturdayBreakEnd    *string `bson:"saturday_break_end" json:"saturday_break_end"`
	SaturdayEnd         *string `bson:"saturday_end" json:"saturday_end"`
	SundayStart         *string `bson:"sunday_start" json:"sunday_start"`
	SundayBreakStart    *string `bson:"sunday_break_start" json:"sunday_break_start"`
	SundayBreakEnd      *string `bson:"sunday_break_end" json:"sunday_break_end"`
	SundayEnd           *string `bson:"sunday_end" json:"sunday_end"`
}

// ScheduleFields lists the 28 day/slot field names in week order. The
// spreadsheet codec iterates these instead of hard-coding every column.
var ScheduleFields = []string{
	"monday_start", "monday_break_start", "monday_break_end", "monday_end",
	"tuesday_start", "tuesday_break_start", "tuesday_break_end", "tuesday_end",
	"wednesday_start", "wednesday_break_start", "wednesday_break_end", "wednesday_end",
	"thursday_start", "thursday_break_start", "thursday_break_end", "thursday_end",
	"friday_start", "friday_break_start", "friday_break_end", "friday_end",
	"saturday_start", "saturday_break_start", "saturday_break_end", "saturday_end",
	"sunday_start", "sunday_break_start", "sunday_break_end", "sunday_end",
}

// Field returns a pointer to the slot named by one of ScheduleFields, or nil
// for an unknown name.
func (s *Schedule) Field(name string) **string {
	switch name {
	case "monday_start":
		return &s.MondayStart
	case "monday_break_start":
		return &s.MondayBreakStart
	case "monday_break_end":
		return &s.MondayBreakEnd
	case "monday_end":
		return &s.MondayEnd
	case "tuesday_start":
		return &s.TuesdayStart
	case "tuesday_break_start":
		return &s.TuesdayBreakStart
	case "tuesday_break_end":
		return &s.TuesdayBreakEnd
	case "tuesday_end":
		return &s.TuesdayEnd
	case "wednesday_start":
		return &s.WednesdayStart
	case "wednesday_break_start":
		return &s.WednesdayBreakStart
	case "wednesday_break_end":
		return &s.WednesdayBreakEnd
	case "wednesday_end":
		return &s.WednesdayEnd
	case "thursday_start":
		return &s.ThursdayStart
	case "thursday_break_start":
		return &s.ThursdayBreakStart
	case "thursday_break_end":
		return &s.ThursdayBreakEnd
	case "thursday_end":
		return &s.ThursdayEnd
	case "friday_start":
		return &s.FridayStart
	case "friday_break_start":
		return &s.FridayBreakStart
	case "friday_break_end":
		return &s.FridayBreakEnd
	case "friday_end":
		return &s.FridayEnd
	case "saturday_start":
		return &s.SaturdayStart
	case "saturday_break_start":
		return &s.SaturdayBreakStart
	case "saturday_break_end":
		return &s.SaturdayBreakEnd
	case "saturday_end":
		return &s.SaturdayEnd
	case "sunday_start":
		return &s.SundayStart
	case "sunday_break_start":
		return &s.SundayBreakStart
	case "sunday_break_end":
		return &s.SundayBreakEnd
	case "sunday_end":
		return &s.SundayEnd
	}
	return nil
}
