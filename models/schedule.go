package models

// Slot is one subject block inside a study day.
type Slot struct {
	Subject string `json:"subject"`
	Start   string `json:"start"` // "HH:MM"
	End     string `json:"end"`   // "HH:MM"
}

// ScheduleEntry is a single study day. Slots always holds exactly two blocks.
type ScheduleEntry struct {
	Day   int    `json:"day"`
	Slots []Slot `json:"slots"`
}

// Plan is the ordered list of study days.
type Plan []ScheduleEntry

// ScheduleRequest holds the normalized schedule form input.
type ScheduleRequest struct {
	Subjects    []string `json:"subjects"`
	HoursPerDay float64  `json:"hoursPerDay"`
	Days        int      `json:"days"`
	StartTime   string   `json:"startTime"`
}
