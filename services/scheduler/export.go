package scheduler

import (
	"fmt"
	"strings"
	"time"

	"studyplanner/models"
)

// ExportFilename is the attachment name used for schedule downloads.
const ExportFilename = "study_schedule.txt"

// RenderText renders the downloadable plain-text schedule.
func RenderText(req models.ScheduleRequest, plan models.Plan, strategy string, generatedAt time.Time) string {
	var sb strings.Builder

	sb.WriteString("Study Schedule\n")
	sb.WriteString("==============\n")
	fmt.Fprintf(&sb, "Generated: %s\n", generatedAt.Format("2006-01-02 15:04"))
	fmt.Fprintf(&sb, "Subjects: %s\n", strings.Join(req.Subjects, ", "))
	fmt.Fprintf(&sb, "Hours per day: %s\n", formatHours(req.HoursPerDay))
	fmt.Fprintf(&sb, "Days: %d\n", req.Days)
	fmt.Fprintf(&sb, "Start time: %s\n", req.StartTime)

	for _, entry := range plan {
		fmt.Fprintf(&sb, "\nDay %d\n", entry.Day)
		for _, slot := range entry.Slots {
			fmt.Fprintf(&sb, "  %s - %s  %s\n", slot.Start, slot.End, slot.Subject)
		}
	}

	sb.WriteString("\nStrategy\n")
	sb.WriteString("--------\n")
	sb.WriteString(strings.TrimSpace(strategy))
	sb.WriteString("\n")
	return sb.String()
}
