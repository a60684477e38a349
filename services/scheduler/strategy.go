package scheduler

import (
	"fmt"
	"strconv"
	"strings"
)

// StrategyPrompt asks the model for a short study strategy covering the plan.
func StrategyPrompt(subjects []string, hoursPerDay float64, days int) string {
	return fmt.Sprintf(
		"Explain a short study strategy for a plan covering %s over %d days at %s hours per day.",
		strings.Join(subjects, ", "), days, formatHours(hoursPerDay),
	)
}

func formatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}
