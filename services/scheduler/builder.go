package scheduler

import (
	"studyplanner/models"
)

// minBlockHours is the shortest block a subject can get in a day.
const minBlockHours = 0.5

// MaxHoursPerDay is the longest study day a plan accepts.
const MaxHoursPerDay = 24

// BlockHours returns the per-subject block length for a day of hoursPerDay.
// Days longer than MaxHoursPerDay are clamped.
func BlockHours(hoursPerDay float64) float64 {
	if hoursPerDay > MaxHoursPerDay {
		hoursPerDay = MaxHoursPerDay
	}
	block := hoursPerDay / 2
	if block < minBlockHours {
		return minBlockHours
	}
	return block
}

// BlockMinutes converts BlockHours to whole minutes. Fractions are truncated.
func BlockMinutes(hoursPerDay float64) int {
	return int(BlockHours(hoursPerDay) * 60)
}

// BuildPlan rotates subjects across days, two per day, each for one block.
// The first day starts at startTime and every following day picks up where
// the previous one ended. The rotation index advances by two every day.
func BuildPlan(subjects []string, hoursPerDay float64, days int, startTime string) (models.Plan, error) {
	if len(subjects) == 0 {
		return nil, ErrNoSubjects
	}
	start, err := ParseTimeOfDay(startTime)
	if err != nil {
		return nil, err
	}

	plan := models.Plan{}
	if days <= 0 {
		return plan, nil
	}

	block := BlockMinutes(hoursPerDay)
	n := len(subjects)
	idx := 0
	cursor := start
	for day := 1; day <= days; day++ {
		firstEnd := cursor.Add(block)
		secondEnd := firstEnd.Add(block)
		plan = append(plan, models.ScheduleEntry{
			Day: day,
			Slots: []models.Slot{
				{Subject: subjects[idx%n], Start: cursor.String(), End: firstEnd.String()},
				{Subject: subjects[(idx+1)%n], Start: firstEnd.String(), End: secondEnd.String()},
			},
		})
		idx += 2
		cursor = secondEnd
	}
	return plan, nil
}
