package handlers

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"studyplanner/models"
	ai "studyplanner/services/intelligence"
	"studyplanner/services/scheduler"
	"studyplanner/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	defaultHours     = "3"
	defaultDays      = "14"
	defaultStartTime = "17:00"

	// MaxDays bounds a single plan.
	MaxDays = 365
)

type ScheduleHandler struct {
	Completer ai.Completer
	Now       func() time.Time
}

func NewScheduleHandler(completer ai.Completer) *ScheduleHandler {
	return &ScheduleHandler{Completer: completer, Now: time.Now}
}

// GenerateSchedule builds a plan from the form and renders it as a page, or
// as a plain-text attachment when download=1.
func (h *ScheduleHandler) GenerateSchedule(c *gin.Context) {
	logger := getLogger(c)

	req, err := parseScheduleForm(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid schedule input", err.Error())
		return
	}

	plan, err := scheduler.BuildPlan(req.Subjects, req.HoursPerDay, req.Days, req.StartTime)
	if err != nil {
		if errors.Is(err, scheduler.ErrInvalidTime) || errors.Is(err, scheduler.ErrNoSubjects) {
			utils.JSONError(c, http.StatusBadRequest, "Invalid schedule input", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to build schedule", err.Error())
		return
	}

	download := formValue(c, "download", "") == "1"

	// A download from the schedule page carries the strategy it displayed.
	var strategy ai.Completion
	if shown := formValue(c, "strategy", ""); download && shown != "" {
		strategy = ai.Completion{Text: shown, Source: ai.SourceClient}
	} else {
		strategy = h.Completer.Complete(c.Request.Context(), scheduler.StrategyPrompt(req.Subjects, req.HoursPerDay, req.Days))
		if strategy.Failed() {
			logger.Warn("schedule: strategy generation failed", zap.Error(strategy.Err))
		}
	}

	logger.Info("schedule generated",
		zap.Int("subjects", len(req.Subjects)),
		zap.Int("days", len(plan)),
		zap.String("strategySource", string(strategy.Source)),
	)

	if download {
		body := scheduler.RenderText(req, plan, strategy.Reply(), h.Now())
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", scheduler.ExportFilename))
		c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(body))
		return
	}

	c.HTML(http.StatusOK, "schedule", gin.H{
		"Title":       "Schedule",
		"Online":      h.Completer.Online(),
		"Request":     req,
		"SubjectsCSV": strings.Join(req.Subjects, ", "),
		"Plan":        plan,
		"Strategy":    strategy.Reply(),
		"Filename":    scheduler.ExportFilename,
	})
}

func parseScheduleForm(c *gin.Context) (models.ScheduleRequest, error) {
	hours, err := strconv.ParseFloat(formValue(c, "hours", defaultHours), 64)
	if err != nil || math.IsNaN(hours) || math.IsInf(hours, 0) {
		return models.ScheduleRequest{}, fmt.Errorf("hours must be a number: %q", formValue(c, "hours", defaultHours))
	}
	if hours > scheduler.MaxHoursPerDay {
		return models.ScheduleRequest{}, fmt.Errorf("hours must be at most %d", scheduler.MaxHoursPerDay)
	}
	days, err := strconv.Atoi(formValue(c, "days", defaultDays))
	if err != nil {
		return models.ScheduleRequest{}, fmt.Errorf("days must be a whole number: %q", formValue(c, "days", defaultDays))
	}
	if days > MaxDays {
		return models.ScheduleRequest{}, fmt.Errorf("days must be at most %d", MaxDays)
	}

	return models.ScheduleRequest{
		Subjects:    scheduler.ParseSubjects(formValue(c, "subjects", "")),
		HoursPerDay: hours,
		Days:        days,
		StartTime:   formValue(c, "start_time", defaultStartTime),
	}, nil
}
