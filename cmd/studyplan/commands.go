package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"studyplanner/models"
	ai "studyplanner/services/intelligence"
	"studyplanner/services/quiz"
	"studyplanner/services/scheduler"
)

// Context is shared by every command.
type Context struct {
	Ctx       context.Context
	Completer ai.Completer
	Out       io.Writer
	Now       func() time.Time
}

func (c *Context) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

type ScheduleCmd struct {
	Subjects string  `help:"Comma-separated subjects." default:""`
	Hours    float64 `help:"Study hours per day." default:"3"`
	Days     int     `help:"Number of days." default:"14"`
	Start    string  `help:"Start time (HH:MM)." default:"17:00"`
	Out      string  `help:"Write the schedule to this file instead of stdout." type:"path"`
}

func (cmd *ScheduleCmd) Run(ctx *Context) error {
	req := models.ScheduleRequest{
		Subjects:    scheduler.ParseSubjects(cmd.Subjects),
		HoursPerDay: cmd.Hours,
		Days:        cmd.Days,
		StartTime:   cmd.Start,
	}
	plan, err := scheduler.BuildPlan(req.Subjects, req.HoursPerDay, req.Days, req.StartTime)
	if err != nil {
		return err
	}
	strategy := ctx.Completer.Complete(ctx.Ctx, scheduler.StrategyPrompt(req.Subjects, req.HoursPerDay, req.Days))
	text := scheduler.RenderText(req, plan, strategy.Reply(), ctx.now())

	if cmd.Out == "" {
		_, err = io.WriteString(ctx.Out, text)
		return err
	}
	if err := os.WriteFile(cmd.Out, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write schedule: %w", err)
	}
	fmt.Fprintf(ctx.Out, "Schedule written to %s\n", cmd.Out)
	return nil
}

type QuizCmd struct {
	Topic string `help:"Quiz topic." default:"General"`
	Count int    `help:"Number of questions." default:"5"`
	Level string `help:"Difficulty level." default:"easy" enum:"easy,medium,hard"`
}

func (cmd *QuizCmd) Run(ctx *Context) error {
	result := quiz.NewService(ctx.Completer).Generate(ctx.Ctx, models.QuizRequest{
		Topic: cmd.Topic,
		Count: cmd.Count,
		Level: cmd.Level,
	})
	_, err := fmt.Fprintln(ctx.Out, result.Reply())
	return err
}

type AskCmd struct {
	Question []string `arg:"" help:"Question to ask."`
	Style    string   `help:"Answer style, e.g. simple or detailed."`
}

func (cmd *AskCmd) Run(ctx *Context) error {
	question := strings.TrimSpace(strings.Join(cmd.Question, " "))
	if question == "" {
		return fmt.Errorf("ask a question")
	}
	prompt := question
	if cmd.Style != "" {
		prompt = fmt.Sprintf("Answer in a %s style.\n\n%s", cmd.Style, question)
	}
	result := ctx.Completer.Complete(ctx.Ctx, prompt)
	_, err := fmt.Fprintln(ctx.Out, result.Reply())
	return err
}
