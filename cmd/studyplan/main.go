package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"studyplanner/config"
	ai "studyplanner/services/intelligence"
	"studyplanner/utils"
)

var CLI struct {
	Offline bool `help:"Ignore any configured API key and use canned replies."`

	Schedule ScheduleCmd `cmd:"" help:"Print or save a study schedule."`
	Quiz     QuizCmd     `cmd:"" help:"Print a multiple-choice quiz."`
	Ask      AskCmd      `cmd:"" help:"Ask the study assistant a question."`
}

func main() {
	kctx := kong.Parse(&CLI,
		kong.Name("studyplan"),
		kong.Description("Study schedules and quizzes from the command line"),
		kong.UsageOnError(),
	)

	config.LoadConfig()
	logger := utils.GetLogger()

	appCtx := &Context{
		Ctx:       context.Background(),
		Completer: ai.NewCompletionService(nil),
		Out:       os.Stdout,
	}

	if !CLI.Offline && config.AIEnabled() {
		gemini, err := ai.NewGeminiClient(appCtx.Ctx, config.AppConfig.GeminiAPIKey, config.AppConfig.GeminiModel)
		if err != nil {
			logger.Warn("studyplan: Gemini unavailable, using offline replies", zap.Error(err))
		} else {
			defer gemini.Close()
			appCtx.Completer = ai.NewCompletionService(gemini,
				ai.WithLogger(logger),
				ai.WithTimeout(config.AppConfig.AITimeout),
				ai.WithModelName(gemini.Name()),
			)
		}
	}

	if err := kctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
