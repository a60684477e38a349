package quiz

import (
	"context"
	"fmt"
	"strings"

	"studyplanner/models"
	ai "studyplanner/services/intelligence"
)

const (
	DefaultTopic = "General"
	DefaultCount = 5
	DefaultLevel = "easy"
)

// OfflineQuiz is served whenever no model is configured, whatever the request.
const OfflineQuiz = `1. What is the boiling point of water at sea level?
   A) 90°C  B) 100°C  C) 110°C  D) 120°C
   Answer: B

2. Which planet is known as the Red Planet?
   A) Venus  B) Jupiter  C) Mars  D) Saturn
   Answer: C

3. What is 7 x 8?
   A) 54  B) 56  C) 58  D) 64
   Answer: B`

// Service builds quiz text, delegating to the completer when it is online.
type Service struct {
	Completer ai.Completer
}

func NewService(completer ai.Completer) *Service {
	return &Service{Completer: completer}
}

// Prompt is the instruction sent to the model.
func Prompt(req models.QuizRequest) string {
	return fmt.Sprintf(
		"Create %d %s multiple-choice questions on %s. Number each question, give options A-D, and mark the correct answer.",
		req.Count, req.Level, req.Topic,
	)
}

// Normalize fills blank fields with the defaults.
func Normalize(req models.QuizRequest) models.QuizRequest {
	if strings.TrimSpace(req.Topic) == "" {
		req.Topic = DefaultTopic
	}
	if strings.TrimSpace(req.Level) == "" {
		req.Level = DefaultLevel
	}
	return req
}

// Generate returns the quiz text. Offline mode ignores the request fields.
func (s *Service) Generate(ctx context.Context, req models.QuizRequest) ai.Completion {
	if !s.Completer.Online() {
		return ai.Completion{Text: OfflineQuiz, Source: ai.SourceOffline}
	}
	return s.Completer.Complete(ctx, Prompt(Normalize(req)))
}
