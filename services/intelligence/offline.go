package ai

import "strings"

// Canned replies served when no model is configured.
const (
	OfflineExplainReply = "Study strategy: split each subject into short focused blocks, " +
		"summarise the key ideas in your own words at the end of every block, " +
		"and finish the day with a few practice questions on what you covered."

	OfflineQuizReply = "Q1: What is the SI unit of force? A: Newton\n" +
		"Q2: What is the chemical symbol for water? A: H2O"

	OfflineDefaultReply = "AI is running in offline mode. " +
		"Add a Gemini API key to get personalised answers."
)

// OfflineReply picks a canned reply from keywords in the prompt.
// "explain" wins over "quiz" when both are present.
func OfflineReply(prompt string) string {
	lower := strings.ToLower(prompt)
	switch {
	case strings.Contains(lower, "explain"):
		return OfflineExplainReply
	case strings.Contains(lower, "quiz"):
		return OfflineQuizReply
	default:
		return OfflineDefaultReply
	}
}
