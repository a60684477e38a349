package models

// ChatRequest is the payload coming from the chat page into /api/chat.
type ChatRequest struct {
	Message string `json:"message"`         // user's question
	Style   string `json:"style,omitempty"` // optional answer style, e.g. "simple" or "detailed"
}

// ChatResponse is what the chat handler returns to the frontend.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// QuizRequest carries the quiz form fields.
type QuizRequest struct {
	Topic string `form:"topic" json:"topic"`
	Count int    `form:"count" json:"count"`
	Level string `form:"level" json:"level"`
}
