package trivia

// Question is one trivia question with its ordered options. Grading
// happens on the backend; the reply to a submission carries the
// feedback text.
type Question struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// Answer is the submission payload for a question.
type Answer struct {
	QuestionID string `json:"questionId"`
	UserAnswer string `json:"userAnswer"`
}

// Feedback is the backend's verdict on a submitted answer.
type Feedback struct {
	Reply string `json:"reply"`
}
