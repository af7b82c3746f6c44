package backend

import (
	"context"

	"mlb-companion/internal/domain/trivia"
)

// TriviaQuestion fetches a fresh question. The correct answer stays in
// this package; views only ever see the question and its options.
func (c *Client) TriviaQuestion(ctx context.Context, token string) (trivia.Question, error) {
	var resp triviaQuestionResponse
	if err := c.getJSON(ctx, EndpointTriviaQuestion, "/trivia/question", token, &resp); err != nil {
		return trivia.Question{}, err
	}
	return trivia.Question{
		ID:       resp.ID,
		Question: resp.Question,
		Options:  resp.Options,
	}, nil
}

// TriviaAnswer submits an answer and returns the feedback text.
func (c *Client) TriviaAnswer(ctx context.Context, token string, answer trivia.Answer) (trivia.Feedback, error) {
	var resp chatResponse
	if err := c.postJSON(ctx, EndpointTriviaAnswer, "/trivia/answer", token, answer, &resp); err != nil {
		return trivia.Feedback{}, err
	}
	return trivia.Feedback{Reply: resp.Reply}, nil
}
