package chat

// Sender identifies who authored a transcript message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Message is one entry in the chat transcript.
type Message struct {
	Text   string `json:"text"`
	Sender Sender `json:"sender"`
}
