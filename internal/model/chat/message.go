package chat

import "time"

// Sender values recorded on a Message.
const (
	SenderUser   = "user"
	SenderSystem = "system"
)

// Message is a single turn in a conversation transcript. Messages are
// immutable once appended and are never reordered or deleted.
type Message struct {
	ID        int       `json:"id"`
	SessionID string    `json:"sessionId"`
	Sender    string    `json:"sender"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}
