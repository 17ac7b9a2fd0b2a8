package chat

import "time"

// Session captures a transient anonymous conversation. Sessions live only
// while the chat screen is open and are never persisted.
type Session struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

// Snapshot is the render-ready view of a session handed to the presentation
// layer after every transcript mutation.
type Snapshot struct {
	SessionID    string    `json:"sessionId"`
	Messages     []Message `json:"messages"`
	CrisisActive bool      `json:"crisisActive"`
}
