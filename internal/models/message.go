package models

import "time"

type Message struct {
	ID        string    `json:"id"`
	FromID    string    `json:"fromId"`
	ToID      string    `json:"toId"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
	Read      bool      `json:"read"`
}

// Involves reports whether the message belongs to the thread between a and b.
func (message Message) Involves(a string, b string) bool {
	return (message.FromID == a && message.ToID == b) || (message.FromID == b && message.ToID == a)
}
