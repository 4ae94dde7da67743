package entities

import "time"

type ChatMessage struct {
	ID        string    `json:"id"`
	Sender    string    `json:"sender"`
	Role      Role      `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}
