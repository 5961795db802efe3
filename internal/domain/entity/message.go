package entity

import "time"

// Message is append-only; ConversationID holds the conversation's composite
// identifier, not its storage ID.
type Message struct {
	ID             string    `json:"id" firestore:"id"`
	ConversationID string    `json:"conversationId" firestore:"conversationId"`
	UserID         string    `json:"userId" firestore:"userId"`
	Desc           string    `json:"desc" firestore:"desc"`
	CreatedAt      time.Time `json:"created_at" firestore:"createdAt"`
}
