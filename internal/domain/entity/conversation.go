package entity

import "time"

// Conversation carries two identifiers: ID is the storage identifier
// assigned at creation, ConversationID is the composite key built from the
// participant IDs in role-dependent order (seller first when the creator is
// a seller). Messages reference the composite key, never the storage ID.
type Conversation struct {
	ID             string    `json:"id" firestore:"id"`
	ConversationID string    `json:"conversationId" firestore:"conversationId"`
	SellerID       string    `json:"sellerId" firestore:"sellerId"`
	BuyerID        string    `json:"buyerId" firestore:"buyerId"`
	ReadBySeller   bool      `json:"readBySeller" firestore:"readBySeller"`
	ReadByBuyer    bool      `json:"readByBuyer" firestore:"readByBuyer"`
	LastMessage    string    `json:"lastMessage,omitempty" firestore:"lastMessage,omitempty"`
	CreatedAt      time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt      time.Time `json:"updated_at" firestore:"updatedAt"`
}
