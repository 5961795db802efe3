package entity

import "time"

// PaymentIntentPlaceholder marks an order created without a payment attempt.
// It is replaced once a real provider intent is attached.
const PaymentIntentPlaceholder = "temporary"

type Order struct {
	ID            string    `json:"id" firestore:"id"`
	GigID         string    `json:"gigId" firestore:"gigId"`
	Image         string    `json:"img,omitempty" firestore:"img,omitempty"`
	Title         string    `json:"title" firestore:"title"`
	Price         float64   `json:"price" firestore:"price"`
	SellerID      string    `json:"sellerId" firestore:"sellerId"`
	BuyerID       string    `json:"buyerId" firestore:"buyerId"`
	PaymentIntent string    `json:"payment_intent" firestore:"paymentIntent"`
	IsCompleted   bool      `json:"isCompleted" firestore:"isCompleted"`
	CreatedAt     time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt     time.Time `json:"updated_at" firestore:"updatedAt"`
}
