package entity

import "time"

type Gig struct {
	ID             string    `json:"id" firestore:"id"`
	UserID         string    `json:"userId" firestore:"userId"` // owning seller
	Title          string    `json:"title" firestore:"title"`
	Description    string    `json:"desc" firestore:"desc"`
	ShortTitle     string    `json:"shortTitle" firestore:"shortTitle"`
	ShortDesc      string    `json:"shortDesc" firestore:"shortDesc"`
	Category       string    `json:"cat" firestore:"cat"`
	Price          float64   `json:"price" firestore:"price"`
	Cover          string    `json:"cover" firestore:"cover"`
	Images         []string  `json:"images,omitempty" firestore:"images,omitempty"`
	DeliveryTime   int       `json:"deliveryTime" firestore:"deliveryTime"`
	RevisionNumber int       `json:"revisionNumber" firestore:"revisionNumber"`
	Features       []string  `json:"features,omitempty" firestore:"features,omitempty"`
	TotalStars     int       `json:"totalStars" firestore:"totalStars"`
	StarNumber     int       `json:"starNumber" firestore:"starNumber"`
	Sales          int       `json:"sales" firestore:"sales"`
	CreatedAt      time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt      time.Time `json:"updated_at" firestore:"updatedAt"`
}
