package entity

import "time"

type Review struct {
	ID        string    `json:"id" firestore:"id"`
	GigID     string    `json:"gigId" firestore:"gigId"`
	UserID    string    `json:"userId" firestore:"userId"`
	Star      int       `json:"star" firestore:"star"`
	Desc      string    `json:"desc" firestore:"desc"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}
