package entity

import "time"

type User struct {
	ID          string    `json:"id" firestore:"id"`
	Username    string    `json:"username" firestore:"username"`
	Email       string    `json:"email" firestore:"email"`
	Password    string    `json:"-" firestore:"password"`
	Image       string    `json:"img,omitempty" firestore:"img,omitempty"`
	Country     string    `json:"country" firestore:"country"`
	Phone       string    `json:"phone,omitempty" firestore:"phone,omitempty"`
	Description string    `json:"desc,omitempty" firestore:"desc,omitempty"`
	IsSeller    bool      `json:"isSeller" firestore:"isSeller"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt   time.Time `json:"updated_at" firestore:"updatedAt"`
}
