package models

import "time"

// Account holds the balance owned by exactly one user.
// It is created alongside the user at signup when the deployment enables it.
type Account struct {
	AccountID string    `json:"id"`
	UserID    string    `json:"user_id"`
	Balance   int64     `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Account model.
func (a Account) TableName() string {
	return "accounts"
}

// Profile is the authenticated caller's view of their own data.
type Profile struct {
	User    User     `json:"user"`
	Account *Account `json:"account,omitempty"`
}
