package models

import "time"

type User struct {
	ID            int64     `json:"id" db:"id" example:"1"`
	Username      string    `json:"username" db:"username" example:"janedoe"`
	PasswordHash  string    `json:"-" db:"password_hash"`
	CreditBalance int64     `json:"creditBalance" db:"credit_balance" example:"500"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
}

type Favourite struct {
	UserID int64 `json:"userId" db:"user_id"`
	ItemID int64 `json:"itemId" db:"item_id"`
}
