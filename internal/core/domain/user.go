package domain

import "time"

// User represents a ledger participant. Name is the key every other table refers to.
type User struct {
	UserID         int64     `json:"userID"`
	Name           string    `json:"name"`
	AccessCodeHash string    `json:"-"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Principal is the authenticated actor passed explicitly into every core operation.
type Principal struct {
	UserName string
	IsAdmin  bool
}

// CanActFor reports whether the principal may read or modify data owned by userName.
func (p Principal) CanActFor(userName string) bool {
	return p.IsAdmin || p.UserName == userName
}
