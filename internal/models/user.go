package models

import "time"

// User is a row of the users table.
type User struct {
	ID         int64     `db:"id"`
	Name       string    `db:"name"`
	AccessCode string    `db:"access_code"` // bcrypt hash
	CreatedAt  time.Time `db:"created_at"`
}
