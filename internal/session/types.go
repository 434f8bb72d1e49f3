package session

import "time"

// Data is what the auth layer stores in the session cookie. Only the user
// id is kept; identity fields are always read fresh from the database.
type Data struct {
	UserID   string
	IssuedAt time.Time
}
