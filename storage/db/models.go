package db

import (
	"database/sql"
	"time"
)

const (
	CartStatusActive    = "active"
	CartStatusAbandoned = "abandoned"
	CartStatusRecovered = "recovered"

	RecoveryEmailSent   = "sent"
	RecoveryEmailFailed = "failed"
)

type User struct {
	ID        string
	Name      string
	Email     string
	Role      string
	CreatedAt time.Time
}

type Funnel struct {
	ID        string
	Name      string
	Slug      string
	CreatedAt time.Time
}

type Cart struct {
	ID            string
	FunnelID      string
	SessionID     sql.NullString
	CustomerName  sql.NullString
	CustomerEmail sql.NullString
	Status        string
	RecoveryToken string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	AbandonedAt   sql.NullTime
	RecoveredAt   sql.NullTime
}

type CartItem struct {
	ID          string
	CartID      string
	Position    int64
	ProductName sql.NullString
	UnitPrice   sql.NullFloat64
	Quantity    int64
}

type CartRecoveryEmail struct {
	ID            string
	CartID        string
	EmailNumber   int64
	TrackingToken string
	Subject       string
	Status        string
	SentAt        time.Time
	ClickedAt     sql.NullTime
}
