package models

import (
	"github.com/shopspring/decimal"
)

// Client represents a debtor row in the clients table.
type Client struct {
	ClientID      string          `db:"client_id"`
	Name          string          `db:"name"`
	Email         string          `db:"email"`
	Phone         string          `db:"phone"`
	Status        string          `db:"status"`
	ManagerUserID string          `db:"manager_user_id"` // Nullable
	Balance       decimal.Decimal `db:"balance"`
	AuditFields
}
