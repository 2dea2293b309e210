package entity

import (
	"github.com/google/uuid"
)

// Conversation is a chat channel between one customer and one admin,
// unique per participant pair.
type Conversation struct {
	BaseSimple
	CustomerID uuid.UUID `db:"customer_id"`
	AdminID    uuid.UUID `db:"admin_id"`
}
