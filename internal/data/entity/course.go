package entity

import (
	"github.com/google/uuid"
)

// Course is a recurring weekly yoga course. Immutable once read from the
// catalog; the client never mutates it.
type Course struct {
	ID          uuid.UUID `db:"id"`
	Day         string    `db:"day"`  // weekday name, e.g. "Monday"
	Time        string    `db:"time"` // "HH:MM"
	Duration    int       `db:"duration"` // minutes
	Intensity   string    `db:"intensity"`
	Capacity    int       `db:"capacity"`
	Price       float64   `db:"price"`
	Description string    `db:"description"`
	Type        string    `db:"type"`
}
