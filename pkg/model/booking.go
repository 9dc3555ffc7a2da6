package model

import "time"

// Booking is a confirmed reservation on a room. Date is an opaque calendar
// string compared by equality only, and StartTime/EndTime are "HH:MM" strings
// ordered lexicographically; the ledger never does calendar arithmetic on them.
// RoomID is a weak reference: it is not validated against the registry.
type Booking struct {
	ID           string    `json:"bookingId,omitempty" bson:"_id,omitempty" validate:"omitempty"`
	RoomID       string    `json:"roomId" bson:"roomId" validate:"required"`
	CustomerName string    `json:"customerName" bson:"customerName" validate:"required,min=1,max=100"`
	Date         string    `json:"date" bson:"date" validate:"required"`
	StartTime    string    `json:"startTime" bson:"startTime" validate:"required,hhmm"`
	EndTime      string    `json:"endTime" bson:"endTime" validate:"required,hhmm"`
	Status       string    `json:"status,omitempty" bson:"status,omitempty" validate:"omitempty,max=50"`
	CreatedAt    time.Time `json:"createdAt,omitempty" bson:"created_at,omitempty" validate:"omitempty"`
}
