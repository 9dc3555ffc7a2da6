package events

import "time"

const (
	TypeRoomCreated      = "room.created"
	TypeBookingConfirmed = "booking.confirmed"
)

// Header keys attached to every published message.
const (
	HeaderEventID   = "event-id"
	HeaderEventType = "event-type"
	HeaderSource    = "source"
	HeaderTimestamp = "timestamp"
)

type RoomCreated struct {
	RoomID string    `json:"roomId"`
	Name   string    `json:"name"`
	At     time.Time `json:"at"`
}

type BookingConfirmed struct {
	BookingID    string    `json:"bookingId"`
	RoomID       string    `json:"roomId"`
	CustomerName string    `json:"customerName"`
	Date         string    `json:"date"`
	StartTime    string    `json:"startTime"`
	EndTime      string    `json:"endTime"`
	Status       string    `json:"status,omitempty"`
	At           time.Time `json:"at"`
}
