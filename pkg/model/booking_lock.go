package model

import "time"

// BookingLock is an advisory lock held across the conflict-check-and-insert
// sequence. Its _id is derived from (roomId, date), so the unique index on _id
// serializes admissions for one room-day. ExpiresAt backs a TTL index that
// reaps locks orphaned by a crashed request.
type BookingLock struct {
	ID        string    `bson:"_id" json:"id"`
	ExpiresAt time.Time `bson:"expires_at" json:"expires_at"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
