package model

import "time"

// RoomAttributes is the verbatim payload of a create-room request. The registry
// stores whatever the caller supplies; roomId and name are lookup conventions,
// not enforced fields, so a room created without them is simply unmatchable.
type RoomAttributes map[string]any

// Room is the typed projection of a stored room record used by reads and joins.
// roomId carries no uniqueness guarantee: several rooms may share one.
type Room struct {
	ID        string    `json:"id,omitempty" bson:"_id,omitempty"`
	RoomID    string    `json:"roomId" bson:"roomId"`
	Name      string    `json:"name" bson:"name"`
	CreatedAt time.Time `json:"createdAt,omitempty" bson:"created_at,omitempty"`
}
