package validators

import "go.mongodb.org/mongo-driver/bson"

// The registry stores caller-supplied attributes verbatim, so nothing is
// required here; the schema only types the conventional fields when present.
var RoomValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType":             "object",
		"additionalProperties": true,

		"properties": bson.M{
			"roomId": bson.M{
				"bsonType": "string",
			},
			"name": bson.M{
				"bsonType": "string",
			},
			"created_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}
