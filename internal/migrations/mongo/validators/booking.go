package validators

import "go.mongodb.org/mongo-driver/bson"

var BookingValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"roomId",
			"customerName",
			"date",
			"startTime",
			"endTime",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "string",
			},

			"roomId": bson.M{
				"bsonType": "string",
			},

			"customerName": bson.M{
				"bsonType":  "string",
				"minLength": 1,
				"maxLength": 100,
			},

			"date": bson.M{
				"bsonType": "string",
			},

			"startTime": bson.M{
				"bsonType": "string",
				"pattern":  "^([01][0-9]|2[0-3]):[0-5][0-9]$",
			},

			"endTime": bson.M{
				"bsonType": "string",
				"pattern":  "^([01][0-9]|2[0-3]):[0-5][0-9]$",
			},

			"status": bson.M{
				"bsonType":  "string",
				"maxLength": 50,
			},

			"created_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}
