package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"roomly/internal/migrations/mongo/validators"
)

var (
	RoomsIndexes = []mongo.IndexModel{
		{Keys: bson.D{{Key: "roomId", Value: 1}}},
	}

	BookingsIndexes = []mongo.IndexModel{
		// Admission queries filter on (roomId, date); reads sort by created_at.
		{Keys: bson.D{
			{Key: "roomId", Value: 1},
			{Key: "date", Value: 1},
			{Key: "startTime", Value: 1},
		}},
		{Keys: bson.D{{Key: "customerName", Value: 1}}},
	}

	// expireAfterSeconds 0 makes expires_at itself the eviction moment, so
	// locks orphaned by a crashed request disappear on their own.
	BookingLocksIndexes = []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "expires_at", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(0),
		},
	}
)

func RunMigration(ctx context.Context, client *mongo.Client, dbName string) error {
	db := client.Database(dbName)
	fmt.Printf("Running Roomly Mongo migrations on database: %s\n", dbName)

	collections := []struct {
		Name      string
		Indexes   []mongo.IndexModel
		Validator bson.M
	}{
		{
			Name:      "Rooms",
			Indexes:   RoomsIndexes,
			Validator: validators.RoomValidator,
		},
		{
			Name:      "Bookings",
			Indexes:   BookingsIndexes,
			Validator: validators.BookingValidator,
		},
		{
			Name:      "Booking_locks",
			Indexes:   BookingLocksIndexes,
			Validator: validators.BookingLockValidator,
		},
	}

	for _, def := range collections {
		if err := ensureCollection(ctx, db, def.Name, def.Validator); err != nil {
			return fmt.Errorf("failed to ensure collection %s: %w", def.Name, err)
		}
		if err := ensureIndexes(ctx, db, def.Name, def.Indexes); err != nil {
			return fmt.Errorf("failed to ensure indexes for %s: %w", def.Name, err)
		}
	}

	fmt.Println("All migrations applied successfully.")
	return nil
}

func ensureCollection(ctx context.Context, db *mongo.Database, name string, validator bson.M) error {
	existing, err := db.ListCollectionNames(ctx, bson.D{{Key: "name", Value: name}})
	if err != nil {
		return err
	}

	if len(existing) == 0 {
		fmt.Printf("Creating collection: %s\n", name)
		opts := options.CreateCollection().SetValidator(validator)
		if err := db.CreateCollection(ctx, name, opts); err != nil {
			return fmt.Errorf("failed creating %s: %w", name, err)
		}
		return nil
	}

	fmt.Printf("Collection %s already exists, updating validator\n", name)
	command := bson.D{
		{Key: "collMod", Value: name},
		{Key: "validator", Value: validator},
	}
	if err := db.RunCommand(ctx, command).Err(); err != nil {
		fmt.Printf("Warning: failed updating validator for %s: %v\n", name, err)
	}

	return nil
}

func ensureIndexes(ctx context.Context, db *mongo.Database, name string, models []mongo.IndexModel) error {
	if _, err := db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
		return err
	}
	fmt.Printf("Ensured indexes for %s\n", name)
	return nil
}
