package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	bookingserrors "roomly/internal/bookings/errors"
	"roomly/pkg/config"
	"roomly/pkg/model"
)

const (
	LockCollectionName = "Booking_locks"
)

// BookingLockRepository provides the advisory locks that close the
// check-then-act gap in booking admission. Acquisition relies on the unique
// _id index: a second insert for the same slot fails and is reported as
// ErrLockHeld. A TTL index on expires_at reaps locks left behind by crashed
// requests (see the migrations package).
type BookingLockRepository interface {
	Create(ctx context.Context, lock *model.BookingLock) (*model.BookingLock, error)
	Delete(ctx context.Context, lockID string) error
}

type mongoBookingLockRepository struct {
	collection *mongo.Collection
}

func NewBookingLockRepository(cfg *config.Config) BookingLockRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoBookingLockRepository{
		collection: db.Collection(LockCollectionName),
	}
}

// Create returns ErrLockHeld when another request already holds the lock.
func (r *mongoBookingLockRepository) Create(ctx context.Context, lock *model.BookingLock) (*model.BookingLock, error) {
	lock.CreatedAt = time.Now()

	if _, err := r.collection.InsertOne(ctx, lock); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, bookingserrors.ErrLockHeld
		}
		return nil, err
	}

	return lock, nil
}

func (r *mongoBookingLockRepository) Delete(ctx context.Context, lockID string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": lockID})
	return err
}
