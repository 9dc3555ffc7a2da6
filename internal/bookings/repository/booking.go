package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"roomly/pkg/config"
	mongotx "roomly/pkg/db/mongo"
	"roomly/pkg/model"
)

const (
	CollectionName = "Bookings"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *model.Booking) error
	FindAll(ctx context.Context) ([]*model.Booking, error)
	FindByRoomID(ctx context.Context, roomID string) ([]*model.Booking, error)
	FindByRoomAndDate(ctx context.Context, roomID, date string) ([]*model.Booking, error)
	FindByCustomer(ctx context.Context, customerName string) ([]*model.Booking, error)
	ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error
}

type mongoBookingRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
	txManager  mongotx.TransactionManager
}

func NewMongoBookingRepository(cfg *config.Config) BookingRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoBookingRepository{
		cfg:        cfg,
		collection: db.Collection(CollectionName),
		txManager:  mongotx.NewTransactionManager(cfg.Client.Mongo),
	}
}

// withTimeout wraps the context with a timeout unless it is a transaction
// SessionContext, which cannot be wrapped without breaking session semantics.
func (r *mongoBookingRepository) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.(mongo.SessionContext); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

func (r *mongoBookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	booking.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	if _, err := r.collection.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

func (r *mongoBookingRepository) FindAll(ctx context.Context) ([]*model.Booking, error) {
	return r.find(ctx, bson.M{})
}

func (r *mongoBookingRepository) FindByRoomID(ctx context.Context, roomID string) ([]*model.Booking, error) {
	return r.find(ctx, bson.M{"roomId": roomID})
}

func (r *mongoBookingRepository) FindByRoomAndDate(ctx context.Context, roomID, date string) ([]*model.Booking, error) {
	return r.find(ctx, bson.M{"roomId": roomID, "date": date})
}

func (r *mongoBookingRepository) FindByCustomer(ctx context.Context, customerName string) ([]*model.Booking, error) {
	// Exact, case-sensitive equality; no fuzzy matching.
	return r.find(ctx, bson.M{"customerName": customerName})
}

func (r *mongoBookingRepository) find(ctx context.Context, filter bson.M) ([]*model.Booking, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []*model.Booking
	if err = cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}

	return bookings, nil
}

func (r *mongoBookingRepository) ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error {
	return r.txManager.ExecuteTransaction(ctx, fn)
}
