package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"roomly/pkg/config"
	"roomly/pkg/model"
)

const (
	CollectionName = "Rooms"
)

type RoomRepository interface {
	Create(ctx context.Context, attrs model.RoomAttributes) (*model.Room, error)
	FindAll(ctx context.Context) ([]*model.Room, error)
	FindByRoomID(ctx context.Context, roomID string) ([]*model.Room, error)
}

type mongoRoomRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoRoomRepository(cfg *config.Config) RoomRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoRoomRepository{
		cfg:        cfg,
		collection: db.Collection(CollectionName),
	}
}

func (r *mongoRoomRepository) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.(mongo.SessionContext); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

// Create stores the caller-supplied attributes verbatim. The registry enforces
// nothing: a document without roomId or name is accepted, it just never
// matches a later lookup.
func (r *mongoRoomRepository) Create(ctx context.Context, attrs model.RoomAttributes) (*model.Room, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	now := time.Now().UTC().Truncate(time.Millisecond)

	doc := bson.M{}
	for k, v := range attrs {
		doc[k] = v
	}
	// String _id so reads decode into the typed projection without a custom codec.
	if _, ok := doc["_id"]; !ok {
		doc["_id"] = uuid.NewString()
	}
	doc["created_at"] = now

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to create room: %w", err)
	}

	room := projectRoom(attrs)
	if id, ok := doc["_id"].(string); ok {
		room.ID = id
	}
	room.CreatedAt = now
	return room, nil
}

func (r *mongoRoomRepository) FindAll(ctx context.Context) ([]*model.Room, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to find rooms: %w", err)
	}
	defer cursor.Close(ctx)

	var rooms []*model.Room
	if err = cursor.All(ctx, &rooms); err != nil {
		return nil, fmt.Errorf("failed to decode rooms: %w", err)
	}

	return rooms, nil
}

func (r *mongoRoomRepository) FindByRoomID(ctx context.Context, roomID string) ([]*model.Room, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	cursor, err := r.collection.Find(ctx, bson.M{"roomId": roomID})
	if err != nil {
		return nil, fmt.Errorf("failed to find rooms by roomId: %w", err)
	}
	defer cursor.Close(ctx)

	var rooms []*model.Room
	if err = cursor.All(ctx, &rooms); err != nil {
		return nil, fmt.Errorf("failed to decode rooms: %w", err)
	}

	return rooms, nil
}

func projectRoom(attrs model.RoomAttributes) *model.Room {
	room := &model.Room{}
	if v, ok := attrs["roomId"].(string); ok {
		room.RoomID = v
	}
	if v, ok := attrs["name"].(string); ok {
		room.Name = v
	}
	return room
}
