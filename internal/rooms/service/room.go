package service

import (
	"context"
	"time"

	"roomly/internal/rooms/repository"
	"roomly/pkg/config"
	apperrors "roomly/pkg/errors"
	"roomly/pkg/events"
	"roomly/pkg/model"
)

type RoomService interface {
	Create(ctx context.Context, attrs model.RoomAttributes) (*model.Room, error)
	GetAll(ctx context.Context) ([]*model.Room, error)
	FindByRoomID(ctx context.Context, roomID string) ([]*model.Room, error)
}

type roomService struct {
	repo      repository.RoomRepository
	publisher events.Publisher
	cfg       *config.Config
}

func NewRoomService(repo repository.RoomRepository, publisher events.Publisher, cfg *config.Config) RoomService {
	return &roomService{
		repo:      repo,
		publisher: publisher,
		cfg:       cfg,
	}
}

func (s *roomService) Create(ctx context.Context, attrs model.RoomAttributes) (*model.Room, error) {
	room, err := s.repo.Create(ctx, attrs)
	if err != nil {
		s.cfg.Log.Error("Failed to create room", "error", err)
		return nil, apperrors.StoreUnavailable("Failed to create room", err)
	}

	s.cfg.Log.Info("Room created successfully",
		"id", room.ID,
		"room_id", room.RoomID,
		"name", room.Name,
	)

	s.publishCreated(ctx, room)
	return room, nil
}

func (s *roomService) GetAll(ctx context.Context) ([]*model.Room, error) {
	rooms, err := s.repo.FindAll(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to list rooms", "error", err)
		return nil, apperrors.StoreUnavailable("Failed to retrieve rooms", err)
	}

	if rooms == nil {
		rooms = []*model.Room{}
	}
	return rooms, nil
}

func (s *roomService) FindByRoomID(ctx context.Context, roomID string) ([]*model.Room, error) {
	if roomID == "" {
		return nil, apperrors.InvalidInput("roomId cannot be empty")
	}

	rooms, err := s.repo.FindByRoomID(ctx, roomID)
	if err != nil {
		s.cfg.Log.Error("Failed to find rooms by roomId", "room_id", roomID, "error", err)
		return nil, apperrors.StoreUnavailable("Failed to retrieve rooms", err)
	}

	if rooms == nil {
		rooms = []*model.Room{}
	}
	return rooms, nil
}

func (s *roomService) publishCreated(ctx context.Context, room *model.Room) {
	key := room.RoomID
	if key == "" {
		key = room.ID
	}
	err := s.publisher.Publish(ctx, events.TypeRoomCreated, key, events.RoomCreated{
		RoomID: room.RoomID,
		Name:   room.Name,
		At:     time.Now().UTC(),
	})
	if err != nil {
		s.cfg.Log.Warn("Failed to publish room.created event", "room_id", room.RoomID, "error", err)
	}
}
