package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	bookingserrors "roomly/internal/bookings/errors"
	"roomly/internal/bookings/repository"
	"roomly/internal/bookings/validator"
	roomsrepository "roomly/internal/rooms/repository"
	"roomly/pkg/config"
	apperrors "roomly/pkg/errors"
	"roomly/pkg/events"
	"roomly/pkg/model"
)

type BookingService interface {
	Create(ctx context.Context, booking *model.Booking) error
	ListRoomBookings(ctx context.Context) ([]model.RoomBookingRow, error)
	ListCustomerBookings(ctx context.Context) ([]model.CustomerBookingRow, error)
	GetCustomerHistory(ctx context.Context, customerName string) ([]model.CustomerHistoryRow, error)
}

type bookingService struct {
	repo      repository.BookingRepository
	lockRepo  repository.BookingLockRepository
	roomRepo  roomsrepository.RoomRepository
	validator *validator.BookingValidator
	publisher events.Publisher
	cfg       *config.Config
}

func NewBookingService(
	repo repository.BookingRepository,
	lockRepo repository.BookingLockRepository,
	roomRepo roomsrepository.RoomRepository,
	validator *validator.BookingValidator,
	publisher events.Publisher,
	cfg *config.Config,
) BookingService {
	return &bookingService{
		repo:      repo,
		lockRepo:  lockRepo,
		roomRepo:  roomRepo,
		validator: validator,
		publisher: publisher,
		cfg:       cfg,
	}
}

// IsOverlapping reports whether the candidate interval conflicts with an
// existing one on the same room and date. All comparisons are inclusive, so
// back-to-back bookings (one's end equals the other's start) do conflict.
// That boundary policy is load-bearing for compatibility; do not relax it to
// exclusive semantics. Times are "HH:MM" strings, which order lexicographically.
func IsOverlapping(candidateStart, candidateEnd, existingStart, existingEnd string) bool {
	if existingStart <= candidateStart && candidateStart <= existingEnd {
		return true
	}
	if existingStart <= candidateEnd && candidateEnd <= existingEnd {
		return true
	}
	if candidateStart <= existingStart && candidateEnd >= existingEnd {
		return true
	}
	return false
}

// Create admits a booking: it checks every existing booking on the same
// (roomId, date) against the overlap predicate and persists only on a clean
// pass. The check and the insert run under an advisory lock keyed by the slot,
// so concurrent requests for overlapping intervals serialize and all but one
// are rejected with a slot conflict.
func (s *bookingService) Create(ctx context.Context, booking *model.Booking) error {
	s.applyDefaults(booking)
	if err := s.validate(booking); err != nil {
		return err
	}

	lockID, err := s.acquireSlotLock(ctx, booking.RoomID, booking.Date)
	if err != nil {
		return err
	}
	defer func() {
		if releaseErr := s.releaseSlotLock(context.WithoutCancel(ctx), lockID); releaseErr != nil {
			s.cfg.Log.Warn("Failed to release booking lock", "lock_id", lockID, "error", releaseErr)
		}
	}()

	err = s.repo.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		if err := s.checkConflicts(sessCtx, booking); err != nil {
			return err
		}
		if err := s.repo.Create(sessCtx, booking); err != nil {
			return apperrors.StoreUnavailable("Failed to create booking", err)
		}
		return nil
	})
	if err != nil {
		if apperrors.AsAppError(err).Code != apperrors.CodeConflict {
			s.cfg.Log.Error("Failed to create booking", "error", err)
		}
		return err
	}

	s.cfg.Log.Info("Booking created successfully",
		"booking_id", booking.ID,
		"room_id", booking.RoomID,
		"date", booking.Date,
		"start_time", booking.StartTime,
		"end_time", booking.EndTime,
	)

	s.publishConfirmed(ctx, booking)
	return nil
}

// ListRoomBookings joins rooms to their bookings by roomId: one row per
// (room, booking) pair, rooms in registry order, bookings in store order.
// Rooms without bookings contribute no rows.
func (s *bookingService) ListRoomBookings(ctx context.Context) ([]model.RoomBookingRow, error) {
	rooms, err := s.roomRepo.FindAll(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to list rooms for join", "error", err)
		return nil, apperrors.StoreUnavailable("Failed to retrieve room bookings", err)
	}

	rows := []model.RoomBookingRow{}
	for _, room := range rooms {
		bookings, err := s.repo.FindByRoomID(ctx, room.RoomID)
		if err != nil {
			s.cfg.Log.Error("Failed to list bookings for room", "room_id", room.RoomID, "error", err)
			return nil, apperrors.StoreUnavailable("Failed to retrieve room bookings", err)
		}
		for _, b := range bookings {
			rows = append(rows, model.RoomBookingRow{
				RoomName:     room.Name,
				RoomID:       room.RoomID,
				Status:       b.Status,
				CustomerName: b.CustomerName,
				Date:         b.Date,
				StartTime:    b.StartTime,
				EndTime:      b.EndTime,
			})
		}
	}

	return rows, nil
}

// ListCustomerBookings is the symmetric join: one row per (booking, room)
// pair. A booking whose roomId matches no room contributes no rows.
func (s *bookingService) ListCustomerBookings(ctx context.Context) ([]model.CustomerBookingRow, error) {
	bookings, err := s.repo.FindAll(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to list bookings for join", "error", err)
		return nil, apperrors.StoreUnavailable("Failed to retrieve customer bookings", err)
	}

	rows := []model.CustomerBookingRow{}
	for _, b := range bookings {
		rooms, err := s.roomRepo.FindByRoomID(ctx, b.RoomID)
		if err != nil {
			s.cfg.Log.Error("Failed to find rooms for booking", "room_id", b.RoomID, "error", err)
			return nil, apperrors.StoreUnavailable("Failed to retrieve customer bookings", err)
		}
		for _, room := range rooms {
			rows = append(rows, model.CustomerBookingRow{
				CustomerName: b.CustomerName,
				RoomName:     room.Name,
				Date:         b.Date,
				StartTime:    b.StartTime,
				EndTime:      b.EndTime,
			})
		}
	}

	return rows, nil
}

// GetCustomerHistory returns every booking whose customerName equals the
// argument exactly. An unknown customer yields an empty sequence, not an
// error: the store query always returns a sequence, so a not-found branch
// here would be unreachable.
func (s *bookingService) GetCustomerHistory(ctx context.Context, customerName string) ([]model.CustomerHistoryRow, error) {
	if customerName == "" {
		return nil, apperrors.InvalidInput("customerName cannot be empty")
	}

	bookings, err := s.repo.FindByCustomer(ctx, customerName)
	if err != nil {
		s.cfg.Log.Error("Failed to retrieve customer history", "customer", customerName, "error", err)
		return nil, apperrors.StoreUnavailable("Failed to retrieve customer history", err)
	}

	rows := []model.CustomerHistoryRow{}
	for _, b := range bookings {
		rows = append(rows, model.CustomerHistoryRow{
			CustomerName: b.CustomerName,
			// roomName carries the identifier, not the display name. Legacy
			// consumers depend on this, so it stays.
			RoomName:    b.RoomID,
			Date:        b.Date,
			StartTime:   b.StartTime,
			EndTime:     b.EndTime,
			BookingID:   b.ID,
			BookingDate: b.Date,
			Status:      b.Status,
		})
	}

	return rows, nil
}

// --- Helpers ---

func (s *bookingService) applyDefaults(b *model.Booking) {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
}

func (s *bookingService) validate(booking *model.Booking) error {
	if err := s.validator.Validate(booking); err != nil {
		s.cfg.Log.Warn("Booking validation failed", "error", err)
		return apperrors.Validation("Booking validation failed", map[string]any{"error": err.Error()})
	}
	return nil
}

func (s *bookingService) checkConflicts(ctx context.Context, booking *model.Booking) error {
	existing, err := s.repo.FindByRoomAndDate(ctx, booking.RoomID, booking.Date)
	if err != nil {
		return apperrors.StoreUnavailable("Failed to check existing bookings", err)
	}

	for _, b := range existing {
		if b.ID == booking.ID {
			continue
		}
		if IsOverlapping(booking.StartTime, booking.EndTime, b.StartTime, b.EndTime) {
			return apperrors.SlotConflict(fmt.Sprintf(
				"%s: %s - %s on %s", bookingserrors.ErrSlotConflict, b.StartTime, b.EndTime, b.Date,
			))
		}
	}
	return nil
}

// acquireSlotLock takes the advisory lock for (roomId, date). When another
// request holds it, acquisition retries until the context expires, so
// contenders queue up behind the winner instead of failing spuriously; the
// losers then see the winner's booking and get a clean slot conflict.
func (s *bookingService) acquireSlotLock(ctx context.Context, roomID, date string) (string, error) {
	lockID := fmt.Sprintf("slot_%s_%s", roomID, date)

	for {
		_, err := s.lockRepo.Create(ctx, &model.BookingLock{
			ID:        lockID,
			ExpiresAt: time.Now().Add(s.cfg.SlotLockTTL),
		})
		if err == nil {
			return lockID, nil
		}
		if !errors.Is(err, bookingserrors.ErrLockHeld) {
			return "", apperrors.StoreUnavailable("Failed to acquire booking lock", err)
		}

		select {
		case <-ctx.Done():
			return "", apperrors.Timeout("Timed out waiting for the booking slot lock")
		case <-time.After(s.cfg.SlotLockRetryInterval):
		}
	}
}

func (s *bookingService) releaseSlotLock(ctx context.Context, lockID string) error {
	return s.lockRepo.Delete(ctx, lockID)
}

func (s *bookingService) publishConfirmed(ctx context.Context, b *model.Booking) {
	err := s.publisher.Publish(ctx, events.TypeBookingConfirmed, b.RoomID, events.BookingConfirmed{
		BookingID:    b.ID,
		RoomID:       b.RoomID,
		CustomerName: b.CustomerName,
		Date:         b.Date,
		StartTime:    b.StartTime,
		EndTime:      b.EndTime,
		Status:       b.Status,
		At:           time.Now().UTC(),
	})
	if err != nil {
		s.cfg.Log.Warn("Failed to publish booking.confirmed event", "booking_id", b.ID, "error", err)
	}
}
