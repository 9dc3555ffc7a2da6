package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"

	apperrors "roomly/pkg/errors"
	"roomly/pkg/logger"
	"roomly/pkg/model"
)

// Mock service for testing
type mockBookingService struct {
	createFunc               func(ctx context.Context, booking *model.Booking) error
	listRoomBookingsFunc     func(ctx context.Context) ([]model.RoomBookingRow, error)
	listCustomerBookingsFunc func(ctx context.Context) ([]model.CustomerBookingRow, error)
	getCustomerHistoryFunc   func(ctx context.Context, customerName string) ([]model.CustomerHistoryRow, error)
}

func (m *mockBookingService) Create(ctx context.Context, booking *model.Booking) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, booking)
	}
	return nil
}

func (m *mockBookingService) ListRoomBookings(ctx context.Context) ([]model.RoomBookingRow, error) {
	if m.listRoomBookingsFunc != nil {
		return m.listRoomBookingsFunc(ctx)
	}
	return []model.RoomBookingRow{}, nil
}

func (m *mockBookingService) ListCustomerBookings(ctx context.Context) ([]model.CustomerBookingRow, error) {
	if m.listCustomerBookingsFunc != nil {
		return m.listCustomerBookingsFunc(ctx)
	}
	return []model.CustomerBookingRow{}, nil
}

func (m *mockBookingService) GetCustomerHistory(ctx context.Context, customerName string) ([]model.CustomerHistoryRow, error) {
	if m.getCustomerHistoryFunc != nil {
		return m.getCustomerHistoryFunc(ctx, customerName)
	}
	return []model.CustomerHistoryRow{}, nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{
		Level:   "error",
		Format:  logger.JSON,
		Service: "test",
	})
}

func newRouter(svc *mockBookingService) *httprouter.Router {
	router := httprouter.New()
	NewBookingHandler(svc, testLogger()).RegisterRoutes(router)
	return router
}

func TestCreate_Success(t *testing.T) {
	var received *model.Booking
	router := newRouter(&mockBookingService{
		createFunc: func(ctx context.Context, booking *model.Booking) error {
			booking.ID = "b-1"
			received = booking
			return nil
		},
	})

	body := `{"roomId":"R1","date":"2024-01-01","startTime":"09:00","endTime":"10:00","customerName":"Alice"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if received == nil || received.RoomID != "R1" || received.CustomerName != "Alice" {
		t.Errorf("unexpected decoded booking: %+v", received)
	}

	var resp struct {
		Data model.Booking `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Data.ID != "b-1" {
		t.Errorf("expected bookingId in response, got %+v", resp.Data)
	}
}

func TestCreate_SlotConflictIsBadRequest(t *testing.T) {
	router := newRouter(&mockBookingService{
		createFunc: func(ctx context.Context, booking *model.Booking) error {
			return apperrors.SlotConflict("requested interval overlaps an existing booking")
		},
	})

	body := `{"roomId":"R1","date":"2024-01-01","startTime":"10:00","endTime":"11:00","customerName":"Bob"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestCreate_InvalidBody(t *testing.T) {
	router := newRouter(&mockBookingService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestCreate_StoreFailureIsServerError(t *testing.T) {
	router := newRouter(&mockBookingService{
		createFunc: func(ctx context.Context, booking *model.Booking) error {
			return apperrors.StoreUnavailable("Failed to create booking", nil)
		},
	})

	body := `{"roomId":"R1","date":"2024-01-01","startTime":"09:00","endTime":"10:00","customerName":"Alice"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
}

func TestListRoomBookings(t *testing.T) {
	router := newRouter(&mockBookingService{
		listRoomBookingsFunc: func(ctx context.Context) ([]model.RoomBookingRow, error) {
			return []model.RoomBookingRow{
				{RoomName: "Hall A", RoomID: "R1", CustomerName: "Alice", Date: "2024-01-01", StartTime: "09:00", EndTime: "10:00"},
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/rooms", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Data []model.RoomBookingRow `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Data) != 1 || resp.Data[0].RoomName != "Hall A" {
		t.Errorf("unexpected rows: %+v", resp.Data)
	}
}

func TestCustomerHistory_EmptyIsSuccess(t *testing.T) {
	var requestedName string
	router := newRouter(&mockBookingService{
		getCustomerHistoryFunc: func(ctx context.Context, customerName string) ([]model.CustomerHistoryRow, error) {
			requestedName = customerName
			return []model.CustomerHistoryRow{}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/customers/NoSuchCustomer", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for an unknown customer, got %d", rec.Code)
	}
	if requestedName != "NoSuchCustomer" {
		t.Errorf("expected path parameter to be passed through, got %q", requestedName)
	}

	var resp struct {
		Data []model.CustomerHistoryRow `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Data == nil || len(resp.Data) != 0 {
		t.Errorf("expected an empty data array, got %+v", resp.Data)
	}
}

func TestCustomerHistory_QuirkFields(t *testing.T) {
	router := newRouter(&mockBookingService{
		getCustomerHistoryFunc: func(ctx context.Context, customerName string) ([]model.CustomerHistoryRow, error) {
			return []model.CustomerHistoryRow{
				{
					CustomerName: "Alice",
					RoomName:     "R1",
					Date:         "2024-01-01",
					StartTime:    "09:00",
					EndTime:      "10:00",
					BookingID:    "b-1",
					BookingDate:  "2024-01-01",
				},
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/customers/Alice", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Data []map[string]any `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Data) != 1 {
		t.Fatalf("expected 1 row, got %d", len(resp.Data))
	}

	row := resp.Data[0]
	// Legacy field naming: roomName carries the identifier, and the date is
	// duplicated under bookingDate.
	if row["roomName"] != "R1" {
		t.Errorf("expected roomName to carry the roomId, got %v", row["roomName"])
	}
	if row["bookingDate"] != row["date"] {
		t.Errorf("expected bookingDate to duplicate date, got %v vs %v", row["bookingDate"], row["date"])
	}
}
