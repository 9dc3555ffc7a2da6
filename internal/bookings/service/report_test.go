package service

import (
	"context"
	"reflect"
	"testing"

	apperrors "roomly/pkg/errors"
	"roomly/pkg/model"
)

func seedReportFixture(t *testing.T) *fixture {
	t.Helper()
	f := newFixture()
	ctx := context.Background()

	if _, err := f.rooms.Create(ctx, model.RoomAttributes{"roomId": "R1", "name": "Hall A"}); err != nil {
		t.Fatalf("seed room: %v", err)
	}
	if _, err := f.rooms.Create(ctx, model.RoomAttributes{"roomId": "R2", "name": "Hall B"}); err != nil {
		t.Fatalf("seed room: %v", err)
	}

	seed := []*model.Booking{
		booking("R1", "2024-01-01", "09:00", "10:00", "Alice"),
		booking("R1", "2024-01-02", "11:00", "12:00", "Bob"),
		// Orphan booking: no room carries roomId R9.
		booking("R9", "2024-01-01", "09:00", "10:00", "Mallory"),
	}
	for _, b := range seed {
		if err := f.service.Create(ctx, b); err != nil {
			t.Fatalf("seed booking: %v", err)
		}
	}
	return f
}

func TestListRoomBookings(t *testing.T) {
	f := seedReportFixture(t)
	ctx := context.Background()

	rows, err := f.service.ListRoomBookings(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// R1 contributes two rows in store order, R2 has no bookings and
	// contributes none, and the orphan booking on R9 never appears.
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d: %+v", len(rows), rows)
	}

	if rows[0].RoomName != "Hall A" || rows[0].CustomerName != "Alice" || rows[0].StartTime != "09:00" {
		t.Errorf("unexpected first row: %+v", rows[0])
	}
	if rows[1].CustomerName != "Bob" || rows[1].Date != "2024-01-02" {
		t.Errorf("unexpected second row: %+v", rows[1])
	}
}

func TestListCustomerBookings(t *testing.T) {
	f := seedReportFixture(t)
	ctx := context.Background()

	rows, err := f.service.ListCustomerBookings(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d: %+v", len(rows), rows)
	}
	for _, row := range rows {
		if row.RoomName != "Hall A" {
			t.Errorf("expected room name 'Hall A', got %q", row.RoomName)
		}
		if row.CustomerName == "Mallory" {
			t.Errorf("orphan booking must be excluded from the join: %+v", row)
		}
	}
}

func TestReads_AreIdempotent(t *testing.T) {
	f := seedReportFixture(t)
	ctx := context.Background()

	first, err := f.service.ListRoomBookings(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := f.service.ListRoomBookings(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated reads diverged:\n%+v\n%+v", first, second)
	}
}

func TestGetCustomerHistory(t *testing.T) {
	f := seedReportFixture(t)
	ctx := context.Background()

	rows, err := f.service.GetCustomerHistory(ctx, "Alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}

	row := rows[0]
	if row.CustomerName != "Alice" || row.Date != "2024-01-01" || row.StartTime != "09:00" || row.EndTime != "10:00" {
		t.Errorf("unexpected row: %+v", row)
	}
	// roomName carries the identifier, and the date appears twice.
	if row.RoomName != "R1" {
		t.Errorf("expected roomName to carry the roomId R1, got %q", row.RoomName)
	}
	if row.BookingDate != row.Date {
		t.Errorf("expected bookingDate to duplicate date, got %q vs %q", row.BookingDate, row.Date)
	}
	if row.BookingID == "" {
		t.Error("expected bookingId to be populated")
	}
}

func TestGetCustomerHistory_ExactMatchOnly(t *testing.T) {
	f := seedReportFixture(t)
	ctx := context.Background()

	for _, name := range []string{"alice", "Ali", "Alice "} {
		rows, err := f.service.GetCustomerHistory(ctx, name)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", name, err)
		}
		if len(rows) != 0 {
			t.Errorf("expected no rows for %q, got %d", name, len(rows))
		}
	}
}

func TestGetCustomerHistory_UnknownCustomerIsEmptySuccess(t *testing.T) {
	f := seedReportFixture(t)

	rows, err := f.service.GetCustomerHistory(context.Background(), "NoSuchCustomer")
	if err != nil {
		t.Fatalf("an unknown customer must not be an error: %v", err)
	}
	if rows == nil {
		t.Fatal("expected an empty sequence, not nil")
	}
	if len(rows) != 0 {
		t.Errorf("expected 0 rows, got %d", len(rows))
	}
}

func TestGetCustomerHistory_EmptyNameRejected(t *testing.T) {
	f := newFixture()

	_, err := f.service.GetCustomerHistory(context.Background(), "")
	if err == nil {
		t.Fatal("expected an error for an empty customer name")
	}
	if code := appErrorCode(t, err); code != apperrors.CodeInvalidInput {
		t.Errorf("expected code %s, got %s", apperrors.CodeInvalidInput, code)
	}
}
