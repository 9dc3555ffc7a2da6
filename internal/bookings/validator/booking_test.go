package validator

import (
	"testing"

	"roomly/pkg/logger"
	"roomly/pkg/model"
)

func testValidator() *BookingValidator {
	log := logger.New(logger.Config{
		Level:   "error",
		Format:  logger.JSON,
		Service: "test",
	})
	return NewBookingValidator(log)
}

func validBooking() *model.Booking {
	return &model.Booking{
		RoomID:       "R1",
		CustomerName: "Alice",
		Date:         "2024-01-01",
		StartTime:    "09:00",
		EndTime:      "10:00",
	}
}

func TestValidate_AcceptsWellFormedBooking(t *testing.T) {
	v := testValidator()

	if err := v.Validate(validBooking()); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	withStatus := validBooking()
	withStatus.Status = "confirmed"
	if err := v.Validate(withStatus); err != nil {
		t.Errorf("status is optional, got error: %v", err)
	}
}

func TestValidate_RequiredFields(t *testing.T) {
	v := testValidator()

	tests := []struct {
		name   string
		mutate func(*model.Booking)
	}{
		{"missing roomId", func(b *model.Booking) { b.RoomID = "" }},
		{"missing customerName", func(b *model.Booking) { b.CustomerName = "" }},
		{"missing date", func(b *model.Booking) { b.Date = "" }},
		{"missing startTime", func(b *model.Booking) { b.StartTime = "" }},
		{"missing endTime", func(b *model.Booking) { b.EndTime = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := validBooking()
			tt.mutate(b)
			if err := v.Validate(b); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestValidate_TimeFormat(t *testing.T) {
	v := testValidator()

	tests := []struct {
		name       string
		start, end string
		valid      bool
	}{
		{"well formed", "09:00", "10:00", true},
		{"midnight boundary", "00:00", "23:59", true},
		{"hour out of range", "24:00", "25:00", false},
		{"minute out of range", "09:60", "10:00", false},
		{"no leading zero", "9:00", "10:00", false},
		{"with seconds", "09:00:00", "10:00:00", false},
		{"free text", "9am", "10am", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := validBooking()
			b.StartTime = tt.start
			b.EndTime = tt.end
			err := v.Validate(b)
			if tt.valid && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.valid && err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestValidate_StartMustPrecedeEnd(t *testing.T) {
	v := testValidator()

	equal := validBooking()
	equal.StartTime = "10:00"
	equal.EndTime = "10:00"
	if err := v.Validate(equal); err == nil {
		t.Error("expected an error for start == end")
	}

	inverted := validBooking()
	inverted.StartTime = "11:00"
	inverted.EndTime = "10:00"
	if err := v.Validate(inverted); err == nil {
		t.Error("expected an error for start > end")
	}
}
