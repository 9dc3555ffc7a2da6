package model

// Reporting rows produced by the ledger's read-time joins. The join is a
// lookup-by-value correlation on roomId, not an enforced relation: a booking
// whose roomId matches no room contributes no rows, and vice versa.

type RoomBookingRow struct {
	RoomName     string `json:"roomName"`
	RoomID       string `json:"roomId"`
	Status       string `json:"status,omitempty"`
	CustomerName string `json:"customerName"`
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
}

type CustomerBookingRow struct {
	CustomerName string `json:"customerName"`
	RoomName     string `json:"roomName"`
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
}

// CustomerHistoryRow preserves two quirks of the legacy wire format: RoomName
// actually carries the roomId, and the booking date appears twice (the second
// occurrence under the bookingDate key, since JSON cannot repeat a key).
type CustomerHistoryRow struct {
	CustomerName string `json:"customerName"`
	RoomName     string `json:"roomName"`
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	BookingID    string `json:"bookingId"`
	BookingDate  string `json:"bookingDate"`
	Status       string `json:"status,omitempty"`
}
