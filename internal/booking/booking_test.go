package booking

import (
	"errors"
	"strings"
	"testing"
)

func TestBookHotel(t *testing.T) {
	tests := []struct {
		name      string
		req       HotelRequest
		wantErr   bool
		wantTotal int
		wantNight int
	}{
		{
			name:      "deluxe two nights two guests",
			req:       HotelRequest{Location: "London", CheckIn: "2026-09-10", CheckOut: "2026-09-12", Guests: 2, RoomType: "deluxe"},
			wantTotal: 180 * 2 * 2,
			wantNight: 2,
		},
		{
			name:      "unknown room type uses fallback rate",
			req:       HotelRequest{Location: "London", CheckIn: "2026-09-10", CheckOut: "2026-09-11", Guests: 1, RoomType: "penthouse"},
			wantTotal: 120,
			wantNight: 1,
		},
		{
			name:      "defaults applied for guests and room type",
			req:       HotelRequest{Location: "Beijing", CheckIn: "2026-09-10", CheckOut: "2026-09-11"},
			wantTotal: 100,
			wantNight: 1,
		},
		{
			name:    "missing location",
			req:     HotelRequest{CheckIn: "2026-09-10", CheckOut: "2026-09-12"},
			wantErr: true,
		},
		{
			name:    "checkout before checkin",
			req:     HotelRequest{Location: "London", CheckIn: "2026-09-12", CheckOut: "2026-09-10"},
			wantErr: true,
		},
		{
			name:    "same day stay",
			req:     HotelRequest{Location: "London", CheckIn: "2026-09-10", CheckOut: "2026-09-10"},
			wantErr: true,
		},
		{
			name:    "bad date format",
			req:     HotelRequest{Location: "London", CheckIn: "10/09/2026", CheckOut: "2026-09-12"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := BookHotel(tt.req)
			if tt.wantErr {
				var verr *ValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("err = %v, want ValidationError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("BookHotel: %v", err)
			}
			if res.TotalPrice != tt.wantTotal {
				t.Errorf("TotalPrice = %d, want %d", res.TotalPrice, tt.wantTotal)
			}
			if res.Nights != tt.wantNight {
				t.Errorf("Nights = %d, want %d", res.Nights, tt.wantNight)
			}
			if !strings.HasPrefix(res.ConfirmationID, "BK-") {
				t.Errorf("ConfirmationID = %q", res.ConfirmationID)
			}
		})
	}
}

func TestBookHotelUnknownCityFallback(t *testing.T) {
	res, err := BookHotel(HotelRequest{Location: "Reykjavik", CheckIn: "2026-09-10", CheckOut: "2026-09-11", Guests: 1})
	if err != nil {
		t.Fatalf("BookHotel: %v", err)
	}
	if res.Hotel != "Reykjavik International Hotel" {
		t.Errorf("Hotel = %q, want fallback name", res.Hotel)
	}
}

func TestBookRestaurant(t *testing.T) {
	tests := []struct {
		name      string
		req       RestaurantRequest
		wantErr   bool
		wantTotal int
	}{
		{
			name:      "french for four",
			req:       RestaurantRequest{Location: "London", Date: "2026-09-10", Time: "19:00", Guests: 4, Cuisine: "french"},
			wantTotal: 160,
		},
		{
			name:      "cuisine case insensitive",
			req:       RestaurantRequest{Location: "Beijing", Date: "2026-09-10", Time: "19:00", Guests: 2, Cuisine: "Chinese"},
			wantTotal: 50,
		},
		{
			name:      "defaults for guests and cuisine",
			req:       RestaurantRequest{Location: "New York", Date: "2026-09-10", Time: "19:00"},
			wantTotal: 60,
		},
		{
			name:    "missing date",
			req:     RestaurantRequest{Location: "London", Time: "19:00"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := BookRestaurant(tt.req)
			if tt.wantErr {
				var verr *ValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("err = %v, want ValidationError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("BookRestaurant: %v", err)
			}
			if res.TotalPrice != tt.wantTotal {
				t.Errorf("TotalPrice = %d, want %d", res.TotalPrice, tt.wantTotal)
			}
			if !strings.HasPrefix(res.ReservationID, "RSV-") {
				t.Errorf("ReservationID = %q", res.ReservationID)
			}
		})
	}
}

func TestBookCab(t *testing.T) {
	res, err := BookCab(CabRequest{PickupLocation: "London Heathrow Airport", Destination: "Downtown London", Passengers: 2, CabType: "premium"})
	if err != nil {
		t.Fatalf("BookCab: %v", err)
	}
	if res.Status != "confirmed" {
		t.Errorf("Status = %q", res.Status)
	}
	if res.CabType != "premium" {
		t.Errorf("CabType = %q", res.CabType)
	}
	// Airport routes are 15-45 km.
	if res.DistanceKM < 15 || res.DistanceKM > 45 {
		t.Errorf("DistanceKM = %v, want airport range", res.DistanceKM)
	}
	if res.BookingFee != 2.0 {
		t.Errorf("BookingFee = %v, want 2.0", res.BookingFee)
	}
	wantTotal := round2(res.BaseFare + res.BookingFee)
	if res.TotalFare != wantTotal {
		t.Errorf("TotalFare = %v, want %v", res.TotalFare, wantTotal)
	}
	if res.Vehicle.Model != "Mercedes E-Class" {
		t.Errorf("Vehicle.Model = %q", res.Vehicle.Model)
	}
	if !strings.HasPrefix(res.BookingID, "CAB-") {
		t.Errorf("BookingID = %q", res.BookingID)
	}
}

func TestBookCabValidation(t *testing.T) {
	tests := []struct {
		name string
		req  CabRequest
	}{
		{"missing pickup", CabRequest{Destination: "Downtown"}},
		{"missing destination", CabRequest{PickupLocation: "Downtown"}},
		{"too many passengers", CabRequest{PickupLocation: "A", Destination: "B", Passengers: 7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := BookCab(tt.req); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestBookCabNormalizesUnknowns(t *testing.T) {
	res, err := BookCab(CabRequest{PickupLocation: "A", Destination: "B", CabType: "spaceship", PaymentMethod: "barter"})
	if err != nil {
		t.Fatalf("BookCab: %v", err)
	}
	if res.CabType != "standard" {
		t.Errorf("CabType = %q, want standard", res.CabType)
	}
	if res.PaymentMethod != "card" {
		t.Errorf("PaymentMethod = %q, want card", res.PaymentMethod)
	}
	if res.Date == "" || res.Time == "" {
		t.Error("date/time defaults not applied")
	}
}

func TestBookFlight(t *testing.T) {
	tests := []struct {
		name      string
		req       FlightRequest
		wantErr   bool
		wantTotal int
		wantTrip  string
	}{
		{
			name:      "one way economy",
			req:       FlightRequest{Origin: "London", Destination: "New York", DepartureDate: "2026-09-10", Passengers: 2},
			wantTotal: 600,
			wantTrip:  "One-way",
		},
		{
			name:      "round trip business",
			req:       FlightRequest{Origin: "Beijing", Destination: "London", DepartureDate: "2026-09-10", ReturnDate: "2026-09-17", Passengers: 1, CabinClass: "business"},
			wantTotal: 2400,
			wantTrip:  "Round-trip",
		},
		{
			name:      "unknown cabin class fallback",
			req:       FlightRequest{Origin: "London", Destination: "New York", DepartureDate: "2026-09-10", CabinClass: "cargo"},
			wantTotal: 350,
			wantTrip:  "One-way",
		},
		{
			name:    "return before departure",
			req:     FlightRequest{Origin: "London", Destination: "New York", DepartureDate: "2026-09-10", ReturnDate: "2026-09-09"},
			wantErr: true,
		},
		{
			name:    "missing departure date",
			req:     FlightRequest{Origin: "London", Destination: "New York"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := BookFlight(tt.req)
			if tt.wantErr {
				var verr *ValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("err = %v, want ValidationError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("BookFlight: %v", err)
			}
			if res.TotalPrice != tt.wantTotal {
				t.Errorf("TotalPrice = %d, want %d", res.TotalPrice, tt.wantTotal)
			}
			if res.TripType != tt.wantTrip {
				t.Errorf("TripType = %q, want %q", res.TripType, tt.wantTrip)
			}
		})
	}
}

func TestBookFlightUnknownRoute(t *testing.T) {
	res, err := BookFlight(FlightRequest{Origin: "Oslo", Destination: "Lima", DepartureDate: "2026-09-10"})
	if err != nil {
		t.Fatalf("BookFlight: %v", err)
	}
	if res.Airline != "Oslo-Lima Airways" {
		t.Errorf("Airline = %q, want fallback route airline", res.Airline)
	}
}

func TestExecuteVotedRestaurantBooking(t *testing.T) {
	req := VotedRestaurantRequest{
		GroupID: "grp-1",
		RestaurantRequest: RestaurantRequest{
			Location: "London", Date: "Tomorrow", Time: "19:00 (7 PM)", Guests: 4, Cuisine: "French",
		},
	}
	res, err := ExecuteVotedRestaurantBooking(req)
	if err != nil {
		t.Fatalf("ExecuteVotedRestaurantBooking: %v", err)
	}
	if res.Status != StatusBookingConfirmed {
		t.Errorf("Status = %q, want %q", res.Status, StatusBookingConfirmed)
	}
	if res.GroupID != "grp-1" {
		t.Errorf("GroupID = %q", res.GroupID)
	}
	if res.Booking.TotalPrice != 160 {
		t.Errorf("Booking.TotalPrice = %d, want 160", res.Booking.TotalPrice)
	}

	if _, err := ExecuteVotedRestaurantBooking(VotedRestaurantRequest{}); err == nil {
		t.Error("expected validation error for missing group")
	}
}

func TestGenerateImage(t *testing.T) {
	res, err := GenerateImage("A cat in a hat!")
	if err != nil {
		t.Fatalf("GenerateImage: %v", err)
	}
	if !strings.HasPrefix(res.URL, "https://images.groupbook.app/generated/a-cat-in-a-hat-") {
		t.Errorf("URL = %q", res.URL)
	}
	if _, err := GenerateImage("  "); err == nil {
		t.Error("expected validation error for empty prompt")
	}
}
