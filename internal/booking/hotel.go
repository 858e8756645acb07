package booking

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

type HotelRequest struct {
	Location string
	CheckIn  string
	CheckOut string
	Guests   int
	RoomType string
}

type HotelResult struct {
	ConfirmationID string
	Hotel          string
	Location       string
	CheckIn        string
	CheckOut       string
	Guests         int
	RoomType       string
	Nights         int
	TotalPrice     int
}

var hotelsByCity = map[string][]string{
	"Beijing":  {"Beijing Grand Hotel", "Great Wall Inn", "Forbidden City Hotel"},
	"London":   {"The Savoy", "The Ritz", "Park Plaza"},
	"New York": {"Plaza Hotel", "The Langham", "Times Square Inn"},
}

var hotelRoomRates = map[string]int{
	"standard": 100,
	"deluxe":   180,
	"suite":    300,
}

const fallbackRoomRate = 120

// BookHotel fabricates a hotel reservation. The stay must span at least one
// night and dates must be YYYY-MM-DD.
func BookHotel(req HotelRequest) (HotelResult, error) {
	location := strings.TrimSpace(req.Location)
	if location == "" {
		return HotelResult{}, validationf("location is required")
	}
	if req.CheckIn == "" || req.CheckOut == "" {
		return HotelResult{}, validationf("check-in and check-out dates are required")
	}

	guests := req.Guests
	if guests < 1 {
		guests = 1
	}
	roomType := strings.TrimSpace(req.RoomType)
	if roomType == "" {
		roomType = "standard"
	}

	checkIn, err := time.Parse(dateLayout, req.CheckIn)
	if err != nil {
		return HotelResult{}, validationf("invalid date format, please use YYYY-MM-DD: %v", err)
	}
	checkOut, err := time.Parse(dateLayout, req.CheckOut)
	if err != nil {
		return HotelResult{}, validationf("invalid date format, please use YYYY-MM-DD: %v", err)
	}
	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	if nights < 1 {
		return HotelResult{}, validationf("check-out date must be after check-in date")
	}

	names, ok := hotelsByCity[location]
	if !ok {
		names = []string{location + " International Hotel"}
	}

	rate, ok := hotelRoomRates[roomType]
	if !ok {
		rate = fallbackRoomRate
	}

	return HotelResult{
		ConfirmationID: confirmationID("BK"),
		Hotel:          pick(names),
		Location:       location,
		CheckIn:        req.CheckIn,
		CheckOut:       req.CheckOut,
		Guests:         guests,
		RoomType:       roomType,
		Nights:         nights,
		TotalPrice:     rate * nights * guests,
	}, nil
}
