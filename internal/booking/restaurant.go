package booking

import "strings"

type RestaurantRequest struct {
	Location string
	Date     string
	Time     string
	Guests   int
	Cuisine  string
}

type RestaurantResult struct {
	ReservationID string
	Restaurant    string
	Location      string
	Date          string
	Time          string
	Guests        int
	Cuisine       string
	TotalPrice    int
}

var restaurantsByCity = map[string][]string{
	"Beijing":  {"Peking Duck House", "Lotus Garden", "Dragon Palace"},
	"London":   {"The Ivy", "Dishoom", "Sketch"},
	"New York": {"Le Bernardin", "Katz's Delicatessen", "Gramercy Tavern"},
}

var cuisineRates = map[string]int{
	"international": 30,
	"chinese":       25,
	"indian":        20,
	"french":        40,
}

const fallbackCuisineRate = 30

// BookRestaurant fabricates a table reservation with a per-head price
// estimate derived from the cuisine.
func BookRestaurant(req RestaurantRequest) (RestaurantResult, error) {
	location := strings.TrimSpace(req.Location)
	if location == "" {
		return RestaurantResult{}, validationf("location is required")
	}
	if req.Date == "" || req.Time == "" {
		return RestaurantResult{}, validationf("date and time are required")
	}

	guests := req.Guests
	if guests < 1 {
		guests = 2
	}
	cuisine := strings.TrimSpace(req.Cuisine)
	if cuisine == "" {
		cuisine = "international"
	}

	names, ok := restaurantsByCity[location]
	if !ok {
		names = []string{location + " Bistro"}
	}

	rate, ok := cuisineRates[strings.ToLower(cuisine)]
	if !ok {
		rate = fallbackCuisineRate
	}

	return RestaurantResult{
		ReservationID: confirmationID("RSV"),
		Restaurant:    pick(names),
		Location:      location,
		Date:          req.Date,
		Time:          req.Time,
		Guests:        guests,
		Cuisine:       cuisine,
		TotalPrice:    rate * guests,
	}, nil
}
