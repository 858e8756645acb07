package booking

import (
	"strings"
	"time"
)

type FlightRequest struct {
	Origin        string
	Destination   string
	DepartureDate string
	ReturnDate    string
	Passengers    int
	CabinClass    string
}

type FlightResult struct {
	ConfirmationID string
	Airline        string
	Origin         string
	Destination    string
	DepartureDate  string
	ReturnDate     string
	Passengers     int
	CabinClass     string
	TripType       string
	TotalPrice     int
	Days           int
}

type route struct {
	origin, destination string
}

var airlinesByRoute = map[route][]string{
	{"Beijing", "London"}:  {"Air China", "British Airways", "China Southern"},
	{"New York", "London"}: {"British Airways", "American Airlines", "Virgin Atlantic"},
	{"London", "New York"}: {"Delta", "United", "British Airways"},
}

var cabinFares = map[string]int{
	"economy":  300,
	"premium":  600,
	"business": 1200,
	"first":    2000,
}

const fallbackCabinFare = 350

// BookFlight fabricates a flight booking. A return date makes it a
// round-trip at double the fare; the return must be after departure.
func BookFlight(req FlightRequest) (FlightResult, error) {
	origin := strings.TrimSpace(req.Origin)
	destination := strings.TrimSpace(req.Destination)
	if origin == "" || destination == "" {
		return FlightResult{}, validationf("origin and destination are required")
	}
	if req.DepartureDate == "" {
		return FlightResult{}, validationf("departure date is required")
	}

	passengers := req.Passengers
	if passengers < 1 {
		passengers = 1
	}
	cabinClass := strings.TrimSpace(req.CabinClass)
	if cabinClass == "" {
		cabinClass = "economy"
	}

	departure, err := time.Parse(dateLayout, req.DepartureDate)
	if err != nil {
		return FlightResult{}, validationf("invalid date format, please use YYYY-MM-DD: %v", err)
	}

	tripType := "One-way"
	days := 1
	if req.ReturnDate != "" {
		ret, err := time.Parse(dateLayout, req.ReturnDate)
		if err != nil {
			return FlightResult{}, validationf("invalid date format, please use YYYY-MM-DD: %v", err)
		}
		if !ret.After(departure) {
			return FlightResult{}, validationf("return date must be after departure date")
		}
		tripType = "Round-trip"
		days = int(ret.Sub(departure).Hours() / 24)
	}

	airlines, ok := airlinesByRoute[route{origin, destination}]
	if !ok {
		airlines = []string{origin + "-" + destination + " Airways"}
	}

	fare, ok := cabinFares[strings.ToLower(cabinClass)]
	if !ok {
		fare = fallbackCabinFare
	}
	total := fare * passengers
	if tripType == "Round-trip" {
		total *= 2
	}

	return FlightResult{
		ConfirmationID: confirmationID("FL"),
		Airline:        pick(airlines),
		Origin:         origin,
		Destination:    destination,
		DepartureDate:  req.DepartureDate,
		ReturnDate:     req.ReturnDate,
		Passengers:     passengers,
		CabinClass:     cabinClass,
		TripType:       tripType,
		TotalPrice:     total,
		Days:           days,
	}, nil
}
