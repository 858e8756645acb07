package booking

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

type CabRequest struct {
	PickupLocation string
	Destination    string
	Date           string
	Time           string
	Passengers     int
	CabType        string
	PaymentMethod  string
}

type Vehicle struct {
	Model       string
	Color       string
	Year        string
	PlateNumber string
}

type CabResult struct {
	BookingID       string
	Company         string
	DriverName      string
	DriverRating    float64
	Vehicle         Vehicle
	PickupLocation  string
	Destination     string
	Date            string
	Time            string
	Passengers      int
	CabType         string
	DistanceKM      float64
	DurationMinutes int
	BaseFare        float64
	BookingFee      float64
	TotalFare       float64
	PaymentMethod   string
	Status          string
}

const cabBookingFee = 2.0

var cabFaresPerKM = map[string]float64{
	"standard": 2.5,
	"premium":  4.0,
	"luxury":   6.0,
	"van":      3.5,
	"bike":     1.5,
}

var cabCompanies = map[string][]string{
	"Beijing":  {"Beijing Taxi Co.", "Didi Chuxing", "Beijing Express"},
	"London":   {"London Black Cabs", "Uber London", "Addison Lee"},
	"New York": {"Yellow Cab NYC", "Uber NYC", "Lyft NYC"},
}

var fallbackCabCompanies = []string{"City Taxi", "Express Cab", "Metro Ride"}

var cabDrivers = []string{
	"John Smith", "Maria Garcia", "Ahmed Hassan", "Li Wei",
	"Sarah Johnson", "Carlos Rodriguez", "Priya Patel", "David Kim",
}

var cabVehicles = map[string]Vehicle{
	"standard": {Model: "Toyota Camry", Color: "White", Year: "2022"},
	"premium":  {Model: "Mercedes E-Class", Color: "Black", Year: "2023"},
	"luxury":   {Model: "BMW 7 Series", Color: "Silver", Year: "2023"},
	"van":      {Model: "Toyota Sienna", Color: "Blue", Year: "2022"},
	"bike":     {Model: "Honda CB150R", Color: "Red", Year: "2023"},
}

// BookCab fabricates a ride booking with an estimated distance, fare, and an
// assigned driver and vehicle.
func BookCab(req CabRequest) (CabResult, error) {
	pickup := strings.TrimSpace(req.PickupLocation)
	if pickup == "" {
		return CabResult{}, validationf("pickup location is required")
	}
	destination := strings.TrimSpace(req.Destination)
	if destination == "" {
		return CabResult{}, validationf("destination is required")
	}

	passengers := req.Passengers
	if passengers < 1 {
		passengers = 1
	}
	if passengers > 6 {
		return CabResult{}, validationf("maximum 6 passengers allowed per cab")
	}

	cabType := strings.ToLower(strings.TrimSpace(req.CabType))
	if _, ok := cabFaresPerKM[cabType]; !ok {
		cabType = "standard"
	}

	payment := strings.ToLower(strings.TrimSpace(req.PaymentMethod))
	switch payment {
	case "card", "cash", "digital_wallet":
	default:
		payment = "card"
	}

	date := req.Date
	if date == "" {
		date = time.Now().Format(dateLayout)
	}
	clock := req.Time
	if clock == "" {
		clock = time.Now().Format("15:04")
	}

	distance := estimateDistance(pickup, destination)
	baseFare := cabFaresPerKM[cabType] * distance

	companies := fallbackCabCompanies
	for city, names := range cabCompanies {
		if strings.Contains(strings.ToLower(pickup), strings.ToLower(city)) {
			companies = names
			break
		}
	}

	vehicle := cabVehicles[cabType]
	vehicle.PlateNumber = fmt.Sprintf("%c%04d", strings.ToUpper(cabType)[0], 1000+rand.Intn(9000))

	return CabResult{
		BookingID:       confirmationID("CAB"),
		Company:         pick(companies),
		DriverName:      pick(cabDrivers),
		DriverRating:    round1(4.2 + rand.Float64()*0.8),
		Vehicle:         vehicle,
		PickupLocation:  pickup,
		Destination:     destination,
		Date:            date,
		Time:            clock,
		Passengers:      passengers,
		CabType:         cabType,
		DistanceKM:      round1(distance),
		DurationMinutes: int(distance * 2.5),
		BaseFare:        round2(baseFare),
		BookingFee:      cabBookingFee,
		TotalFare:       round2(baseFare + cabBookingFee),
		PaymentMethod:   payment,
		Status:          "confirmed",
	}, nil
}

// estimateDistance guesses a trip length from location keywords. Airport
// runs are long, downtown hops short.
func estimateDistance(pickup, destination string) float64 {
	route := strings.ToLower(pickup + " " + destination)
	switch {
	case strings.Contains(route, "airport"):
		return 15.0 + rand.Float64()*30.0
	case strings.Contains(route, "downtown"):
		return 5.0 + rand.Float64()*15.0
	case strings.Contains(route, "suburb"):
		return 10.0 + rand.Float64()*25.0
	default:
		return 3.0 + rand.Float64()*22.0
	}
}

func round1(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
