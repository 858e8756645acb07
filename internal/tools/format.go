package tools

import (
	"fmt"
	"sort"
	"strings"

	"groupbook.app/concierge/internal/booking"
	"groupbook.app/concierge/internal/vote"
)

func formatHotel(_ Args, result any) string {
	res, ok := result.(booking.HotelResult)
	if !ok {
		return fallbackConfirmation("book_hotel")
	}
	return fmt.Sprintf("✅ Hotel booking confirmed!\n\n"+
		"🏨 Hotel: %s\n📍 Location: %s\n📅 Check-in: %s\n📅 Check-out: %s\n"+
		"👥 Guests: %d\n🛏️ Room Type: %s\n🌙 Nights: %d\n💰 Total Price: $%d\n"+
		"🆔 Confirmation ID: %s",
		res.Hotel, res.Location, res.CheckIn, res.CheckOut,
		res.Guests, res.RoomType, res.Nights, res.TotalPrice,
		res.ConfirmationID)
}

func formatRestaurant(_ Args, result any) string {
	res, ok := result.(booking.RestaurantResult)
	if !ok {
		return fallbackConfirmation("book_restaurant")
	}
	return fmt.Sprintf("✅ Restaurant reservation confirmed!\n\n"+
		"🍽️ Restaurant: %s\n📍 Location: %s\n📅 Date: %s\n🕐 Time: %s\n"+
		"👥 Guests: %d\n🍴 Cuisine: %s\n💰 Estimated Total: $%d\n🆔 Reservation ID: %s",
		res.Restaurant, res.Location, res.Date, res.Time,
		res.Guests, res.Cuisine, res.TotalPrice, res.ReservationID)
}

func formatRestaurantVote(_ Args, result any) string {
	res, ok := result.(vote.SessionResult)
	if !ok {
		return fallbackConfirmation("book_restaurant_vote")
	}
	switch res.Status {
	case vote.StatusVotesCreated:
		return fmt.Sprintf("✅ Created %d restaurant booking votes in group %s!\n\n"+
			"📊 Votes created for: %s\n"+
			"🗳️ Group members can now vote on each category separately.\n\n"+
			"Once all votes are complete, you can check the results and make the final booking.",
			len(res.CreatedVotes), res.GroupID, strings.Join(res.CreatedVotes, ", "))
	case vote.StatusNoVotesNeeded:
		return fmt.Sprintf("✅ All restaurant booking parameters are already provided for group %s!\n\n"+
			"You can proceed directly to booking with the provided parameters.", res.GroupID)
	default:
		return fmt.Sprintf("✅ Restaurant booking vote created!\n\n"+
			"🍽️ Group: %s\n📊 Status: Gathering preferences\n\n"+
			"The group will vote on the missing preferences, then you can use the final booking once all votes are collected.",
			res.GroupID)
	}
}

func formatVoteResults(_ Args, result any) string {
	res, ok := result.(vote.TallyResult)
	if !ok {
		return fallbackConfirmation("get_restaurant_vote_results")
	}
	if res.Status == vote.StatusNoVotesFound {
		return "📊 **Restaurant Vote Results**\n\nNo votes found for this group yet."
	}

	var b strings.Builder
	b.WriteString("📊 **Restaurant Vote Results**\n\n")
	for _, option := range orderedOptions(res.Results) {
		fmt.Fprintf(&b, "• %s: %d votes\n", option, res.Results[option])
	}
	b.WriteString("\n🏆 **Winning Options:**\n")
	for _, cat := range vote.Categories {
		if value, ok := res.WinningOptions[cat.Name]; ok {
			fmt.Fprintf(&b, "• %s: %s\n", cat.Label, value)
		}
	}
	for category, value := range res.WinningOptions {
		if !isCanonicalCategory(category) {
			fmt.Fprintf(&b, "• %s: %s\n", titleCase(category), value)
		}
	}
	return b.String()
}

func formatVotedBooking(_ Args, result any) string {
	res, ok := result.(booking.VotedRestaurantResult)
	if !ok {
		return fallbackConfirmation("execute_restaurant_booking_with_votes")
	}
	d := res.Booking
	return fmt.Sprintf("✅ Restaurant booking confirmed based on group votes!\n\n"+
		"🍽️ Restaurant: %s\n📍 Location: %s\n📅 Date: %s\n🕐 Time: %s\n"+
		"👥 Guests: %d\n🍴 Cuisine: %s\n💰 Estimated Total: $%d\n🆔 Reservation ID: %s\n\n"+
		"🎉 Booking completed based on group votes!",
		d.Restaurant, d.Location, d.Date, d.Time,
		d.Guests, d.Cuisine, d.TotalPrice, d.ReservationID)
}

func formatCab(_ Args, result any) string {
	res, ok := result.(booking.CabResult)
	if !ok {
		return fallbackConfirmation("book_cab")
	}
	return fmt.Sprintf("✅ Cab booking confirmed!\n\n"+
		"🚕 Company: %s\n👨‍💼 Driver: %s (⭐ %.1f)\n🚗 Vehicle: %s (%s, %s)\n"+
		"📍 Pickup: %s\n🎯 Destination: %s\n📅 Date: %s\n🕐 Time: %s\n"+
		"👥 Passengers: %d\n🚙 Cab Type: %s\n📏 Distance: %.1f km\n"+
		"⏱️ Duration: ~%d minutes\n💰 Base Fare: $%.2f\n💳 Booking Fee: $%.2f\n"+
		"💵 Total Fare: $%.2f\n💳 Payment: %s\n🆔 Booking ID: %s",
		res.Company, res.DriverName, res.DriverRating,
		res.Vehicle.Model, res.Vehicle.Color, res.Vehicle.Year,
		res.PickupLocation, res.Destination, res.Date, res.Time,
		res.Passengers, titleCase(res.CabType), res.DistanceKM,
		res.DurationMinutes, res.BaseFare, res.BookingFee,
		res.TotalFare, titleCase(res.PaymentMethod), res.BookingID)
}

func formatFlight(_ Args, result any) string {
	res, ok := result.(booking.FlightResult)
	if !ok {
		return fallbackConfirmation("book_flight")
	}
	returnDate := res.ReturnDate
	if returnDate == "" {
		returnDate = "N/A"
	}
	return fmt.Sprintf("✅ Flight booking confirmed!\n\n"+
		"✈️ Airline: %s\n🛫 Origin: %s\n🛬 Destination: %s\n"+
		"📅 Departure: %s\n📅 Return: %s\n👥 Passengers: %d\n"+
		"💺 Cabin Class: %s\n🎫 Trip Type: %s\n💰 Total Price: $%d\n"+
		"🆔 Confirmation ID: %s",
		res.Airline, res.Origin, res.Destination,
		res.DepartureDate, returnDate, res.Passengers,
		titleCase(res.CabinClass), res.TripType, res.TotalPrice,
		res.ConfirmationID)
}

func formatInitiateVote(_ Args, result any) string {
	v, ok := result.(InitiatedVote)
	if !ok {
		return fallbackConfirmation("initiate_vote")
	}
	return fmt.Sprintf("✅ Vote initiated successfully!\n\n"+
		"📊 Title: %s\n👥 Group: %s\n🗳️ Options: %s",
		v.Title, v.GroupID, strings.Join(v.Options, ", "))
}

func fallbackConfirmation(tool string) string {
	return fmt.Sprintf("✅ %s completed.", tool)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func isCanonicalCategory(name string) bool {
	for _, cat := range vote.Categories {
		if cat.Name == name {
			return true
		}
	}
	return false
}

// orderedOptions sorts tally option keys: canonical categories first in
// their fixed order, then everything else alphabetically.
func orderedOptions(results map[string]int) []string {
	var canonical []string
	var rest []string
	for option := range results {
		if cat, _, ok := splitPrefix(option); ok && isCanonicalCategory(strings.ToLower(cat)) {
			canonical = append(canonical, option)
		} else {
			rest = append(rest, option)
		}
	}
	rank := func(option string) int {
		cat, _, _ := splitPrefix(option)
		for i, c := range vote.Categories {
			if c.Name == strings.ToLower(cat) {
				return i
			}
		}
		return len(vote.Categories)
	}
	sort.Slice(canonical, func(i, j int) bool {
		ri, rj := rank(canonical[i]), rank(canonical[j])
		if ri != rj {
			return ri < rj
		}
		return canonical[i] < canonical[j]
	})
	sort.Strings(rest)
	return append(canonical, rest...)
}

func splitPrefix(option string) (category, value string, ok bool) {
	idx := strings.Index(option, ": ")
	if idx <= 0 {
		return "", "", false
	}
	return option[:idx], option[idx+2:], true
}

