package booking

import "strings"

type VotedRestaurantRequest struct {
	GroupID string
	RestaurantRequest
}

// VotedRestaurantResult wraps a restaurant booking made on behalf of a
// group after its votes resolved every parameter.
type VotedRestaurantResult struct {
	Status  string
	GroupID string
	Booking RestaurantResult
}

const StatusBookingConfirmed = "booking_confirmed"

// ExecuteVotedRestaurantBooking books a restaurant using parameters a group
// vote settled. Every parameter must already be resolved; the gating lives
// with the caller.
func ExecuteVotedRestaurantBooking(req VotedRestaurantRequest) (VotedRestaurantResult, error) {
	groupID := strings.TrimSpace(req.GroupID)
	if groupID == "" {
		return VotedRestaurantResult{}, validationf("group id is required")
	}

	res, err := BookRestaurant(req.RestaurantRequest)
	if err != nil {
		return VotedRestaurantResult{}, err
	}

	return VotedRestaurantResult{
		Status:  StatusBookingConfirmed,
		GroupID: groupID,
		Booking: res,
	}, nil
}
