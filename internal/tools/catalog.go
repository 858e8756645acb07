package tools

import (
	"context"

	"groupbook.app/concierge/common/llm"
	"groupbook.app/concierge/internal/booking"
	"groupbook.app/concierge/internal/vote"
)

// HotelParams for book_hotel.
type HotelParams struct {
	Location string `json:"location" jsonschema:"required,description=City to book in"`
	CheckIn  string `json:"check_in" jsonschema:"required,description=Check-in date (YYYY-MM-DD)"`
	CheckOut string `json:"check_out" jsonschema:"required,description=Check-out date (YYYY-MM-DD)"`
	Guests   int    `json:"guests" jsonschema:"required,description=Number of guests"`
	RoomType string `json:"room_type" jsonschema:"required,description=Room type: standard, deluxe, or suite"`
}

// RestaurantParams for book_restaurant.
type RestaurantParams struct {
	Location string `json:"location" jsonschema:"required,description=City to book in"`
	Date     string `json:"date" jsonschema:"required,description=Reservation date"`
	Time     string `json:"time" jsonschema:"required,description=Reservation time"`
	Guests   int    `json:"guests" jsonschema:"required,description=Number of guests"`
	Cuisine  string `json:"cuisine" jsonschema:"required,description=Preferred cuisine"`
}

// RestaurantVoteParams for book_restaurant_vote. Only the group is required;
// any parameter already known skips its vote.
type RestaurantVoteParams struct {
	GroupID  string `json:"group_id" jsonschema:"required,description=Group chat to post votes in"`
	Location string `json:"location,omitempty" jsonschema:"description=City if already decided"`
	Date     string `json:"date,omitempty" jsonschema:"description=Date if already decided"`
	Time     string `json:"time,omitempty" jsonschema:"description=Time if already decided"`
	Guests   string `json:"guests,omitempty" jsonschema:"description=Guest count if already decided"`
	Cuisine  string `json:"cuisine,omitempty" jsonschema:"description=Cuisine if already decided"`
}

// VoteResultsParams for get_restaurant_vote_results.
type VoteResultsParams struct {
	GroupID string `json:"group_id" jsonschema:"required,description=Group chat whose vote to tally"`
}

// VotedBookingParams for execute_restaurant_booking_with_votes. All
// parameters must be resolved, typically from the vote winners.
type VotedBookingParams struct {
	GroupID  string `json:"group_id" jsonschema:"required,description=Group chat the vote ran in"`
	Location string `json:"location" jsonschema:"required,description=Winning location"`
	Date     string `json:"date" jsonschema:"required,description=Winning date"`
	Time     string `json:"time" jsonschema:"required,description=Winning time"`
	Guests   string `json:"guests" jsonschema:"required,description=Winning guest count"`
	Cuisine  string `json:"cuisine" jsonschema:"required,description=Winning cuisine"`
}

// CabParams for book_cab.
type CabParams struct {
	PickupLocation string `json:"pickup_location" jsonschema:"required,description=Where to pick up"`
	Destination    string `json:"destination" jsonschema:"required,description=Where to go"`
	Date           string `json:"date,omitempty" jsonschema:"description=Ride date (defaults to today)"`
	Time           string `json:"time,omitempty" jsonschema:"description=Ride time (defaults to now)"`
	Passengers     int    `json:"passengers,omitempty" jsonschema:"description=Passenger count (1-6)"`
	CabType        string `json:"cab_type,omitempty" jsonschema:"description=standard, premium, luxury, van, or bike"`
	PaymentMethod  string `json:"payment_method,omitempty" jsonschema:"description=card, cash, or digital_wallet"`
}

// FlightParams for book_flight.
type FlightParams struct {
	Origin        string `json:"origin" jsonschema:"required,description=Departure city"`
	Destination   string `json:"destination" jsonschema:"required,description=Arrival city"`
	DepartureDate string `json:"departure_date" jsonschema:"required,description=Departure date (YYYY-MM-DD)"`
	ReturnDate    string `json:"return_date,omitempty" jsonschema:"description=Return date for round trips (YYYY-MM-DD)"`
	Passengers    int    `json:"passengers,omitempty" jsonschema:"description=Passenger count"`
	CabinClass    string `json:"cabin_class,omitempty" jsonschema:"description=economy, premium, business, or first"`
}

// InitiateVoteParams for initiate_vote.
type InitiateVoteParams struct {
	GroupID string   `json:"group_id" jsonschema:"required,description=Group chat to post the vote in"`
	Title   string   `json:"title" jsonschema:"required,description=What the vote is about"`
	Options []string `json:"options" jsonschema:"required,description=Options to vote between"`
}

// CountVoteResultParams for count_vote_result.
type CountVoteResultParams struct {
	GroupID string `json:"group_id" jsonschema:"required,description=Group chat whose vote to count"`
}

// GenerateImageParams for generate_image.
type GenerateImageParams struct {
	Prompt string `json:"prompt" jsonschema:"required,description=Description of the image to generate"`
}

// InitiatedVote echoes a created free-form vote back to the formatter.
type InitiatedVote struct {
	GroupID string
	Title   string
	Options []string
}

// NewCatalog builds the full tool registry wired against the vote session
// builder and tally engine.
func NewCatalog(sessions *vote.SessionBuilder, tallies *vote.Tally) *Registry {
	r := NewRegistry()

	r.Register(Spec{
		Name:        "book_hotel",
		Description: "Book a hotel room.",
		Parameters:  llm.GenerateSchemaFrom(HotelParams{}),
		Required:    []string{"location", "check_in", "check_out", "guests", "room_type"},
		Run: func(_ context.Context, args Args) (any, error) {
			return booking.BookHotel(booking.HotelRequest{
				Location: args.String("location"),
				CheckIn:  args.String("check_in"),
				CheckOut: args.String("check_out"),
				Guests:   args.Int("guests"),
				RoomType: args.String("room_type"),
			})
		},
		Format: formatHotel,
	})

	r.Register(Spec{
		Name:        "book_restaurant",
		Description: "Book a restaurant table.",
		Parameters:  llm.GenerateSchemaFrom(RestaurantParams{}),
		Required:    []string{"location", "date", "time", "guests", "cuisine"},
		Run: func(_ context.Context, args Args) (any, error) {
			return booking.BookRestaurant(restaurantRequest(args))
		},
		Format: formatRestaurant,
	})

	r.Register(Spec{
		Name:        "book_restaurant_vote",
		Description: "Create votes in the group chat for restaurant booking preferences that are still undecided.",
		Parameters:  llm.GenerateSchemaFrom(RestaurantVoteParams{}),
		Required:    []string{"group_id"},
		Run: func(ctx context.Context, args Args) (any, error) {
			return sessions.Build(ctx, args.String("group_id"), vote.Params{
				Location: args.String("location"),
				Date:     args.String("date"),
				Time:     args.String("time"),
				Guests:   args.String("guests"),
				Cuisine:  args.String("cuisine"),
			})
		},
		Format: formatRestaurantVote,
	})

	r.Register(Spec{
		Name:        "get_restaurant_vote_results",
		Description: "Tally the group's restaurant booking votes and report the winning option per category.",
		Parameters:  llm.GenerateSchemaFrom(VoteResultsParams{}),
		Required:    []string{"group_id"},
		Run: func(_ context.Context, args Args) (any, error) {
			return tallies.Count(args.String("group_id")), nil
		},
		Format: formatVoteResults,
	})

	r.Register(Spec{
		Name:        "execute_restaurant_booking_with_votes",
		Description: "Make the final restaurant booking using the parameters the group voted for.",
		Parameters:  llm.GenerateSchemaFrom(VotedBookingParams{}),
		Required:    []string{"group_id", "location", "date", "time", "guests", "cuisine"},
		Run: func(_ context.Context, args Args) (any, error) {
			return booking.ExecuteVotedRestaurantBooking(booking.VotedRestaurantRequest{
				GroupID:           args.String("group_id"),
				RestaurantRequest: restaurantRequest(args),
			})
		},
		Format: formatVotedBooking,
	})

	r.Register(Spec{
		Name:        "book_cab",
		Description: "Book a cab or ride service.",
		Parameters:  llm.GenerateSchemaFrom(CabParams{}),
		Required:    []string{"pickup_location", "destination"},
		Run: func(_ context.Context, args Args) (any, error) {
			return booking.BookCab(booking.CabRequest{
				PickupLocation: args.String("pickup_location"),
				Destination:    args.String("destination"),
				Date:           args.String("date"),
				Time:           args.String("time"),
				Passengers:     args.Int("passengers"),
				CabType:        args.String("cab_type"),
				PaymentMethod:  args.String("payment_method"),
			})
		},
		Format: formatCab,
	})

	r.Register(Spec{
		Name:        "book_flight",
		Description: "Book a flight ticket.",
		Parameters:  llm.GenerateSchemaFrom(FlightParams{}),
		Required:    []string{"origin", "destination", "departure_date"},
		Run: func(_ context.Context, args Args) (any, error) {
			return booking.BookFlight(booking.FlightRequest{
				Origin:        args.String("origin"),
				Destination:   args.String("destination"),
				DepartureDate: args.String("departure_date"),
				ReturnDate:    args.String("return_date"),
				Passengers:    args.Int("passengers"),
				CabinClass:    args.String("cabin_class"),
			})
		},
		Format: formatFlight,
	})

	r.Register(Spec{
		Name:        "initiate_vote",
		Description: "Start a free-form vote in the group chat with custom options.",
		Parameters:  llm.GenerateSchemaFrom(InitiateVoteParams{}),
		Required:    []string{"group_id", "title", "options"},
		Run: func(ctx context.Context, args Args) (any, error) {
			v := InitiatedVote{
				GroupID: args.String("group_id"),
				Title:   args.String("title"),
				Options: args.Strings("options"),
			}
			if err := sessions.Initiate(ctx, v.GroupID, v.Title, v.Options); err != nil {
				return nil, err
			}
			return v, nil
		},
		Format: formatInitiateVote,
	})

	r.Register(Spec{
		Name:        "count_vote_result",
		Description: "Count the raw votes of a free-form group vote.",
		Parameters:  llm.GenerateSchemaFrom(CountVoteResultParams{}),
		Required:    []string{"group_id"},
		Excluded:    true,
		Run: func(_ context.Context, args Args) (any, error) {
			return tallies.Count(args.String("group_id")), nil
		},
	})

	r.Register(Spec{
		Name:        "generate_image",
		Description: "Generate an image from a text prompt.",
		Parameters:  llm.GenerateSchemaFrom(GenerateImageParams{}),
		Required:    []string{"prompt"},
		Excluded:    true,
		Run: func(_ context.Context, args Args) (any, error) {
			return booking.GenerateImage(args.String("prompt"))
		},
	})

	return r
}

func restaurantRequest(args Args) booking.RestaurantRequest {
	return booking.RestaurantRequest{
		Location: args.String("location"),
		Date:     args.String("date"),
		Time:     args.String("time"),
		Guests:   args.Int("guests"),
		Cuisine:  args.String("cuisine"),
	}
}
