package domain

import (
	"strings"
	"time"
)

type ListingKind string

const (
	ListingKindHotel  ListingKind = "hotel"
	ListingKindFlight ListingKind = "flight"
)

// Listing is a bookable hotel or flight. Price is in the base currency (PKR),
// per night for hotels and per passenger for flights.
type Listing struct {
	ID       string      `json:"id"`
	Kind     ListingKind `json:"kind"`
	Name     string      `json:"name"`
	Location string      `json:"location,omitempty"`

	Airline       string        `json:"airline,omitempty"`
	FlightNumber  string        `json:"flight_number,omitempty"`
	Origin        string        `json:"origin,omitempty"`
	Destination   string        `json:"destination,omitempty"`
	DepartureTime time.Time     `json:"departure_time,omitzero"`
	ArrivalTime   time.Time     `json:"arrival_time,omitzero"`
	Duration      time.Duration `json:"duration,omitempty"`
	Stops         int           `json:"stops"`
	CabinClass    string        `json:"cabin_class,omitempty"`
	Layover       string        `json:"layover,omitempty"`
	Baggage       string        `json:"baggage,omitempty"`

	Price      float64  `json:"price"`
	Rating     float64  `json:"rating,omitempty"`
	Amenities  []string `json:"amenities,omitempty"`
	DistanceKm float64  `json:"distance_km,omitempty"`
	Image      string   `json:"image,omitempty"`
	Available  bool     `json:"available"`
}

// HasAmenities reports whether every requested amenity is offered.
func (l Listing) HasAmenities(requested []string) bool {
	for _, want := range requested {
		found := false
		for _, have := range l.Amenities {
			if strings.EqualFold(have, want) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Place is the location text searched by destination: the city for hotels,
// "ORIGIN-DESTINATION" for flights.
func (l Listing) Place() string {
	if l.Kind == ListingKindFlight {
		return l.Origin + "-" + l.Destination
	}
	return l.Location
}
