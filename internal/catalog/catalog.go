// Package catalog is the fixed reference data the site ships with.
package catalog

import (
	"time"

	"github.com/Domenick1991/travelbooking/internal/domain"
)

func hotel(id, name, location string, price, rating, distance float64, image string, amenities ...string) domain.Listing {
	return domain.Listing{
		ID:         id,
		Kind:       domain.ListingKindHotel,
		Name:       name,
		Location:   location,
		Price:      price,
		Rating:     rating,
		Amenities:  amenities,
		DistanceKm: distance,
		Image:      image,
		Available:  true,
	}
}

// Hotels returns a fresh copy of the hotel set on every call.
func Hotels() []domain.Listing {
	return []domain.Listing{
		hotel("1", "Luxury Inn", "Karachi", 15000, 4.5, 2.5, "/luxury.png", "WiFi", "Pool", "Gym"),
		hotel("2", "Golden Stay", "Lahore", 20000, 4.8, 3.0, "/gold.png", "WiFi", "Spa", "Breakfast"),
		hotel("3", "Pearl Palace", "Islamabad", 18000, 4.2, 1.8, "/pearl.png", "WiFi", "Pool", "Parking"),
		hotel("4", "Royal Retreat", "Karachi", 25000, 4.9, 1.5, "/royal.png", "WiFi", "Spa", "Gym", "Breakfast"),
		hotel("5", "Makkah Towers", "Makkah", 35000, 4.7, 0.5, "/makkah.png", "WiFi", "Prayer Room", "Breakfast"),
		hotel("6", "Madinah Hilton", "Madinah", 30000, 4.6, 0.7, "/madinah.png", "WiFi", "Shuttle", "Prayer Room"),
		hotel("7", "Burj Al Arab", "Dubai", 100000, 5.0, 4.0, "/burj.png", "WiFi", "Spa", "Pool", "Butler"),
		hotel("8", "Atlantis The Palm", "Dubai", 85000, 4.9, 5.0, "/atlantis.png", "WiFi", "Aquarium", "Pool"),
		hotel("9", "The Plaza", "New York", 60000, 4.8, 2.0, "/plaza.png", "WiFi", "Gym", "Spa"),
		hotel("10", "Beverly Hills Hotel", "Los Angeles", 55000, 4.7, 3.5, "/baverli.png", "WiFi", "Pool", "Spa"),
		hotel("11", "Anwar Al Madinah", "Madinah", 28000, 4.5, 0.8, "/madina1.png", "WiFi", "Prayer Room", "Breakfast"),
		hotel("12", "Swissotel Makkah", "Makkah", 32000, 4.6, 0.6, "/makka1.png", "WiFi", "Shuttle", "Prayer Room"),
	}
}

func flight(id, airline, number, from, to string, dep time.Time, dur time.Duration, stops int, price float64, layover, baggage string) domain.Listing {
	return domain.Listing{
		ID:            id,
		Kind:          domain.ListingKindFlight,
		Name:          airline + " " + number,
		Airline:       airline,
		FlightNumber:  number,
		Origin:        from,
		Destination:   to,
		DepartureTime: dep,
		ArrivalTime:   dep.Add(dur),
		Duration:      dur,
		Stops:         stops,
		Price:         price,
		CabinClass:    "Economy",
		Layover:       layover,
		Baggage:       baggage,
		Available:     true,
	}
}

// Flights returns a fresh copy of the flight set on every call. Flight ids are
// prefixed so they never collide with hotel ids.
func Flights() []domain.Listing {
	day := time.Date(2025, 8, 20, 0, 0, 0, 0, time.UTC)
	return []domain.Listing{
		flight("F1", "Emirates", "EK123", "LHE", "DXB", day.Add(10*time.Hour), 3*time.Hour, 0, 45000, "None", "20kg"),
		flight("F2", "Qatar Airways", "QR456", "LHE", "DXB", day.Add(14*time.Hour), 4*time.Hour+30*time.Minute, 1, 52000, "1h 30m in DOH", "25kg"),
		flight("F3", "PIA", "PK213", "KHI", "DXB", day.Add(8*time.Hour), 2*time.Hour+15*time.Minute, 0, 38000, "None", "30kg"),
		flight("F4", "Turkish Airlines", "TK715", "LHE", "JFK", day.Add(5*time.Hour), 18*time.Hour, 1, 210000, "2h 40m in IST", "2x23kg"),
	}
}

// Cities are the destinations offered by hotel-search autocomplete.
var Cities = []string{"Karachi", "Lahore", "Islamabad", "Makkah", "Madinah", "Dubai", "New York", "Los Angeles"}

type Airport struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

var Airports = []Airport{
	{Code: "LHE", Name: "Lahore, Pakistan - Allama Iqbal Intl"},
	{Code: "DXB", Name: "Dubai, UAE - Dubai Intl"},
	{Code: "KHI", Name: "Karachi, Pakistan - Jinnah Intl"},
	{Code: "JFK", Name: "New York, USA - John F. Kennedy Intl"},
}
