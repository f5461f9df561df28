package api

import (
	"net/http"
	"strings"

	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/Domenick1991/travelbooking/internal/search"
	"github.com/Domenick1991/travelbooking/internal/service/listings"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ListingHandler struct {
	service listings.ListingUseCase
	log     *zap.Logger
}

type hotelSearchQuery struct {
	Destination   string   `form:"destination"`
	CheckIn       string   `form:"check_in" binding:"required,isodate"`
	CheckOut      string   `form:"check_out" binding:"required,isodate"`
	Guests        int      `form:"guests" binding:"gte=0"`
	Currency      string   `form:"currency" binding:"omitempty,currency"`
	PriceMin      float64  `form:"price_min" binding:"gte=0"`
	PriceMax      float64  `form:"price_max" binding:"gte=0"`
	MinRating     float64  `form:"min_rating" binding:"gte=0,lte=5"`
	MaxDistanceKm float64  `form:"max_distance_km" binding:"gte=0"`
	Amenities     []string `form:"amenities"`
	Sort          string   `form:"sort" binding:"omitempty,oneof=price-asc price-desc rating-desc distance-asc"`
}

type flightSearchQuery struct {
	Origin      string  `form:"origin"`
	Destination string  `form:"destination"`
	Currency    string  `form:"currency" binding:"omitempty,currency"`
	MaxPrice    float64 `form:"max_price" binding:"gte=0"`
	Stops       *int    `form:"stops" binding:"omitempty,gte=0"`
	CabinClass  string  `form:"cabin_class"`
	Sort        string  `form:"sort" binding:"omitempty,oneof=cheapest fastest earliest"`
}

type listingView struct {
	domain.Listing
	DisplayPrice float64 `json:"display_price"`
}

type searchResponse struct {
	Currency domain.Currency `json:"currency"`
	Nights   int             `json:"nights,omitempty"`
	Count    int             `json:"count"`
	Results  []listingView   `json:"results"`
}

func NewListingHandler(service listings.ListingUseCase, log *zap.Logger) *ListingHandler {
	registerValidators()
	return &ListingHandler{service: service, log: log}
}

func (h *ListingHandler) Register(router *gin.RouterGroup) {
	router.GET("/hotels", h.searchHotels)
	router.GET("/flights", h.searchFlights)
	router.GET("/listings/:id", h.get)
	router.GET("/suggestions", h.suggest)
}

// splitList accepts both repeated parameters and comma-separated values.
func splitList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// currencyOrBase normalises a code that already passed the currency tag.
func currencyOrBase(s string) domain.Currency {
	c, err := domain.ParseCurrency(s)
	if err != nil {
		return domain.BaseCurrency
	}
	return c
}

func toViews(items []domain.Listing, currency domain.Currency) []listingView {
	out := make([]listingView, 0, len(items))
	for _, l := range items {
		out = append(out, listingView{Listing: l, DisplayPrice: currency.Convert(l.Price)})
	}
	return out
}

func (h *ListingHandler) searchHotels(c *gin.Context) {
	var q hotelSearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}
	if q.Guests == 0 {
		q.Guests = 1
	}

	currency := currencyOrBase(q.Currency)
	criteria := domain.SearchCriteria{
		Destination: q.Destination,
		CheckIn:     parseDate(q.CheckIn),
		CheckOut:    parseDate(q.CheckOut),
		Guests:      q.Guests,
	}
	filter := search.HotelFilter{
		Destination:   q.Destination,
		Currency:      currency,
		PriceMin:      q.PriceMin,
		PriceMax:      q.PriceMax,
		MinRating:     q.MinRating,
		MaxDistanceKm: q.MaxDistanceKm,
		Amenities:     splitList(q.Amenities),
		SortBy:        search.HotelSort(q.Sort),
	}

	hotels, err := h.service.SearchHotels(c.Request.Context(), criteria, filter)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, searchResponse{
		Currency: currency,
		Nights:   criteria.Nights(),
		Count:    len(hotels),
		Results:  toViews(hotels, currency),
	})
}

func (h *ListingHandler) searchFlights(c *gin.Context) {
	var q flightSearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}

	currency := currencyOrBase(q.Currency)
	flights, err := h.service.SearchFlights(c.Request.Context(), search.FlightFilter{
		Origin:      q.Origin,
		Destination: q.Destination,
		Currency:    currency,
		MaxPrice:    q.MaxPrice,
		Stops:       q.Stops,
		CabinClass:  q.CabinClass,
		SortBy:      search.FlightSort(q.Sort),
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, searchResponse{
		Currency: currency,
		Count:    len(flights),
		Results:  toViews(flights, currency),
	})
}

func (h *ListingHandler) get(c *gin.Context) {
	listing, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, listing)
}

func (h *ListingHandler) suggest(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Suggest(c.Query("q")))
}
