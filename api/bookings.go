package api

import (
	"fmt"
	"net/http"

	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/Domenick1991/travelbooking/internal/receipt"
	"github.com/Domenick1991/travelbooking/internal/service/booking"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service booking.BookingUseCase
	log     *zap.Logger
}

// criteriaRequest carries either a hotel stay or a flight route. Stay dates
// are required unless an origin marks it as a flight.
type criteriaRequest struct {
	Destination string `json:"destination"`
	Origin      string `json:"origin"`
	CheckIn     string `json:"check_in" binding:"required_without=Origin,isodate"`
	CheckOut    string `json:"check_out" binding:"required_without=Origin,isodate"`
	Guests      int    `json:"guests" binding:"gte=0"`
}

func (r criteriaRequest) toDomain() domain.SearchCriteria {
	return domain.SearchCriteria{
		Destination: r.Destination,
		Origin:      r.Origin,
		CheckIn:     parseDate(r.CheckIn),
		CheckOut:    parseDate(r.CheckOut),
		Guests:      r.Guests,
	}
}

type guestRequest struct {
	Name            string        `json:"name" binding:"max=120"`
	Email           string        `json:"email" binding:"max=254"`
	Phone           string        `json:"phone"`
	RoomType        string        `json:"room_type" binding:"omitempty,roomtype"`
	PaymentMethod   string        `json:"payment_method" binding:"omitempty,paymethod"`
	CardNumber      string        `json:"card_number"`
	CVV             string        `json:"cvv"`
	ExpiryDate      string        `json:"expiry_date"`
	SpecialRequests string        `json:"special_requests" binding:"max=500"`
	Extras          domain.Extras `json:"extras"`
}

func (r guestRequest) toDomain() domain.GuestDetails {
	g := domain.GuestDetails{
		Name:            r.Name,
		Email:           r.Email,
		Phone:           r.Phone,
		RoomType:        domain.RoomType(r.RoomType),
		PaymentMethod:   domain.PaymentMethod(r.PaymentMethod),
		CardNumber:      r.CardNumber,
		CVV:             r.CVV,
		ExpiryDate:      r.ExpiryDate,
		SpecialRequests: r.SpecialRequests,
		Extras:          r.Extras,
	}
	if g.RoomType == "" {
		g.RoomType = domain.RoomTypeStandard
	}
	if g.PaymentMethod == "" {
		g.PaymentMethod = domain.PaymentCreditCard
	}
	return g
}

type quoteRequest struct {
	ListingID string          `json:"listing_id"`
	Criteria  criteriaRequest `json:"criteria"`
	RoomType  string          `json:"room_type" binding:"omitempty,roomtype"`
	Extras    domain.Extras   `json:"extras"`
	Currency  string          `json:"currency" binding:"omitempty,currency"`
}

type createBookingRequest struct {
	ListingID string          `json:"listing_id"`
	Criteria  criteriaRequest `json:"criteria"`
	Guest     guestRequest    `json:"guest"`
	Currency  string          `json:"currency" binding:"omitempty,currency"`
}

type historyQuery struct {
	Status string `form:"status" binding:"omitempty,oneof=All Confirmed Cancelled"`
	From   string `form:"from" binding:"omitempty,isodate"`
	To     string `form:"to" binding:"omitempty,isodate"`
	Sort   string `form:"sort" binding:"omitempty,oneof=date-desc date-asc price-asc price-desc name-asc"`
}

type receiptResponse struct {
	Booking   domain.Booking    `json:"booking"`
	Breakdown receipt.Breakdown `json:"breakdown"`
}

func NewBookingHandler(service booking.BookingUseCase, log *zap.Logger) *BookingHandler {
	registerValidators()
	return &BookingHandler{service: service, log: log}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("/quotes", h.quote)
	router.POST("/bookings", h.create)
	router.GET("/bookings", h.list)
	router.GET("/bookings/:id", h.get)
	router.DELETE("/bookings/:id", h.cancel)
	router.GET("/bookings/:id/receipt", h.downloadReceipt)
}

func (h *BookingHandler) quote(c *gin.Context) {
	var req quoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	q, err := h.service.Quote(c.Request.Context(), booking.QuoteInput{
		ListingID: req.ListingID,
		Criteria:  req.Criteria.toDomain(),
		RoomType:  domain.RoomType(req.RoomType),
		Extras:    req.Extras,
		Currency:  domain.Currency(req.Currency),
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, q)
}

func (h *BookingHandler) create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	b, err := h.service.SubmitBooking(c.Request.Context(), booking.SubmitBookingInput{
		ListingID: req.ListingID,
		Criteria:  req.Criteria.toDomain(),
		Guest:     req.Guest.toDomain(),
		Currency:  domain.Currency(req.Currency),
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

func (h *BookingHandler) list(c *gin.Context) {
	var q historyQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}

	filter := booking.HistoryFilter{
		Status: domain.BookingStatus(q.Status),
		From:   parseDate(q.From),
		SortBy: booking.HistorySort(q.Sort),
	}
	// "to" names a calendar day; include all of it.
	if q.To != "" {
		filter.Until = parseDate(q.To).AddDate(0, 0, 1)
	}

	bookings, err := h.service.QueryBookings(c.Request.Context(), filter)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) get(c *gin.Context) {
	b, err := h.service.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) cancel(c *gin.Context) {
	b, err := h.service.CancelBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// downloadReceipt serves a PDF unless format=json asks for the breakdown.
func (h *BookingHandler) downloadReceipt(c *gin.Context) {
	b, err := h.service.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	if c.Query("format") == "json" {
		c.JSON(http.StatusOK, receiptResponse{Booking: *b, Breakdown: receipt.BreakdownFor(*b)})
		return
	}

	data, err := receipt.Render(*b)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="receipt-%s.pdf"`, b.PNR))
	c.Data(http.StatusOK, "application/pdf", data)
}
