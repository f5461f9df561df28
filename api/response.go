package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

var registerOnce sync.Once

// registerValidators adds the domain tags to gin's validator and reports
// field errors under their JSON or query names.
func registerValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, tag := range []string{"json", "form"} {
				name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}
			return fld.Name
		})
		_ = v.RegisterValidation("currency", func(fl validator.FieldLevel) bool {
			_, err := domain.ParseCurrency(fl.Field().String())
			return err == nil
		})
		// Presence is left to required tags.
		_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
			if fl.Field().String() == "" {
				return true
			}
			_, err := time.Parse(dateLayout, fl.Field().String())
			return err == nil
		})
		_ = v.RegisterValidation("roomtype", func(fl validator.FieldLevel) bool {
			switch domain.RoomType(fl.Field().String()) {
			case domain.RoomTypeStandard, domain.RoomTypeDeluxe, domain.RoomTypeSuite:
				return true
			}
			return false
		})
		_ = v.RegisterValidation("paymethod", func(fl validator.FieldLevel) bool {
			switch domain.PaymentMethod(fl.Field().String()) {
			case domain.PaymentCreditCard, domain.PaymentDebitCard, domain.PaymentPayPal:
				return true
			}
			return false
		})
	})
}

// parseDate expects a value that already passed the isodate tag.
func parseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, _ := time.Parse(dateLayout, s)
	return t
}

func validationMessage(errs validator.ValidationErrors) string {
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		switch e.ActualTag() {
		case "required", "required_without":
			msgs = append(msgs, fmt.Sprintf("field %s is a required field", e.Field()))
		case "isodate":
			msgs = append(msgs, fmt.Sprintf("field %s must be a date in YYYY-MM-DD format", e.Field()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("field %s must be one of: %s", e.Field(), e.Param()))
		case "currency":
			msgs = append(msgs, fmt.Sprintf("field %s must be one of: PKR USD SAR", e.Field()))
		default:
			msgs = append(msgs, fmt.Sprintf("field %s is not valid", e.Field()))
		}
	}
	return strings.Join(msgs, ", ")
}

func badRequest(c *gin.Context, err error) {
	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validationMessage(vErrs)})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

func statusFor(err error) int {
	var vErr *domain.ValidationError
	var pErr *domain.PolicyError
	switch {
	case errors.As(err, &vErr),
		errors.Is(err, domain.ErrNoListingSelected),
		errors.Is(err, domain.ErrInvalidDateRange):
		return http.StatusBadRequest
	case errors.As(err, &pErr),
		errors.Is(err, domain.ErrAlreadySubscribed):
		return http.StatusConflict
	case errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrListingNotFound),
		errors.Is(err, domain.ErrUnavailable):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrCaptchaFailed):
		return http.StatusServiceUnavailable
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusRequestTimeout
	default:
		return http.StatusInternalServerError
	}
}

// writeError maps service errors to a status and a {"error": ...} body.
// Internal failures are logged and hidden from the client.
func writeError(c *gin.Context, log *zap.Logger, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	}

	body := gin.H{"error": err.Error()}
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		body["field"] = vErr.Field
	}
	c.JSON(status, body)
}
