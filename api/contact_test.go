package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/Domenick1991/travelbooking/internal/service/contact"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// MockContactUseCase is a mock implementation of contact.ContactUseCase
type MockContactUseCase struct {
	mock.Mock
}

func (m *MockContactUseCase) SubmitContact(ctx context.Context, form domain.ContactForm) error {
	args := m.Called(ctx, form)
	return args.Error(0)
}

func (m *MockContactUseCase) SubmitFeedback(ctx context.Context, feedback domain.Feedback) error {
	args := m.Called(ctx, feedback)
	return args.Error(0)
}

func (m *MockContactUseCase) Subscribe(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func (m *MockContactUseCase) SearchFAQ(q string) []domain.FAQ {
	args := m.Called(q)
	return args.Get(0).([]domain.FAQ)
}

func (m *MockContactUseCase) Offices() contact.Directory {
	args := m.Called()
	return args.Get(0).(contact.Directory)
}

func TestContactHandler_submitContact(t *testing.T) {
	testCases := []struct {
		name       string
		serviceErr error
		wantStatus int
		wantBody   string
	}{
		{name: "accepted", wantStatus: http.StatusAccepted, wantBody: "Your message has been sent successfully!"},
		{name: "captcha failed", serviceErr: domain.ErrCaptchaFailed, wantStatus: http.StatusServiceUnavailable, wantBody: "CAPTCHA"},
		{
			name:       "missing fields",
			serviceErr: &domain.ValidationError{Field: "contact", Message: "Please fill in all required fields (Name, Email, Message)."},
			wantStatus: http.StatusBadRequest,
			wantBody:   "Please fill in all required fields",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockService := &MockContactUseCase{}
			handler := NewContactHandler(mockService, zap.NewNop())

			c, w := newJSONContext("POST", "/contact", map[string]string{
				"name": "Ali", "email": "a@b.com", "inquiry_type": "Booking", "message": "Where is my PNR?",
			})
			form := domain.ContactForm{Name: "Ali", Email: "a@b.com", InquiryType: domain.InquiryBooking, Message: "Where is my PNR?"}
			mockService.On("SubmitContact", c.Request.Context(), form).Return(tc.serviceErr)

			handler.submitContact(c)

			assert.Equal(t, tc.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tc.wantBody)
			mockService.AssertExpectations(t)
		})
	}
}

func TestContactHandler_submitContact_BadInquiry(t *testing.T) {
	mockService := &MockContactUseCase{}
	handler := NewContactHandler(mockService, zap.NewNop())

	c, w := newJSONContext("POST", "/contact", map[string]string{"name": "Ali", "email": "a@b.com", "inquiry_type": "Complaint", "message": "hi"})

	handler.submitContact(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "field inquiry_type must be one of")
	mockService.AssertNotCalled(t, "SubmitContact", mock.Anything, mock.Anything)
}

func TestContactHandler_submitFeedback(t *testing.T) {
	mockService := &MockContactUseCase{}
	handler := NewContactHandler(mockService, zap.NewNop())

	c, w := newJSONContext("POST", "/feedback", map[string]interface{}{"rating": 0})
	mockService.On("SubmitFeedback", c.Request.Context(), domain.Feedback{Rating: 0}).
		Return(&domain.ValidationError{Field: "rating", Message: "Please select a rating."})

	handler.submitFeedback(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Please select a rating.")
}

func TestContactHandler_subscribe(t *testing.T) {
	testCases := []struct {
		name       string
		body       map[string]interface{}
		serviceErr error
		wantStatus int
		wantBody   string
	}{
		{name: "subscribed", body: map[string]interface{}{"email": "a@b.com"}, wantStatus: http.StatusCreated, wantBody: "Subscribed successfully!"},
		{name: "duplicate", body: map[string]interface{}{"email": "a@b.com"}, serviceErr: domain.ErrAlreadySubscribed, wantStatus: http.StatusConflict, wantBody: "email already subscribed"},
		{
			name:       "bad email",
			body:       map[string]interface{}{"email": "bad-email"},
			serviceErr: &domain.ValidationError{Field: "email", Message: "Please enter a valid email."},
			wantStatus: http.StatusBadRequest,
			wantBody:   "Please enter a valid email.",
		},
		{name: "missing email", body: map[string]interface{}{}, wantStatus: http.StatusBadRequest, wantBody: "field email is a required field"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockService := &MockContactUseCase{}
			handler := NewContactHandler(mockService, zap.NewNop())
			c, w := newJSONContext("POST", "/newsletter", tc.body)

			if email, ok := tc.body["email"]; ok {
				mockService.On("Subscribe", c.Request.Context(), email).Return(tc.serviceErr).Once()
			}

			handler.subscribe(c)

			assert.Equal(t, tc.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tc.wantBody)
			mockService.AssertExpectations(t)
		})
	}
}

func TestContactHandler_faqs(t *testing.T) {
	mockService := &MockContactUseCase{}
	handler := NewContactHandler(mockService, zap.NewNop())

	c, w := newTestContext("GET", "/faqs?q=refund")
	mockService.On("SearchFAQ", "refund").Return([]domain.FAQ{{Question: "What is the refund policy?", Answer: "Refunds are processed within 7 days for eligible cancellations."}})

	handler.faqs(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "refund policy")
}

func TestContactHandler_offices(t *testing.T) {
	mockService := &MockContactUseCase{}
	handler := NewContactHandler(mockService, zap.NewNop())

	c, w := newTestContext("GET", "/offices")
	mockService.On("Offices").Return(contact.Directory{
		Offices: []domain.Office{{Region: "UAE", Address: "456 Sheikh Zayed Rd, Dubai", Coordinates: [2]float64{25.2048, 55.2708}}},
		TileURL: "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png",
	})

	handler.offices(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"coordinates":[25.2048,55.2708]`)
	assert.Contains(t, w.Body.String(), "tile.openstreetmap.org")
}
