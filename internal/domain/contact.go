package domain

type InquiryType string

const (
	InquiryGeneral  InquiryType = "General"
	InquiryBooking  InquiryType = "Booking"
	InquiryPayment  InquiryType = "Payment"
	InquiryFeedback InquiryType = "Feedback"
)

type ContactForm struct {
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Phone       string      `json:"phone,omitempty"`
	InquiryType InquiryType `json:"inquiry_type"`
	Message     string      `json:"message"`
}

type Feedback struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment,omitempty"`
}

type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type Office struct {
	Region      string     `json:"region"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone"`
	Address     string     `json:"address"`
	Coordinates [2]float64 `json:"coordinates"`
}
