package response

import (
	"backroom-api/internal/usecase/commands"
	"backroom-api/internal/usecase/queries"
)

type CreateBookingResponse struct {
	Success          bool                 `json:"success"`
	Message          string               `json:"message"`
	BookingReference string               `json:"bookingReference"`
	PaymentIntentID  string               `json:"paymentIntentId"`
	DepositAmount    int64                `json:"depositAmount"`
	Booking          *queries.BookingView `json:"booking"`
}

func FromCreateBookingResult(r *commands.CreateBookingResult) *CreateBookingResponse {
	return &CreateBookingResponse{
		Success:          true,
		Message:          "Booking request received, deposit authorized",
		BookingReference: r.BookingReference,
		PaymentIntentID:  r.PaymentIntentID,
		DepositAmount:    r.DepositAmount,
		Booking:          r.Booking,
	}
}

type BookingListResponse struct {
	Success  bool                   `json:"success"`
	Bookings []*queries.BookingView `json:"bookings"`
}

func FromBookingList(views []*queries.BookingView) *BookingListResponse {
	if views == nil {
		views = []*queries.BookingView{}
	}
	return &BookingListResponse{Success: true, Bookings: views}
}

type BookingActionResponse struct {
	Success bool                 `json:"success"`
	Message string               `json:"message"`
	Booking *queries.BookingView `json:"booking"`
}

func FromBookingAction(message string, v *queries.BookingView) *BookingActionResponse {
	return &BookingActionResponse{Success: true, Message: message, Booking: v}
}
