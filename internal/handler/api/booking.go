package api

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"backroom-api/internal/domain/booking"
	"backroom-api/internal/domain/enquiry"
	reqdto "backroom-api/internal/handler/dto/request"
	resdto "backroom-api/internal/handler/dto/response"
	"backroom-api/internal/handler/httperr"
	"backroom-api/internal/usecase/commands"
)

type BookingHandler struct {
	cmds commands.BookingCommands
}

func NewBookingHandler(cmds commands.BookingCommands) *BookingHandler {
	return &BookingHandler{cmds: cmds}
}

func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request body", nil)
		return
	}

	result, err := h.cmds.CreateBooking(c.Request.Context(), req.ToInput())
	if err != nil {
		abortBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCreateBookingResult(result))
}

func abortBookingError(c *gin.Context, err error) {
	// A declined card is the customer's to act on; the provider message is
	// surfaced verbatim.
	var declined *commands.DeclinedError
	if errors.As(err, &declined) {
		httperr.AbortWithError(c, http.StatusPaymentRequired, err, declined.Message, nil)
		return
	}

	if msg, ok := bookingValidationMessage(err); ok {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msg, nil)
		return
	}

	httperr.AbortWithError(c, http.StatusInternalServerError, err,
		"Something went wrong, please try again or contact us directly", nil)
}

func bookingValidationMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, commands.ErrPaymentMethodRequired):
		return "Payment method is required", true
	case errors.Is(err, enquiry.ErrInvalidEmail):
		return "Please enter a valid email address", true
	case errors.Is(err, enquiry.ErrFirstNameMissing), errors.Is(err, enquiry.ErrLastNameMissing):
		return "First and last name are required", true
	case errors.Is(err, booking.ErrInvalidBookingDate):
		return "Please select a valid booking date", true
	case errors.Is(err, booking.ErrArrivalSlotMissing):
		return "Please select an arrival time", true
	case errors.Is(err, booking.ErrPartySizeTooSmall):
		return "Party size must be at least 2", true
	case errors.Is(err, booking.ErrPackageRequired):
		return "Please choose a package or at least one spirit", true
	case errors.Is(err, booking.ErrUnknownPackage):
		return "Please choose a package from the list", true
	case errors.Is(err, booking.ErrInvalidVenueArea):
		return "Please choose a venue area from the list", true
	}
	return "", false
}
