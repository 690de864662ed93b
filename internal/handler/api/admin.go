package api

import (
	"net/http"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	resdto "backroom-api/internal/handler/dto/response"
	"backroom-api/internal/handler/httperr"
	"backroom-api/internal/usecase/commands"
	"backroom-api/internal/usecase/queries"
)

const defaultBookingListLimit = 50

// AdminHandler backs the staff dashboard: recent bookings, the pending
// inquiry queue, and deposit capture/release.
type AdminHandler struct {
	bookingCmds commands.BookingCommands
	bookingQ    queries.BookingQueries
	inquiryQ    queries.InquiryQueries
}

func NewAdminHandler(bookingCmds commands.BookingCommands, bookingQ queries.BookingQueries, inquiryQ queries.InquiryQueries) *AdminHandler {
	return &AdminHandler{bookingCmds: bookingCmds, bookingQ: bookingQ, inquiryQ: inquiryQ}
}

func (h *AdminHandler) ListBookings(c *gin.Context) {
	limit := int32(defaultBookingListLimit)
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || parsed <= 0 {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid limit", nil)
			return
		}
		limit = int32(parsed)
	}

	views, err := h.bookingQ.RecentBookings(c.Request.Context(), limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list bookings", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingList(views))
}

func (h *AdminHandler) ListPendingInquiries(c *gin.Context) {
	views, err := h.inquiryQ.PendingInquiries(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list pending inquiries", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPendingInquiries(views))
}

func (h *AdminHandler) CaptureBooking(c *gin.Context) {
	view, err := h.bookingCmds.CaptureBooking(c.Request.Context(), c.Param("paymentIntentId"))
	if err != nil {
		abortAdminBookingError(c, err, "Failed to capture deposit")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingAction("Deposit captured, booking confirmed", view))
}

func (h *AdminHandler) CancelBooking(c *gin.Context) {
	view, err := h.bookingCmds.CancelBooking(c.Request.Context(), c.Param("paymentIntentId"))
	if err != nil {
		abortAdminBookingError(c, err, "Failed to release deposit")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingAction("Deposit released, booking cancelled", view))
}

func abortAdminBookingError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, commands.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
	case errors.Is(err, commands.ErrNotCapturable):
		httperr.AbortWithError(c, http.StatusConflict, err, "Booking payment is not awaiting capture", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, fallback, nil)
	}
}
