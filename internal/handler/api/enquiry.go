package api

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"backroom-api/internal/domain/enquiry"
	reqdto "backroom-api/internal/handler/dto/request"
	resdto "backroom-api/internal/handler/dto/response"
	"backroom-api/internal/handler/httperr"
	"backroom-api/internal/usecase/commands"
)

type EnquiryHandler struct {
	cmds commands.EnquiryCommands
}

func NewEnquiryHandler(cmds commands.EnquiryCommands) *EnquiryHandler {
	return &EnquiryHandler{cmds: cmds}
}

func (h *EnquiryHandler) SubmitPrivateHire(c *gin.Context) {
	var req reqdto.PrivateHireRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request body", nil)
		return
	}

	view, err := h.cmds.SubmitPrivateHire(c.Request.Context(), req.ToInput())
	if err != nil {
		abortEnquiryError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromPrivateHireView(view))
}

func (h *EnquiryHandler) SubmitCareer(c *gin.Context) {
	var req reqdto.CareerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request body", nil)
		return
	}

	view, err := h.cmds.SubmitCareer(c.Request.Context(), req.ToInput())
	if err != nil {
		abortEnquiryError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCareerView(view))
}

func (h *EnquiryHandler) SubmitGeneral(c *gin.Context) {
	var req reqdto.GeneralRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request body", nil)
		return
	}

	view, err := h.cmds.SubmitGeneral(c.Request.Context(), req.ToInput())
	if err != nil {
		abortEnquiryError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromGeneralView(view))
}

// Validation failures carry form-facing messages; anything else is a generic
// retry-or-contact-us response so storage internals never leak.
func abortEnquiryError(c *gin.Context, err error) {
	if msg, ok := enquiryValidationMessage(err); ok {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msg, nil)
		return
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err,
		"Something went wrong, please try again or contact us directly", nil)
}

func enquiryValidationMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, enquiry.ErrInvalidEmail):
		return "Please enter a valid email address", true
	case errors.Is(err, enquiry.ErrFirstNameMissing), errors.Is(err, enquiry.ErrLastNameMissing):
		return "First and last name are required", true
	case errors.Is(err, enquiry.ErrEndNotAfterStart):
		return "End time must be after start time", true
	case errors.Is(err, enquiry.ErrInvalidEventDate):
		return "Please select a valid event date", true
	case errors.Is(err, enquiry.ErrInvalidEventTime):
		return "Please select valid start and end times", true
	case errors.Is(err, enquiry.ErrInvalidEventType):
		return "Please select an event type from the list", true
	case errors.Is(err, enquiry.ErrInvalidGuestBucket):
		return "Please select a guest count range", true
	case errors.Is(err, enquiry.ErrInvalidVenueSpace):
		return "Please select a venue space", true
	case errors.Is(err, enquiry.ErrRequirementsMissing):
		return "Please tell us about your event requirements", true
	case errors.Is(err, enquiry.ErrInvalidJobType):
		return "Please select a position from the list", true
	case errors.Is(err, enquiry.ErrInvalidExperience):
		return "Please select your experience level", true
	case errors.Is(err, enquiry.ErrInvalidAvailability):
		return "Please select your availability", true
	case errors.Is(err, enquiry.ErrCoverLetterMissing):
		return "A cover letter is required", true
	case errors.Is(err, enquiry.ErrInvalidInquiryType):
		return "Invalid inquiry type", true
	case errors.Is(err, enquiry.ErrInvalidSubject):
		return "Please select a subject from the list", true
	case errors.Is(err, enquiry.ErrMessageMissing):
		return "Please enter a message", true
	}
	return "", false
}
