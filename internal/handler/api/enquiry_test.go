//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"backroom-api/internal/domain/enquiry"
	"backroom-api/internal/handler/api"
	resdto "backroom-api/internal/handler/dto/response"
	"backroom-api/internal/usecase/queries"
	"backroom-api/tests/common/builder"
	"backroom-api/tests/common/httptest"
	commandsmock "backroom-api/tests/mock/commands"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type EnquiryHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockEnquiryCommands
	handler      *api.EnquiryHandler
}

func (s *EnquiryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockEnquiryCommands(s.mockCtrl)
	s.handler = api.NewEnquiryHandler(s.mockCommands)

	grp := s.router.Group("/api/enquiries")
	grp.POST("/private-hire", s.handler.SubmitPrivateHire)
	grp.POST("/careers", s.handler.SubmitCareer)
	grp.POST("/general", s.handler.SubmitGeneral)
}

func (s *EnquiryHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestEnquiryHandlerSuite(t *testing.T) {
	suite.Run(t, new(EnquiryHandlerTestSuite))
}

func (s *EnquiryHandlerTestSuite) TestSubmitPrivateHire_Success() {
	view := builder.NewPrivateHireBuilder().BuildView()
	s.mockCommands.EXPECT().
		SubmitPrivateHire(gomock.Any(), gomock.Any()).
		Return(view, nil)

	body := builder.NewPrivateHireBuilder().BuildRequest()
	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/enquiries/private-hire", body, "")

	var resp resdto.EnquiryResponse[queries.PrivateHireView]
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
	s.True(resp.Success)
	s.Equal("Private hire enquiry received", resp.Message)
	s.Equal(view.Email, resp.Record.Email)
}

func (s *EnquiryHandlerTestSuite) TestSubmitPrivateHire_ValidationErrors() {
	tests := []struct {
		name      string
		domainErr error
		expectMsg string
	}{
		{"end time not after start", enquiry.ErrEndNotAfterStart, "End time must be after start time"},
		{"bad event date", enquiry.ErrInvalidEventDate, "Please select a valid event date"},
		{"unknown venue space", enquiry.ErrInvalidVenueSpace, "Please select a venue space"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.mockCommands.EXPECT().
				SubmitPrivateHire(gomock.Any(), gomock.Any()).
				Return(nil, tt.domainErr)

			body := builder.NewPrivateHireBuilder().BuildRequest()
			w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/enquiries/private-hire", body, "")

			httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, tt.expectMsg)
		})
	}
}

func (s *EnquiryHandlerTestSuite) TestSubmitPrivateHire_MissingRequiredField() {
	// binding:"required" rejects the payload before the command layer runs
	body := builder.NewPrivateHireBuilder().BuildRequest()
	body.Email = ""
	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/enquiries/private-hire", body, "")

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *EnquiryHandlerTestSuite) TestSubmitCareer_Success() {
	view := builder.NewCareerBuilder().BuildView()
	s.mockCommands.EXPECT().
		SubmitCareer(gomock.Any(), gomock.Any()).
		Return(view, nil)

	body := builder.NewCareerBuilder().BuildRequest()
	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/enquiries/careers", body, "")

	var resp resdto.EnquiryResponse[queries.CareerApplicationView]
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
	s.True(resp.Success)
	s.Equal(view.JobType, resp.Record.JobType)
}

func (s *EnquiryHandlerTestSuite) TestSubmitGeneral_FeedbackSubjectRejected() {
	s.mockCommands.EXPECT().
		SubmitGeneral(gomock.Any(), gomock.Any()).
		Return(nil, enquiry.ErrInvalidSubject)

	body := builder.NewGeneralInquiryBuilder().BuildRequest()
	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/enquiries/general", body, "")

	httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Please select a subject from the list")
}

func (s *EnquiryHandlerTestSuite) TestSubmitGeneral_StorageFailure() {
	s.mockCommands.EXPECT().
		SubmitGeneral(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection reset"))

	body := builder.NewGeneralInquiryBuilder().BuildRequest()
	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/enquiries/general", body, "")

	httptest.AssertErrorResponse(s.T(), w, http.StatusInternalServerError, "Something went wrong")
}
