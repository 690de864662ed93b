//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"backroom-api/internal/handler/api"
	resdto "backroom-api/internal/handler/dto/response"
	"backroom-api/internal/handler/middleware"
	"backroom-api/internal/pkg/jwt"
	"backroom-api/internal/usecase/commands"
	"backroom-api/internal/usecase/queries"
	"backroom-api/tests/common/builder"
	"backroom-api/tests/common/httptest"
	commandsmock "backroom-api/tests/mock/commands"
	queriesmock "backroom-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockCtrl        *gomock.Controller
	mockBookingCmds *commandsmock.MockBookingCommands
	mockBookingQ    *queriesmock.MockBookingQueries
	mockInquiryQ    *queriesmock.MockInquiryQueries
	jwtService      *jwt.Service
	adminToken      string
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockBookingCmds = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockBookingQ = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.mockInquiryQ = queriesmock.NewMockInquiryQueries(s.mockCtrl)

	s.jwtService = jwt.NewService("unit-test-secret", time.Hour)
	token, err := s.jwtService.GenerateToken(jwt.RoleAdmin)
	s.Require().NoError(err)
	s.adminToken = token

	handler := api.NewAdminHandler(s.mockBookingCmds, s.mockBookingQ, s.mockInquiryQ)
	auth := middleware.NewAuthMiddleware(s.jwtService)

	grp := s.router.Group("/api/admin", auth.RequireAdmin())
	grp.GET("/bookings", handler.ListBookings)
	grp.GET("/inquiries/pending", handler.ListPendingInquiries)
	grp.POST("/bookings/:paymentIntentId/capture", handler.CaptureBooking)
	grp.POST("/bookings/:paymentIntentId/cancel", handler.CancelBooking)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func (s *AdminHandlerTestSuite) TestAuth_MissingToken() {
	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/bookings", nil, "")

	httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Authentication required")
}

func (s *AdminHandlerTestSuite) TestAuth_InvalidToken() {
	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/bookings", nil, "not-a-jwt")

	httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid or expired token")
}

func (s *AdminHandlerTestSuite) TestAuth_NonAdminRole() {
	token, err := s.jwtService.GenerateToken("viewer")
	s.Require().NoError(err)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/bookings", nil, token)

	httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "Admin access required")
}

func (s *AdminHandlerTestSuite) TestListBookings_Success() {
	views := []*queries.BookingView{builder.NewBookingBuilder().BuildView()}
	s.mockBookingQ.EXPECT().
		RecentBookings(gomock.Any(), int32(25)).
		Return(views, nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/bookings?limit=25", nil, s.adminToken)

	var resp resdto.BookingListResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
	s.True(resp.Success)
	s.Len(resp.Bookings, 1)
}

func (s *AdminHandlerTestSuite) TestListBookings_DefaultLimit() {
	s.mockBookingQ.EXPECT().
		RecentBookings(gomock.Any(), int32(50)).
		Return(nil, nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/bookings", nil, s.adminToken)

	var resp resdto.BookingListResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
	s.NotNil(resp.Bookings)
	s.Empty(resp.Bookings)
}

func (s *AdminHandlerTestSuite) TestListBookings_InvalidLimit() {
	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/bookings?limit=abc", nil, s.adminToken)

	httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid limit")
}

func (s *AdminHandlerTestSuite) TestListPendingInquiries_EmptyQueue() {
	s.mockInquiryQ.EXPECT().
		PendingInquiries(gomock.Any()).
		Return(nil, nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/inquiries/pending", nil, s.adminToken)

	var resp resdto.PendingInquiriesResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
	s.True(resp.Success)
	s.NotNil(resp.Inquiries)
	s.Empty(resp.Inquiries)
}

func (s *AdminHandlerTestSuite) TestCaptureBooking_Success() {
	view := builder.NewBookingBuilder().BuildView()
	s.mockBookingCmds.EXPECT().
		CaptureBooking(gomock.Any(), "pi_test_123").
		Return(view, nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/admin/bookings/pi_test_123/capture", nil, s.adminToken)

	var resp resdto.BookingActionResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
	s.Equal("Deposit captured, booking confirmed", resp.Message)
}

func (s *AdminHandlerTestSuite) TestCaptureBooking_NotFound() {
	s.mockBookingCmds.EXPECT().
		CaptureBooking(gomock.Any(), "pi_missing").
		Return(nil, commands.ErrBookingNotFound)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/admin/bookings/pi_missing/capture", nil, s.adminToken)

	httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Booking not found")
}

func (s *AdminHandlerTestSuite) TestCaptureBooking_AlreadySettled() {
	s.mockBookingCmds.EXPECT().
		CaptureBooking(gomock.Any(), "pi_test_123").
		Return(nil, commands.ErrNotCapturable)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/admin/bookings/pi_test_123/capture", nil, s.adminToken)

	httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "Booking payment is not awaiting capture")
}

func (s *AdminHandlerTestSuite) TestCancelBooking_Success() {
	view := builder.NewBookingBuilder().BuildView()
	s.mockBookingCmds.EXPECT().
		CancelBooking(gomock.Any(), "pi_test_123").
		Return(view, nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/admin/bookings/pi_test_123/cancel", nil, s.adminToken)

	var resp resdto.BookingActionResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
	s.Equal("Deposit released, booking cancelled", resp.Message)
}
