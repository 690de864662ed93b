package response

import (
	"backroom-api/internal/usecase/queries"
)

type EnquiryResponse[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Record  T      `json:"record"`
}

func FromPrivateHireView(v *queries.PrivateHireView) *EnquiryResponse[*queries.PrivateHireView] {
	return &EnquiryResponse[*queries.PrivateHireView]{
		Success: true,
		Message: "Private hire enquiry received",
		Record:  v,
	}
}

func FromCareerView(v *queries.CareerApplicationView) *EnquiryResponse[*queries.CareerApplicationView] {
	return &EnquiryResponse[*queries.CareerApplicationView]{
		Success: true,
		Message: "Application received",
		Record:  v,
	}
}

func FromGeneralView(v *queries.GeneralInquiryView) *EnquiryResponse[*queries.GeneralInquiryView] {
	return &EnquiryResponse[*queries.GeneralInquiryView]{
		Success: true,
		Message: "Enquiry received",
		Record:  v,
	}
}

type PendingInquiriesResponse struct {
	Success   bool                          `json:"success"`
	Inquiries []*queries.GeneralInquiryView `json:"inquiries"`
}

func FromPendingInquiries(views []*queries.GeneralInquiryView) *PendingInquiriesResponse {
	if views == nil {
		views = []*queries.GeneralInquiryView{}
	}
	return &PendingInquiriesResponse{Success: true, Inquiries: views}
}
