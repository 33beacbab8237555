package repository

import (
	"github.com/noah-isme/edu-admin-console/internal/models"
	"github.com/noah-isme/edu-admin-console/pkg/upstream"
)

// InquiryRepository manages admission inquiries.
type InquiryRepository struct {
	*upstream.Resource[models.Inquiry]
}

// NewInquiryRepository binds /admissions/inquiries.
func NewInquiryRepository(client *upstream.Client) *InquiryRepository {
	return &InquiryRepository{Resource: upstream.NewResource[models.Inquiry](client, "/admissions/inquiries")}
}
