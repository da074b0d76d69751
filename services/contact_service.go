package services

import (
	"log"

	"github.com/alliance-immobilier/api/dto"
)

// ContactService handles contact-form intake. Delivery (mail, CRM) is an
// external collaborator; submissions are acknowledged and logged.
type ContactService struct{}

// NewContactService creates a new contact service instance
func NewContactService() *ContactService {
	return &ContactService{}
}

// Submit acknowledges a contact-form submission
func (s *ContactService) Submit(req dto.ContactRequest) dto.ContactResponse {
	log.Printf("Contact form received from %s <%s>", req.Name, req.Email)
	return dto.ContactResponse{
		Success: true,
		Message: "Contact form submitted successfully",
	}
}
