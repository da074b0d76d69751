package dto

// ContactRequest is a contact-form submission
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
	Phone   string `json:"phone"`
}

// ContactResponse acknowledges a submission
type ContactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
