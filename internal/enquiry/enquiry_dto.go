package enquiry

type CreateEnquiryRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"omitempty,email"`
	PhoneNumber string `json:"phone_number"`
	Message     string `json:"message"`
}

type UpdateEnquiryRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email" binding:"omitempty,email"`
	PhoneNumber string `json:"phone_number"`
	Message     string `json:"message"`
}

type EnquiryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Message     string `json:"message"`
	CreatedAt   string `json:"createdAt"`
}
