package auth

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type LoginActivityResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Success   bool   `json:"success"`
	Reason    string `json:"reason,omitempty"`
	CreatedAt string `json:"createdAt"`
}
