package users

// RegisterRequest represents the data needed to sign up a new user
type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	ImageURL string `json:"image_url" validate:"omitempty,max=2048"`
}

// UpdateProfileRequest represents a profile edit; Password must be the current password
type UpdateProfileRequest struct {
	Username string `json:"username" validate:"required,max=50"`
	Email    string `json:"email" validate:"required,email"`
	ImageURL string `json:"image_url" validate:"omitempty,max=2048"`
	Password string `json:"password" validate:"required"`
}

// CreateUserRequest is what the repository persists; Password is already hashed
type CreateUserRequest struct {
	Username     string
	Email        string
	PasswordHash string
	ImageURL     string
}

// UpdateUserRequest represents the columns a profile edit may change
type UpdateUserRequest struct {
	Username string
	Email    string
	ImageURL string
}
