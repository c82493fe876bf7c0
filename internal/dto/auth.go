package dto

// LoginRequest defines the payload for authenticating a user.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the signed token and the authenticated user.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// SetupStatusResponse reports whether the first-run setup is still open.
type SetupStatusResponse struct {
	SetupRequired bool `json:"setupRequired"`
}

// SetupRequest defines the payload for the one-time bootstrap that creates
// the first administrator and the first safe.
type SetupRequest struct {
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=8"`
	Name            string `json:"name" binding:"required,max=100"`
	SafeName        string `json:"safeName" binding:"required,max=100"`
	SafeDescription string `json:"safeDescription" binding:"max=500"`
}

// SetupResponse carries the artifacts of a successful bootstrap.
type SetupResponse struct {
	User UserResponse `json:"user"`
	Safe SafeResponse `json:"safe"`
}
