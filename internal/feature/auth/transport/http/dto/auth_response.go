package dto

// AuthResponse is the uniform response body for /register and /login.
// Every outcome carries a success flag and a human-readable message and
// nothing else, so callers cannot distinguish an unknown username from
// a wrong password by response shape.
type AuthResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
