// Package dto defines data transfer objects for the auth feature's HTTP transport layer.
package dto

// RegisterReq represents the request body for the /register endpoint.
// Username and password are required; email and phone are optional
// contact fields. Blank-after-trim values are rejected by the usecase,
// not by the binding tags.
type RegisterReq struct {
	Username string  `json:"username" binding:"required"`
	Password string  `json:"password" binding:"required"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
}
