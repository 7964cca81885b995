package models

// Credentials is the request body of the signup and signin endpoints.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CatchRequest is the request body of the catch endpoint.
type CatchRequest struct {
	Name string `json:"name"`
}

// MessageResponse is the generic response body carrying a human-readable
// message. Every error response of the HTTP API uses this shape.
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginResponse is returned by the signin endpoint.
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}
