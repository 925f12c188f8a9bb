package models

// LoginData is the request body for the login endpoints.
type LoginData struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterData is the request body for candidate registration.
type RegisterData struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is returned by the login endpoints. The session itself is
// carried by a credential cookie; Token is an optional access token whose
// claims the client may inspect for display purposes only.
type LoginResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message,omitempty"`
	User    *Identity `json:"user,omitempty"`
	Token   string    `json:"token,omitempty"`
}

// RegisterResponse is returned by the registration endpoint.
type RegisterResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message,omitempty"`
	User    *Identity `json:"user,omitempty"`
}
