package models

// StatusResponse is the body of GET /status.
type StatusResponse struct {
	Status string `json:"status"`
}

// RegisterResponse is returned after a successful registration.
type RegisterResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// LoginResponse is returned after a successful login.
type LoginResponse struct {
	Message  string `json:"message"`
	Token    string `json:"token"`
	Username string `json:"username"`
	UserID   int64  `json:"userId"`
}

// CreateSessionResponse is returned after a fasting session was stored.
type CreateSessionResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// MessageResponse carries an informational message, e.g. for an empty list.
type MessageResponse struct {
	Message string `json:"message"`
}

// EditResponse reports how many positional pairs matched a session.
type EditResponse struct {
	Message string `json:"message"`
	Updated int64  `json:"updated"`
}

// DeleteResponse reports how many open sessions were removed.
type DeleteResponse struct {
	Message string `json:"message"`
	Deleted int64  `json:"deleted"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}
