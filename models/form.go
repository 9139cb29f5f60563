package models

// ContactSubmission is what the contact form sends to the backend.
type ContactSubmission struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Subject string `json:"subject" form:"subject"`
	Message string `json:"message" form:"message"`
}

// ContactResponse is the backend's reply to a submission. A non-empty Error marks
// a failed submission even when the transport succeeded.
type ContactResponse struct {
	OK      bool   `json:"ok,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

type ProtectedResponse struct {
	Message string  `json:"message,omitempty"`
	UserID  *string `json:"user_id,omitempty"`
	Error   string  `json:"error,omitempty"`
}
