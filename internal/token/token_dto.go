package token

type IssueRequest struct {
	Email string `json:"email" binding:"required,email"`
	// Profile fields sent by the client (name, photo, ...) are accepted
	// but not embedded in the token.
	Name string `json:"name"`
}

type IssueResponse struct {
	Token string `json:"token"`
}
