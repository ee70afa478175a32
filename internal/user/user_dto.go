package user

type RegisterRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"`
}

// RegisterResponse mirrors the store's insert result. InsertedID is null
// when the email was already registered.
type RegisterResponse struct {
	InsertedID *string `json:"insertedId"`
	Message    string  `json:"message,omitempty"`
}

type AdminCheckResponse struct {
	Admin bool `json:"admin"`
}

type UpdateResultResponse struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

type DeleteResultResponse struct {
	DeletedCount int64 `json:"deletedCount"`
}
