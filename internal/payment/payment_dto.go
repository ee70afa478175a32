package payment

type CreateIntentRequest struct {
	Price float64 `json:"price" binding:"required"`
}

type CreateIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

type SettleRequest struct {
	Email         string   `json:"email" validate:"required,email"`
	Price         float64  `json:"price" validate:"required,gt=0"`
	TransactionID string   `json:"transactionId" validate:"required"`
	CartIDs       []string `json:"cartIds" validate:"required,min=1,dive,required"`
	Status        string   `json:"status"`
}

// PaymentResult and DeleteResult are reported side by side: the two
// writes of settle are not atomic and a partial failure must stay
// visible to the caller.
type PaymentResult struct {
	InsertedID string `json:"insertedId"`
	Duplicate  bool   `json:"duplicate,omitempty"`
}

type DeleteResult struct {
	DeletedCount int64  `json:"deletedCount"`
	Completed    bool   `json:"completed"`
	Error        string `json:"error,omitempty"`
}

type SettleResponse struct {
	PaymentResult PaymentResult `json:"paymentResult"`
	DeleteResult  DeleteResult  `json:"deleteResult"`
}
