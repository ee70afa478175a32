package menu

type UpsertItemRequest struct {
	Name     string  `json:"name" binding:"required"`
	Recipe   string  `json:"recipe"`
	Image    string  `json:"image"`
	Category string  `json:"category"`
	Price    float64 `json:"price" binding:"required,gt=0"`
}

type InsertResultResponse struct {
	InsertedID string `json:"insertedId"`
}

type UpdateResultResponse struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

type DeleteResultResponse struct {
	DeletedCount int64 `json:"deletedCount"`
}
