package cart

type AddItemRequest struct {
	Email      string  `json:"email" binding:"required,email" validate:"required,email"`
	MenuItemID string  `json:"menuItemId" binding:"required" validate:"required"`
	Name       string  `json:"name"`
	Image      string  `json:"image"`
	Price      float64 `json:"price" binding:"required,gt=0" validate:"required,gt=0"`
}

type InsertResultResponse struct {
	InsertedID string `json:"insertedId"`
}

type DeleteResultResponse struct {
	DeletedCount int64 `json:"deletedCount"`
}
