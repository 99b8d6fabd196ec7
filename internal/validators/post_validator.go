package validators

type CreatePostRequest struct {
	Title         string `json:"title" validate:"required,min=3"`
	Content       string `json:"content" validate:"required,min=10"`
	DestinationID string `json:"destination_id" validate:"required,object_id"`
	TravelDate    string `json:"travel_date" validate:"required,travel_date"`
	IsPublished   *bool  `json:"is_published"`
}

type UpdatePostRequest struct {
	Title         string `json:"title" validate:"required,min=3"`
	Content       string `json:"content" validate:"required,min=10"`
	DestinationID string `json:"destination_id" validate:"required,object_id"`
	TravelDate    string `json:"travel_date" validate:"required,travel_date"`
}

func ValidateCreatePost(req *CreatePostRequest) ValidationErrors {
	return ValidateStruct(req)
}

func ValidateUpdatePost(req *UpdatePostRequest) ValidationErrors {
	return ValidateStruct(req)
}
