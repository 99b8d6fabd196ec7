package validators

type SubmitRatingRequest struct {
	DestinationID string `json:"destination_id" validate:"required,object_id"`
	Score         int    `json:"score" validate:"required,rating_score"`
}

func ValidateSubmitRating(req *SubmitRatingRequest) ValidationErrors {
	return ValidateStruct(req)
}
