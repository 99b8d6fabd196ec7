package validators

type CreateDestinationRequest struct {
	Name        string `json:"name" validate:"required,min=2"`
	Country     string `json:"country" validate:"required"`
	Description string `json:"description" validate:"required,min=10"`
}

// Updates use the same schema as creation.
type UpdateDestinationRequest = CreateDestinationRequest

func ValidateDestination(req *CreateDestinationRequest) ValidationErrors {
	return ValidateStruct(req)
}
