package validators

type UpdateProfileRequest struct {
	DisplayName     string `json:"display_name" validate:"required,min=2"`
	Bio             string `json:"bio"`
	ProfilePhotoURL string `json:"profile_photo_url" validate:"photo_url"`
}

func ValidateUpdateProfile(req *UpdateProfileRequest) ValidationErrors {
	return ValidateStruct(req)
}
