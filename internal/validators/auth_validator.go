package validators

import "strings"

type RegisterRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	DisplayName string `json:"display_name" validate:"required,min=2"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func ValidateRegister(req *RegisterRequest) ValidationErrors {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	return ValidateStruct(req)
}

func ValidateLogin(req *LoginRequest) ValidationErrors {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	return ValidateStruct(req)
}
