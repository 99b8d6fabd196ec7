package validators

type CreateCommentRequest struct {
	PostID  string `json:"post_id" validate:"required,object_id"`
	Content string `json:"content" validate:"required"`
}

type UpdateCommentRequest struct {
	Content string `json:"content" validate:"required"`
}

func ValidateCreateComment(req *CreateCommentRequest) ValidationErrors {
	return ValidateStruct(req)
}

func ValidateUpdateComment(req *UpdateCommentRequest) ValidationErrors {
	return ValidateStruct(req)
}
