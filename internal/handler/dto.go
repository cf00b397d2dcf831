package handler

import (
	"github.com/go-playground/validator/v10"
)

// validate checks request bodies at the boundary; the store assumes its inputs
// are shaped correctly and only enforces domain rules.
var validate = validator.New(validator.WithRequiredStructEnabled())

type loginRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type createUserRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Avatar   string `json:"avatar" validate:"omitempty,url"`
	Role     string `json:"role" validate:"required,oneof=admin author reader"`
}

type updateUserRequest struct {
	Username *string `json:"username" validate:"omitempty,min=1"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Avatar   *string `json:"avatar" validate:"omitempty"`
	Role     *string `json:"role" validate:"omitempty,oneof=admin author reader"`
}

type createPostRequest struct {
	Title      string   `json:"title" validate:"required"`
	Content    string   `json:"content" validate:"required"`
	Excerpt    string   `json:"excerpt" validate:"required"`
	CoverImage string   `json:"coverImage" validate:"omitempty,url"`
	VideoURL   string   `json:"videoUrl" validate:"omitempty,url"`
	Tags       []string `json:"tags"`
	Published  bool     `json:"published"`
}

type updatePostRequest struct {
	Title      *string   `json:"title" validate:"omitempty,min=1"`
	Content    *string   `json:"content" validate:"omitempty,min=1"`
	Excerpt    *string   `json:"excerpt" validate:"omitempty,min=1"`
	CoverImage *string   `json:"coverImage" validate:"omitempty"`
	VideoURL   *string   `json:"videoUrl" validate:"omitempty"`
	Tags       *[]string `json:"tags"`
	Published  *bool     `json:"published"`
}

type contactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}
