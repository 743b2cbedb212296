package response

import "github.com/codepedia/lomba-api/internal/domain"

type LoginResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type UploadResponse struct {
	URL string `json:"url"`
}
