package handler

import (
	"time"

	"github.com/arvindnr/geetika/internal/domain"
)

// UserDTO is the JSON representation of a user. The password hash never
// leaves the server.
type UserDTO struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Credits  int    `json:"credits"`
}

func toUserDTO(u *domain.User) UserDTO {
	return UserDTO{
		ID:       u.ID,
		Username: u.Username,
		Credits:  u.Credits,
	}
}

// GenerationDTO is the JSON representation of one history record.
type GenerationDTO struct {
	ID               string            `json:"id"`
	UserID           string            `json:"userId"`
	ContentType      string            `json:"contentType"`
	Language         string            `json:"language"`
	Context          map[string]string `json:"context"`
	GeneratedContent string            `json:"generatedContent"`
	CreatedAt        string            `json:"createdAt"`
}

func toGenerationDTO(g domain.Generation) GenerationDTO {
	return GenerationDTO{
		ID:               g.ID,
		UserID:           g.UserID,
		ContentType:      g.ContentType,
		Language:         g.Language,
		Context:          g.Context,
		GeneratedContent: g.GeneratedContent,
		CreatedAt:        g.CreatedAt.Format(time.RFC3339),
	}
}

func toGenerationDTOs(gens []domain.Generation) []GenerationDTO {
	dtos := make([]GenerationDTO, len(gens))
	for i, g := range gens {
		dtos[i] = toGenerationDTO(g)
	}
	return dtos
}
