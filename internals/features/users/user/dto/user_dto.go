// internals/features/users/user/dto/user_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "schoolku_backend/internals/features/users/user/model"
)

/* =========================================================
   REQUESTS
   ========================================================= */

type UpdateUserRequest struct {
	UserName *string `json:"user_name" validate:"omitempty,min=3,max=50"`
	Email    *string `json:"email"     validate:"omitempty,email"`
	Role     *string `json:"role"      validate:"omitempty,oneof=owner admin teacher student user"`
	IsActive *bool   `json:"is_active" validate:"omitempty"`
}

func (r UpdateUserRequest) Apply(m *model.UserModel) {
	if r.UserName != nil {
		m.UserName = strings.TrimSpace(*r.UserName)
	}
	if r.Email != nil {
		m.Email = strings.ToLower(strings.TrimSpace(*r.Email))
	}
	if r.Role != nil {
		m.Role = strings.TrimSpace(*r.Role)
	}
	if r.IsActive != nil {
		m.IsActive = *r.IsActive
	}
}

/* =========================================================
   RESPONSES
   ========================================================= */

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	UserName  string    `json:"user_name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func FromModel(m model.UserModel) UserResponse {
	return UserResponse{
		ID:        m.ID,
		UserName:  m.UserName,
		Email:     m.Email,
		Role:      m.Role,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
	}
}

func FromModels(list []model.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(list))
	for _, m := range list {
		out = append(out, FromModel(m))
	}
	return out
}
