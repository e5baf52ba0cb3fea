package dto

import (
	"errors"
	"strings"

	helper "rumahjogja_backend/internals/helpers"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

var authMessages = map[string]string{
	"Email.required":    "Email diperlukan",
	"Email.email":       "Email tidak valid",
	"Password.required": "Password diperlukan",
	"Password.min":      "Password minimal 6 karakter",
}

func (r *LoginRequest) Validate() error {
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
	if err := helper.Validate.Struct(r); err != nil {
		return errors.New(helper.FirstMessage(err, authMessages))
	}
	return nil
}

type LoginResponse struct {
	Token string   `json:"token"`
	User  UserInfo `json:"user"`
}

type UserInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
