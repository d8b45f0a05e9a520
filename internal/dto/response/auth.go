package response

import (
	"jewelry-store/internal/data/entity"
)

type UserInfo struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type RegisterResponse struct {
	Message string `json:"message"`
}

type LoginResponse struct {
	Token string   `json:"token"`
	User  UserInfo `json:"user"`
}

func UserToInfo(user *entity.User) UserInfo {
	return UserInfo{
		ID:       user.ID,
		Username: user.Username,
		Role:     string(user.Role),
	}
}
