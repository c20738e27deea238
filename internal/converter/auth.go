package converter

import (
	dto "lion_slot/internal/api/dto/auth"
	"lion_slot/internal/model"
)

func RegisterRequestToUserModel(req *dto.RegisterRequest) *model.User {
	return &model.User{
		Login:    req.Login,
		Password: req.Password,
		Name:     req.Name,
		CPF:      req.CPF,
		Email:    req.Email,
		Phone:    req.Phone,
	}
}
