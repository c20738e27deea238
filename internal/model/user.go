package model

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
)

type User struct {
	Login    string // Имя пользователя, ключ аккаунта
	Password string
	Name     string
	CPF      string
	Email    string
	Phone    string
	Balance  decimal.Decimal
}

type UserClaims struct {
	jwt.RegisteredClaims
}

type AuthData struct {
	AccessToken  string
	RefreshToken string
	SessionID    string
}
