package model

import "time"

// Session сессия игрока. RefreshToken - sha256 хэш, сам токен хранится только у клиента
type Session struct {
	ID           string
	Login        string
	RefreshToken string
	ExpiresAt    time.Time
}
