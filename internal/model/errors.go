package model

import "errors"

var (
	ErrNoPlayerBound     = errors.New("no player bound to the round")
	ErrInvalidWager      = errors.New("wager must be positive")
	ErrInsufficientFunds = errors.New("not enough balance")
	ErrInvalidAmount     = errors.New("amount must be positive")

	ErrInvalidUserData    = errors.New("invalid user data")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid login or password")
	ErrSessionNotFound    = errors.New("session not found")
	ErrSessionExpired     = errors.New("session expired")
)
