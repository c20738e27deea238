package api

import (
	"errors"
	"net/http"

	"lion_slot/internal/model"
	"lion_slot/pkg/resp"

	"go.uber.org/zap"
)

// WriteError переводит ошибку сервиса в HTTP ответ.
// Неизвестные ошибки логируются и отдаются как 500
func WriteError(w http.ResponseWriter, log *zap.Logger, op string, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, model.ErrInvalidWager),
		errors.Is(err, model.ErrInvalidAmount),
		errors.Is(err, model.ErrInvalidUserData):
		status = http.StatusBadRequest
	case errors.Is(err, model.ErrNoPlayerBound),
		errors.Is(err, model.ErrInvalidCredentials),
		errors.Is(err, model.ErrSessionNotFound),
		errors.Is(err, model.ErrSessionExpired):
		status = http.StatusUnauthorized
	case errors.Is(err, model.ErrInsufficientFunds):
		status = http.StatusPaymentRequired
	case errors.Is(err, model.ErrUserNotFound):
		status = http.StatusNotFound
	case errors.Is(err, model.ErrUserExists):
		status = http.StatusConflict
	}

	if status == http.StatusInternalServerError {
		log.Error(op+" failed", zap.Error(err))
		resp.WriteError(w, status, op+" failed")
		return
	}

	resp.WriteError(w, status, err.Error())
}
