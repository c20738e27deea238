package req

import (
	"io"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
)

var (
	json     = jsoniter.ConfigCompatibleWithStandardLibrary
	validate = validator.New(validator.WithRequiredStructEnabled())
)

// Decode читает JSON тело запроса и проверяет теги validate
func Decode[T any](body io.ReadCloser) (T, error) {
	var payload T
	defer body.Close()

	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return payload, err
	}

	if err := validate.Struct(payload); err != nil {
		return payload, err
	}

	return payload, nil
}
