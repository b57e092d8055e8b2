package delivery

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/x-xyz/listingapi/domain"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

// ErrorBody is the data of a failed response
type ErrorBody struct {
	Kind    domain.ErrorKind `json:"kind"`
	Message string           `json:"message"`
}

var kindStatus = map[domain.ErrorKind]int{
	domain.KindNameTooLong:       http.StatusBadRequest,
	domain.KindUrlTooLong:        http.StatusBadRequest,
	domain.KindBadParamInput:     http.StatusBadRequest,
	domain.KindInvalidAddress:    http.StatusBadRequest,
	domain.KindMathOverflow:      http.StatusUnprocessableEntity,
	domain.KindInvalidSignature:  http.StatusUnauthorized,
	domain.KindUnauthorized:      http.StatusForbidden,
	domain.KindNotFound:          http.StatusNotFound,
	domain.KindConflict:          http.StatusConflict,
	domain.KindReceiptExists:     http.StatusConflict,
	domain.KindListingClosed:     http.StatusConflict,
	domain.KindInsufficientFunds: http.StatusPaymentRequired,
	domain.KindStalePrice:        http.StatusServiceUnavailable,
	domain.KindInvalidPriceFeed:  http.StatusBadGateway,
}

// StatusOf maps err to the http status its kind is reported with, fallback
// when the kind is unknown.
func StatusOf(err error, fallback int) int {
	if status, ok := kindStatus[domain.KindOf(err)]; ok {
		return status
	}
	var verr validator.ValidationErrors
	if errors.As(err, &verr) {
		return http.StatusBadRequest
	}
	return fallback
}

// MakeJsonResp writes data inside the json envelope. An error is reported as
// {kind, message} with the status of its kind.
func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		status = StatusOf(err, status)
		kind := domain.KindOf(err)
		if kind == domain.KindInternal && status == http.StatusBadRequest {
			kind = domain.KindBadParamInput
		}
		data = ErrorBody{Kind: kind, Message: err.Error()}
	}

	if status >= 400 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	}

	if status >= 200 && status < 300 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	}

	return c.JSON(status, data)
}
