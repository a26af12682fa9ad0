package services

import (
	"errors"
	"net/http"
)

type ErrorCode int

const (
	NotFoundError ErrorCode = iota + 1
	BadRequestError
)

// BusinessError 業務邏輯錯誤，controller 依照 Code 轉成 http status
type BusinessError struct {
	Code    ErrorCode
	Message string
}

func (e *BusinessError) Error() string {
	return e.Message
}

// Status 對應的 http status
func (e *BusinessError) Status() int {
	switch e.Code {
	case NotFoundError:
		return http.StatusNotFound
	case BadRequestError:
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func NotFound(message string) error {
	return &BusinessError{Code: NotFoundError, Message: message}
}

func BadRequest(message string) error {
	return &BusinessError{Code: BadRequestError, Message: message}
}

func IsNotFound(err error) bool {
	return hasCode(err, NotFoundError)
}

func IsBadRequest(err error) bool {
	return hasCode(err, BadRequestError)
}

func hasCode(err error, code ErrorCode) bool {
	var businessError *BusinessError
	if errors.As(err, &businessError) {
		return businessError.Code == code
	}
	return false
}
