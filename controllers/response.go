package controllers

import (
	"dishrank-restaurant-api/services"
	"dishrank-restaurant-api/services/trackLog"
	"dishrank-restaurant-api/structs"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// HandleError BusinessError 依 Code 回應，其餘一律 500
func HandleError(c *gin.Context, err error) {
	var businessError *services.BusinessError
	if errors.As(err, &businessError) {
		c.JSON(businessError.Status(), structs.ErrorResponse{
			StatusCode: businessError.Status(),
			Message:    businessError.Message,
		})
		return
	}

	trackLog.Error(fmt.Sprintf("[%s %s] %s", c.Request.Method, c.Request.URL.Path, err.Error()), true)
	c.JSON(http.StatusInternalServerError, structs.ErrorResponse{
		StatusCode: http.StatusInternalServerError,
		Message:    "Internal server error",
	})
}

// BindError body 格式錯誤或欄位驗證失敗
func BindError(c *gin.Context, err error) {
	response := structs.ErrorResponse{
		StatusCode: http.StatusBadRequest,
		Message:    err.Error(),
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		response.Message = "Invalid request data"
		for _, fieldError := range validationErrors {
			response.Errors = append(response.Errors, structs.FieldError{
				Field: fieldError.Field(),
				Tag:   fieldError.Tag(),
			})
		}
	}
	c.JSON(http.StatusBadRequest, response)
}

// UUIDParam 取出 path 參數，不是 uuid 時直接回 400
func UUIDParam(c *gin.Context, name string) (string, bool) {
	value := c.Param(name)
	if _, err := uuid.Parse(value); err != nil {
		c.JSON(http.StatusBadRequest, structs.ErrorResponse{
			StatusCode: http.StatusBadRequest,
			Message:    "Validation failed (uuid is expected)",
		})
		return "", false
	}
	return value, true
}
