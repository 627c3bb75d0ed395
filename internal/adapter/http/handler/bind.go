package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"stars-converter/internal/adapter/http/dto"
	"stars-converter/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// bindJSON decodes the body into obj, trims its string fields and then
// runs the binding validator, so padded input like " 12 " still passes.
func bindJSON(c *gin.Context, obj interface{}) error {
	if c.Request.Body == nil || c.Request.Body == http.NoBody {
		return apperror.Validation("request body is required")
	}
	if err := json.NewDecoder(c.Request.Body).Decode(obj); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return apperror.Validation("request body too large")
		}
		return apperror.Validation("invalid JSON: " + err.Error())
	}
	dto.TrimStruct(obj)
	if err := binding.Validator.ValidateStruct(obj); err != nil {
		return apperror.Validation(err.Error())
	}
	return nil
}
