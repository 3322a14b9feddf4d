package middleware

import (
	"encoding/json"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/yigit/personnel/internal/app/validation"
	"github.com/yigit/personnel/internal/pkg/apperrors"
)

// BindFields reads the request body as raw validation fields. JSON objects
// and url-encoded forms are accepted.
func BindFields(c *gin.Context) (validation.Fields, error) {
	if c.ContentType() == binding.MIMEJSON {
		return bindJSONFields(c)
	}

	if err := c.Request.ParseForm(); err != nil {
		return nil, fmt.Errorf("%w: malformed form body", apperrors.ErrBadRequest)
	}
	return validation.FromValues(c.Request.PostForm), nil
}

func bindJSONFields(c *gin.Context) (validation.Fields, error) {
	var body map[string]interface{}

	decoder := json.NewDecoder(c.Request.Body)
	decoder.UseNumber()
	if err := decoder.Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: request body must be a JSON object", apperrors.ErrBadRequest)
	}

	return validation.FromJSON(body)
}

// QueryFields exposes the query string as validation fields
func QueryFields(c *gin.Context) validation.Fields {
	return validation.FromValues(c.Request.URL.Query())
}
