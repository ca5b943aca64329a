package handler

import (
	"bytes"
	"encoding/json"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/noteful-api/platform/errs"
)

// MsgMalformedBody is returned when a request body is not a JSON object.
const MsgMalformedBody = "Malformed request body"

// Body decodes the request body as a JSON object. An empty body is an empty object.
func Body(ctx *gin.Context) (map[string]any, error) {
	data, err := ctx.GetRawData()
	if err != nil {
		return nil, errs.Validation(MsgMalformedBody)
	}
	body := map[string]any{}
	if len(bytes.TrimSpace(data)) == 0 {
		return body, nil
	}
	if err := json.Unmarshal(data, &body); err != nil || body == nil {
		return nil, errs.Validation(MsgMalformedBody)
	}
	return body, nil
}

// String returns body[name] when it holds a JSON string.
func String(body map[string]any, name string) (string, bool) {
	s, ok := body[name].(string)
	return s, ok
}
