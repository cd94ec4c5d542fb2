// Package api exposes enrollment and verification over HTTP.
package api

import (
	"github.com/gin-gonic/gin"
)

// Response codes.
const (
	CodeOK              = "OK"
	CodeInvalidInput    = "INVALID_INPUT"
	CodeNotEnrolled     = "NOT_ENROLLED"
	CodePayloadTooLarge = "PAYLOAD_TOO_LARGE"
	CodeInternal        = "INTERNAL"
)

// Response is the JSON envelope of every API reply.
type Response struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// SuccessResponse writes data in an OK envelope.
func SuccessResponse(c *gin.Context, status int, data any) {
	c.JSON(status, Response{Code: CodeOK, Message: "success", Data: data})
}

// ErrorResponse writes an error envelope and aborts the handler chain.
func ErrorResponse(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, Response{Code: code, Message: message})
}
