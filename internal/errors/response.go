package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the uniform body for every restaurant API reply. Status is the
// primary success discriminator regardless of HTTP status code.
type Response struct {
	Status bool   `json:"status"`
	Msg    string `json:"msg,omitempty"`
}

// Fail writes a {status:false, msg} body with the given HTTP status code.
func Fail(c *gin.Context, statusCode int, msg string) {
	c.JSON(statusCode, Response{Status: false, Msg: msg})
}

// FailOK writes a {status:false, msg} body with HTTP 200. Most failures in
// the restaurant API keep a 200 status and rely on the status field alone;
// removeCartItem is the one route that uses a real 404.
func FailOK(c *gin.Context, msg string) {
	Fail(c, http.StatusOK, msg)
}

// NotFoundResp writes a {status:false, msg} body with HTTP 404.
func NotFoundResp(c *gin.Context, msg string) {
	Fail(c, http.StatusNotFound, msg)
}
