package handlers

import (
	"terranova_lotes/internal/adapter/http/dto/response"
	"terranova_lotes/pkg"

	"github.com/gin-gonic/gin"
)

// renderError writes the envelope for a failed operation. Anything that is
// not an AppError degrades to a 500 with a generic message.
func renderError(c *gin.Context, err error) {
	appErr := pkg.FromError(err)
	c.JSON(appErr.HTTPStatus(), response.Fail(appErr))
}

// renderInvalidPayload answers malformed or shape-invalid request bodies.
func renderInvalidPayload(c *gin.Context, err error) {
	appErr := pkg.NewInvalidArgument("Datos de entrada inválidos")
	appErr.Err = err
	c.JSON(appErr.HTTPStatus(), response.Fail(appErr))
}
