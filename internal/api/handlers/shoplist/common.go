package shoplist

import (
	"errors"
	"net/http"

	"shoplist-generator/internal/pkg/common"

	"github.com/gin-gonic/gin"
)

// respondError 把服務層錯誤轉成對應的 HTTP 響應
func respondError(c *gin.Context, err error) {
	var custom *common.CustomError
	if errors.As(err, &custom) {
		c.JSON(custom.Status, common.ErrorResponse{
			Code:    custom.Code,
			Message: custom.Message,
		})
		return
	}
	if common.IsValidationError(err) {
		c.JSON(http.StatusBadRequest, common.ErrorResponse{
			Code:    common.ErrCodeInvalidRequest,
			Message: err.Error(),
		})
		return
	}
	c.JSON(http.StatusInternalServerError, common.ErrorResponse{
		Code:    common.ErrCodeInternalError,
		Message: "服務器內部錯誤",
	})
}
