package public

import (
	"strconv"

	handlershared "github.com/lojaviva/lojaviva-api/internal/http/handlers/shared"
	"github.com/lojaviva/lojaviva-api/internal/http/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func requestLog(c *gin.Context) *zap.SugaredLogger {
	return handlershared.RequestLog(c)
}

func respondError(c *gin.Context, code int, msg string, err error) {
	handlershared.RespondError(c, code, msg, err)
}

func normalizePagination(page, pageSize int) (int, int) {
	return handlershared.NormalizePagination(page, pageSize)
}

// parseIDParam reads a positive uint path parameter, answering the
// request itself when the value is malformed.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "identificador inválido", nil)
		return 0, false
	}
	return uint(id), true
}
