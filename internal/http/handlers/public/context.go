package public

import (
	handlershared "github.com/lojaviva/lojaviva-api/internal/http/handlers/shared"

	"github.com/gin-gonic/gin"
)

func getUsuarioID(c *gin.Context) (uint, bool) {
	return handlershared.GetContextUint(c, "usuario_id", "identificador de usuário inválido", "identificador de usuário com tipo inválido")
}
