package public

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lojaviva/lojaviva-api/internal/provider"

	"github.com/gin-gonic/gin"
)

func TestAtualizarUsuarioRejectsImmutableFields(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := New(&provider.Container{})

	r := gin.New()
	r.PUT("/usuarios/:id", handler.AtualizarUsuario)

	cases := []struct {
		name string
		body string
	}{
		{name: "cpf", body: `{"cpf":"98765432100"}`},
		{name: "email", body: `{"email":"novo@example.com"}`},
		{name: "cpf with allowed field", body: `{"nome":"Ana","cpf":"98765432100"}`},
	}
	for _, item := range cases {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/usuarios/1", strings.NewReader(item.body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		var resp struct {
			StatusCode int    `json:"status_code"`
			Msg        string `json:"msg"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("%s: unmarshal response failed: %v", item.name, err)
		}
		if resp.StatusCode != 400 {
			t.Fatalf("%s: status_code want 400 got %d", item.name, resp.StatusCode)
		}
		if !strings.Contains(resp.Msg, "não podem ser alterados") {
			t.Fatalf("%s: msg should state the fields are immutable, got %q", item.name, resp.Msg)
		}
	}
}
