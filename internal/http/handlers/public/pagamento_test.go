package public

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/lojaviva/lojaviva-api/internal/constants"
	"github.com/lojaviva/lojaviva-api/internal/models"

	"github.com/gin-gonic/gin"
)

func TestRealizarPagamentoBindsValorAndMetodo(t *testing.T) {
	handler, db := setupCheckoutHandlerTest(t)

	valor, _ := models.NewMoneyFromString("37.00")
	now := time.Now()
	pedido := models.Pedido{
		StatusPedido: constants.PedidoStatusPendente,
		DataPedido:   now,
		DataEntrega:  now.Add(constants.PedidoEntregaHoras * time.Hour),
		ValorTotal:   valor,
		UsuarioID:    1,
		CarrinhoID:   1,
	}
	if err := db.Create(&pedido).Error; err != nil {
		t.Fatalf("create pedido failed: %v", err)
	}

	r := gin.New()
	r.POST("/pagamentos/realizar", handler.RealizarPagamento)

	body := fmt.Sprintf(`{"pedidoId":%d,"valor":37.00,"metodo":"pix"}`, pedido.ID)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/pagamentos/realizar", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status want 201 got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		StatusCode int `json:"status_code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp.StatusCode != 0 {
		t.Fatalf("status_code want 0 got %d", resp.StatusCode)
	}

	var persisted models.Pedido
	if err := db.First(&persisted, pedido.ID).Error; err != nil {
		t.Fatalf("reload pedido failed: %v", err)
	}
	if persisted.StatusPedido != constants.PedidoStatusPago {
		t.Fatalf("pedido status want %s got %s", constants.PedidoStatusPago, persisted.StatusPedido)
	}

	var pagamento models.Pagamento
	if err := db.Where("pedido_id = ?", pedido.ID).First(&pagamento).Error; err != nil {
		t.Fatalf("load pagamento failed: %v", err)
	}
	if !pagamento.ValorPago.Decimal.Equal(valor.Decimal) {
		t.Fatalf("valor pago want 37.00 got %s", pagamento.ValorPago.String())
	}
	if pagamento.MetodoPagamento != "pix" {
		t.Fatalf("metodo want pix got %s", pagamento.MetodoPagamento)
	}
}

func TestRealizarPagamentoMissingValorRejected(t *testing.T) {
	handler, _ := setupCheckoutHandlerTest(t)

	r := gin.New()
	r.POST("/pagamentos/realizar", handler.RealizarPagamento)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/pagamentos/realizar", strings.NewReader(`{"pedidoId":1,"metodo":"pix"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var resp struct {
		StatusCode int `json:"status_code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp.StatusCode != 400 {
		t.Fatalf("status_code want 400 got %d", resp.StatusCode)
	}
}
