package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"informatica_xpto/internal/adapter/http/handlers/mocks"
	"informatica_xpto/internal/domain/entities"
	"informatica_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newFinancasRouter(t *testing.T) (*gin.Engine, *mocks.MockIFinancasUseCase) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIFinancasUseCase(ctrl)
	h := NewFinancasHandler(uc)

	r := gin.New()
	g := r.Group("/v1/empresas/:empresa_id/financas")
	g.POST("/transacoes", h.Adicionar)
	g.POST("/vendas", h.AdicionarVenda)
	g.GET("/transacoes", h.Listar)
	g.PATCH("/transacoes/:transacao_id", h.Atualizar)
	g.DELETE("/transacoes/:transacao_id", h.Deletar)
	g.GET("/resumo", h.Resumo)
	return r, uc
}

func TestFinancasHandler_Adicionar(t *testing.T) {
	t.Run("invalid tipo", func(t *testing.T) {
		r, uc := newFinancasRouter(t)
		uc.EXPECT().Adicionar(gomock.Any(), "emp-1", gomock.Any()).
			Return(entities.Transacao{}, usecase.ErrInvalidTransacaoTipo)

		req := httptest.NewRequest(http.MethodPost, "/v1/empresas/emp-1/financas/transacoes", bytes.NewBufferString(`{"tipo":"Transferência","valor":10}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newFinancasRouter(t)
		uc.EXPECT().Adicionar(gomock.Any(), "emp-1", gomock.Any()).Return(entities.Transacao{
			ID:    "tx-1",
			Tipo:  entities.TransacaoDespesa,
			Valor: 200,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/empresas/emp-1/financas/transacoes", bytes.NewBufferString(`{"tipo":"Despesa","valor":200,"descricao":"aluguel"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestFinancasHandler_Atualizar(t *testing.T) {
	t.Run("linked pedido missing", func(t *testing.T) {
		r, uc := newFinancasRouter(t)
		uc.EXPECT().Atualizar(gomock.Any(), "emp-1", "tx-1", gomock.Any()).
			Return(entities.Transacao{}, usecase.ErrPedidoNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/empresas/emp-1/financas/transacoes/tx-1", bytes.NewBufferString(`{"valor":1800}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newFinancasRouter(t)
		uc.EXPECT().Atualizar(gomock.Any(), "emp-1", "tx-1", gomock.Any()).
			Return(entities.Transacao{ID: "tx-1", Tipo: entities.TransacaoReceita, Valor: 1800}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/empresas/emp-1/financas/transacoes/tx-1", bytes.NewBufferString(`{"valor":1800}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestFinancasHandler_Resumo(t *testing.T) {
	r, uc := newFinancasRouter(t)
	uc.EXPECT().Resumo(gomock.Any(), "emp-1").Return(entities.ResumoFinanceiro{
		ReceitaTotal: 1850,
		DespesaTotal: 900,
		LucroLiquido: 950,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/empresas/emp-1/financas/resumo", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["receita_total"] != 1850.0 || body["lucro_liquido"] != 950.0 {
		t.Fatalf("unexpected response body: %s", w.Body.String())
	}
}

func TestMapFinancasError(t *testing.T) {
	if got := mapFinancasError(usecase.ErrInvalidTransacaoVal); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapFinancasError(usecase.ErrTransacaoNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapFinancasError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
