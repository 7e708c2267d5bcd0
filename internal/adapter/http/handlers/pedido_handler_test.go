package handlers

import (
	"bytes"
	"context"
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

func newPedidoRouter(t *testing.T) (*gin.Engine, *mocks.MockIPedidoUseCase, *mocks.MockIReconcileUseCase) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIPedidoUseCase(ctrl)
	rec := mocks.NewMockIReconcileUseCase(ctrl)
	h := NewPedidoHandler(uc, rec)

	r := gin.New()
	g := r.Group("/v1/empresas/:empresa_id/pedidos")
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/:pedido_id", h.GetByID)
	g.PUT("/:pedido_id", h.Update)
	g.PATCH("/:pedido_id/status", h.ChangeStatus)
	g.DELETE("/:pedido_id", h.Delete)
	return r, uc, rec
}

func TestPedidoHandler_Create(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		r, _, _ := newPedidoRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/empresas/emp-1/pedidos", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc, _ := newPedidoRouter(t)
		uc.EXPECT().Create(gomock.Any(), "emp-1", gomock.Any()).Return(entities.Pedido{
			ID:         "ped-1",
			ClientName: "Maria",
			Status:     entities.PedidoStatusPendente,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/empresas/emp-1/pedidos", bytes.NewBufferString(`{"client_name":"Maria"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "ped-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("insufficient stock on consuming create", func(t *testing.T) {
		r, uc, _ := newPedidoRouter(t)
		uc.EXPECT().Create(gomock.Any(), "emp-1", gomock.Any()).
			Return(entities.Pedido{}, usecase.ErrInsufficientStock)

		req := httptest.NewRequest(http.MethodPost, "/v1/empresas/emp-1/pedidos", bytes.NewBufferString(`{"client_name":"Maria","status":"Enviados"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestPedidoHandler_ChangeStatus(t *testing.T) {
	t.Run("missing status field", func(t *testing.T) {
		r, _, _ := newPedidoRouter(t)

		req := httptest.NewRequest(http.MethodPatch, "/v1/empresas/emp-1/pedidos/ped-1/status", bytes.NewBufferString(`{"valor_final":1500}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("delivery success", func(t *testing.T) {
		r, _, rec := newPedidoRouter(t)
		rec.EXPECT().ReconcilePedido(gomock.Any(), "emp-1", "ped-1", entities.PedidoStatusEntregues, gomock.Any()).DoAndReturn(
			func(_ context.Context, _, _ string, _ entities.PedidoStatus, valorFinal *float64) (usecase.ReconcileResult, error) {
				if valorFinal == nil || *valorFinal != 1500 {
					t.Fatalf("expected valor_final 1500, got %v", valorFinal)
				}
				return usecase.ReconcileResult{Status: entities.PedidoStatusEntregues, Posted: true}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPatch, "/v1/empresas/emp-1/pedidos/ped-1/status", bytes.NewBufferString(`{"status":"Entregues","valor_final":1500}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "Entregues" || body["posted"] != true {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("mapped errors", func(t *testing.T) {
		cases := []struct {
			name string
			err  error
			code int
		}{
			{"not found", usecase.ErrPedidoNotFound, http.StatusNotFound},
			{"insufficient stock", usecase.ErrInsufficientStock, http.StatusConflict},
			{"invalid transition", usecase.ErrInvalidTransition, http.StatusUnprocessableEntity},
			{"invalid final value", usecase.ErrInvalidFinalValue, http.StatusUnprocessableEntity},
			{"conflict", usecase.ErrConflict, http.StatusConflict},
			{"partial success", usecase.ErrPartialSuccess, http.StatusBadGateway},
			{"internal", errors.New("boom"), http.StatusInternalServerError},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				r, _, rec := newPedidoRouter(t)
				rec.EXPECT().ReconcilePedido(gomock.Any(), "emp-1", "ped-1", gomock.Any(), gomock.Any()).
					Return(usecase.ReconcileResult{}, tc.err)

				req := httptest.NewRequest(http.MethodPatch, "/v1/empresas/emp-1/pedidos/ped-1/status", bytes.NewBufferString(`{"status":"Enviados"}`))
				req.Header.Set("Content-Type", "application/json")
				w := httptest.NewRecorder()
				r.ServeHTTP(w, req)

				if w.Code != tc.code {
					t.Fatalf("expected %d, got %d", tc.code, w.Code)
				}
			})
		}
	})
}

func TestPedidoHandler_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r, _, rec := newPedidoRouter(t)
		rec.EXPECT().DeletePedido(gomock.Any(), "emp-1", "ped-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/empresas/emp-1/pedidos/ped-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("blocked by failed reversal", func(t *testing.T) {
		r, _, rec := newPedidoRouter(t)
		rec.EXPECT().DeletePedido(gomock.Any(), "emp-1", "ped-1").Return(usecase.ErrConflict)

		req := httptest.NewRequest(http.MethodDelete, "/v1/empresas/emp-1/pedidos/ped-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestMapPedidoError(t *testing.T) {
	if got := mapPedidoError(usecase.ErrInvalidEmpresaID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapPedidoError(usecase.ErrPedidoNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapPedidoError(usecase.ErrInventoryItemNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapPedidoError(usecase.ErrInsufficientStock); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapPedidoError(usecase.ErrInvalidTransition); got.HTTPStatus != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422")
	}
	if got := mapPedidoError(usecase.ErrPartialSuccess); got.HTTPStatus != http.StatusBadGateway {
		t.Fatalf("expected 502")
	}
	if got := mapPedidoError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
