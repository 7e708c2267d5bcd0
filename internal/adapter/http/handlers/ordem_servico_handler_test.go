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

func newOrdemServicoRouter(t *testing.T) (*gin.Engine, *mocks.MockIOrdemServicoUseCase, *mocks.MockIReconcileUseCase) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIOrdemServicoUseCase(ctrl)
	rec := mocks.NewMockIReconcileUseCase(ctrl)
	h := NewOrdemServicoHandler(uc, rec)

	r := gin.New()
	g := r.Group("/v1/empresas/:empresa_id/ordens-servico")
	g.POST("", h.Create)
	g.GET("/:os_id", h.GetByID)
	g.PATCH("/:os_id/status", h.ChangeStatus)
	g.DELETE("/:os_id", h.Delete)
	return r, uc, rec
}

func TestOrdemServicoHandler_Create(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		r, _, _ := newOrdemServicoRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/empresas/emp-1/ordens-servico", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc, _ := newOrdemServicoRouter(t)
		uc.EXPECT().Create(gomock.Any(), "emp-1", gomock.Any()).Return(entities.OrdemServico{
			ID:          "os-1",
			ClienteNome: "João",
			Status:      entities.OSStatusRecebido,
		}, nil)

		body := `{"cliente_nome":"João","equipamento":"Notebook Dell","problema_relatado":"não liga"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/empresas/emp-1/ordens-servico", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestOrdemServicoHandler_ChangeStatus(t *testing.T) {
	t.Run("delivery success", func(t *testing.T) {
		r, _, rec := newOrdemServicoRouter(t)
		rec.EXPECT().ReconcileOS(gomock.Any(), "emp-1", "os-1", entities.OSStatusEntreguePago, gomock.Any()).
			Return(entities.OrdemServico{ID: "os-1", Status: entities.OSStatusEntreguePago, ValorFinal: 350}, true, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/empresas/emp-1/ordens-servico/os-1/status", bytes.NewBufferString(`{"status":"Entregue/Pago","valor_final":350}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "Entregue/Pago" || body["valor_final"] != 350.0 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("invalid final value", func(t *testing.T) {
		r, _, rec := newOrdemServicoRouter(t)
		rec.EXPECT().ReconcileOS(gomock.Any(), "emp-1", "os-1", gomock.Any(), gomock.Any()).
			Return(entities.OrdemServico{}, false, usecase.ErrInvalidFinalValue)

		req := httptest.NewRequest(http.MethodPatch, "/v1/empresas/emp-1/ordens-servico/os-1/status", bytes.NewBufferString(`{"status":"Entregue/Pago"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("partial success", func(t *testing.T) {
		r, _, rec := newOrdemServicoRouter(t)
		rec.EXPECT().ReconcileOS(gomock.Any(), "emp-1", "os-1", gomock.Any(), gomock.Any()).
			Return(entities.OrdemServico{}, false, usecase.ErrPartialSuccess)

		req := httptest.NewRequest(http.MethodPatch, "/v1/empresas/emp-1/ordens-servico/os-1/status", bytes.NewBufferString(`{"status":"Entregue/Pago","valor_final":350}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}

func TestMapOrdemServicoError(t *testing.T) {
	if got := mapOrdemServicoError(usecase.ErrInvalidOSInput); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapOrdemServicoError(usecase.ErrOSNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapOrdemServicoError(usecase.ErrInvalidTransition); got.HTTPStatus != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422")
	}
	if got := mapOrdemServicoError(usecase.ErrConflict); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapOrdemServicoError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
