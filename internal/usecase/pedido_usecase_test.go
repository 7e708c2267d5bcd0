package usecase

import (
	"context"
	"errors"
	"testing"

	"informatica_xpto/internal/domain/entities"
	mock_interfaces "informatica_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

// stubReconcile records the transition it was asked for.
type stubReconcile struct {
	IReconcileUseCase
	called    bool
	newStatus entities.PedidoStatus
	result    ReconcileResult
	err       error
}

func (s *stubReconcile) ReconcilePedido(_ context.Context, _, _ string, newStatus entities.PedidoStatus, _ *float64) (ReconcileResult, error) {
	s.called = true
	s.newStatus = newStatus
	return s.result, s.err
}

func TestPedidoUseCase_Create(t *testing.T) {
	t.Run("invalid client name", func(t *testing.T) {
		uc := NewPedidoUseCase(nil, nil)
		_, err := uc.Create(context.Background(), "emp-1", entities.Pedido{ClientName: "  "})
		if !errors.Is(err, ErrInvalidClientName) {
			t.Fatalf("expected ErrInvalidClientName, got %v", err)
		}
	})

	t.Run("unknown requested status", func(t *testing.T) {
		uc := NewPedidoUseCase(nil, nil)
		_, err := uc.Create(context.Background(), "emp-1", entities.Pedido{ClientName: "Maria", Status: "Enviado"})
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("defaults to pendente without reconciliation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIPedidoRepository(ctrl)
		rec := &stubReconcile{}
		uc := NewPedidoUseCase(repo, rec)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Pedido) (entities.Pedido, error) {
				if p.ID == "" || p.Status != entities.PedidoStatusPendente || p.ValorFinal != 0 {
					t.Fatalf("unexpected pedido: %+v", p)
				}
				if p.DataCriacao.IsZero() || p.DataAtualizacao.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return p, nil
			},
		)

		created, err := uc.Create(context.Background(), "emp-1", entities.Pedido{ClientName: "Maria"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.called {
			t.Fatalf("pendente creation must not reconcile")
		}
		if created.Status != entities.PedidoStatusPendente {
			t.Fatalf("unexpected status: %s", created.Status)
		}
	})

	t.Run("consuming initial status goes through reconciliation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIPedidoRepository(ctrl)
		rec := &stubReconcile{result: ReconcileResult{Status: entities.PedidoStatusEnviados, StockAdjusted: true}}
		uc := NewPedidoUseCase(repo, rec)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Pedido) (entities.Pedido, error) {
				// Persisted as Pendente first so the reconciliation sees the
				// transition and debits stock exactly once.
				if p.Status != entities.PedidoStatusPendente {
					t.Fatalf("expected Pendente before reconciliation, got %s", p.Status)
				}
				return p, nil
			},
		)

		created, err := uc.Create(context.Background(), "emp-1", entities.Pedido{
			ClientName: "Maria",
			Status:     entities.PedidoStatusEnviados,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !rec.called || rec.newStatus != entities.PedidoStatusEnviados {
			t.Fatalf("expected reconciliation to Enviados, called=%v status=%s", rec.called, rec.newStatus)
		}
		if created.Status != entities.PedidoStatusEnviados {
			t.Fatalf("unexpected status: %s", created.Status)
		}
	})

	t.Run("reconciliation failure surfaces with the created pedido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIPedidoRepository(ctrl)
		rec := &stubReconcile{err: ErrInsufficientStock}
		uc := NewPedidoUseCase(repo, rec)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Pedido) (entities.Pedido, error) { return p, nil },
		)

		created, err := uc.Create(context.Background(), "emp-1", entities.Pedido{
			ClientName: "Maria",
			Status:     entities.PedidoStatusEnviados,
		})
		if !errors.Is(err, ErrInsufficientStock) {
			t.Fatalf("expected ErrInsufficientStock, got %v", err)
		}
		if created.ID == "" {
			t.Fatalf("pedido record still exists in Pendente")
		}
	})
}

func TestPedidoUseCase_GetByID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIPedidoRepository(ctrl)
		uc := NewPedidoUseCase(repo, nil)
		repo.EXPECT().GetByID(gomock.Any(), "emp-1", "ped-1").Return(entities.Pedido{}, nil)

		_, err := uc.GetByID(context.Background(), "emp-1", "ped-1")
		if !errors.Is(err, ErrPedidoNotFound) {
			t.Fatalf("expected ErrPedidoNotFound, got %v", err)
		}
	})

	t.Run("trims ids", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIPedidoRepository(ctrl)
		uc := NewPedidoUseCase(repo, nil)
		repo.EXPECT().GetByID(gomock.Any(), "emp-1", "ped-1").Return(entities.Pedido{ID: "ped-1"}, nil)

		p, err := uc.GetByID(context.Background(), " emp-1 ", " ped-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ID != "ped-1" {
			t.Fatalf("unexpected pedido: %+v", p)
		}
	})
}

func TestPedidoUseCase_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIPedidoRepository(ctrl)
	uc := NewPedidoUseCase(repo, nil)

	existing := entities.Pedido{
		ID:         "ped-1",
		EmpresaID:  "emp-1",
		ClientName: "Maria",
		Status:     entities.PedidoStatusEnviados,
		ValorFinal: 1500,
		Total:      1200,
	}
	repo.EXPECT().GetByID(gomock.Any(), "emp-1", "ped-1").Return(existing, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p entities.Pedido) (entities.Pedido, error) {
			if p.ClientName != "Maria Silva" || p.Notes != "entrega urgente" {
				t.Fatalf("unexpected pedido: %+v", p)
			}
			// Reconciliation-owned fields survive the edit untouched.
			if p.Status != entities.PedidoStatusEnviados || p.ValorFinal != 1500 {
				t.Fatalf("status/valor_final must not change here: %+v", p)
			}
			if p.Total != 1200 {
				t.Fatalf("zero total must keep the stored one: %+v", p)
			}
			return p, nil
		},
	)

	_, err := uc.Update(context.Background(), "emp-1", "ped-1", entities.Pedido{
		ClientName: "Maria Silva",
		Notes:      "entrega urgente",
		Status:     entities.PedidoStatusCancelado, // ignored
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
