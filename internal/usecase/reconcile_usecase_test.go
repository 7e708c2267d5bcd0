package usecase

import (
	"context"
	"errors"
	"testing"

	"informatica_xpto/internal/domain/entities"
	"informatica_xpto/internal/usecase/interfaces"
	mock_interfaces "informatica_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type reconcileMocks struct {
	pedidos    *mock_interfaces.MockIPedidoRepository
	ordens     *mock_interfaces.MockIOrdemServicoRepository
	inventario *mock_interfaces.MockIInventarioRepository
	transacoes *mock_interfaces.MockITransacaoRepository
}

func newReconcileUseCaseForTest(t *testing.T) (*ReconcileUseCase, reconcileMocks) {
	ctrl := gomock.NewController(t)
	m := reconcileMocks{
		pedidos:    mock_interfaces.NewMockIPedidoRepository(ctrl),
		ordens:     mock_interfaces.NewMockIOrdemServicoRepository(ctrl),
		inventario: mock_interfaces.NewMockIInventarioRepository(ctrl),
		transacoes: mock_interfaces.NewMockITransacaoRepository(ctrl),
	}
	return NewReconcileUseCase(m.pedidos, m.ordens, m.inventario, m.transacoes), m
}

func pendingPedido() entities.Pedido {
	return entities.Pedido{
		ID:         "ped-1",
		EmpresaID:  "emp-1",
		ClienteID:  "cli-1",
		ClientName: "Maria",
		Status:     entities.PedidoStatusPendente,
		Components: []entities.ComponentLine{
			{ID: "item-1", Name: "Ryzen 5 5600", Qty: 1},
		},
	}
}

func TestReconcilePedido_InputValidation(t *testing.T) {
	uc, _ := newReconcileUseCaseForTest(t)

	t.Run("empty empresa id", func(t *testing.T) {
		_, err := uc.ReconcilePedido(context.Background(), "  ", "ped-1", entities.PedidoStatusEnviados, nil)
		if !errors.Is(err, ErrInvalidEmpresaID) {
			t.Fatalf("expected ErrInvalidEmpresaID, got %v", err)
		}
	})

	t.Run("empty pedido id", func(t *testing.T) {
		_, err := uc.ReconcilePedido(context.Background(), "emp-1", "", entities.PedidoStatusEnviados, nil)
		if !errors.Is(err, ErrInvalidPedidoID) {
			t.Fatalf("expected ErrInvalidPedidoID, got %v", err)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		_, err := uc.ReconcilePedido(context.Background(), "emp-1", "ped-1", entities.PedidoStatus("Enviado"), nil)
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})
}

func TestReconcilePedido_NotFound(t *testing.T) {
	uc, m := newReconcileUseCaseForTest(t)
	m.pedidos.EXPECT().GetByID(gomock.Any(), "emp-1", "ped-1").Return(entities.Pedido{}, nil)

	_, err := uc.ReconcilePedido(context.Background(), "emp-1", "ped-1", entities.PedidoStatusEnviados, nil)
	if !errors.Is(err, ErrPedidoNotFound) {
		t.Fatalf("expected ErrPedidoNotFound, got %v", err)
	}
}

func TestReconcilePedido_SameStatusIsNoOp(t *testing.T) {
	uc, m := newReconcileUseCaseForTest(t)
	p := pendingPedido()
	m.pedidos.EXPECT().GetByID(gomock.Any(), "emp-1", "ped-1").Return(p, nil)

	res, err := uc.ReconcilePedido(context.Background(), "emp-1", "ped-1", entities.PedidoStatusPendente, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != entities.PedidoStatusPendente || res.StockAdjusted || res.Posted {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestReconcilePedido_CancelledIsTerminal(t *testing.T) {
	uc, m := newReconcileUseCaseForTest(t)
	p := pendingPedido()
	p.Status = entities.PedidoStatusCancelado
	m.pedidos.EXPECT().GetByID(gomock.Any(), "emp-1", "ped-1").Return(p, nil)

	_, err := uc.ReconcilePedido(context.Background(), "emp-1", "ped-1", entities.PedidoStatusPendente, nil)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestReconcilePedido_EnteringConsumingSetDebitsStock(t *testing.T) {
	uc, m := newReconcileUseCaseForTest(t)
	p := pendingPedido()

	m.pedidos.EXPECT().GetByID(gomock.Any(), "emp-1", "ped-1").Return(p, nil)
	m.inventario.EXPECT().GetByID(gomock.Any(), "emp-1", "item-1").
		Return(entities.InventoryItem{ID: "item-1", Component: "Ryzen 5 5600", Quantity: 5}, nil)
	m.pedidos.EXPECT().CommitStatus(gomock.Any(), "emp-1", gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, commit interfaces.StatusCommit, adjustments []interfaces.StockAdjustment) error {
			if commit.ExpectedStatus != entities.PedidoStatusPendente || commit.NewStatus != entities.PedidoStatusEnviados {
				t.Fatalf("unexpected commit: %+v", commit)
			}
			if commit.ValorFinal != nil {
				t.Fatalf("shipment must not carry a final value")
			}
			if len(adjustments) != 1 || adjustments[0].ExpectedQuantity != 5 || adjustments[0].NewQuantity != 4 {
				t.Fatalf("unexpected adjustments: %+v", adjustments)
			}
			return nil
		},
	)

	res, err := uc.ReconcilePedido(context.Background(), "emp-1", "ped-1", entities.PedidoStatusEnviados, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.StockAdjusted || res.Posted {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestReconcilePedido_InsufficientStockAbortsBeforeCommit(t *testing.T) {
	uc, m := newReconcileUseCaseForTest(t)
	p := pendingPedido()

	m.pedidos.EXPECT().GetByID(gomock.Any(), "emp-1", "ped-1").Return(p, nil)
	m.inventario.EXPECT().GetByID(gomock.Any(), "emp-1", "item-1").
		Return(entities.InventoryItem{ID: "item-1", Component: "Ryzen 5 5600", Quantity: 0}, nil)

	_, err := uc.ReconcilePedido(context.Background(), "emp-1", "ped-1", entities.PedidoStatusEnviados, nil)
	if !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}
}

func TestReconcilePedido_MissingInventoryItem(t *testing.T) {
	uc, m := newReconcileUseCaseForTest(t)
	p := pendingPedido()

	m.pedidos.EXPECT().GetByID(gomock.Any(), "emp-1", "ped-1").Return(p, nil)
	m.inventario.EXPECT().GetByID(gomock.Any(), "emp-1", "item-1").Return(entities.InventoryItem{}, nil)

	_, err := uc.ReconcilePedido(context.Background(), "emp-1", "ped-1", entities.PedidoStatusEnviados, nil)
	if !errors.Is(err, ErrInventoryItemNotFound) {
		t.Fatalf("expected ErrInventoryItemNotFound, got %v", err)
	}
}

func TestReconcilePedido_FirstDeliveryPostsRevenue(t *testing.T) {
	uc, m := newReconcileUseCaseForTest(t)
	p := pendingPedido()
	p.Status = entities.PedidoStatusEnviados
	valor := 1500.0

	// Enviados -> Entregues stays inside the consuming set: no stock reads.
	m.pedidos.EXPECT().GetByID(gomock.Any(), "emp-1", "ped-1").Return(p, nil)
	m.pedidos.EXPECT().CommitStatus(gomock.Any(), "emp-1", gomock.Any(), gomock.Len(0)).DoAndReturn(
		func(_ context.Context, _ string, commit interfaces.StatusCommit, _ []interfaces.StockAdjustment) error {
			if commit.ValorFinal == nil || *commit.ValorFinal != 1500 {
				t.Fatalf("expected valor_final in commit, got %+v", commit)
			}
			if commit.DataEntrega == nil || commit.DataEntrega.IsZero() {
				t.Fatalf("expected delivery timestamp in commit")
			}
			return nil
		},
	)
	m.transacoes.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Transacao{})).DoAndReturn(
		func(_ context.Context, tr entities.Transacao) (entities.Transacao, error) {
			if tr.Tipo != entities.TransacaoReceita || tr.Valor != 1500 {
				t.Fatalf("unexpected transação: %+v", tr)
			}
			if tr.PedidoID != "ped-1" || tr.ClienteID != "cli-1" {
				t.Fatalf("missing back-reference: %+v", tr)
			}
			return tr, nil
		},
	)

	res, err := uc.ReconcilePedido(context.Background(), "emp-1", "ped-1", entities.PedidoStatusEntregues, &valor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.StockAdjusted {
		t.Fatalf("no stock movement expected inside the consuming set")
	}
	if !res.Posted {
		t.Fatalf("expected revenue posting")
	}
}

func TestReconcilePedido_DeliveryRequiresPositiveFinalValue(t *testing.T) {
	cases := []struct {
		name  string
		valor *float64
	}{
		{"nil", nil},
		{"zero", ptr(0.0)},
		{"negative", ptr(-10.0)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, m := newReconcileUseCaseForTest(t)
			p := pendingPedido()
			p.Status = entities.PedidoStatusEnviados
			m.pedidos.EXPECT().GetByID(gomock.Any(), "emp-1", "ped-1").Return(p, nil)

			_, err := uc.ReconcilePedido(context.Background(), "emp-1", "ped-1", entities.PedidoStatusEntregues, tc.valor)
			if !errors.Is(err, ErrInvalidFinalValue) {
				t.Fatalf("expected ErrInvalidFinalValue, got %v", err)
			}
		})
	}
}

func TestReconcilePedido_RedeliveryDoesNotPostTwice(t *testing.T) {
	uc, m := newReconcileUseCaseForTest(t)
	p := pendingPedido()
	p.Status = entities.PedidoStatusEnviados
	p.ValorFinal = 1500 // already finalized by an earlier delivery

	m.pedidos.EXPECT().GetByID(gomock.Any(), "emp-1", "ped-1").Return(p, nil)
	m.pedidos.EXPECT().CommitStatus(gomock.Any(), "emp-1", gomock.Any(), gomock.Len(0)).DoAndReturn(
		func(_ context.Context, _ string, commit interfaces.StatusCommit, _ []interfaces.StockAdjustment) error {
			if commit.ValorFinal != nil {
				t.Fatalf("finalized pedido must not rewrite valor_final")
			}
			return nil
		},
	)

	res, err := uc.ReconcilePedido(context.Background(), "emp-1", "ped-1", entities.PedidoStatusEntregues, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Posted {
		t.Fatalf("revenue must be posted only on the first delivery")
	}
}

func TestReconcilePedido_CancellationCreditsStockBack(t *testing.T) {
	uc, m := newReconcileUseCaseForTest(t)
	p := pendingPedido()
	p.Status = entities.PedidoStatusEntregues
	p.ValorFinal = 1500

	m.pedidos.EXPECT().GetByID(gomock.Any(), "emp-1", "ped-1").Return(p, nil)
	m.inventario.EXPECT().GetByID(gomock.Any(), "emp-1", "item-1").
		Return(entities.InventoryItem{ID: "item-1", Component: "Ryzen 5 5600", Quantity: 4}, nil)
	m.pedidos.EXPECT().CommitStatus(gomock.Any(), "emp-1", gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, _ interfaces.StatusCommit, adjustments []interfaces.StockAdjustment) error {
			if len(adjustments) != 1 || adjustments[0].ExpectedQuantity != 4 || adjustments[0].NewQuantity != 5 {
				t.Fatalf("unexpected adjustments: %+v", adjustments)
			}
			return nil
		},
	)

	res, err := uc.ReconcilePedido(context.Background(), "emp-1", "ped-1", entities.PedidoStatusCancelado, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.StockAdjusted || res.Posted {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestReconcilePedido_PostingFailureIsPartialSuccess(t *testing.T) {
	uc, m := newReconcileUseCaseForTest(t)
	p := pendingPedido()
	p.Status = entities.PedidoStatusEnviados
	valor := 1500.0

	m.pedidos.EXPECT().GetByID(gomock.Any(), "emp-1", "ped-1").Return(p, nil)
	m.pedidos.EXPECT().CommitStatus(gomock.Any(), "emp-1", gomock.Any(), gomock.Any()).Return(nil)
	m.transacoes.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Transacao{}, errors.New("ledger down"))

	res, err := uc.ReconcilePedido(context.Background(), "emp-1", "ped-1", entities.PedidoStatusEntregues, &valor)
	if !errors.Is(err, ErrPartialSuccess) {
		t.Fatalf("expected ErrPartialSuccess, got %v", err)
	}
	// The commit stands: status moved, posting is retryable.
	if res.Status != entities.PedidoStatusEntregues || res.Posted {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestReconcilePedido_ConflictRetriesThenSurfaces(t *testing.T) {
	uc, m := newReconcileUseCaseForTest(t)
	p := pendingPedido()

	// 1 initial attempt + maxConflictRetries, each with a fresh read.
	attempts := 1 + maxConflictRetries
	m.pedidos.EXPECT().GetByID(gomock.Any(), "emp-1", "ped-1").Return(p, nil).Times(attempts)
	m.inventario.EXPECT().GetByID(gomock.Any(), "emp-1", "item-1").
		Return(entities.InventoryItem{ID: "item-1", Quantity: 5}, nil).Times(attempts)
	m.pedidos.EXPECT().CommitStatus(gomock.Any(), "emp-1", gomock.Any(), gomock.Any()).
		Return(interfaces.ErrConditionFailed).Times(attempts)

	_, err := uc.ReconcilePedido(context.Background(), "emp-1", "ped-1", entities.PedidoStatusEnviados, nil)
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestReconcilePedido_ConflictRecoversOnRetry(t *testing.T) {
	uc, m := newReconcileUseCaseForTest(t)
	p := pendingPedido()

	gomock.InOrder(
		m.pedidos.EXPECT().GetByID(gomock.Any(), "emp-1", "ped-1").Return(p, nil),
		m.inventario.EXPECT().GetByID(gomock.Any(), "emp-1", "item-1").
			Return(entities.InventoryItem{ID: "item-1", Quantity: 5}, nil),
		m.pedidos.EXPECT().CommitStatus(gomock.Any(), "emp-1", gomock.Any(), gomock.Any()).
			Return(interfaces.ErrConditionFailed),
		m.pedidos.EXPECT().GetByID(gomock.Any(), "emp-1", "ped-1").Return(p, nil),
		m.inventario.EXPECT().GetByID(gomock.Any(), "emp-1", "item-1").
			Return(entities.InventoryItem{ID: "item-1", Quantity: 4}, nil),
		m.pedidos.EXPECT().CommitStatus(gomock.Any(), "emp-1", gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, _ interfaces.StatusCommit, adjustments []interfaces.StockAdjustment) error {
				// The retry re-plans against the fresh quantity.
				if adjustments[0].ExpectedQuantity != 4 || adjustments[0].NewQuantity != 3 {
					t.Fatalf("expected re-planned adjustment, got %+v", adjustments[0])
				}
				return nil
			},
		),
	)

	res, err := uc.ReconcilePedido(context.Background(), "emp-1", "ped-1", entities.PedidoStatusEnviados, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.StockAdjusted {
		t.Fatalf("expected stock adjustment")
	}
}

func TestDeletePedido(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		uc, m := newReconcileUseCaseForTest(t)
		m.pedidos.EXPECT().GetByID(gomock.Any(), "emp-1", "ped-1").Return(entities.Pedido{}, nil)

		if err := uc.DeletePedido(context.Background(), "emp-1", "ped-1"); !errors.Is(err, ErrPedidoNotFound) {
			t.Fatalf("expected ErrPedidoNotFound, got %v", err)
		}
	})

	t.Run("non-consuming pedido is deleted directly", func(t *testing.T) {
		uc, m := newReconcileUseCaseForTest(t)
		m.pedidos.EXPECT().GetByID(gomock.Any(), "emp-1", "ped-1").Return(pendingPedido(), nil)
		m.pedidos.EXPECT().Delete(gomock.Any(), "emp-1", "ped-1").Return(nil)

		if err := uc.DeletePedido(context.Background(), "emp-1", "ped-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("consuming pedido is cancelled first", func(t *testing.T) {
		uc, m := newReconcileUseCaseForTest(t)
		p := pendingPedido()
		p.Status = entities.PedidoStatusEnviados

		gomock.InOrder(
			m.pedidos.EXPECT().GetByID(gomock.Any(), "emp-1", "ped-1").Return(p, nil),
			m.pedidos.EXPECT().GetByID(gomock.Any(), "emp-1", "ped-1").Return(p, nil),
			m.inventario.EXPECT().GetByID(gomock.Any(), "emp-1", "item-1").
				Return(entities.InventoryItem{ID: "item-1", Quantity: 4}, nil),
			m.pedidos.EXPECT().CommitStatus(gomock.Any(), "emp-1", gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, _ string, commit interfaces.StatusCommit, adjustments []interfaces.StockAdjustment) error {
					if commit.NewStatus != entities.PedidoStatusCancelado {
						t.Fatalf("expected cancellation, got %+v", commit)
					}
					if adjustments[0].NewQuantity != 5 {
						t.Fatalf("expected stock credit, got %+v", adjustments[0])
					}
					return nil
				},
			),
			m.pedidos.EXPECT().Delete(gomock.Any(), "emp-1", "ped-1").Return(nil),
		)

		if err := uc.DeletePedido(context.Background(), "emp-1", "ped-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("failed reversal blocks deletion", func(t *testing.T) {
		uc, m := newReconcileUseCaseForTest(t)
		p := pendingPedido()
		p.Status = entities.PedidoStatusEnviados

		m.pedidos.EXPECT().GetByID(gomock.Any(), "emp-1", "ped-1").Return(p, nil).Times(2)
		m.inventario.EXPECT().GetByID(gomock.Any(), "emp-1", "item-1").
			Return(entities.InventoryItem{}, errors.New("db"))

		if err := uc.DeletePedido(context.Background(), "emp-1", "ped-1"); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestReconcileOS(t *testing.T) {
	received := entities.OrdemServico{
		ID:          "os-1",
		EmpresaID:   "emp-1",
		ClienteID:   "cli-1",
		ClienteNome: "João",
		Equipamento: "Notebook Dell",
		Status:      entities.OSStatusRecebido,
	}

	t.Run("not found", func(t *testing.T) {
		uc, m := newReconcileUseCaseForTest(t)
		m.ordens.EXPECT().GetByID(gomock.Any(), "emp-1", "os-1").Return(entities.OrdemServico{}, nil)

		_, _, err := uc.ReconcileOS(context.Background(), "emp-1", "os-1", entities.OSStatusEmReparacao, nil)
		if !errors.Is(err, ErrOSNotFound) {
			t.Fatalf("expected ErrOSNotFound, got %v", err)
		}
	})

	t.Run("plain transition has no posting", func(t *testing.T) {
		uc, m := newReconcileUseCaseForTest(t)
		m.ordens.EXPECT().GetByID(gomock.Any(), "emp-1", "os-1").Return(received, nil)
		m.ordens.EXPECT().CommitStatus(gomock.Any(), "emp-1", gomock.Any()).Return(nil)

		o, posted, err := uc.ReconcileOS(context.Background(), "emp-1", "os-1", entities.OSStatusEmReparacao, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if posted || o.Status != entities.OSStatusEmReparacao {
			t.Fatalf("unexpected result: %+v posted=%v", o, posted)
		}
	})

	t.Run("delivery requires final value", func(t *testing.T) {
		uc, m := newReconcileUseCaseForTest(t)
		m.ordens.EXPECT().GetByID(gomock.Any(), "emp-1", "os-1").Return(received, nil)

		_, _, err := uc.ReconcileOS(context.Background(), "emp-1", "os-1", entities.OSStatusEntreguePago, nil)
		if !errors.Is(err, ErrInvalidFinalValue) {
			t.Fatalf("expected ErrInvalidFinalValue, got %v", err)
		}
	})

	t.Run("first delivery posts service revenue", func(t *testing.T) {
		uc, m := newReconcileUseCaseForTest(t)
		valor := 350.0

		m.ordens.EXPECT().GetByID(gomock.Any(), "emp-1", "os-1").Return(received, nil)
		m.ordens.EXPECT().CommitStatus(gomock.Any(), "emp-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, commit interfaces.OSStatusCommit) error {
				if commit.ValorFinal == nil || *commit.ValorFinal != 350 || commit.DataEntrega == nil {
					t.Fatalf("unexpected commit: %+v", commit)
				}
				return nil
			},
		)
		m.transacoes.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tr entities.Transacao) (entities.Transacao, error) {
				if tr.Tipo != entities.TransacaoReceita || tr.Valor != 350 || tr.OSID != "os-1" {
					t.Fatalf("unexpected transação: %+v", tr)
				}
				return tr, nil
			},
		)

		o, posted, err := uc.ReconcileOS(context.Background(), "emp-1", "os-1", entities.OSStatusEntreguePago, &valor)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !posted || o.ValorFinal != 350 || o.DataEntrega.IsZero() {
			t.Fatalf("unexpected result: %+v posted=%v", o, posted)
		}
	})

	t.Run("posting failure is partial success", func(t *testing.T) {
		uc, m := newReconcileUseCaseForTest(t)
		valor := 350.0

		m.ordens.EXPECT().GetByID(gomock.Any(), "emp-1", "os-1").Return(received, nil)
		m.ordens.EXPECT().CommitStatus(gomock.Any(), "emp-1", gomock.Any()).Return(nil)
		m.transacoes.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Transacao{}, errors.New("ledger down"))

		o, posted, err := uc.ReconcileOS(context.Background(), "emp-1", "os-1", entities.OSStatusEntreguePago, &valor)
		if !errors.Is(err, ErrPartialSuccess) {
			t.Fatalf("expected ErrPartialSuccess, got %v", err)
		}
		if posted || o.Status != entities.OSStatusEntreguePago {
			t.Fatalf("unexpected result: %+v posted=%v", o, posted)
		}
	})

	t.Run("cancelled is terminal", func(t *testing.T) {
		uc, m := newReconcileUseCaseForTest(t)
		o := received
		o.Status = entities.OSStatusCancelado
		m.ordens.EXPECT().GetByID(gomock.Any(), "emp-1", "os-1").Return(o, nil)

		_, _, err := uc.ReconcileOS(context.Background(), "emp-1", "os-1", entities.OSStatusRecebido, nil)
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("conflict retries then surfaces", func(t *testing.T) {
		uc, m := newReconcileUseCaseForTest(t)
		attempts := 1 + maxConflictRetries
		m.ordens.EXPECT().GetByID(gomock.Any(), "emp-1", "os-1").Return(received, nil).Times(attempts)
		m.ordens.EXPECT().CommitStatus(gomock.Any(), "emp-1", gomock.Any()).
			Return(interfaces.ErrConditionFailed).Times(attempts)

		_, _, err := uc.ReconcileOS(context.Background(), "emp-1", "os-1", entities.OSStatusEmReparacao, nil)
		if !errors.Is(err, ErrConflict) {
			t.Fatalf("expected ErrConflict, got %v", err)
		}
	})
}

func ptr[T any](v T) *T { return &v }
