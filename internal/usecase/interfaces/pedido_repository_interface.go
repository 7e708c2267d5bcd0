package interfaces

import (
	"context"
	"time"

	"informatica_xpto/internal/domain/entities"
)

// StatusCommit describes the pedido side of a reconciled status change. The
// write is conditioned on ExpectedStatus so concurrent reconciliations on the
// same pedido cannot both commit.
type StatusCommit struct {
	PedidoID       string
	ExpectedStatus entities.PedidoStatus
	NewStatus      entities.PedidoStatus
	ValorFinal     *float64
	DataEntrega    *time.Time
}

// IPedidoRepository abstracts DynamoDB persistence for Pedido.
//
// CommitStatus performs the atomic reconciliation unit: the pedido status
// update and every stock adjustment succeed or fail together, each write
// conditioned on the previously observed value. A lost condition returns
// ErrConditionFailed, a missing record ErrRecordMissing. The financial
// posting is deliberately outside this unit (the store cannot mix the
// conditional read-modify-write with an append atomically).

type IPedidoRepository interface {
	Create(ctx context.Context, p entities.Pedido) (entities.Pedido, error)
	GetByID(ctx context.Context, empresaID, id string) (entities.Pedido, error)
	ListByEmpresa(ctx context.Context, empresaID string) ([]entities.Pedido, error)
	Update(ctx context.Context, p entities.Pedido) (entities.Pedido, error)
	UpdateTotal(ctx context.Context, empresaID, id string, total float64) (entities.Pedido, error)
	Delete(ctx context.Context, empresaID, id string) error
	CommitStatus(ctx context.Context, empresaID string, commit StatusCommit, adjustments []StockAdjustment) error
}
