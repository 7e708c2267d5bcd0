package usecase

import (
	"context"
	"strings"
	"time"

	"informatica_xpto/internal/domain/entities"
	"informatica_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// IPedidoUseCase covers manual pedido management. Status changes always flow
// through the reconciliation; Create delegates to it when the initial status
// already implies stock consumption.

type IPedidoUseCase interface {
	Create(ctx context.Context, empresaID string, p entities.Pedido) (entities.Pedido, error)
	GetByID(ctx context.Context, empresaID, id string) (entities.Pedido, error)
	List(ctx context.Context, empresaID string) ([]entities.Pedido, error)
	Update(ctx context.Context, empresaID, id string, p entities.Pedido) (entities.Pedido, error)
}

type PedidoUseCase struct {
	repo      interfaces.IPedidoRepository
	reconcile IReconcileUseCase
}

var _ IPedidoUseCase = (*PedidoUseCase)(nil)

func NewPedidoUseCase(repo interfaces.IPedidoRepository, reconcile IReconcileUseCase) *PedidoUseCase {
	return &PedidoUseCase{repo: repo, reconcile: reconcile}
}

// Create persists a new pedido in Pendente and, when a different initial
// status was requested, immediately reconciles it so stock effects are never
// skipped on creation.
func (u *PedidoUseCase) Create(ctx context.Context, empresaID string, p entities.Pedido) (entities.Pedido, error) {
	empresaID = strings.TrimSpace(empresaID)
	if empresaID == "" {
		return entities.Pedido{}, ErrInvalidEmpresaID
	}
	p.ClientName = strings.TrimSpace(p.ClientName)
	if p.ClientName == "" {
		return entities.Pedido{}, ErrInvalidClientName
	}

	requested := p.Status
	if requested == "" {
		requested = entities.PedidoStatusPendente
	}
	if !requested.Valid() {
		return entities.Pedido{}, ErrInvalidTransition
	}

	now := time.Now().UTC()
	p.ID = uuid.NewString()
	p.EmpresaID = empresaID
	p.Status = entities.PedidoStatusPendente
	p.ValorFinal = 0
	p.DataCriacao = now
	p.DataAtualizacao = now

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return entities.Pedido{}, err
	}

	if requested != entities.PedidoStatusPendente {
		res, err := u.reconcile.ReconcilePedido(ctx, empresaID, created.ID, requested, nil)
		if err != nil {
			return created, err
		}
		created.Status = res.Status
	}
	return created, nil
}

func (u *PedidoUseCase) GetByID(ctx context.Context, empresaID, id string) (entities.Pedido, error) {
	empresaID = strings.TrimSpace(empresaID)
	if empresaID == "" {
		return entities.Pedido{}, ErrInvalidEmpresaID
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Pedido{}, ErrInvalidPedidoID
	}

	p, err := u.repo.GetByID(ctx, empresaID, id)
	if err != nil {
		return entities.Pedido{}, err
	}
	if p.ID == "" {
		return entities.Pedido{}, ErrPedidoNotFound
	}
	return p, nil
}

func (u *PedidoUseCase) List(ctx context.Context, empresaID string) ([]entities.Pedido, error) {
	empresaID = strings.TrimSpace(empresaID)
	if empresaID == "" {
		return nil, ErrInvalidEmpresaID
	}
	return u.repo.ListByEmpresa(ctx, empresaID)
}

// Update edits the descriptive fields of a pedido. Status, valor_final and
// data_entrega are owned by the reconciliation and never change here.
func (u *PedidoUseCase) Update(ctx context.Context, empresaID, id string, p entities.Pedido) (entities.Pedido, error) {
	existing, err := u.GetByID(ctx, empresaID, id)
	if err != nil {
		return entities.Pedido{}, err
	}

	if v := strings.TrimSpace(p.ClientName); v != "" {
		existing.ClientName = v
	}
	if p.Components != nil {
		existing.Components = p.Components
	}
	if p.Total > 0 {
		existing.Total = p.Total
	}
	if p.CostPrice > 0 {
		existing.CostPrice = p.CostPrice
	}
	if p.ProfitMargin > 0 {
		existing.ProfitMargin = p.ProfitMargin
	}
	existing.ClienteID = p.ClienteID
	existing.Notes = p.Notes
	existing.DataAtualizacao = time.Now().UTC()
	return u.repo.Update(ctx, existing)
}
