package usecase

import (
	"context"
	"errors"
	"strings"

	"informatica_xpto/internal/domain/entities"
	"informatica_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidItemInput = errors.New("invalid inventory item input")
	ErrInvalidItemID    = errors.New("invalid inventory item id")
)

// IInventarioUseCase covers inventory management. Quantities are only
// mutated here through full-record updates by the stock screen; the
// reconciliation and assembly flows go through the atomic adjust path on the
// repository instead.

type IInventarioUseCase interface {
	Create(ctx context.Context, empresaID string, item entities.InventoryItem) (entities.InventoryItem, error)
	GetByID(ctx context.Context, empresaID, id string) (entities.InventoryItem, error)
	List(ctx context.Context, empresaID string) ([]entities.InventoryItem, error)
	Update(ctx context.Context, empresaID, id string, item entities.InventoryItem) (entities.InventoryItem, error)
	Delete(ctx context.Context, empresaID, id string) error
}

type InventarioUseCase struct {
	repo interfaces.IInventarioRepository
}

var _ IInventarioUseCase = (*InventarioUseCase)(nil)

func NewInventarioUseCase(repo interfaces.IInventarioRepository) *InventarioUseCase {
	return &InventarioUseCase{repo: repo}
}

func (u *InventarioUseCase) Create(ctx context.Context, empresaID string, item entities.InventoryItem) (entities.InventoryItem, error) {
	empresaID = strings.TrimSpace(empresaID)
	if empresaID == "" {
		return entities.InventoryItem{}, ErrInvalidEmpresaID
	}
	item.Component = strings.TrimSpace(item.Component)
	if item.Component == "" || item.Category == "" {
		return entities.InventoryItem{}, ErrInvalidItemInput
	}
	if item.Quantity < 0 || item.Price < 0 {
		return entities.InventoryItem{}, ErrInvalidItemInput
	}

	item.ID = uuid.NewString()
	item.EmpresaID = empresaID
	return u.repo.Create(ctx, item)
}

func (u *InventarioUseCase) GetByID(ctx context.Context, empresaID, id string) (entities.InventoryItem, error) {
	empresaID = strings.TrimSpace(empresaID)
	if empresaID == "" {
		return entities.InventoryItem{}, ErrInvalidEmpresaID
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.InventoryItem{}, ErrInvalidItemID
	}

	item, err := u.repo.GetByID(ctx, empresaID, id)
	if err != nil {
		return entities.InventoryItem{}, err
	}
	if item.ID == "" {
		return entities.InventoryItem{}, ErrInventoryItemNotFound
	}
	return item, nil
}

func (u *InventarioUseCase) List(ctx context.Context, empresaID string) ([]entities.InventoryItem, error) {
	empresaID = strings.TrimSpace(empresaID)
	if empresaID == "" {
		return nil, ErrInvalidEmpresaID
	}
	return u.repo.ListByEmpresa(ctx, empresaID)
}

func (u *InventarioUseCase) Update(ctx context.Context, empresaID, id string, item entities.InventoryItem) (entities.InventoryItem, error) {
	existing, err := u.GetByID(ctx, empresaID, id)
	if err != nil {
		return entities.InventoryItem{}, err
	}
	if item.Quantity < 0 || item.Price < 0 {
		return entities.InventoryItem{}, ErrInvalidItemInput
	}

	if v := strings.TrimSpace(item.Component); v != "" {
		existing.Component = v
	}
	if item.Category != "" {
		existing.Category = item.Category
	}
	existing.SKU = item.SKU
	existing.Quantity = item.Quantity
	existing.Price = item.Price
	existing.Socket = item.Socket
	existing.RAMType = item.RAMType
	existing.Watt = item.Watt
	existing.Power = item.Power
	return u.repo.Update(ctx, existing)
}

func (u *InventarioUseCase) Delete(ctx context.Context, empresaID, id string) error {
	empresaID = strings.TrimSpace(empresaID)
	if empresaID == "" {
		return ErrInvalidEmpresaID
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidItemID
	}
	return u.repo.Delete(ctx, empresaID, id)
}
