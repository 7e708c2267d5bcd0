package interfaces

import (
	"context"
	"informatica_xpto/internal/domain/entities"
)

// StockAdjustment is one item of an atomic inventory batch. ExpectedQuantity
// is the quantity observed before the commit; the write is conditioned on it
// so a concurrent adjustment loses the race instead of corrupting the count.
type StockAdjustment struct {
	ItemID           string
	ExpectedQuantity float64
	NewQuantity      float64
}

// IInventarioRepository abstracts DynamoDB persistence for InventoryItem.
//
// AdjustQuantities applies the whole batch or nothing. On a lost optimistic
// condition it returns ErrConditionFailed; on a missing item ErrRecordMissing.

type IInventarioRepository interface {
	Create(ctx context.Context, item entities.InventoryItem) (entities.InventoryItem, error)
	GetByID(ctx context.Context, empresaID, id string) (entities.InventoryItem, error)
	ListByEmpresa(ctx context.Context, empresaID string) ([]entities.InventoryItem, error)
	Update(ctx context.Context, item entities.InventoryItem) (entities.InventoryItem, error)
	Delete(ctx context.Context, empresaID, id string) error
	AdjustQuantities(ctx context.Context, empresaID string, adjustments []StockAdjustment) error
}
