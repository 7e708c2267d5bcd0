package interfaces

import (
	"context"
	"informatica_xpto/internal/domain/entities"
)

// IPagamentoRepository abstracts DynamoDB persistence for Pagamento.

type IPagamentoRepository interface {
	Create(ctx context.Context, p entities.Pagamento) (entities.Pagamento, error)
	GetByID(ctx context.Context, empresaID, id string) (entities.Pagamento, error)
	ListByPedidoID(ctx context.Context, empresaID, pedidoID string) ([]entities.Pagamento, error)
}
