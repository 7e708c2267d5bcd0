package interfaces

import (
	"context"
	"informatica_xpto/internal/domain/entities"
)

// IClienteRepository abstracts DynamoDB persistence for Cliente.

type IClienteRepository interface {
	Create(ctx context.Context, c entities.Cliente) (entities.Cliente, error)
	GetByID(ctx context.Context, empresaID, id string) (entities.Cliente, error)
	ListByEmpresa(ctx context.Context, empresaID string) ([]entities.Cliente, error)
	Update(ctx context.Context, c entities.Cliente) (entities.Cliente, error)
	Delete(ctx context.Context, empresaID, id string) error
}
