package interfaces

import (
	"context"
	"informatica_xpto/internal/domain/entities"
)

// IPCMontadoRepository abstracts DynamoDB persistence for PCMontado.

type IPCMontadoRepository interface {
	Create(ctx context.Context, pc entities.PCMontado) (entities.PCMontado, error)
	GetByID(ctx context.Context, empresaID, id string) (entities.PCMontado, error)
	ListByEmpresa(ctx context.Context, empresaID string) ([]entities.PCMontado, error)
	Delete(ctx context.Context, empresaID, id string) error
}
