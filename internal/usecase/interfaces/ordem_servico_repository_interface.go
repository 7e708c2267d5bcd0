package interfaces

import (
	"context"
	"time"

	"informatica_xpto/internal/domain/entities"
)

// OSStatusCommit describes a conditional repair-ticket status change.
type OSStatusCommit struct {
	OSID           string
	ExpectedStatus entities.OSStatus
	NewStatus      entities.OSStatus
	ValorFinal     *float64
	DataEntrega    *time.Time
}

// IOrdemServicoRepository abstracts DynamoDB persistence for OrdemServico.

type IOrdemServicoRepository interface {
	Create(ctx context.Context, o entities.OrdemServico) (entities.OrdemServico, error)
	GetByID(ctx context.Context, empresaID, id string) (entities.OrdemServico, error)
	ListByEmpresa(ctx context.Context, empresaID string) ([]entities.OrdemServico, error)
	Update(ctx context.Context, o entities.OrdemServico) (entities.OrdemServico, error)
	UpdateValorFinal(ctx context.Context, empresaID, id string, valor float64) (entities.OrdemServico, error)
	Delete(ctx context.Context, empresaID, id string) error
	CommitStatus(ctx context.Context, empresaID string, commit OSStatusCommit) error
}
