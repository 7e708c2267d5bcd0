package interfaces

import (
	"context"
	"informatica_xpto/internal/domain/entities"
)

// ITransacaoRepository abstracts DynamoDB persistence for Transacao.
//
// The ledger is append-only except for the explicit edit/delete paths driven
// by the finance screen; summaries always fold over the full list.

type ITransacaoRepository interface {
	Create(ctx context.Context, t entities.Transacao) (entities.Transacao, error)
	GetByID(ctx context.Context, empresaID, id string) (entities.Transacao, error)
	ListByEmpresa(ctx context.Context, empresaID string) ([]entities.Transacao, error)
	Update(ctx context.Context, t entities.Transacao) (entities.Transacao, error)
	Delete(ctx context.Context, empresaID, id string) error
}
