package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"informatica_xpto/internal/domain/entities"
	"informatica_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidOSInput = errors.New("invalid ordem de serviço input")
)

// IOrdemServicoUseCase covers repair-ticket management around the
// reconciliation core. Status changes go through IReconcileUseCase, never
// through Update.

type IOrdemServicoUseCase interface {
	Create(ctx context.Context, empresaID string, o entities.OrdemServico) (entities.OrdemServico, error)
	GetByID(ctx context.Context, empresaID, id string) (entities.OrdemServico, error)
	List(ctx context.Context, empresaID string) ([]entities.OrdemServico, error)
	Update(ctx context.Context, empresaID, id string, o entities.OrdemServico) (entities.OrdemServico, error)
	Delete(ctx context.Context, empresaID, id string) error
}

type OrdemServicoUseCase struct {
	repo interfaces.IOrdemServicoRepository
}

var _ IOrdemServicoUseCase = (*OrdemServicoUseCase)(nil)

func NewOrdemServicoUseCase(repo interfaces.IOrdemServicoRepository) *OrdemServicoUseCase {
	return &OrdemServicoUseCase{repo: repo}
}

// Create opens a ticket in Recebido with a zero final value; the value is
// fixed later, at delivery, by the reconciliation.
func (u *OrdemServicoUseCase) Create(ctx context.Context, empresaID string, o entities.OrdemServico) (entities.OrdemServico, error) {
	empresaID = strings.TrimSpace(empresaID)
	if empresaID == "" {
		return entities.OrdemServico{}, ErrInvalidEmpresaID
	}
	o.ClienteNome = strings.TrimSpace(o.ClienteNome)
	o.Equipamento = strings.TrimSpace(o.Equipamento)
	o.ProblemaRelatado = strings.TrimSpace(o.ProblemaRelatado)
	if o.ClienteNome == "" || o.Equipamento == "" || o.ProblemaRelatado == "" {
		return entities.OrdemServico{}, ErrInvalidOSInput
	}
	if o.ValorEstimado < 0 {
		return entities.OrdemServico{}, ErrInvalidOSInput
	}

	o.ID = uuid.NewString()
	o.EmpresaID = empresaID
	o.Status = entities.OSStatusRecebido
	o.ValorFinal = 0
	o.DataRecebimento = time.Now().UTC()
	o.DataEntrega = time.Time{}
	return u.repo.Create(ctx, o)
}

func (u *OrdemServicoUseCase) GetByID(ctx context.Context, empresaID, id string) (entities.OrdemServico, error) {
	empresaID = strings.TrimSpace(empresaID)
	if empresaID == "" {
		return entities.OrdemServico{}, ErrInvalidEmpresaID
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.OrdemServico{}, ErrInvalidOSID
	}

	o, err := u.repo.GetByID(ctx, empresaID, id)
	if err != nil {
		return entities.OrdemServico{}, err
	}
	if o.ID == "" {
		return entities.OrdemServico{}, ErrOSNotFound
	}
	return o, nil
}

func (u *OrdemServicoUseCase) List(ctx context.Context, empresaID string) ([]entities.OrdemServico, error) {
	empresaID = strings.TrimSpace(empresaID)
	if empresaID == "" {
		return nil, ErrInvalidEmpresaID
	}
	return u.repo.ListByEmpresa(ctx, empresaID)
}

// Update edits the descriptive fields only. Status, valor_final and
// data_entrega belong to the reconciliation.
func (u *OrdemServicoUseCase) Update(ctx context.Context, empresaID, id string, o entities.OrdemServico) (entities.OrdemServico, error) {
	existing, err := u.GetByID(ctx, empresaID, id)
	if err != nil {
		return entities.OrdemServico{}, err
	}

	if v := strings.TrimSpace(o.ClienteNome); v != "" {
		existing.ClienteNome = v
	}
	if v := strings.TrimSpace(o.Equipamento); v != "" {
		existing.Equipamento = v
	}
	if v := strings.TrimSpace(o.ProblemaRelatado); v != "" {
		existing.ProblemaRelatado = v
	}
	if o.ValorEstimado > 0 {
		existing.ValorEstimado = o.ValorEstimado
	}
	existing.ClienteID = o.ClienteID
	return u.repo.Update(ctx, existing)
}

func (u *OrdemServicoUseCase) Delete(ctx context.Context, empresaID, id string) error {
	empresaID = strings.TrimSpace(empresaID)
	if empresaID == "" {
		return ErrInvalidEmpresaID
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidOSID
	}
	return u.repo.Delete(ctx, empresaID, id)
}
