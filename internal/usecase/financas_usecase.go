package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"informatica_xpto/internal/domain/entities"
	"informatica_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrTransacaoNotFound    = errors.New("transação not found")
	ErrInvalidTransacaoID   = errors.New("invalid transação id")
	ErrInvalidTransacaoTipo = errors.New("invalid transação tipo")
	ErrInvalidTransacaoVal  = errors.New("invalid transação value")
)

// VendaInput is the payload of a revenue entry created by a sale flow.
type VendaInput struct {
	Valor       float64
	Descricao   string
	ClienteID   string
	ClienteNome string
	PedidoID    string
	OSID        string
}

// TransacaoUpdate carries the fields an edit may change; nil means keep.
type TransacaoUpdate struct {
	Tipo      *entities.TransacaoTipo
	Categoria *string
	Descricao *string
	Valor     *float64
}

// IFinancasUseCase exposes the financial ledger operations.
//
// The ledger is the sole source for aggregate summaries; Resumo always folds
// over the full entry set so edits and deletions can never drift an
// incremental counter.

type IFinancasUseCase interface {
	Adicionar(ctx context.Context, empresaID string, t entities.Transacao) (entities.Transacao, error)
	AdicionarVenda(ctx context.Context, empresaID string, venda VendaInput) (entities.Transacao, error)
	Listar(ctx context.Context, empresaID string) ([]entities.Transacao, error)
	Atualizar(ctx context.Context, empresaID, id string, changes TransacaoUpdate) (entities.Transacao, error)
	Deletar(ctx context.Context, empresaID, id string) error
	Resumo(ctx context.Context, empresaID string) (entities.ResumoFinanceiro, error)
}

type FinancasUseCase struct {
	transacoes interfaces.ITransacaoRepository
	pedidos    interfaces.IPedidoRepository
	ordens     interfaces.IOrdemServicoRepository
}

var _ IFinancasUseCase = (*FinancasUseCase)(nil)

func NewFinancasUseCase(
	transacoes interfaces.ITransacaoRepository,
	pedidos interfaces.IPedidoRepository,
	ordens interfaces.IOrdemServicoRepository,
) *FinancasUseCase {
	return &FinancasUseCase{transacoes: transacoes, pedidos: pedidos, ordens: ordens}
}

func (u *FinancasUseCase) Adicionar(ctx context.Context, empresaID string, t entities.Transacao) (entities.Transacao, error) {
	empresaID = strings.TrimSpace(empresaID)
	if empresaID == "" {
		return entities.Transacao{}, ErrInvalidEmpresaID
	}
	if t.Tipo != entities.TransacaoReceita && t.Tipo != entities.TransacaoDespesa {
		return entities.Transacao{}, ErrInvalidTransacaoTipo
	}
	if t.Valor <= 0 {
		return entities.Transacao{}, ErrInvalidTransacaoVal
	}

	t.ID = uuid.NewString()
	t.EmpresaID = empresaID
	if t.Data.IsZero() {
		t.Data = time.Now().UTC()
	}
	return u.transacoes.Create(ctx, t)
}

// AdicionarVenda appends a Receita linked to a pedido or ordem de serviço.
// The categoria follows the back-reference, matching the finance screen's
// grouping.
func (u *FinancasUseCase) AdicionarVenda(ctx context.Context, empresaID string, venda VendaInput) (entities.Transacao, error) {
	categoria := entities.CategoriaVendaGeral
	switch {
	case venda.PedidoID != "":
		categoria = entities.CategoriaVendaPedido
	case venda.OSID != "":
		categoria = entities.CategoriaServicoOS
	}
	return u.Adicionar(ctx, empresaID, entities.Transacao{
		Tipo:        entities.TransacaoReceita,
		Categoria:   categoria,
		Descricao:   venda.Descricao,
		Valor:       venda.Valor,
		ClienteID:   venda.ClienteID,
		ClienteNome: venda.ClienteNome,
		PedidoID:    venda.PedidoID,
		OSID:        venda.OSID,
	})
}

func (u *FinancasUseCase) Listar(ctx context.Context, empresaID string) ([]entities.Transacao, error) {
	empresaID = strings.TrimSpace(empresaID)
	if empresaID == "" {
		return nil, ErrInvalidEmpresaID
	}
	return u.transacoes.ListByEmpresa(ctx, empresaID)
}

// Atualizar edits a ledger entry. When the resulting entry is a Receita with
// a changed valor and carries a back-reference, the new value is pushed onto
// the parent document's stored total. The propagation is one-way only:
// editing the pedido or OS never touches the transação.
func (u *FinancasUseCase) Atualizar(ctx context.Context, empresaID, id string, changes TransacaoUpdate) (entities.Transacao, error) {
	empresaID = strings.TrimSpace(empresaID)
	if empresaID == "" {
		return entities.Transacao{}, ErrInvalidEmpresaID
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Transacao{}, ErrInvalidTransacaoID
	}

	t, err := u.transacoes.GetByID(ctx, empresaID, id)
	if err != nil {
		return entities.Transacao{}, err
	}
	if t.ID == "" {
		return entities.Transacao{}, ErrTransacaoNotFound
	}

	if changes.Tipo != nil {
		if *changes.Tipo != entities.TransacaoReceita && *changes.Tipo != entities.TransacaoDespesa {
			return entities.Transacao{}, ErrInvalidTransacaoTipo
		}
		t.Tipo = *changes.Tipo
	}
	if changes.Categoria != nil {
		t.Categoria = *changes.Categoria
	}
	if changes.Descricao != nil {
		t.Descricao = *changes.Descricao
	}
	if changes.Valor != nil {
		if *changes.Valor <= 0 {
			return entities.Transacao{}, ErrInvalidTransacaoVal
		}
		t.Valor = *changes.Valor
	}

	updated, err := u.transacoes.Update(ctx, t)
	if err != nil {
		return entities.Transacao{}, err
	}

	if t.Tipo == entities.TransacaoReceita && changes.Valor != nil {
		if err := u.propagateValor(ctx, empresaID, t); err != nil {
			log.Printf("[financas][usecase] linked total sync failed transacao_id=%s err=%v", id, err)
			return updated, err
		}
	}
	return updated, nil
}

func (u *FinancasUseCase) propagateValor(ctx context.Context, empresaID string, t entities.Transacao) error {
	switch {
	case t.PedidoID != "":
		_, err := u.pedidos.UpdateTotal(ctx, empresaID, t.PedidoID, t.Valor)
		return err
	case t.OSID != "":
		_, err := u.ordens.UpdateValorFinal(ctx, empresaID, t.OSID, t.Valor)
		return err
	default:
		return nil
	}
}

func (u *FinancasUseCase) Deletar(ctx context.Context, empresaID, id string) error {
	empresaID = strings.TrimSpace(empresaID)
	if empresaID == "" {
		return ErrInvalidEmpresaID
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidTransacaoID
	}
	return u.transacoes.Delete(ctx, empresaID, id)
}

// Resumo folds the full entry set with decimal arithmetic, so repeated edits
// and deletions cannot accumulate float drift.
func (u *FinancasUseCase) Resumo(ctx context.Context, empresaID string) (entities.ResumoFinanceiro, error) {
	empresaID = strings.TrimSpace(empresaID)
	if empresaID == "" {
		return entities.ResumoFinanceiro{}, ErrInvalidEmpresaID
	}

	list, err := u.transacoes.ListByEmpresa(ctx, empresaID)
	if err != nil {
		return entities.ResumoFinanceiro{}, err
	}

	receita := decimal.Zero
	despesa := decimal.Zero
	for _, t := range list {
		valor := decimal.NewFromFloat(t.Valor)
		switch t.Tipo {
		case entities.TransacaoReceita:
			receita = receita.Add(valor)
		case entities.TransacaoDespesa:
			despesa = despesa.Add(valor)
		}
	}

	receitaTotal, _ := receita.Float64()
	despesaTotal, _ := despesa.Float64()
	lucro, _ := receita.Sub(despesa).Float64()
	return entities.ResumoFinanceiro{
		ReceitaTotal: receitaTotal,
		DespesaTotal: despesaTotal,
		LucroLiquido: lucro,
	}, nil
}
