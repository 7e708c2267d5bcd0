package entities

import "time"

// TransacaoTipo splits the ledger into revenue and expense entries.

type TransacaoTipo string

const (
	TransacaoReceita TransacaoTipo = "Receita"
	TransacaoDespesa TransacaoTipo = "Despesa"
)

// Ledger categories used by the automated postings. Manual entries may carry
// free-form categories.
const (
	CategoriaVendaProduto    = "Venda de Produto"
	CategoriaOrdemServico    = "Ordem de Serviço"
	CategoriaVendaPedido     = "Venda de Pedido"
	CategoriaServicoOS       = "Serviço de OS"
	CategoriaVendaGeral      = "Venda Geral"
	CategoriaCustoProducao   = "Custo de Produção"
)

// Transacao is one append-only financial ledger entry.
//
// Storage model:
//   - PK: empresa_id (tenant), SK: id
//
// PedidoID/OSID are weak back-references to the document that originated the
// entry. Editing a linked Receita pushes its new value back onto the parent
// document's stored total; the reverse never happens.
type Transacao struct {
	ID          string        `json:"id"`
	EmpresaID   string        `json:"empresa_id"`
	Tipo        TransacaoTipo `json:"tipo"`
	Categoria   string        `json:"categoria"`
	Descricao   string        `json:"descricao"`
	Valor       float64       `json:"valor"`
	Data        time.Time     `json:"data"`
	Origem      string        `json:"origem,omitempty"`
	PedidoID    string        `json:"pedido_id,omitempty"`
	OSID        string        `json:"os_id,omitempty"`
	ClienteID   string        `json:"cliente_id,omitempty"`
	ClienteNome string        `json:"cliente_nome,omitempty"`
}

// ResumoFinanceiro is the aggregate view of the ledger, always recomputed by
// folding over the full entry set.
type ResumoFinanceiro struct {
	ReceitaTotal float64 `json:"receita_total"`
	DespesaTotal float64 `json:"despesa_total"`
	LucroLiquido float64 `json:"lucro_liquido"`
}
