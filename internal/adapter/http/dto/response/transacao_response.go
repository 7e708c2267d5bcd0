package response

import (
	"time"

	"informatica_xpto/internal/domain/entities"
)

type TransacaoResponse struct {
	ID          string    `json:"id"`
	Tipo        string    `json:"tipo"`
	Categoria   string    `json:"categoria"`
	Descricao   string    `json:"descricao"`
	Valor       float64   `json:"valor"`
	Data        time.Time `json:"data"`
	Origem      string    `json:"origem,omitempty"`
	PedidoID    string    `json:"pedido_id,omitempty"`
	OSID        string    `json:"os_id,omitempty"`
	ClienteID   string    `json:"cliente_id,omitempty"`
	ClienteNome string    `json:"cliente_nome,omitempty"`
}

func FromTransacao(t entities.Transacao) TransacaoResponse {
	return TransacaoResponse{
		ID:          t.ID,
		Tipo:        string(t.Tipo),
		Categoria:   t.Categoria,
		Descricao:   t.Descricao,
		Valor:       t.Valor,
		Data:        t.Data,
		Origem:      t.Origem,
		PedidoID:    t.PedidoID,
		OSID:        t.OSID,
		ClienteID:   t.ClienteID,
		ClienteNome: t.ClienteNome,
	}
}

func FromTransacoes(transacoes []entities.Transacao) []TransacaoResponse {
	out := make([]TransacaoResponse, 0, len(transacoes))
	for _, t := range transacoes {
		out = append(out, FromTransacao(t))
	}
	return out
}

type ResumoFinanceiroResponse struct {
	ReceitaTotal float64 `json:"receita_total"`
	DespesaTotal float64 `json:"despesa_total"`
	LucroLiquido float64 `json:"lucro_liquido"`
}

func FromResumoFinanceiro(r entities.ResumoFinanceiro) ResumoFinanceiroResponse {
	return ResumoFinanceiroResponse{
		ReceitaTotal: r.ReceitaTotal,
		DespesaTotal: r.DespesaTotal,
		LucroLiquido: r.LucroLiquido,
	}
}
