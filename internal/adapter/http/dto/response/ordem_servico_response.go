package response

import (
	"time"

	"informatica_xpto/internal/domain/entities"
)

type OrdemServicoResponse struct {
	ID               string     `json:"id"`
	ClienteID        string     `json:"cliente_id,omitempty"`
	ClienteNome      string     `json:"cliente_nome"`
	Equipamento      string     `json:"equipamento"`
	ProblemaRelatado string     `json:"problema_relatado,omitempty"`
	ValorEstimado    float64    `json:"valor_estimado"`
	ValorFinal       float64    `json:"valor_final"`
	Status           string     `json:"status"`
	DataRecebimento  time.Time  `json:"data_recebimento"`
	DataEntrega      *time.Time `json:"data_entrega,omitempty"`
}

func FromOrdemServico(o entities.OrdemServico) OrdemServicoResponse {
	res := OrdemServicoResponse{
		ID:               o.ID,
		ClienteID:        o.ClienteID,
		ClienteNome:      o.ClienteNome,
		Equipamento:      o.Equipamento,
		ProblemaRelatado: o.ProblemaRelatado,
		ValorEstimado:    o.ValorEstimado,
		ValorFinal:       o.ValorFinal,
		Status:           string(o.Status),
		DataRecebimento:  o.DataRecebimento,
	}
	if !o.DataEntrega.IsZero() {
		entrega := o.DataEntrega
		res.DataEntrega = &entrega
	}
	return res
}

func FromOrdensServico(ordens []entities.OrdemServico) []OrdemServicoResponse {
	out := make([]OrdemServicoResponse, 0, len(ordens))
	for _, o := range ordens {
		out = append(out, FromOrdemServico(o))
	}
	return out
}
