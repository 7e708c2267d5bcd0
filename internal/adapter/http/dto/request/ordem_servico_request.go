package request

import "informatica_xpto/internal/domain/entities"

// OrdemServicoRequest is the payload for creating or updating a repair
// ticket. Status and ValorFinal never travel here; both only change through
// the status PATCH route.
type OrdemServicoRequest struct {
	ClienteID        string  `json:"cliente_id"`
	ClienteNome      string  `json:"cliente_nome" binding:"required"`
	Equipamento      string  `json:"equipamento" binding:"required"`
	ProblemaRelatado string  `json:"problema_relatado"`
	ValorEstimado    float64 `json:"valor_estimado"`
}

func (r OrdemServicoRequest) ToEntity() entities.OrdemServico {
	return entities.OrdemServico{
		ClienteID:        r.ClienteID,
		ClienteNome:      r.ClienteNome,
		Equipamento:      r.Equipamento,
		ProblemaRelatado: r.ProblemaRelatado,
		ValorEstimado:    r.ValorEstimado,
	}
}
