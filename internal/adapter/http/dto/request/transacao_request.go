package request

import (
	"informatica_xpto/internal/domain/entities"
	"informatica_xpto/internal/usecase"
)

// TransacaoRequest is the payload of a manual ledger entry.
type TransacaoRequest struct {
	Tipo        string  `json:"tipo" binding:"required"`
	Categoria   string  `json:"categoria"`
	Descricao   string  `json:"descricao"`
	Valor       float64 `json:"valor" binding:"required"`
	ClienteID   string  `json:"cliente_id"`
	ClienteNome string  `json:"cliente_nome"`
	PedidoID    string  `json:"pedido_id"`
	OSID        string  `json:"os_id"`
}

func (r TransacaoRequest) ToEntity() entities.Transacao {
	return entities.Transacao{
		Tipo:        entities.TransacaoTipo(r.Tipo),
		Categoria:   r.Categoria,
		Descricao:   r.Descricao,
		Valor:       r.Valor,
		ClienteID:   r.ClienteID,
		ClienteNome: r.ClienteNome,
		PedidoID:    r.PedidoID,
		OSID:        r.OSID,
	}
}

// VendaRequest is the payload of a direct sale posting.
type VendaRequest struct {
	Valor       float64 `json:"valor" binding:"required"`
	Descricao   string  `json:"descricao"`
	ClienteID   string  `json:"cliente_id"`
	ClienteNome string  `json:"cliente_nome"`
	PedidoID    string  `json:"pedido_id"`
	OSID        string  `json:"os_id"`
}

func (r VendaRequest) ToInput() usecase.VendaInput {
	return usecase.VendaInput{
		Valor:       r.Valor,
		Descricao:   r.Descricao,
		ClienteID:   r.ClienteID,
		ClienteNome: r.ClienteNome,
		PedidoID:    r.PedidoID,
		OSID:        r.OSID,
	}
}

// TransacaoUpdateRequest carries the editable fields; absent fields are kept.
type TransacaoUpdateRequest struct {
	Tipo      *string  `json:"tipo"`
	Categoria *string  `json:"categoria"`
	Descricao *string  `json:"descricao"`
	Valor     *float64 `json:"valor"`
}

func (r TransacaoUpdateRequest) ToUpdate() usecase.TransacaoUpdate {
	upd := usecase.TransacaoUpdate{
		Categoria: r.Categoria,
		Descricao: r.Descricao,
		Valor:     r.Valor,
	}
	if r.Tipo != nil {
		tipo := entities.TransacaoTipo(*r.Tipo)
		upd.Tipo = &tipo
	}
	return upd
}
