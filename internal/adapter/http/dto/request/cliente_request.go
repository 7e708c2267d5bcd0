package request

import "informatica_xpto/internal/domain/entities"

// ClienteRequest is the payload for creating or updating a customer.
type ClienteRequest struct {
	Nome     string `json:"nome" binding:"required"`
	Email    string `json:"email"`
	Telefone string `json:"telefone"`
	Endereco string `json:"endereco"`
}

func (r ClienteRequest) ToEntity() entities.Cliente {
	return entities.Cliente{
		Nome:     r.Nome,
		Email:    r.Email,
		Telefone: r.Telefone,
		Endereco: r.Endereco,
	}
}
