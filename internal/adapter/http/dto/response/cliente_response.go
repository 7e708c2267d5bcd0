package response

import (
	"time"

	"informatica_xpto/internal/domain/entities"
)

type ClienteResponse struct {
	ID          string    `json:"id"`
	Nome        string    `json:"nome"`
	Email       string    `json:"email,omitempty"`
	Telefone    string    `json:"telefone,omitempty"`
	Endereco    string    `json:"endereco,omitempty"`
	DataCriacao time.Time `json:"data_criacao"`
}

func FromCliente(c entities.Cliente) ClienteResponse {
	return ClienteResponse{
		ID:          c.ID,
		Nome:        c.Nome,
		Email:       c.Email,
		Telefone:    c.Telefone,
		Endereco:    c.Endereco,
		DataCriacao: c.DataCriacao,
	}
}

func FromClientes(clientes []entities.Cliente) []ClienteResponse {
	out := make([]ClienteResponse, 0, len(clientes))
	for _, c := range clientes {
		out = append(out, FromCliente(c))
	}
	return out
}
