package entities

import "time"

// Cliente is a registered customer.
//
// Storage model:
//   - PK: empresa_id (tenant), SK: id
type Cliente struct {
	ID          string    `json:"id"`
	EmpresaID   string    `json:"empresa_id"`
	Nome        string    `json:"nome"`
	Email       string    `json:"email,omitempty"`
	Telefone    string    `json:"telefone,omitempty"`
	Endereco    string    `json:"endereco,omitempty"`
	DataCriacao time.Time `json:"data_criacao"`
}
