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
	ErrClienteNotFound   = errors.New("cliente not found")
	ErrInvalidClienteID  = errors.New("invalid cliente id")
	ErrInvalidClienteNom = errors.New("invalid cliente nome")
)

type IClienteUseCase interface {
	Create(ctx context.Context, empresaID string, c entities.Cliente) (entities.Cliente, error)
	GetByID(ctx context.Context, empresaID, id string) (entities.Cliente, error)
	List(ctx context.Context, empresaID string) ([]entities.Cliente, error)
	Update(ctx context.Context, empresaID, id string, c entities.Cliente) (entities.Cliente, error)
	Delete(ctx context.Context, empresaID, id string) error
}

type ClienteUseCase struct {
	repo interfaces.IClienteRepository
}

var _ IClienteUseCase = (*ClienteUseCase)(nil)

func NewClienteUseCase(repo interfaces.IClienteRepository) *ClienteUseCase {
	return &ClienteUseCase{repo: repo}
}

func (u *ClienteUseCase) Create(ctx context.Context, empresaID string, c entities.Cliente) (entities.Cliente, error) {
	empresaID = strings.TrimSpace(empresaID)
	if empresaID == "" {
		return entities.Cliente{}, ErrInvalidEmpresaID
	}
	c.Nome = strings.TrimSpace(c.Nome)
	if c.Nome == "" {
		return entities.Cliente{}, ErrInvalidClienteNom
	}

	c.ID = uuid.NewString()
	c.EmpresaID = empresaID
	c.DataCriacao = time.Now().UTC()
	return u.repo.Create(ctx, c)
}

func (u *ClienteUseCase) GetByID(ctx context.Context, empresaID, id string) (entities.Cliente, error) {
	empresaID = strings.TrimSpace(empresaID)
	if empresaID == "" {
		return entities.Cliente{}, ErrInvalidEmpresaID
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Cliente{}, ErrInvalidClienteID
	}

	c, err := u.repo.GetByID(ctx, empresaID, id)
	if err != nil {
		return entities.Cliente{}, err
	}
	if c.ID == "" {
		return entities.Cliente{}, ErrClienteNotFound
	}
	return c, nil
}

func (u *ClienteUseCase) List(ctx context.Context, empresaID string) ([]entities.Cliente, error) {
	empresaID = strings.TrimSpace(empresaID)
	if empresaID == "" {
		return nil, ErrInvalidEmpresaID
	}
	return u.repo.ListByEmpresa(ctx, empresaID)
}

func (u *ClienteUseCase) Update(ctx context.Context, empresaID, id string, c entities.Cliente) (entities.Cliente, error) {
	existing, err := u.GetByID(ctx, empresaID, id)
	if err != nil {
		return entities.Cliente{}, err
	}

	if nome := strings.TrimSpace(c.Nome); nome != "" {
		existing.Nome = nome
	}
	existing.Email = c.Email
	existing.Telefone = c.Telefone
	existing.Endereco = c.Endereco
	return u.repo.Update(ctx, existing)
}

func (u *ClienteUseCase) Delete(ctx context.Context, empresaID, id string) error {
	empresaID = strings.TrimSpace(empresaID)
	if empresaID == "" {
		return ErrInvalidEmpresaID
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidClienteID
	}
	return u.repo.Delete(ctx, empresaID, id)
}
