package usecase

import (
	"context"
	"errors"
	"testing"

	"informatica_xpto/internal/domain/entities"
	mock_interfaces "informatica_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestClienteUseCase_Create(t *testing.T) {
	t.Run("invalid empresa id", func(t *testing.T) {
		uc := NewClienteUseCase(nil)
		_, err := uc.Create(context.Background(), " ", entities.Cliente{Nome: "Maria"})
		if !errors.Is(err, ErrInvalidEmpresaID) {
			t.Fatalf("expected ErrInvalidEmpresaID, got %v", err)
		}
	})

	t.Run("invalid nome", func(t *testing.T) {
		uc := NewClienteUseCase(nil)
		_, err := uc.Create(context.Background(), "emp-1", entities.Cliente{Nome: "  "})
		if !errors.Is(err, ErrInvalidClienteNom) {
			t.Fatalf("expected ErrInvalidClienteNom, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIClienteRepository(ctrl)
		uc := NewClienteUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Cliente) (entities.Cliente, error) {
				if c.ID == "" || c.EmpresaID != "emp-1" || c.Nome != "Maria" || c.DataCriacao.IsZero() {
					t.Fatalf("unexpected cliente: %+v", c)
				}
				return c, nil
			},
		)

		created, err := uc.Create(context.Background(), "emp-1", entities.Cliente{Nome: " Maria "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestClienteUseCase_GetByID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIClienteRepository(ctrl)
		uc := NewClienteUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), "emp-1", "cli-1").Return(entities.Cliente{}, nil)

		_, err := uc.GetByID(context.Background(), "emp-1", "cli-1")
		if !errors.Is(err, ErrClienteNotFound) {
			t.Fatalf("expected ErrClienteNotFound, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIClienteRepository(ctrl)
		uc := NewClienteUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), "emp-1", "cli-1").Return(entities.Cliente{}, errors.New("db"))

		_, err := uc.GetByID(context.Background(), "emp-1", "cli-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestClienteUseCase_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIClienteRepository(ctrl)
	uc := NewClienteUseCase(repo)

	existing := entities.Cliente{ID: "cli-1", EmpresaID: "emp-1", Nome: "Maria", Email: "old@example.com"}
	repo.EXPECT().GetByID(gomock.Any(), "emp-1", "cli-1").Return(existing, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, c entities.Cliente) (entities.Cliente, error) {
			if c.Nome != "Maria" || c.Email != "maria@example.com" {
				t.Fatalf("unexpected cliente: %+v", c)
			}
			return c, nil
		},
	)

	_, err := uc.Update(context.Background(), "emp-1", "cli-1", entities.Cliente{Email: "maria@example.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClienteUseCase_Delete(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewClienteUseCase(nil)
		if err := uc.Delete(context.Background(), "emp-1", " "); !errors.Is(err, ErrInvalidClienteID) {
			t.Fatalf("expected ErrInvalidClienteID, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIClienteRepository(ctrl)
		uc := NewClienteUseCase(repo)
		repo.EXPECT().Delete(gomock.Any(), "emp-1", "cli-1").Return(nil)

		if err := uc.Delete(context.Background(), "emp-1", "cli-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
