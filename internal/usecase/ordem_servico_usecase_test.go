package usecase

import (
	"context"
	"errors"
	"testing"

	"informatica_xpto/internal/domain/entities"
	mock_interfaces "informatica_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestOrdemServicoUseCase_Create(t *testing.T) {
	t.Run("missing fields", func(t *testing.T) {
		uc := NewOrdemServicoUseCase(nil)
		_, err := uc.Create(context.Background(), "emp-1", entities.OrdemServico{ClienteNome: "João"})
		if !errors.Is(err, ErrInvalidOSInput) {
			t.Fatalf("expected ErrInvalidOSInput, got %v", err)
		}
	})

	t.Run("negative estimate", func(t *testing.T) {
		uc := NewOrdemServicoUseCase(nil)
		_, err := uc.Create(context.Background(), "emp-1", entities.OrdemServico{
			ClienteNome:      "João",
			Equipamento:      "Notebook Dell",
			ProblemaRelatado: "não liga",
			ValorEstimado:    -50,
		})
		if !errors.Is(err, ErrInvalidOSInput) {
			t.Fatalf("expected ErrInvalidOSInput, got %v", err)
		}
	})

	t.Run("opens in recebido with zero final value", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIOrdemServicoRepository(ctrl)
		uc := NewOrdemServicoUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.OrdemServico) (entities.OrdemServico, error) {
				if o.ID == "" || o.Status != entities.OSStatusRecebido {
					t.Fatalf("unexpected ordem: %+v", o)
				}
				if o.ValorFinal != 0 || !o.DataEntrega.IsZero() {
					t.Fatalf("delivery fields are set only by the reconciliation: %+v", o)
				}
				if o.DataRecebimento.IsZero() {
					t.Fatalf("expected reception timestamp")
				}
				return o, nil
			},
		)

		_, err := uc.Create(context.Background(), "emp-1", entities.OrdemServico{
			ClienteNome:      "João",
			Equipamento:      "Notebook Dell",
			ProblemaRelatado: "não liga",
			ValorEstimado:    300,
			Status:           entities.OSStatusEntreguePago, // ignored
			ValorFinal:       999,                           // ignored
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestOrdemServicoUseCase_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIOrdemServicoRepository(ctrl)
	uc := NewOrdemServicoUseCase(repo)
	repo.EXPECT().GetByID(gomock.Any(), "emp-1", "os-1").Return(entities.OrdemServico{}, nil)

	_, err := uc.GetByID(context.Background(), "emp-1", "os-1")
	if !errors.Is(err, ErrOSNotFound) {
		t.Fatalf("expected ErrOSNotFound, got %v", err)
	}
}

func TestOrdemServicoUseCase_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIOrdemServicoRepository(ctrl)
	uc := NewOrdemServicoUseCase(repo)

	existing := entities.OrdemServico{
		ID:               "os-1",
		EmpresaID:        "emp-1",
		ClienteNome:      "João",
		Equipamento:      "Notebook Dell",
		ProblemaRelatado: "não liga",
		Status:           entities.OSStatusEmReparacao,
		ValorFinal:       350,
	}
	repo.EXPECT().GetByID(gomock.Any(), "emp-1", "os-1").Return(existing, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, o entities.OrdemServico) (entities.OrdemServico, error) {
			if o.ProblemaRelatado != "não liga, fonte queimada" {
				t.Fatalf("unexpected ordem: %+v", o)
			}
			if o.Status != entities.OSStatusEmReparacao || o.ValorFinal != 350 {
				t.Fatalf("status/valor_final must not change here: %+v", o)
			}
			return o, nil
		},
	)

	_, err := uc.Update(context.Background(), "emp-1", "os-1", entities.OrdemServico{
		ProblemaRelatado: "não liga, fonte queimada",
		Status:           entities.OSStatusCancelado, // ignored
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestOrdemServicoUseCase_Delete(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewOrdemServicoUseCase(nil)
		if err := uc.Delete(context.Background(), "emp-1", ""); !errors.Is(err, ErrInvalidOSID) {
			t.Fatalf("expected ErrInvalidOSID, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIOrdemServicoRepository(ctrl)
		uc := NewOrdemServicoUseCase(repo)
		repo.EXPECT().Delete(gomock.Any(), "emp-1", "os-1").Return(nil)

		if err := uc.Delete(context.Background(), "emp-1", "os-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
