package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"informatica_xpto/internal/domain/entities"
	"informatica_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidEmpresaID      = errors.New("invalid empresa id")
	ErrInvalidPedidoID       = errors.New("invalid pedido id")
	ErrInvalidOSID           = errors.New("invalid os id")
	ErrPedidoNotFound        = errors.New("pedido not found")
	ErrOSNotFound            = errors.New("ordem de serviço not found")
	ErrInventoryItemNotFound = errors.New("inventory item not found")
	ErrInsufficientStock     = errors.New("insufficient stock")
	ErrInvalidTransition     = errors.New("invalid status transition")
	ErrInvalidFinalValue     = errors.New("invalid final value")
	ErrConflict              = errors.New("concurrent update conflict")

	// ErrPartialSuccess means the atomic stock+status commit succeeded but the
	// trailing financial posting failed. Stock and status are already correct;
	// the posting must be retried, never rolled back.
	ErrPartialSuccess = errors.New("status committed but financial posting failed")
)

// How many times a lost optimistic condition is retried with fresh reads
// before surfacing ErrConflict.
const maxConflictRetries = 3

// ReconcileResult reports what a reconciliation actually did.
type ReconcileResult struct {
	Status        entities.PedidoStatus
	StockAdjusted bool
	Posted        bool
}

// IReconcileUseCase couples stock, status and the financial ledger on status
// changes of pedidos and ordens de serviço.
//
// Callers must treat each call as single-flight per document: a second
// reconciliation on the same pedido must not start until the first resolves.

type IReconcileUseCase interface {
	ReconcilePedido(ctx context.Context, empresaID, pedidoID string, newStatus entities.PedidoStatus, valorFinal *float64) (ReconcileResult, error)
	DeletePedido(ctx context.Context, empresaID, pedidoID string) error
	ReconcileOS(ctx context.Context, empresaID, osID string, newStatus entities.OSStatus, valorFinal *float64) (entities.OrdemServico, bool, error)
}

type ReconcileUseCase struct {
	pedidos    interfaces.IPedidoRepository
	ordens     interfaces.IOrdemServicoRepository
	inventario interfaces.IInventarioRepository
	transacoes interfaces.ITransacaoRepository
}

var _ IReconcileUseCase = (*ReconcileUseCase)(nil)

func NewReconcileUseCase(
	pedidos interfaces.IPedidoRepository,
	ordens interfaces.IOrdemServicoRepository,
	inventario interfaces.IInventarioRepository,
	transacoes interfaces.ITransacaoRepository,
) *ReconcileUseCase {
	return &ReconcileUseCase{pedidos: pedidos, ordens: ordens, inventario: inventario, transacoes: transacoes}
}

// ReconcilePedido drives a pedido status change:
//
//  1. same status is a no-op; leaving Cancelado is rejected
//  2. the stock delta is computed from consuming-set membership
//  3. stock and status are committed as one conditional all-or-nothing write;
//     any insufficient item aborts the whole call before any mutation
//  4. the first transition into Entregues requires a positive final value and
//     appends one Receita entry after the commit; a failed append surfaces as
//     ErrPartialSuccess
//
// Lost optimistic conditions are retried with fresh reads up to
// maxConflictRetries before ErrConflict reaches the caller.
func (u *ReconcileUseCase) ReconcilePedido(ctx context.Context, empresaID, pedidoID string, newStatus entities.PedidoStatus, valorFinal *float64) (ReconcileResult, error) {
	empresaID = strings.TrimSpace(empresaID)
	if empresaID == "" {
		return ReconcileResult{}, ErrInvalidEmpresaID
	}
	pedidoID = strings.TrimSpace(pedidoID)
	if pedidoID == "" {
		return ReconcileResult{}, ErrInvalidPedidoID
	}
	if !newStatus.Valid() {
		return ReconcileResult{}, fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, newStatus)
	}

	var res ReconcileResult
	var err error
	for attempt := 0; ; attempt++ {
		res, err = u.reconcilePedidoOnce(ctx, empresaID, pedidoID, newStatus, valorFinal)
		if errors.Is(err, ErrConflict) && attempt < maxConflictRetries {
			log.Printf("[reconcile][usecase] conflict, retrying pedido_id=%s attempt=%d", pedidoID, attempt+1)
			continue
		}
		return res, err
	}
}

func (u *ReconcileUseCase) reconcilePedidoOnce(ctx context.Context, empresaID, pedidoID string, newStatus entities.PedidoStatus, valorFinal *float64) (ReconcileResult, error) {
	p, err := u.pedidos.GetByID(ctx, empresaID, pedidoID)
	if err != nil {
		return ReconcileResult{}, err
	}
	if p.ID == "" {
		return ReconcileResult{}, ErrPedidoNotFound
	}
	if p.Status == newStatus {
		// Replaying the same transition request is a no-op both times.
		return ReconcileResult{Status: p.Status}, nil
	}
	if p.Status == entities.PedidoStatusCancelado {
		return ReconcileResult{}, fmt.Errorf("%w: pedido %s is cancelled", ErrInvalidTransition, pedidoID)
	}

	multiplier := entities.StockMultiplier(p.Status, newStatus)

	var adjustments []interfaces.StockAdjustment
	if multiplier != 0 {
		adjustments, err = u.planAdjustments(ctx, empresaID, p.Components, multiplier)
		if err != nil {
			return ReconcileResult{}, err
		}
	}

	now := time.Now().UTC()
	commit := interfaces.StatusCommit{
		PedidoID:       p.ID,
		ExpectedStatus: p.Status,
		NewStatus:      newStatus,
	}

	firstDelivery := newStatus == entities.PedidoStatusEntregues && !p.Finalized()
	if firstDelivery {
		if valorFinal == nil || math.IsNaN(*valorFinal) || *valorFinal <= 0 {
			return ReconcileResult{}, ErrInvalidFinalValue
		}
		commit.ValorFinal = valorFinal
		commit.DataEntrega = &now
	}

	if err := u.pedidos.CommitStatus(ctx, empresaID, commit, adjustments); err != nil {
		switch {
		case errors.Is(err, interfaces.ErrConditionFailed):
			return ReconcileResult{}, ErrConflict
		case errors.Is(err, interfaces.ErrRecordMissing):
			return ReconcileResult{}, ErrPedidoNotFound
		default:
			return ReconcileResult{}, err
		}
	}
	log.Printf("[reconcile][usecase] committed pedido_id=%s status=%s->%s stock_items=%d", pedidoID, p.Status, newStatus, len(adjustments))

	res := ReconcileResult{Status: newStatus, StockAdjusted: multiplier != 0}
	if !firstDelivery {
		return res, nil
	}

	t := entities.Transacao{
		ID:          uuid.NewString(),
		EmpresaID:   empresaID,
		Tipo:        entities.TransacaoReceita,
		Categoria:   entities.CategoriaVendaProduto,
		Descricao:   fmt.Sprintf("Pedido %s - %s", shortID(p.ID, 6), p.ClientName),
		Valor:       *valorFinal,
		Data:        now,
		Origem:      "Pedido",
		PedidoID:    p.ID,
		ClienteID:   p.ClienteID,
		ClienteNome: p.ClientName,
	}
	if _, err := u.transacoes.Create(ctx, t); err != nil {
		log.Printf("[reconcile][usecase] revenue posting failed pedido_id=%s err=%v", pedidoID, err)
		return res, fmt.Errorf("%w: %v", ErrPartialSuccess, err)
	}
	res.Posted = true
	log.Printf("[reconcile][usecase] revenue posted pedido_id=%s valor=%.2f", pedidoID, *valorFinal)
	return res, nil
}

// planAdjustments reads every referenced inventory item and computes the new
// quantities, failing closed before any write when an item is missing or the
// delta would drive its quantity negative.
func (u *ReconcileUseCase) planAdjustments(ctx context.Context, empresaID string, components []entities.ComponentLine, multiplier int) ([]interfaces.StockAdjustment, error) {
	adjustments := make([]interfaces.StockAdjustment, 0, len(components))
	for _, line := range components {
		item, err := u.inventario.GetByID(ctx, empresaID, line.ID)
		if err != nil {
			return nil, err
		}
		if item.ID == "" {
			return nil, fmt.Errorf("%w: %s", ErrInventoryItemNotFound, line.ID)
		}

		newQty := item.Quantity + line.Qty*float64(multiplier)
		if newQty < 0 {
			name := item.Component
			if name == "" {
				name = line.Name
			}
			return nil, fmt.Errorf("%w: %q", ErrInsufficientStock, name)
		}
		adjustments = append(adjustments, interfaces.StockAdjustment{
			ItemID:           item.ID,
			ExpectedQuantity: item.Quantity,
			NewQuantity:      newQty,
		})
	}
	return adjustments, nil
}

// DeletePedido removes a pedido. A pedido in a consuming status is first
// reconciled to Cancelado so its stock is credited back; the reversal must
// succeed before the record is removed.
func (u *ReconcileUseCase) DeletePedido(ctx context.Context, empresaID, pedidoID string) error {
	empresaID = strings.TrimSpace(empresaID)
	if empresaID == "" {
		return ErrInvalidEmpresaID
	}
	pedidoID = strings.TrimSpace(pedidoID)
	if pedidoID == "" {
		return ErrInvalidPedidoID
	}

	p, err := u.pedidos.GetByID(ctx, empresaID, pedidoID)
	if err != nil {
		return err
	}
	if p.ID == "" {
		return ErrPedidoNotFound
	}

	if p.Status.Consuming() {
		if _, err := u.ReconcilePedido(ctx, empresaID, pedidoID, entities.PedidoStatusCancelado, nil); err != nil {
			return err
		}
	}
	if err := u.pedidos.Delete(ctx, empresaID, pedidoID); err != nil {
		return err
	}
	log.Printf("[reconcile][usecase] pedido deleted pedido_id=%s", pedidoID)
	return nil
}

// ReconcileOS drives a repair-ticket status change. Tickets have no inventory
// linkage; the only coupled effect is the Receita posting on the first
// transition into Entregue/Pago. The boolean result reports whether the
// posting happened.
func (u *ReconcileUseCase) ReconcileOS(ctx context.Context, empresaID, osID string, newStatus entities.OSStatus, valorFinal *float64) (entities.OrdemServico, bool, error) {
	empresaID = strings.TrimSpace(empresaID)
	if empresaID == "" {
		return entities.OrdemServico{}, false, ErrInvalidEmpresaID
	}
	osID = strings.TrimSpace(osID)
	if osID == "" {
		return entities.OrdemServico{}, false, ErrInvalidOSID
	}
	if !newStatus.Valid() {
		return entities.OrdemServico{}, false, fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, newStatus)
	}

	for attempt := 0; ; attempt++ {
		o, posted, err := u.reconcileOSOnce(ctx, empresaID, osID, newStatus, valorFinal)
		if errors.Is(err, ErrConflict) && attempt < maxConflictRetries {
			log.Printf("[reconcile][usecase] conflict, retrying os_id=%s attempt=%d", osID, attempt+1)
			continue
		}
		return o, posted, err
	}
}

func (u *ReconcileUseCase) reconcileOSOnce(ctx context.Context, empresaID, osID string, newStatus entities.OSStatus, valorFinal *float64) (entities.OrdemServico, bool, error) {
	o, err := u.ordens.GetByID(ctx, empresaID, osID)
	if err != nil {
		return entities.OrdemServico{}, false, err
	}
	if o.ID == "" {
		return entities.OrdemServico{}, false, ErrOSNotFound
	}
	if o.Status == newStatus {
		return o, false, nil
	}
	if o.Status == entities.OSStatusCancelado {
		return entities.OrdemServico{}, false, fmt.Errorf("%w: ordem de serviço %s is cancelled", ErrInvalidTransition, osID)
	}

	now := time.Now().UTC()
	commit := interfaces.OSStatusCommit{
		OSID:           o.ID,
		ExpectedStatus: o.Status,
		NewStatus:      newStatus,
	}

	firstDelivery := newStatus == entities.OSStatusEntreguePago && !o.Finalized()
	if firstDelivery {
		if valorFinal == nil || math.IsNaN(*valorFinal) || *valorFinal <= 0 {
			return entities.OrdemServico{}, false, ErrInvalidFinalValue
		}
		commit.ValorFinal = valorFinal
		commit.DataEntrega = &now
	}

	if err := u.ordens.CommitStatus(ctx, empresaID, commit); err != nil {
		switch {
		case errors.Is(err, interfaces.ErrConditionFailed):
			return entities.OrdemServico{}, false, ErrConflict
		case errors.Is(err, interfaces.ErrRecordMissing):
			return entities.OrdemServico{}, false, ErrOSNotFound
		default:
			return entities.OrdemServico{}, false, err
		}
	}

	o.Status = newStatus
	if firstDelivery {
		o.ValorFinal = *valorFinal
		o.DataEntrega = now
	}
	log.Printf("[reconcile][usecase] committed os_id=%s status=%s", osID, newStatus)

	if !firstDelivery {
		return o, false, nil
	}

	t := entities.Transacao{
		ID:          uuid.NewString(),
		EmpresaID:   empresaID,
		Tipo:        entities.TransacaoReceita,
		Categoria:   entities.CategoriaOrdemServico,
		Descricao:   fmt.Sprintf("OS %s - %s (%s)", shortID(o.ID, 8), o.Equipamento, o.ClienteNome),
		Valor:       *valorFinal,
		Data:        now,
		Origem:      "OS",
		OSID:        o.ID,
		ClienteID:   o.ClienteID,
		ClienteNome: o.ClienteNome,
	}
	if _, err := u.transacoes.Create(ctx, t); err != nil {
		log.Printf("[reconcile][usecase] revenue posting failed os_id=%s err=%v", osID, err)
		return o, false, fmt.Errorf("%w: %v", ErrPartialSuccess, err)
	}
	log.Printf("[reconcile][usecase] revenue posted os_id=%s valor=%.2f", osID, *valorFinal)
	return o, true, nil
}

func shortID(id string, n int) string {
	if len(id) <= n {
		return id
	}
	return id[:n]
}
