package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"informatica_xpto/internal/domain/entities"
	"informatica_xpto/internal/domain/pricing"
	"informatica_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidPCName      = errors.New("invalid pc name")
	ErrInvalidClientName  = errors.New("invalid client name")
	ErrIncompleteBuild    = errors.New("incomplete build")
	ErrIncompatibleBuild  = errors.New("incompatible build")
	ErrEmptyComponentList = errors.New("empty component list")
)

// ComponentFilter narrows the in-stock listing for one selector of the
// assembly screen. Socket and RAMType carry the compatibility requirement
// derived from the already-chosen CPU/motherboard.
type ComponentFilter struct {
	Categoria entities.Categoria
	Socket    string
	RAMType   string
}

// Quote is the derived pricing of a candidate build.
type Quote struct {
	CostPrice      float64
	EstimatedPower int
	SuggestedPrice float64
}

// FinalizarPedidoInput turns a quoted build into a sales order.
type FinalizarPedidoInput struct {
	ClienteID    string
	ClientName   string
	Notes        string
	Components   []entities.ComponentLine
	CostPrice    float64
	ProfitMargin float64
}

// IMontagemUseCase exposes the PC-assembly quoting flow.
//
// SalvarPCMontado consumes exactly one unit of each core component category.
// FinalizarPedido creates a Pendente pedido and posts the production expense;
// stock consumption and revenue stay with the reconciliation on later status
// changes, so nothing is counted twice.

type IMontagemUseCase interface {
	ListAvailable(ctx context.Context, empresaID string, filter ComponentFilter) ([]entities.InventoryItem, error)
	QuoteBuild(items []entities.InventoryItem, marginPercent float64) Quote
	SalvarPCMontado(ctx context.Context, empresaID, name string, componentIDs []string, marginPercent float64) (entities.PCMontado, error)
	FinalizarPedido(ctx context.Context, empresaID string, input FinalizarPedidoInput) (entities.Pedido, error)
}

type MontagemUseCase struct {
	inventario interfaces.IInventarioRepository
	pcs        interfaces.IPCMontadoRepository
	pedidos    interfaces.IPedidoRepository
	transacoes interfaces.ITransacaoRepository
}

var _ IMontagemUseCase = (*MontagemUseCase)(nil)

func NewMontagemUseCase(
	inventario interfaces.IInventarioRepository,
	pcs interfaces.IPCMontadoRepository,
	pedidos interfaces.IPedidoRepository,
	transacoes interfaces.ITransacaoRepository,
) *MontagemUseCase {
	return &MontagemUseCase{inventario: inventario, pcs: pcs, pedidos: pedidos, transacoes: transacoes}
}

// ListAvailable returns in-stock items of one category, filtered by the
// compatibility attributes the current selection imposes.
func (u *MontagemUseCase) ListAvailable(ctx context.Context, empresaID string, filter ComponentFilter) ([]entities.InventoryItem, error) {
	empresaID = strings.TrimSpace(empresaID)
	if empresaID == "" {
		return nil, ErrInvalidEmpresaID
	}

	all, err := u.inventario.ListByEmpresa(ctx, empresaID)
	if err != nil {
		return nil, err
	}

	items := make([]entities.InventoryItem, 0, len(all))
	for _, item := range all {
		if !item.InStock() {
			continue
		}
		if filter.Categoria != "" && item.Category != filter.Categoria {
			continue
		}
		if filter.Socket != "" && item.Socket != filter.Socket {
			continue
		}
		if filter.RAMType != "" && item.RAMType != filter.RAMType {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

// QuoteBuild derives cost, estimated power draw and the suggested sale price
// for a set of selected components. Pure computation, no persistence.
func (u *MontagemUseCase) QuoteBuild(items []entities.InventoryItem, marginPercent float64) Quote {
	cost := 0.0
	power := 0
	for _, item := range items {
		cost += item.Price
		power += item.PowerDraw()
	}
	return Quote{
		CostPrice:      cost,
		EstimatedPower: power,
		SuggestedPrice: pricing.SuggestedPrice(cost, marginPercent),
	}
}

// SalvarPCMontado assembles a PC from stock: one unit of each core category
// is deducted atomically, then the assembled PC is stored as its own
// sellable record. Lost optimistic conditions are retried with fresh reads.
func (u *MontagemUseCase) SalvarPCMontado(ctx context.Context, empresaID, name string, componentIDs []string, marginPercent float64) (entities.PCMontado, error) {
	empresaID = strings.TrimSpace(empresaID)
	if empresaID == "" {
		return entities.PCMontado{}, ErrInvalidEmpresaID
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.PCMontado{}, ErrInvalidPCName
	}

	var items []entities.InventoryItem
	for attempt := 0; ; attempt++ {
		var err error
		items, err = u.deductBuild(ctx, empresaID, componentIDs)
		if errors.Is(err, ErrConflict) && attempt < maxConflictRetries {
			log.Printf("[montagem][usecase] conflict, retrying empresa_id=%s attempt=%d", empresaID, attempt+1)
			continue
		}
		if err != nil {
			return entities.PCMontado{}, err
		}
		break
	}

	components := make([]entities.ComponentLine, 0, len(items))
	cost := 0.0
	power := 0
	for _, item := range items {
		components = append(components, entities.ComponentLine{
			ID:       item.ID,
			Name:     item.Component,
			Category: string(item.Category),
			SKU:      item.SKU,
			Price:    item.Price,
			Qty:      1,
		})
		cost += item.Price
		power += item.PowerDraw()
	}

	pc := entities.PCMontado{
		ID:             uuid.NewString(),
		EmpresaID:      empresaID,
		Name:           name,
		Components:     components,
		CostPrice:      cost,
		ProfitMargin:   marginPercent,
		SuggestedPrice: pricing.SuggestedPrice(cost, marginPercent),
		EstimatedPower: power,
		Status:         entities.PCMontadoStatusProntoParaVenda,
		Quantity:       1,
		DataMontagem:   time.Now().UTC(),
	}
	created, err := u.pcs.Create(ctx, pc)
	if err != nil {
		// Components are already deducted; the record creation is retryable
		// by id without touching stock again.
		return entities.PCMontado{}, fmt.Errorf("%w: %v", ErrPartialSuccess, err)
	}
	log.Printf("[montagem][usecase] pc montado saved pc_id=%s name=%q cost=%.2f", created.ID, name, cost)
	return created, nil
}

// deductBuild validates the selection covers every core category with stock
// and compatible parts, then applies the one-unit-each deduction atomically.
func (u *MontagemUseCase) deductBuild(ctx context.Context, empresaID string, componentIDs []string) ([]entities.InventoryItem, error) {
	byCategory := make(map[entities.Categoria]entities.InventoryItem, len(componentIDs))
	items := make([]entities.InventoryItem, 0, len(componentIDs))
	for _, id := range componentIDs {
		item, err := u.inventario.GetByID(ctx, empresaID, id)
		if err != nil {
			return nil, err
		}
		if item.ID == "" {
			return nil, fmt.Errorf("%w: %s", ErrInventoryItemNotFound, id)
		}
		byCategory[item.Category] = item
		items = append(items, item)
	}

	for _, cat := range entities.CoreCategories {
		if _, ok := byCategory[cat]; !ok {
			return nil, fmt.Errorf("%w: missing %s", ErrIncompleteBuild, cat)
		}
	}
	if err := checkCompatibility(byCategory); err != nil {
		return nil, err
	}

	adjustments := make([]interfaces.StockAdjustment, 0, len(items))
	for _, item := range items {
		if item.Quantity < 1 {
			return nil, fmt.Errorf("%w: %q", ErrInsufficientStock, item.Component)
		}
		adjustments = append(adjustments, interfaces.StockAdjustment{
			ItemID:           item.ID,
			ExpectedQuantity: item.Quantity,
			NewQuantity:      item.Quantity - 1,
		})
	}

	if err := u.inventario.AdjustQuantities(ctx, empresaID, adjustments); err != nil {
		switch {
		case errors.Is(err, interfaces.ErrConditionFailed):
			return nil, ErrConflict
		case errors.Is(err, interfaces.ErrRecordMissing):
			return nil, ErrInventoryItemNotFound
		default:
			return nil, err
		}
	}
	return items, nil
}

func checkCompatibility(by map[entities.Categoria]entities.InventoryItem) error {
	cpu := by[entities.CategoriaCPU]
	mobo := by[entities.CategoriaPlacaMae]
	ram := by[entities.CategoriaRAM]
	psu := by[entities.CategoriaFonte]

	if cpu.Socket != "" && mobo.Socket != "" && cpu.Socket != mobo.Socket {
		return fmt.Errorf("%w: socket %s incompatible with CPU %s", ErrIncompatibleBuild, mobo.Socket, cpu.Socket)
	}
	if mobo.RAMType != "" && ram.RAMType != "" && mobo.RAMType != ram.RAMType {
		return fmt.Errorf("%w: RAM %s incompatible with motherboard %s", ErrIncompatibleBuild, ram.RAMType, mobo.RAMType)
	}
	if psu.Watt > 0 {
		draw := 0
		for _, item := range by {
			draw += item.PowerDraw()
		}
		if draw > psu.Watt {
			return fmt.Errorf("%w: %dW PSU below estimated %dW draw", ErrIncompatibleBuild, psu.Watt, draw)
		}
	}
	return nil
}

// FinalizarPedido creates a Pendente pedido from a quoted build and posts the
// production cost as a Despesa. Stock leaves and revenue is posted by the
// reconciliation when the pedido later moves through the consuming statuses.
func (u *MontagemUseCase) FinalizarPedido(ctx context.Context, empresaID string, input FinalizarPedidoInput) (entities.Pedido, error) {
	empresaID = strings.TrimSpace(empresaID)
	if empresaID == "" {
		return entities.Pedido{}, ErrInvalidEmpresaID
	}
	input.ClientName = strings.TrimSpace(input.ClientName)
	if input.ClientName == "" {
		return entities.Pedido{}, ErrInvalidClientName
	}
	if len(input.Components) == 0 {
		return entities.Pedido{}, ErrEmptyComponentList
	}

	now := time.Now().UTC()
	p := entities.Pedido{
		ID:              uuid.NewString(),
		EmpresaID:       empresaID,
		ClienteID:       input.ClienteID,
		ClientName:      input.ClientName,
		Components:      input.Components,
		CostPrice:       input.CostPrice,
		Total:           pricing.SuggestedPrice(input.CostPrice, input.ProfitMargin),
		ProfitMargin:    input.ProfitMargin,
		Status:          entities.PedidoStatusPendente,
		Notes:           input.Notes,
		DataCriacao:     now,
		DataAtualizacao: now,
	}
	created, err := u.pedidos.Create(ctx, p)
	if err != nil {
		return entities.Pedido{}, err
	}
	log.Printf("[montagem][usecase] pedido created pedido_id=%s client=%q total=%.2f", created.ID, input.ClientName, created.Total)

	if input.CostPrice > 0 {
		t := entities.Transacao{
			ID:        uuid.NewString(),
			EmpresaID: empresaID,
			Tipo:      entities.TransacaoDespesa,
			Categoria: entities.CategoriaCustoProducao,
			Descricao: fmt.Sprintf("Custo de Produção Pedido #%s", shortID(created.ID, 6)),
			Valor:     input.CostPrice,
			Data:      now,
			Origem:    "Pedido",
			PedidoID:  created.ID,
		}
		if _, err := u.transacoes.Create(ctx, t); err != nil {
			log.Printf("[montagem][usecase] expense posting failed pedido_id=%s err=%v", created.ID, err)
			return created, fmt.Errorf("%w: %v", ErrPartialSuccess, err)
		}
	}
	return created, nil
}
