package entities

// Categoria identifies the component category of an inventory item.

type Categoria string

const (
	CategoriaCPU          Categoria = "CPU"
	CategoriaPlacaMae     Categoria = "Placa-Mãe"
	CategoriaRAM          Categoria = "RAM"
	CategoriaGPU          Categoria = "GPU"
	CategoriaArmazenamento Categoria = "Armazenamento"
	CategoriaFonte        Categoria = "Fonte"
	CategoriaGabinete     Categoria = "Gabinete"
	CategoriaCooler       Categoria = "Cooler"
)

// CoreCategories are the categories a complete PC build must cover, one unit
// each, in assembly order.
var CoreCategories = []Categoria{
	CategoriaCPU,
	CategoriaPlacaMae,
	CategoriaRAM,
	CategoriaGPU,
	CategoriaArmazenamento,
	CategoriaFonte,
	CategoriaGabinete,
	CategoriaCooler,
}

// InventoryItem is one stocked component.
//
// Storage model:
//   - PK: empresa_id (tenant), SK: id
//
// Quantity is the stock truth for the item and only changes through the
// atomic adjust path; it never goes negative as the result of a reconciled
// transition. Compatibility attributes are filled per category (socket for
// CPU/motherboard, ramType for motherboard/RAM, watt for PSUs, power draw
// for the others).
type InventoryItem struct {
	ID        string    `json:"id"`
	EmpresaID string    `json:"empresa_id"`
	Component string    `json:"component"`
	Category  Categoria `json:"category"`
	SKU       string    `json:"sku,omitempty"`
	Quantity  float64   `json:"quantity"`
	Price     float64   `json:"price"`
	Socket    string    `json:"socket,omitempty"`
	RAMType   string    `json:"ram_type,omitempty"`
	Watt      int       `json:"watt,omitempty"`
	Power     int       `json:"power,omitempty"`
}

// InStock reports whether the item can be offered to the assembly flow.
func (i InventoryItem) InStock() bool {
	return i.Quantity > 0
}

// PowerDraw returns the wattage the item contributes to a build's estimated
// power. PSUs declare capacity in Watt and contribute no draw.
func (i InventoryItem) PowerDraw() int {
	return i.Power
}
