package entities

import "time"

// PCMontado is a PC assembled from stock and kept as its own sellable item.
//
// Storage model:
//   - PK: empresa_id (tenant), SK: id
//
// Creating one deducts exactly one unit of each core component category from
// the inventory.
type PCMontado struct {
	ID             string          `json:"id"`
	EmpresaID      string          `json:"empresa_id"`
	Name           string          `json:"name"`
	Components     []ComponentLine `json:"components"`
	CostPrice      float64         `json:"cost_price"`
	ProfitMargin   float64         `json:"profit_margin"`
	SuggestedPrice float64         `json:"suggested_price"`
	EstimatedPower int             `json:"estimated_power"`
	Status         string          `json:"status"`
	Quantity       float64         `json:"quantity"`
	DataMontagem   time.Time       `json:"data_montagem"`
}

const PCMontadoStatusProntoParaVenda = "Pronto para Venda"
