package request

import "informatica_xpto/internal/domain/entities"

// InventoryItemRequest is the payload for creating or updating a stock item.
//
// Socket/RAMType/Watt/Power are the compatibility attributes consumed by the
// assembly screen; they are optional for categories where they do not apply.
type InventoryItemRequest struct {
	Component string  `json:"component" binding:"required"`
	Category  string  `json:"category" binding:"required"`
	SKU       string  `json:"sku"`
	Quantity  float64 `json:"quantity"`
	Price     float64 `json:"price"`
	Socket    string  `json:"socket"`
	RAMType   string  `json:"ram_type"`
	Watt      int     `json:"watt"`
	Power     int     `json:"power"`
}

func (r InventoryItemRequest) ToEntity() entities.InventoryItem {
	return entities.InventoryItem{
		Component: r.Component,
		Category:  entities.Categoria(r.Category),
		SKU:       r.SKU,
		Quantity:  r.Quantity,
		Price:     r.Price,
		Socket:    r.Socket,
		RAMType:   r.RAMType,
		Watt:      r.Watt,
		Power:     r.Power,
	}
}
