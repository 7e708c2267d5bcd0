package response

import "informatica_xpto/internal/domain/entities"

type InventoryItemResponse struct {
	ID        string  `json:"id"`
	Component string  `json:"component"`
	Category  string  `json:"category"`
	SKU       string  `json:"sku,omitempty"`
	Quantity  float64 `json:"quantity"`
	Price     float64 `json:"price"`
	Socket    string  `json:"socket,omitempty"`
	RAMType   string  `json:"ram_type,omitempty"`
	Watt      int     `json:"watt,omitempty"`
	Power     int     `json:"power,omitempty"`
}

func FromInventoryItem(i entities.InventoryItem) InventoryItemResponse {
	return InventoryItemResponse{
		ID:        i.ID,
		Component: i.Component,
		Category:  string(i.Category),
		SKU:       i.SKU,
		Quantity:  i.Quantity,
		Price:     i.Price,
		Socket:    i.Socket,
		RAMType:   i.RAMType,
		Watt:      i.Watt,
		Power:     i.Power,
	}
}

func FromInventoryItems(items []entities.InventoryItem) []InventoryItemResponse {
	out := make([]InventoryItemResponse, 0, len(items))
	for _, i := range items {
		out = append(out, FromInventoryItem(i))
	}
	return out
}
