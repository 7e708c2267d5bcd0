package response

import (
	"time"

	"informatica_xpto/internal/domain/entities"
	"informatica_xpto/internal/usecase"
)

// QuoteResponse is the derived pricing of a candidate build.
type QuoteResponse struct {
	CostPrice      float64 `json:"cost_price"`
	EstimatedPower int     `json:"estimated_power"`
	SuggestedPrice float64 `json:"suggested_price"`
}

func FromQuote(q usecase.Quote) QuoteResponse {
	return QuoteResponse{
		CostPrice:      q.CostPrice,
		EstimatedPower: q.EstimatedPower,
		SuggestedPrice: q.SuggestedPrice,
	}
}

type PCMontadoResponse struct {
	ID             string                  `json:"id"`
	Name           string                  `json:"name"`
	Components     []ComponentLineResponse `json:"components"`
	CostPrice      float64                 `json:"cost_price"`
	ProfitMargin   float64                 `json:"profit_margin"`
	SuggestedPrice float64                 `json:"suggested_price"`
	EstimatedPower int                     `json:"estimated_power"`
	Status         string                  `json:"status"`
	Quantity       float64                 `json:"quantity"`
	DataMontagem   time.Time               `json:"data_montagem"`
}

func FromPCMontado(pc entities.PCMontado) PCMontadoResponse {
	components := make([]ComponentLineResponse, 0, len(pc.Components))
	for _, c := range pc.Components {
		components = append(components, ComponentLineResponse{
			ID:       c.ID,
			Name:     c.Name,
			Category: c.Category,
			SKU:      c.SKU,
			Price:    c.Price,
			Qty:      c.Qty,
		})
	}
	return PCMontadoResponse{
		ID:             pc.ID,
		Name:           pc.Name,
		Components:     components,
		CostPrice:      pc.CostPrice,
		ProfitMargin:   pc.ProfitMargin,
		SuggestedPrice: pc.SuggestedPrice,
		EstimatedPower: pc.EstimatedPower,
		Status:         pc.Status,
		Quantity:       pc.Quantity,
		DataMontagem:   pc.DataMontagem,
	}
}
