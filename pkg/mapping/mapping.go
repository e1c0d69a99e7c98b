package mapping

import (
	"github.com/chris/coin-bank/pkg/api"
	"github.com/chris/coin-bank/pkg/models"
	"github.com/shopspring/decimal"
)

// ToApiDenomination converts a domain Denomination to its wire form.
func ToApiDenomination(d models.Denomination) api.Denomination {
	value, _ := decimal.New(d.MinorUnits(), -2).Float64()
	return api.Denomination{
		Name:  d.Name(),
		Value: value,
	}
}

// ToApiReserve converts a domain Reserve model to an API Reserve model.
func ToApiReserve(reserve *models.Reserve) *api.Reserve {
	return &api.Reserve{
		Denomination: ToApiDenomination(reserve.Denomination),
		CurrentCount: reserve.CurrentCount,
		MaxCount:     reserve.MaxCount,
	}
}

// ToApiReserves converts a whole collection, preserving denomination order.
func ToApiReserves(reserves models.ReserveCollection) []*api.Reserve {
	apiReserves := make([]*api.Reserve, len(reserves))
	for i := range reserves {
		apiReserves[i] = ToApiReserve(&reserves[i])
	}
	return apiReserves
}
