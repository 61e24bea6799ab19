package application

import (
	pkgDomain "github.com/viajabus/booking/pkg/domain"
)

// QuerySearchTravels is the query name for departure-date searches.
const QuerySearchTravels = "SearchTravels"

type searchTravelsQuery struct {
	data FindTravelsByDepartureDateInput
}

func (q searchTravelsQuery) QueryName() string {
	return QuerySearchTravels
}

func (q searchTravelsQuery) Payload() FindTravelsByDepartureDateInput {
	return q.data
}

// NewSearchTravelsQuery wraps a departure-date search for dispatch on the
// query bus.
func NewSearchTravelsQuery(data FindTravelsByDepartureDateInput) pkgDomain.Query[FindTravelsByDepartureDateInput] {
	return searchTravelsQuery{data: data}
}
