package domain

// BusStation is a boarding or alighting location. Whether City actually
// exists is checked by the create use-case against the city lookup service.
// ID is zero until persisted.
type BusStation struct {
	ID   int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name"`
	City string `json:"city" gorm:"index"`
	UF   string `json:"uf"`
}

// NewBusStation builds an unpersisted bus station.
func NewBusStation(name, city, uf string) (*BusStation, error) {
	if name == "" {
		return nil, NewBadRequestError("station name must not be empty")
	}
	if city == "" {
		return nil, NewBadRequestError("city must not be empty")
	}
	if len(uf) != 2 {
		return nil, NewBadRequestError("uf must be a two-letter state code")
	}
	return &BusStation{
		Name: name,
		City: city,
		UF:   uf,
	}, nil
}

// RestoreBusStation rehydrates a persisted bus station.
func RestoreBusStation(id int64, name, city, uf string) *BusStation {
	return &BusStation{
		ID:   id,
		Name: name,
		City: city,
		UF:   uf,
	}
}
