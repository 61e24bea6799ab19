package domain

// Buyer ties the paying user to a booked travel. ID is zero until persisted.
type Buyer struct {
	ID       int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Payment  string `json:"payment"`
	UserID   int64  `json:"userId" gorm:"index"`
	TravelID int64  `json:"travelId" gorm:"index"`
}

// NewBuyer builds an unpersisted buyer.
func NewBuyer(payment string, userID, travelID int64) (*Buyer, error) {
	if payment == "" {
		return nil, NewBadRequestError("payment method must not be empty")
	}
	return &Buyer{
		Payment:  payment,
		UserID:   userID,
		TravelID: travelID,
	}, nil
}

// RestoreBuyer rehydrates a persisted buyer.
func RestoreBuyer(id int64, payment string, userID, travelID int64) *Buyer {
	return &Buyer{
		ID:       id,
		Payment:  payment,
		UserID:   userID,
		TravelID: travelID,
	}
}
