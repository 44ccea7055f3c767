package entity

// Product is a gift-shop reward priced in points
type Product struct {
	ID         uint64
	Title      string
	Price      int64
	ImageURL   string
	RedeemedBy []uint64
	IsActive   bool
}

// GetID implements Identified
func (p *Product) GetID() uint64 {
	return p.ID
}

// WasRedeemedBy reports whether userID is already in RedeemedBy
func (p *Product) WasRedeemedBy(userID uint64) bool {
	for _, id := range p.RedeemedBy {
		if id == userID {
			return true
		}
	}
	return false
}
