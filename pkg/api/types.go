package api

// Denomination is the wire form of a coin type.
type Denomination struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Reserve is the wire form of one denomination's coin counts.
type Reserve struct {
	Denomination Denomination `json:"denomination"`
	CurrentCount uint         `json:"current_count"`
	MaxCount     uint         `json:"max_count"`
}

// CoinRequest is the body of POST /add_coin and POST /subtract_coin.
type CoinRequest struct {
	Denomination string `json:"denomination"`
	Count        uint   `json:"count"`
}

// Error is the body of every failure response.
type Error struct {
	Message string `json:"message"`
}
