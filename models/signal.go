package models

// SideType define signal side type
type SideType string

const (
	SideTypeBuy  SideType = "buy"
	SideTypeSell SideType = "sell"
)

// Signal is a point in time trading decision over a bar
type Signal struct {
	Index  int      `json:"index"`
	Label  string   `json:"label"`
	Side   SideType `json:"side"`
	Price  float64  `json:"price"`
	Reason string   `json:"reason"`
}

func (s Signal) IsBuy() bool {
	return s.Side == SideTypeBuy
}

func (s Signal) IsSell() bool {
	return s.Side == SideTypeSell
}
