package models

// CartItem references a catalog product by id. The cart lives in memory
// only and is never persisted across restarts.
type CartItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}
