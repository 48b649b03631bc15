package models

type OrderStatus string

const (
	// pending and cancelled are part of the stored status domain but no
	// operation currently produces them; the only modelled transition is
	// processing -> completed via order approval.
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

type PaymentMethod string

const (
	PaymentEasyPaisa    PaymentMethod = "EasyPaisa"
	PaymentBankTransfer PaymentMethod = "Bank Transfer"
)

// OrderItem is a snapshot of a catalog product taken at order time.
// Later product edits or deletes must never change a recorded order.
type OrderItem struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Name      string  `json:"name"`
}

type Order struct {
	ID               string        `json:"id"`
	UserID           string        `json:"userId"`
	Items            []OrderItem   `json:"items"`
	Total            float64       `json:"total"`
	Status           OrderStatus   `json:"status"`
	PaymentMethod    PaymentMethod `json:"paymentMethod"`
	PaymentReference string        `json:"paymentReference,omitempty"`
	CreatedAt        int64         `json:"createdAt"` // unix milliseconds
}
