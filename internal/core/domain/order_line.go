package domain

// OrderLine is a request for a quantity of a SKU. It is an immutable value:
// two lines are equal iff SKU, quantity and order ID all match, so it can be
// used directly as a map key.
type OrderLine struct {
	sku      string
	quantity int
	orderID  string
}

type OrderLineOption func(*OrderLine)

// WithOrderID sets the order reference instead of generating one.
func WithOrderID(id string) OrderLineOption {
	return func(l *OrderLine) {
		l.orderID = id
	}
}

func NewOrderLine(sku string, quantity int, opts ...OrderLineOption) OrderLine {
	l := OrderLine{
		sku:      sku,
		quantity: quantity,
	}
	for _, opt := range opts {
		opt(&l)
	}
	if l.orderID == "" {
		l.orderID = newRef()
	}
	return l
}

func (l OrderLine) SKU() string     { return l.sku }
func (l OrderLine) Quantity() int   { return l.quantity }
func (l OrderLine) OrderID() string { return l.orderID }

func (l OrderLine) Equal(other OrderLine) bool {
	return l == other
}
