package domain

import (
	"cmp"
	"maps"
	"slices"
	"time"
)

// Batch is a purchased quantity of one SKU, optionally arriving at a later
// date, together with the order lines allocated against it.
//
// A Batch is not safe for concurrent use.
type Batch struct {
	ref               string
	sku               string
	eta               time.Time
	hasETA            bool
	purchasedQuantity int
	allocations       map[OrderLine]struct{}
}

type BatchOption func(*Batch)

// WithETA sets the expected arrival date. Only the calendar date is kept.
func WithETA(eta time.Time) BatchOption {
	return func(b *Batch) {
		y, m, d := eta.Date()
		b.eta = time.Date(y, m, d, 0, 0, 0, 0, eta.Location())
		b.hasETA = true
	}
}

// WithBatchRef sets the batch reference instead of generating one.
func WithBatchRef(ref string) BatchOption {
	return func(b *Batch) {
		b.ref = ref
	}
}

func NewBatch(sku string, quantity int, opts ...BatchOption) *Batch {
	b := &Batch{
		sku:               sku,
		purchasedQuantity: quantity,
		allocations:       make(map[OrderLine]struct{}),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.ref == "" {
		b.ref = newRef()
	}
	return b
}

func (b *Batch) Ref() string            { return b.ref }
func (b *Batch) SKU() string            { return b.sku }
func (b *Batch) PurchasedQuantity() int { return b.purchasedQuantity }

// ETA returns the expected arrival date and whether one was set.
func (b *Batch) ETA() (time.Time, bool) {
	return b.eta, b.hasETA
}

func (b *Batch) AllocatedQuantity() int {
	total := 0
	for line := range b.allocations {
		total += line.quantity
	}
	return total
}

// AvailableQuantity is the purchased quantity minus everything allocated.
func (b *Batch) AvailableQuantity() int {
	return b.purchasedQuantity - b.AllocatedQuantity()
}

func (b *Batch) CanAllocate(line OrderLine) bool {
	return line.sku == b.sku && b.AvailableQuantity() >= line.quantity
}

// Allocate commits line against the batch. Lines that cannot be allocated
// are ignored, and allocating an equal line twice has no further effect.
func (b *Batch) Allocate(line OrderLine) {
	if !b.CanAllocate(line) {
		return
	}
	b.allocations[line] = struct{}{}
}

// Deallocate releases line if it is allocated and does nothing otherwise.
func (b *Batch) Deallocate(line OrderLine) {
	delete(b.allocations, line)
}

func (b *Batch) IsAllocated(line OrderLine) bool {
	_, ok := b.allocations[line]
	return ok
}

// Allocations returns a copy of the allocated lines ordered by order ID.
func (b *Batch) Allocations() []OrderLine {
	return slices.SortedFunc(maps.Keys(b.allocations), func(x, y OrderLine) int {
		return cmp.Or(
			cmp.Compare(x.orderID, y.orderID),
			cmp.Compare(x.sku, y.sku),
			cmp.Compare(x.quantity, y.quantity),
		)
	})
}
