// Package store persists whole collections as JSON documents behind a read-through TTL cache.
package store

import "context"

type Collection string

const (
	Products     Collection = "products"
	Warehouses   Collection = "warehouses"
	Stock        Collection = "stock"
	Transfers    Collection = "transfers"
	Alerts       Collection = "alerts"
	OrderHistory Collection = "order_history"
)

var Collections = []Collection{Products, Warehouses, Stock, Transfers, Alerts, OrderHistory}

var emptyDocument = []byte("[]")

// Backend loads and saves JSON array documents. Save must apply every document or none.
type Backend interface {
	Load(ctx context.Context, c Collection) ([]byte, error)
	Save(ctx context.Context, docs map[Collection][]byte) error
	Close() error
}
