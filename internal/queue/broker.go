package queue

import (
	"context"
)

type Broker interface {
	Publish(ctx context.Context, queueName string, message []byte) error
	Subscribe(ctx context.Context, queueName string, handler MessageHandler) error
	Ping(ctx context.Context) error
	Close() error
}

type MessageHandler func(ctx context.Context, message []byte) error

const (
	QueueCatalogImport    = "catalog-import"
	QueueGeocoding        = "geocoding"
	QueueCatalogImportDLQ = "catalog-import-dlq"
	QueueGeocodingDLQ     = "geocoding-dlq"
)
