package queue

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPingWithoutConnection(t *testing.T) {
	broker := &RabbitMQBroker{}

	err := broker.Ping(context.Background())
	assert.Error(t, err)
}
