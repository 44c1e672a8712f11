package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/valeriy131100/star-burger/internal/domain"
	"github.com/valeriy131100/star-burger/internal/queue"
	"github.com/valeriy131100/star-burger/internal/service"
	"go.uber.org/zap"
)

type GeocodingWorker struct {
	addressService *service.AddressService
	broker         queue.Broker
	logger         *zap.SugaredLogger
	ctx            context.Context
	cancel         context.CancelFunc
}

func NewGeocodingWorker(
	addressService *service.AddressService,
	broker queue.Broker,
	logger *zap.SugaredLogger,
) *GeocodingWorker {
	ctx, cancel := context.WithCancel(context.Background())

	return &GeocodingWorker{
		addressService: addressService,
		broker:         broker,
		logger:         logger,
		ctx:            ctx,
		cancel:         cancel,
	}
}

func (w *GeocodingWorker) Start() error {
	w.logger.Info("starting geocoding worker")

	return w.broker.Subscribe(w.ctx, queue.QueueGeocoding, w.handleMessage)
}

func (w *GeocodingWorker) Stop() {
	w.logger.Info("stopping geocoding worker")
	w.cancel()
}

func (w *GeocodingWorker) handleMessage(ctx context.Context, message []byte) error {
	var msg domain.GeocodingMessage
	if err := json.Unmarshal(message, &msg); err != nil {
		w.logger.Errorw("failed to unmarshal message", "error", err)
		return fmt.Errorf("failed to unmarshal message: %w", err)
	}

	w.logger.Infow("resolving address", "address", msg.Address)

	_, err := w.addressService.Resolve(ctx, msg.Address)
	if err != nil {
		// the unresolvable answer is itself cached; only transport
		// failures are worth a retry
		if errors.Is(err, domain.ErrAddressNotResolved) {
			return nil
		}
		w.logger.Errorw("failed to resolve address", "address", msg.Address, "error", err)
		return err
	}

	return nil
}
