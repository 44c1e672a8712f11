package repo

import (
	"context"

	"github.com/valeriy131100/star-burger/internal/domain"
)

type AddressRepository interface {
	GetByAddress(ctx context.Context, address string) (*domain.Address, error)
	GetByAddresses(ctx context.Context, addresses []string) ([]domain.Address, error)
	Upsert(ctx context.Context, address *domain.Address) error
}
