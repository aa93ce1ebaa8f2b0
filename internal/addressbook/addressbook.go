package addressbook

import (
	"context"
	"encoding/json"
	"fmt"

	"freshmart/internal/kv"
	"freshmart/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// StorageKey is the key the saved-address list is persisted under.
const StorageKey = "savedAddresses"

// Book manages the saved delivery addresses. The list lives in a key-value
// store as one JSON document, read on checkout-page entry and written back
// whenever an address is saved. At most one address is the default at a time;
// the first address ever saved becomes it.
type Book struct {
	store  kv.Store
	logger zerolog.Logger
}

// NewBook creates an address book over the given store.
func NewBook(store kv.Store, logger zerolog.Logger) *Book {
	return &Book{
		store:  store,
		logger: logger.With().Str("component", "addressbook").Logger(),
	}
}

// List returns all saved addresses in the order they were saved.
func (b *Book) List(ctx context.Context) ([]model.Address, error) {
	data, ok, err := b.store.Get(ctx, StorageKey)
	if err != nil {
		b.logger.Error().Err(err).Msg("failed to load saved addresses")
		return nil, fmt.Errorf("failed to load saved addresses: %w", err)
	}
	if !ok {
		return []model.Address{}, nil
	}

	var addresses []model.Address
	if err := json.Unmarshal(data, &addresses); err != nil {
		b.logger.Error().Err(err).Msg("failed to decode saved addresses")
		return nil, fmt.Errorf("failed to decode saved addresses: %w", err)
	}

	return addresses, nil
}

// Save appends a new address and persists the list. The first address saved
// becomes the default. The stored address (with its minted id) is returned.
func (b *Book) Save(ctx context.Context, addr model.Address) (*model.Address, error) {
	if addr.FirstName == "" || addr.LastName == "" || addr.StreetAddress == "" {
		return nil, model.ErrMissingField
	}

	addresses, err := b.List(ctx)
	if err != nil {
		return nil, err
	}

	addr.ID = uuid.NewString()
	addr.IsDefault = len(addresses) == 0
	addresses = append(addresses, addr)

	if err := b.persist(ctx, addresses); err != nil {
		return nil, err
	}

	b.logger.Info().
		Str("address_id", addr.ID).
		Bool("default", addr.IsDefault).
		Msg("address saved")

	return &addr, nil
}

// SetDefault marks the given address as the default, clearing the flag on
// every other entry.
func (b *Book) SetDefault(ctx context.Context, id string) error {
	addresses, err := b.List(ctx)
	if err != nil {
		return err
	}

	found := false
	for i := range addresses {
		if addresses[i].ID == id {
			addresses[i].IsDefault = true
			found = true
		} else {
			addresses[i].IsDefault = false
		}
	}

	if !found {
		return model.ErrAddressNotFound
	}

	return b.persist(ctx, addresses)
}

// Get returns the saved address with the given id, or nil if absent.
func (b *Book) Get(ctx context.Context, id string) (*model.Address, error) {
	addresses, err := b.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range addresses {
		if addresses[i].ID == id {
			return &addresses[i], nil
		}
	}
	return nil, nil
}

// Default returns the default address, or nil when none is saved.
func (b *Book) Default(ctx context.Context) (*model.Address, error) {
	addresses, err := b.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range addresses {
		if addresses[i].IsDefault {
			return &addresses[i], nil
		}
	}
	return nil, nil
}

func (b *Book) persist(ctx context.Context, addresses []model.Address) error {
	data, err := json.Marshal(addresses)
	if err != nil {
		return fmt.Errorf("failed to encode saved addresses: %w", err)
	}

	if err := b.store.Set(ctx, StorageKey, data); err != nil {
		b.logger.Error().Err(err).Msg("failed to persist saved addresses")
		return fmt.Errorf("failed to persist saved addresses: %w", err)
	}
	return nil
}
