// Package identity maps client devices to opaque anonymous user tokens.
//
// Mobile clients that never sign in still need a stable identity for voting.
// The first request from a device mints an "anon_<uuid>" token, persists it,
// and every later request from that device resolves to the same token.
package identity

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// AnonPrefix marks user ids that were minted for a device.
const AnonPrefix = "anon_"

// MaxDeviceIDLen bounds the accepted device id length.
const MaxDeviceIDLen = 128

// ErrInvalidDeviceID is returned for empty or oversized device ids.
var ErrInvalidDeviceID = errors.New("invalid device id")

// Provider resolves a device id to a persisted anonymous user id.
type Provider interface {
	Resolve(ctx context.Context, deviceID string) (string, error)
}

// Store is the persistence the KV provider needs. repo.KVStore implements it.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	SetIfAbsent(ctx context.Context, key, value string) (string, error)
}

// KVProvider is a Provider backed by a key-value Store.
type KVProvider struct {
	store Store
	newID func() string
}

// NewKVProvider returns a Provider that keeps device tokens in store.
func NewKVProvider(store Store) *KVProvider {
	return &KVProvider{
		store: store,
		newID: func() string { return AnonPrefix + uuid.NewString() },
	}
}

// Resolve returns the token for deviceID, minting and persisting one on first
// use. Concurrent first requests converge on whichever token was stored first.
func (p *KVProvider) Resolve(ctx context.Context, deviceID string) (string, error) {
	deviceID = strings.TrimSpace(deviceID)
	if deviceID == "" || len(deviceID) > MaxDeviceIDLen {
		return "", ErrInvalidDeviceID
	}
	key := storeKey(deviceID)

	if id, ok, err := p.store.Get(ctx, key); err != nil {
		return "", err
	} else if ok {
		return id, nil
	}

	id, err := p.store.SetIfAbsent(ctx, key, p.newID())
	if err != nil {
		return "", err
	}
	log.Debug().Str("component", "identity").Msg("minted anonymous identity")
	return id, nil
}

// IsAnonymous reports whether userID was minted for a device.
func IsAnonymous(userID string) bool {
	return strings.HasPrefix(userID, AnonPrefix)
}

func storeKey(deviceID string) string { return "device:" + deviceID }
