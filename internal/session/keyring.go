package session

import (
	"errors"

	"github.com/zalando/go-keyring"
)

const tokenKey = "api-token"

// KeyringStore persists the bearer token in the OS keychain.
type KeyringStore struct {
	serviceName string
}

func NewKeyringStore(serviceName string) *KeyringStore {
	if serviceName == "" {
		serviceName = ServiceName
	}
	return &KeyringStore{serviceName: serviceName}
}

func (k *KeyringStore) SetToken(token string) error {
	return keyring.Set(k.serviceName, tokenKey, token)
}

func (k *KeyringStore) GetToken() (string, error) {
	token, err := keyring.Get(k.serviceName, tokenKey)
	if err == nil {
		return token, nil
	}
	if errors.Is(err, keyring.ErrNotFound) {
		return "", ErrNotLoggedIn
	}
	return "", err
}

func (k *KeyringStore) DeleteToken() error {
	err := keyring.Delete(k.serviceName, tokenKey)
	if errors.Is(err, keyring.ErrNotFound) {
		return ErrNotLoggedIn
	}
	return err
}
