package crypto

import (
	"fmt"

	"github.com/LerianStudio/lib-crypto/crypto/log"
	"github.com/caarlos0/env/v9"
)

// EnvConfig carries the cipher secrets through environment variables, the
// only configuration channel this library reads. Keys and nonces are
// hex-encoded; sizes are validated by InitializeCipher, not here.
type EnvConfig struct {
	EncryptSecretKey string `env:"CIPHER_SECRET_KEY,required"`
	EncryptNonce     string `env:"CIPHER_SECRET_NONCE,required"`
	HashSecretKey    string `env:"CIPHER_HASH_SECRET_KEY"`
}

// FromEnv builds an initialized Crypto from environment variables. The
// logger may be nil.
func FromEnv(logger log.Logger) (*Crypto, error) {
	cfg := EnvConfig{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse cipher environment: %w", err)
	}

	c := &Crypto{
		HashSecretKey:    cfg.HashSecretKey,
		EncryptSecretKey: cfg.EncryptSecretKey,
		EncryptNonce:     cfg.EncryptNonce,
		Logger:           logger,
	}

	if err := c.InitializeCipher(); err != nil {
		return nil, err
	}

	return c, nil
}
