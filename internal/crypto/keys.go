package crypto

import (
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/argon2"
)

// Параметры Argon2id для деривации ключа из passphrase
const (
	// Argon2Time количество итераций (time cost)
	Argon2Time = 1
	// Argon2Memory объем памяти в KB (64MB)
	Argon2Memory = 64 * 1024
	// Argon2Threads количество параллельных потоков
	Argon2Threads = 4
	// KeyLen длина выходного ключа в байтах
	KeyLen = 32
	// SaltSize размер соли в байтах
	SaltSize = 32
)

// GenerateSalt генерирует криптографически случайную соль
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	return salt, nil
}

// DeriveKey derives the data encryption key from a passphrase and the
// salt stored next to the encrypted payload. Argon2id with the same
// inputs always yields the same key.
func DeriveKey(passphrase string, salt []byte) ([]byte, error) {
	if passphrase == "" {
		return nil, fmt.Errorf("passphrase cannot be empty")
	}
	if len(salt) != SaltSize {
		return nil, fmt.Errorf("salt must be %d bytes, got %d", SaltSize, len(salt))
	}
	return argon2.IDKey([]byte(passphrase), salt, Argon2Time, Argon2Memory, Argon2Threads, KeyLen), nil
}
