package utils

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Argon2Params réglages Argon2id. Les valeurs sont recopiées dans chaque hash,
// un changement n'invalide donc pas les comptes existants.
type Argon2Params struct {
	Time    uint32
	Memory  uint32 // KiB
	Threads uint8
	KeyLen  uint32
	SaltLen uint32
}

// DefaultArgon2 ~15-20ms par login
var DefaultArgon2 = Argon2Params{
	Time:    1,
	Memory:  32 * 1024,
	Threads: 4,
	KeyLen:  32,
	SaltLen: 16,
}

var ErrInvalidHash = errors.New("hash invalide")

const argon2Prefix = "$argon2id$"

// HashPassword hash un mot de passe avec les paramètres par défaut
func HashPassword(password string) (string, error) {
	return DefaultArgon2.Hash(password)
}

// Hash format : $argon2id$v=19$m=32768,t=1,p=4$salt$hash
func (p Argon2Params) Hash(password string) (string, error) {
	salt := make([]byte, p.SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	key := argon2.IDKey([]byte(password), salt, p.Time, p.Memory, p.Threads, p.KeyLen)

	return fmt.Sprintf("%sv=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2Prefix, argon2.Version, p.Memory, p.Time, p.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key)), nil
}

// VerifyPassword compare en temps constant. Un hash illisible renvoie ErrInvalidHash.
func VerifyPassword(password, encoded string) (bool, error) {
	if !IsArgon2Hash(encoded) {
		return false, ErrInvalidHash
	}

	parts := strings.Split(encoded, "$")
	if len(parts) != 6 {
		return false, ErrInvalidHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return false, ErrInvalidHash
	}

	var p Argon2Params
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.Memory, &p.Time, &p.Threads); err != nil {
		return false, ErrInvalidHash
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, ErrInvalidHash
	}
	want, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false, ErrInvalidHash
	}

	got := argon2.IDKey([]byte(password), salt, p.Time, p.Memory, p.Threads, uint32(len(want)))
	return subtle.ConstantTimeCompare(want, got) == 1, nil
}

func IsArgon2Hash(hash string) bool {
	return strings.HasPrefix(hash, argon2Prefix)
}
