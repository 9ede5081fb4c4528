package radio

import (
	"crypto/sha1"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

// WPA2-Personal key derivation parameters.
const (
	pskIterations = 4096
	pskLen        = 32

	MinPassphraseLen = 8
	MaxPassphraseLen = 63
)

// ErrInvalidPassphrase is returned for a passphrase that is neither
// 8..63 printable ASCII characters nor a 64 digit hex key.
var ErrInvalidPassphrase = errors.New("invalid passphrase")

// DerivePSK returns the pre-shared key a station and access point agree on
// for ssid. passphrase may also be the key itself as 64 hex digits.
// An empty passphrase denotes an open network and yields a nil key.
func DerivePSK(ssid, passphrase string) ([]byte, error) {
	if passphrase == "" {
		return nil, nil
	}
	if len(passphrase) == 2*pskLen {
		if key, err := hex.DecodeString(passphrase); err == nil {
			return key, nil
		}
	}
	if err := ValidatePassphrase(passphrase); err != nil {
		return nil, err
	}
	return pbkdf2.Key([]byte(passphrase), []byte(ssid), pskIterations, pskLen, sha1.New), nil
}

// ValidatePassphrase checks that passphrase is usable with DerivePSK.
func ValidatePassphrase(passphrase string) error {
	if passphrase == "" {
		return nil
	}
	if len(passphrase) == 2*pskLen {
		if _, err := hex.DecodeString(passphrase); err == nil {
			return nil
		}
	}
	if len(passphrase) < MinPassphraseLen || len(passphrase) > MaxPassphraseLen {
		return fmt.Errorf("%w: length %d outside %d..%d", ErrInvalidPassphrase, len(passphrase), MinPassphraseLen, MaxPassphraseLen)
	}
	for i := 0; i < len(passphrase); i++ {
		if c := passphrase[i]; c < 0x20 || c > 0x7e {
			return fmt.Errorf("%w: non-printable character at %d", ErrInvalidPassphrase, i)
		}
	}
	return nil
}

// keysMatch reports whether a join with passphrase would authenticate to n.
func keysMatch(n Network, passphrase string) bool {
	want, err := DerivePSK(n.SSID, n.Password)
	if err != nil {
		return false
	}
	got, err := DerivePSK(n.SSID, passphrase)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare(want, got) == 1
}
