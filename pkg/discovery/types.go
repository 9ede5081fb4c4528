package discovery

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Service constants.
const (
	// ServiceTypeHTTP is the DNS-SD type the device is announced under.
	ServiceTypeHTTP = "_http._tcp"

	// Domain is the mDNS domain.
	Domain = "local"

	// DefaultPort is the announced HTTP port.
	DefaultPort = 80

	// DefaultTTL is the DNS record TTL.
	DefaultTTL = 120 * time.Second

	// MaxInstanceNameLen is the DNS label limit.
	MaxInstanceNameLen = 63
)

// TXT record keys.
const (
	TXTKeyHostname = "hostname"
	TXTKeyPath     = "path"
	TXTKeyBootID   = "boot"
	TXTKeyVersion  = "ver"
)

// Discovery errors.
var (
	ErrInvalidHostname = errors.New("invalid hostname")
	ErrNotRegistered   = errors.New("not registered")
)

// TXTRecordMap is a map of TXT record key-value pairs.
type TXTRecordMap map[string]string

// TXTRecordsToStrings converts a TXTRecordMap to "key=value" strings,
// sorted by key so announcements are stable.
func TXTRecordsToStrings(txt TXTRecordMap) []string {
	keys := make([]string, 0, len(txt))
	for k := range txt {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	result := make([]string, 0, len(txt))
	for _, k := range keys {
		result = append(result, fmt.Sprintf("%s=%s", k, txt[k]))
	}
	return result
}

// StringsToTXTRecords parses "key=value" strings into a TXTRecordMap.
func StringsToTXTRecords(strs []string) TXTRecordMap {
	txt := make(TXTRecordMap)
	for _, s := range strs {
		parts := strings.SplitN(s, "=", 2)
		if len(parts) == 2 {
			txt[parts[0]] = parts[1]
		} else if len(parts) == 1 && parts[0] != "" {
			// Key without value (boolean flag)
			txt[parts[0]] = ""
		}
	}
	return txt
}

// ValidateHostname checks that name is usable as a single mDNS label:
// 1 to 63 characters of letters, digits and inner hyphens.
func ValidateHostname(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidHostname)
	}
	if len(name) > MaxInstanceNameLen {
		return fmt.Errorf("%w: %d characters exceeds %d", ErrInvalidHostname, len(name), MaxInstanceNameLen)
	}
	if name[0] == '-' || name[len(name)-1] == '-' {
		return fmt.Errorf("%w: %q starts or ends with a hyphen", ErrInvalidHostname, name)
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
		default:
			return fmt.Errorf("%w: %q contains %q", ErrInvalidHostname, name, r)
		}
	}
	return nil
}
