package configuration

import (
	"strings"

	"github.com/ajitpratap0/comconfig/pkg/cfgerrors"
)

// InstanceSpecifier names one deployed service instance, for example
// "abs/radar". The zero value is not a valid specifier; use
// NewInstanceSpecifier.
type InstanceSpecifier struct {
	value string
}

// NewInstanceSpecifier validates s as a shortname path: one or more
// segments of [A-Za-z0-9_] separated by '/', optionally starting with '/'.
func NewInstanceSpecifier(s string) (InstanceSpecifier, error) {
	invalid := func(reason string) error {
		return cfgerrors.New(cfgerrors.ErrorTypeInvariant, "invalid instance specifier: "+reason).
			WithDetail("instance_specifier", s)
	}

	if s == "" {
		return InstanceSpecifier{}, invalid("empty")
	}
	for i := 0; i < len(s); i++ {
		if !isShortnameChar(s[i]) {
			return InstanceSpecifier{}, invalid("illegal character")
		}
	}
	if strings.HasSuffix(s, "/") {
		return InstanceSpecifier{}, invalid("trailing '/'")
	}
	if strings.Contains(s, "//") {
		return InstanceSpecifier{}, invalid("empty path segment")
	}
	return InstanceSpecifier{value: s}, nil
}

func isShortnameChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '_', c == '/':
		return true
	}
	return false
}

func (s InstanceSpecifier) String() string {
	return s.value
}

// MarshalText renders the specifier string so it can key JSON and YAML maps.
func (s InstanceSpecifier) MarshalText() ([]byte, error) {
	return []byte(s.value), nil
}
