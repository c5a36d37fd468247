package errors

import (
	"strings"
	"unicode"
)

// ValidateHost validates a viewer service host for use in request URLs.
//
// The host is a bare address or hostname, optionally with a port
// ("159.89.136.108", "localhost:8080"). The validation rules are:
//   - Host cannot be empty
//   - No scheme prefix (http://, https://)
//   - No path, query or fragment
//   - No whitespace or control characters
func ValidateHost(host string) error {
	if host == "" {
		return New(ErrCodeInvalidHost, "host cannot be empty")
	}

	if strings.Contains(host, "://") {
		return New(ErrCodeInvalidHost, "host must not include a scheme: %q", host)
	}

	for _, r := range host {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidHost, "host contains invalid characters: %q", host)
		}
	}

	if strings.ContainsAny(host, "/?#\\") {
		return New(ErrCodeInvalidHost, "host must not include a path: %q", host)
	}

	return nil
}

// ValidateNodeName validates a node name read from a graph description.
// Names may repeat, but they must be non-empty and free of control characters
// other than tab.
func ValidateNodeName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "node name cannot be empty")
	}

	for _, r := range name {
		if r != '\t' && unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "node name contains invalid control characters: %q", name)
		}
	}

	return nil
}
