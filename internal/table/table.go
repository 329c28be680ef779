// Package table holds the single source of truth for table numbers:
// the valid range, the scanned-QR resolver, and the QR payload builder
// all share one rule.
package table

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Tables are numbered 1..29. The bound is exclusive on both ends of
// (0, 30).
const maxTable = 30

var (
	ErrInvalidScan = errors.New("invalid table code")
	ErrOutOfRange  = errors.New("table number out of range")
)

// Validate checks a table number against the shared range rule.
func Validate(n int) error {
	if n <= 0 || n >= maxTable {
		return ErrOutOfRange
	}
	return nil
}

// Resolve extracts the table number from a scanned QR payload, a URL
// carrying a "table" query parameter. Any failure - unparseable URL,
// missing parameter, non-integer value, out-of-range number - yields
// ErrInvalidScan; the diner is simply prompted to rescan.
func Resolve(scannedURL string) (int, error) {
	u, err := url.Parse(scannedURL)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidScan, err)
	}

	raw := u.Query().Get("table")
	if raw == "" {
		return 0, fmt.Errorf("%w: missing table parameter", ErrInvalidScan)
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: table %q is not a number", ErrInvalidScan, raw)
	}

	if err := Validate(n); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidScan, err)
	}

	return n, nil
}

// QRPayload builds the URL encoded into a table's QR code.
func QRPayload(frontendBaseURL string, n int) (string, error) {
	if err := Validate(n); err != nil {
		return "", err
	}
	return strings.TrimRight(frontendBaseURL, "/") + "/?table=" + strconv.Itoa(n), nil
}
