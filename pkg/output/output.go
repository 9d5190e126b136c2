// Package output persists found vanity keypairs as JSON or text files and
// reads them back.
package output

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lestrrat-go/strftime"

	"github.com/Amr-9/MintHunter/pkg/generator"
	"github.com/Amr-9/MintHunter/pkg/generator/solana"
)

// ErrUnsupportedFormat is returned for any format other than json or txt.
var ErrUnsupportedFormat = errors.New("unsupported format")

// Format is an output file format.
type Format string

const (
	FormatJSON Format = "json"
	FormatTXT  Format = "txt"
)

// ParseFormat parses a case-insensitive format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatTXT:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %s. Use 'json' or 'txt'", ErrUnsupportedFormat, s)
	}
}

// WriteError reports a storage failure while persisting results.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Record is one persisted address.
type Record struct {
	PubKey     string `json:"pub_key"`
	PrivateKey string `json:"private_key"`
	SuffixType string `json:"suffix_type"`
	CreatedAt  string `json:"created_at"`
}

// NewRecords converts search outcomes into records labelled with suffix.
func NewRecords(outcomes []generator.Outcome, suffix string, now time.Time) []Record {
	createdAt := now.UTC().Format(time.RFC3339)
	records := make([]Record, 0, len(outcomes))
	for _, o := range outcomes {
		records = append(records, Record{
			PubKey:     o.Address,
			PrivateKey: solana.EncodePrivateKey(o.Keypair),
			SuffixType: suffix,
			CreatedAt:  createdAt,
		})
	}
	return records
}

var fileTimestamp = mustStrftime("%Y%m%d_%H%M%S")

func mustStrftime(pattern string) *strftime.Strftime {
	f, err := strftime.New(pattern)
	if err != nil {
		panic(err)
	}
	return f
}

// DefaultPath returns the file name used when no output path is given,
// e.g. pump_addresses_20250101_120000.json.
func DefaultPath(suffix string, format Format, now time.Time) string {
	return fmt.Sprintf("%s_addresses_%s.%s", suffix, fileTimestamp.FormatString(now.UTC()), format)
}
