package output

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Amr-9/MintHunter/internal/log"
	"github.com/Amr-9/MintHunter/pkg/generator"
)

const txtGeneratedAt = "# Generated at: "

// Writer saves outcomes to disk.
type Writer struct {
	// Now returns the timestamp used for created_at and default file names.
	Now func() time.Time
}

// NewWriter returns a Writer using the wall clock.
func NewWriter() *Writer {
	return &Writer{Now: time.Now}
}

// Save writes outcomes labelled with suffix in the given format. When path
// is empty a default name is derived from suffix and the current time. It
// returns the path written. An unsupported format fails before any file is
// created.
func (w *Writer) Save(outcomes []generator.Outcome, suffix string, format Format, path string) (string, error) {
	if format != FormatJSON && format != FormatTXT {
		return "", fmt.Errorf("%w: %s. Use 'json' or 'txt'", ErrUnsupportedFormat, format)
	}

	now := w.Now()
	if path == "" {
		path = DefaultPath(suffix, format, now)
	}
	records := NewRecords(outcomes, suffix, now)

	var data []byte
	if format == FormatJSON {
		content, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return "", &WriteError{Path: path, Err: err}
		}
		data = append(content, '\n')
	} else {
		data = encodeTXT(records, suffix, now)
	}

	// Private keys inside, keep the file owner-only.
	if err := os.WriteFile(path, data, 0600); err != nil {
		return "", &WriteError{Path: path, Err: err}
	}
	log.Debug("saved addresses", "path", path, "count", len(records), "format", format)
	return path, nil
}

func encodeTXT(records []Record, suffix string, now time.Time) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# Solana Mint Addresses - Generated with suffix '%s'\n", suffix)
	fmt.Fprintf(&buf, "%s%s\n", txtGeneratedAt, now.UTC().Format(time.RFC3339))
	buf.WriteString("# Format: public_key,private_key,suffix_type\n")
	buf.WriteString("\n")
	for _, r := range records {
		fmt.Fprintf(&buf, "%s,%s,%s\n", r.PubKey, r.PrivateKey, r.SuffixType)
	}
	return buf.Bytes()
}

// Load reads a file written by Save. JSON is detected by the .json
// extension or a leading '['; anything else is parsed as text.
func Load(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(data)
	if strings.EqualFold(filepath.Ext(path), ".json") || bytes.HasPrefix(trimmed, []byte("[")) {
		var records []Record
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		return records, nil
	}
	return decodeTXT(path, data)
}

func decodeTXT(path string, data []byte) ([]Record, error) {
	var (
		records   []Record
		createdAt string
		lineNo    int
	)

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, txtGeneratedAt) {
			createdAt = strings.TrimPrefix(line, txtGeneratedAt)
			continue
		}
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, ",")
		if len(fields) != 3 {
			return nil, fmt.Errorf("parse %s:%d: want 3 comma-separated fields, got %d", path, lineNo, len(fields))
		}
		records = append(records, Record{
			PubKey:     fields[0],
			PrivateKey: fields[1],
			SuffixType: fields[2],
			CreatedAt:  createdAt,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return records, nil
}
