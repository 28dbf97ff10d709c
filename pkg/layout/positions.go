package layout

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// MarshalPositions converts positions to pretty-printed JSON bytes.
// Keys are emitted in sorted order.
func MarshalPositions(pos Positions) ([]byte, error) {
	return json.MarshalIndent(pos, "", "  ")
}

// UnmarshalPositions deserializes JSON bytes into positions.
func UnmarshalPositions(data []byte) (Positions, error) {
	var pos Positions
	if err := json.Unmarshal(data, &pos); err != nil {
		return nil, fmt.Errorf("unmarshal positions: %w", err)
	}
	return pos, nil
}

// WritePositions writes positions as JSON to an io.Writer.
func WritePositions(pos Positions, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(pos); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WritePositionsFile writes positions to a JSON file.
// The file is created with 0644 permissions.
func WritePositionsFile(pos Positions, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WritePositions(pos, f)
}

// ReadPositions decodes JSON positions from an io.Reader.
func ReadPositions(r io.Reader) (Positions, error) {
	var pos Positions
	if err := json.NewDecoder(r).Decode(&pos); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return pos, nil
}

// ReadPositionsFile reads a JSON file and returns the decoded positions.
func ReadPositionsFile(path string) (Positions, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadPositions(f)
}
