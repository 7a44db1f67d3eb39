// Package utils defines a set of utility functions and types used across the hetensor project.
package utils

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/tuneinsight/lattigo/v5/core/rlwe"
)

// Set is a set of elements of type T.
// Set is not safe for concurrent use.
type Set[T comparable] map[T]struct{}

// NewSet creates a new set with the elements els.
func NewSet[T comparable](els []T) Set[T] {
	s := make(Set[T], len(els))
	for _, el := range els {
		s[el] = struct{}{}
	}
	return s
}

// SPrintDebugCiphertext is a debug function for obtaining a
// short string representation of a ciphertext by hashing its
// binary representation.
func SPrintDebugCiphertext(ct rlwe.Ciphertext) string {
	if ct.Value == nil {
		return "nil"
	}
	return getSha256Hex(ct.MarshalBinary())
}

func getSha256Hex(b []byte, _ error) string {
	return fmt.Sprintf("%x", sha256.Sum256(b))
}

// MarshalJSONToFile attempts to write s to a file with file name filename,
// by calling the json.Marshal function.
func MarshalJSONToFile(s interface{}, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("could not open file: %w", err)
	}

	marshalled, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("could not marshal object: %w", err)
	}

	_, err = file.Write(marshalled)
	if err != nil {
		return fmt.Errorf("could not write to file: %w", err)
	}

	return file.Close()
}

// UnmarshalJSONFromFile attempts to load a json file with name filename,
// and to decode its content into s by calling the json.Unmarshal function.
func UnmarshalJSONFromFile(filename string, s interface{}) error {
	confFile, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("could not open file: %w", err)
	}

	cb, err := io.ReadAll(confFile)
	if err != nil {
		return fmt.Errorf("could not read file: %w", err)
	}

	err = json.Unmarshal(cb, s)
	if err != nil {
		return fmt.Errorf("could not parse the file: %w", err)
	}

	return nil
}

// ByteCountSI returns a string representation of a byte count b,
// by formatting it as a SI value.
func ByteCountSI(b uint64) string {
	const unit = 1000
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := int64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB",
		float64(b)/float64(div), "kMGTPE"[exp])
}
