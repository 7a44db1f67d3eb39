// Package objectstore defines the interface between the hetensor services
// and chunk-level persistent state. The aggregation service uses it to
// persist the independently-serialized ciphertext chunks of the tensors it
// receives, keyed by their chunk id (see hetensor.TensorID.ChunkID).
package objectstore

import (
	"encoding"
	"fmt"
)

// Config represents the ObjectStore configuration.
type Config struct {
	BackendName string // BackendName is a string defining the ObjectStore implementation to use.
	DBPath      string
}

// ObjectStore is an interface to store and retrieve chunk-level data.
// Implementations must be safe for concurrent use, as chunks of a tensor
// are stored and loaded in parallel.
type ObjectStore interface {
	// Store stores the binary-serializable object into the ObjectStore,
	// indexing it with the string objectID.
	Store(objectID string, object encoding.BinaryMarshaler) error

	// Load loads the binary-deserializable object from the ObjectStore
	// indexed with the string objectID. The result is loaded directly
	// into object.
	Load(objectID string, object encoding.BinaryUnmarshaler) error

	// IsPresent checks if the object indexed with the string objectID is
	// present in the ObjectStore.
	IsPresent(objectID string) (bool, error)

	// Delete removes the object indexed with the string objectID, if
	// present.
	Delete(objectID string) error

	// Close releases the resources allocated by the ObjectStore.
	Close() error
}

// NewObjectStoreFromConfig creates an ObjectStore from the given config.
func NewObjectStoreFromConfig(config Config) (objs ObjectStore, err error) {
	switch config.BackendName {
	case "null":
		objs = NewNullObjectStore()
	case "mem":
		objs = NewMemObjectStore()
	case "badgerdb":
		if objs, err = NewBadgerObjectStore(config); err != nil {
			return nil, err
		}
	case "hybrid":
		if objs, err = NewHybridObjectStore(config); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("config must specify an object store backend")
	}
	return
}
