package objectstore

import (
	"encoding"
	"fmt"
)

// nullObjectStore is a type implementing the objectstore.ObjectStore
// interface with a NULL backend. It is used by nodes that do not need to
// retain the chunks they process.
type nullObjectStore struct{}

// NewNullObjectStore creates a new null ObjectStore instance.
func NewNullObjectStore() *nullObjectStore {
	return &nullObjectStore{}
}

func (objstore *nullObjectStore) Store(objectID string, object encoding.BinaryMarshaler) error {
	return nil
}

func (objstore *nullObjectStore) Load(objectID string, object encoding.BinaryUnmarshaler) error {
	return fmt.Errorf("Load: ObjectStore backend is NULL")
}

func (objstore *nullObjectStore) IsPresent(objectID string) (bool, error) {
	return false, nil
}

func (objstore *nullObjectStore) Delete(objectID string) error {
	return nil
}

func (objstore *nullObjectStore) Close() error { return nil }
