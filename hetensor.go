// Package hetensor provides the main types for the hetensor framework.
//
// Hetensor is a chunked-tensor layer over the lattigo homomorphic-encryption
// library: it lets callers encode, encrypt, evaluate and ship numeric vectors
// whose length exceeds the slot capacity of a single ciphertext, by lifting
// every scalar-scheme operation over an ordered sequence of independent
// chunks. The core batching logic lives in the tensor package; the scheme
// package wraps the scalar lattigo primitives; the transport and objectstore
// packages move and persist chunked ciphertexts; the services/aggregation
// package implements secure-aggregation on top of them.
package hetensor

import "fmt"

// NodeID is the unique identifier of a node.
type NodeID string

// TensorID is the unique identifier of a ciphertext tensor within the
// framework. Chunk-level storage and transport keys are derived from it.
type TensorID string

// NodeAddress is the network address of a node.
type NodeAddress string

// NodeInfo contains the unique identifier and the network address of a node.
type NodeInfo struct {
	NodeID
	NodeAddress
}

// NodesList is a list of known nodes in the network. It must contain all
// nodes for a given deployment, including the current node. It does not need
// to contain an address for all nodes, except for the aggregator node.
type NodesList []NodeInfo

// AddressOf returns the network address of the node with the given ID. Returns
// an empty string if the node is not found in the list.
func (nl NodesList) AddressOf(id NodeID) NodeAddress {
	for _, node := range nl {
		if node.NodeID == id {
			return node.NodeAddress
		}
	}
	return ""
}

// String returns a string representation of the list of nodes.
func (nl NodesList) String() string {
	str := "[ "
	for _, node := range nl {
		str += fmt.Sprintf(`{ID: %s, Address: %s} `,
			node.NodeID, node.NodeAddress)
	}
	return str + "]"
}

// String returns a string representation of the node address.
func (na NodeAddress) String() string {
	return string(na)
}

// ChunkID returns the identifier of the i-th chunk of the tensor. It is
// used as storage and transport key for the independently-serialized
// ciphertext chunks.
func (tid TensorID) ChunkID(i int) string {
	return fmt.Sprintf("%s/chunk-%04d", tid, i)
}

// MetaID returns the identifier under which the tensor-level metadata is
// stored.
func (tid TensorID) MetaID() string {
	return fmt.Sprintf("%s/meta", tid)
}
