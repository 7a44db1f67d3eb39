// Package aggregation implements a secure-aggregation service over
// ciphertext tensors. Participants encrypt their model updates under a
// common public key and ship them to an aggregator node, which sums the
// received tensors without decrypting them. The aggregator persists the
// chunks it receives in an object store, so that an interrupted round can
// be resumed.
package aggregation

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/ChristianMct/hetensor"
	"github.com/ChristianMct/hetensor/objectstore"
	"github.com/ChristianMct/hetensor/scheme"
	"github.com/ChristianMct/hetensor/tensor"
	"github.com/ChristianMct/hetensor/transport"
	"github.com/ChristianMct/hetensor/utils"
	"github.com/tuneinsight/lattigo/v5/core/rlwe"
	"gonum.org/v1/gonum/floats"
)

// Config is the configuration of an aggregation service.
type Config struct {
	ID          hetensor.NodeID
	Address     hetensor.NodeAddress
	ObjectStore objectstore.Config
}

// LoadConfigFromFile loads a service configuration from a JSON file.
func LoadConfigFromFile(filename string) (Config, error) {
	var config Config
	err := utils.UnmarshalJSONFromFile(filename, &config)
	return config, err
}

// tensorMeta is the per-tensor metadata kept alongside the chunks. It is
// persisted in the object store under TensorID.MetaID, so that a restarted
// service can serve the tensors received before the interruption.
type tensorMeta struct {
	LogicalLen int
	Chunks     int
}

func (m tensorMeta) MarshalBinary() ([]byte, error) {
	return json.Marshal(m)
}

func (m *tensorMeta) UnmarshalBinary(b []byte) error {
	return json.Unmarshal(b, m)
}

// Service is the aggregator-side of the aggregation protocol. It implements
// the transport.TensorHandler interface, so it can be plugged directly into
// a transport.TensorServer.
type Service struct {
	config Config
	sc     *scheme.Context
	store  objectstore.ObjectStore
	eval   *tensor.Evaluator
	ecd    *tensor.Encoder

	mu      sync.RWMutex
	tensors map[hetensor.TensorID]tensorMeta
}

// NewService creates a new aggregation service for the given configuration
// and scheme context. The aggregator operates on ciphertexts only, so no
// key material is required beyond the context.
func NewService(config Config, sc *scheme.Context, opts ...tensor.Option) (*Service, error) {
	store, err := objectstore.NewObjectStoreFromConfig(config.ObjectStore)
	if err != nil {
		return nil, fmt.Errorf("could not create object store: %w", err)
	}

	return &Service{
		config:  config,
		sc:      sc,
		store:   store,
		eval:    tensor.NewEvaluator(scheme.NewEvaluator(sc, nil), opts...),
		ecd:     tensor.NewEncoder(scheme.NewEncoder(sc), opts...),
		tensors: make(map[hetensor.TensorID]tensorMeta),
	}, nil
}

// Close releases the resources held by the service.
func (s *Service) Close() error {
	return s.store.Close()
}

// PutTensor implements transport.TensorHandler. The received tensor is
// validated against the scheme context and persisted chunk by chunk. A
// tensor that fails validation is rejected as a whole.
func (s *Service) PutTensor(_ context.Context, t transport.Tensor) error {
	ct, err := tensor.UnmarshalChunks(s.sc, t.Chunks)
	if err != nil {
		return fmt.Errorf("invalid tensor %s: %w", t.ID, err)
	}
	return s.storeTensor(t.ID, ct, t.LogicalLen)
}

// GetTensor implements transport.TensorHandler.
func (s *Service) GetTensor(_ context.Context, id hetensor.TensorID) (*transport.Tensor, error) {
	meta, has := s.getMeta(id)
	if !has {
		return nil, fmt.Errorf("no tensor with id %s", id)
	}

	ct, err := s.loadTensor(id, meta)
	if err != nil {
		return nil, err
	}
	bufs, err := ct.MarshalChunks()
	if err != nil {
		return nil, fmt.Errorf("could not serialize tensor %s: %w", id, err)
	}
	return &transport.Tensor{ID: id, LogicalLen: meta.LogicalLen, Chunks: bufs}, nil
}

// Has reports whether the service holds a tensor with the given id.
func (s *Service) Has(id hetensor.TensorID) bool {
	_, has := s.getMeta(id)
	return has
}

// getMeta returns the metadata of a received tensor. The in-memory map is
// lost on restart, so a miss falls back to the metadata persisted in the
// object store.
func (s *Service) getMeta(id hetensor.TensorID) (tensorMeta, bool) {
	s.mu.RLock()
	meta, has := s.tensors[id]
	s.mu.RUnlock()
	if has {
		return meta, true
	}

	if present, err := s.store.IsPresent(id.MetaID()); err != nil || !present {
		return tensorMeta{}, false
	}
	if err := s.store.Load(id.MetaID(), &meta); err != nil {
		return tensorMeta{}, false
	}
	s.mu.Lock()
	s.tensors[id] = meta
	s.mu.Unlock()
	return meta, true
}

func (s *Service) storeTensor(id hetensor.TensorID, ct *tensor.Ciphertext, logicalLen int) error {
	for i := 0; i < ct.Len(); i++ {
		if err := s.store.Store(id.ChunkID(i), ct.Chunk(i)); err != nil {
			return fmt.Errorf("could not store chunk %d of %s: %w", i, id, err)
		}
	}
	meta := tensorMeta{LogicalLen: logicalLen, Chunks: ct.Len()}
	if err := s.store.Store(id.MetaID(), meta); err != nil {
		return fmt.Errorf("could not store metadata of %s: %w", id, err)
	}
	s.mu.Lock()
	s.tensors[id] = meta
	s.mu.Unlock()
	s.Logf("stored tensor %s (%d chunks, %d values)", id, ct.Len(), logicalLen)
	return nil
}

func (s *Service) loadTensor(id hetensor.TensorID, meta tensorMeta) (*tensor.Ciphertext, error) {
	chunks := make([]*rlwe.Ciphertext, meta.Chunks)
	for i := range chunks {
		ct := new(rlwe.Ciphertext)
		if err := s.store.Load(id.ChunkID(i), ct); err != nil {
			return nil, fmt.Errorf("could not load chunk %d of %s: %w", i, id, err)
		}
		chunks[i] = ct
	}
	return tensor.NewCiphertext(s.sc, chunks), nil
}

// aggregate sums the listed tensors. All tensors must have been received
// and must encode the same number of values.
func (s *Service) aggregate(ids []hetensor.TensorID) (*tensor.Ciphertext, int, error) {
	if len(ids) == 0 {
		return nil, 0, fmt.Errorf("empty tensor list")
	}
	if len(utils.NewSet(ids)) != len(ids) {
		return nil, 0, fmt.Errorf("duplicate tensor id in list")
	}

	logicalLen := -1
	ts := make([]*tensor.Ciphertext, len(ids))
	for i, id := range ids {
		meta, has := s.getMeta(id)
		if !has {
			return nil, 0, fmt.Errorf("no tensor with id %s", id)
		}
		if logicalLen == -1 {
			logicalLen = meta.LogicalLen
		}
		if meta.LogicalLen != logicalLen {
			return nil, 0, fmt.Errorf("tensor %s encodes %d values, expected %d", id, meta.LogicalLen, logicalLen)
		}

		var err error
		if ts[i], err = s.loadTensor(id, meta); err != nil {
			return nil, 0, err
		}
	}

	agg, err := s.eval.AddMany(ts)
	if err != nil {
		return nil, 0, fmt.Errorf("could not sum tensors: %w", err)
	}
	return agg, logicalLen, nil
}

// Aggregate sums the listed tensors and stores the result under outID. The
// stored result can then be fetched over the transport like any received
// tensor.
func (s *Service) Aggregate(_ context.Context, outID hetensor.TensorID, ids []hetensor.TensorID) error {
	agg, logicalLen, err := s.aggregate(ids)
	if err != nil {
		return err
	}
	s.Logf("aggregated %d tensors into %s", len(ids), outID)
	return s.storeTensor(outID, agg, logicalLen)
}

// AggregateAverage sums the listed tensors, scales the sum by the inverse
// of the number of contributions and stores the result under outID.
func (s *Service) AggregateAverage(_ context.Context, outID hetensor.TensorID, ids []hetensor.TensorID) error {
	agg, logicalLen, err := s.aggregate(ids)
	if err != nil {
		return err
	}

	weights := make([]float64, agg.Len()*s.sc.Slots())
	floats.AddConst(1/float64(len(ids)), weights)
	wpt, err := s.ecd.Encode(weights)
	if err != nil {
		return fmt.Errorf("could not encode weights: %w", err)
	}

	avg, err := s.eval.MulPlain(agg, wpt)
	if err != nil {
		return fmt.Errorf("could not scale aggregate: %w", err)
	}

	s.Logf("averaged %d tensors into %s", len(ids), outID)
	return s.storeTensor(outID, avg, logicalLen)
}

func (s *Service) Logf(msg string, v ...any) {
	log.Printf("%s | [Aggregation] %s\n", s.config.ID, fmt.Sprintf(msg, v...))
}
