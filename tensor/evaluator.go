package tensor

import (
	"fmt"

	"github.com/ChristianMct/hetensor/scheme"
	"github.com/tuneinsight/lattigo/v5/core/rlwe"
)

// Evaluator lifts the scalar homomorphic operations over ciphertext
// tensors. Binary operations require operands of equal chunk count; all
// operations require their operands to originate from the parameter set of
// the evaluator. No information flows between chunk indices: every
// operation is elementwise over the chunk sequence, and chunks are
// processed concurrently up to the configured parallelism degree.
//
// Operands are never mutated; every operation returns a new tensor.
type Evaluator struct {
	eval *scheme.Evaluator
	opts options
}

// NewEvaluator creates a new tensor evaluator on top of the given scalar
// evaluator.
func NewEvaluator(eval *scheme.Evaluator, opts ...Option) *Evaluator {
	return &Evaluator{eval: eval, opts: newOptions(opts)}
}

func (e *Evaluator) checkOperandCt(t *Ciphertext) error {
	if id := e.eval.Context().ID(); t.params != id {
		return SchemeMismatchError{Expected: string(id), Actual: string(t.params)}
	}
	return nil
}

func (e *Evaluator) checkOperandPt(t *Plaintext) error {
	if id := e.eval.Context().ID(); t.params != id {
		return SchemeMismatchError{Expected: string(id), Actual: string(t.params)}
	}
	return nil
}

// workers returns an accessor for per-worker scalar evaluators. Worker 0
// uses the evaluator itself; the others are created on first use, which is
// safe because each worker index is owned by a single goroutine.
func (e *Evaluator) workers() func(w int) *scheme.Evaluator {
	evals := make([]*scheme.Evaluator, e.opts.degree)
	return func(w int) *scheme.Evaluator {
		if w == 0 {
			return e.eval
		}
		if evals[w] == nil {
			evals[w] = e.eval.ShallowCopy()
		}
		return evals[w]
	}
}

func (e *Evaluator) binaryCt(a, b *Ciphertext, f func(eval *scheme.Evaluator, a, b *rlwe.Ciphertext) (*rlwe.Ciphertext, error)) (*Ciphertext, error) {
	if err := e.checkOperandCt(a); err != nil {
		return nil, err
	}
	if err := e.checkOperandCt(b); err != nil {
		return nil, err
	}
	if a.Len() != b.Len() {
		return nil, LengthMismatchError{Expected: a.Len(), Actual: b.Len()}
	}
	chunks := make([]*rlwe.Ciphertext, a.Len())
	evals := e.workers()
	err := forEachChunk(a.Len(), e.opts.degree, func(w, i int) error {
		ct, err := f(evals(w), a.chunks[i], b.chunks[i])
		if err != nil {
			return ChunkError{Index: i, Err: err}
		}
		chunks[i] = ct
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &Ciphertext{params: a.params, chunks: chunks}, nil
}

func (e *Evaluator) binaryPt(a *Ciphertext, b *Plaintext, f func(eval *scheme.Evaluator, a *rlwe.Ciphertext, b *rlwe.Plaintext) (*rlwe.Ciphertext, error)) (*Ciphertext, error) {
	if err := e.checkOperandCt(a); err != nil {
		return nil, err
	}
	if err := e.checkOperandPt(b); err != nil {
		return nil, err
	}
	if a.Len() != b.Len() {
		return nil, LengthMismatchError{Expected: a.Len(), Actual: b.Len()}
	}
	chunks := make([]*rlwe.Ciphertext, a.Len())
	evals := e.workers()
	err := forEachChunk(a.Len(), e.opts.degree, func(w, i int) error {
		ct, err := f(evals(w), a.chunks[i], b.chunks[i])
		if err != nil {
			return ChunkError{Index: i, Err: err}
		}
		chunks[i] = ct
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &Ciphertext{params: a.params, chunks: chunks}, nil
}

func (e *Evaluator) unary(a *Ciphertext, f func(eval *scheme.Evaluator, a *rlwe.Ciphertext) (*rlwe.Ciphertext, error)) (*Ciphertext, error) {
	if err := e.checkOperandCt(a); err != nil {
		return nil, err
	}
	chunks := make([]*rlwe.Ciphertext, a.Len())
	evals := e.workers()
	err := forEachChunk(a.Len(), e.opts.degree, func(w, i int) error {
		ct, err := f(evals(w), a.chunks[i])
		if err != nil {
			return ChunkError{Index: i, Err: err}
		}
		chunks[i] = ct
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &Ciphertext{params: a.params, chunks: chunks}, nil
}

// Add returns the elementwise sum of two ciphertext tensors of equal chunk
// count.
func (e *Evaluator) Add(a, b *Ciphertext) (*Ciphertext, error) {
	return e.binaryCt(a, b, func(eval *scheme.Evaluator, a, b *rlwe.Ciphertext) (*rlwe.Ciphertext, error) {
		return eval.AddNew(a, b)
	})
}

// Sub returns the elementwise difference of two ciphertext tensors of equal
// chunk count.
func (e *Evaluator) Sub(a, b *Ciphertext) (*Ciphertext, error) {
	return e.binaryCt(a, b, func(eval *scheme.Evaluator, a, b *rlwe.Ciphertext) (*rlwe.Ciphertext, error) {
		return eval.SubNew(a, b)
	})
}

// Mul returns the elementwise product of two ciphertext tensors of equal
// chunk count. The result is not relinearized; see Relinearize and MulRelin.
func (e *Evaluator) Mul(a, b *Ciphertext) (*Ciphertext, error) {
	return e.binaryCt(a, b, func(eval *scheme.Evaluator, a, b *rlwe.Ciphertext) (*rlwe.Ciphertext, error) {
		return eval.MulNew(a, b)
	})
}

// MulRelin returns the elementwise product of two ciphertext tensors of
// equal chunk count, relinearizing each resulting chunk.
func (e *Evaluator) MulRelin(a, b *Ciphertext) (*Ciphertext, error) {
	return e.binaryCt(a, b, func(eval *scheme.Evaluator, a, b *rlwe.Ciphertext) (*rlwe.Ciphertext, error) {
		return eval.MulRelinNew(a, b)
	})
}

// AddPlain returns the elementwise sum of a ciphertext tensor and a
// plaintext tensor of equal chunk count.
func (e *Evaluator) AddPlain(a *Ciphertext, b *Plaintext) (*Ciphertext, error) {
	return e.binaryPt(a, b, func(eval *scheme.Evaluator, a *rlwe.Ciphertext, b *rlwe.Plaintext) (*rlwe.Ciphertext, error) {
		return eval.AddNew(a, b)
	})
}

// SubPlain returns the elementwise difference of a ciphertext tensor and a
// plaintext tensor of equal chunk count.
func (e *Evaluator) SubPlain(a *Ciphertext, b *Plaintext) (*Ciphertext, error) {
	return e.binaryPt(a, b, func(eval *scheme.Evaluator, a *rlwe.Ciphertext, b *rlwe.Plaintext) (*rlwe.Ciphertext, error) {
		return eval.SubNew(a, b)
	})
}

// MulPlain returns the elementwise product of a ciphertext tensor and a
// plaintext tensor of equal chunk count.
func (e *Evaluator) MulPlain(a *Ciphertext, b *Plaintext) (*Ciphertext, error) {
	return e.binaryPt(a, b, func(eval *scheme.Evaluator, a *rlwe.Ciphertext, b *rlwe.Plaintext) (*rlwe.Ciphertext, error) {
		return eval.MulNew(a, b)
	})
}

// Square returns the elementwise square of the tensor, relinearizing each
// resulting chunk.
func (e *Evaluator) Square(a *Ciphertext) (*Ciphertext, error) {
	return e.unary(a, func(eval *scheme.Evaluator, a *rlwe.Ciphertext) (*rlwe.Ciphertext, error) {
		return eval.MulRelinNew(a, a)
	})
}

// Negate returns the elementwise negation of the tensor.
func (e *Evaluator) Negate(a *Ciphertext) (*Ciphertext, error) {
	return e.unary(a, func(eval *scheme.Evaluator, a *rlwe.Ciphertext) (*rlwe.Ciphertext, error) {
		return eval.NegateNew(a)
	})
}

// Relinearize relinearizes every chunk of the tensor.
func (e *Evaluator) Relinearize(a *Ciphertext) (*Ciphertext, error) {
	return e.unary(a, func(eval *scheme.Evaluator, a *rlwe.Ciphertext) (*rlwe.Ciphertext, error) {
		return eval.RelinearizeNew(a)
	})
}

// Rescale rescales every chunk of the tensor by the last modulus in the
// chain.
func (e *Evaluator) Rescale(a *Ciphertext) (*Ciphertext, error) {
	return e.unary(a, func(eval *scheme.Evaluator, a *rlwe.Ciphertext) (*rlwe.Ciphertext, error) {
		return eval.RescaleNew(a)
	})
}

// Rotate rotates the slots of every chunk of the tensor by k positions,
// with the same step for all chunks. The rotation is intra-chunk: no value
// moves across chunk boundaries, so rotating a logically contiguous vector
// across chunk boundaries must be handled by the caller at a higher layer.
func (e *Evaluator) Rotate(a *Ciphertext, k int) (*Ciphertext, error) {
	return e.unary(a, func(eval *scheme.Evaluator, a *rlwe.Ciphertext) (*rlwe.Ciphertext, error) {
		return eval.RotateNew(a, k)
	})
}

func (e *Evaluator) checkMany(ts []*Ciphertext) (m int, err error) {
	if len(ts) == 0 {
		return 0, fmt.Errorf("empty operand list")
	}
	m = ts[0].Len()
	for _, t := range ts {
		if err := e.checkOperandCt(t); err != nil {
			return 0, err
		}
		if t.Len() != m {
			return 0, LengthMismatchError{Expected: m, Actual: t.Len()}
		}
	}
	return m, nil
}

// AddMany returns the elementwise sum of a list of ciphertext tensors of
// equal chunk count: chunk i of the result is the sum of chunk i of every
// operand.
func (e *Evaluator) AddMany(ts []*Ciphertext) (*Ciphertext, error) {
	m, err := e.checkMany(ts)
	if err != nil {
		return nil, err
	}
	chunks := make([]*rlwe.Ciphertext, m)
	evals := e.workers()
	err = forEachChunk(m, e.opts.degree, func(w, i int) error {
		eval := evals(w)
		acc := ts[0].chunks[i].CopyNew()
		for k := 1; k < len(ts); k++ {
			if err := eval.Add(acc, ts[k].chunks[i], acc); err != nil {
				return ChunkError{Index: i, Err: err}
			}
		}
		chunks[i] = acc
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &Ciphertext{params: ts[0].params, chunks: chunks}, nil
}

// MulMany returns the elementwise product of a list of ciphertext tensors
// of equal chunk count, relinearizing each chunk after every pairwise
// multiplication so that the result is a degree-1 ciphertext tensor.
func (e *Evaluator) MulMany(ts []*Ciphertext) (*Ciphertext, error) {
	m, err := e.checkMany(ts)
	if err != nil {
		return nil, err
	}
	chunks := make([]*rlwe.Ciphertext, m)
	evals := e.workers()
	err = forEachChunk(m, e.opts.degree, func(w, i int) error {
		eval := evals(w)
		acc := ts[0].chunks[i].CopyNew()
		for k := 1; k < len(ts); k++ {
			next, err := eval.MulRelinNew(acc, ts[k].chunks[i])
			if err != nil {
				return ChunkError{Index: i, Err: err}
			}
			acc = next
		}
		chunks[i] = acc
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &Ciphertext{params: ts[0].params, chunks: chunks}, nil
}
