package tensor

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/ChristianMct/hetensor/scheme"
	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/lattigo/v5/he/hefloat"
)

// testParamsLiteral is a small, insecure parameter set used to keep the
// tests fast. Slot capacity is 512.
var testParamsLiteral = hefloat.ParametersLiteral{
	LogN:            10,
	LogQ:            []int{55, 45, 45},
	LogP:            []int{61},
	LogDefaultScale: 45,
}

const testEpsilon = 1e-5

type testContext struct {
	ctx *scheme.Context
	ks  *scheme.KeySet
	ecd *Encoder
	enc *Encryptor
	dec *Decryptor
	evl *Evaluator
}

func newTestContext(t *testing.T, rotations ...int) *testContext {
	ctx, err := scheme.NewContext(testParamsLiteral)
	require.NoError(t, err)
	ks := scheme.GenKeySet(ctx, rotations...)
	return &testContext{
		ctx: ctx,
		ks:  ks,
		ecd: NewEncoder(scheme.NewEncoder(ctx)),
		enc: NewEncryptor(scheme.NewEncryptor(ctx, ks.Pk)),
		dec: NewDecryptor(scheme.NewDecryptor(ctx, ks.Sk)),
		evl: NewEvaluator(scheme.NewEvaluator(ctx, ks.EvaluationKeySet())),
	}
}

func sampleVector(rng *rand.Rand, n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = 2*rng.Float64() - 1
	}
	return v
}

func requireVecApprox(t *testing.T, want, have []float64) {
	require.Equal(t, len(want), len(have))
	for i := range want {
		require.InDelta(t, want[i], have[i], testEpsilon, "index %d", i)
	}
}

func TestEncodeDecode(t *testing.T) {
	tc := newTestContext(t)
	slots := tc.ctx.Slots()
	rng := rand.New(rand.NewSource(0))

	for _, n := range []int{0, 1, slots - 1, slots, slots + 1, 3*slots - 100} {
		t.Run(fmt.Sprintf("N=%d", n), func(t *testing.T) {
			v := sampleVector(rng, n)

			pt, err := tc.ecd.Encode(v)
			require.NoError(t, err)
			wantChunks := (n + slots - 1) / slots
			require.Equal(t, wantChunks, pt.Len())

			decoded, err := tc.ecd.Decode(pt)
			require.NoError(t, err)

			// decoding yields the full padded length, with zeros beyond n
			require.Equal(t, pt.Len()*slots, len(decoded))
			requireVecApprox(t, v, decoded[:n])
			for i := n; i < len(decoded); i++ {
				require.InDelta(t, 0, decoded[i], testEpsilon)
			}
		})
	}
}

func TestEncryptDecrypt(t *testing.T) {
	tc := newTestContext(t)
	rng := rand.New(rand.NewSource(1))
	v := sampleVector(rng, 2*tc.ctx.Slots()+3)

	pt, err := tc.ecd.Encode(v)
	require.NoError(t, err)

	ct, err := tc.enc.Encrypt(pt)
	require.NoError(t, err)
	require.Equal(t, pt.Len(), ct.Len())

	ptOut, err := tc.dec.Decrypt(ct)
	require.NoError(t, err)
	require.Equal(t, pt.Len(), ptOut.Len())

	decoded, err := tc.ecd.Decode(ptOut)
	require.NoError(t, err)
	requireVecApprox(t, v, decoded[:len(v)])
}

func (tc *testContext) encryptVector(t *testing.T, v []float64) *Ciphertext {
	pt, err := tc.ecd.Encode(v)
	require.NoError(t, err)
	ct, err := tc.enc.Encrypt(pt)
	require.NoError(t, err)
	return ct
}

func (tc *testContext) decryptVector(t *testing.T, ct *Ciphertext) []float64 {
	pt, err := tc.dec.Decrypt(ct)
	require.NoError(t, err)
	v, err := tc.ecd.Decode(pt)
	require.NoError(t, err)
	return v
}

func TestAdd(t *testing.T) {
	tc := newTestContext(t)
	rng := rand.New(rand.NewSource(2))
	n := 2*tc.ctx.Slots() + 7
	v1, v2 := sampleVector(rng, n), sampleVector(rng, n)

	ctOut, err := tc.evl.Add(tc.encryptVector(t, v1), tc.encryptVector(t, v2))
	require.NoError(t, err)

	decoded := tc.decryptVector(t, ctOut)
	for i := 0; i < n; i++ {
		require.InDelta(t, v1[i]+v2[i], decoded[i], testEpsilon)
	}
}

func TestSub(t *testing.T) {
	tc := newTestContext(t)
	rng := rand.New(rand.NewSource(3))
	n := tc.ctx.Slots() + 10
	v1, v2 := sampleVector(rng, n), sampleVector(rng, n)

	ctOut, err := tc.evl.Sub(tc.encryptVector(t, v1), tc.encryptVector(t, v2))
	require.NoError(t, err)

	decoded := tc.decryptVector(t, ctOut)
	for i := 0; i < n; i++ {
		require.InDelta(t, v1[i]-v2[i], decoded[i], testEpsilon)
	}
}

func TestNegate(t *testing.T) {
	tc := newTestContext(t)
	rng := rand.New(rand.NewSource(4))
	n := tc.ctx.Slots() + 10
	v := sampleVector(rng, n)

	ctOut, err := tc.evl.Negate(tc.encryptVector(t, v))
	require.NoError(t, err)

	decoded := tc.decryptVector(t, ctOut)
	for i := 0; i < n; i++ {
		require.InDelta(t, -v[i], decoded[i], testEpsilon)
	}
}

func TestMulRelin(t *testing.T) {
	tc := newTestContext(t)
	rng := rand.New(rand.NewSource(5))
	n := tc.ctx.Slots() + 10
	v1, v2 := sampleVector(rng, n), sampleVector(rng, n)

	ctOut, err := tc.evl.MulRelin(tc.encryptVector(t, v1), tc.encryptVector(t, v2))
	require.NoError(t, err)

	decoded := tc.decryptVector(t, ctOut)
	for i := 0; i < n; i++ {
		require.InDelta(t, v1[i]*v2[i], decoded[i], testEpsilon)
	}
}

func TestSquare(t *testing.T) {
	tc := newTestContext(t)
	rng := rand.New(rand.NewSource(19))
	n := tc.ctx.Slots() + 10
	v := sampleVector(rng, n)

	ctOut, err := tc.evl.Square(tc.encryptVector(t, v))
	require.NoError(t, err)

	decoded := tc.decryptVector(t, ctOut)
	for i := 0; i < n; i++ {
		require.InDelta(t, v[i]*v[i], decoded[i], testEpsilon)
	}
}

func TestMulThenRelinearize(t *testing.T) {
	tc := newTestContext(t)
	rng := rand.New(rand.NewSource(6))
	n := tc.ctx.Slots() / 2
	v1, v2 := sampleVector(rng, n), sampleVector(rng, n)

	ctMul, err := tc.evl.Mul(tc.encryptVector(t, v1), tc.encryptVector(t, v2))
	require.NoError(t, err)

	ctOut, err := tc.evl.Relinearize(ctMul)
	require.NoError(t, err)

	decoded := tc.decryptVector(t, ctOut)
	for i := 0; i < n; i++ {
		require.InDelta(t, v1[i]*v2[i], decoded[i], testEpsilon)
	}
}

func TestMulPlain(t *testing.T) {
	tc := newTestContext(t)
	rng := rand.New(rand.NewSource(7))
	n := 2*tc.ctx.Slots() + 100
	v, w := sampleVector(rng, n), sampleVector(rng, n)

	ptW, err := tc.ecd.Encode(w)
	require.NoError(t, err)

	ctOut, err := tc.evl.MulPlain(tc.encryptVector(t, v), ptW)
	require.NoError(t, err)

	decoded := tc.decryptVector(t, ctOut)
	for i := 0; i < n; i++ {
		require.InDelta(t, v[i]*w[i], decoded[i], testEpsilon)
	}
}

func TestAddPlainSubPlain(t *testing.T) {
	tc := newTestContext(t)
	rng := rand.New(rand.NewSource(8))
	n := tc.ctx.Slots() + 5
	v, w := sampleVector(rng, n), sampleVector(rng, n)

	ptW, err := tc.ecd.Encode(w)
	require.NoError(t, err)
	ct := tc.encryptVector(t, v)

	ctAdd, err := tc.evl.AddPlain(ct, ptW)
	require.NoError(t, err)
	decoded := tc.decryptVector(t, ctAdd)
	for i := 0; i < n; i++ {
		require.InDelta(t, v[i]+w[i], decoded[i], testEpsilon)
	}

	ctSub, err := tc.evl.SubPlain(ct, ptW)
	require.NoError(t, err)
	decoded = tc.decryptVector(t, ctSub)
	for i := 0; i < n; i++ {
		require.InDelta(t, v[i]-w[i], decoded[i], testEpsilon)
	}
}

func TestAddMany(t *testing.T) {
	tc := newTestContext(t)
	rng := rand.New(rand.NewSource(9))
	n := 2*tc.ctx.Slots() + 13
	k := 4

	vs := make([][]float64, k)
	cts := make([]*Ciphertext, k)
	for j := range vs {
		vs[j] = sampleVector(rng, n)
		cts[j] = tc.encryptVector(t, vs[j])
	}

	ctOut, err := tc.evl.AddMany(cts)
	require.NoError(t, err)

	decoded := tc.decryptVector(t, ctOut)
	for i := 0; i < n; i++ {
		want := 0.0
		for j := range vs {
			want += vs[j][i]
		}
		require.InDelta(t, want, decoded[i], testEpsilon)
	}
}

func TestMulMany(t *testing.T) {
	tc := newTestContext(t)
	rng := rand.New(rand.NewSource(10))
	n := tc.ctx.Slots() / 2
	k := 3 // limited by the depth of the test parameters

	vs := make([][]float64, k)
	cts := make([]*Ciphertext, k)
	for j := range vs {
		vs[j] = sampleVector(rng, n)
		cts[j] = tc.encryptVector(t, vs[j])
	}

	ctOut, err := tc.evl.MulMany(cts)
	require.NoError(t, err)

	decoded := tc.decryptVector(t, ctOut)
	for i := 0; i < n; i++ {
		want := 1.0
		for j := range vs {
			want *= vs[j][i]
		}
		require.InDelta(t, want, decoded[i], 1e-3)
	}
}

func TestRotate(t *testing.T) {
	const k = 3
	tc := newTestContext(t, k)
	rng := rand.New(rand.NewSource(11))
	slots := tc.ctx.Slots()
	n := 2 * slots

	v := sampleVector(rng, n)
	ctOut, err := tc.evl.Rotate(tc.encryptVector(t, v), k)
	require.NoError(t, err)

	// the rotation is intra-chunk: each chunk rotates independently by k
	decoded := tc.decryptVector(t, ctOut)
	for c := 0; c < 2; c++ {
		for i := 0; i < slots; i++ {
			want := v[c*slots+(i+k)%slots]
			require.InDelta(t, want, decoded[c*slots+i], testEpsilon)
		}
	}
}

func TestLengthMismatch(t *testing.T) {
	tc := newTestContext(t)
	rng := rand.New(rand.NewSource(12))
	slots := tc.ctx.Slots()

	ct3 := tc.encryptVector(t, sampleVector(rng, 3*slots)) // 3 chunks
	ct2 := tc.encryptVector(t, sampleVector(rng, 2*slots)) // 2 chunks

	_, err := tc.evl.Add(ct3, ct2)
	var lmErr LengthMismatchError
	require.ErrorAs(t, err, &lmErr)
	require.Equal(t, 3, lmErr.Expected)
	require.Equal(t, 2, lmErr.Actual)

	_, err = tc.evl.AddMany([]*Ciphertext{ct3, ct2})
	require.ErrorAs(t, err, &lmErr)
}

func TestSchemeMismatch(t *testing.T) {
	tc := newTestContext(t)
	rng := rand.New(rand.NewSource(13))

	otherLiteral := testParamsLiteral
	otherLiteral.LogN = 11
	otherCtx, err := scheme.NewContext(otherLiteral)
	require.NoError(t, err)
	require.NotEqual(t, tc.ctx.ID(), otherCtx.ID())

	otherKs := scheme.GenKeySet(otherCtx)
	otherEcd := NewEncoder(scheme.NewEncoder(otherCtx))
	otherEnc := NewEncryptor(scheme.NewEncryptor(otherCtx, otherKs.Pk))

	pt, err := otherEcd.Encode(sampleVector(rng, 10))
	require.NoError(t, err)
	ct, err := otherEnc.Encrypt(pt)
	require.NoError(t, err)

	var smErr SchemeMismatchError

	_, err = tc.ecd.Decode(pt)
	require.ErrorAs(t, err, &smErr)

	_, err = tc.dec.Decrypt(ct)
	require.ErrorAs(t, err, &smErr)

	ctOwn := tc.encryptVector(t, sampleVector(rng, 10))
	_, err = tc.evl.Add(ctOwn, ct)
	require.ErrorAs(t, err, &smErr)
}

func TestEncodeOverflow(t *testing.T) {
	tc := newTestContext(t)

	// a non-representable value in the second chunk only
	slots := tc.ctx.Slots()
	v := make([]float64, slots+10)
	v[slots+3] = math.Inf(1)

	_, err := tc.ecd.Encode(v)
	require.Error(t, err)
	var oErr EncodingOverflowError
	require.ErrorAs(t, err, &oErr)
	require.Equal(t, 1, oErr.Chunk)
}

func TestEmptyOperandList(t *testing.T) {
	tc := newTestContext(t)
	_, err := tc.evl.AddMany(nil)
	require.Error(t, err)
	_, err = tc.evl.MulMany([]*Ciphertext{})
	require.Error(t, err)
}

func TestOperandsNotMutated(t *testing.T) {
	tc := newTestContext(t)
	rng := rand.New(rand.NewSource(14))
	n := tc.ctx.Slots() + 1
	v1, v2 := sampleVector(rng, n), sampleVector(rng, n)

	ct1 := tc.encryptVector(t, v1)
	ct2 := tc.encryptVector(t, v2)

	_, err := tc.evl.Add(ct1, ct2)
	require.NoError(t, err)
	_, err = tc.evl.AddMany([]*Ciphertext{ct1, ct2, ct1})
	require.NoError(t, err)

	requireVecApprox(t, v1, tc.decryptVector(t, ct1)[:n])
	requireVecApprox(t, v2, tc.decryptVector(t, ct2)[:n])
}

func TestParallelismDegrees(t *testing.T) {
	ctx, err := scheme.NewContext(testParamsLiteral)
	require.NoError(t, err)
	ks := scheme.GenKeySet(ctx)
	rng := rand.New(rand.NewSource(15))
	n := 5*ctx.Slots() - 17
	v1, v2 := sampleVector(rng, n), sampleVector(rng, n)

	for _, degree := range []int{1, 2, 16} {
		t.Run(fmt.Sprintf("degree=%d", degree), func(t *testing.T) {
			ecd := NewEncoder(scheme.NewEncoder(ctx), WithParallelism(degree))
			enc := NewEncryptor(scheme.NewEncryptor(ctx, ks.Pk), WithParallelism(degree))
			dec := NewDecryptor(scheme.NewDecryptor(ctx, ks.Sk), WithParallelism(degree))
			evl := NewEvaluator(scheme.NewEvaluator(ctx, ks.EvaluationKeySet()), WithParallelism(degree))

			pt1, err := ecd.Encode(v1)
			require.NoError(t, err)
			pt2, err := ecd.Encode(v2)
			require.NoError(t, err)
			ct1, err := enc.Encrypt(pt1)
			require.NoError(t, err)
			ct2, err := enc.Encrypt(pt2)
			require.NoError(t, err)

			ctOut, err := evl.Add(ct1, ct2)
			require.NoError(t, err)

			ptOut, err := dec.Decrypt(ctOut)
			require.NoError(t, err)
			decoded, err := ecd.Decode(ptOut)
			require.NoError(t, err)
			for i := 0; i < n; i++ {
				require.InDelta(t, v1[i]+v2[i], decoded[i], testEpsilon)
			}
		})
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	tc := newTestContext(t)
	rng := rand.New(rand.NewSource(16))
	slots := tc.ctx.Slots()

	for _, m := range []int{0, 1, 5, 100} {
		t.Run(fmt.Sprintf("M=%d", m), func(t *testing.T) {
			n := m * slots
			if m > 0 {
				n -= 7 // make the last chunk padded
			}
			v := sampleVector(rng, n)
			ct := tc.encryptVector(t, v)
			require.Equal(t, m, ct.Len())

			bufs, err := ct.MarshalChunks()
			require.NoError(t, err)
			require.Equal(t, m, len(bufs))

			ctOut, err := UnmarshalChunks(tc.ctx, bufs)
			require.NoError(t, err)
			require.Equal(t, m, ctOut.Len())

			requireVecApprox(t, tc.decryptVector(t, ct), tc.decryptVector(t, ctOut))

			// serialization of a fixed ciphertext is deterministic
			bufs2, err := ctOut.MarshalChunks()
			require.NoError(t, err)
			require.Equal(t, bufs, bufs2)
		})
	}
}

func TestDeserializationError(t *testing.T) {
	tc := newTestContext(t)
	rng := rand.New(rand.NewSource(17))

	ct := tc.encryptVector(t, sampleVector(rng, 3*tc.ctx.Slots()))
	bufs, err := ct.MarshalChunks()
	require.NoError(t, err)

	bufs[1] = []byte("not a ciphertext")
	_, err = UnmarshalChunks(tc.ctx, bufs)
	var dsErr DeserializationError
	require.ErrorAs(t, err, &dsErr)
	require.Equal(t, 1, dsErr.Position)
}

func TestChunkErrorUnwrap(t *testing.T) {
	cause := errors.New("cause")
	err := ChunkError{Index: 2, Err: cause}
	require.ErrorIs(t, err, cause)
	require.Contains(t, err.Error(), "chunk 2")
}

// TestGradientScenario runs the layer end to end at production-sized
// parameters: a 20000-value gradient vector over a slot capacity of 8192
// yields a 3-chunk tensor, which is encrypted, reweighted by a plaintext
// constant tensor and decrypted back.
func TestGradientScenario(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping LogN=14 scenario in short mode")
	}

	literal := hefloat.ParametersLiteral{
		LogN:            14,
		LogQ:            []int{55, 45, 45},
		LogP:            []int{61},
		LogDefaultScale: 45,
	}
	ctx, err := scheme.NewContext(literal)
	require.NoError(t, err)
	require.Equal(t, 8192, ctx.Slots())

	ks := scheme.GenKeySet(ctx)
	ecd := NewEncoder(scheme.NewEncoder(ctx))
	enc := NewEncryptor(scheme.NewEncryptor(ctx, ks.Pk))
	dec := NewDecryptor(scheme.NewDecryptor(ctx, ks.Sk))
	evl := NewEvaluator(scheme.NewEvaluator(ctx, ks.EvaluationKeySet()))

	const n = 20000
	rng := rand.New(rand.NewSource(18))
	grad := sampleVector(rng, n)
	weights := sampleVector(rng, n)

	ptGrad, err := ecd.Encode(grad)
	require.NoError(t, err)
	require.Equal(t, 3, ptGrad.Len())

	ptWeights, err := ecd.Encode(weights)
	require.NoError(t, err)

	ct, err := enc.Encrypt(ptGrad)
	require.NoError(t, err)

	ctOut, err := evl.MulPlain(ct, ptWeights)
	require.NoError(t, err)

	ptOut, err := dec.Decrypt(ctOut)
	require.NoError(t, err)
	decoded, err := ecd.Decode(ptOut)
	require.NoError(t, err)
	require.Equal(t, 3*8192, len(decoded))

	for i := 0; i < n; i++ {
		require.InDelta(t, grad[i]*weights[i], decoded[i], testEpsilon)
	}
}
