package objectstore

import (
	"fmt"
	"testing"

	"github.com/ChristianMct/hetensor"
	"github.com/ChristianMct/hetensor/scheme"
	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/lattigo/v5/core/rlwe"
	"github.com/tuneinsight/lattigo/v5/he/hefloat"
)

var testConfigs = []Config{
	{BackendName: "mem"},
	{BackendName: "badgerdb"},
	{BackendName: "hybrid"},
}

func testObjectStore(t *testing.T, conf Config) ObjectStore {
	if conf.BackendName == "badgerdb" || conf.BackendName == "hybrid" {
		conf.DBPath = t.TempDir()
	}
	objstore, err := NewObjectStoreFromConfig(conf)
	require.NoError(t, err)
	t.Cleanup(func() { objstore.Close() })
	return objstore
}

func testCiphertextChunk(t *testing.T) *rlwe.Ciphertext {
	c, err := scheme.NewContext(hefloat.ParametersLiteral{
		LogN:            10,
		LogQ:            []int{55, 45},
		LogP:            []int{61},
		LogDefaultScale: 45,
	})
	require.NoError(t, err)
	ks := scheme.GenKeySet(c)

	pt, err := scheme.NewEncoder(c).Encode([]float64{1, 2, 3})
	require.NoError(t, err)
	ct, err := scheme.NewEncryptor(c, ks.Pk).EncryptNew(pt)
	require.NoError(t, err)
	return ct
}

func TestStoreLoadChunk(t *testing.T) {
	ct := testCiphertextChunk(t)

	for _, conf := range testConfigs {
		t.Run(conf.BackendName, func(t *testing.T) {
			objstore := testObjectStore(t, conf)

			chunkID := hetensor.TensorID("node-1/round-1").ChunkID(0)
			require.NoError(t, objstore.Store(chunkID, ct))

			present, err := objstore.IsPresent(chunkID)
			require.NoError(t, err)
			require.True(t, present)

			loaded := new(rlwe.Ciphertext)
			require.NoError(t, objstore.Load(chunkID, loaded))

			want, err := ct.MarshalBinary()
			require.NoError(t, err)
			have, err := loaded.MarshalBinary()
			require.NoError(t, err)
			require.Equal(t, want, have)
		})
	}
}

func TestLoadAbsent(t *testing.T) {
	for _, conf := range testConfigs {
		t.Run(conf.BackendName, func(t *testing.T) {
			objstore := testObjectStore(t, conf)

			present, err := objstore.IsPresent("no-such-chunk")
			require.NoError(t, err)
			require.False(t, present)

			loaded := new(rlwe.Ciphertext)
			require.Error(t, objstore.Load("no-such-chunk", loaded))
		})
	}
}

func TestDelete(t *testing.T) {
	ct := testCiphertextChunk(t)

	for _, conf := range testConfigs {
		t.Run(conf.BackendName, func(t *testing.T) {
			objstore := testObjectStore(t, conf)

			for i := 0; i < 3; i++ {
				require.NoError(t, objstore.Store(fmt.Sprintf("t/chunk-%04d", i), ct))
			}

			require.NoError(t, objstore.Delete("t/chunk-0001"))

			present, err := objstore.IsPresent("t/chunk-0001")
			require.NoError(t, err)
			require.False(t, present)

			present, err = objstore.IsPresent("t/chunk-0000")
			require.NoError(t, err)
			require.True(t, present)

			// deleting an absent key is not an error
			require.NoError(t, objstore.Delete("t/chunk-0042"))
		})
	}
}

func TestInvalidConfig(t *testing.T) {
	_, err := NewObjectStoreFromConfig(Config{})
	require.Error(t, err)
}
