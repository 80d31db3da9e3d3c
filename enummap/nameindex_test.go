package enummap

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/enumkit/pkg/types"
)

func TestEnableNameIndex(t *testing.T) {
	m, err := New(8, 4, types.FlagNone)
	require.NoError(t, err)
	require.NoError(t, m.Associate(1, BytesValue(u32(100)), "IDLE"))
	require.NoError(t, m.Associate(2, BytesValue(u32(200)), "ACTIVE"))
	require.NoError(t, m.Associate(3, BytesValue(u32(300)), ""))

	// Index picks up entries present at enable time.
	m.EnableNameIndex()
	key, err := m.FindByName("ACTIVE")
	require.NoError(t, err)
	assert.Equal(t, int32(2), key)

	// And entries inserted afterwards.
	require.NoError(t, m.Associate(4, BytesValue(u32(400)), "DONE"))
	key, err = m.FindByName("DONE")
	require.NoError(t, err)
	assert.Equal(t, int32(4), key)

	_, err = m.FindByName("NOPE")
	assert.ErrorIs(t, err, types.ErrNotFound)

	// Enabling twice is a no-op.
	m.EnableNameIndex()
	key, err = m.FindByName("IDLE")
	require.NoError(t, err)
	assert.Equal(t, int32(1), key)
}

func TestNameIndexSurvivesClear(t *testing.T) {
	m, err := New(8, 4, types.FlagNone)
	require.NoError(t, err)
	m.EnableNameIndex()
	require.NoError(t, m.Associate(1, BytesValue(u32(100)), "IDLE"))

	require.NoError(t, m.Clear())
	_, err = m.FindByName("IDLE")
	assert.ErrorIs(t, err, types.ErrNotFound)

	require.NoError(t, m.Associate(2, BytesValue(u32(200)), "IDLE"))
	key, err := m.FindByName("IDLE")
	require.NoError(t, err)
	assert.Equal(t, int32(2), key)
}

func TestNameIndexMatchesLinearScan(t *testing.T) {
	indexed, err := New(4, 4, types.FlagNone)
	require.NoError(t, err)
	linear, err := New(4, 4, types.FlagNone)
	require.NoError(t, err)
	indexed.EnableNameIndex()

	const n = 200
	for i := int32(0); i < n; i++ {
		name := fmt.Sprintf("ENTRY_%d", i)
		require.NoError(t, indexed.Associate(i, BytesValue(u32(uint32(i))), name))
		require.NoError(t, linear.Associate(i, BytesValue(u32(uint32(i))), name))
	}

	for i := int32(0); i < n; i++ {
		name := fmt.Sprintf("ENTRY_%d", i)
		ik, err := indexed.FindByName(name)
		require.NoError(t, err)
		lk, err := linear.FindByName(name)
		require.NoError(t, err)
		assert.Equal(t, lk, ik)
	}
}

func TestNameIndexPropagatesToCopy(t *testing.T) {
	src, err := New(4, 4, types.FlagNone)
	require.NoError(t, err)
	src.EnableNameIndex()
	require.NoError(t, src.Associate(1, BytesValue(u32(100)), "IDLE"))

	dup, err := src.Copy()
	require.NoError(t, err)
	key, err := dup.FindByName("IDLE")
	require.NoError(t, err)
	assert.Equal(t, int32(1), key)
}
