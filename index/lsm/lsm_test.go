package lsm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInsertGetScan(t *testing.T) {
	l, err := Open(t.TempDir())
	require.NoError(t, err)
	defer l.Close()

	for k := int64(50); k >= 1; k-- {
		require.NoError(t, l.Insert(k, []byte{byte(k)}))
	}

	v, err := l.Get(25)
	require.NoError(t, err)
	require.Equal(t, []byte{25}, v)

	v, err = l.Get(500)
	require.NoError(t, err)
	require.Nil(t, v)

	it, err := l.Scan()
	require.NoError(t, err)
	defer it.Close()

	var prev int64
	count := 0
	for it.Next() {
		require.Greater(t, it.Key(), prev)
		prev = it.Key()
		count++
	}
	require.NoError(t, it.Error())
	require.Equal(t, 50, count)
}
