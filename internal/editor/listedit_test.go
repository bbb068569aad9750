package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppend(t *testing.T) {
	out := Append([]string{"a"}, "b")
	assert.Equal(t, []string{"a", "b"}, out)

	var empty []int
	assert.Equal(t, []int{7}, Append(empty, 7))
}

func TestReplaceAt(t *testing.T) {
	in := []string{"a", "b", "c"}

	out, err := ReplaceAt(in, 1, "B")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "B", "c"}, out)
	assert.Equal(t, []string{"a", "b", "c"}, in, "input must not be mutated")

	_, err = ReplaceAt(in, 3, "x")
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = ReplaceAt(in, -1, "x")
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestRemoveAt(t *testing.T) {
	in := []string{"a", "b", "c"}

	out, err := RemoveAt(in, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, out)
	assert.Equal(t, []string{"a", "b", "c"}, in)

	out2, err := RemoveAt(out, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, out2)

	_, err = RemoveAt([]string{}, 0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}
