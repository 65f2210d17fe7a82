package denglu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringifyParams(t *testing.T) {
	res, err := stringifyParams(Params{
		"s":   "v",
		"i":   5,
		"i64": int64(1662439087),
		"nil": nil,
		"t":   true,
		"f":   false,
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"s": "v", "i": "5", "i64": "1662439087", "nil": "", "t": "True", "f": "False"}, res)

	res, err = stringifyParams(nil)
	require.NoError(t, err)
	assert.Len(t, res, 0)
}

func TestConvertResult(t *testing.T) {
	t.Run("struct", func(t *testing.T) {
		v := map[string]any{
			"mediaUserID": 1001.0,
			"mediaID":     3.0,
			"screenName":  "demo",
			"unknown":     "x",
		}
		res, err := convertResult[MediaUser](v)
		require.NoError(t, err)
		assert.Equal(t, MediaUser{MediaUserID: 1001, MediaID: 3, ScreenName: "demo"}, res)
	})

	t.Run("nulls", func(t *testing.T) {
		v := map[string]any{"commentID": 1.0, "parent": nil, "content": nil, "state": 3.0}
		res, err := convertResult[commentData](v)
		require.NoError(t, err)
		assert.Equal(t, commentData{CommentID: 1, State: 3}, res)
		assert.Equal(t, &Comment{CommentID: 1, State: CommentStateRecycled}, res.toComment())
	})

	t.Run("nested", func(t *testing.T) {
		v := []any{
			map[string]any{"commentID": 2.0, "parent": map[string]any{"commentID": 1.0}},
			nil,
		}
		res, err := convertResult[[]commentData](v)
		require.NoError(t, err)
		require.Len(t, res, 2)
		require.NotNil(t, res[0].Parent)
		assert.Equal(t, int64(1), res[0].Parent.CommentID)
		assert.Equal(t, commentData{}, res[1])
	})

	t.Run("nullElements", func(t *testing.T) {
		v := []any{map[string]any{"result": "1"}, nil, map[string]any{"result": "2"}}
		res, err := convertResult[[]OpResult](v)
		require.NoError(t, err)
		assert.Equal(t, []OpResult{{Result: "1"}, {}, {Result: "2"}}, res)

		ptrs, err := convertResult[[]*OpResult](v)
		require.NoError(t, err)
		require.Len(t, ptrs, 3)
		assert.Nil(t, ptrs[1])
		assert.Equal(t, "2", ptrs[2].Result)

		ints, err := convertResult[[]int](nil)
		require.NoError(t, err)
		assert.Nil(t, ints)

		ints, err = convertResult[[]int]([]any{1.0, nil, 3.0})
		require.NoError(t, err)
		assert.Equal(t, []int{1, 0, 3}, ints)
	})

	t.Run("stateMap", func(t *testing.T) {
		res, err := convertResult[map[string]int](map[string]any{"582997": 0.0, "571330": 1.0})
		require.NoError(t, err)
		assert.Equal(t, map[string]int{"582997": 0, "571330": 1}, res)
	})

	t.Run("nil", func(t *testing.T) {
		res, err := convertResult[[]Media](nil)
		require.NoError(t, err)
		assert.Nil(t, res)
	})

	t.Run("mismatch", func(t *testing.T) {
		_, err := convertResult[[]Media]("abc")
		assert.Error(t, err)

		_, err = convertResult[[]Media]([]any{map[string]any{}, "abc"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "index 1")
	})
}
