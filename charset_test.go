package denglu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCodec(t *testing.T) {
	for _, cs := range []Charset{"", "utf-8", "UTF-8", "utf8"} {
		c, err := NewCodec(cs)
		require.NoError(t, err)
		assert.Equal(t, CharsetUTF8, c.Charset())
	}

	for _, cs := range []Charset{"gbk", "GBK", "gb2312"} {
		c, err := NewCodec(cs)
		require.NoError(t, err)
		assert.Equal(t, CharsetGBK, c.Charset())
	}

	_, err := NewCodec("big5")
	assert.Error(t, err)
	assert.Panics(t, func() { MustNewCodec("big5") })
}

func TestUtf8Codec(t *testing.T) {
	c := MustNewCodec(CharsetUTF8)

	s, err := c.Encode("中文")
	require.NoError(t, err)
	assert.Equal(t, "中文", s)

	v, err := c.ConvertResult(map[string]any{"a": "中文"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": "中文"}, v)
}

func TestGbkCodec(t *testing.T) {
	c := MustNewCodec(CharsetGBK)

	t.Run("roundTrip", func(t *testing.T) {
		encoded, err := c.Encode("中文")
		require.NoError(t, err)
		assert.Equal(t, "\xd6\xd0\xce\xc4", encoded)

		decoded, err := c.Decode(encoded)
		require.NoError(t, err)
		assert.Equal(t, "中文", decoded)
	})

	t.Run("ascii", func(t *testing.T) {
		encoded, err := c.Encode("abc123")
		require.NoError(t, err)
		assert.Equal(t, "abc123", encoded)
	})

	t.Run("result", func(t *testing.T) {
		v, err := c.ConvertResult(map[string]any{
			"中": []any{"文", 1.0, nil, true},
			"n":  2.0,
		})
		require.NoError(t, err)

		want := map[string]any{
			"\xd6\xd0": []any{"\xce\xc4", 1.0, nil, true},
			"n":        2.0,
		}
		assert.Equal(t, want, v)
	})
}
