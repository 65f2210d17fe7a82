package denglu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeForm(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		s, err := EncodeForm(nil, nil)
		require.NoError(t, err)
		assert.Equal(t, "", s)
	})

	t.Run("sorted", func(t *testing.T) {
		s, err := EncodeForm(map[string]string{
			"timestamp": "1662439087000",
			"appid":     "my_appid",
			"count":     "5",
			"sign_type": "MD5",
			"sign":      "8661d353f83ce6c1906df285a92e4e72",
		}, nil)
		require.NoError(t, err)
		assert.Equal(t, "appid=my_appid&count=5&sign=8661d353f83ce6c1906df285a92e4e72&sign_type=MD5&timestamp=1662439087000", s)
	})

	t.Run("escape", func(t *testing.T) {
		s, err := EncodeForm(map[string]string{"a": "x y&z=中"}, MustNewCodec(CharsetUTF8))
		require.NoError(t, err)
		assert.Equal(t, "a=x+y%26z%3D%E4%B8%AD", s)
	})

	t.Run("gbk", func(t *testing.T) {
		s, err := EncodeForm(map[string]string{"a": "中文"}, MustNewCodec(CharsetGBK))
		require.NoError(t, err)
		assert.Equal(t, "a=%D6%D0%CE%C4", s)
	})
}

func TestParseForm(t *testing.T) {
	tests := []struct {
		name string
		body string
		want map[string]string
	}{
		{"empty", "", map[string]string{}},
		{"simple", "a=1&b=2", map[string]string{"a": "1", "b": "2"}},
		{"noValue", "a&b=1", map[string]string{"a": "", "b": "1"}},
		{"duplicated", "a=1&a=2", map[string]string{"a": "1,2"}},
		{"escaped", "a=x+y%26z%3D%E4%B8%AD", map[string]string{"a": "x y&z=中"}},
		{"emptyParts", "&a=1&&", map[string]string{"a": "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseForm(tt.body, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("bad", func(t *testing.T) {
		_, err := ParseForm("a=%zz", nil)
		assert.Error(t, err)
	})

	t.Run("roundTrip", func(t *testing.T) {
		codec := MustNewCodec(CharsetGBK)
		params := map[string]string{"content": "分享 & 测试", "url": "http://a.com/?x=1"}

		body, err := EncodeForm(params, codec)
		require.NoError(t, err)

		got, err := ParseForm(body, codec)
		require.NoError(t, err)
		assert.Equal(t, params, got)
	})
}
