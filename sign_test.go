package denglu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDataToSign(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, "", string(BuildDataToSign(nil)))
	})

	t.Run("sorted", func(t *testing.T) {
		res := BuildDataToSign(map[string]string{
			"timestamp": "1000",
			"appid":     "A",
			"sign":      "ignored",
		})
		assert.Equal(t, "appid=Atimestamp=1000", string(res))
	})

	t.Run("byteOrder", func(t *testing.T) {
		// 大写字母排在小写字母前面，下划线在两者之间。
		res := BuildDataToSign(map[string]string{"b": "1", "B": "2", "a_b": "3", "ab": "4"})
		assert.Equal(t, "B=2a_b=3ab=4b=1", string(res))
	})
}

func TestSign(t *testing.T) {
	tests := []struct {
		name   string
		params map[string]string
		apiKey string
		want   string
	}{
		{
			"simple",
			map[string]string{"appid": "A", "timestamp": "1000"},
			"K",
			"709ea613909194e1f7dbeb9c04d1ae77",
		},
		{
			"signIgnored",
			map[string]string{"appid": "A", "timestamp": "1000", "sign": "xxx"},
			"K",
			"709ea613909194e1f7dbeb9c04d1ae77",
		},
		{
			"full",
			map[string]string{"appid": "my_appid", "count": "5", "sign_type": "MD5", "timestamp": "1662439087000"},
			"my_apikey",
			"8661d353f83ce6c1906df285a92e4e72",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sign(tt.params, tt.apiKey))
		})
	}
}

func TestVerifySign(t *testing.T) {
	params := map[string]string{"appid": "A", "timestamp": "1000"}
	assert.False(t, VerifySign(params, "K"))

	params["sign"] = "709ea613909194e1f7dbeb9c04d1ae77"
	assert.True(t, VerifySign(params, "K"))
	assert.False(t, VerifySign(params, "other"))
}

func TestNewSigner(t *testing.T) {
	s, err := NewSigner("")
	require.NoError(t, err)
	assert.Equal(t, SignatureMD5, s.Method())
	assert.Equal(t, "709ea613909194e1f7dbeb9c04d1ae77", s.Sign(map[string]string{"appid": "A", "timestamp": "1000"}, "K"))

	_, err = NewSigner("SHA1")
	assert.Error(t, err)
}

func TestMd5(t *testing.T) {
	assert.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", Md5(nil))
}
