package denglu

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/simplifiedchinese"
)

// Charset 表示接入灯鹭 API 的网站所使用的字符集。
type Charset string

const (
	CharsetUTF8 Charset = "utf-8"
	CharsetGBK  Charset = "gbk"
)

// Codec 负责在网络边界处进行字符集转换。在创建 [Client] 时根据 [Config.Charset] 选定。
//
// Go 的字符串是 UTF-8 编码的， JSON 解析基于 UTF-8 进行。
// Codec 只处理发送出去的参数值和解析后的返回值；签名基于 Encode 之后的参数值计算，与实际发送的字节一致。
type Codec interface {
	// Charset 返回当前 Codec 对应的字符集。
	Charset() Charset

	// Encode 将 UTF-8 字符串转为目标字符集的字节，用于发送请求参数。
	Encode(s string) (string, error)

	// Decode 将目标字符集的字节转为 UTF-8 字符串，是 Encode 的逆过程。
	Decode(s string) (string, error)

	// ConvertResult 转换 JSON 解析得到的值：其中的字符串（包括对象的 key ）由 UTF-8 转为目标字符集。
	// 非字符串的值原样保留。
	ConvertResult(v any) (any, error)
}

// NewCodec 返回给定字符集的 [Codec] 。字符集大小写不敏感，为空时使用 [CharsetUTF8] 。
func NewCodec(charset Charset) (Codec, error) {
	switch Charset(strings.ToLower(string(charset))) {
	case "", CharsetUTF8, "utf8":
		return utf8Codec{}, nil
	case CharsetGBK, "gb2312":
		return gbkCodec{simplifiedchinese.GBK}, nil
	default:
		return nil, fmt.Errorf("unsupported charset: %s", charset)
	}
}

// MustNewCodec 是 [NewCodec] 的 panic 版本。
func MustNewCodec(charset Charset) Codec {
	c, err := NewCodec(charset)
	if err != nil {
		panic(err)
	}
	return c
}

// utf8Codec 不做任何转换。
type utf8Codec struct{}

func (utf8Codec) Charset() Charset                  { return CharsetUTF8 }
func (utf8Codec) Encode(s string) (string, error)   { return s, nil }
func (utf8Codec) Decode(s string) (string, error)   { return s, nil }
func (utf8Codec) ConvertResult(v any) (any, error) { return v, nil }

type gbkCodec struct {
	enc encoding.Encoding
}

func (gbkCodec) Charset() Charset { return CharsetGBK }

func (x gbkCodec) Encode(s string) (string, error) {
	return x.enc.NewEncoder().String(s)
}

func (x gbkCodec) Decode(s string) (string, error) {
	return x.enc.NewDecoder().String(s)
}

func (x gbkCodec) ConvertResult(v any) (any, error) {
	switch vv := v.(type) {
	case string:
		return x.Encode(vv)

	case []any:
		res := make([]any, len(vv))
		for i, item := range vv {
			converted, err := x.ConvertResult(item)
			if err != nil {
				return nil, err
			}
			res[i] = converted
		}
		return res, nil

	case map[string]any:
		res := make(map[string]any, len(vv))
		for k, item := range vv {
			key, err := x.Encode(k)
			if err != nil {
				return nil, err
			}

			converted, err := x.ConvertResult(item)
			if err != nil {
				return nil, err
			}
			res[key] = converted
		}
		return res, nil

	default:
		return v, nil
	}
}
