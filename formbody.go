package denglu

import (
	"net/url"
	"sort"
	"strings"

	"github.com/cmstar/go-errx"
)

/*
当前文件提供 application/x-www-form-urlencoded 格式的请求 body 的编码和解析。
*/

// EncodeForm 将参数表编码为 application/x-www-form-urlencoded 格式，参数按名称升序排列。
// 参数值先经 codec 转为目标字符集，再做 URL 编码。 codec 为 nil 时不做转换。
func EncodeForm(params map[string]string, codec Codec) (string, error) {
	if len(params) == 0 {
		return "", nil
	}

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	b := new(strings.Builder)
	for i, k := range keys {
		v := params[k]
		if codec != nil {
			encoded, err := codec.Encode(v)
			if err != nil {
				return "", errx.Wrap("denglu: encode form value of "+k, err)
			}
			v = encoded
		}

		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(k))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(v))
	}
	return b.String(), nil
}

// ParseForm 解析 application/x-www-form-urlencoded 格式的 body ，是 [EncodeForm] 的逆过程。
// 参数值在 URL 解码后经 codec 转回 UTF-8 。 codec 为 nil 时不做转换。
//
// 相同名称的参数出现多次时，会被以逗号拼接起来，如“a=1&a=2”结果为“a=1,2”；
// 没有等号的部分视为值为空字符串的参数，如“a&b=1”中的 a 。
func ParseForm(body string, codec Codec) (map[string]string, error) {
	result := make(map[string]string)
	if body == "" {
		return result, nil
	}

	for _, part := range strings.Split(body, "&") {
		if part == "" {
			continue
		}

		name, value := part, ""
		if idx := strings.IndexByte(part, '='); idx >= 0 {
			name, value = part[:idx], part[idx+1:]
		}

		name, err := url.QueryUnescape(name)
		if err != nil {
			return nil, errx.Wrap("denglu: parse form name", err)
		}

		value, err = url.QueryUnescape(value)
		if err != nil {
			return nil, errx.Wrap("denglu: parse form value of "+name, err)
		}

		if codec != nil {
			value, err = codec.Decode(value)
			if err != nil {
				return nil, errx.Wrap("denglu: decode form value of "+name, err)
			}
		}

		if old, ok := result[name]; ok {
			result[name] = old + "," + value
		} else {
			result[name] = value
		}
	}

	return result, nil
}
