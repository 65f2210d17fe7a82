package denglu

import (
	"bytes"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"sort"
)

/* 当前文件提供签名算法的实现。 */

// SignatureMethod 表示签名算法，对应请求参数 sign_type 的值。
type SignatureMethod string

const (
	// SignatureMD5 是当前唯一支持的签名算法。
	SignatureMD5 SignatureMethod = "MD5"
)

// Signer 基于参数表和 apiKey 计算签名。
type Signer interface {
	// Method 返回签名算法，作为 sign_type 参数的值。
	Method() SignatureMethod

	// Sign 计算给定参数表的签名。参数表中的 sign 参数不参与计算。
	Sign(params map[string]string, apiKey string) string
}

type md5Signer struct{}

func (md5Signer) Method() SignatureMethod {
	return SignatureMD5
}

func (md5Signer) Sign(params map[string]string, apiKey string) string {
	return Sign(params, apiKey)
}

// NewSigner 返回给定签名算法的 [Signer] 。算法为空时使用 [SignatureMD5] 。
func NewSigner(method SignatureMethod) (Signer, error) {
	switch method {
	case "", SignatureMD5:
		return md5Signer{}, nil
	default:
		return nil, fmt.Errorf("unsupported signature method: %s", method)
	}
}

// Md5 计算 MD5 ，返回小写的 HEX 格式。
func Md5(data []byte) string {
	h := md5.Sum(data)
	return hex.EncodeToString(h[:])
}

// Sign 计算灯鹭 API 的 MD5 签名：
//   - 取除 sign 以外的参数，按参数名称的字节顺序升序排列；
//   - 拼接为 name1=value1name2=value2... ，参数之间没有分隔符；
//   - 末尾追加 apiKey 原文；
//   - 计算 MD5 ，返回小写的 HEX 格式。
func Sign(params map[string]string, apiKey string) string {
	buf := BuildDataToSign(params)
	buf = append(buf, apiKey...)
	return Md5(buf)
}

// BuildDataToSign 返回参数表排序拼接后的待签名串，不含末尾的 apiKey 。 sign 参数被忽略。
func BuildDataToSign(params map[string]string) []byte {
	keys := make([]string, 0, len(params))
	for k := range params {
		if k == ParamSign {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	buf := new(bytes.Buffer)
	for _, k := range keys {
		buf.WriteString(k)
		buf.WriteByte('=')
		buf.WriteString(params[k])
	}
	return buf.Bytes()
}

// VerifySign 校验参数表中的 sign 参数是否与计算得到的签名一致。
func VerifySign(params map[string]string, apiKey string) bool {
	sign, ok := params[ParamSign]
	if !ok {
		return false
	}
	return Sign(params, apiKey) == sign
}
