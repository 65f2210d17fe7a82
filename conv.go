package denglu

import (
	"fmt"
	"reflect"

	"github.com/cmstar/go-conv"
	"github.com/cmstar/go-errx"
)

// Params 是调用 [Client.Call] 时给定的参数表。值可以是字符串、整数、布尔等简单类型，发送前转为字符串：
//   - nil 转为空字符串，参数仍会被发送。
//   - 布尔值转为 True 或 False 。
//   - 其余的值通过 [Conv] 转换。
type Params map[string]any

// Conv 是用于转换灯鹭 API 参数和返回值的 [conv.Conv] 实例，它使用大小写不敏感（case-insensitive）的方式匹配字段，
// 使得返回的 JSON 中的 mediaUserID 可以赋值到 MediaUserID 字段上。
var Conv = conv.Conv{
	Conf: conv.Config{
		FieldMatcherCreator: &conv.SimpleMatcherCreator{
			Conf: conv.SimpleMatcherConfig{
				CaseInsensitive: true,
			},
		},
	},
}

var _typString = reflect.TypeOf("")

// stringifyParams 将参数表的值都转为字符串，规则见 [Params] 。
func stringifyParams(params Params) (map[string]string, error) {
	res := make(map[string]string, len(params)+4)
	for k, v := range params {
		switch vv := v.(type) {
		case nil:
			res[k] = ""

		case string:
			res[k] = vv

		case bool:
			// Conv 将布尔值转为 1/0 ，灯鹭官方 SDK 发送的是 True/False 。
			if vv {
				res[k] = "True"
			} else {
				res[k] = "False"
			}

		default:
			s, err := Conv.ConvertType(v, _typString)
			if err != nil {
				return nil, errx.Wrap("denglu: convert param "+k, err)
			}
			res[k] = s.(string)
		}
	}
	return res, nil
}

// convertResult 将 JSON 解析得到的值转换为 T 类型。
// 对象中值为 null 的字段会被忽略，对应的字段保留零值；数组中的 null 元素转为元素类型的零值，不改变其他元素的位置。
func convertResult[T any](v any) (T, error) {
	var zero T
	if v == nil {
		return zero, nil
	}

	res, err := convertValue(v, reflect.TypeOf(zero))
	if err != nil {
		return zero, errx.Wrap("denglu: convert result", err)
	}

	if res == nil {
		return zero, nil
	}
	return res.(T), nil
}

// convertValue 将非 nil 的 v 转换为 typ 类型。数组逐个元素转换，以便保留 null 元素的位置。
func convertValue(v any, typ reflect.Type) (any, error) {
	list, ok := v.([]any)
	if !ok || typ.Kind() != reflect.Slice {
		return Conv.ConvertType(dropNulls(v), typ)
	}

	res := reflect.MakeSlice(typ, len(list), len(list))
	for i, item := range list {
		if item == nil {
			continue
		}

		elem, err := convertValue(item, typ.Elem())
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		if elem != nil {
			res.Index(i).Set(reflect.ValueOf(elem))
		}
	}
	return res.Interface(), nil
}

// dropNulls 返回移除了 map 中 nil 值的副本。数组中的 nil 元素原样保留。
func dropNulls(v any) any {
	switch vv := v.(type) {
	case map[string]any:
		res := make(map[string]any, len(vv))
		for k, item := range vv {
			if item == nil {
				continue
			}
			res[k] = dropNulls(item)
		}
		return res

	case []any:
		res := make([]any, len(vv))
		for i, item := range vv {
			res[i] = dropNulls(item)
		}
		return res

	default:
		return v
	}
}
