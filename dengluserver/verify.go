package dengluserver

import (
	"github.com/cmstar/go-denglu"
	"github.com/cmstar/go-errx"
)

// verify 按顺序校验请求的公共参数： appid 、 sign_type 、 timestamp 、 sign 。
// 校验不通过时返回对应错误码的 [errx.BizError] 。
func (e *Engine) verify(params map[string]string) error {
	for _, name := range []string{denglu.ParamAppID, denglu.ParamSignType, denglu.ParamTimestamp, denglu.ParamSign} {
		if _, ok := params[name]; !ok {
			return badParams(name)
		}
	}

	apiKey, ok := e.opts.Apps[params[denglu.ParamAppID]]
	if !ok {
		return bizError(denglu.ErrCodeSiteNotFound)
	}

	if params[denglu.ParamSignType] != string(denglu.SignatureMD5) {
		return bizError(denglu.ErrCodeUnsupportedSign)
	}

	timestamp, err := ParseTimestamp(params[denglu.ParamTimestamp])
	if err != nil {
		return errx.NewBizError(denglu.ErrCodeBadTimestamp, denglu.ErrorCodeDescription(denglu.ErrCodeBadTimestamp), err)
	}

	if err := e.opts.TimeChecker(timestamp); err != nil {
		return errx.NewBizError(denglu.ErrCodeBadTimestamp, denglu.ErrorCodeDescription(denglu.ErrCodeBadTimestamp), err)
	}

	if !denglu.VerifySign(params, apiKey) {
		return bizError(denglu.ErrCodeBadSign)
	}

	return nil
}

func bizError(code int) errx.BizError {
	return errx.NewBizError(code, denglu.ErrorCodeDescription(code), nil)
}
