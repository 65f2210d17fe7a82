package dengluserver

import (
	"fmt"
	"strconv"
	"time"
)

// TimeCheckerFunc 校验请求参数 timestamp 所表示的时间，见 [ParseTimestamp] 。
// 若时间校验不通过，返回相关描述信息；否则返回 nil 表示校验通过。
type TimeCheckerFunc func(t time.Time) error

var (
	// 不校验时间的 [TimeCheckerFunc] 。 timestamp 参数仍须是合法的整数。
	NoTimeChecker TimeCheckerFunc = func(t time.Time) error {
		return nil
	}

	// 默认的 [TimeCheckerFunc] ：要求请求的时间与当前时间误差在 5 分钟内。
	DefaultTimeChecker TimeCheckerFunc = MaxDeviationTimeChecker(5*time.Minute, time.Now)
)

// ParseTimestamp 解析请求参数 timestamp 。
// 客户端发送的值是秒级 UNIX 时间戳末尾补三个 0 ，即形如毫秒的值，这里舍去毫秒部分，按秒还原时间。
func ParseTimestamp(s string) (time.Time, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad timestamp %q", s)
	}
	return time.Unix(v/1000, 0), nil
}

// MaxDeviationTimeChecker 返回一个 [TimeCheckerFunc] ，
// 其校验给定的时间与 now() 的误差必须小于等于 maxDeviation ，精确到秒。
// maxDeviation 为负数时，校验总是通过。 now 为 nil 时使用 [time.Now] 。
func MaxDeviationTimeChecker(maxDeviation time.Duration, now func() time.Time) TimeCheckerFunc {
	if now == nil {
		now = time.Now
	}

	return func(t time.Time) error {
		if maxDeviation < 0 {
			return nil
		}

		current := now().Truncate(time.Second)
		d := current.Sub(t)
		if d < 0 {
			d = -d
		}

		if d > maxDeviation {
			return fmt.Errorf("the deviation of time should be less than %v, the time is %d, got %d", maxDeviation, current.Unix(), t.Unix())
		}
		return nil
	}
}
