/*
denglu 是灯鹭（ DengLu ， http://open.denglu.cc ）社会化登录 RESTful API 的 Go 客户端。

[Client] 负责构建带签名的请求、发送 HTTP 请求、解析 JSON 结果，并将接口返回的错误转换为 [*ApiError] 。
各个业务接口（如 [Client.Bind] 、 [Client.Share] 、 [Client.GetMedia] ）只是对 [Client.Call] 的简单封装。

# 调用流程

	Client.Call(method, params)
	  -> 根据 method 从接口目录获取 URL 路径（找不到时使用空路径，由服务器返回错误）
	  -> 追加 timestamp 、 appid 、 sign_type
	  -> 按字符集编码参数值，基于编码后的值计算并追加 sign
	  -> POST application/x-www-form-urlencoded
	  -> 解析 JSON ；若返回的对象带有非零的 errorCode ，返回 *ApiError

# 签名算法

每个请求都带有以下参数，由 [Client] 自动追加，调用方给出的同名参数会被覆盖：
  - appid 灯鹭后台分配的 appID 。
  - sign_type 签名算法，当前固定为 MD5 。
  - timestamp 当前 UNIX 时间戳（秒），末尾补三个 0 ，形如毫秒值。
  - sign 签名。

签名的计算过程：
 1. 取除 sign 以外的全部参数，按参数名称的字节顺序升序排列。
 2. 依次将每个参数拼接为 name=value ，参数之间无分隔符。
 3. 末尾追加 apiKey 原文（不做 URL 编码）。
 4. 计算 MD5 ，使用小写 HEX 格式。

# 例子

appID 为 my_appid ， apiKey 为 my_apikey ，时间戳为 1662439087 ，调用 latestComment 接口，参数 count=5 。

参数表为：

	count=5
	appid=my_appid
	sign_type=MD5
	timestamp=1662439087000

排序后拼接，并追加 apiKey ，得到待签名串：

	appid=my_appidcount=5sign_type=MD5timestamp=1662439087000my_apikey

其 MD5 为 8661d353f83ce6c1906df285a92e4e72 ，最终请求为：

	POST http://open.denglu.cc/api/v4/latest_comment
	Content-Type: application/x-www-form-urlencoded

	appid=my_appid&count=5&sign=8661d353f83ce6c1906df285a92e4e72&sign_type=MD5&timestamp=1662439087000

# 字符集

[CharsetGBK] 用于 GBK 编码的网站：请求参数的值以 GBK 编码后再做 URL 编码；返回结果中的字符串（包括对象的 key ）被转换为 GBK 编码。
签名基于 GBK 编码后的参数值计算，即服务器收到的 URL 解码后的字节。默认的 [CharsetUTF8] 不做任何转换。

# 超时

请求超时后，按 [RetryPolicy] 以指数退避的方式重试，超过最大尝试次数后返回 [*TimeoutError] 。
*/
package denglu
