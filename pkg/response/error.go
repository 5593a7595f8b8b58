package response

// reasonPhrases is the closed set of status codes the API is allowed to emit.
var reasonPhrases = map[int]string{
	200: "OK",
	400: "BadRequest",
	401: "Unauthorized",
	403: "Forbidden",
	404: "NotFound",
	405: "MethodNotAllowed",
	408: "Timeout",
	409: "Conflict",
	412: "PreconditionFailed",
	413: "RequestTooLarge",
	415: "UnsupportedMediaType",
	422: "UnprocessableEntity",
	429: "TooManyRequests",
	500: "InternalServerError",
	501: "NotImplemented",
	502: "BadGateway",
	503: "ServiceUnavailable",
}

// ApiError 统一的业务错误值，序列化形态固定为 {code, message}
type ApiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *ApiError) Error() string {
	return e.Message
}

// Equals 只按 code 判等，message 不参与比较
func (e *ApiError) Equals(other *ApiError) bool {
	if other == nil {
		return false
	}
	return e.Code == other.Code
}

func NewError(code int, msg string) *ApiError {
	return &ApiError{
		Code:    code,
		Message: msg,
	}
}

// ReasonPhrase 返回状态码的标准描述，未知码一律按 InternalServerError
func ReasonPhrase(code int) string {
	if phrase, ok := reasonPhrases[code]; ok {
		return phrase
	}
	return "InternalServerError"
}

// Resolve 把状态码归一化为 ApiError。
// 不在表内的 code 不保留，直接落到 500（宁可丢失精度也不透传未知码）。
func Resolve(code int, message ...string) *ApiError {
	phrase, ok := reasonPhrases[code]
	if !ok {
		return NewError(500, "InternalServerError")
	}
	if len(message) > 0 && message[0] != "" {
		return NewError(code, message[0])
	}
	return NewError(code, phrase)
}
