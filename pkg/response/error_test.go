package response

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveCanonicalPhrases(t *testing.T) {
	cases := map[int]string{
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

	for code, phrase := range cases {
		err := Resolve(code)
		assert.Equal(t, code, err.Code)
		assert.Equal(t, phrase, err.Message)
	}
}

func TestResolveKeepsExplicitMessage(t *testing.T) {
	err := Resolve(404, "User record not found")
	assert.Equal(t, 404, err.Code)
	assert.Equal(t, "User record not found", err.Message)
}

func TestResolveUnknownCodeFallsBackTo500(t *testing.T) {
	for _, code := range []int{0, 201, 302, 418, 599, 999, -1} {
		err := Resolve(code, "whatever")
		assert.Equal(t, 500, err.Code)
		assert.Equal(t, "InternalServerError", err.Message)
	}
}

func TestReasonPhrase(t *testing.T) {
	assert.Equal(t, "NotFound", ReasonPhrase(404))
	assert.Equal(t, "InternalServerError", ReasonPhrase(418))
}

// Equality is defined by code alone; the message is deliberately ignored.
func TestApiErrorEqualsIgnoresMessage(t *testing.T) {
	a := NewError(404, "User record not found")
	b := NewError(404, "NotFound")
	c := NewError(400, "NotFound")

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
	assert.False(t, a.Equals(nil))
}

func TestApiErrorJSONShape(t *testing.T) {
	raw, err := json.Marshal(NewError(422, "UnprocessableEntity"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"code":422,"message":"UnprocessableEntity"}`, string(raw))
}
