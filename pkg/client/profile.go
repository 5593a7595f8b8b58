package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"Persona/pkg/response"
	"Persona/types"
)

// Profile 资料接口的类型化客户端，所有失败统一以 *response.ApiError 形态抛出
type Profile struct {
	baseURL string
	http    *http.Client
}

func NewProfile(baseURL string, httpClient ...*http.Client) *Profile {
	hc := http.DefaultClient
	if len(httpClient) > 0 && httpClient[0] != nil {
		hc = httpClient[0]
	}
	return &Profile{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    hc,
	}
}

type callOptions struct {
	retries int
}

type CallOption func(*callOptions)

// WithRetries 单次调用的重试次数，默认不重试（写操作尤其如此）
func WithRetries(n int) CallOption {
	return func(o *callOptions) {
		if n > 0 {
			o.retries = n
		}
	}
}

func (p *Profile) Get(ctx context.Context, id int64, opts ...CallOption) (*types.ProfileResp, error) {
	var profile *types.ProfileResp
	err := p.call(ctx, opts, func() *http.Request {
		req, _ := http.NewRequestWithContext(ctx, http.MethodGet,
			fmt.Sprintf("%s/api/profile/%d", p.baseURL, id), nil)
		return req
	}, &profile)
	return profile, err
}

func (p *Profile) Put(ctx context.Context, id int64, update *types.UpdateProfileReq, opts ...CallOption) error {
	body, err := json.Marshal(update)
	if err != nil {
		return response.NewError(500, err.Error())
	}
	return p.call(ctx, opts, func() *http.Request {
		req, _ := http.NewRequestWithContext(ctx, http.MethodPut,
			fmt.Sprintf("%s/api/profile/%d", p.baseURL, id), bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		return req
	}, nil)
}

func (p *Profile) UploadAvatar(ctx context.Context, id int64, filename, mimeType string, r io.Reader, opts ...CallOption) (string, error) {
	// 内容先读进内存，重试时要能整体重发
	data, err := io.ReadAll(r)
	if err != nil {
		return "", response.NewError(500, err.Error())
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="avatar"; filename=%q`, filename))
	header.Set("Content-Type", mimeType)
	part, err := writer.CreatePart(header)
	if err != nil {
		return "", response.NewError(500, err.Error())
	}
	if _, err := part.Write(data); err != nil {
		return "", response.NewError(500, err.Error())
	}
	if err := writer.Close(); err != nil {
		return "", response.NewError(500, err.Error())
	}
	body := buf.Bytes()

	var uploaded *types.UploadAvatarResp
	err = p.call(ctx, opts, func() *http.Request {
		req, _ := http.NewRequestWithContext(ctx, http.MethodPost,
			fmt.Sprintf("%s/api/profile/%d/avatar", p.baseURL, id), bytes.NewReader(body))
		req.Header.Set("Content-Type", writer.FormDataContentType())
		return req
	}, &uploaded)
	if err != nil {
		return "", err
	}
	if uploaded == nil {
		return "", response.Resolve(500, "empty response data")
	}
	return uploaded.Avatar, nil
}

// call 执行一次调用（带可选重试），非 200 响应和传输错误都归一成 ApiError
func (p *Profile) call(ctx context.Context, opts []CallOption, newReq func() *http.Request, out any) error {
	var options callOptions
	for _, opt := range opts {
		opt(&options)
	}

	var lastErr error
	for attempt := 0; attempt <= options.retries; attempt++ {
		lastErr = p.once(newReq(), out)
		if lastErr == nil {
			return nil
		}
		if ctx.Err() != nil {
			return lastErr
		}
	}
	return lastErr
}

func (p *Profile) once(req *http.Request, out any) error {
	resp, err := p.http.Do(req)
	if err != nil {
		return response.Resolve(500, err.Error())
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return response.Resolve(500, err.Error())
	}

	var envelope struct {
		Code    int             `json:"code"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return response.Resolve(resp.StatusCode)
	}

	if resp.StatusCode != http.StatusOK {
		return response.Resolve(envelope.Code, envelope.Message)
	}

	if out != nil && len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return response.Resolve(500, err.Error())
		}
	}
	return nil
}
