// Package client 实现文件管理 API（外部协作方）的 REST 客户端.
//
// 协作方契约（实现方在别处，不在本仓库范围内）：
//   - GET    /api/projects/{id}/files   文件列表
//   - DELETE /api/files/{id}            删除文件
//   - POST   /api/files/annotations     保存标注
//   - POST   /api/projects/{id}/files   multipart 上传（file + description）
//   - GET    /api/settings/company      公司配置
//   - PUT    /api/settings/company
//   - GET    /api/settings/dispatch     派单偏好
//   - PUT    /api/settings/dispatch
//   - GET    /api/backup/jobs           备份任务列表
//   - POST   /api/backup/trigger        触发服务端备份
//
// 非 2xx 响应统一解析 {message} JSON 体为 *APIError；解析失败时回退为通用信息.
// 不重试、不退避、无幂等键：重复调用就是一次新的独立请求.
package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/profieldmanager/mediavault/pkg/configs"
	"github.com/profieldmanager/mediavault/pkg/internal/types"
)

// APIError 应用层拒绝（非 2xx 响应），携带服务端给出的人类可读信息.
type APIError struct {
	StatusCode int
	Message    string
}

// Error 实现 error 接口.
func (e *APIError) Error() string {
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.StatusCode)
}

// Client 文件管理 API 客户端.
type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
}

// New 根据配置创建客户端.
func New(cfg *configs.APIConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.Token,
		httpc: &http.Client{
			Timeout: cfg.GetTimeoutDuration(),
		},
	}
}

// BaseURL 返回配置的 API 地址（无尾部斜杠）.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// newRequest 构造请求并附加认证头.
func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build request %s %s: %w", method, path, err)
	}

	req.Header.Set("Accept", "application/json")

	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	return req, nil
}

// doJSON 发送 JSON 请求并解析 JSON 响应. in/out 可为 nil.
func (c *Client) doJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader

	if in != nil {
		data, err := sonic.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}

		body = bytes.NewReader(data)
	}

	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return err
	}

	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.do(req, out)
}

// do 执行请求、归一化错误并可选解码响应体.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpc.Do(req)
	if err != nil {
		// 传输失败（无响应）
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return apiErrorFromBody(resp.StatusCode, data)
	}

	if out != nil && len(data) > 0 {
		if err := sonic.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}

	return nil
}

// apiErrorFromBody 从非 2xx 响应体提取 {message}；无法解析时回退为通用信息.
func apiErrorFromBody(status int, data []byte) *APIError {
	var mr types.MessageResponse
	if err := sonic.Unmarshal(data, &mr); err == nil && mr.Message != "" {
		return &APIError{StatusCode: status, Message: mr.Message}
	}

	return &APIError{StatusCode: status, Message: http.StatusText(status)}
}
