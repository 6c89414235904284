package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"github.com/profieldmanager/mediavault/pkg/internal/model"
	"github.com/profieldmanager/mediavault/pkg/internal/types"
)

// ProjectFilesPath 返回项目文件列表的请求路径. 该路径同时充当缓存键，
// 失效与重取都以它为唯一标识.
func ProjectFilesPath(projectID int64) string {
	return fmt.Sprintf("/api/projects/%d/files", projectID)
}

// ListProjectFiles 拉取项目的全部文件记录，保持服务端返回顺序.
func (c *Client) ListProjectFiles(ctx context.Context, projectID int64) ([]model.MediaFile, error) {
	var files []model.MediaFile
	if err := c.doJSON(ctx, http.MethodGet, ProjectFilesPath(projectID), nil, &files); err != nil {
		return nil, err
	}

	return files, nil
}

// DeleteFile 删除单个文件. 单发不重试.
func (c *Client) DeleteFile(ctx context.Context, fileID int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/api/files/%d", fileID), nil, nil)
}

// SaveAnnotation 保存文件标注（覆盖式提交，标注数组整体替换）.
func (c *Client) SaveAnnotation(ctx context.Context, req types.SaveAnnotationRequest) error {
	return c.doJSON(ctx, http.MethodPost, "/api/files/annotations", req, nil)
}

// UploadPhoto 以 multipart 上传照片，字段为 file 与 description.
// 返回服务端创建的文件记录.
func (c *Client) UploadPhoto(ctx context.Context, projectID int64, content io.Reader, req types.UploadPhotoRequest) (*model.MediaFile, error) {
	var buf bytes.Buffer

	mw := multipart.NewWriter(&buf)

	part, err := createFilePart(mw, req)
	if err != nil {
		return nil, err
	}

	if _, err := io.Copy(part, content); err != nil {
		return nil, fmt.Errorf("copy upload content: %w", err)
	}

	if req.Description != "" {
		if err := mw.WriteField("description", req.Description); err != nil {
			return nil, fmt.Errorf("write description field: %w", err)
		}
	}

	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("finalize multipart body: %w", err)
	}

	httpReq, err := c.newRequest(ctx, http.MethodPost, ProjectFilesPath(projectID), &buf)
	if err != nil {
		return nil, err
	}

	httpReq.Header.Set("Content-Type", mw.FormDataContentType())

	var created model.MediaFile
	if err := c.do(httpReq, &created); err != nil {
		return nil, err
	}

	return &created, nil
}

// createFilePart 创建带内容类型的 file 表单部分.
func createFilePart(mw *multipart.Writer, req types.UploadPhotoRequest) (io.Writer, error) {
	if req.ContentType == "" {
		part, err := mw.CreateFormFile("file", req.FileName)
		if err != nil {
			return nil, fmt.Errorf("create file part: %w", err)
		}

		return part, nil
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, escapeQuotes(req.FileName)))
	h.Set("Content-Type", req.ContentType)

	part, err := mw.CreatePart(h)
	if err != nil {
		return nil, fmt.Errorf("create file part: %w", err)
	}

	return part, nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}

// FetchFileContent 按文件记录的 filePath 下载内容，供备份镜像使用.
// 调用方负责关闭返回的 ReadCloser.
func (c *Client) FetchFileContent(ctx context.Context, filePath string) (io.ReadCloser, int64, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, FileURL(c.baseURL, filePath), nil)
	if err != nil {
		return nil, 0, "", fmt.Errorf("build download request: %w", err)
	}

	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, 0, "", fmt.Errorf("download %s: %w", filePath, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		resp.Body.Close()

		return nil, 0, "", apiErrorFromBody(resp.StatusCode, data)
	}

	return resp.Body, resp.ContentLength, resp.Header.Get("Content-Type"), nil
}
