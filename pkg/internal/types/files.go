// Package types 定义与文件管理 API 交互的请求/响应结构.
package types

import "encoding/json"

// SaveAnnotationRequest 保存标注请求（POST /api/files/annotations）.
type SaveAnnotationRequest struct {
	FileID            int64             `json:"fileId"            rule:"required,min=1"`
	Annotations       []json.RawMessage `json:"annotations"`                             // 有序的不透明标注对象
	AnnotatedImageURL string            `json:"annotatedImageUrl" rule:"omitempty,max=2048"`
}

// UploadPhotoRequest 上传照片请求（POST /api/projects/{id}/files，multipart）.
// Content 由调用方以 io.Reader 形式单独传入.
type UploadPhotoRequest struct {
	FileName    string `json:"file_name"   rule:"required,max=255"`
	Description string `json:"description" rule:"omitempty,max=2000"`
	ContentType string `json:"content_type,omitempty"` // 可选：内容类型，缺省由服务端探测
}

// MessageResponse 协作方的通用响应体，非 2xx 时 message 为人类可读错误.
type MessageResponse struct {
	Message string `json:"message"`
}
