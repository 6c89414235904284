// Package model 定义文件管理 API 的数据模型（服务端拥有的只读投影）.
package model

import (
	"encoding/json"
	"time"
)

// 服务端 fileType 是开放字符串，只有 image/video 有特殊渲染语义.
const (
	FileTypeImage = "image"
	FileTypeVideo = "video"
)

// FileKind 是 fileType 的封闭归类：Image | Video | Document.
// Document 是兜底分支，原始类型字符串保留在 MediaFile.FileType 中.
type FileKind int

const (
	KindImage FileKind = iota
	KindVideo
	KindDocument
)

// String 实现 fmt.Stringer.
func (k FileKind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindVideo:
		return "video"
	default:
		return "document"
	}
}

// UserSummary 上传者的非规范化摘要.
type UserSummary struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
}

// MediaFile 服务端文件记录. 客户端从不构造或销毁它，只读取与触发变更.
// ID 在单个项目的文件列表内稳定且唯一，是选择集合与灯箱定位的唯一键.
type MediaFile struct {
	ID                int64             `json:"id"`
	FileName          string            `json:"fileName"`
	OriginalName      string            `json:"originalName"`
	FilePath          string            `json:"filePath"` // 绝对 URL 或服务端相对路径，见 client.FileURL
	FileSize          int64             `json:"fileSize"` // 字节数，非负
	FileType          string            `json:"fileType"` // 开放字符串，仅 image/video 特判
	MimeType          string            `json:"mimeType"`
	Description       string            `json:"description,omitempty"`
	CreatedAt         time.Time         `json:"createdAt"`
	Annotations       []json.RawMessage `json:"annotations,omitempty"` // 有序的不透明标注对象
	AnnotatedImageURL string            `json:"annotatedImageUrl,omitempty"`
	UploadedBy        *UserSummary      `json:"uploadedBy,omitempty"`
}

// Kind 返回文件的封闭归类.
func (f *MediaFile) Kind() FileKind {
	switch f.FileType {
	case FileTypeImage:
		return KindImage
	case FileTypeVideo:
		return KindVideo
	default:
		return KindDocument
	}
}

// IsImage 判断是否为图片.
func (f *MediaFile) IsImage() bool { return f.Kind() == KindImage }

// IsVideo 判断是否为视频.
func (f *MediaFile) IsVideo() bool { return f.Kind() == KindVideo }
