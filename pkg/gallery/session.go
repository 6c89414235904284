package gallery

import (
	"context"
	"errors"
	"io"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/profieldmanager/mediavault/pkg/cache"
	"github.com/profieldmanager/mediavault/pkg/internal/client"
	"github.com/profieldmanager/mediavault/pkg/internal/gateway"
	"github.com/profieldmanager/mediavault/pkg/internal/model"
	"github.com/profieldmanager/mediavault/pkg/internal/types"
)

// 画廊的展示形态与标签页.
const (
	ViewGrid = "grid"
	ViewList = "list"

	TabPreview  = "preview"
	TabAnnotate = "annotate"
)

// ErrFileNotFound 列表中找不到指定 id 的文件.
var ErrFileNotFound = errors.New("file not found in project list")

// ErrNothingSelected 分享前置校验失败：没有选中任何文件.
var ErrNothingSelected = errors.New("no files selected")

// FileAPI Session 依赖的协作方操作全集.
type FileAPI interface {
	gateway.API

	ListProjectFiles(ctx context.Context, projectID int64) ([]model.MediaFile, error)
}

// Session 单个项目的画廊会话：文件列表（经查询缓存）、选择集合、
// 灯箱与变更网关的装配点. 本地状态随会话创建而初始化，随会话
// 丢弃而消失，从不持久化.
type Session struct {
	Selection *Selection
	Lightbox  *Lightbox

	api       FileAPI
	gw        *gateway.Gateway
	qc        *cache.QueryCache
	notifier  gateway.Notifier
	projectID int64
	key       string

	viewMode  string
	activeTab string
}

// NewSession 创建画廊会话并把文件列表拉取函数注册进查询缓存.
// pub 可为 nil（不广播事件），notifier 为 nil 时落到日志.
func NewSession(api FileAPI, qc *cache.QueryCache, pub message.Publisher, notifier gateway.Notifier, projectID int64) *Session {
	if notifier == nil {
		notifier = gateway.LogNotifier{}
	}

	key := client.ProjectFilesPath(projectID)

	qc.RegisterFetcher(key, func(ctx context.Context) (any, error) {
		return api.ListProjectFiles(ctx, projectID)
	})

	return &Session{
		Selection: NewSelection(),
		Lightbox:  NewLightbox(),
		api:       api,
		gw:        gateway.New(api, qc, pub, notifier, projectID),
		qc:        qc,
		notifier:  notifier,
		projectID: projectID,
		key:       key,
		viewMode:  ViewGrid,
		activeTab: TabPreview,
	}
}

// Files 返回项目文件列表，优先读缓存，未命中时拉取.
func (s *Session) Files(ctx context.Context) ([]model.MediaFile, error) {
	return cache.Fetch[[]model.MediaFile](ctx, s.qc, s.key)
}

// Classify 返回当前列表的归类结果.
func (s *Session) Classify(ctx context.Context) (Classified, error) {
	files, err := s.Files(ctx)
	if err != nil {
		return Classified{}, err
	}

	return Classify(files), nil
}

// Open 按 id 打开灯箱.
func (s *Session) Open(ctx context.Context, fileID int64) error {
	files, err := s.Files(ctx)
	if err != nil {
		return err
	}

	idx := indexOf(files, fileID)
	if idx < 0 {
		return ErrFileNotFound
	}

	s.Lightbox.Open(files, files[idx])

	return nil
}

// Navigate 在可导航序列上移动灯箱.
func (s *Session) Navigate(ctx context.Context, dir Direction) error {
	files, err := s.Files(ctx)
	if err != nil {
		return err
	}

	s.Lightbox.Navigate(files, dir)

	return nil
}

// Delete 删除文件. 成功后若被删文件正打开在灯箱中，关闭灯箱；
// 失败时本地状态不变，文件仍留在列表与灯箱里.
func (s *Session) Delete(ctx context.Context, fileID int64) error {
	if err := s.gw.DeleteFile(ctx, fileID); err != nil {
		return err
	}

	if cur := s.Lightbox.Current(); cur != nil && cur.ID == fileID {
		s.Lightbox.Close()
	}

	return nil
}

// SaveAnnotation 保存标注. 成功后把活动标签切回预览.
func (s *Session) SaveAnnotation(ctx context.Context, req types.SaveAnnotationRequest) error {
	if err := s.gw.SaveAnnotation(ctx, req); err != nil {
		return err
	}

	s.activeTab = TabPreview

	return nil
}

// Upload 上传照片.
func (s *Session) Upload(ctx context.Context, content io.Reader, req types.UploadPhotoRequest) (*model.MediaFile, error) {
	return s.gw.UploadPhoto(ctx, content, req)
}

// Share 返回待分享的选中文件. 零选择是本地前置错误，
// 直接通知用户，不发任何请求.
func (s *Session) Share(ctx context.Context) ([]model.MediaFile, error) {
	if s.Selection.Count() == 0 {
		s.notifier.Notify(gateway.NotifyError, "Error", "No files selected")

		return nil, ErrNothingSelected
	}

	files, err := s.Files(ctx)
	if err != nil {
		return nil, err
	}

	return s.Selection.Selected(files), nil
}

// ViewMode 返回当前展示形态（grid/list）.
func (s *Session) ViewMode() string {
	return s.viewMode
}

// SetViewMode 切换展示形态，未知值忽略.
func (s *Session) SetViewMode(mode string) {
	if mode == ViewGrid || mode == ViewList {
		s.viewMode = mode
	}
}

// ActiveTab 返回当前标签页（preview/annotate）.
func (s *Session) ActiveTab() string {
	return s.activeTab
}

// SetActiveTab 切换标签页，未知值忽略.
func (s *Session) SetActiveTab(tab string) {
	if tab == TabPreview || tab == TabAnnotate {
		s.activeTab = tab
	}
}
