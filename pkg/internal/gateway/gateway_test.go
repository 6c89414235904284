package gateway

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/profieldmanager/mediavault/pkg/cache"
	"github.com/profieldmanager/mediavault/pkg/internal/client"
	"github.com/profieldmanager/mediavault/pkg/internal/model"
	"github.com/profieldmanager/mediavault/pkg/internal/storage/kv"
	"github.com/profieldmanager/mediavault/pkg/internal/types"
)

// mockAPI 记录调用次数的协作方桩.
type mockAPI struct {
	deleteCalls   int
	annotateCalls int
	uploadCalls   int

	deleteErr   error
	annotateErr error
	uploadErr   error

	files []model.MediaFile
}

func (m *mockAPI) DeleteFile(_ context.Context, _ int64) error {
	m.deleteCalls++

	return m.deleteErr
}

func (m *mockAPI) SaveAnnotation(_ context.Context, _ types.SaveAnnotationRequest) error {
	m.annotateCalls++

	return m.annotateErr
}

func (m *mockAPI) UploadPhoto(_ context.Context, _ int64, _ io.Reader, req types.UploadPhotoRequest) (*model.MediaFile, error) {
	m.uploadCalls++

	if m.uploadErr != nil {
		return nil, m.uploadErr
	}

	return &model.MediaFile{ID: 1000, FileName: req.FileName, FileType: "image"}, nil
}

// mockNotifier 捕获最近一次通知.
type mockNotifier struct {
	kind    NotifyKind
	title   string
	message string
	calls   int
}

func (m *mockNotifier) Notify(kind NotifyKind, title, message string) {
	m.kind = kind
	m.title = title
	m.message = message
	m.calls++
}

func newTestQueryCache(t *testing.T) *cache.QueryCache {
	t.Helper()

	store, err := kv.NewMemoryKV(context.Background(), nil)
	if err != nil {
		t.Fatalf("create memory kv: %v", err)
	}

	return cache.NewQueryCache(cache.NewCache(store), 0)
}

func TestDeleteFileInvalidatesCache(t *testing.T) {
	ctx := context.Background()
	qc := newTestQueryCache(t)
	api := &mockAPI{files: []model.MediaFile{{ID: 1, FileType: "image"}}}

	key := client.ProjectFilesPath(42)
	fetches := 0

	qc.RegisterFetcher(key, func(context.Context) (any, error) {
		fetches++

		return api.files, nil
	})

	// 预热缓存
	if _, err := cache.Fetch[[]model.MediaFile](ctx, qc, key); err != nil {
		t.Fatalf("warm cache: %v", err)
	}

	g := New(api, qc, nil, &mockNotifier{}, 42)

	api.files = nil // 删除后服务端列表为空

	if err := g.DeleteFile(ctx, 1); err != nil {
		t.Fatalf("DeleteFile: %v", err)
	}

	if fetches != 2 {
		t.Errorf("fetches = %d, want 2 (warm + refetch after invalidation)", fetches)
	}

	// 失效后读到的是重取的新列表
	files, err := cache.Fetch[[]model.MediaFile](ctx, qc, key)
	if err != nil {
		t.Fatalf("fetch after invalidation: %v", err)
	}

	if len(files) != 0 {
		t.Errorf("got %d files after delete, want 0", len(files))
	}
}

func TestDeleteFileSingleShot(t *testing.T) {
	api := &mockAPI{deleteErr: errors.New("connection refused")}
	n := &mockNotifier{}

	g := New(api, newTestQueryCache(t), nil, n, 42)

	if err := g.DeleteFile(context.Background(), 7); err == nil {
		t.Fatal("expected error")
	}

	// 失败不重试
	if api.deleteCalls != 1 {
		t.Errorf("deleteCalls = %d, want 1", api.deleteCalls)
	}

	if n.kind != NotifyError {
		t.Errorf("kind = %q, want error", n.kind)
	}

	// 传输失败无服务端信息，用兜底文案
	if n.message != msgDeleteFailed {
		t.Errorf("message = %q, want %q", n.message, msgDeleteFailed)
	}
}

func TestUploadRejectionUsesServerMessage(t *testing.T) {
	api := &mockAPI{uploadErr: &client.APIError{
		StatusCode: http.StatusRequestEntityTooLarge,
		Message:    "too large",
	}}
	n := &mockNotifier{}

	g := New(api, newTestQueryCache(t), nil, n, 42)

	_, err := g.UploadPhoto(context.Background(), strings.NewReader("x"),
		types.UploadPhotoRequest{FileName: "big.jpg"})
	if err == nil {
		t.Fatal("expected error")
	}

	// 服务端给出的 message 原样透出
	if n.message != "too large" {
		t.Errorf("message = %q, want %q", n.message, "too large")
	}

	if api.uploadCalls != 1 {
		t.Errorf("uploadCalls = %d, want 1", api.uploadCalls)
	}
}

func TestSaveAnnotationValidation(t *testing.T) {
	api := &mockAPI{}
	n := &mockNotifier{}

	g := New(api, newTestQueryCache(t), nil, n, 42)

	// 缺少 fileId，不应发出请求
	err := g.SaveAnnotation(context.Background(), types.SaveAnnotationRequest{})
	if err == nil {
		t.Fatal("expected validation error")
	}

	if api.annotateCalls != 0 {
		t.Errorf("annotateCalls = %d, want 0", api.annotateCalls)
	}

	if n.calls != 1 {
		t.Errorf("notifier calls = %d, want 1", n.calls)
	}
}

func TestUploadSuccessReturnsCreated(t *testing.T) {
	api := &mockAPI{}
	n := &mockNotifier{}

	g := New(api, newTestQueryCache(t), nil, n, 42)

	created, err := g.UploadPhoto(context.Background(), strings.NewReader("jpeg"),
		types.UploadPhotoRequest{FileName: "a.jpg"})
	if err != nil {
		t.Fatalf("UploadPhoto: %v", err)
	}

	if created.ID != 1000 {
		t.Errorf("created.ID = %d, want 1000", created.ID)
	}

	// 成功不弹错误通知
	if n.kind == NotifyError {
		t.Error("unexpected error notification on success")
	}
}
