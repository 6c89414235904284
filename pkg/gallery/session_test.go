package gallery

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/profieldmanager/mediavault/pkg/cache"
	"github.com/profieldmanager/mediavault/pkg/internal/client"
	"github.com/profieldmanager/mediavault/pkg/internal/gateway"
	"github.com/profieldmanager/mediavault/pkg/internal/model"
	"github.com/profieldmanager/mediavault/pkg/internal/storage/kv"
	"github.com/profieldmanager/mediavault/pkg/internal/types"
)

// stubAPI 内存版协作方：删除直接改本地列表.
type stubAPI struct {
	files []model.MediaFile

	deleteErr   error
	annotateErr error
	listCalls   int
}

func (a *stubAPI) ListProjectFiles(_ context.Context, _ int64) ([]model.MediaFile, error) {
	a.listCalls++

	out := make([]model.MediaFile, len(a.files))
	copy(out, a.files)

	return out, nil
}

func (a *stubAPI) DeleteFile(_ context.Context, fileID int64) error {
	if a.deleteErr != nil {
		return a.deleteErr
	}

	kept := a.files[:0]

	for _, f := range a.files {
		if f.ID != fileID {
			kept = append(kept, f)
		}
	}

	a.files = kept

	return nil
}

func (a *stubAPI) SaveAnnotation(_ context.Context, _ types.SaveAnnotationRequest) error {
	return a.annotateErr
}

func (a *stubAPI) UploadPhoto(_ context.Context, _ int64, _ io.Reader, req types.UploadPhotoRequest) (*model.MediaFile, error) {
	created := model.MediaFile{ID: 100, FileName: req.FileName, FileType: "image"}
	a.files = append(a.files, created)

	return &created, nil
}

// stubNotifier 捕获最近一次通知.
type stubNotifier struct {
	kind    gateway.NotifyKind
	message string
	calls   int
}

func (n *stubNotifier) Notify(kind gateway.NotifyKind, _, message string) {
	n.kind = kind
	n.message = message
	n.calls++
}

func newTestSession(t *testing.T, api *stubAPI, n gateway.Notifier) *Session {
	t.Helper()

	store, err := kv.NewMemoryKV(context.Background(), nil)
	if err != nil {
		t.Fatalf("create memory kv: %v", err)
	}

	qc := cache.NewQueryCache(cache.NewCache(store), 0)

	return NewSession(api, qc, nil, n, 42)
}

func TestDeleteClosesOpenLightbox(t *testing.T) {
	ctx := context.Background()
	api := &stubAPI{files: []model.MediaFile{mf(1, "image"), mf(2, "video")}}
	s := newTestSession(t, api, &stubNotifier{})

	if err := s.Open(ctx, 1); err != nil {
		t.Fatalf("Open: %v", err)
	}

	if err := s.Delete(ctx, 1); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if s.Lightbox.IsOpen() {
		t.Error("lightbox must close when the open file is deleted")
	}

	// 删除后重取，列表里不再有该文件
	files, err := s.Files(ctx)
	if err != nil {
		t.Fatalf("Files: %v", err)
	}

	if len(files) != 1 || files[0].ID != 2 {
		t.Errorf("files after delete = %v", ids(files))
	}
}

func TestDeleteOtherFileKeepsLightboxOpen(t *testing.T) {
	ctx := context.Background()
	api := &stubAPI{files: []model.MediaFile{mf(1, "image"), mf(2, "video")}}
	s := newTestSession(t, api, &stubNotifier{})

	if err := s.Open(ctx, 2); err != nil {
		t.Fatalf("Open: %v", err)
	}

	if err := s.Delete(ctx, 1); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if !s.Lightbox.IsOpen() || s.Lightbox.Current().ID != 2 {
		t.Error("deleting another file must not close the lightbox")
	}
}

func TestDeleteFailureLeavesStateUnchanged(t *testing.T) {
	ctx := context.Background()
	api := &stubAPI{
		files:     []model.MediaFile{mf(1, "image")},
		deleteErr: &client.APIError{StatusCode: 403, Message: "forbidden"},
	}
	n := &stubNotifier{}
	s := newTestSession(t, api, n)

	if err := s.Open(ctx, 1); err != nil {
		t.Fatalf("Open: %v", err)
	}

	if err := s.Delete(ctx, 1); err == nil {
		t.Fatal("expected delete error")
	}

	// 失败时灯箱保持打开，文件仍在列表中
	if !s.Lightbox.IsOpen() {
		t.Error("lightbox must stay open on delete failure")
	}

	files, _ := s.Files(ctx)
	if len(files) != 1 {
		t.Errorf("files = %v, want unchanged", ids(files))
	}

	if n.kind != gateway.NotifyError || n.message != "forbidden" {
		t.Errorf("notification = %q/%q, want error/forbidden", n.kind, n.message)
	}
}

func TestShareRequiresSelection(t *testing.T) {
	ctx := context.Background()
	api := &stubAPI{files: []model.MediaFile{mf(1, "image")}}
	n := &stubNotifier{}
	s := newTestSession(t, api, n)

	_, err := s.Share(ctx)
	if !errors.Is(err, ErrNothingSelected) {
		t.Fatalf("err = %v, want ErrNothingSelected", err)
	}

	// 本地前置错误：通知用户且不触发任何网络请求
	if n.calls != 1 {
		t.Errorf("notifier calls = %d, want 1", n.calls)
	}

	if api.listCalls != 0 {
		t.Errorf("listCalls = %d, want 0 for local precondition failure", api.listCalls)
	}
}

func TestShareReturnsSelectedInOrder(t *testing.T) {
	ctx := context.Background()
	api := &stubAPI{files: []model.MediaFile{mf(3, "image"), mf(1, "image"), mf(2, "video")}}
	s := newTestSession(t, api, &stubNotifier{})

	files, err := s.Files(ctx)
	if err != nil {
		t.Fatalf("Files: %v", err)
	}

	s.Selection.EnterMode()
	s.Selection.SelectAll(Classify(files).Images)

	got, err := s.Share(ctx)
	if err != nil {
		t.Fatalf("Share: %v", err)
	}

	if !equalIDs(ids(got), []int64{3, 1}) {
		t.Errorf("shared = %v, want [3 1]", ids(got))
	}
}

func TestSaveAnnotationSwitchesTabBack(t *testing.T) {
	ctx := context.Background()
	api := &stubAPI{files: []model.MediaFile{mf(1, "image")}}
	s := newTestSession(t, api, &stubNotifier{})

	s.SetActiveTab(TabAnnotate)

	err := s.SaveAnnotation(ctx, types.SaveAnnotationRequest{FileID: 1})
	if err != nil {
		t.Fatalf("SaveAnnotation: %v", err)
	}

	if s.ActiveTab() != TabPreview {
		t.Errorf("activeTab = %q, want preview after save", s.ActiveTab())
	}
}

func TestSaveAnnotationFailureKeepsTab(t *testing.T) {
	ctx := context.Background()
	api := &stubAPI{
		files:       []model.MediaFile{mf(1, "image")},
		annotateErr: errors.New("boom"),
	}
	s := newTestSession(t, api, &stubNotifier{})

	s.SetActiveTab(TabAnnotate)

	if err := s.SaveAnnotation(ctx, types.SaveAnnotationRequest{FileID: 1}); err == nil {
		t.Fatal("expected error")
	}

	// 失败时编辑器状态不变，标签页留在标注视图
	if s.ActiveTab() != TabAnnotate {
		t.Errorf("activeTab = %q, want annotate on failure", s.ActiveTab())
	}
}

func TestUploadAppearsAfterRefetch(t *testing.T) {
	ctx := context.Background()
	api := &stubAPI{files: []model.MediaFile{mf(1, "image")}}
	s := newTestSession(t, api, &stubNotifier{})

	created, err := s.Upload(ctx, nil, types.UploadPhotoRequest{FileName: "new.jpg"})
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}

	files, err := s.Files(ctx)
	if err != nil {
		t.Fatalf("Files: %v", err)
	}

	found := false

	for _, f := range files {
		if f.ID == created.ID {
			found = true
		}
	}

	if !found {
		t.Error("uploaded file must appear after cache invalidation refetch")
	}
}
