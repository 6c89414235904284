package gallery

import (
	"testing"

	"github.com/profieldmanager/mediavault/pkg/internal/model"
)

func TestSelectionToggle(t *testing.T) {
	s := NewSelection()
	img := mf(1, "image")

	s.Toggle(&img)

	if !s.IsSelected(&img) || s.Count() != 1 {
		t.Fatal("toggle should add unselected image")
	}

	s.Toggle(&img)

	if s.IsSelected(&img) || s.Count() != 0 {
		t.Fatal("toggle should remove selected image")
	}
}

func TestSelectionIgnoresNonImages(t *testing.T) {
	s := NewSelection()
	vid := mf(2, "video")
	doc := mf(3, "pdf")

	s.Toggle(&vid)
	s.Toggle(&doc)

	if s.Count() != 0 {
		t.Errorf("selection contains non-images, count = %d", s.Count())
	}

	// SelectAll 同样过滤掉混入的非图片
	s.SelectAll([]model.MediaFile{mf(1, "image"), vid, doc})

	if s.Count() != 1 {
		t.Errorf("count after SelectAll = %d, want 1", s.Count())
	}

	if s.IsSelected(&vid) || s.IsSelected(&doc) {
		t.Error("non-images selected after SelectAll")
	}
}

func TestSelectAllReplaces(t *testing.T) {
	s := NewSelection()
	a, b, c := mf(1, "image"), mf(2, "image"), mf(3, "image")

	s.Toggle(&a)
	s.SelectAll([]model.MediaFile{b, c})

	if s.IsSelected(&a) {
		t.Error("SelectAll must replace, not merge")
	}

	if !s.IsSelected(&b) || !s.IsSelected(&c) {
		t.Error("SelectAll missed images")
	}
}

func TestClearIdempotent(t *testing.T) {
	s := NewSelection()
	img := mf(1, "image")

	s.EnterMode()
	s.Toggle(&img)

	s.Clear()

	if s.Count() != 0 || s.InMode() {
		t.Fatal("clear must empty the set and exit selection mode")
	}

	// 再次 Clear 结果相同
	s.Clear()

	if s.Count() != 0 || s.InMode() {
		t.Fatal("clear must be idempotent")
	}
}

func TestModeTogglePreservesSelection(t *testing.T) {
	s := NewSelection()
	img := mf(1, "image")

	s.EnterMode()
	s.Toggle(&img)
	s.ExitMode()

	// 进出选择模式不清空集合
	if !s.IsSelected(&img) {
		t.Error("exiting selection mode must not clear selections")
	}

	s.EnterMode()

	if !s.IsSelected(&img) {
		t.Error("re-entering selection mode must not clear selections")
	}
}

func TestSelectedPreservesListOrder(t *testing.T) {
	s := NewSelection()
	files := []model.MediaFile{mf(3, "image"), mf(1, "image"), mf(2, "image")}

	for i := range files {
		s.Toggle(&files[i])
	}

	got := ids(s.Selected(files))
	if !equalIDs(got, []int64{3, 1, 2}) {
		t.Errorf("selected order = %v, want list order [3 1 2]", got)
	}
}
