package gallery

import (
	"testing"

	"github.com/profieldmanager/mediavault/pkg/internal/model"
)

func navFiles() []model.MediaFile {
	return []model.MediaFile{
		mf(1, "image"),
		mf(2, "video"),
		mf(3, "video"),
		mf(9, "pdf"), // 不参与导航
	}
}

func TestOpenLocatesByID(t *testing.T) {
	files := navFiles()
	l := NewLightbox()

	l.Open(files, files[1]) // id=2，可导航序列 [1 2 3] 中的位置 1

	if !l.IsOpen() || l.Current().ID != 2 {
		t.Fatal("open did not set current media")
	}

	if l.Index() != 1 {
		t.Errorf("index = %d, want 1", l.Index())
	}
}

func TestOpenDocumentHasNoIndex(t *testing.T) {
	files := navFiles()
	l := NewLightbox()

	l.Open(files, files[3]) // 文档：打开但不可导航

	if l.Current().ID != 9 {
		t.Fatal("document should still open")
	}

	if l.Index() != -1 {
		t.Errorf("index = %d, want -1 for document", l.Index())
	}
}

func TestNavigateWraparound(t *testing.T) {
	files := navFiles()
	l := NewLightbox()

	l.Open(files, files[1]) // index=1 (id=2)

	l.Navigate(files, Next)

	if l.Index() != 2 || l.Current().ID != 3 {
		t.Fatalf("after next: index=%d id=%d, want 2/3", l.Index(), l.Current().ID)
	}

	l.Navigate(files, Next) // 尾部回绕到头部

	if l.Index() != 0 || l.Current().ID != 1 {
		t.Fatalf("after wrap: index=%d id=%d, want 0/1", l.Index(), l.Current().ID)
	}

	l.Navigate(files, Prev) // 头部回绕到尾部

	if l.Index() != 2 || l.Current().ID != 3 {
		t.Fatalf("after prev wrap: index=%d id=%d, want 2/3", l.Index(), l.Current().ID)
	}
}

func TestNavigateRoundTrip(t *testing.T) {
	files := navFiles()
	l := NewLightbox()

	for start := 0; start < 3; start++ {
		nav := Navigable(files)
		l.Open(files, nav[start])

		l.Navigate(files, Next)
		l.Navigate(files, Prev)

		if l.Index() != start {
			t.Errorf("next+prev from %d landed at %d", start, l.Index())
		}
	}
}

func TestNavigateSingleItemIsIdentity(t *testing.T) {
	files := []model.MediaFile{mf(1, "image")}
	l := NewLightbox()

	l.Open(files, files[0])
	l.Rotate()

	l.Navigate(files, Next)

	if l.Index() != 0 || l.Current().ID != 1 {
		t.Error("single-item navigate must wrap to itself")
	}

	// 落点即使是同一项，旋转也要归零
	if l.Rotation() != 0 {
		t.Errorf("rotation = %d, want 0 after self-navigation", l.Rotation())
	}
}

func TestRotateCycle(t *testing.T) {
	l := NewLightbox()
	files := navFiles()
	l.Open(files, files[0])

	want := []int{90, 180, 270, 0}
	for _, w := range want {
		l.Rotate()

		if l.Rotation() != w {
			t.Errorf("rotation = %d, want %d", l.Rotation(), w)
		}
	}
}

func TestOpenResetsRotation(t *testing.T) {
	files := navFiles()
	l := NewLightbox()

	l.Open(files, files[0])
	l.Rotate()
	l.Rotate()

	// 重新打开同一项也要归零
	l.Open(files, files[0])

	if l.Rotation() != 0 {
		t.Errorf("rotation = %d, want 0 after reopen", l.Rotation())
	}
}

func TestCloseClearsCurrent(t *testing.T) {
	files := navFiles()
	l := NewLightbox()

	l.Open(files, files[0])
	l.Close()

	if l.IsOpen() || l.Current() != nil {
		t.Error("close must clear open media reference")
	}

	if l.Index() != -1 {
		t.Errorf("index = %d, want -1 when closed", l.Index())
	}
}

func TestNavigateAfterListShrinks(t *testing.T) {
	files := navFiles()
	l := NewLightbox()

	l.Open(files, files[2]) // id=3, index=2

	// 删除当前项后列表重取，导航基于新列表现算
	shrunk := []model.MediaFile{mf(1, "image"), mf(2, "video")}

	l.Navigate(shrunk, Next)

	if l.Current() == nil {
		t.Fatal("navigate on shrunk list must still land somewhere")
	}

	if got := l.Current().ID; got != 1 && got != 2 {
		t.Errorf("landed on id=%d, not in shrunk list", got)
	}
}
