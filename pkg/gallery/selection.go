package gallery

import "github.com/profieldmanager/mediavault/pkg/internal/model"

// Selection 批量操作（如分享）的选择集合，只接受图片.
//
// 选择模式与集合内容相互独立：进入/退出选择模式不清空已选内容，
// 只有显式 Clear 会同时清空集合并退出选择模式.
type Selection struct {
	ids  map[int64]struct{}
	mode bool
}

// NewSelection 创建空选择集合，选择模式关闭.
func NewSelection() *Selection {
	return &Selection{ids: make(map[int64]struct{})}
}

// Toggle 切换文件的选中状态. 非图片一律忽略，
// 集合里永远不会出现非图片的 id.
func (s *Selection) Toggle(f *model.MediaFile) {
	if !f.IsImage() {
		return
	}

	if _, ok := s.ids[f.ID]; ok {
		delete(s.ids, f.ID)

		return
	}

	s.ids[f.ID] = struct{}{}
}

// SelectAll 用当前图片列表整体替换选择集合，非图片被过滤掉.
func (s *Selection) SelectAll(images []model.MediaFile) {
	s.ids = make(map[int64]struct{}, len(images))

	for _, f := range images {
		if f.IsImage() {
			s.ids[f.ID] = struct{}{}
		}
	}
}

// Clear 清空集合并退出选择模式. 幂等.
func (s *Selection) Clear() {
	s.ids = make(map[int64]struct{})
	s.mode = false
}

// IsSelected 判断文件是否选中.
func (s *Selection) IsSelected(f *model.MediaFile) bool {
	_, ok := s.ids[f.ID]

	return ok
}

// Count 返回选中数量.
func (s *Selection) Count() int {
	return len(s.ids)
}

// EnterMode 进入选择模式. 不清空已有选择.
func (s *Selection) EnterMode() {
	s.mode = true
}

// ExitMode 退出选择模式. 已选内容保留，再次进入时仍然有效.
func (s *Selection) ExitMode() {
	s.mode = false
}

// InMode 返回当前是否处于选择模式.
func (s *Selection) InMode() bool {
	return s.mode
}

// Selected 从文件列表中按选中 id 过滤出文件，保持列表顺序.
func (s *Selection) Selected(files []model.MediaFile) []model.MediaFile {
	out := make([]model.MediaFile, 0, len(s.ids))

	for _, f := range files {
		if _, ok := s.ids[f.ID]; ok {
			out = append(out, f)
		}
	}

	return out
}
