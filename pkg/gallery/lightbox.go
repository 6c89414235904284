package gallery

import "github.com/profieldmanager/mediavault/pkg/internal/model"

// Direction 灯箱导航方向.
type Direction int

const (
	Prev Direction = iota
	Next
)

// Lightbox 全屏查看器的状态：当前打开的媒体、它在可导航序列中的
// 位置，以及每次查看的瞬态旋转角度.
//
// 可导航序列在每次 Open/Navigate 时基于传入的文件列表现算，
// 不缓存：底层列表在两次操作之间可能已经变化（例如删除后重取）.
type Lightbox struct {
	current  *model.MediaFile
	index    int
	rotation int
}

// NewLightbox 创建关闭状态的灯箱.
func NewLightbox() *Lightbox {
	return &Lightbox{index: -1}
}

// Open 在文件列表中按 id 定位并打开媒体. 文档不在可导航序列中，
// 此时 index 为 -1，但媒体照常打开（无 prev/next）. 旋转归零.
func (l *Lightbox) Open(files []model.MediaFile, f model.MediaFile) {
	nav := Navigable(files)

	l.index = indexOf(nav, f.ID)
	l.current = &f
	l.rotation = 0
}

// Navigate 在可导航序列上前进或后退一格，两端回绕.
// 序列为空或灯箱未打开时是 no-op. 每次导航旋转都归零，
// 即使落点还是同一项（单元素序列回绕到自身）.
func (l *Lightbox) Navigate(files []model.MediaFile, dir Direction) {
	if l.current == nil {
		return
	}

	nav := Navigable(files)
	if len(nav) == 0 {
		return
	}

	// 列表可能已变化，优先按当前 id 重新定位
	idx := indexOf(nav, l.current.ID)
	if idx < 0 {
		idx = l.index
		if idx < 0 || idx >= len(nav) {
			idx = 0
		}
	}

	switch dir {
	case Prev:
		idx--
		if idx < 0 {
			idx = len(nav) - 1
		}
	case Next:
		idx++
		if idx >= len(nav) {
			idx = 0
		}
	}

	item := nav[idx]
	l.index = idx
	l.current = &item
	l.rotation = 0
}

// Close 关闭灯箱. index 与 rotation 留待下次 Open 时重置.
func (l *Lightbox) Close() {
	l.current = nil
}

// Rotate 旋转 +90 度，模 360. 仅对图片渲染有意义，但状态本身
// 不区分媒体类型，由展示层决定是否应用变换.
func (l *Lightbox) Rotate() {
	l.rotation = (l.rotation + 90) % 360
}

// Current 返回当前打开的媒体，关闭时为 nil.
func (l *Lightbox) Current() *model.MediaFile {
	return l.current
}

// Index 返回当前媒体在可导航序列中的位置，未打开或不可导航时为 -1.
func (l *Lightbox) Index() int {
	if l.current == nil {
		return -1
	}

	return l.index
}

// Rotation 返回当前旋转角度（0/90/180/270）.
func (l *Lightbox) Rotation() int {
	return l.rotation
}

// IsOpen 返回灯箱是否打开.
func (l *Lightbox) IsOpen() bool {
	return l.current != nil
}

// indexOf 按 id 在序列中定位，找不到返回 -1.
func indexOf(files []model.MediaFile, id int64) int {
	for i := range files {
		if files[i].ID == id {
			return i
		}
	}

	return -1
}
