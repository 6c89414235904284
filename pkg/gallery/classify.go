// Package gallery 实现媒体画廊的核心状态机：文件归类、选择集合、
// 灯箱导航与旋转. 这些都是纯内存的同步状态转移，不做网络调用；
// 与协作方的交互集中在 Session 一层.
package gallery

import "github.com/profieldmanager/mediavault/pkg/internal/model"

// Classified 按 fileType 划分出的三个有序子序列，保持输入的相对顺序.
type Classified struct {
	Images    []model.MediaFile
	Videos    []model.MediaFile
	Documents []model.MediaFile
}

// Classify 把文件列表划分为 图片/视频/文档 三类. 纯函数，空输入得到三个空序列.
// image/video 之外的所有类型一律归入 Documents，原始类型保留在 FileType 字段.
func Classify(files []model.MediaFile) Classified {
	var c Classified

	for _, f := range files {
		switch f.Kind() {
		case model.KindImage:
			c.Images = append(c.Images, f)
		case model.KindVideo:
			c.Videos = append(c.Videos, f)
		default:
			c.Documents = append(c.Documents, f)
		}
	}

	return c
}

// Navigable 返回灯箱的可导航序列：images ++ videos，文档永不参与导航.
func (c Classified) Navigable() []model.MediaFile {
	nav := make([]model.MediaFile, 0, len(c.Images)+len(c.Videos))
	nav = append(nav, c.Images...)
	nav = append(nav, c.Videos...)

	return nav
}

// Navigable 是 Classify(files).Navigable() 的快捷方式，
// 每次导航都基于当前列表现算，列表变化（如删除后重取）立即生效.
func Navigable(files []model.MediaFile) []model.MediaFile {
	return Classify(files).Navigable()
}
