package client

import "strings"

// FileURL 把文件记录的 filePath 规范化为可访问地址：
// 已是绝对 http(s) 地址的原样返回，其余一律视为服务端根路径下的相对路径.
func FileURL(baseURL, filePath string) string {
	if strings.HasPrefix(filePath, "http://") || strings.HasPrefix(filePath, "https://") {
		return filePath
	}

	base := strings.TrimRight(baseURL, "/")

	if !strings.HasPrefix(filePath, "/") {
		filePath = "/" + filePath
	}

	return base + filePath
}

// FileURLFrom 以客户端自身的 baseURL 做规范化.
func (c *Client) FileURLFrom(filePath string) string {
	return FileURL(c.baseURL, filePath)
}
