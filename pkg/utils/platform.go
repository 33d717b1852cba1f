//go:build !mobile

package utils

import "os"

// IsMobile 是否按移动端运行
// 桌面端只在设置了 MobileEmulateEnv 时返回 true
func IsMobile() bool {
	return os.Getenv(MobileEmulateEnv) == "1"
}
