//go:build !mobile

// 桌面端构建时 mobile 包只剩这个占位函数，
// 真正的绑定入口在 mobile.go，需要 -tags mobile。
package mobile

// Dummy 让包在桌面端也能被引用
func Dummy() {}
