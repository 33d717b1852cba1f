// coordinates.go 提供世界坐标与屏幕坐标之间的转换
//
// # 坐标系统概述
//
//   - **世界坐标**：物理单位，原点为重力井中心，Y 轴向上
//   - **屏幕坐标**：像素，原点为窗口左上角，Y 轴向下
//
// 两者通过 PixelsPerUnit（物理缩放系数）关联：
//
//	screenX = centerX + world.X * scale
//	screenY = centerY - world.Y * scale
package utils

// Viewport 描述世界到屏幕的映射
type Viewport struct {
	Width, Height int     // 逻辑屏幕尺寸（像素）
	Scale         float64 // 每个物理单位对应的像素数
}

// Center 返回屏幕中心（即世界原点所在的像素位置）
func (vp Viewport) Center() (float64, float64) {
	return float64(vp.Width) / 2, float64(vp.Height) / 2
}

// WorldToScreen 世界坐标 → 屏幕坐标
func (vp Viewport) WorldToScreen(p Vec2) (float64, float64) {
	cx, cy := vp.Center()
	return cx + p.X*vp.Scale, cy - p.Y*vp.Scale
}

// ScreenToWorld 屏幕坐标 → 世界坐标
func (vp Viewport) ScreenToWorld(x, y float64) Vec2 {
	cx, cy := vp.Center()
	return Vec2{X: (x - cx) / vp.Scale, Y: (cy - y) / vp.Scale}
}

// LengthToScreen 世界长度 → 像素长度
func (vp Viewport) LengthToScreen(l float64) float64 {
	return l * vp.Scale
}
