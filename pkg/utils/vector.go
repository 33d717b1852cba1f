package utils

import "math"

// Vec2 二维向量（世界坐标，单位为物理单位）
//
// 所有方法都返回新值，不修改接收者。
type Vec2 struct {
	X, Y float64
}

// Add 向量相加
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub 向量相减
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale 数乘
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Negate 取反
func (v Vec2) Negate() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Length 向量长度
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// IsZero 是否为零向量
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Normalize 返回同方向的单位向量
// 零向量没有方向，原样返回零向量
func (v Vec2) Normalize() Vec2 {
	length := v.Length()
	if length == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / length, Y: v.Y / length}
}

// Rotate 绕原点逆时针旋转 theta 弧度
//
//	x' = x·cosθ - y·sinθ
//	y' = x·sinθ + y·cosθ
func (v Vec2) Rotate(theta float64) Vec2 {
	cos, sin := math.Cos(theta), math.Sin(theta)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// FromAngle 由极角和长度构造向量
func FromAngle(theta, length float64) Vec2 {
	return Vec2{X: length * math.Cos(theta), Y: length * math.Sin(theta)}
}

// Distance 两点间距离
func (v Vec2) Distance(o Vec2) float64 {
	return v.Sub(o).Length()
}
