package utils

import (
	"math"
	"testing"
)

const vecEpsilon = 1e-9

func vecAlmostEqual(a, b Vec2) bool {
	return math.Abs(a.X-b.X) < vecEpsilon && math.Abs(a.Y-b.Y) < vecEpsilon
}

func TestVec2Arithmetic(t *testing.T) {
	a := Vec2{X: 3, Y: 4}
	b := Vec2{X: 1, Y: -2}

	if got := a.Add(b); got != (Vec2{X: 4, Y: 2}) {
		t.Errorf("Add = %v, 期望 (4, 2)", got)
	}
	if got := a.Sub(b); got != (Vec2{X: 2, Y: 6}) {
		t.Errorf("Sub = %v, 期望 (2, 6)", got)
	}
	if got := a.Scale(0.5); got != (Vec2{X: 1.5, Y: 2}) {
		t.Errorf("Scale = %v, 期望 (1.5, 2)", got)
	}
	if got := a.Negate(); got != (Vec2{X: -3, Y: -4}) {
		t.Errorf("Negate = %v, 期望 (-3, -4)", got)
	}
	if got := a.Length(); got != 5 {
		t.Errorf("Length = %v, 期望 5", got)
	}
	if got := a.Distance(Vec2{}); got != 5 {
		t.Errorf("Distance = %v, 期望 5", got)
	}
}

func TestVec2Normalize(t *testing.T) {
	tests := []struct {
		name     string
		input    Vec2
		expected Vec2
	}{
		{"轴向", Vec2{X: 10, Y: 0}, Vec2{X: 1, Y: 0}},
		{"斜向", Vec2{X: 3, Y: 4}, Vec2{X: 0.6, Y: 0.8}},
		{"零向量", Vec2{}, Vec2{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.input.Normalize()
			if !vecAlmostEqual(got, tt.expected) {
				t.Errorf("Normalize(%v) = %v, 期望 %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestVec2Rotate(t *testing.T) {
	tests := []struct {
		name     string
		input    Vec2
		theta    float64
		expected Vec2
	}{
		{"90度", Vec2{X: 1, Y: 0}, math.Pi / 2, Vec2{X: 0, Y: 1}},
		{"180度", Vec2{X: 1, Y: 2}, math.Pi, Vec2{X: -1, Y: -2}},
		{"135度", Vec2{X: 1, Y: 0}, 3 * math.Pi / 4, Vec2{X: -math.Sqrt2 / 2, Y: math.Sqrt2 / 2}},
		{"零角度", Vec2{X: 5, Y: -3}, 0, Vec2{X: 5, Y: -3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.input.Rotate(tt.theta)
			if !vecAlmostEqual(got, tt.expected) {
				t.Errorf("Rotate(%v, %v) = %v, 期望 %v", tt.input, tt.theta, got, tt.expected)
			}
			if math.Abs(got.Length()-tt.input.Length()) > vecEpsilon {
				t.Errorf("旋转不应改变长度: %v -> %v", tt.input.Length(), got.Length())
			}
		})
	}
}

func TestFromAngle(t *testing.T) {
	got := FromAngle(math.Pi/2, 10)
	if !vecAlmostEqual(got, Vec2{X: 0, Y: 10}) {
		t.Errorf("FromAngle(π/2, 10) = %v, 期望 (0, 10)", got)
	}
	if !(Vec2{}).IsZero() || (Vec2{X: 1e-12}).IsZero() {
		t.Error("IsZero 判断错误")
	}
}
