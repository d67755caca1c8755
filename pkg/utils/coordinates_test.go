package utils

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestGroundViewWorldToView(t *testing.T) {
	center := mgl64.Vec3{10, 0, 10}

	tests := []struct {
		name               string
		yaw                float64
		point              mgl64.Vec3
		wantRight, wantFwd float64
	}{
		{"中心", 0, center, 0, 0},
		{"前方", 0, mgl64.Vec3{10, 0, 12}, 0, 2},
		{"右方", 0, mgl64.Vec3{13, 0, 10}, 3, 0},
		{"忽略高度", 0, mgl64.Vec3{10, 30, 10}, 0, 0},
		{"镜头朝 +X", 90, mgl64.Vec3{11, 0, 10}, 0, 1},
		{"镜头朝 -Z", 180, mgl64.Vec3{10, 0, 9}, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			right, fwd := NewGroundView(center, tt.yaw).WorldToView(tt.point)
			if math.Abs(right-tt.wantRight) > 1e-9 || math.Abs(fwd-tt.wantFwd) > 1e-9 {
				t.Errorf("WorldToView(%v) = (%v, %v), want (%v, %v)", tt.point, right, fwd, tt.wantRight, tt.wantFwd)
			}
		})
	}
}

func TestGroundViewRoundTrip(t *testing.T) {
	view := NewGroundView(mgl64.Vec3{-3, 0, 7}, 37)
	p := mgl64.Vec3{4, 0, -2}

	right, fwd := view.WorldToView(p)
	back := view.ViewToWorld(right, fwd)
	if !back.ApproxEqualThreshold(p, 1e-9) {
		t.Errorf("round trip = %v, want %v", back, p)
	}
}
