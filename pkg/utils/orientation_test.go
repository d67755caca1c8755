package utils

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const testEpsilon = 1e-9

func vecNear(a, b mgl64.Vec3) bool {
	return a.ApproxEqualThreshold(b, 1e-6)
}

func TestCalculateMoveDirection(t *testing.T) {
	tests := []struct {
		name       string
		forward    mgl64.Vec3
		right      mgl64.Vec3
		horizontal float64
		vertical   float64
		want       mgl64.Vec3
	}{
		{
			name:     "forward input with axis aligned camera",
			forward:  mgl64.Vec3{0, 0, 1},
			right:    mgl64.Vec3{1, 0, 0},
			vertical: 1,
			want:     mgl64.Vec3{0, 0, 1},
		},
		{
			name:       "strafe right",
			forward:    mgl64.Vec3{0, 0, 1},
			right:      mgl64.Vec3{1, 0, 0},
			horizontal: 1,
			want:       mgl64.Vec3{1, 0, 0},
		},
		{
			name:       "diagonal input is clamped to unit length",
			forward:    mgl64.Vec3{0, 0, 1},
			right:      mgl64.Vec3{1, 0, 0},
			horizontal: 1,
			vertical:   1,
			want:       mgl64.Vec3{math.Sqrt2 / 2, 0, math.Sqrt2 / 2},
		},
		{
			name:     "analog input keeps sub-unit magnitude",
			forward:  mgl64.Vec3{0, 0, 1},
			right:    mgl64.Vec3{1, 0, 0},
			vertical: 0.5,
			want:     mgl64.Vec3{0, 0, 0.5},
		},
		{
			name:     "pitched camera is flattened to the ground",
			forward:  mgl64.Vec3{0, -0.6, 0.8},
			right:    mgl64.Vec3{1, 0, 0},
			vertical: 1,
			want:     mgl64.Vec3{0, 0, 1},
		},
		{
			name:     "camera looking straight down yields no forward motion",
			forward:  mgl64.Vec3{0, -1, 0},
			right:    mgl64.Vec3{1, 0, 0},
			vertical: 1,
			want:     mgl64.Vec3{0, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateMoveDirection(tt.forward, tt.right, tt.horizontal, tt.vertical)
			if !vecNear(got, tt.want) {
				t.Errorf("CalculateMoveDirection() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCalculateMoveDirectionStaysOnGroundAndUnitBounded(t *testing.T) {
	cameras := []mgl64.Vec3{
		{0, 0, 1},
		{0.3, -0.5, 0.8},
		{-1, 0.2, 0},
		{0.7, -0.7, -0.1},
	}
	for _, fwd := range cameras {
		right := fwd.Cross(WorldUp).Mul(-1)
		for h := -1.0; h <= 1.0; h += 0.25 {
			for v := -1.0; v <= 1.0; v += 0.25 {
				if InputMagnitude(h, v) < 0.1 {
					continue
				}
				dir := CalculateMoveDirection(fwd, right, h, v)
				if dir.Len() > 1+testEpsilon {
					t.Fatalf("|dir| = %v > 1 for camera %v input (%v, %v)", dir.Len(), fwd, h, v)
				}
				if math.Abs(dir.Y()) > testEpsilon {
					t.Fatalf("dir.y = %v, want 0 for camera %v input (%v, %v)", dir.Y(), fwd, h, v)
				}
			}
		}
	}
}

func TestLookRotation(t *testing.T) {
	tests := []struct {
		dir     mgl64.Vec3
		wantYaw float64
	}{
		{mgl64.Vec3{0, 0, 1}, 0},
		{mgl64.Vec3{1, 0, 0}, 90},
		{mgl64.Vec3{-1, 0, 0}, -90},
		{mgl64.Vec3{0, 0, 0.3}, 0},
	}
	for _, tt := range tests {
		q := LookRotation(tt.dir)
		if got := YawDegrees(q); math.Abs(got-tt.wantYaw) > 1e-6 {
			t.Errorf("YawDegrees(LookRotation(%v)) = %v, want %v", tt.dir, got, tt.wantYaw)
		}
		facing := q.Rotate(WorldForward)
		want, _ := SafeNormalize(tt.dir)
		if !vecNear(facing, want) {
			t.Errorf("LookRotation(%v) faces %v", tt.dir, facing)
		}
	}

	if q := LookRotation(mgl64.Vec3{}); !q.ApproxEqual(mgl64.QuatIdent()) {
		t.Errorf("LookRotation(zero) = %v, want identity", q)
	}
}

func TestRotateTowardsLimitsAngularStep(t *testing.T) {
	from := mgl64.QuatIdent()
	to := LookRotation(mgl64.Vec3{1, 0, 0}) // 90 度

	step := RotateTowards(from, to, 12)
	if got := AngleBetween(from, step); math.Abs(got-12) > 1e-6 {
		t.Errorf("rotated %v degrees, want 12", got)
	}
	if got := YawDegrees(step); math.Abs(got-12) > 1e-6 {
		t.Errorf("yaw after step = %v, want 12", got)
	}

	// 剩余角度小于步长时直接到达
	final := RotateTowards(LookRotation(mgl64.Vec3{1, 0, 0.05}), to, 12)
	if !final.ApproxEqual(to) {
		t.Errorf("expected to reach target, got %v", final)
	}

	if same := RotateTowards(from, to, 0); !same.ApproxEqual(from) {
		t.Error("zero step must not rotate")
	}
}

func TestRotateTowardsTakesShortestArc(t *testing.T) {
	from := LookRotation(mgl64.Vec3{math.Sin(mgl64.DegToRad(170)), 0, math.Cos(mgl64.DegToRad(170))})
	to := LookRotation(mgl64.Vec3{math.Sin(mgl64.DegToRad(-170)), 0, math.Cos(mgl64.DegToRad(-170))})

	if got := AngleBetween(from, to); math.Abs(got-20) > 1e-6 {
		t.Fatalf("AngleBetween = %v, want 20", got)
	}

	step := RotateTowards(from, to, 5)
	yaw := YawDegrees(step)
	// 170 -> 175，而不是向 0 方向转
	if math.Abs(yaw-175) > 1e-6 {
		t.Errorf("yaw after shortest-arc step = %v, want 175", yaw)
	}
}

func TestRotateTowardsExactStepNearTarget(t *testing.T) {
	tilted := mgl64.QuatRotate(mgl64.DegToRad(30), mgl64.Vec3{1, 0, 0})

	tests := []struct {
		name       string
		from, to   mgl64.Quat
		maxDegrees float64
	}{
		// 剩余角度小于两步时四元数点积大于 0.95
		{"yaw 20 step 12", mgl64.QuatIdent(), mgl64.QuatRotate(mgl64.DegToRad(20), WorldUp), 12},
		{"yaw 7 step 4", mgl64.QuatIdent(), mgl64.QuatRotate(mgl64.DegToRad(7), WorldUp), 4},
		{"off axis 25 step 15", tilted, mgl64.QuatRotate(mgl64.DegToRad(25), mgl64.Vec3{0, 0.6, 0.8}).Mul(tilted), 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			step := RotateTowards(tt.from, tt.to, tt.maxDegrees)
			if got := AngleBetween(tt.from, step); math.Abs(got-tt.maxDegrees) > 1e-9 {
				t.Errorf("rotated %.12f degrees, want exactly %v", got, tt.maxDegrees)
			}
			remaining := AngleBetween(tt.from, tt.to) - tt.maxDegrees
			if got := AngleBetween(step, tt.to); math.Abs(got-remaining) > 1e-9 {
				t.Errorf("remaining %.12f degrees, want %v (step left the arc)", got, remaining)
			}
		})
	}
}
