package watchface

import (
	"image"
	"math"
	"testing"
)

func TestTrigLookupCardinals(t *testing.T) {
	tests := []struct {
		angle    int32
		sin, cos int32
	}{
		{0, 0, TrigMaxRatio},
		{FullCircle / 4, TrigMaxRatio, 0},
		{FullCircle / 2, 0, -TrigMaxRatio},
		{3 * FullCircle / 4, -TrigMaxRatio, 0},
		{FullCircle, 0, TrigMaxRatio},
		{-FullCircle / 4, -TrigMaxRatio, 0},
	}
	for _, tt := range tests {
		if got := SinLookup(tt.angle); got != tt.sin {
			t.Errorf("SinLookup(%#x) = %d, want %d", tt.angle, got, tt.sin)
		}
		if got := CosLookup(tt.angle); got != tt.cos {
			t.Errorf("CosLookup(%#x) = %d, want %d", tt.angle, got, tt.cos)
		}
	}
}

func TestTrigLookupMatchesFloat(t *testing.T) {
	for a := int32(0); a < FullCircle; a += 97 {
		rad := float64(a) * 2 * math.Pi / FullCircle
		want := math.Sin(rad) * TrigMaxRatio
		if d := math.Abs(float64(SinLookup(a)) - want); d > 1 {
			t.Fatalf("SinLookup(%d) off by %.2f", a, d)
		}
	}
}

func TestCenterOf(t *testing.T) {
	if got := CenterOf(CanvasBounds); got != image.Pt(72, 84) {
		t.Errorf("CenterOf(canvas) = %v, want (72,84)", got)
	}
	if got := CenterOf(image.Rect(10, 10, 15, 15)); got != image.Pt(12, 12) {
		t.Errorf("CenterOf(odd) = %v, want (12,12)", got)
	}
}

func TestProject(t *testing.T) {
	center := image.Pt(72, 84)
	tests := []struct {
		name   string
		angle  int32
		radius int
		want   image.Point
	}{
		{"12 o'clock", 0, RimRadius, image.Pt(72, 20)},
		{"3 o'clock", FullCircle / 4, MinuteHandLength, image.Pt(146, 84)},
		{"6 o'clock", FullCircle / 2, RimRadius, image.Pt(72, 148)},
		{"9 o'clock", 3 * FullCircle / 4, HourHandLength, image.Pt(18, 84)},
		{"zero radius", FullCircle / 8, 0, center},
	}
	for _, tt := range tests {
		if got := Project(tt.angle, tt.radius, center); got != tt.want {
			t.Errorf("%s: Project = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestProjectTruncatesTowardCenter(t *testing.T) {
	center := image.Pt(72, 84)
	for a := int32(0); a < FullCircle; a += 331 {
		p := Project(a, MinuteHandLength, center)
		rad := float64(a) * 2 * math.Pi / FullCircle
		fx := float64(MinuteHandLength) * math.Sin(rad)
		fy := -float64(MinuteHandLength) * math.Cos(rad)
		dx, dy := float64(p.X-center.X), float64(p.Y-center.Y)
		if math.Abs(dx) > math.Abs(fx)+0.01 || math.Abs(dy) > math.Abs(fy)+0.01 {
			t.Fatalf("angle %d: %v overshoots (%.2f,%.2f)", a, p, fx, fy)
		}
		if math.Abs(dx-fx) >= 1.01 || math.Abs(dy-fy) >= 1.01 {
			t.Fatalf("angle %d: %v too far from (%.2f,%.2f)", a, p, fx, fy)
		}
	}
}
