package raster

import "testing"

func TestParsePathExpandsShortcuts(t *testing.T) {
	segs, err := parsePath("M 0,10 L 5 5 H 20 V 0 C 1,2 3,4 5,6 Z")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	want := []struct {
		cmd byte
		pts []float64
	}{
		{'M', []float64{0, 10}},
		{'L', []float64{5, 5}},
		{'L', []float64{20, 5}},
		{'L', []float64{20, 0}},
		{'C', []float64{1, 2, 3, 4, 5, 6}},
		{'Z', nil},
	}
	if len(segs) != len(want) {
		t.Fatalf("expected %d segments, got %d: %+v", len(want), len(segs), segs)
	}
	for i, w := range want {
		if segs[i].cmd != w.cmd || len(segs[i].pts) != len(w.pts) {
			t.Fatalf("segment %d = %+v, want %c %v", i, segs[i], w.cmd, w.pts)
		}
		for j := range w.pts {
			if segs[i].pts[j] != w.pts[j] {
				t.Fatalf("segment %d point %d = %v, want %v", i, j, segs[i].pts[j], w.pts[j])
			}
		}
	}
}

func TestParsePathImplicitLineTo(t *testing.T) {
	segs, err := parsePath("M 0 0 10 10 20 0")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if len(segs) != 3 || segs[1].cmd != 'L' || segs[2].cmd != 'L' {
		t.Fatalf("M 后续坐标应视为 L: %+v", segs)
	}
}

func TestParsePathErrors(t *testing.T) {
	for _, d := range []string{"10 10", "M 0", "M 0 0 L x 1", "C 1 2 3"} {
		if _, err := parsePath(d); err == nil {
			t.Fatalf("expected error for %q", d)
		}
	}
}
