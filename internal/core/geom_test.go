package core

import "testing"

func TestVecWithin(t *testing.T) {
	center := V(100, 100)

	tests := []struct {
		name     string
		p        Vec
		r        float64
		expected bool
	}{
		{"same point", V(100, 100), 35, true},
		{"inside on x", V(134, 100), 35, true},
		{"on the edge (exclusive)", V(135, 100), 35, false},
		{"corner of the square", V(130, 130), 35, true},
		{"outside on y only", V(100, 140), 35, false},
		{"negative offsets", V(70, 70), 35, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := center.Within(tc.p, tc.r); got != tc.expected {
				t.Errorf("Within(%v, %v) = %v, expected %v", tc.p, tc.r, got, tc.expected)
			}
			// Symmetric
			if got := tc.p.Within(center, tc.r); got != tc.expected {
				t.Errorf("Within() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestVecChebyshev(t *testing.T) {
	tests := []struct {
		a, b     Vec
		expected float64
	}{
		{V(0, 0), V(3, 4), 4},
		{V(400, 400), V(100, 390), 300},
		{V(10, 10), V(10, 10), 0},
		{V(-5, 2), V(5, -2), 10},
	}

	for _, tc := range tests {
		if got := tc.a.Chebyshev(tc.b); got != tc.expected {
			t.Errorf("Chebyshev(%v, %v) = %v, expected %v", tc.a, tc.b, got, tc.expected)
		}
	}
}

func TestBoundsClamp(t *testing.T) {
	b := Bounds{MinX: 20, MaxX: 780, MinY: 90, MaxY: 400}

	tests := []struct {
		in, expected Vec
	}{
		{V(400, 400), V(400, 400)},
		{V(0, 0), V(20, 90)},
		{V(900, 500), V(780, 400)},
		{V(-3, 200), V(20, 200)},
	}

	for _, tc := range tests {
		got := b.Clamp(tc.in)
		if got != tc.expected {
			t.Errorf("Clamp(%v) = %v, expected %v", tc.in, got, tc.expected)
		}
		if !b.Contains(got) {
			t.Errorf("Clamp(%v) = %v is outside bounds", tc.in, got)
		}
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.lo, tc.hi)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.lo, tc.hi)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.lo, tc.hi, result, tc.expected)
		}
	}
}

func TestAbs(t *testing.T) {
	if Abs(5) != 5 {
		t.Error("Abs(5) should be 5")
	}
	if Abs(-5) != 5 {
		t.Error("Abs(-5) should be 5")
	}
	if Abs(0) != 0 {
		t.Error("Abs(0) should be 0")
	}
}
