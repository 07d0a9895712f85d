package geometry

import "testing"

func TestPointArithmetic(t *testing.T) {
	a := Pt(3, 4)
	b := Pt(1, 2)

	if got := a.Add(b); got != Pt(4, 6) {
		t.Errorf("Add = %v, want (4, 6)", got)
	}
	if got := a.Sub(b); got != Pt(2, 2) {
		t.Errorf("Sub = %v, want (2, 2)", got)
	}
	if got := a.AddScalar(10); got != Pt(13, 14) {
		t.Errorf("AddScalar = %v, want (13, 14)", got)
	}
	if got := a.MulScalar(2); got != Pt(6, 8) {
		t.Errorf("MulScalar = %v, want (6, 8)", got)
	}
}

func TestPointDotProduct(t *testing.T) {
	if got := Pt(3, 4).Dot(Pt(2, 5)); got != 26 {
		t.Errorf("Dot = %d, want 26", got)
	}
	if got := Pt(3, 4).Product(); got != 12 {
		t.Errorf("Product = %d, want 12", got)
	}
}

func TestPointFloat(t *testing.T) {
	p := Pt(1.5, 2.5).MulScalar(2.0)
	if p.X != 3.0 || p.Y != 5.0 {
		t.Errorf("MulScalar = %v, want (3, 5)", p)
	}
}
