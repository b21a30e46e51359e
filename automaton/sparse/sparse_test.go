package sparse

import "testing"

func TestMatrixSetValue(t *testing.T) {
	M := NewIntMatrix(10, 10, -1)
	if err := M.Set(2, 3, 4711); err != nil {
		t.Fatal(err)
	}
	M.Set(0, 9, 1)
	M.Set(2, 1, 7)
	if v := M.Value(2, 3); v != 4711 {
		t.Errorf("expected M(2,3) to be 4711, is %d", v)
	}
	if v := M.Value(9, 9); v != -1 {
		t.Errorf("expected M(9,9) to be null-value, is %d", v)
	}
	M.Set(2, 3, 12)
	if v := M.Value(2, 3); v != 12 {
		t.Errorf("expected M(2,3) to be overwritten with 12, is %d", v)
	}
	if M.ValueCount() != 3 {
		t.Errorf("expected 3 values in M, have %d", M.ValueCount())
	}
}

func TestMatrixOutOfBounds(t *testing.T) {
	M := NewIntMatrix(2, 2, DefaultNullValue)
	if err := M.Set(2, 0, 1); err == nil {
		t.Errorf("expected error for row outside of matrix")
	}
	if err := M.Set(0, -1, 1); err == nil {
		t.Errorf("expected error for negative column")
	}
	if M.ValueCount() != 0 {
		t.Errorf("expected matrix to be empty")
	}
}

func TestMatrixRow(t *testing.T) {
	M := NewIntMatrix(3, 5, -1)
	M.Set(1, 4, 40)
	M.Set(1, 0, 0)
	M.Set(0, 2, 99)
	M.Set(2, 2, 98)
	var cols []int
	var vals []int32
	M.EachInRow(1, func(j int, v int32) {
		cols = append(cols, j)
		vals = append(vals, v)
	})
	if len(cols) != 2 || cols[0] != 0 || cols[1] != 4 {
		t.Errorf("expected columns [0 4] in row 1, have %v", cols)
	}
	if len(vals) != 2 || vals[0] != 0 || vals[1] != 40 {
		t.Errorf("expected values [0 40] in row 1, have %v", vals)
	}
}
