package wordfa

import "testing"

func TestSpan(t *testing.T) {
	input := "15.06.2006"
	s := MakeSpan(3, 3)
	if s.Of(input) != "06." || s.Len() != 3 {
		t.Errorf("expected span %v to cover '06.', covers %q", s, s.Of(input))
	}
	s = s.Extend(MakeSpan(6, 4))
	if s.From() != 3 || s.To() != 10 || s.Of(input) != "06.2006" {
		t.Errorf("expected extended span to be (3…10), is %v", s)
	}
	if MakeSpan(8, 5).Of(input) != "" {
		t.Errorf("expected span beyond input to cover nothing")
	}
	if !(Span{}).IsNull() || s.IsNull() {
		t.Errorf("IsNull is broken")
	}
}
