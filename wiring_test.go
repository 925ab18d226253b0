package typewriter

import "testing"

func TestWireTransition(t *testing.T) {
	tr, ok := WireTransition(MatrixPosition(0, 0), true)
	if !ok || tr.Code != 1 || !tr.Press || tr.Modifier {
		t.Fatalf("position 0 gave %+v, %v", tr, ok)
	}
	tr, ok = WireTransition(MatrixPosition(7, 7), false)
	if !ok || tr.Code != CodeRightCtrl || tr.Press || !tr.Modifier {
		t.Fatalf("position 63 gave %+v, %v", tr, ok)
	}
	if _, ok := WireTransition(MatrixPosition(1, 7), true); ok {
		t.Fatalf("unpopulated position reported a key")
	}
	if _, ok := WireTransition(64, true); ok {
		t.Fatalf("position 64 is outside the matrix")
	}
}

func TestWiringCoversLayout(t *testing.T) {
	layout := US()
	for code := 1; code < len(layout.Base); code++ {
		pos, ok := WiredPosition(Transition{Code: uint8(code)})
		if !ok {
			t.Fatalf("code %d (%s) has no switch", code, layout.Base[code])
		}
		tr, _ := WireTransition(pos, true)
		if tr.Code != uint8(code) || tr.Modifier {
			t.Fatalf("position %d maps back to %+v", pos, tr)
		}
	}
}
