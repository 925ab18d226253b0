package typewriter

// MatrixPosition returns the index of the switch at row r, column c of the 8x8 matrix.
func MatrixPosition(r, c uint8) uint8 {
	return r<<3 + c
}

// matrixWiring re-indexes raw matrix positions into logical codes.
// Values with bit 6 set are modifiers, 0 marks an unpopulated switch.
var matrixWiring = [64]uint8{
	1, 3, 5, 7, 8, 10, 12, 14,
	2, 4, 6, 20, 9, 11, 13, 0,
	15, 17, 19, 21, 22, 24, 25, 27,
	16, 18, 33, 35, 23, 38, 26, 28,
	29, 31, 32, 34, 36, 37, 39, 41,
	30, 42, 44, 46, 48, 50, 40, 96,
	64, 43, 45, 47, 49, 51, 52, 0,
	66, 68, 72, 53, 80, 54, 55, 98,
}

// WireTransition maps a raw matrix position to the Transition the scanner
// should report. The second return value is false for positions with no switch.
func WireTransition(pos uint8, press bool) (Transition, bool) {
	if int(pos) >= len(matrixWiring) {
		return Transition{}, false
	}
	v := matrixWiring[pos]
	if v == 0 {
		return Transition{}, false
	}
	return Transition{
		Code:     v & codeMask,
		Press:    press,
		Modifier: v&modifierMask != 0,
	}, true
}

// WiredPosition is the inverse of WireTransition.
func WiredPosition(t Transition) (uint8, bool) {
	want := t.Code
	if t.Modifier {
		want |= modifierMask
	}
	for pos, v := range matrixWiring {
		if v != 0 && v == want {
			return uint8(pos), true
		}
	}
	return 0, false
}
