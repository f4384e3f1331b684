package core

import "testing"

func TestOriginSaturatesAtZero(t *testing.T) {
	var o Origin

	for i := 0; i < 5; i++ {
		if o.MoveUp() {
			t.Error("MoveUp() at y=0 reported a change")
		}
		if o.MoveLeft() {
			t.Error("MoveLeft() at x=0 reported a change")
		}
	}
	if o != (Origin{}) {
		t.Errorf("origin = %+v, expected (0,0)", o)
	}
}

func TestOriginMoves(t *testing.T) {
	tests := []struct {
		name     string
		moves    []func(*Origin) bool
		expected Origin
	}{
		{"down twice", []func(*Origin) bool{(*Origin).MoveDown, (*Origin).MoveDown}, Origin{0, 2}},
		{"right then left", []func(*Origin) bool{(*Origin).MoveRight, (*Origin).MoveLeft}, Origin{0, 0}},
		{"down up up", []func(*Origin) bool{(*Origin).MoveDown, (*Origin).MoveUp, (*Origin).MoveUp}, Origin{0, 0}},
		{"right right left", []func(*Origin) bool{(*Origin).MoveRight, (*Origin).MoveRight, (*Origin).MoveLeft}, Origin{1, 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var o Origin
			for _, move := range tc.moves {
				move(&o)
			}
			if o != tc.expected {
				t.Errorf("origin = %+v, expected %+v", o, tc.expected)
			}
		})
	}
}

func TestOriginMoveReportsChange(t *testing.T) {
	o := Origin{X: 1, Y: 1}
	if !o.MoveUp() || !o.MoveLeft() {
		t.Error("moves from (1,1) toward zero should report a change")
	}
	if !o.MoveDown() || !o.MoveRight() {
		t.Error("MoveDown/MoveRight should always report a change")
	}
}

func TestMax(t *testing.T) {
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}
