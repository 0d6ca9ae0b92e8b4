package types

import (
	"encoding/json"
	"testing"
)

func TestOpponent(t *testing.T) {
	cases := []struct {
		in, want Occupancy
	}{
		{PlayerA, PlayerB},
		{PlayerB, PlayerA},
		{Empty, Empty},
	}
	for _, c := range cases {
		if got := c.in.Opponent(); got != c.want {
			t.Errorf("%v.Opponent() = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestBoardPosJSON(t *testing.T) {
	var p BoardPos
	if err := json.Unmarshal([]byte("[3, 7]"), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if p.X != 3 || p.Y != 7 {
		t.Fatalf("got %+v, want {3 7}", p)
	}

	data, err := json.Marshal(BoardPos{X: 1, Y: 2})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != "[1,2]" {
		t.Fatalf("marshal = %s, want [1,2]", data)
	}
}

func TestBoardPosJSONWrongLength(t *testing.T) {
	var p BoardPos
	if err := json.Unmarshal([]byte("[3]"), &p); err == nil {
		t.Fatal("expected error for a single coordinate")
	}
}

func TestMoveString(t *testing.T) {
	m := Move{FromX: 0, FromY: 1, ToX: 2, ToY: 1}
	if got := m.String(); got != "(0, 1) -> (2, 1)" {
		t.Fatalf("String() = %q", got)
	}
	if m.From() != (BoardPos{0, 1}) || m.To() != (BoardPos{2, 1}) {
		t.Fatalf("From/To = %v/%v", m.From(), m.To())
	}
}
