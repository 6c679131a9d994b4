package floatutils

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r1"
)

func TestClip(t *testing.T) {
	tests := []struct {
		value, min, max, want float64
	}{
		{0.5, 0, 1, 0.5},
		{1.5, 0, 1, 1},
		{-0.5, 0, 1, 0},
		{1, 0, 1, 1},
	}

	for _, test := range tests {
		if got := Clip(test.value, test.min, test.max); got != test.want {
			t.Errorf("clip(%v, %v, %v): have(%v) want(%v)", test.value,
				test.min, test.max, got, test.want)
		}
	}

	if got := ClipInterval(3, r1.Interval{Min: -1, Max: 2}); got != 2 {
		t.Errorf("clipInterval: have(%v) want(2)", got)
	}
}

func TestClipSlice(t *testing.T) {
	values := []float64{-2, 0.5, 2}
	ClipSlice(values, []float64{-1, -1, -1}, []float64{1, 1, 1})

	want := []float64{-1, 0.5, 1}
	for i := range want {
		if values[i] != want[i] {
			t.Errorf("clipSlice[%v]: have(%v) want(%v)", i, values[i], want[i])
		}
	}
}
