package lattice

import (
	"reflect"
	"testing"
)

func TestDigits(t *testing.T) {
	tests := []struct {
		name string
		n    uint64
		want []int
	}{
		{"zero", 0, []int{0}},
		{"single digit", 7, []int{7}},
		{"two digits", 12, []int{1, 2}},
		{"repeated nines", 999, []int{9, 9, 9}},
		{"round number", 1000, []int{1, 0, 0, 0}},
		{"internal zero", 105, []int{1, 0, 5}},
		{"max uint64", 18446744073709551615,
			[]int{1, 8, 4, 4, 6, 7, 4, 4, 0, 7, 3, 7, 0, 9, 5, 5, 1, 6, 1, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Digits(tt.n)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Digits(%d) = %v, want %v", tt.n, got, tt.want)
			}
		})
	}
}

func TestDigitsNoLeadingZeros(t *testing.T) {
	for _, n := range []uint64{1, 10, 100, 90210, 1000000} {
		d := Digits(n)
		if d[0] == 0 {
			t.Errorf("Digits(%d) = %v has a leading zero", n, d)
		}
	}
}

func TestDigitSum(t *testing.T) {
	tests := []struct {
		n    uint64
		want int
	}{
		{0, 0},
		{7, 7},
		{12, 3},
		{999, 27},
		{105, 6},
	}
	for _, tt := range tests {
		if got := DigitSum(tt.n); got != tt.want {
			t.Errorf("DigitSum(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}
