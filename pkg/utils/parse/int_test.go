package parse

import "testing"

func TestIntOrZero(t *testing.T) {
	tests := map[string]int{
		"1":   1,
		"0":   0,
		"":    0,
		"yes": 0,
		"42":  42,
	}

	for input, want := range tests {
		if got := IntOrZero(input); got != want {
			t.Errorf("IntOrZero(%q) = %d, want %d", input, got, want)
		}
	}
}
