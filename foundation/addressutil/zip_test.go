package addressutil

import "testing"

func TestZIP(t *testing.T) {
	tests := []struct {
		in        string
		plus4     bool
		want      string
		wantValid bool
	}{
		{in: "02134-1234", want: "02134", wantValid: true},
		{in: "02134-1234", plus4: true, want: "02134-1234", wantValid: true},
		{in: "MA 02134", want: "02134", wantValid: true},
		{in: "12345 6789 x", plus4: true, want: "12345-6789", wantValid: true},
		{in: "123456", plus4: true, want: "12345", wantValid: true},
		{in: "1234"},
		{in: "n/a"},
	}

	for _, tt := range tests {
		got, ok := ZIP(tt.in, tt.plus4)
		if ok != tt.wantValid || got != tt.want {
			t.Fatalf("ZIP(%q, %t) = (%q, %t), want (%q, %t)", tt.in, tt.plus4, got, ok, tt.want, tt.wantValid)
		}
	}
}

func TestPadZIP(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		padded bool
	}{
		{in: "2134", want: "02134", padded: true},
		{in: "123", want: "00123", padded: true},
		{in: "12", want: "12"},
		{in: "12345", want: "12345"},
		{in: "12a4", want: "12a4"},
	}

	for _, tt := range tests {
		got, ok := PadZIP(tt.in)
		if ok != tt.padded || got != tt.want {
			t.Fatalf("PadZIP(%q) = (%q, %t), want (%q, %t)", tt.in, got, ok, tt.want, tt.padded)
		}
	}
}
