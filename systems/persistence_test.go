package systems

import "testing"

func TestParseBestScore(t *testing.T) {
	cases := []struct {
		name string
		data []byte
		want int
	}{
		{name: "missing", data: nil, want: 0},
		{name: "empty", data: []byte{}, want: 0},
		{name: "valid", data: []byte("42"), want: 42},
		{name: "zero", data: []byte("0"), want: 0},
		{name: "negative", data: []byte("-3"), want: 0},
		{name: "garbage", data: []byte("forty"), want: 0},
		{name: "json", data: []byte(`{"best":7}`), want: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ParseBestScore(tc.data); got != tc.want {
				t.Fatalf("ParseBestScore(%q) = %d, want %d", tc.data, got, tc.want)
			}
		})
	}
}

func TestShareText(t *testing.T) {
	if got, want := ShareText(12), "I scored 12 in Flappy Gopher!"; got != want {
		t.Fatalf("ShareText = %q, want %q", got, want)
	}
}
