package model

import "testing"

func TestNormalizePaperType(t *testing.T) {
	cases := map[string]string{
		"offline": "offline",
		"online":  "online",
		"":        "online",
		"ONLINE":  "online", // nilai aneh dari data lama tetap jatuh ke online
		"hybrid":  "online",
	}
	for in, want := range cases {
		if got := NormalizePaperType(in); got != want {
			t.Errorf("NormalizePaperType(%q) = %q, want %q", in, got, want)
		}
	}
}
