package edgeauth

import (
	"errors"
	"testing"
)

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		in   string
		want Algorithm
	}{
		{"md5", MD5},
		{"MD5", MD5},
		{"sha1", SHA1},
		{"SHA-1", SHA1},
		{"sha256", SHA256},
		{"HMACSHA256", SHA256},
		{" sha-256 ", SHA256},
	}

	for _, tt := range tests {
		got, err := ParseAlgorithm(tt.in)
		if err != nil {
			t.Errorf("ParseAlgorithm(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseAlgorithm(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseAlgorithm_Unknown(t *testing.T) {
	for _, in := range []string{"", "sha512", "crc32"} {
		if _, err := ParseAlgorithm(in); !errors.Is(err, ErrUnknownAlgorithm) {
			t.Errorf("ParseAlgorithm(%q) error = %v, want ErrUnknownAlgorithm", in, err)
		}
	}
}

func TestAlgorithm_DigestSize(t *testing.T) {
	tests := []struct {
		alg  Algorithm
		want int
	}{
		{MD5, 16},
		{SHA1, 20},
		{SHA256, 32},
		{Algorithm(9), 0},
	}

	for _, tt := range tests {
		if got := tt.alg.DigestSize(); got != tt.want {
			t.Errorf("%v.DigestSize() = %d, want %d", tt.alg, got, tt.want)
		}
	}
}

func TestAlgorithm_String(t *testing.T) {
	if got := Algorithm(9).String(); got != "unknown" {
		t.Errorf("String() = %q, want unknown", got)
	}
	if got := SHA256.String(); got != "sha256" {
		t.Errorf("String() = %q, want sha256", got)
	}
}

func TestClock(t *testing.T) {
	if got := FixedClock(42).UnixSeconds(); got != 42 {
		t.Errorf("FixedClock(42).UnixSeconds() = %d", got)
	}
	if got := ClockFunc(func() int64 { return 7 }).UnixSeconds(); got != 7 {
		t.Errorf("ClockFunc.UnixSeconds() = %d", got)
	}
	if SystemClock.UnixSeconds() <= 0 {
		t.Error("SystemClock should report a positive time")
	}
}
