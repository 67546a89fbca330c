package platform

import "testing"

func TestAppropriatePath(t *testing.T) {
	tests := []struct {
		name               string
		platform           Platform
		input              string
		convertBackslashes bool
		expected           string
	}{
		{"windows file url", Windows, "file:///C:/a%20b.png", true, "C:/a b.png"},
		{"windows backslashes converted", Windows, `file:///C:\images\btn%20on.jpg`, true, "C:/images/btn on.jpg"},
		{"windows backslashes kept", Windows, `file:///C:\images\btn.jpg`, false, `C:\images\btn.jpg`},
		{"windows plain path", Windows, `C:\a\b.png`, true, "C:/a/b.png"},
		{"windows two slashes only", Windows, "file://server/share.png", false, "file://server/share.png"},
		{"darwin keeps leading slash", Darwin, "file:///Users/a", true, "/Users/a"},
		{"darwin encoded", Darwin, "file:///Users/a/%E7%94%BB%E5%83%8F.png", false, "/Users/a/画像.png"},
		{"linux uses windows prefix", Linux, "file:///home/a.png", false, "home/a.png"},
		{"no prefix passes through", Darwin, "/tmp/a%20b.png", false, "/tmp/a b.png"},
		{"plus is not a space", Windows, "a+b.png", false, "a+b.png"},
		{"prefix only at start", Windows, "x/file:///y.png", false, "x/file:///y.png"},
		{"encoded prefix is stripped", Windows, "file%3A%2F%2F%2FC:/a.png", false, "C:/a.png"},
		{"malformed escape kept", Windows, "file:///C:/100%.png", false, "C:/100%.png"},
		{"empty", Windows, "", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.platform.AppropriatePath(tt.input, tt.convertBackslashes)
			if got != tt.expected {
				t.Errorf("%s.AppropriatePath(%q, %v) = %q, expected %q",
					tt.platform, tt.input, tt.convertBackslashes, got, tt.expected)
			}
		})
	}
}

func TestAppropriatePath_Idempotent(t *testing.T) {
	input := "file:///C:/images/a%20b.png"
	first := Windows.AppropriatePath(input, true)
	second := Windows.AppropriatePath(input, true)
	if first != second {
		t.Errorf("repeated calls differ: %q vs %q", first, second)
	}
}

func TestAppropriatePath_HostPlatform(t *testing.T) {
	input := "file:///x/y.png"
	if got, want := AppropriatePath(input, false), Detect().AppropriatePath(input, false); got != want {
		t.Errorf("AppropriatePath(%q) = %q, expected %q", input, got, want)
	}
}

func TestNormalizePath_DecodeError(t *testing.T) {
	got, err := Windows.NormalizePath(`file:///C:\100%.png`, true)
	if err == nil {
		t.Fatal("Expected decode error for malformed escape")
	}
	if got != "C:/100%.png" {
		t.Errorf("Expected undecoded normalized path, got %q", got)
	}

	got, err = Darwin.NormalizePath("file:///a%20b.png", false)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got != "/a b.png" {
		t.Errorf("Expected %q, got %q", "/a b.png", got)
	}
}
