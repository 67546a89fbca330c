package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func setTestEnv(t *testing.T, maxSize string) {
	t.Helper()
	t.Setenv("GARAGE_MAX_IMAGE_FILESIZE", maxSize)
	t.Setenv("GARAGE_CONVERT_BACKSLASHES", "false")
	t.Setenv("GARAGE_PLATFORM", "darwin")
	t.Setenv("GARAGE_EDITION", "consumer")
}

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}

func TestRun_Version(t *testing.T) {
	setTestEnv(t, "1000")
	var stdout, stderr bytes.Buffer

	code := run([]string{"-version"}, &stdout, &stderr)
	if code != ExitOK {
		t.Fatalf("Expected exit code %d, got %d (stderr: %s)", ExitOK, code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "garage-check "+version) {
		t.Errorf("Expected version in output, got %q", stdout.String())
	}
	if !strings.Contains(stdout.String(), "consumer, darwin") {
		t.Errorf("Expected edition and platform in output, got %q", stdout.String())
	}
}

func TestRun_NoArgs(t *testing.T) {
	setTestEnv(t, "1000")
	var stdout, stderr bytes.Buffer

	if code := run(nil, &stdout, &stderr); code != ExitUsage {
		t.Errorf("Expected exit code %d, got %d", ExitUsage, code)
	}
	if !strings.Contains(stderr.String(), "Usage:") {
		t.Errorf("Expected usage on stderr, got %q", stderr.String())
	}
}

func TestRun_BadFlag(t *testing.T) {
	setTestEnv(t, "1000")
	var stdout, stderr bytes.Buffer

	if code := run([]string{"-nope"}, &stdout, &stderr); code != ExitUsage {
		t.Errorf("Expected exit code %d, got %d", ExitUsage, code)
	}
}

func TestRun_BadEnv(t *testing.T) {
	setTestEnv(t, "-5")
	var stdout, stderr bytes.Buffer

	if code := run([]string{"a.png"}, &stdout, &stderr); code != ExitUsage {
		t.Errorf("Expected exit code %d, got %d", ExitUsage, code)
	}
	if !strings.Contains(stderr.String(), "must be positive") {
		t.Errorf("Expected config error on stderr, got %q", stderr.String())
	}
}

func TestRun_Checks(t *testing.T) {
	setTestEnv(t, "16")
	dir := t.TempDir()
	ok := writeFile(t, dir, "ok.jpg", []byte{0xFF, 0xD8, 0xFF, 0xE0, 0, 0, 0, 0})
	lossless := writeFile(t, dir, "lossless.jpg", []byte{0xFF, 0xD8, 0xFF, 0xEE, 0, 0, 0, 0})
	large := writeFile(t, dir, "large.png", make([]byte, 16))

	var stdout, stderr bytes.Buffer
	code := run([]string{ok, "file://" + lossless, large}, &stdout, &stderr)
	if code != ExitRejected {
		t.Fatalf("Expected exit code %d, got %d", ExitRejected, code)
	}

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	expected := []string{
		"1\tOK\t" + ok,
		"-2\tJPEGLossless\t" + lossless,
		"-10\tSizeTooLarge\t" + large,
	}
	if len(lines) != len(expected) {
		t.Fatalf("Expected %d lines, got %d: %q", len(expected), len(lines), stdout.String())
	}
	for i, want := range expected {
		if lines[i] != want {
			t.Errorf("line %d = %q, expected %q", i, lines[i], want)
		}
	}
}

func TestRun_QuietAllOK(t *testing.T) {
	setTestEnv(t, "1000")
	ok := writeFile(t, t.TempDir(), "ok.png", []byte("png"))

	var stdout, stderr bytes.Buffer
	if code := run([]string{"-q", ok}, &stdout, &stderr); code != ExitOK {
		t.Fatalf("Expected exit code %d, got %d", ExitOK, code)
	}
	if stdout.Len() != 0 {
		t.Errorf("Expected no output in quiet mode, got %q", stdout.String())
	}
}

func TestRun_UnsupportedExtension(t *testing.T) {
	setTestEnv(t, "1000")
	dir := t.TempDir()
	gif := writeFile(t, dir, "anim.gif", []byte("GIF89a"))
	text := writeFile(t, dir, "notes.txt", []byte("notes"))

	var stdout, stderr bytes.Buffer
	if code := run([]string{gif, text}, &stdout, &stderr); code != ExitRejected {
		t.Fatalf("Expected exit code %d, got %d", ExitRejected, code)
	}

	expected := "-3\tNotJPEG\t" + gif + "\n-3\tNotJPEG\t" + text + "\n"
	if stdout.String() != expected {
		t.Errorf("Expected output %q, got %q", expected, stdout.String())
	}
	if !strings.Contains(stderr.String(), "unsupported image type") {
		t.Errorf("Expected rejection on the injected logger, got %q", stderr.String())
	}
}
