package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestRun_Listing tests the default listing output for a valid regex
func TestRun_Listing(t *testing.T) {
	var stdout, stderr strings.Builder
	code := run([]string{"a|b"}, &stdout, &stderr)

	if code != 0 {
		t.Fatalf("exit code = %d, want 0 (stderr: %s)", code, stderr.String())
	}
	out := stdout.String()
	for _, want := range []string{"states: 3", "start: 0", "final: 1 2"} {
		if !strings.Contains(out, want) {
			t.Errorf("listing missing %q:\n%s", want, out)
		}
	}
}

// TestRun_DotOutput tests writing the DOT rendering to a file
func TestRun_DotOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.dot")

	var stdout, stderr strings.Builder
	code := run([]string{"-dot", path, "a"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code = %d, want 0 (stderr: %s)", code, stderr.String())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("DOT file not written: %v", err)
	}
	if !strings.Contains(string(data), "digraph DFA {") {
		t.Errorf("unexpected DOT content:\n%s", data)
	}
	// -dot alone disables the listing.
	if strings.Contains(stdout.String(), "states:") {
		t.Error("listing printed although only -dot was requested")
	}
}

// TestRun_DotToStdout tests the '-' path selector
func TestRun_DotToStdout(t *testing.T) {
	var stdout, stderr strings.Builder
	code := run([]string{"-dot", "-", "a"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code = %d, want 0 (stderr: %s)", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "digraph DFA {") {
		t.Errorf("DOT not written to stdout:\n%s", stdout.String())
	}
}

// TestRun_InvalidRegex tests the non-zero exit for a rejected pattern
func TestRun_InvalidRegex(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
	}{
		{"unmatched paren", "("},
		{"operand underflow", "*a"},
		{"invalid character", "a-b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr strings.Builder
			code := run([]string{tt.pattern}, &stdout, &stderr)
			if code != 1 {
				t.Errorf("exit code = %d, want 1", code)
			}
			if !strings.Contains(stderr.String(), "is invalid") {
				t.Errorf("stderr should explain the rejection: %q", stderr.String())
			}
		})
	}
}

// TestRun_UsageAndFlagErrors tests usage output and flag validation
func TestRun_UsageAndFlagErrors(t *testing.T) {
	var stdout, stderr strings.Builder
	if code := run(nil, &stdout, &stderr); code != 0 {
		t.Errorf("no arguments: exit code = %d, want 0 (usage)", code)
	}
	if !strings.Contains(stderr.String(), "Usage:") {
		t.Errorf("usage text not printed: %q", stderr.String())
	}

	stderr.Reset()
	if code := run([]string{"a", "b"}, &stdout, &stderr); code != 2 {
		t.Errorf("two positional args: exit code = %d, want 2", code)
	}

	stderr.Reset()
	if code := run([]string{"-log-level", "loud", "a"}, &stdout, &stderr); code != 2 {
		t.Errorf("bad log level: exit code = %d, want 2", code)
	}

	stderr.Reset()
	if code := run([]string{"-alphabet", "a*b", "a"}, &stdout, &stderr); code != 2 {
		t.Errorf("bad alphabet: exit code = %d, want 2", code)
	}
}

// TestRun_CustomAlphabet tests compiling over a flag-provided alphabet
func TestRun_CustomAlphabet(t *testing.T) {
	var stdout, stderr strings.Builder
	code := run([]string{"-alphabet", "01", "(0|1)*1"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code = %d, want 0 (stderr: %s)", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "alphabet: 0 1") {
		t.Errorf("listing should use the binary alphabet:\n%s", stdout.String())
	}
}

// TestRun_ConfigFile tests that an HCL config file drives the run
func TestRun_ConfigFile(t *testing.T) {
	dotPath := filepath.Join(t.TempDir(), "cfg.dot")
	cfgPath := filepath.Join(t.TempDir(), "redfa.hcl")
	content := "alphabet = digits\ndot = \"" + dotPath + "\"\nlisting = true\n"
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr strings.Builder
	code := run([]string{"-config", cfgPath, "(0|1)+"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code = %d, want 0 (stderr: %s)", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "states:") {
		t.Error("listing enabled by config file was not printed")
	}
	if _, err := os.Stat(dotPath); err != nil {
		t.Errorf("DOT file from config not written: %v", err)
	}
}
