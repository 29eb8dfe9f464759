package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/polarstrip"
)

func runCLI(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err = run(context.Background(), args, &out, &errOut)
	return out.String(), errOut.String(), err
}

func TestRunUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no command", nil},
		{"unknown command", []string{"paint"}},
		{"render missing args", []string{"render", "in.bmp"}},
		{"batch missing args", []string{"batch"}},
		{"strip missing args", []string{"strip", "out.bmp"}},
		{"unknown flag", []string{"render", "--colour", "red", "a", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runCLI(t, tt.args...)
			if !errors.Is(err, errUsage) {
				t.Errorf("run(%v) error = %v, want usage error", tt.args, err)
			}
		})
	}
}

func TestRunHelp(t *testing.T) {
	stdout, _, err := runCLI(t, "help")
	if err != nil {
		t.Fatalf("help error = %v", err)
	}
	if !strings.Contains(stdout, "polarstrip render") {
		t.Errorf("help output missing commands:\n%s", stdout)
	}

	_, stderr, err := runCLI(t, "render", "--help")
	if err != nil {
		t.Fatalf("render --help error = %v", err)
	}
	if !strings.Contains(stderr, "--thickness") {
		t.Errorf("render --help missing flags:\n%s", stderr)
	}
}

func TestStripThenRender(t *testing.T) {
	dir := t.TempDir()
	stripPath := filepath.Join(dir, "pattern.bmp")
	outPath := filepath.Join(dir, "pattern.png")

	if _, _, err := runCLI(t, "strip", stripPath, "red,off,blue,#00ff00"); err != nil {
		t.Fatalf("strip error = %v", err)
	}
	s, err := polarstrip.LoadStrip(stripPath)
	if err != nil {
		t.Fatalf("LoadStrip() error = %v", err)
	}
	if s.Width() != 4 || s.ColorAt(0) != polarstrip.Red || !s.ColorAt(1).IsSkip() {
		t.Fatalf("strip = %v", s.Colors())
	}

	stdout, stderr, err := runCLI(t, "render", "--strategy", "rings", "--size", "64",
		"--thickness", "6", "--rings", "2", "--digest", stripPath, outPath)
	if err != nil {
		t.Fatalf("render error = %v\n%s", err, stderr)
	}
	if !strings.Contains(stderr, "rendered") {
		t.Errorf("expected info log on stderr:\n%s", stderr)
	}
	fields := strings.Fields(stdout)
	if len(fields) != 2 || len(fields[0]) != 64 || fields[1] != outPath {
		t.Errorf("digest line = %q", stdout)
	}

	out, err := polarstrip.LoadStrip(outPath)
	if err != nil {
		t.Fatalf("output not a readable image: %v", err)
	}
	if out.Width() != 64 {
		t.Errorf("output width = %d, want 64", out.Width())
	}
}

func TestRenderConfigAndFlagOverride(t *testing.T) {
	dir := t.TempDir()
	stripPath := filepath.Join(dir, "in.bmp")
	s, err := polarstrip.NewStrip(polarstrip.Red, polarstrip.Blue)
	if err != nil {
		t.Fatal(err)
	}
	if err := polarstrip.SaveStripBMP(stripPath, s); err != nil {
		t.Fatal(err)
	}

	cfgPath := filepath.Join(dir, "polarstrip.yaml")
	cfg := "strategy: rings\ncanvas:\n  size: 40\nlayout:\n  thickness: 4\n"
	if err := os.WriteFile(cfgPath, []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}

	outPath := filepath.Join(dir, "out.png")
	if _, stderr, err := runCLI(t, "render", "--config", cfgPath, "--size", "50", stripPath, outPath); err != nil {
		t.Fatalf("render error = %v\n%s", err, stderr)
	}
	out, err := polarstrip.LoadStrip(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if out.Width() != 50 {
		t.Errorf("output width = %d, want the flag value 50", out.Width())
	}

	badCfg := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(badCfg, []byte("strategy: spiral\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, _, err = runCLI(t, "render", "--config", badCfg, stripPath, outPath)
	if !errors.Is(err, polarstrip.ErrUnknownStrategy) {
		t.Errorf("render with bad config error = %v, want ErrUnknownStrategy", err)
	}
}

func TestRenderCenterNeedsBothCoordinates(t *testing.T) {
	dir := t.TempDir()
	stripPath := filepath.Join(dir, "in.bmp")
	if _, _, err := runCLI(t, "strip", stripPath, "red,blue"); err != nil {
		t.Fatal(err)
	}
	outPath := filepath.Join(dir, "out.png")

	for _, flag := range []string{"--center-x", "--center-y"} {
		_, _, err := runCLI(t, "render", flag, "30", "--size", "100", stripPath, outPath)
		if !errors.Is(err, errUsage) {
			t.Errorf("render %s alone error = %v, want usage error", flag, err)
		}
	}
	if _, err := os.Stat(outPath); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("rejected render wrote output: %v", err)
	}

	cfgPath := filepath.Join(dir, "center.yaml")
	if err := os.WriteFile(cfgPath, []byte("layout:\n  center_x: 50\n  center_y: 50\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, stderr, err := runCLI(t, "render", "--config", cfgPath, "--center-x", "30",
		"--size", "100", stripPath, outPath); err != nil {
		t.Errorf("render with config center error = %v\n%s", err, stderr)
	}

	if _, stderr, err := runCLI(t, "render", "--center-x", "30", "--center-y", "40",
		"--size", "100", stripPath, outPath); err != nil {
		t.Errorf("render with both flags error = %v\n%s", err, stderr)
	}
}

func TestRenderMissingInput(t *testing.T) {
	dir := t.TempDir()
	_, _, err := runCLI(t, "render", filepath.Join(dir, "missing.bmp"), filepath.Join(dir, "out.png"))
	if !errors.Is(err, polarstrip.ErrDecode) {
		t.Errorf("render error = %v, want ErrDecode", err)
	}
}

func TestBatch(t *testing.T) {
	in := t.TempDir()
	out := filepath.Join(t.TempDir(), "circles")
	for i, colorset := range []string{"red,blue", "green,off,white", "pink"} {
		path := filepath.Join(in, string(rune('a'+i))+".bmp")
		if _, _, err := runCLI(t, "strip", path, colorset); err != nil {
			t.Fatalf("strip error = %v", err)
		}
	}

	stdout, stderr, err := runCLI(t, "batch", "--workers", "2", "--digest", in, out)
	if err != nil {
		t.Fatalf("batch error = %v\n%s", err, stderr)
	}
	for _, name := range []string{"a.png", "b.png", "c.png"} {
		if _, err := os.Stat(filepath.Join(out, name)); err != nil {
			t.Errorf("missing output %s: %v", name, err)
		}
	}
	if n := len(strings.Split(strings.TrimSpace(stdout), "\n")); n != 3 {
		t.Errorf("got %d digest lines, want 3:\n%s", n, stdout)
	}
}

func TestBatchKeepGoing(t *testing.T) {
	in, out := t.TempDir(), t.TempDir()
	if _, _, err := runCLI(t, "strip", filepath.Join(in, "good.bmp"), "red"); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(in, "broken.bmp"), []byte("junk"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, _, err := runCLI(t, "batch", "--keep-going", in, out)
	if !errors.Is(err, polarstrip.ErrDecode) {
		t.Fatalf("batch error = %v, want ErrDecode", err)
	}
	if _, err := os.Stat(filepath.Join(out, "good.png")); err != nil {
		t.Errorf("good file not converted: %v", err)
	}
}

func TestBatchNoInputs(t *testing.T) {
	_, stderr, err := runCLI(t, "batch", "--ext", ".tiff", t.TempDir(), t.TempDir())
	if err != nil {
		t.Fatalf("batch error = %v", err)
	}
	if !strings.Contains(stderr, "no input files") {
		t.Errorf("expected warning, got:\n%s", stderr)
	}
}
