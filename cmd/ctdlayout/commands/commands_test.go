package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/agiangrant/ctdlayout"
	"github.com/agiangrant/ctdlayout/config"
	"github.com/agiangrant/ctdlayout/geometry"
	"github.com/agiangrant/ctdlayout/layout"
	"github.com/agiangrant/ctdlayout/treefile"
)

const treeTOML = `
[container]
width = 200
height = 100

[root]
kind = "HStack"
classes = "gap-2 lg:gap-8"

[[root.children]]
kind = "Image"
props = { width = 40, height = 40 }

[[root.children]]
kind = "Image"
props = { width = 40, height = 40 }
`

func writeTree(t *testing.T, dir, name, data string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestContainerPrecedence(t *testing.T) {
	doc := &treefile.Document{Container: geometry.NewSize(200, 0)}

	tests := []struct {
		name  string
		flags layoutFlags
		want  geometry.Size
	}{
		{"file then default", layoutFlags{}, geometry.NewSize(200, defaultHeight)},
		{"flags win", layoutFlags{width: 1024, height: 768}, geometry.NewSize(1024, 768)},
		{"height flag only", layoutFlags{height: 50}, geometry.NewSize(200, 50)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.flags.container(doc); got != tt.want {
				t.Errorf("container = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLayoutFile(t *testing.T) {
	path := writeTree(t, t.TempDir(), "row.toml", treeTOML)

	tests := []struct {
		name  string
		flags layoutFlags
		x     float32
	}{
		{"base classes", layoutFlags{responsive: true}, 48},
		{"lg breakpoint", layoutFlags{responsive: true, width: 1100}, 72},
		{"responsive off", layoutFlags{responsive: false, width: 1100}, 48},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := tt.flags.layoutFile(path, tt.flags.engineConfig(config.Default()))
			if err != nil {
				t.Fatalf("layoutFile: %v", err)
			}
			second := out.doc.Root.Children[1]
			f, ok := out.result.Frame(second.ID())
			if !ok {
				t.Fatal("second image missing from result")
			}
			if f.X != tt.x {
				t.Errorf("second x = %v, want %v", f.X, tt.x)
			}
			// The tree carries the same frame.
			if second.Frame() != f {
				t.Errorf("tree frame = %v, result frame = %v", second.Frame(), f)
			}
		})
	}
}

func TestLayoutAll(t *testing.T) {
	dir := t.TempDir()
	a := writeTree(t, dir, "a.toml", treeTOML)
	b := writeTree(t, dir, "b.json", `{"root": {"kind": "Text", "props": {"content": "hi"}}}`)

	lf := layoutFlags{responsive: true}
	results, err := layoutAll(context.Background(), &lf, config.Default(), []string{a, b})
	if err != nil {
		t.Fatalf("layoutAll: %v", err)
	}
	if results[0].path != a || results[1].path != b {
		t.Errorf("results out of order: %s, %s", results[0].path, results[1].path)
	}
	if results[1].result.Len() != 1 {
		t.Errorf("b nodes = %d, want 1", results[1].result.Len())
	}

	var buf bytes.Buffer
	if err := writeResults(&buf, results); err != nil {
		t.Fatalf("writeResults: %v", err)
	}
	var byFile map[string][]treefile.FrameRecord
	if err := json.Unmarshal(buf.Bytes(), &byFile); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(byFile[a]) != 3 || len(byFile[b]) != 1 {
		t.Errorf("records = %d/%d, want 3/1", len(byFile[a]), len(byFile[b]))
	}

	buf.Reset()
	if err := writeResults(&buf, results[:1]); err != nil {
		t.Fatalf("writeResults: %v", err)
	}
	var single []treefile.FrameRecord
	if err := json.Unmarshal(buf.Bytes(), &single); err != nil {
		t.Fatalf("single file output is not an array: %v", err)
	}

	bad := writeTree(t, dir, "bad.toml", "[container]\nwidth = 1\n")
	if _, err := layoutAll(context.Background(), &lf, config.Default(), []string{a, bad}); err == nil {
		t.Error("expected error for tree without root")
	}
}

func TestComputeOutputFile(t *testing.T) {
	dir := t.TempDir()
	path := writeTree(t, dir, "row.toml", treeTOML)
	dst := filepath.Join(dir, "out.json")

	if err := Compute([]string{"-o", dst, path}); err != nil {
		t.Fatalf("Compute: %v", err)
	}

	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	var records []treefile.FrameRecord
	if err := json.Unmarshal(data, &records); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, data)
	}
	if len(records) != 3 {
		t.Errorf("records = %d, want 3", len(records))
	}

	if err := Compute([]string{"-o", filepath.Join(dir, "missing", "out.json"), path}); err == nil {
		t.Error("expected error for unwritable output")
	}
}

func TestDumpDefaults(t *testing.T) {
	var buf bytes.Buffer
	if err := dumpDefaults(&buf); err != nil {
		t.Fatalf("dumpDefaults: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != len(layout.Defaults()) {
		t.Errorf("got %d lines, want %d", len(lines), len(layout.Defaults()))
	}
	if !strings.HasPrefix(lines[0], "alignment ") {
		t.Errorf("first line = %q, want alignment first", lines[0])
	}
	if !strings.Contains(buf.String(), "thickness") {
		t.Errorf("output missing thickness:\n%s", buf.String())
	}
}

func TestInit(t *testing.T) {
	dir := t.TempDir()
	if err := Init([]string{"-dir", dir}); err != nil {
		t.Fatalf("Init: %v", err)
	}

	m, err := config.Load(filepath.Join(dir, config.FileName))
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}
	if m != config.Default() {
		t.Errorf("metrics = %+v, want defaults", m)
	}

	doc, err := treefile.Load(filepath.Join(dir, "tree.toml"))
	if err != nil {
		t.Fatalf("treefile.Load: %v", err)
	}
	if doc.Root.Count() != exampleTree().Count() {
		t.Errorf("example tree has %d nodes, want %d", doc.Root.Count(), exampleTree().Count())
	}
	if scroll := doc.Root.Find(func(n *ctdlayout.Node) bool { return n.Kind == ctdlayout.KindScrollView }); scroll == nil {
		t.Error("example tree lost its scroll view")
	}

	if err := Init([]string{"-dir", dir}); err == nil {
		t.Error("expected error when files exist")
	}
	if err := Init([]string{"-dir", dir, "-force"}); err != nil {
		t.Errorf("Init -force: %v", err)
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		path, ext, want string
	}{
		{"tree.toml", ".png", "tree.png"},
		{"dir/a.b.json", ".layout.json", "dir/a.b.layout.json"},
		{"noext", ".png", "noext.png"},
	}
	for _, tt := range tests {
		if got := outputPath(tt.path, tt.ext); got != tt.want {
			t.Errorf("outputPath(%q, %q) = %q, want %q", tt.path, tt.ext, got, tt.want)
		}
	}
}

func TestWatcherProcess(t *testing.T) {
	dir := t.TempDir()
	path := writeTree(t, dir, "w.toml", treeTOML)

	w := &watcher{flags: &layoutFlags{responsive: true}, metrics: config.Default()}
	w.process(path)

	data, err := os.ReadFile(filepath.Join(dir, "w.layout.json"))
	if err != nil {
		t.Fatalf("layout output not written: %v", err)
	}
	var records []treefile.FrameRecord
	if err := json.Unmarshal(data, &records); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(records) != 3 {
		t.Errorf("records = %d, want 3", len(records))
	}

	w.png = true
	w.process(path)
	if _, err := os.Stat(filepath.Join(dir, "w.png")); err != nil {
		t.Errorf("png not written: %v", err)
	}

	if !w.isConfig(filepath.Join(dir, config.FileName)) {
		t.Error("layout.toml should count as config without an explicit path")
	}
}
