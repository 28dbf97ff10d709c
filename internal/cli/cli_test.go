package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/netplot/netplot/pkg/graph"
	"github.com/netplot/netplot/pkg/layout"
)

// writeTestGraph writes a small graph file and returns its path.
func writeTestGraph(t *testing.T, dir string) string {
	t.Helper()
	g := graph.New()
	g.AddEdge("a", "b")
	g.AddEdge("b", "c")
	path := filepath.Join(dir, "graph.json")
	if err := graph.WriteGraphFile(g, path); err != nil {
		t.Fatalf("write graph: %v", err)
	}
	return path
}

func newTestCLI(t *testing.T) *CLI {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	return New(os.Stderr, LogInfo)
}

func TestRootCommandWiring(t *testing.T) {
	root := newTestCLI(t).RootCommand()

	for _, name := range []string{"draw", "layout", "cache", "completion"} {
		found := false
		for _, cmd := range root.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command is missing %q", name)
		}
	}
}

func TestLayoutCommand(t *testing.T) {
	c := newTestCLI(t)
	dir := t.TempDir()
	input := writeTestGraph(t, dir)
	output := filepath.Join(dir, "pos.json")

	root := c.RootCommand()
	root.SetArgs([]string{"layout", input, "-l", "circular", "-o", output})
	if err := root.Execute(); err != nil {
		t.Fatalf("layout: %v", err)
	}

	pos, err := layout.ReadPositionsFile(output)
	if err != nil {
		t.Fatalf("read positions: %v", err)
	}
	for _, id := range []string{"a", "b", "c"} {
		if _, ok := pos[id]; !ok {
			t.Errorf("missing position for %q", id)
		}
	}
}

func TestLayoutCommandDefaultOutput(t *testing.T) {
	c := newTestCLI(t)
	input := writeTestGraph(t, t.TempDir())

	root := c.RootCommand()
	root.SetArgs([]string{"layout", input, "-l", "circular"})
	if err := root.Execute(); err != nil {
		t.Fatalf("layout: %v", err)
	}

	want := filepath.Join(filepath.Dir(input), "graph.positions.json")
	if _, err := os.Stat(want); err != nil {
		t.Errorf("default output missing: %v", err)
	}
}

func TestDrawCommandPNG(t *testing.T) {
	c := newTestCLI(t)
	dir := t.TempDir()
	input := writeTestGraph(t, dir)
	output := filepath.Join(dir, "out.png")

	root := c.RootCommand()
	root.SetArgs([]string{"draw", input, "-l", "circular", "-f", "png", "-o", output})
	if err := root.Execute(); err != nil {
		t.Fatalf("draw: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Error("output is not a PNG")
	}
}

func TestDrawCommandSVGWithPositions(t *testing.T) {
	c := newTestCLI(t)
	dir := t.TempDir()
	input := writeTestGraph(t, dir)

	posFile := filepath.Join(dir, "pos.json")
	pos := layout.Positions{"a": {X: 0, Y: 0}, "b": {X: 1, Y: 0}, "c": {X: 0, Y: 1}}
	if err := layout.WritePositionsFile(pos, posFile); err != nil {
		t.Fatalf("write positions: %v", err)
	}

	output := filepath.Join(dir, "out.svg")
	root := c.RootCommand()
	root.SetArgs([]string{"draw", input, "-p", posFile, "-f", "svg", "-o", output})
	if err := root.Execute(); err != nil {
		t.Fatalf("draw: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("<svg")) {
		t.Error("output is not an SVG")
	}
}

func TestDrawCommandUnknownFormat(t *testing.T) {
	c := newTestCLI(t)
	input := writeTestGraph(t, t.TempDir())

	root := c.RootCommand()
	root.SetArgs([]string{"draw", input, "-f", "gif"})
	if err := root.Execute(); err == nil {
		t.Error("expected an error for an unsupported format")
	}
}

func TestDrawCommandCachesArtifact(t *testing.T) {
	cacheHome := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", cacheHome)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	c := New(os.Stderr, LogInfo)

	dir := t.TempDir()
	input := writeTestGraph(t, dir)
	output := filepath.Join(dir, "out.png")

	for i := 0; i < 2; i++ {
		root := c.RootCommand()
		root.SetArgs([]string{"draw", input, "-l", "circular", "-o", output})
		if err := root.Execute(); err != nil {
			t.Fatalf("draw #%d: %v", i+1, err)
		}
	}

	entries := 0
	filepath.Walk(filepath.Join(cacheHome, appName), func(path string, info os.FileInfo, err error) error {
		if err == nil && !info.IsDir() {
			entries++
		}
		return nil
	})
	if entries == 0 {
		t.Error("expected cached entries after drawing")
	}
}

func TestLoadConfig(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)

	dir := filepath.Join(configHome, appName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	content := "layout = \"circular\"\nnode_color = \"#336699\"\nwidth = 1024\nlabels = false\n"
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Layout != "circular" || cfg.NodeColor != "#336699" || cfg.Width != 1024 {
		t.Errorf("config not applied: %+v", cfg)
	}
	if cfg.Labels == nil || *cfg.Labels {
		t.Error("labels = false should be decoded")
	}
	// Silent keys keep their defaults.
	if cfg.Format != "png" || cfg.Height != 600 {
		t.Errorf("defaults lost: %+v", cfg)
	}

	opts := cfg.drawOptions()
	if opts.WithLabels {
		t.Error("drawOptions should honor labels = false")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg != defaultConfig() {
		t.Errorf("missing file should fall back to defaults, got %+v", cfg)
	}
}

func TestLayoutFuncSeeds(t *testing.T) {
	g := graph.New()
	g.AddEdge("a", "b")

	f1, err := layoutFunc("random", 5)
	if err != nil {
		t.Fatalf("layoutFunc: %v", err)
	}
	f2, _ := layoutFunc("random", 6)

	p1, _ := f1(g)
	p2, _ := f2(g)
	if p1["a"] == p2["a"] && p1["b"] == p2["b"] {
		t.Error("seed should change randomized layouts")
	}

	if _, err := layoutFunc("nope", 0); err == nil {
		t.Error("unknown layout should error")
	}
}

func TestCachePathCommand(t *testing.T) {
	c := newTestCLI(t)
	root := c.RootCommand()
	root.SetArgs([]string{"cache", "path"})
	if err := root.Execute(); err != nil {
		t.Fatalf("cache path: %v", err)
	}
}
