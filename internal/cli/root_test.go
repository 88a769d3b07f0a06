package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/dptrace/problem"
)

func testdata(name string) string {
	return filepath.Join("..", "..", "problem", "testdata", name)
}

// run executes the root command with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())

	return out.String(), err
}

func TestSetVersion(t *testing.T) {
	SetVersion("1.0.0", "abc123", "2024-01-01")
	t.Cleanup(func() { SetVersion("dev", "", "") })

	require.Equal(t, "1.0.0", version)
	require.Equal(t, "abc123", commit)
	require.Equal(t, "2024-01-01", date)
}

func TestSolveText(t *testing.T) {
	out, err := run(t, "solve", testdata("bellman-ford.yaml"))
	require.NoError(t, err)
	require.Contains(t, out, "bellman-ford · textbook")
	require.Contains(t, out, "A=0 B=4 C=7 D=2 E=7")
	require.NotContains(t, out, "Step 1/")

	out, err = run(t, "solve", "--steps", testdata("bellman-ford.yaml"))
	require.NoError(t, err)
	require.Contains(t, out, "Step 1/7")
	require.Contains(t, out, "Step 7/7")
	require.Contains(t, out, "Completed: no negative cycle reachable from the source")
}

func TestSolveYAML(t *testing.T) {
	out, err := run(t, "solve", "--format", "yaml", testdata("multistage.yaml"))
	require.NoError(t, err)

	var sol problem.Solution
	require.NoError(t, yaml.Unmarshal([]byte(out), &sol))
	require.Equal(t, problem.KindMultistage, sol.Kind)
	require.Len(t, sol.Frames, 5)
	v, ok := sol.Lookup("path")
	require.True(t, ok)
	require.Equal(t, "1 → 2 → 7 → 10 → 12", v)
}

func TestSolveJSON(t *testing.T) {
	out, err := run(t, "solve", "-f", "json", "--max-cities", "4", testdata("tsp.yaml"))
	require.NoError(t, err)

	var sol problem.Solution
	require.NoError(t, json.Unmarshal([]byte(out), &sol))
	v, ok := sol.Lookup("min cost")
	require.True(t, ok)
	require.Equal(t, "80", v)
}

func TestSolveFlagsOverrideConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "config.toml", "format = \"json\"\n\n[engine]\nmax_cities = 3\n")

	_, err := run(t, "--config", cfgPath, "solve", testdata("tsp.yaml"))
	require.ErrorContains(t, err, "city limit exceeded")

	out, err := run(t, "--config", cfgPath, "solve", "--max-cities", "4", testdata("tsp.yaml"))
	require.NoError(t, err)
	require.True(t, json.Valid([]byte(out)))

	out, err = run(t, "--config", cfgPath, "solve", "--max-cities", "4", "-f", "text", testdata("tsp.yaml"))
	require.NoError(t, err)
	require.Contains(t, out, "Kyiv → Odesa → Kharkiv → Lviv → Kyiv")
}

func TestSolveErrors(t *testing.T) {
	_, err := run(t, "solve", "-f", "xml", testdata("tsp.yaml"))
	require.ErrorIs(t, err, errBadFormat)

	_, err = run(t, "solve", testdata("missing.yaml"))
	require.Error(t, err)

	_, err = run(t, "--config", filepath.Join(t.TempDir(), "none.toml"), "solve", testdata("tsp.yaml"))
	require.ErrorContains(t, err, "failed to load config")
}

func TestValidate(t *testing.T) {
	out, err := run(t, "validate", testdata("dijkstra.yaml"), testdata("tsp.json"))
	require.NoError(t, err)
	require.Contains(t, out, `dijkstra "road network"`)
	require.Contains(t, out, `tsp "four cities"`)

	bad := writeFile(t, t.TempDir(), "bad.yaml", "kind: floyd\nspec: {a: 1}\n")
	out, err = run(t, "validate", testdata("dijkstra.yaml"), bad)
	require.ErrorContains(t, err, "1 of 2 documents are invalid")
	require.Contains(t, out, "unknown kind")
}

func TestGenerateRoundTrip(t *testing.T) {
	dir := t.TempDir()
	for _, kind := range []string{"bellman-ford", "dijkstra", "multistage", "tsp"} {
		t.Run(kind, func(t *testing.T) {
			out, err := run(t, "generate", kind, "--seed", "5", "-n", "5")
			require.NoError(t, err)

			path := writeFile(t, dir, kind+".yaml", out)
			out, err = run(t, "solve", "-f", "json", path)
			require.NoError(t, err)

			var sol problem.Solution
			require.NoError(t, json.Unmarshal([]byte(out), &sol))
			require.Equal(t, problem.Kind(kind), sol.Kind)
			require.NotEmpty(t, sol.Frames)
		})
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a, err := run(t, "generate", "tsp", "--seed", "11", "-f", "json")
	require.NoError(t, err)
	b, err := run(t, "generate", "tsp", "--seed", "11", "-f", "json")
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestGenerateErrors(t *testing.T) {
	_, err := run(t, "generate", "floyd")
	require.ErrorIs(t, err, problem.ErrUnknownKind)

	_, err = run(t, "generate", "dijkstra", "--min-weight", "-3")
	require.ErrorContains(t, err, "non-negative")

	_, err = run(t, "generate", "tsp", "-f", "text")
	require.ErrorIs(t, err, errBadFormat)
}
