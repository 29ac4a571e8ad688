package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var expectedDefaultOutput = []string{
	"0,1,2,3,4,5,6,7,8,9",
	"10",
	"0,1,3,5,7,8,9",
	"10,0,1,3,5,7,8,9",
	"10,0,1,3,20,5,7,8,9",
	"10,0,1,3,20,5,7,8,9,30",
}

func runScenario(t *testing.T, s *Scenario) (string, string) {
	var out, errOut bytes.Buffer
	r := &runner{out: &out, errOut: &errOut}
	require.NoError(t, r.Run(s))
	return out.String(), errOut.String()
}

func TestDefaultScenario(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lab.demo")
	defer teardown()
	//
	for _, kind := range []string{"list", "vector"} {
		out, errOut := runScenario(t, defaultScenario(kind))
		lines := strings.Split(strings.TrimSpace(out), "\n")
		assert.Equal(t, expectedDefaultOutput, lines, "output for container %s", kind)
		assert.Empty(t, errOut, "error output for container %s", kind)
	}
}

func TestMissingValues(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lab.demo")
	defer teardown()
	//
	s, err := parseScenario([]byte(`
container: list
steps:
  - op: generate
    count: 3
  - op: erase
    values: [1, 7]
  - op: print
  - op: erase
    values: [0, 2]
  - op: print
  - op: size
`))
	require.NoError(t, err)
	out, errOut := runScenario(t, s)
	assert.Equal(t, "0,2\n<Range is empty>\n0\n", out)
	assert.Equal(t, "Missing value 7 in ForwardList instance\n", errOut)
}

func TestParseScenario(t *testing.T) {
	s, err := parseScenario([]byte("steps:\n  - op: size\n"))
	require.NoError(t, err)
	assert.Equal(t, "list", s.Container)
	//
	_, err = parseScenario([]byte("steps:\n  - op: shuffle\n"))
	assert.ErrorContains(t, err, "unknown operation")
	//
	_, err = parseScenario([]byte("steps:\n  - op: insert\n    where: somewhere\n"))
	assert.ErrorContains(t, err, "insert position")
	//
	_, err = parseScenario([]byte("steps: {"))
	assert.Error(t, err)
}

func TestUnknownContainer(t *testing.T) {
	r := &runner{out: &bytes.Buffer{}, errOut: &bytes.Buffer{}}
	err := r.Run(&Scenario{Container: "deque"})
	assert.ErrorContains(t, err, "unknown container kind")
}

func TestLayoutOutput(t *testing.T) {
	var out bytes.Buffer
	r := &runner{out: &out, errOut: &bytes.Buffer{}, layout: true}
	s := &Scenario{Container: "vector", Steps: []Step{{Op: "generate", Count: 3}}}
	require.NoError(t, r.Run(s))
	assert.Contains(t, out.String(), "Vector(size=3, capacity=")
	t.Logf("\n%s", out.String())
}

func TestRunCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
container: vector
steps:
  - op: generate
    count: 4
  - op: insert
    where: middle
    value: 9
  - op: print
`), 0o644))
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"run", "-f", path})
	defer rootCmd.SetArgs(nil)
	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "0,1,9,2,3\n", out.String())
}
