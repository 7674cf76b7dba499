package cmd_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
	"github.com/vsariola/motif/cmd"
	"gitlab.com/gomidi/midi/v2/smf"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := cmd.NewRootCommand()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestEventsText(t *testing.T) {
	out, err := run(t, "events", "testdata/line.yml")
	require.NoError(t, err)
	g := goldie.New(t, goldie.WithFixtureDir("testdata/golden"), goldie.WithNameSuffix(".golden"))
	g.Assert(t, "events_text", []byte(out))
}

func TestEventsTemplate(t *testing.T) {
	out, err := run(t, "events", "testdata/line.yml", "-n", "2", "--template", `{{.Instrument | toString | lower | replace " " "-"}} {{.Pitch}}`)
	require.NoError(t, err)
	assert.Equal(t, "acoustic-grand-piano 60\nacoustic-grand-piano 64\n", out)
}

func TestEventsFormats(t *testing.T) {
	out, err := run(t, "events", "testdata/line.yml", "--format", "json")
	require.NoError(t, err)
	var events []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &events))
	require.Len(t, events, 3)
	assert.Equal(t, "1/2", events[1]["start"])
	assert.Equal(t, "Acoustic Grand Piano", events[1]["instrument"])

	out, err = run(t, "events", "testdata/line.yml", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "start: 1/2")

	out, err = run(t, "events", "testdata/line.yml", "--format", "msgpack")
	require.NoError(t, err)
	var decoded []map[string]any
	require.NoError(t, msgpack.Unmarshal([]byte(out), &decoded))
	assert.Len(t, decoded, 3)

	_, err = run(t, "events", "testdata/line.yml", "--format", "xml")
	assert.ErrorContains(t, err, "invalid format")
}

func TestEventsInfinite(t *testing.T) {
	_, err := run(t, "events", "testdata/forever.yml")
	assert.ErrorContains(t, err, "infinite")
	out, err := run(t, "events", "testdata/forever.yml", "-n", "3")
	require.NoError(t, err)
	assert.Equal(t, 3, bytes.Count([]byte(out), []byte("Cello")))
	out, err = run(t, "events", "testdata/forever.yml", "--take", "1")
	require.NoError(t, err)
	assert.Equal(t, 4, bytes.Count([]byte(out), []byte("\n")))
}

func TestRender(t *testing.T) {
	dir := t.TempDir()
	src, err := os.ReadFile("testdata/line.yml")
	require.NoError(t, err)
	path := filepath.Join(dir, "line.yml")
	require.NoError(t, os.WriteFile(path, src, 0644))
	out, err := run(t, "render", path)
	require.NoError(t, err)
	assert.Contains(t, out, "line.mid")
	s, err := smf.ReadFile(filepath.Join(dir, "line.mid"))
	require.NoError(t, err)
	assert.Len(t, s.Tracks, 1)

	_, err = run(t, "render", "testdata/forever.yml")
	assert.ErrorContains(t, err, "--take")
	custom := filepath.Join(dir, "drone.mid")
	_, err = run(t, "render", "--take", "2", "-o", custom, "testdata/forever.yml")
	require.NoError(t, err)
	assert.FileExists(t, custom)

	second := filepath.Join(dir, "again.yml")
	require.NoError(t, os.WriteFile(second, src, 0644))
	out, err = run(t, "render", path, second)
	require.NoError(t, err)
	assert.Contains(t, out, "line.mid")
	assert.FileExists(t, filepath.Join(dir, "again.mid"))
	_, err = run(t, "render", path, "testdata/forever.yml")
	assert.ErrorContains(t, err, "forever.yml")

	_, err = run(t, "render", "-o", custom, path, path)
	assert.Error(t, err)
}

func TestInfo(t *testing.T) {
	out, err := run(t, "info", "testdata/line.yml")
	require.NoError(t, err)
	assert.Contains(t, out, "line")
	assert.Contains(t, out, "C4 to G4")
	assert.Contains(t, out, "2.000 s")
}

func TestInstrumentsAndVersion(t *testing.T) {
	out, err := run(t, "instruments")
	require.NoError(t, err)
	assert.Contains(t, out, " 73  Flute")
	assert.Contains(t, out, "acoustic-grand-piano")
	out, err = run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "motif ")
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := run(t, "--log-level", "loud", "instruments")
	assert.ErrorContains(t, err, "invalid log level")
}
