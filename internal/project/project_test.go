package project

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devrando/devrando/internal/challenge"
	"github.com/devrando/devrando/internal/errors"
	"github.com/devrando/devrando/internal/fs"
)

const samplePayload = `{
  "dependencies": {"left-pad": "1.0.0"},
  "devDependencies": {},
  "devrandoMetadata": {
    "challengeHash": "abc123",
    "generatedAt": "2024-01-01T00:00:00Z",
    "totalDependencies": 1
  }
}`

func sampleChallenge(t *testing.T) *challenge.Challenge {
	t.Helper()
	ch, err := challenge.Parse(json.RawMessage(samplePayload))
	require.NoError(t, err)
	return ch
}

func TestMaterialize(t *testing.T) {
	root := t.TempDir()
	chdir(t, root)

	m := New(fs.NewRealFS())
	require.NoError(t, m.Materialize("demo", sampleChallenge(t)))

	// Working directory moved into the project.
	cwd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, "demo", filepath.Base(cwd))

	descriptor, err := os.ReadFile(filepath.Join(root, "demo", DescriptorFile))
	require.NoError(t, err)
	assert.JSONEq(t, samplePayload, string(descriptor))

	meta, err := os.ReadFile(filepath.Join(root, "demo", MetadataFile))
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"challengeHash":"abc123","generatedAt":"2024-01-01T00:00:00Z","totalDependencies":1}`,
		string(meta))
}

func TestMaterialize_RoundTripFidelity(t *testing.T) {
	// Fields the client does not model must survive the descriptor write.
	payload := `{"name":"surprise","scripts":{"test":"jest"},"dependencies":{"a":"1"},"devrandoMetadata":{"challengeHash":"h","generatedAt":"g","totalDependencies":1}}`
	ch, err := challenge.Parse(json.RawMessage(payload))
	require.NoError(t, err)

	chdir(t, t.TempDir())
	m := New(fs.NewRealFS())
	require.NoError(t, m.Materialize("demo", ch))

	written, err := os.ReadFile(DescriptorFile)
	require.NoError(t, err)
	assert.JSONEq(t, payload, string(written))

	var back map[string]any
	require.NoError(t, json.Unmarshal(written, &back))
	assert.Equal(t, "surprise", back["name"])
}

func TestMaterialize_MetadataIsDerived(t *testing.T) {
	chdir(t, t.TempDir())

	m := New(fs.NewRealFS())
	require.NoError(t, m.Materialize("demo", sampleChallenge(t)))

	var meta challenge.Metadata
	data, err := os.ReadFile(MetadataFile)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &meta))

	assert.Equal(t, sampleChallenge(t).Metadata, meta)
}

func TestMaterialize_DirExists(t *testing.T) {
	root := t.TempDir()
	chdir(t, root)
	require.NoError(t, os.Mkdir(filepath.Join(root, "demo"), 0755))

	m := New(fs.NewRealFS())
	err := m.Materialize("demo", sampleChallenge(t))

	require.Error(t, err)
	assert.Equal(t, errors.EProjectExists, errors.GetCode(err))
	assert.Equal(t, 0, errors.ExitCode(err))

	// Nothing written inside, cwd unchanged.
	entries, err2 := os.ReadDir(filepath.Join(root, "demo"))
	require.NoError(t, err2)
	assert.Empty(t, entries)
	cwd, err2 := os.Getwd()
	require.NoError(t, err2)
	assert.Equal(t, root, cwd)
}

func TestMaterialize_FileBlocksName(t *testing.T) {
	root := t.TempDir()
	chdir(t, root)
	require.NoError(t, os.WriteFile(filepath.Join(root, "demo"), []byte("x"), 0644))

	m := New(fs.NewRealFS())
	err := m.Materialize("demo", sampleChallenge(t))

	require.Error(t, err)
	assert.Equal(t, errors.EProjectExists, errors.GetCode(err))
}

func TestMaterialize_CreateFailure(t *testing.T) {
	chdir(t, t.TempDir())

	m := New(fs.NewRealFS())
	err := m.Materialize(filepath.Join("no-such-parent", "demo"), sampleChallenge(t))

	require.Error(t, err)
	assert.Equal(t, errors.EProjectCreateFailed, errors.GetCode(err))
	assert.Equal(t, 1, errors.ExitCode(err))
}

// chdir switches the working directory for the duration of the test,
// restoring the original directory on cleanup (t.Chdir needs Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
