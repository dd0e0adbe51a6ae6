// Package project materializes a fetched challenge into a new project
// directory: package.json (the challenge verbatim) plus the derived
// devrando.config.json.
package project

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/devrando/devrando/internal/challenge"
	"github.com/devrando/devrando/internal/errors"
	"github.com/devrando/devrando/internal/fs"
)

// Output file names inside the project directory.
const (
	DescriptorFile = "package.json"
	MetadataFile   = "devrando.config.json"
)

// Materializer creates the project directory and writes its files.
type Materializer struct {
	FS    fs.FS
	Chdir func(dir string) error // process-wide; injected for tests
}

// New creates a Materializer with production dependencies.
func New(fsys fs.FS) *Materializer {
	return &Materializer{FS: fsys, Chdir: os.Chdir}
}

// Materialize creates ./name, enters it, and writes the descriptor and
// metadata files.
//
// A pre-existing target (file or directory) is the benign cancellation:
// E_PROJECT_EXISTS, nothing created, caller exits 0 without cleanup. Any
// other failure is fatal and the caller is expected to run cleanup.
//
// On success the process working directory has permanently changed into the
// project; all later steps (vcs, install) rely on that.
func (m *Materializer) Materialize(name string, ch *challenge.Challenge) error {
	if err := m.FS.Mkdir(name, 0755); err != nil {
		if os.IsExist(err) {
			return errors.New(errors.EProjectExists, "directory "+name+" already exists, leaving it untouched")
		}
		return errors.Wrap(errors.EProjectCreateFailed, "could not create directory "+name, err)
	}

	if err := m.Chdir(name); err != nil {
		return errors.Wrap(errors.EProjectCreateFailed, "could not enter directory "+name, err)
	}

	descriptor, err := renderDescriptor(ch)
	if err != nil {
		return err
	}
	if err := fs.WriteFileAtomic(m.FS, DescriptorFile, descriptor, 0644); err != nil {
		return errors.Wrap(errors.EWriteFailed, "could not write "+DescriptorFile, err)
	}

	meta, err := renderMetadata(ch)
	if err != nil {
		return err
	}
	if err := fs.WriteFileAtomic(m.FS, MetadataFile, meta, 0644); err != nil {
		return errors.Wrap(errors.EWriteFailed, "could not write "+MetadataFile, err)
	}

	return nil
}

// renderDescriptor re-indents the raw payload instead of re-marshaling the
// typed struct so unknown fields and key order survive verbatim.
func renderDescriptor(ch *challenge.Challenge) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, ch.Raw, "", "  "); err != nil {
		return nil, errors.Wrap(errors.EWriteFailed, "challenge payload is not indentable JSON", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// renderMetadata serializes exactly the three devrandoMetadata fields,
// derived from the fetched challenge, never hand-authored.
func renderMetadata(ch *challenge.Challenge) ([]byte, error) {
	data, err := json.MarshalIndent(ch.Metadata, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.EWriteFailed, "could not serialize challenge metadata", err)
	}
	return append(data, '\n'), nil
}
