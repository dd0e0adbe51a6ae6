// Package challenge models the Dev Rando challenge payload and fetches it
// from the challenge API.
package challenge

import (
	"encoding/json"

	"github.com/devrando/devrando/internal/errors"
)

// Metadata is the devrandoMetadata record attached to every challenge.
type Metadata struct {
	ChallengeHash     string `json:"challengeHash"`
	GeneratedAt       string `json:"generatedAt"`
	TotalDependencies int    `json:"totalDependencies"`
}

// Challenge is the randomized dependency manifest returned by the service.
// Raw holds the payload exactly as received so the package descriptor can be
// written verbatim, including fields this client does not model.
type Challenge struct {
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
	Metadata        Metadata          `json:"devrandoMetadata"`

	Raw json.RawMessage `json:"-"`
}

// Parse decodes a raw challenge payload and retains the original bytes.
func Parse(raw json.RawMessage) (*Challenge, error) {
	var ch Challenge
	if err := json.Unmarshal(raw, &ch); err != nil {
		return nil, errors.Wrap(errors.EFetchFailed, "challenge payload is not valid JSON", err)
	}
	ch.Raw = raw
	if err := ch.Validate(); err != nil {
		return nil, err
	}
	return &ch, nil
}

// Validate rejects payloads that cannot identify a challenge.
func (c *Challenge) Validate() error {
	if c.Metadata.ChallengeHash == "" {
		return errors.New(errors.EFetchFailed, "challenge payload has no devrandoMetadata.challengeHash")
	}
	return nil
}

// TotalDeclaredDependencies is the number of declared runtime plus
// development dependencies. Display only; the install step installs
// whatever the written descriptor declares.
func (c *Challenge) TotalDeclaredDependencies() int {
	return len(c.Dependencies) + len(c.DevDependencies)
}
