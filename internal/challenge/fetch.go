package challenge

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/devrando/devrando/internal/errors"
	"github.com/devrando/devrando/internal/version"
)

// EndpointPath is the tRPC procedure serving the current challenge.
const EndpointPath = "/api/trpc/challenge.getCurrentChallenge"

// envelope is the tRPC response wrapper: {result:{data:{json:<challenge>}}}.
type envelope struct {
	Result struct {
		Data struct {
			JSON json.RawMessage `json:"json"`
		} `json:"data"`
	} `json:"result"`
}

// Fetch GETs the current challenge from the API at baseURL and unwraps the
// tRPC envelope. Any transport, status, or parse failure is E_FETCH_FAILED;
// the caller cannot proceed without a challenge, so there are no retries.
func Fetch(ctx context.Context, client *http.Client, baseURL string) (*Challenge, error) {
	if client == nil {
		client = http.DefaultClient
	}

	url := strings.TrimSuffix(baseURL, "/") + EndpointPath
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(errors.EFetchFailed, "invalid challenge URL "+url, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "devrando/"+version.Version)

	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.Wrap(errors.EFetchFailed, "could not reach the challenge API", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.New(errors.EFetchFailed,
			fmt.Sprintf("challenge API returned %s", resp.Status))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(errors.EFetchFailed, "failed to read challenge response", err)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, errors.Wrap(errors.EFetchFailed, "challenge response is not valid JSON", err)
	}
	if len(env.Result.Data.JSON) == 0 {
		return nil, errors.New(errors.EFetchFailed, "challenge response has no result.data.json payload")
	}

	return Parse(env.Result.Data.JSON)
}
