package fundbook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// The sync coordinator is not a merge algorithm: it replaces whole states.
// The remote is a WebDAV store addressed by base URL + path + basic
// credentials, holding one JSON blob with both collections.

// ErrNoRemoteData reports that the remote store has no blob yet. It is the
// normal state before the first upload, not a failure.
var ErrNoRemoteData = errors.New("no remote data yet")

// RemoteConfig addresses the WebDAV store.
type RemoteConfig struct {
	URL      string `json:"url"`
	Username string `json:"username"`
	Password string `json:"password"`
	Path     string `json:"path"`
}

// DefaultRemotePath is where the blob lives when the configuration leaves the
// path empty.
const DefaultRemotePath = "/fund-data.json"

// Validate checks that the configuration is complete enough to reach the
// remote store, and defaults the blob path.
func (c RemoteConfig) Validate() (RemoteConfig, error) {
	if c.URL == "" || c.Username == "" || c.Password == "" {
		return c, errors.New("webdav configuration is incomplete: url, username and password are required")
	}
	if c.Path == "" {
		c.Path = DefaultRemotePath
	}
	return c, nil
}

// RemoteState is the single blob exchanged with the remote store. Both
// collections travel together: a download replaces both or neither.
type RemoteState struct {
	Transactions []Transaction `json:"transactions"`
	Holdings     []Holding     `json:"holdings"`
	ExportTime   string        `json:"exportTime"`
}

// RemoteStore is a client for one configured WebDAV location.
type RemoteStore struct {
	cfg    RemoteConfig
	client *http.Client
}

// NewRemoteStore validates the configuration and returns a client with an
// explicit timeout, so a sync cannot hang forever.
func NewRemoteStore(cfg RemoteConfig) (*RemoteStore, error) {
	cfg, err := cfg.Validate()
	if err != nil {
		return nil, err
	}
	return &RemoteStore{
		cfg:    cfg,
		client: &http.Client{Timeout: 30 * time.Second},
	}, nil
}

// Test checks that the remote store answers authenticated requests.
func (r *RemoteStore) Test(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, "PROPFIND", r.cfg.URL, nil)
	if err != nil {
		return fmt.Errorf("invalid webdav url %q: %w", r.cfg.URL, err)
	}
	req.SetBasicAuth(r.cfg.Username, r.cfg.Password)
	req.Header.Set("Depth", "0")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("webdav connection failed: %w", err)
	}
	defer resp.Body.Close()
	if !remoteSuccess(resp.StatusCode) {
		return fmt.Errorf("webdav connection failed: %s", resp.Status)
	}
	return nil
}

// Upload serializes the state and writes it as one blob to the configured
// location, overwriting whatever was there (last write wins).
func (r *RemoteStore) Upload(ctx context.Context, state RemoteState) error {
	state.ExportTime = time.Now().UTC().Format(time.RFC3339)
	body, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("could not serialize state for upload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, r.cfg.URL+r.cfg.Path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("invalid webdav url %q: %w", r.cfg.URL+r.cfg.Path, err)
	}
	req.SetBasicAuth(r.cfg.Username, r.cfg.Password)
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}
	defer resp.Body.Close()
	if !remoteSuccess(resp.StatusCode) {
		return fmt.Errorf("upload failed: %s", resp.Status)
	}
	return nil
}

// Download fetches and decodes the remote blob. A 404 answer returns
// ErrNoRemoteData. The caller must get explicit confirmation before
// replacing local state with the result.
func (r *RemoteStore) Download(ctx context.Context) (*RemoteState, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.cfg.URL+r.cfg.Path, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid webdav url %q: %w", r.cfg.URL+r.cfg.Path, err)
	}
	req.SetBasicAuth(r.cfg.Username, r.cfg.Password)

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNoRemoteData
	}
	if !remoteSuccess(resp.StatusCode) {
		return nil, fmt.Errorf("download failed: %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("download failed: %w", err)
	}
	var state RemoteState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("could not decode remote blob: %w", err)
	}
	if state.Transactions == nil {
		state.Transactions = []Transaction{}
	}
	if state.Holdings == nil {
		state.Holdings = []Holding{}
	}
	return &state, nil
}

// remoteSuccess reports whether a WebDAV status code counts as success.
// 207 Multi-Status is how PROPFIND answers.
func remoteSuccess(code int) bool {
	switch code {
	case http.StatusOK, http.StatusCreated, http.StatusNoContent, http.StatusMultiStatus:
		return true
	}
	return code >= 200 && code < 300
}
