package fundbook

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func testRemoteStore(t *testing.T, handler http.HandlerFunc) *RemoteStore {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	r, err := NewRemoteStore(RemoteConfig{URL: srv.URL, Username: "alice", Password: "secret"})
	if err != nil {
		t.Fatalf("NewRemoteStore() failed: %v", err)
	}
	return r
}

func TestRemoteConfig_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		cfg     RemoteConfig
		wantErr bool
		path    string
	}{
		{name: "complete", cfg: RemoteConfig{URL: "https://dav.example.com", Username: "a", Password: "b", Path: "/x.json"}, path: "/x.json"},
		{name: "path defaults", cfg: RemoteConfig{URL: "https://dav.example.com", Username: "a", Password: "b"}, path: DefaultRemotePath},
		{name: "missing url", cfg: RemoteConfig{Username: "a", Password: "b"}, wantErr: true},
		{name: "missing credentials", cfg: RemoteConfig{URL: "https://dav.example.com"}, wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
			if err == nil && got.Path != tc.path {
				t.Errorf("Path = %q, want %q", got.Path, tc.path)
			}
		})
	}
}

func TestRemoteStore_TestAcceptsMultiStatus(t *testing.T) {
	var gotMethod, gotDepth, gotUser string
	r := testRemoteStore(t, func(w http.ResponseWriter, req *http.Request) {
		gotMethod = req.Method
		gotDepth = req.Header.Get("Depth")
		gotUser, _, _ = req.BasicAuth()
		w.WriteHeader(http.StatusMultiStatus)
	})

	if err := r.Test(context.Background()); err != nil {
		t.Fatalf("Test() failed: %v", err)
	}
	if gotMethod != "PROPFIND" || gotDepth != "0" {
		t.Errorf("probe was %s with Depth %q, want PROPFIND with Depth 0", gotMethod, gotDepth)
	}
	if gotUser != "alice" {
		t.Errorf("basic auth user = %q, want alice", gotUser)
	}
}

func TestRemoteStore_TestRejectsAuthFailure(t *testing.T) {
	r := testRemoteStore(t, func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	if err := r.Test(context.Background()); err == nil {
		t.Error("Test() accepted a 401 answer")
	}
}

func TestRemoteStore_UploadWritesWholeState(t *testing.T) {
	var gotPath, gotType string
	var gotBody []byte
	r := testRemoteStore(t, func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodPut {
			t.Errorf("method = %s, want PUT", req.Method)
		}
		gotPath = req.URL.Path
		gotType = req.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(req.Body)
		w.WriteHeader(http.StatusCreated)
	})

	state := RemoteState{
		Transactions: []Transaction{{ID: 1, Type: Buy, Date: MustParse("2025-01-10"), FundName: "Fund A", Shares: Q(1), CostPrice: M(1)}},
		Holdings:     []Holding{{ID: 2, FundName: "Fund A", Shares: Q(1), CostPrice: M(1)}},
	}
	if err := r.Upload(context.Background(), state); err != nil {
		t.Fatalf("Upload() failed: %v", err)
	}

	if gotPath != DefaultRemotePath {
		t.Errorf("upload path = %q, want %q", gotPath, DefaultRemotePath)
	}
	if gotType != "application/json" {
		t.Errorf("content type = %q, want application/json", gotType)
	}
	var echoed RemoteState
	if err := json.Unmarshal(gotBody, &echoed); err != nil {
		t.Fatalf("uploaded body is not JSON: %v", err)
	}
	if len(echoed.Transactions) != 1 || len(echoed.Holdings) != 1 {
		t.Errorf("uploaded %d transactions and %d holdings, want 1 and 1", len(echoed.Transactions), len(echoed.Holdings))
	}
	if echoed.ExportTime == "" {
		t.Error("exportTime was not stamped on upload")
	}
}

func TestRemoteStore_DownloadNotFound(t *testing.T) {
	r := testRemoteStore(t, func(w http.ResponseWriter, req *http.Request) {
		http.NotFound(w, req)
	})
	if _, err := r.Download(context.Background()); !errors.Is(err, ErrNoRemoteData) {
		t.Errorf("Download() = %v, want ErrNoRemoteData", err)
	}
}

func TestRemoteStore_DownloadRoundtrip(t *testing.T) {
	blob := `{"transactions":[{"id":1,"type":"buy","date":"2025-01-10","fundName":"Fund A","shares":1,"costPrice":1}],"holdings":[],"exportTime":"2025-01-10T08:00:00Z"}`
	r := testRemoteStore(t, func(w http.ResponseWriter, req *http.Request) {
		io.WriteString(w, blob)
	})

	state, err := r.Download(context.Background())
	if err != nil {
		t.Fatalf("Download() failed: %v", err)
	}
	if len(state.Transactions) != 1 || state.Transactions[0].FundName != "Fund A" {
		t.Errorf("downloaded transactions = %v, want one Fund A buy", state.Transactions)
	}
	if state.Holdings == nil {
		t.Error("holdings is nil, want an empty slice")
	}
}

func TestRemoteStore_DownloadNormalizesMissingCollections(t *testing.T) {
	r := testRemoteStore(t, func(w http.ResponseWriter, req *http.Request) {
		io.WriteString(w, `{"exportTime":"2025-01-10T08:00:00Z"}`)
	})
	state, err := r.Download(context.Background())
	if err != nil {
		t.Fatalf("Download() failed: %v", err)
	}
	if state.Transactions == nil || state.Holdings == nil {
		t.Error("absent collections must decode as empty slices, not nil")
	}
}

func TestRemoteStore_DownloadRejectsCorruptBlob(t *testing.T) {
	r := testRemoteStore(t, func(w http.ResponseWriter, req *http.Request) {
		io.WriteString(w, "<html>not json</html>")
	})
	if _, err := r.Download(context.Background()); err == nil || errors.Is(err, ErrNoRemoteData) {
		t.Errorf("Download() = %v, want a decode error", err)
	}
}

func TestRemoteSuccess(t *testing.T) {
	for _, code := range []int{200, 201, 204, 207} {
		if !remoteSuccess(code) {
			t.Errorf("remoteSuccess(%d) = false, want true", code)
		}
	}
	for _, code := range []int{301, 401, 404, 500} {
		if remoteSuccess(code) {
			t.Errorf("remoteSuccess(%d) = true, want false", code)
		}
	}
}

func TestRemoteStore_CustomPath(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		gotPath = req.URL.Path
	}))
	defer srv.Close()

	r, err := NewRemoteStore(RemoteConfig{URL: srv.URL, Username: "a", Password: "b", Path: "/backups/funds.json"})
	if err != nil {
		t.Fatalf("NewRemoteStore() failed: %v", err)
	}
	if _, err := r.Download(context.Background()); err != nil && !strings.Contains(err.Error(), "decode") {
		t.Fatalf("Download() failed: %v", err)
	}
	if gotPath != "/backups/funds.json" {
		t.Errorf("request path = %q, want the configured path", gotPath)
	}
}
