package hydat

import (
	"archive/zip"
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func makeArchive(t *testing.T, entryName string, contents []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create(entryName)
	if err != nil {
		t.Fatalf("creating archive entry: %v", err)
	}
	if _, err := w.Write(contents); err != nil {
		t.Fatalf("writing archive entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("closing archive: %v", err)
	}
	return buf.Bytes()
}

func serveArchive(t *testing.T, archive []byte) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(archive) //nolint:errcheck
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestDownload(t *testing.T) {
	fixture, err := os.ReadFile(newTestDB(t))
	if err != nil {
		t.Fatal(err)
	}
	srv := serveArchive(t, makeArchive(t, DBFileName, fixture))

	dir := t.TempDir()
	path, err := Download(context.Background(), dir, WithDownloadURL(srv.URL), WithHTTPClient(srv.Client()))
	if err != nil {
		t.Fatalf("Download: %v", err)
	}
	if want := filepath.Join(dir, DBFileName); path != want {
		t.Errorf("path = %q, want %q", path, want)
	}

	// The installed file is a working database.
	agencies, err := AgencyList(context.Background(), FromPath(path))
	if err != nil {
		t.Fatalf("AgencyList on downloaded db: %v", err)
	}
	if len(agencies) != 2 {
		t.Errorf("got %d agencies, want 2", len(agencies))
	}

	// Temp files are gone; only the database remains.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("got %d entries in dest dir, want 1", len(entries))
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("file permissions = %o, want 0600", perm)
	}
}

func TestDownloadReplacesExisting(t *testing.T) {
	fixture, err := os.ReadFile(newTestDB(t))
	if err != nil {
		t.Fatal(err)
	}
	srv := serveArchive(t, makeArchive(t, DBFileName, fixture))

	dir := t.TempDir()
	stale := filepath.Join(dir, DBFileName)
	if err := os.WriteFile(stale, []byte("stale release"), 0600); err != nil {
		t.Fatal(err)
	}

	path, err := Download(context.Background(), dir, WithDownloadURL(srv.URL), WithHTTPClient(srv.Client()))
	if err != nil {
		t.Fatalf("Download: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, fixture) {
		t.Error("existing database was not replaced")
	}
}

func TestDownloadNestedEntry(t *testing.T) {
	// Some releases ship the database inside a directory.
	srv := serveArchive(t, makeArchive(t, "Hydat/Hydat.sqlite3", []byte("db bytes")))

	dir := t.TempDir()
	path, err := Download(context.Background(), dir, WithDownloadURL(srv.URL), WithHTTPClient(srv.Client()))
	if err != nil {
		t.Fatalf("Download: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "db bytes" {
		t.Errorf("contents = %q, want %q", got, "db bytes")
	}
}

func TestDownloadBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)

	_, err := Download(context.Background(), t.TempDir(), WithDownloadURL(srv.URL), WithHTTPClient(srv.Client()))
	if err == nil {
		t.Fatal("expected error for 404 response")
	}
	if !strings.Contains(err.Error(), "unexpected status 404") {
		t.Errorf("error %q should include the response status", err)
	}
}

func TestDownloadArchiveWithoutDatabase(t *testing.T) {
	srv := serveArchive(t, makeArchive(t, "README.txt", []byte("nothing to see")))

	_, err := Download(context.Background(), t.TempDir(), WithDownloadURL(srv.URL), WithHTTPClient(srv.Client()))
	if err == nil {
		t.Fatal("expected error for archive without database")
	}
	if !strings.Contains(err.Error(), DBFileName) {
		t.Errorf("error %q should name the missing file", err)
	}
}
