package hydat

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// DefaultDownloadURL is where the Water Survey of Canada publishes the
// current HYDAT release archive.
const DefaultDownloadURL = "https://collaboration.cmc.ec.gc.ca/cmc/hydrometrics/www/Hydat.sqlite3.zip"

type downloader struct {
	url    string
	client *http.Client
	logger *slog.Logger
}

// DownloadOption configures Download.
type DownloadOption func(*downloader)

// WithDownloadURL overrides the release archive URL.
func WithDownloadURL(url string) DownloadOption {
	return func(d *downloader) { d.url = url }
}

// WithHTTPClient overrides the HTTP client used for the download.
func WithHTTPClient(c *http.Client) DownloadOption {
	return func(d *downloader) { d.client = c }
}

// WithLogger overrides the logger used for download progress.
func WithLogger(l *slog.Logger) DownloadOption {
	return func(d *downloader) { d.logger = l }
}

// Download fetches the current HYDAT release archive, extracts the
// database, and installs it at destDir/Hydat.sqlite3, replacing any
// previous release. An empty destDir means Dir(). It returns the path of
// the installed database.
//
// The archive is around a gigabyte, so expect this to take a while on a
// slow connection.
func Download(ctx context.Context, destDir string, opts ...DownloadOption) (string, error) {
	d := downloader{
		url:    DefaultDownloadURL,
		client: &http.Client{Timeout: 30 * time.Minute},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(&d)
	}

	if destDir == "" {
		destDir = Dir()
	}
	if err := os.MkdirAll(destDir, 0700); err != nil {
		return "", fmt.Errorf("creating hydat directory: %w", err)
	}

	archivePath, err := d.fetchArchive(ctx, destDir)
	if err != nil {
		return "", err
	}
	defer os.Remove(archivePath) //nolint:errcheck

	dbPath := filepath.Join(destDir, DBFileName)
	if err := extractDB(archivePath, dbPath); err != nil {
		return "", err
	}

	d.logger.Info("hydat database installed", "path", dbPath)
	return dbPath, nil
}

func (d downloader) fetchArchive(ctx context.Context, destDir string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("downloading hydat archive: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("downloading hydat archive: unexpected status %d", resp.StatusCode)
	}

	d.logger.Info("downloading hydat archive", "url", d.url, "size_bytes", resp.ContentLength)

	tmp, err := os.CreateTemp(destDir, "hydat-*.zip")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()           //nolint:errcheck
		os.Remove(tmp.Name()) //nolint:errcheck
		return "", fmt.Errorf("writing hydat archive: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name()) //nolint:errcheck
		return "", fmt.Errorf("closing hydat archive: %w", err)
	}
	return tmp.Name(), nil
}

// extractDB pulls the database out of the release archive and moves it
// into place atomically, so a partial extraction never clobbers a
// working database.
func extractDB(archivePath, dbPath string) error {
	zr, err := zip.OpenReader(archivePath)
	if err != nil {
		return fmt.Errorf("opening hydat archive: %w", err)
	}
	defer zr.Close() //nolint:errcheck

	var entry *zip.File
	for _, f := range zr.File {
		if strings.EqualFold(path.Base(f.Name), DBFileName) {
			entry = f
			break
		}
	}
	if entry == nil {
		return fmt.Errorf("no %s in hydat archive", DBFileName)
	}

	src, err := entry.Open()
	if err != nil {
		return fmt.Errorf("opening archive entry: %w", err)
	}
	defer src.Close() //nolint:errcheck

	tmp, err := os.CreateTemp(filepath.Dir(dbPath), "hydat-*.sqlite3")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	if _, err := io.Copy(tmp, src); err != nil {
		tmp.Close()           //nolint:errcheck
		os.Remove(tmp.Name()) //nolint:errcheck
		return fmt.Errorf("extracting hydat database: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name()) //nolint:errcheck
		return fmt.Errorf("closing hydat database: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0600); err != nil {
		os.Remove(tmp.Name()) //nolint:errcheck
		return fmt.Errorf("setting file permissions: %w", err)
	}
	if err := os.Rename(tmp.Name(), dbPath); err != nil {
		os.Remove(tmp.Name()) //nolint:errcheck
		return fmt.Errorf("installing hydat database: %w", err)
	}
	return nil
}
