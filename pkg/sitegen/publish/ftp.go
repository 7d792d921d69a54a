// Package publish uploads a generated site to its host.
package publish

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net"
	"net/textproto"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"time"

	"github.com/jlaffaye/ftp"
	"github.com/purh/sitegen/pkg/sitegen/models"
)

// Publisher uploads the content of a local directory.
type Publisher interface {
	Publish(ctx context.Context, localDir string) error
}

// ErrIncompleteConfig indicates CONFIG lacks a key needed to connect.
var ErrIncompleteConfig = errors.New("incomplete FTP configuration (need ftp_host, ftp_user, ftp_password, ftp_remote_dir)")

// Security modes of the CONFIG ftp_security key.
const (
	SecurityAuto  = "auto"
	SecurityPlain = "plain"
	SecurityFTPS  = "ftps"
)

const (
	defaultAttempts = 3
	defaultBackoff  = 2 * time.Second
	dialTimeout     = 30 * time.Second
)

// Conn is the part of an FTP session used for uploads.
type Conn interface {
	MakeDir(path string) error
	Stor(path string, r io.Reader) error
	Quit() error
}

// Dialer opens a logged-in session, over explicit TLS when useTLS is set.
type Dialer func(ctx context.Context, cfg models.FTPConfig, useTLS bool) (Conn, error)

// FTP publishes over FTP or explicit FTPS.
type FTP struct {
	cfg      models.FTPConfig
	dial     Dialer
	attempts int
	backoff  time.Duration
}

// NewFTP creates a publisher for cfg.
func NewFTP(cfg models.FTPConfig) *FTP {
	return &FTP{cfg: cfg, dial: dialFTP, attempts: defaultAttempts, backoff: defaultBackoff}
}

func dialFTP(ctx context.Context, cfg models.FTPConfig, useTLS bool) (Conn, error) {
	opts := []ftp.DialOption{ftp.DialWithTimeout(dialTimeout), ftp.DialWithContext(ctx)}
	if useTLS {
		opts = append(opts, ftp.DialWithExplicitTLS(&tls.Config{ServerName: cfg.Host, MinVersion: tls.VersionTLS12}))
	}
	c, err := ftp.Dial(net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)), opts...)
	if err != nil {
		return nil, err
	}
	if err := c.Login(cfg.User, cfg.Password); err != nil {
		_ = c.Quit()
		return nil, fmt.Errorf("login as %s: %w", cfg.User, err)
	}
	return c, nil
}

// Publish uploads every file under localDir to the remote directory,
// creating directories as needed. Each file is tried up to three times.
func (p *FTP) Publish(ctx context.Context, localDir string) error {
	if !p.cfg.Complete() {
		return ErrIncompleteConfig
	}

	conn, err := p.connect(ctx)
	if err != nil {
		return err
	}
	defer conn.Quit()

	var dirs, files []string
	err = filepath.WalkDir(localDir, func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(localDir, name)
		if err != nil {
			return err
		}
		switch {
		case rel == ".":
		case d.IsDir():
			dirs = append(dirs, filepath.ToSlash(rel))
		default:
			files = append(files, filepath.ToSlash(rel))
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("list %s: %w", localDir, err)
	}

	_ = conn.MakeDir(p.cfg.RemoteDir)
	for _, d := range dirs {
		// MKD fails on existing directories
		_ = conn.MakeDir(path.Join(p.cfg.RemoteDir, d))
	}

	start := time.Now()
	for _, f := range files {
		if err := p.upload(ctx, conn, filepath.Join(localDir, filepath.FromSlash(f)), path.Join(p.cfg.RemoteDir, f)); err != nil {
			return err
		}
	}
	slog.Info("site published",
		"host", p.cfg.Host,
		"remote_dir", p.cfg.RemoteDir,
		"files", len(files),
		"duration", time.Since(start).Round(time.Millisecond))
	return nil
}

func (p *FTP) connect(ctx context.Context) (Conn, error) {
	switch p.cfg.Security {
	case SecurityPlain:
		return p.dial(ctx, p.cfg, false)
	case SecurityFTPS:
		return p.dial(ctx, p.cfg, true)
	case SecurityAuto, "":
		conn, err := p.dial(ctx, p.cfg, true)
		if err == nil || !tlsRefused(err) {
			return conn, err
		}
		slog.Warn("server refused explicit TLS, falling back to plain FTP", "host", p.cfg.Host, "error", err)
		return p.dial(ctx, p.cfg, false)
	}
	return nil, fmt.Errorf("unknown ftp_security %q (expected auto, plain or ftps)", p.cfg.Security)
}

// tlsRefusalCodes are the replies servers without TLS give to AUTH TLS.
var tlsRefusalCodes = map[int]bool{500: true, 502: true, 503: true, 504: true, 534: true}

// tlsRefused reports whether err is the server rejecting AUTH TLS.
func tlsRefused(err error) bool {
	var perr *textproto.Error
	if !errors.As(err, &perr) {
		return false
	}
	return tlsRefusalCodes[perr.Code]
}

func (p *FTP) upload(ctx context.Context, conn Conn, local, remote string) error {
	var err error
	for attempt := 1; attempt <= p.attempts; attempt++ {
		if err = p.stor(conn, local, remote); err == nil {
			slog.Debug("uploaded", "file", remote)
			return nil
		}
		slog.Warn("upload failed", "file", remote, "attempt", attempt, "error", err)
		if attempt == p.attempts {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(p.backoff):
		}
	}
	return fmt.Errorf("upload %s after %d attempts: %w", remote, p.attempts, err)
}

func (p *FTP) stor(conn Conn, local, remote string) error {
	f, err := os.Open(local)
	if err != nil {
		return err
	}
	defer f.Close()
	return conn.Stor(remote, f)
}
