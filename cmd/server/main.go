// emoji-inventory-server serves the inventory screen over SSH. Every
// connection gets its own player, stash and inventory. Build:
//
//	go build -o emoji-inventory-server ./cmd/server
//
// Usage:
//
//	./emoji-inventory-server [--port 2222] [--key server_host_key] [--capacity 10]
//
// Connect:
//
//	ssh -t -p 2222 localhost
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"emoji-inventory/internal/component"
	"emoji-inventory/internal/game"
	internalssh "emoji-inventory/internal/ssh"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	xssh "golang.org/x/crypto/ssh"
)

const (
	defaultTerm  = "xterm-256color"
	maxNameBytes = 16
	fallbackName = "Wanderer"
)

// allowedTerms lists the TERM values we hand to terminfo. Anything else
// falls back to defaultTerm.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"vt220":                 true,
	"rxvt-unicode":          true,
	"rxvt-unicode-256color": true,
}

// termMu protects os.Setenv("TERM") around screen creation.
var termMu sync.Mutex

func main() {
	port := flag.Int("port", 2222, "SSH server port")
	keyFile := flag.String("key", "server_host_key", "Path to the PEM-encoded host key (generated if absent)")
	capacity := flag.Int("capacity", component.DefaultCapacity, "Inventory capacity for each player")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	signer, err := loadOrCreateHostKey(*keyFile, logger)
	if err != nil {
		logger.Error("host key", "error", err)
		os.Exit(1)
	}

	srv := &gossh.Server{
		Addr: fmt.Sprintf(":%d", *port),
		Handler: func(s gossh.Session) {
			handleSession(s, *capacity, logger)
		},
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		HostSigners: []gossh.Signer{signer},
	}

	logger.Info("listening", "addr", srv.Addr, "capacity", *capacity)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, gossh.ErrServerClosed) {
		logger.Error("serve", "error", err)
		os.Exit(1)
	}
}

// handleSession runs one inventory session for the lifetime of the connection.
func handleSession(s gossh.Session, capacity int, logger *slog.Logger) {
	pty, winCh, hasPTY := s.Pty()
	if !hasPTY {
		fmt.Fprintln(s, "This screen needs a PTY. Connect with: ssh -t -p <port> <host>")
		return
	}

	name := sanitizeName(s.User())
	if name == "" {
		name = fallbackName
	}
	log := logger.With("remote", s.RemoteAddr().String(), "user", name)

	term := pty.Term
	if !allowedTerms[term] {
		log.Warn("unsupported TERM, using default", "term", term, "default", defaultTerm)
		term = defaultTerm
	}

	tty := internalssh.NewSessionTty(s, pty, winCh)
	termMu.Lock()
	_ = os.Setenv("TERM", term)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		log.Error("terminal setup", "error", err)
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		return
	}
	if err := screen.Init(); err != nil {
		log.Error("screen init", "error", err)
		fmt.Fprintf(s, "Screen init failed: %v\n", err)
		return
	}

	game.NewSession(screen, name, capacity, log).Run()
}

// sanitizeName drops control characters from an SSH user name and keeps
// at most maxNameBytes bytes without splitting a rune.
func sanitizeName(raw string) string {
	var sb strings.Builder
	for _, r := range raw {
		if r == utf8.RuneError || unicode.IsControl(r) {
			continue
		}
		if sb.Len()+utf8.RuneLen(r) > maxNameBytes {
			break
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// loadOrCreateHostKey loads a PEM private key from path, or generates an
// ed25519 key and tries to persist it there.
func loadOrCreateHostKey(path string, logger *slog.Logger) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			logger.Info("loaded host key", "path", path)
			return signer, nil
		}
		logger.Warn("unreadable host key, generating a new one", "path", path)
	}

	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	pemBlock, err := xssh.MarshalPrivateKey(key, "emoji-inventory server")
	if err != nil {
		return nil, fmt.Errorf("marshal host key: %w", err)
	}
	if err := os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0o600); err != nil {
		logger.Warn("could not persist host key", "path", path, "error", err)
	} else {
		logger.Info("generated host key", "path", path)
	}
	return signer, nil
}
