// ascii-roguelike-server starts an SSH server; every connection plays its
// own independent game. Build:
//
//	go build -o ascii-roguelike-server ./cmd/server
//
// Usage:
//
//	./ascii-roguelike-server [--port 2222] [--key server_host_key] [--db players.db]
//
// Connect:
//
//	ssh -t -p 2222 <name>@localhost
//
// Each user name gets its own configuration stored in the database under
// users/<name>/config.json.
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"ascii-roguelike/internal/config"
	"ascii-roguelike/internal/game"
	internalssh "ascii-roguelike/internal/ssh"
	"ascii-roguelike/internal/storage"

	gossh "github.com/gliderlabs/ssh"
	xssh "golang.org/x/crypto/ssh"
)

// maxNameBytes caps user names used in storage keys and logs.
const maxNameBytes = 16

// allowedTerms lists terminal types we trust to pass to terminfo.
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

const defaultTerm = "xterm-256color"

func main() {
	port := flag.Int("port", 2222, "SSH server port")
	keyFile := flag.String("key", "server_host_key", "Path to the PEM-encoded host key (auto-generated if absent)")
	dbPath := flag.String("db", "players.db", "SQLite database holding per-user configuration")
	flag.Parse()

	store, err := storage.OpenSQLite(*dbPath)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	defer store.Close()

	signer := loadOrCreateHostKey(*keyFile)
	h := &handler{store: store, logger: log.Default()}

	srv := &gossh.Server{
		Addr:    fmt.Sprintf(":%d", *port),
		Handler: h.handleSession,
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// Accept any authentication; appropriate for a private home server.
		HostSigners: []gossh.Signer{signer},
	}

	log.Printf("ascii-roguelike SSH server listening on :%d", *port)
	log.Printf("Connect with:  ssh -t -p %d -o StrictHostKeyChecking=no <name>@localhost", *port)
	log.Fatal(srv.ListenAndServe())
}

// handler runs one game per SSH session.
type handler struct {
	store  storage.Store
	logger *log.Logger
}

// handleSession is the gliderlabs SSH handler for one connection.
// It blocks for the duration of the game so the SSH session stays open.
func (h *handler) handleSession(s gossh.Session) {
	name := sanitizeName(s.User())
	if name == "" {
		name = "guest"
	}

	cfg, err := h.userConfig(name)
	if err != nil {
		h.logger.Printf("%s: %v", name, err)
		fmt.Fprintf(s, "Could not load your configuration: %v\n", err)
		return
	}

	screen, err := internalssh.NewScreen(s, sessionTerm(s.Environ()))
	if errors.Is(err, internalssh.ErrNoPTY) {
		fmt.Fprintln(s, "This game requires a PTY. Connect with: ssh -t -p 2222 <host>")
		return
	}
	if err != nil {
		fmt.Fprintf(s, "%v\n", err)
		return
	}
	defer screen.Fini()

	g, err := game.New(screen, cfg, game.Options{Logger: h.logger})
	if err != nil {
		fmt.Fprintf(s, "Could not start game: %v\n", err)
		return
	}
	h.logger.Printf("%s connected from %s (seed %d)", name, s.RemoteAddr(), g.Session().Seed())
	g.Run()
	h.logger.Printf("%s left at depth %d after %d turns", name, g.Session().Depth(), g.Session().Turns())
}

// userConfig loads (creating on first visit) the configuration for name.
func (h *handler) userConfig(name string) (config.Config, error) {
	return config.Load(h.store, userConfigKey(name))
}

func userConfigKey(name string) string {
	return "users/" + name + "/" + config.DefaultKey
}

// sessionTerm picks the TERM value from the client environment, falling back
// to a safe default for unknown or missing values.
func sessionTerm(environ []string) string {
	for _, env := range environ {
		if term, ok := strings.CutPrefix(env, "TERM="); ok {
			if allowedTerms[term] {
				return term
			}
			break
		}
	}
	return defaultTerm
}

// sanitizeName strips control characters and truncates to maxNameBytes
// without splitting a rune.
func sanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsControl(r) || r == utf8.RuneError {
			continue
		}
		if b.Len()+utf8.RuneLen(r) > maxNameBytes {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string) gossh.Signer {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			log.Printf("Loaded host key from %s", path)
			return signer
		}
	}

	log.Printf("Generating new ed25519 host key -> %s", path)
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		log.Fatalf("generate host key: %v", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		log.Fatalf("create signer: %v", err)
	}
	// Persist for next run (non-fatal if it fails).
	if pemBlock, err := xssh.MarshalPrivateKey(key, "ascii-roguelike server"); err == nil {
		_ = os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0o600)
	}
	return signer
}
