// ascii-roguelike-web serves the game to browsers over a WebSocket. Every
// connection plays its own session; the page at / is a minimal client.
//
//	go run ./cmd/webserver -addr :8080
package main

import (
	_ "embed"
	"flag"
	"log"
	"net/http"
	"net/url"
	"slices"
	"strings"

	"ascii-roguelike/internal/config"
	"ascii-roguelike/internal/storage"

	"github.com/gorilla/websocket"
)

//go:embed index.html
var indexHTML []byte

// newUpgrader accepts sockets from pages served by this host and from the
// listed extra origins. Requests without an Origin header are not from a
// browser and are accepted.
func newUpgrader(origins []string) *websocket.Upgrader {
	return &websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if origin == "" {
				return true
			}
			u, err := url.Parse(origin)
			if err != nil {
				return false
			}
			if strings.EqualFold(u.Host, r.Host) {
				return true
			}
			return slices.ContainsFunc(origins, func(o string) bool {
				return strings.EqualFold(strings.TrimSuffix(o, "/"), origin)
			})
		},
	}
}

func main() {
	addr := flag.String("addr", ":8080", "HTTP listen address")
	configKey := flag.String("config", config.DefaultKey, "Configuration file under the user config directory")
	origins := flag.String("origins", "", "Comma-separated extra page origins allowed to open sockets, e.g. https://games.example")
	flag.Parse()

	store, err := storage.NewPlatform()
	if err != nil {
		log.Fatalf("open config dir: %v", err)
	}
	cfg, err := config.Load(store, *configKey)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := config.ApplyEnv(&cfg); err != nil {
		log.Fatalf("%v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	log.Printf("ascii-roguelike web server listening on %s", *addr)
	log.Fatal(http.ListenAndServe(*addr, newMux(cfg, log.Default(), splitOrigins(*origins))))
}

func splitOrigins(list string) []string {
	var out []string
	for _, o := range strings.Split(list, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// newMux routes the client page and the game socket.
func newMux(cfg config.Config, logger *log.Logger, origins []string) *http.ServeMux {
	upgrader := newUpgrader(origins)
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(indexHTML)
	})
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.Printf("Failed to upgrade connection: %v", err)
			return
		}
		c, err := NewClient(conn, cfg, logger)
		if err != nil {
			logger.Printf("new session: %v", err)
			conn.Close()
			return
		}
		logger.Printf("%s connected (seed %d)", r.RemoteAddr, c.session.Seed())
		go c.WritePump()
		c.ReadPump()
		logger.Printf("%s left at depth %d after %d turns", r.RemoteAddr, c.session.Depth(), c.session.Turns())
	})
	return mux
}
