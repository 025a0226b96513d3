package main

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"flag"
	"net/http"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sirupsen/logrus"

	"hockey-matchup-mcp/internal/leagueconfig"
	"hockey-matchup-mcp/internal/nhl"
	"hockey-matchup-mcp/internal/store"
)

// serverEnv holds configuration read from the environment.
type serverEnv struct {
	APIKey  string `env:"MATCHUP_MCP_API_KEY"`
	RawRoot string `env:"MATCHUP_RAW_ROOT" envDefault:"data/raw"`
}

type toolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func main() {
	var (
		addr        = flag.String("addr", ":8080", "HTTP listen address")
		mcpPath     = flag.String("path", "/mcp", "HTTP path for MCP endpoint")
		leaguePath  = flag.String("league", "", "path to league config YAML (empty = built-in defaults)")
		requireAuth = flag.Bool("require-auth", true, "require API key auth via MATCHUP_MCP_API_KEY")
		authHeader  = flag.String("auth-header", "X-API-Key", "HTTP header to read API key from")
		debug       = flag.Bool("debug", false, "enable debug logging")
	)
	flag.Parse()

	log := logrus.New()
	if *debug {
		log.SetLevel(logrus.DebugLevel)
	}

	var envCfg serverEnv
	if err := env.Parse(&envCfg); err != nil {
		log.WithError(err).Fatal("parse environment")
	}

	league := leagueconfig.Default()
	if *leaguePath != "" {
		var err error
		league, err = leagueconfig.Load(*leaguePath)
		if err != nil {
			log.WithError(err).Fatal("load league config")
		}
	}

	cfg := ServerConfig{
		League: league,
		Client: nhl.NewClient(store.NewJSONStore(envCfg.RawRoot), log),
		Log:    log,
	}

	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "hockey-matchup-mcp",
			Version: "0.1.0",
		},
		nil,
	)

	registry := make([]toolInfo, 0, 8)

	addTool(server, &registry, &mcp.Tool{
		Name:        "search_player",
		Description: "Search NHL players by full or partial name",
	}, searchPlayerHandler(cfg))

	addTool(server, &registry, &mcp.Tool{
		Name:        "player_stats",
		Description: "Season-average stats per category for one player",
	}, playerStatsHandler(cfg))

	addTool(server, &registry, &mcp.Tool{
		Name:        "list_categories",
		Description: "Known scoring categories and their directionality",
	}, listCategoriesHandler(cfg))

	addTool(server, &registry, &mcp.Tool{
		Name:        "simulate_matchup",
		Description: "Monte-Carlo aggregate win probability for a head-to-head matchup",
	}, simulateMatchupHandler(cfg))

	addTool(server, &registry, &mcp.Tool{
		Name:        "category_matchup",
		Description: "Monte-Carlo expected category scoreline (won/lost/tied)",
	}, categoryMatchupHandler(cfg))

	addTool(server, &registry, &mcp.Tool{
		Name:        "matchup_report",
		Description: "Full matchup report: win probability, category scoreline, and underperformers",
	}, matchupReportHandler(cfg))

	handler := mcp.NewStreamableHTTPHandler(func(r *http.Request) *mcp.Server {
		return server
	}, &mcp.StreamableHTTPOptions{JSONResponse: true})

	apiKey := strings.TrimSpace(envCfg.APIKey)
	if *requireAuth && apiKey == "" {
		log.Fatal("MATCHUP_MCP_API_KEY is required (set env var or run with --require-auth=false)")
	}

	withAuth := func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if apiKey == "" {
				next(w, r)
				return
			}
			key := strings.TrimSpace(r.Header.Get(*authHeader))
			if key == "" {
				if authz := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
					key = strings.TrimSpace(authz[7:])
				}
			}
			if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) != 1 {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"error":"unauthorized"}`))
				return
			}
			next(w, r)
		}
	}

	http.HandleFunc("/health", withAuth(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}))

	http.HandleFunc("/tools", withAuth(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		b, _ := json.MarshalIndent(map[string]any{"tools": registry}, "", "  ")
		w.Write(b)
	}))

	http.HandleFunc(*mcpPath, withAuth(func(w http.ResponseWriter, r *http.Request) {
		handler.ServeHTTP(w, r)
	}))

	log.WithFields(logrus.Fields{
		"addr": *addr,
		"path": *mcpPath,
	}).Info("MCP HTTP server listening")
	if err := http.ListenAndServe(*addr, nil); err != nil {
		log.Fatal(err)
	}
}

func addTool[T any](server *mcp.Server, registry *[]toolInfo, tool *mcp.Tool, handler func(context.Context, *mcp.CallToolRequest, T) (*mcp.CallToolResult, any, error)) {
	*registry = append(*registry, toolInfo{Name: tool.Name, Description: tool.Description})
	mcp.AddTool(server, tool, handler)
}
