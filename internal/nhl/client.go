// Package nhl is the external player-data lookup collaborator: name search
// against the NHL suggest service and season-average stats against the NHL
// stats API. Responses are cached on disk so a matchup can be re-simulated
// without refetching every player. Failures are normalized into errors
// before any data reaches the simulators; the client never returns a
// partially populated stat line alongside a nil error.
package nhl

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"hockey-matchup-mcp/internal/roster"
	"hockey-matchup-mcp/internal/store"
)

type Client struct {
	HTTP           *http.Client
	Store          *store.JSONStore
	SuggestBaseURL string
	StatsBaseURL   string
	UserAgent      string
	Sleep          time.Duration
	UseCache       bool
	DisableWrite   bool
	Log            *logrus.Logger
}

func NewClient(st *store.JSONStore, log *logrus.Logger) *Client {
	return &Client{
		HTTP:           &http.Client{Timeout: 10 * time.Second},
		Store:          st,
		SuggestBaseURL: "https://suggest.svc.nhl.com/svc/suggest/v1",
		StatsBaseURL:   "https://statsapi.web.nhl.com/api/v1",
		UserAgent:      "hockey-matchup-mcp/1.0",
		Sleep:          250 * time.Millisecond,
		UseCache:       true,
		Log:            log,
	}
}

// Suggestion is one player hit from the suggest service.
type Suggestion struct {
	Name     string `json:"name"`
	PlayerID int    `json:"player_id"`
}

// SearchPlayers queries the suggest service for players matching name.
// Suggest entries arrive pipe-delimited with the display name and NHL
// player id in the first two fields; entries that do not parse are skipped.
func (c *Client) SearchPlayers(name string) ([]Suggestion, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("player name is required")
	}

	rel := fmt.Sprintf("suggest/%s.json", url.PathEscape(strings.ToLower(name)))
	raw, err := c.getRaw(c.SuggestBaseURL+"/minplayers/"+url.PathEscape(name), rel)
	if err != nil {
		return nil, fmt.Errorf("search players: %w", err)
	}

	var resp struct {
		Suggestions []string `json:"suggestions"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("parse suggestions: %w", err)
	}

	out := make([]Suggestion, 0, len(resp.Suggestions))
	for _, s := range resp.Suggestions {
		parts := strings.Split(s, "|")
		if len(parts) < 2 {
			continue
		}
		id, err := strconv.Atoi(parts[1])
		if err != nil {
			continue
		}
		out = append(out, Suggestion{Name: parts[0], PlayerID: id})
	}

	c.Log.WithFields(logrus.Fields{
		"query": name,
		"hits":  len(out),
	}).Debug("player search")
	return out, nil
}

// PlayerStats fetches a player's single-season stats and projects them onto
// the selected categories. Categories the API does not report for the
// player read as zero, matching how the simulators treat missing data.
func (c *Client) PlayerStats(playerID int, season string, selected []string) (roster.StatLine, error) {
	if playerID <= 0 {
		return nil, fmt.Errorf("player id is required")
	}

	rel := fmt.Sprintf("people/%d/%s.json", playerID, season)
	endpoint := fmt.Sprintf("%s/people/%d/stats?stats=statsSingleSeason&season=%s", c.StatsBaseURL, playerID, season)
	raw, err := c.getRaw(endpoint, rel)
	if err != nil {
		return nil, fmt.Errorf("player stats: %w", err)
	}

	var resp struct {
		Stats []struct {
			Splits []struct {
				Stat map[string]any `json:"stat"`
			} `json:"splits"`
		} `json:"stats"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("parse player stats: %w", err)
	}
	if len(resp.Stats) == 0 || len(resp.Stats[0].Splits) == 0 {
		return nil, fmt.Errorf("no season stats for player %d in %s", playerID, season)
	}

	stat := resp.Stats[0].Splits[0].Stat
	line := make(roster.StatLine, len(selected))
	for _, cat := range selected {
		line[cat] = asFloat(stat[cat])
	}

	c.Log.WithFields(logrus.Fields{
		"player_id": playerID,
		"season":    season,
	}).Debug("fetched season stats")
	return line, nil
}

// asFloat coerces a decoded JSON stat value. The stats API reports most
// values as numbers but some rate stats as strings.
func asFloat(v any) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case string:
		f, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// getRaw returns the body at endpoint, serving from the disk cache when
// possible and writing fresh responses back unless writes are disabled.
func (c *Client) getRaw(endpoint, rel string) ([]byte, error) {
	if c.UseCache && c.Store.Exists(rel) {
		return c.Store.ReadRaw(rel)
	}

	if c.Sleep > 0 {
		time.Sleep(c.Sleep)
	}

	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("GET %s failed: %d body=%s", endpoint, resp.StatusCode, string(body))
	}

	if !c.DisableWrite {
		if err := c.Store.WriteRaw(rel, body, true); err != nil {
			return nil, err
		}
	}
	return body, nil
}
