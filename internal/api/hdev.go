package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/condyl/ruby/internal/config"
	"github.com/valyala/fasthttp"
)

type HDevClient struct {
	apiKey      string
	client      *fasthttp.Client
	rateLimitMu sync.RWMutex
	rateLimit   RateLimitInfo
}

type RateLimitInfo struct {
	Bucket    string `json:"bucket"`
	Limit     int    `json:"limit"`
	Remaining int    `json:"remaining"`

	// seconds until reset
	Reset int `json:"reset"`

	UpdatedAt time.Time `json:"updated_at"`
}

// StatusError is a non-200 answer from the provider, either at the HTTP
// level or embedded in the response body.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("API error: %d", e.Code)
}

func NewHDevClient(cfg *config.Config) *HDevClient {
	return &HDevClient{
		apiKey: cfg.HDevAPIKey,
		client: &fasthttp.Client{
			MaxConnsPerHost:     100,
			ReadTimeout:         10 * time.Second,
			WriteTimeout:        10 * time.Second,
			MaxIdleConnDuration: 1 * time.Minute,
		},
		rateLimit: RateLimitInfo{
			Limit:     90,
			Remaining: 90,
			Reset:     60,
			UpdatedAt: time.Now(),
		},
	}
}

func (c *HDevClient) GetRateLimitInfo() RateLimitInfo {
	c.rateLimitMu.RLock()
	defer c.rateLimitMu.RUnlock()
	return c.rateLimit
}

func (c *HDevClient) updateRateLimit(resp *fasthttp.Response) {
	c.rateLimitMu.Lock()
	defer c.rateLimitMu.Unlock()

	if bucket := string(resp.Header.Peek("X-Ratelimit-Bucket")); bucket != "" {
		c.rateLimit.Bucket = bucket
	}
	if limit := string(resp.Header.Peek("X-Ratelimit-Limit")); limit != "" {
		if val, err := strconv.Atoi(limit); err == nil {
			c.rateLimit.Limit = val
		}
	}
	if remaining := string(resp.Header.Peek("X-Ratelimit-Remaining")); remaining != "" {
		if val, err := strconv.Atoi(remaining); err == nil {
			c.rateLimit.Remaining = val
		}
	}
	if reset := string(resp.Header.Peek("X-Ratelimit-Reset")); reset != "" {
		if val, err := strconv.Atoi(reset); err == nil {
			c.rateLimit.Reset = val
		}
	}
	c.rateLimit.UpdatedAt = time.Now()
}

// GetAccount resolves a riot id to its puuid and home region.
func (c *HDevClient) GetAccount(ctx context.Context, name, tag string) (*AccountResponse, error) {
	u := fmt.Sprintf("https://api.henrikdev.xyz/valorant/v2/account/%s/%s",
		url.PathEscape(name), url.PathEscape(tag))
	return doRequest[AccountResponse](ctx, c, u)
}

// GetRecentMatch fetches the player's single most recent match.
func (c *HDevClient) GetRecentMatch(ctx context.Context, region, puuid string) (*MatchesResponse, error) {
	u := fmt.Sprintf("https://api.henrikdev.xyz/valorant/v3/by-puuid/matches/%s/%s?size=1", region, puuid)
	return doRequest[MatchesResponse](ctx, c, u)
}

// GetLifetimeMMRHistory fetches the most recent ranked history entry.
func (c *HDevClient) GetLifetimeMMRHistory(ctx context.Context, region, name, tag string) (*MMRHistoryResponse, error) {
	u := fmt.Sprintf("https://api.henrikdev.xyz/valorant/v1/lifetime/mmr-history/%s/%s/%s?size=1",
		region, url.PathEscape(name), url.PathEscape(tag))
	return doRequest[MMRHistoryResponse](ctx, c, u)
}

func doRequest[T any](ctx context.Context, client *HDevClient, url string) (*T, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Authorization", client.apiKey)

	deadline, ok := ctx.Deadline()
	if ok {
		if err := client.client.DoDeadline(req, resp, deadline); err != nil {
			return nil, err
		}
	} else {
		if err := client.client.Do(req, resp); err != nil {
			return nil, err
		}
	}

	client.updateRateLimit(resp)

	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, &StatusError{Code: resp.StatusCode()}
	}

	var result T
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

type AccountResponse struct {
	Status int         `json:"status"`
	Data   AccountData `json:"data"`
}

type AccountData struct {
	Puuid        string `json:"puuid"`
	Region       string `json:"region"`
	AccountLevel int    `json:"account_level"`
	Name         string `json:"name"`
	Tag          string `json:"tag"`
	Card         string `json:"card"`
	Title        string `json:"title"`
}

type MatchesResponse struct {
	Status int     `json:"status"`
	Data   []Match `json:"data"`
}

type Match struct {
	Metadata MatchMetadata `json:"metadata"`
	Players  MatchPlayers  `json:"players"`
	Teams    MatchTeams    `json:"teams"`
}

type MatchMetadata struct {
	Map          string `json:"map"`
	Mode         string `json:"mode"`
	Region       string `json:"region"`
	Cluster      string `json:"cluster"`
	MatchID      string `json:"matchid"`
	RoundsPlayed int    `json:"rounds_played"`
	GameStart    int64  `json:"game_start"`
	GameLength   int    `json:"game_length"`
}

type MatchPlayers struct {
	AllPlayers []MatchPlayer `json:"all_players"`
}

type MatchPlayer struct {
	Puuid       string      `json:"puuid"`
	Name        string      `json:"name"`
	Tag         string      `json:"tag"`
	Team        string      `json:"team"`
	Character   string      `json:"character"`
	CurrentTier int         `json:"currenttier"`
	PartyID     string      `json:"party_id"`
	Stats       PlayerStats `json:"stats"`
}

type PlayerStats struct {
	Score     int `json:"score"`
	Kills     int `json:"kills"`
	Deaths    int `json:"deaths"`
	Assists   int `json:"assists"`
	Headshots int `json:"headshots"`
	Bodyshots int `json:"bodyshots"`
	Legshots  int `json:"legshots"`
}

type MatchTeams struct {
	Red  TeamSummary `json:"red"`
	Blue TeamSummary `json:"blue"`
}

type TeamSummary struct {
	RoundsWon int `json:"rounds_won"`
}

type MMRHistoryResponse struct {
	Status int              `json:"status"`
	Data   []MMRHistoryItem `json:"data"`
}

type MMRHistoryItem struct {
	RankingInTier int `json:"ranking_in_tier"`
	LastMmrChange int `json:"last_mmr_change"`
}
