// Package gamesvc is the client for the remote game service: dealing
// games, running verifier checks, and solving a hand of cards back
// into a game.
//
// The service boundary is deliberately coarse: any transport error,
// timeout, or non-success status collapses to ErrUnavailable. The
// session engine never distinguishes failure subtypes from here, and
// no retry is attempted.
package gamesvc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/calebgh/turingdeck/internal/session"
)

// DefaultTimeout bounds every request to the game service.
const DefaultTimeout = 10 * time.Second

// ErrUnavailable is the single failure sentinel for the service
// boundary.
var ErrUnavailable = errors.New("game service unavailable")

// Client talks to the game service over HTTP.
type Client struct {
	base string
	http *http.Client
}

// New creates a client for the service rooted at baseURL
// (e.g. "https://example.net/api"). A zero timeout means
// DefaultTimeout.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		base: baseURL,
		http: &http.Client{Timeout: timeout},
	}
}

// gameResponse is the service's game payload. The solve endpoint adds
// the candidate solutions.
type gameResponse struct {
	ID        string   `json:"id"`
	Code      string   `json:"code"`
	Criterias []int    `json:"criterias"`
	Verifiers []string `json:"verifiers"`
	Laws      []int    `json:"laws"`
	Solutions []string `json:"solutions"`
}

func (r *gameResponse) game() *session.Game {
	return &session.Game{
		ID:        r.ID,
		Code:      r.Code,
		Criterias: r.Criterias,
		Verifiers: r.Verifiers,
		Laws:      r.Laws,
	}
}

// GameByID fetches an existing game. The id is normalized first, so
// pasted ids with spaces or dashes work.
func (c *Client) GameByID(ctx context.Context, id string) (*session.Game, error) {
	params := url.Values{}
	params.Set("id", session.NormalizeID(id))
	var resp gameResponse
	if err := c.get(ctx, "game", params, &resp); err != nil {
		return nil, err
	}
	return resp.game(), nil
}

// NewGame deals a fresh game with the given difficulty ("easy",
// "medium" or "hard"; empty lets the service pick) and card count in
// [4, 6].
func (c *Client) NewGame(ctx context.Context, difficulty string, choices int) (*session.Game, error) {
	if choices < session.MinCards || choices > session.MaxCards {
		return nil, fmt.Errorf("choices must be in [%d, %d], got %d", session.MinCards, session.MaxCards, choices)
	}
	params := url.Values{}
	params.Set("choices", strconv.Itoa(choices))
	if difficulty != "" {
		params.Set("difficulty", difficulty)
	}
	var resp gameResponse
	if err := c.get(ctx, "game", params, &resp); err != nil {
		return nil, err
	}
	return resp.game(), nil
}

// verifyResponse is the verifier check payload.
type verifyResponse struct {
	Check bool `json:"check"`
}

// Verify checks a proposed code against one law.
func (c *Client) Verify(ctx context.Context, law int, proposal string) (bool, error) {
	params := url.Values{}
	params.Set("law", strconv.Itoa(law))
	params.Set("proposal", proposal)
	var resp verifyResponse
	if err := c.get(ctx, "verify", params, &resp); err != nil {
		return false, err
	}
	return resp.Check, nil
}

// Solve asks the service for the game matching a set of criteria and
// verifier card numbers. Returns the reconstructed game record and
// the candidate codes; deciding what to do with zero or multiple
// candidates is the caller's business.
func (c *Client) Solve(ctx context.Context, criterias, verifiers []int) (*session.Game, []string, error) {
	body, err := json.Marshal(struct {
		Criterias []int `json:"criterias"`
		Verifiers []int `json:"verifiers"`
	}{criterias, verifiers})
	if err != nil {
		return nil, nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/solve", bytes.NewReader(body))
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	var resp gameResponse
	if err := c.do(req, &resp); err != nil {
		return nil, nil, err
	}
	return resp.game(), resp.Solutions, nil
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/"+endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

// do executes the request and decodes the JSON body. Every failure
// mode past request construction maps to ErrUnavailable.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}
