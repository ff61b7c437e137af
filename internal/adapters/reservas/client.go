package reservas

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/VichoMatus/Taller-Integracion-II-sub001/internal/adapters/observability"
	"github.com/VichoMatus/Taller-Integracion-II-sub001/internal/domain"
)

// Client talks to the reservas backend (catalog + venue lookup). It is
// deliberately retry-free: a failed fetch surfaces immediately and recovery
// is the aggregator's job, with retries only ever user-initiated.
type Client struct {
	base string
	hc   *http.Client
	key  string
	rl   *rate.Limiter
}

func New(base, key string, rps int) (*Client, error) {
	if base == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	if rps <= 0 {
		rps = 10
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: 15 * time.Second},
		key:  key,
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}, nil
}

func (c *Client) FetchAll(ctx context.Context) ([]domain.RawFacility, error) {
	var out []domain.RawFacility
	return out, c.get(ctx, fmt.Sprintf("%s/canchas", c.base), "/canchas", &out)
}

func (c *Client) FetchByID(ctx context.Context, id int64) (domain.RawFacility, error) {
	if id <= 0 {
		return domain.RawFacility{}, fmt.Errorf("invalid facility id %d", id)
	}
	var out domain.RawFacility
	return out, c.get(ctx, fmt.Sprintf("%s/canchas/%d", c.base, id), "/canchas/{id}", &out)
}

func (c *Client) GetByID(ctx context.Context, id int64) (domain.Venue, error) {
	if id <= 0 {
		return domain.Venue{}, fmt.Errorf("invalid venue id %d", id)
	}
	var out domain.Venue
	return out, c.get(ctx, fmt.Sprintf("%s/complejos/%d", c.base, id), "/complejos/{id}", &out)
}

// get performs a single GET with client-side rate limiting and JSON decode
// into out. Status codes map onto the shared sentinel errors.
func (c *Client) get(ctx context.Context, url, endpoint string, out any) error {
	if err := c.rl.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	if c.key != "" {
		req.Header.Set("X-API-Key", c.key)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "canchas-aggregator/1.0")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal(endpoint, 0, time.Since(start))
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	defer resp.Body.Close()
	observability.ObserveExternal(endpoint, resp.StatusCode, time.Since(start))

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusAccepted:
		return json.NewDecoder(resp.Body).Decode(out)

	case http.StatusNoContent:
		io.Copy(io.Discard, resp.Body)
		return nil

	case http.StatusNotFound:
		return domain.ErrNotFound

	case http.StatusUnauthorized:
		return domain.ErrUnauthorized

	case http.StatusForbidden:
		return domain.ErrForbidden

	default:
		// read a small error body for diagnostics
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("bad status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}
}
