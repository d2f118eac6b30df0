package api

import (
	"context"
	"encoding/json"
	"time"

	"github.com/valyala/fasthttp"
)

// ValAPIClient talks to the public valorant-api.com content catalog. No auth,
// no rate-limit headers.
type ValAPIClient struct {
	client *fasthttp.Client
}

func NewValAPIClient() *ValAPIClient {
	return &ValAPIClient{
		client: &fasthttp.Client{
			MaxConnsPerHost:     10,
			ReadTimeout:         10 * time.Second,
			WriteTimeout:        10 * time.Second,
			MaxIdleConnDuration: 1 * time.Minute,
		},
	}
}

// GetMaps fetches the full static map catalog.
func (c *ValAPIClient) GetMaps(ctx context.Context) (*MapsResponse, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI("https://valorant-api.com/v1/maps")
	req.Header.SetMethod(fasthttp.MethodGet)

	deadline, ok := ctx.Deadline()
	if ok {
		if err := c.client.DoDeadline(req, resp, deadline); err != nil {
			return nil, err
		}
	} else {
		if err := c.client.Do(req, resp); err != nil {
			return nil, err
		}
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, &StatusError{Code: resp.StatusCode()}
	}

	var result MapsResponse
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

type MapsResponse struct {
	Status int       `json:"status"`
	Data   []MapData `json:"data"`
}

type MapData struct {
	UUID         string `json:"uuid"`
	DisplayName  string `json:"displayName"`
	ListViewIcon string `json:"listViewIcon"`
	Splash       string `json:"splash"`
}
