package provision

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/habiliai/agentprovisioner/errors"
)

type (
	HTTPClient interface {
		Do(ctx context.Context, req *Request) (*Response, error)
	}

	Request struct {
		Method  string
		URL     string
		Header  map[string]string
		Body    []byte
		Timeout time.Duration
	}

	Response struct {
		StatusCode int
		Body       []byte
	}

	httpClient struct {
		client *http.Client
	}
)

var (
	_ HTTPClient = (*httpClient)(nil)
)

// NewHTTPClient returns an HTTPClient backed by c, or http.DefaultClient when c is nil.
func NewHTTPClient(c *http.Client) HTTPClient {
	if c == nil {
		c = http.DefaultClient
	}
	return &httpClient{client: c}
}

func (c *httpClient) Do(ctx context.Context, req *Request) (*Response, error) {
	if req.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, req.Timeout)
		defer cancel()
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, bytes.NewReader(req.Body))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create request")
	}
	for k, v := range req.Header {
		httpReq.Header.Set(k, v)
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to send request to %s", req.URL)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read response body")
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Body:       body,
	}, nil
}
