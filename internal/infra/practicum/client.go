// internal/infra/practicum/client.go
package practicum

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"homework_notification_bot/internal/domain/homework"

	"github.com/sirupsen/logrus"
)

// Client fetches homework statuses over the Practicum HTTP API.
// It implements homework.API.
type Client struct {
	httpClient *http.Client
	endpoint   string
	token      string
	logger     *logrus.Entry
}

func NewClient(endpoint, token string, timeout time.Duration, logger *logrus.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		endpoint:   endpoint,
		token:      token,
		logger:     logger.WithField("component", "practicum_client"),
	}
}

// FetchStatuses performs GET <endpoint>?from_date=<fromDate> with the OAuth
// bearer header and returns the decoded JSON body. Faults are classified into
// the homework error taxonomy: transport faults, non-200 answers and
// undecodable bodies each get their own type so the poll loop can report them
// distinctly.
func (c *Client) FetchStatuses(ctx context.Context, fromDate int64) (any, error) {
	requestURL, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint %q: %w", c.endpoint, err)
	}
	query := requestURL.Query()
	query.Set("from_date", strconv.FormatInt(fromDate, 10))
	requestURL.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("could not build API request: %w", err)
	}
	req.Header.Set("Authorization", "OAuth "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &homework.TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &homework.TransportError{Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &homework.ServiceUnavailableError{
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &homework.MalformedResponseError{Err: err}
	}

	c.logger.WithField("from_date", fromDate).Info("API request completed")
	return payload, nil
}
