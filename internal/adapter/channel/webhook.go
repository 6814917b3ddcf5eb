package channel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"omniflow-broadcast/internal/core/port"
)

const defaultTimeout = 10 * time.Second

type sendResponse struct {
	MessageID string `json:"messageId"`
	Error     string `json:"error"`
}

// postSend delivers a payload to a gateway webhook and extracts the
// provider message id. Any non-2xx status is a send failure.
func postSend(ctx context.Context, client *http.Client, url string, payload any) (port.SendOutcome, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return port.SendOutcome{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return port.SendOutcome{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return port.SendOutcome{}, err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	var sr sendResponse
	_ = json.Unmarshal(respBody, &sr)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if sr.Error != "" {
			return port.SendOutcome{}, fmt.Errorf("gateway status %d: %s", resp.StatusCode, sr.Error)
		}
		return port.SendOutcome{}, fmt.Errorf("gateway status %d body=%q", resp.StatusCode, string(respBody))
	}

	return port.SendOutcome{ProviderMessageID: sr.MessageID}, nil
}

func newClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &http.Client{Timeout: timeout}
}
