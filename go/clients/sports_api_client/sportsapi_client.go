package sports_api_client

import (
	"encoding/json"
	"fmt"

	"github.com/mcdev12/gridiron/go/clients"
)

type SportsApiClient struct {
	*clients.BaseClient
}

func NewSportsApiClient(apiKey string) *SportsApiClient {
	return NewSportsApiClientWithBaseURL(BaseURL, apiKey)
}

// NewSportsApiClientWithBaseURL points the client at another host, e.g. a test server
func NewSportsApiClientWithBaseURL(baseURL, apiKey string) *SportsApiClient {
	client := &SportsApiClient{
		BaseClient: clients.NewBaseClient(baseURL),
	}

	client.SetHeader(APIKeyHeader, apiKey)

	return client
}

// envelope is the wrapper every api-sports response comes in
type envelope[T any] struct {
	Get        string                 `json:"get"`
	Parameters map[string]interface{} `json:"parameters"`
	Errors     interface{}            `json:"errors"`
	Results    int                    `json:"results"`
	Response   []T                    `json:"response"`
}

// decode unmarshals body and surfaces the API's in-band errors, which arrive
// with a 200 status as a non-empty object (or array) under "errors".
func decode[T any](body []byte) ([]T, error) {
	var response envelope[T]
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w, raw response: %s", err, string(body))
	}

	switch errs := response.Errors.(type) {
	case map[string]interface{}:
		if len(errs) > 0 {
			return nil, fmt.Errorf("API returned errors: %v", errs)
		}
	case []interface{}:
		if len(errs) > 0 {
			return nil, fmt.Errorf("API returned errors: %v", errs)
		}
	}

	return response.Response, nil
}
