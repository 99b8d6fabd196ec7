package images

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultUnsplashBaseURL = "https://api.unsplash.com"

// DestinationImage is an illustrative photo plus the attribution line
// Unsplash's API terms require alongside it.
type DestinationImage struct {
	URL         string `json:"url"`
	Attribution string `json:"attribution"`
}

type UnsplashClient struct {
	accessKey  string
	baseURL    string
	httpClient *http.Client
}

func NewUnsplashClient(accessKey, baseURL string) *UnsplashClient {
	if baseURL == "" {
		baseURL = defaultUnsplashBaseURL
	}

	return &UnsplashClient{
		accessKey: accessKey,
		baseURL:   baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type unsplashPhoto struct {
	ID   string `json:"id"`
	URLs struct {
		Regular string `json:"regular"`
	} `json:"urls"`
	User struct {
		Name string `json:"name"`
	} `json:"user"`
}

type unsplashSearchResponse struct {
	Total   int             `json:"total"`
	Results []unsplashPhoto `json:"results"`
}

// FindDestinationImage searches for a landscape photo of the destination,
// trying "<name> <country> travel" first and falling back to the bare
// name. A search with no hits returns (nil, nil).
func (c *UnsplashClient) FindDestinationImage(ctx context.Context, name, country string) (*DestinationImage, error) {
	if c.accessKey == "" {
		return nil, nil
	}

	photo, err := c.search(ctx, fmt.Sprintf("%s %s travel", name, country))
	if err != nil {
		return nil, err
	}
	if photo == nil {
		photo, err = c.search(ctx, name)
		if err != nil || photo == nil {
			return nil, err
		}
	}

	return &DestinationImage{
		URL:         photo.URLs.Regular,
		Attribution: fmt.Sprintf("Photo by %s on Unsplash", photo.User.Name),
	}, nil
}

func (c *UnsplashClient) search(ctx context.Context, query string) (*unsplashPhoto, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("per_page", "1")
	params.Set("orientation", "landscape")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search/photos?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Client-ID "+c.accessKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("image search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image search returned status %d", resp.StatusCode)
	}

	var data unsplashSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode image search response: %w", err)
	}
	if len(data.Results) == 0 {
		return nil, nil
	}

	return &data.Results[0], nil
}
