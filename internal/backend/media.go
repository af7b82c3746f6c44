package backend

import (
	"context"
	"net/http"
	"strings"
)

// Media is a binary payload (logo, photo) or a URL pointing at one.
// Exactly one of Data or URL is populated.
type Media struct {
	Data        []byte
	ContentType string
	URL         string
}

// IsURL reports whether the media is a redirect target rather than bytes.
func (m Media) IsURL() bool {
	return m.URL != ""
}

func (c *Client) media(ctx context.Context, endpoint, path, token string) (Media, error) {
	raw, contentType, err := c.call(ctx, endpoint, http.MethodGet, path, token, nil)
	if err != nil {
		return Media{}, err
	}

	if strings.HasPrefix(contentType, "image/") {
		return Media{Data: raw, ContentType: contentType}, nil
	}

	// Non-image bodies carry the image location as text.
	url := strings.Trim(strings.TrimSpace(string(raw)), `"`)
	return Media{URL: url}, nil
}
