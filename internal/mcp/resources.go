package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/asteroid-belt/ashsha/internal/render"
)

// resourcePrefix is the URI scheme for ashsha resources.
const resourcePrefix = "ashsha://"

// parseColorURI extracts the text from an ashsha://color/{text} URI.
func parseColorURI(uri string) (text string, isMarkdown bool, err error) {
	if !strings.HasPrefix(uri, resourcePrefix+"color/") {
		return "", false, fmt.Errorf("invalid URI scheme: %s", uri)
	}

	path := strings.TrimPrefix(uri, resourcePrefix+"color/")
	if strings.HasSuffix(path, "/markdown") {
		path = strings.TrimSuffix(path, "/markdown")
		isMarkdown = true
	}

	text, err = url.PathUnescape(path)
	if err != nil {
		return "", false, fmt.Errorf("invalid text in URI %s: %w", uri, err)
	}
	if strings.TrimSpace(text) == "" {
		return "", false, fmt.Errorf("empty text in URI: %s", uri)
	}
	return text, isMarkdown, nil
}

// handleColorResource serves both ashsha://color/{text} and its /markdown
// variant. Reading a resource never records history.
func (s *Server) handleColorResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	text, isMarkdown, err := parseColorURI(req.Params.URI)
	if err != nil {
		return nil, err
	}

	res, err := s.gen.Preview(text)
	if err != nil {
		return nil, fmt.Errorf("failed to derive color: %w", err)
	}

	if isMarkdown {
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      req.Params.URI,
				MIMEType: "text/markdown",
				Text:     render.Markdown(res),
			},
		}, nil
	}

	data, err := json.Marshal(res)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %v", err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
