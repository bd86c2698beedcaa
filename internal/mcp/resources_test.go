package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asteroid-belt/ashsha/pkg/colorhash"
)

func TestParseColorURI(t *testing.T) {
	tests := []struct {
		uri      string
		text     string
		markdown bool
		wantErr  bool
	}{
		{"ashsha://color/hello", "hello", false, false},
		{"ashsha://color/Hello%2C%20World%21", "Hello, World!", false, false},
		{"ashsha://color/a/markdown", "a", true, false},
		{"ashsha://color/", "", false, true},
		{"ashsha://color/%20", "", false, true},
		{"ashsha://colour/a", "", false, true},
		{"ashsha://color/%zz", "", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			text, markdown, err := parseColorURI(tt.uri)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.text, text)
			assert.Equal(t, tt.markdown, markdown)
		})
	}
}

func readResource(t *testing.T, s *Server, uri string) mcp.TextResourceContents {
	t.Helper()
	req := mcp.ReadResourceRequest{}
	req.Params.URI = uri
	contents, err := s.handleColorResource(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, contents, 1)
	text, ok := contents[0].(mcp.TextResourceContents)
	require.True(t, ok)
	return text
}

func TestHandleColorResource(t *testing.T) {
	s, _ := setupTestServer(t)

	jsonContent := readResource(t, s, "ashsha://color/a")
	assert.Equal(t, "application/json", jsonContent.MIMEType)
	var res colorhash.Result
	require.NoError(t, json.Unmarshal([]byte(jsonContent.Text), &res))
	assert.Equal(t, "#BD5078", res.HexColor)

	md := readResource(t, s, "ashsha://color/a/markdown")
	assert.Equal(t, "text/markdown", md.MIMEType)
	assert.Contains(t, md.Text, "# #BD5078")

	count, err := s.db.CountHistory()
	require.NoError(t, err)
	assert.Zero(t, count, "resources never record history")
}
