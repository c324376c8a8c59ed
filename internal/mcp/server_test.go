package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/organvm-ii-poiesis/a-mavs-olevm-sub002/internal/engine"
	"github.com/organvm-ii-poiesis/a-mavs-olevm-sub002/internal/profile"
)

type toolHandler func(context.Context, *mcp.CallToolRequest) (*mcp.CallToolResult, error)

func callTool(t *testing.T, handler toolHandler, params any) (*mcp.CallToolResult, string) {
	t.Helper()

	raw, err := json.Marshal(params)
	require.NoError(t, err)

	result, err := handler(context.Background(), &mcp.CallToolRequest{
		Params: &mcp.CallToolParamsRaw{Arguments: raw},
	})
	require.NoError(t, err)
	require.Len(t, result.Content, 1)

	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok, "tool responses are text content")
	return result, text.Text
}

func newTestServer() *Server {
	return NewServer(engine.New(engine.Config{}))
}

func TestSuggestNamesTool(t *testing.T) {
	s := newTestServer()

	result, text := callTool(t, s.handleSuggestNames, map[string]any{
		"input": "audio player volume",
	})
	assert.False(t, result.IsError)

	var response struct {
		Suggestions []struct {
			Name  string `json:"name"`
			Score struct {
				Overall int `json:"overall"`
			} `json:"score"`
		} `json:"suggestions"`
		Context string `json:"context"`
	}
	require.NoError(t, json.Unmarshal([]byte(text), &response))

	assert.Equal(t, "function", response.Context)
	require.NotEmpty(t, response.Suggestions)
	for _, s := range response.Suggestions {
		assert.NotEmpty(t, s.Name)
		assert.GreaterOrEqual(t, s.Score.Overall, 0)
		assert.LessOrEqual(t, s.Score.Overall, 100)
	}
}

func TestSuggestNamesToolActivatesProfile(t *testing.T) {
	s := newTestServer()

	_, _ = callTool(t, s.handleSuggestNames, map[string]any{
		"input":   "show new section",
		"profile": profile.ProfileWriter,
	})
	assert.Equal(t, profile.ProfileWriter, s.engine.Preferences().Name)
}

func TestSuggestNamesToolBadArguments(t *testing.T) {
	s := newTestServer()

	result, err := s.handleSuggestNames(context.Background(), &mcp.CallToolRequest{
		Params: &mcp.CallToolParamsRaw{Arguments: []byte(`{"input": 42`)},
	})
	require.NoError(t, err)
	assert.True(t, result.IsError)

	text := result.Content[0].(*mcp.TextContent).Text
	assert.Contains(t, text, "suggest_names")
	assert.Contains(t, text, `"success":false`)
}

func TestValidateNameTool(t *testing.T) {
	s := newTestServer()

	_, text := callTool(t, s.handleValidateName, map[string]any{
		"name":    "audioPlayer",
		"meaning": "audio player",
	})

	var response struct {
		Name  string `json:"name"`
		Score struct {
			Overall int `json:"overall"`
		} `json:"score"`
		Context string `json:"context"`
	}
	require.NoError(t, json.Unmarshal([]byte(text), &response))

	assert.Equal(t, "audioPlayer", response.Name)
	assert.Equal(t, 94, response.Score.Overall)
	assert.Equal(t, "function", response.Context)
}

func TestImproveNameTool(t *testing.T) {
	s := newTestServer()

	_, wellFormed := callTool(t, s.handleImproveName, map[string]any{
		"name":    "audioPlayer",
		"meaning": "audio player",
	})
	assert.Contains(t, wellFormed, "already well-formed")

	_, poor := callTool(t, s.handleImproveName, map[string]any{
		"name":    "sNs",
		"meaning": "show new section",
	})
	var response struct {
		Message     string `json:"message"`
		Suggestions []struct {
			Name string `json:"name"`
		} `json:"suggestions"`
	}
	require.NoError(t, json.Unmarshal([]byte(poor), &response))
	assert.Contains(t, response.Message, "consider these alternatives")
	assert.NotEmpty(t, response.Suggestions)
}

func TestFindSimilarTool(t *testing.T) {
	s := newTestServer()

	_, text := callTool(t, s.handleFindSimilar, map[string]any{
		"input":     "pageSection",
		"corpus":    []string{"pageSelection", "pageSectionTitle", "unrelatedName"},
		"threshold": 65,
	})

	var response struct {
		Input   string `json:"input"`
		Matches []struct {
			Name       string `json:"name"`
			Similarity int    `json:"similarity"`
		} `json:"matches"`
	}
	require.NoError(t, json.Unmarshal([]byte(text), &response))

	assert.Equal(t, "pageSection", response.Input)
	require.Len(t, response.Matches, 2)
	assert.Equal(t, "pageSelection", response.Matches[0].Name)
	assert.Equal(t, 85, response.Matches[0].Similarity)
}

func TestCorpusStatsTool(t *testing.T) {
	s := newTestServer()

	_, empty := callTool(t, s.handleCorpusStats, map[string]any{})
	assert.Contains(t, empty, `"initialized":false`)

	s.engine.SetCorpus([]string{"audioPlayer", "showSection", "nav-arrow"})
	_, text := callTool(t, s.handleCorpusStats, map[string]any{})

	var response struct {
		Identifiers int `json:"identifiers"`
	}
	require.NoError(t, json.Unmarshal([]byte(text), &response))
	assert.Equal(t, 3, response.Identifiers)
}

func TestInfoTool(t *testing.T) {
	s := newTestServer()

	_, text := callTool(t, s.handleInfo, map[string]any{})

	var response struct {
		ServerName string   `json:"server_name"`
		Profiles   []string `json:"profiles"`
		Contexts   []string `json:"contexts"`
		Active     string   `json:"active_profile"`
	}
	require.NoError(t, json.Unmarshal([]byte(text), &response))

	assert.Equal(t, "namekit-mcp-server", response.ServerName)
	assert.Contains(t, response.Profiles, profile.ProfileDefault)
	assert.Contains(t, response.Contexts, "function")
	assert.Equal(t, profile.ProfileDefault, response.Active)
}
