// Package mcp exposes the naming engine over the Model Context Protocol
// so editor agents can query it without shelling out. Handlers are thin
// adapters: every bit of naming semantics lives in the engine.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/organvm-ii-poiesis/a-mavs-olevm-sub002/internal/engine"
	"github.com/organvm-ii-poiesis/a-mavs-olevm-sub002/internal/fuzzy"
	"github.com/organvm-ii-poiesis/a-mavs-olevm-sub002/internal/profile"
	"github.com/organvm-ii-poiesis/a-mavs-olevm-sub002/internal/rules"
	"github.com/organvm-ii-poiesis/a-mavs-olevm-sub002/internal/version"
)

// Server wraps one engine instance behind an MCP stdio server.
type Server struct {
	engine *engine.Engine
	server *mcp.Server
}

// NewServer builds the MCP server and registers every tool.
func NewServer(eng *engine.Engine) *Server {
	s := &Server{
		engine: eng,
		server: mcp.NewServer(&mcp.Implementation{
			Name:    "namekit-mcp-server",
			Version: version.Version,
		}, nil),
	}
	s.registerTools()
	return s
}

// Run serves requests over stdio until ctx is canceled.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

func (s *Server) registerTools() {
	s.server.AddTool(&mcp.Tool{
		Name:        "suggest_names",
		Description: "Generate ranked identifier suggestions for a description, adjusted to the active preference profile.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"input": {
					Type:        "string",
					Description: "Free-text description of what needs a name (e.g. 'show new section')",
				},
				"context": {
					Type:        "string",
					Description: "Usage context override: function, variable, constant, class, id, page-id. Auto-detected when omitted.",
				},
				"max_results": {
					Type:        "integer",
					Description: "Maximum suggestions to return (default 10)",
				},
				"existing_names": {
					Type:        "array",
					Items:       &jsonschema.Schema{Type: "string"},
					Description: "Existing identifiers to check the input against for near-duplicates",
				},
				"profile": {
					Type:        "string",
					Description: "Preference profile to activate first: Default, Developer, Artist, Musician, Writer",
				},
			},
			Required: []string{"input"},
		},
	}, s.handleSuggestNames)

	s.server.AddTool(&mcp.Tool{
		Name:        "validate_name",
		Description: "Score an existing identifier for readability, convention conformance and semantic fit, with recommendations.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"name": {
					Type:        "string",
					Description: "Identifier to validate",
				},
				"meaning": {
					Type:        "string",
					Description: "What the identifier is supposed to mean",
				},
				"context": {
					Type:        "string",
					Description: "Usage context override; auto-detected when omitted",
				},
			},
			Required: []string{"name"},
		},
	}, s.handleValidateName)

	s.server.AddTool(&mcp.Tool{
		Name:        "improve_name",
		Description: "Suggest better alternatives for a weak identifier. Well-formed names come back unchanged.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"name": {
					Type:        "string",
					Description: "Current identifier",
				},
				"meaning": {
					Type:        "string",
					Description: "What the identifier is supposed to mean",
				},
			},
			Required: []string{"name", "meaning"},
		},
	}, s.handleImproveName)

	s.server.AddTool(&mcp.Tool{
		Name:        "find_similar",
		Description: "Find near-duplicate identifiers by edit-distance similarity.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"input": {
					Type:        "string",
					Description: "Name to compare",
				},
				"corpus": {
					Type:        "array",
					Items:       &jsonschema.Schema{Type: "string"},
					Description: "Identifiers to compare against",
				},
				"threshold": {
					Type:        "integer",
					Description: "Similarity floor 0-100 (default 70)",
				},
			},
			Required: []string{"input", "corpus"},
		},
	}, s.handleFindSimilar)

	s.server.AddTool(&mcp.Tool{
		Name:        "corpus_stats",
		Description: "Report the analyzed corpus: case distribution and common prefix/suffix words.",
		InputSchema: &jsonschema.Schema{
			Type:       "object",
			Properties: map[string]*jsonschema.Schema{},
		},
	}, s.handleCorpusStats)

	s.server.AddTool(&mcp.Tool{
		Name:        "info",
		Description: "Server version and available profiles/contexts.",
		InputSchema: &jsonschema.Schema{
			Type:       "object",
			Properties: map[string]*jsonschema.Schema{},
		},
	}, s.handleInfo)
}

type suggestParams struct {
	Input         string   `json:"input"`
	Context       string   `json:"context"`
	MaxResults    int      `json:"max_results"`
	ExistingNames []string `json:"existing_names"`
	Profile       string   `json:"profile"`
}

func (s *Server) handleSuggestNames(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params suggestParams
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return errorResponse("suggest_names", err)
	}

	if params.Profile != "" {
		s.engine.SetProfile(params.Profile)
	}

	result := s.engine.Search(params.Input, engine.SearchOptions{
		Context:       resolveContext(params.Context),
		MaxResults:    params.MaxResults,
		ExistingNames: params.ExistingNames,
	})
	return jsonResponse(result)
}

type validateParams struct {
	Name    string `json:"name"`
	Meaning string `json:"meaning"`
	Context string `json:"context"`
}

func (s *Server) handleValidateName(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params validateParams
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return errorResponse("validate_name", err)
	}
	return jsonResponse(s.engine.ValidateName(params.Name, params.Meaning, resolveContext(params.Context)))
}

type improveParams struct {
	Name    string `json:"name"`
	Meaning string `json:"meaning"`
}

func (s *Server) handleImproveName(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params improveParams
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return errorResponse("improve_name", err)
	}
	return jsonResponse(s.engine.ImprovementSuggestions(params.Name, params.Meaning))
}

type similarParams struct {
	Input     string   `json:"input"`
	Corpus    []string `json:"corpus"`
	Threshold int      `json:"threshold"`
}

func (s *Server) handleFindSimilar(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params similarParams
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return errorResponse("find_similar", err)
	}
	matches := fuzzy.FindSimilar(params.Input, params.Corpus, params.Threshold)
	return jsonResponse(map[string]any{
		"input":   params.Input,
		"matches": matches,
	})
}

func (s *Server) handleCorpusStats(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	analysis := s.engine.Analysis()
	if analysis == nil {
		return jsonResponse(map[string]any{
			"initialized": false,
			"hint":        "engine was created without a corpus source",
		})
	}
	return jsonResponse(analysis)
}

func (s *Server) handleInfo(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	contexts := make([]string, 0, len(rules.Contexts()))
	for _, c := range rules.Contexts() {
		contexts = append(contexts, c.Name)
	}
	return jsonResponse(map[string]any{
		"server_name":    "namekit-mcp-server",
		"server_version": version.Version,
		"go_version":     runtime.Version(),
		"platform":       runtime.GOOS + "/" + runtime.GOARCH,
		"profiles":       profile.Names(),
		"contexts":       contexts,
		"active_profile": s.engine.Preferences().Name,
	})
}

// resolveContext maps a tool-level context name to the rules template; an
// empty or unknown name means auto-detect.
func resolveContext(name string) *rules.Context {
	if name == "" {
		return nil
	}
	return rules.ContextByName(name)
}

func jsonResponse(data any) (*mcp.CallToolResult, error) {
	content, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal response: %w", err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(content)},
		},
	}, nil
}

func errorResponse(operation string, err error) (*mcp.CallToolResult, error) {
	content, merr := json.Marshal(map[string]any{
		"success":   false,
		"operation": operation,
		"error":     err.Error(),
	})
	if merr != nil {
		return nil, merr
	}
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(content)},
		},
	}, nil
}
