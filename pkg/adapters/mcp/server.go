package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/aretw0/stategate/internal/logging"
	"github.com/aretw0/stategate/pkg/domain"
	"github.com/aretw0/stategate/pkg/engine"
	"github.com/aretw0/stategate/pkg/observability"
	"github.com/aretw0/stategate/pkg/registry"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// GatesURI is the resource listing every registered gate.
const GatesURI = "stategate://gates"

// AuthorizeResponse mirrors the HTTP adapter so both surfaces answer alike.
type AuthorizeResponse struct {
	Allowed bool   `json:"allowed" jsonschema_description:"Whether the transition is authorized"`
	From    string `json:"from" jsonschema_description:"The current state"`
	To      string `json:"to" jsonschema_description:"The proposed state, possibly forced"`
	Forced  bool   `json:"forced,omitempty" jsonschema_description:"The proposed state carried the force_ marker"`
	Error   string `json:"error,omitempty" jsonschema_description:"Why the transition was refused"`
}

// Server exposes a gate registry as an MCP server.
type Server struct {
	gates     *registry.Registry
	metrics   *observability.Metrics
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// Option configures the server.
type Option func(*Server)

// WithMetrics records authorizations made through the server.
func WithMetrics(m *observability.Metrics) Option {
	return func(s *Server) { s.metrics = m }
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewServer creates a new MCP Server instance.
func NewServer(gates *registry.Registry, version string, opts ...Option) *Server {
	s := &Server{
		gates:     gates,
		logger:    logging.NewNop(),
		mcpServer: server.NewMCPServer("stategate-mcp", version),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE serves the MCP protocol over SSE until ctx is cancelled.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		s.logger.Info("MCP server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
		return nil
	})

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("list_gates",
		mcp.WithDescription("List every gated (entity, attribute) pair."),
	), s.handleListGates)

	s.mcpServer.AddTool(mcp.NewTool("describe_gate",
		mcp.WithDescription("Describe the states, transitions and settings of one gate."),
		mcp.WithString("entity", mcp.Required(), mcp.Description("Host entity type, e.g. User")),
		mcp.WithString("attribute", mcp.Required(), mcp.Description("Gated attribute, e.g. status")),
	), s.handleDescribeGate)

	authorizeTool := mcp.NewTool("authorize_transition",
		mcp.WithDescription("Check whether a gated attribute may move from one state to another. Prefix the target with force_ to bypass the transition rules."),
		mcp.WithString("entity", mcp.Required(), mcp.Description("Host entity type")),
		mcp.WithString("attribute", mcp.Required(), mcp.Description("Gated attribute")),
		mcp.WithString("from", mcp.Required(), mcp.Description("Current state")),
		mcp.WithString("to", mcp.Required(), mcp.Description("Proposed state")),
		mcp.WithOutputSchema[AuthorizeResponse](),
	)
	s.mcpServer.AddTool(authorizeTool, mcp.NewStructuredToolHandler(s.handleAuthorize))
}

func (s *Server) handleListGates(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	jsonBytes, _ := json.Marshal(s.gates.Keys())
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

func (s *Server) handleDescribeGate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	entity, _ := request.GetArguments()["entity"].(string)
	attribute, _ := request.GetArguments()["attribute"].(string)

	g, err := s.gates.Get(entity, attribute)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	jsonBytes, _ := json.Marshal(g.Describe())
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

func (s *Server) handleAuthorize(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (AuthorizeResponse, error) {
	entity, _ := args["entity"].(string)
	attribute, _ := args["attribute"].(string)
	from, _ := args["from"].(string)
	to, _ := args["to"].(string)

	g, err := s.gates.Get(entity, attribute)
	if err != nil {
		return AuthorizeResponse{}, err
	}

	resp := AuthorizeResponse{From: from, To: to}
	if err := s.authorize(g, from, to); err != nil {
		s.logger.Debug("MCP Authorize: rejected", "gate", g.String(), "from", from, "to", to, "error", err)
		resp.Error = err.Error()
		return resp, nil
	}
	resp.Allowed = true
	resp.Forced = domain.IsForced(to)
	return resp, nil
}

func (s *Server) authorize(g *engine.Graph, from, to string) error {
	if s.metrics != nil {
		return s.metrics.Authorize(g, from, to)
	}
	return g.AssertValidTransition(from, to)
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(GatesURI, "Registered Gates",
		mcp.WithMIMEType("application/json"),
	), s.handleGatesResource)
}

func (s *Server) handleGatesResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	keys := s.gates.Keys()
	descriptions := make([]engine.Description, 0, len(keys))
	for _, k := range keys {
		g, err := s.gates.Get(k.Entity, k.Attribute)
		if err != nil {
			return nil, fmt.Errorf("failed to describe gates: %w", err)
		}
		descriptions = append(descriptions, g.Describe())
	}
	jsonBytes, _ := json.Marshal(descriptions)

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      GatesURI,
			MIMEType: "application/json",
			Text:     string(jsonBytes),
		},
	}, nil
}
