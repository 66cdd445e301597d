package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"golang.org/x/sync/errgroup"

	"github.com/aretw0/sortscope/pkg/domain"
	"github.com/aretw0/sortscope/pkg/generator"
	"github.com/aretw0/sortscope/pkg/ports"
)

// CatalogURI is the resource exposing the algorithm catalog.
const CatalogURI = "sortscope://algorithms"

// DefaultSize is the length of a generated array when no values are given.
const DefaultSize = 50

// Engine defines the engine surface required by the MCP server.
type Engine interface {
	ports.SortEngine
}

// CatalogResponse lists algorithms.
type CatalogResponse struct {
	Algorithms []domain.Descriptor `json:"algorithms" jsonschema_description:"Algorithms in display order"`
}

// SortResponse is the structured result of the sort tool.
type SortResponse struct {
	Algorithm domain.AlgorithmID `json:"algorithm" jsonschema_description:"Algorithm that actually ran"`
	Fallback  bool               `json:"fallback" jsonschema_description:"True when the requested algorithm was unknown and bubble ran instead"`
	Input     []int              `json:"input" jsonschema_description:"Values before sorting"`
	Final     []int              `json:"final" jsonschema_description:"Values after sorting"`
	Stats     domain.Stats       `json:"stats" jsonschema_description:"Comparisons, swaps and complexity labels"`
	StepCount int                `json:"step_count" jsonschema_description:"Number of recorded steps"`
	Steps     []domain.Step      `json:"steps,omitempty" jsonschema_description:"Full step log, only with include_steps"`
}

// Server wraps the sortscope engine and exposes it as an MCP Server.
type Server struct {
	engine    Engine
	limits    generator.Limits
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(engine Engine, version string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Server{
		engine:    engine,
		limits:    generator.DefaultLimits,
		logger:    logger,
		mcpServer: server.NewMCPServer("sortscope-mcp", version),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE serves MCP over SSE on port until ctx is cancelled.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(fmt.Sprintf("http://localhost:%d", port)))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))
	httpServer := &http.Server{Addr: addr, Handler: mux}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	})
	return g.Wait()
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("list_algorithms",
		mcp.WithDescription("List the sorting algorithms in the catalog, optionally filtered by category."),
		mcp.WithString("category", mcp.Description("elementary, divide-conquer, linear, variants or exotic")),
		mcp.WithOutputSchema[CatalogResponse](),
	), mcp.NewStructuredToolHandler(s.handleListAlgorithms))

	s.mcpServer.AddTool(mcp.NewTool("describe_algorithm",
		mcp.WithDescription("Describe one algorithm: name, description and complexity."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Algorithm identifier, e.g. quick")),
		mcp.WithOutputSchema[domain.Descriptor](),
	), mcp.NewStructuredToolHandler(s.handleDescribe))

	s.mcpServer.AddTool(mcp.NewTool("sort",
		mcp.WithDescription("Sort values with a catalog algorithm and report comparisons, swaps and the step count. Unknown algorithms fall back to bubble."),
		mcp.WithString("algorithm", mcp.Required(), mcp.Description("Algorithm identifier")),
		mcp.WithString("values", mcp.Description("Comma separated integers; random values are generated when omitted")),
		mcp.WithNumber("size", mcp.Description("Number of random values when values is omitted")),
		mcp.WithNumber("seed", mcp.Description("Seed for random values")),
		mcp.WithBoolean("include_steps", mcp.Description("Return the full step log")),
		mcp.WithOutputSchema[SortResponse](),
	), mcp.NewStructuredToolHandler(s.handleSort))
}

func (s *Server) handleListAlgorithms(ctx context.Context, request mcp.CallToolRequest, args map[string]any) (CatalogResponse, error) {
	category, _ := args["category"].(string)
	resp := CatalogResponse{Algorithms: []domain.Descriptor{}}
	for _, d := range s.engine.Catalog() {
		if category == "" || string(d.Category) == category {
			resp.Algorithms = append(resp.Algorithms, d)
		}
	}
	return resp, nil
}

func (s *Server) handleDescribe(ctx context.Context, request mcp.CallToolRequest, args map[string]any) (domain.Descriptor, error) {
	id, _ := args["id"].(string)
	d, err := s.engine.Describe(id)
	if err != nil {
		return domain.Descriptor{}, fmt.Errorf("describe %q: %w", id, err)
	}
	return d, nil
}

func (s *Server) handleSort(ctx context.Context, request mcp.CallToolRequest, args map[string]any) (SortResponse, error) {
	algorithm, _ := args["algorithm"].(string)
	raw, _ := args["values"].(string)

	values, err := generator.ParseValues(raw)
	if err != nil {
		return SortResponse{}, err
	}

	var input []domain.Element
	if len(values) > 0 {
		if err := s.limits.Check(values); err != nil {
			return SortResponse{}, err
		}
		input = generator.FromValues(values)
	} else {
		size := DefaultSize
		if n, ok := args["size"].(float64); ok && n > 0 {
			size = int(n)
		}
		if size > s.limits.MaxElements {
			return SortResponse{}, fmt.Errorf("%w: size %d", domain.ErrTooManyElements, size)
		}
		seed, _ := args["seed"].(float64)
		if seed < 0 {
			return SortResponse{}, fmt.Errorf("%w: seed %v must not be negative", domain.ErrInvalidValues, seed)
		}
		input = generator.Random(generator.NewRand(uint64(seed)), size, generator.DefaultMinValue, generator.DefaultMaxValue)
	}

	res := s.engine.Run(ctx, algorithm, input)
	if res.Fallback {
		s.logger.Warn("sort: unknown algorithm, used default", "requested", algorithm)
	}

	resp := SortResponse{
		Algorithm: res.Algorithm,
		Fallback:  res.Fallback,
		Input:     domain.Values(input),
		Final:     domain.Values(res.Final),
		Stats:     res.Stats,
		StepCount: len(res.Steps),
	}
	if include, _ := args["include_steps"].(bool); include {
		resp.Steps = res.Steps
	}
	return resp, nil
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(CatalogURI, "Sorting Algorithm Catalog",
		mcp.WithMIMEType("application/json"),
	), s.readCatalog)
}

func (s *Server) readCatalog(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	jsonBytes, err := json.Marshal(s.engine.Catalog())
	if err != nil {
		return nil, fmt.Errorf("failed to encode catalog: %w", err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      CatalogURI,
			MIMEType: "application/json",
			Text:     string(jsonBytes),
		},
	}, nil
}
