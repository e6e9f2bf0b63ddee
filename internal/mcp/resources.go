// ABOUTME: MCP resource implementations for practice data.
// ABOUTME: Provides practice://recent and practice://summary resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/harperreed/practice/internal/api"
	"github.com/harperreed/practice/internal/stats"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// practice://recent - last 10 sessions and history entries
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "practice://recent",
		Name:        "Recent Practice",
		Description: "Last 10 practice sessions and history entries",
		MIMEType:    "application/json",
	}, s.handleRecentResource)

	// practice://summary - aggregate overview
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "practice://summary",
		Name:        "Practice Summary",
		Description: "Totals, top exercises, and category distribution",
		MIMEType:    "application/json",
	}, s.handleSummaryResource)
}

// Resource handlers

func (s *Server) handleRecentResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	if err := s.stores.Sessions.FetchAll(ctx, api.SessionFilter{ListFilter: api.ListFilter{PageSize: 10}}); err != nil {
		return nil, fmt.Errorf("failed to fetch sessions: %w", err)
	}
	if err := s.stores.History.FetchAll(ctx, api.HistoryFilter{ListFilter: api.ListFilter{PageSize: 10}}); err != nil {
		return nil, fmt.Errorf("failed to fetch history: %w", err)
	}

	result := map[string]any{
		"sessions": s.stores.Sessions.SortedByDate(),
		"history":  s.stores.History.SortedByDate(),
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "practice://recent",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleSummaryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	payload, err := s.stores.Sessions.FetchPracticeStats(ctx, api.DateRange{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch practice stats: %w", err)
	}

	result := map[string]any{
		"total_sessions":      payload.TotalSessions,
		"total_minutes":       stats.TotalMinutes(payload),
		"avg_session_minutes": stats.AvgSessionMinutes(payload),
		"top_exercises":       stats.TopN(stats.ExerciseDistribution(payload), 5),
		"categories":          stats.CategoryDistribution(payload),
		"frequency":           stats.Frequency(payload),
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "practice://summary",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
