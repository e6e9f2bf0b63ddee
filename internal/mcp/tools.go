// ABOUTME: MCP tool implementations over the practice stores.
// ABOUTME: Listing, derived categories, stats, and practice logging.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/harperreed/practice/internal/api"
	"github.com/harperreed/practice/internal/derive"
	"github.com/harperreed/practice/internal/models"
	"github.com/harperreed/practice/internal/stats"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// list_exercises
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_exercises",
		Description: "List exercises, optionally filtered by search term or tag",
	}, s.handleListExercises)

	// exercise_categories
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "exercise_categories",
		Description: "Get the categories an exercise belongs to (derived through its tags)",
	}, s.handleExerciseCategories)

	// practice_stats
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "practice_stats",
		Description: "Get aggregate practice statistics (totals, distributions)",
	}, s.handlePracticeStats)

	// bpm_progress
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "bpm_progress",
		Description: "Get daily best-tempo progress for an exercise",
	}, s.handleBPMProgress)

	// log_practice
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_practice",
		Description: "Record a practice event for an exercise",
	}, s.handleLogPractice)
}

// Tool input/output types

type listExercisesInput struct {
	SearchTerm string `json:"search_term,omitempty" jsonschema:"description=Filter by name or description"`
	TagID      int64  `json:"tag_id,omitempty" jsonschema:"description=Filter by tag id"`
	Limit      int    `json:"limit,omitempty" jsonschema:"description=Max results (default 20)"`
}

type exerciseCategoriesInput struct {
	ExerciseID int64 `json:"exercise_id" jsonschema:"description=Exercise id,required"`
}

type exerciseCategoriesOutput struct {
	ExerciseID int64    `json:"exercise_id"`
	Categories []string `json:"categories"`
}

type practiceStatsInput struct {
	StartDate string `json:"start_date,omitempty" jsonschema:"description=Range start (YYYY-MM-DD)"`
	EndDate   string `json:"end_date,omitempty" jsonschema:"description=Range end (YYYY-MM-DD)"`
}

type practiceStatsOutput struct {
	TotalSessions     int            `json:"total_sessions"`
	TotalMinutes      float64        `json:"total_minutes"`
	AvgSessionMinutes float64        `json:"avg_session_minutes"`
	TopExercises      []stats.Bucket `json:"top_exercises,omitempty"`
	Categories        []stats.Bucket `json:"categories,omitempty"`
}

type bpmProgressInput struct {
	ExerciseID int64 `json:"exercise_id" jsonschema:"description=Exercise id,required"`
}

type logPracticeInput struct {
	ExerciseID int64 `json:"exercise_id" jsonschema:"description=Exercise id,required"`
	BPM        int   `json:"bpm,omitempty" jsonschema:"description=Tempo practiced at"`
	Rating     int   `json:"rating,omitempty" jsonschema:"description=Self-rating 1-5"`
	SessionID  int64 `json:"session_id,omitempty" jsonschema:"description=Session to attach the event to"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

// Tool handlers

func (s *Server) handleListExercises(ctx context.Context, req *mcp.CallToolRequest, input listExercisesInput) (*mcp.CallToolResult, any, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	filter := api.ExerciseFilter{
		ListFilter: api.ListFilter{PageSize: input.Limit},
		SearchTerm: input.SearchTerm,
	}
	if input.TagID > 0 {
		filter.TagIDs = []int64{input.TagID}
	}

	if err := s.stores.Exercises.FetchAll(ctx, filter); err != nil {
		return nil, nil, fmt.Errorf("failed to list exercises: %w", err)
	}

	exercises := s.stores.Exercises.SortedByName()
	if len(exercises) == 0 {
		return nil, map[string]any{"message": "No exercises found."}, nil
	}
	return nil, exercises, nil
}

func (s *Server) handleExerciseCategories(ctx context.Context, req *mcp.CallToolRequest, input exerciseCategoriesInput) (*mcp.CallToolResult, exerciseCategoriesOutput, error) {
	if _, err := s.stores.Exercises.FetchOne(ctx, input.ExerciseID); err != nil {
		return nil, exerciseCategoriesOutput{}, fmt.Errorf("failed to fetch exercise: %w", err)
	}
	if s.stores.Tags.Len() == 0 {
		if err := s.stores.Tags.FetchAll(ctx, api.ListFilter{PageSize: 1000}); err != nil {
			return nil, exerciseCategoriesOutput{}, fmt.Errorf("failed to fetch tags: %w", err)
		}
	}
	if s.stores.Categories.Len() == 0 {
		if err := s.stores.Categories.FetchAll(ctx, api.ListFilter{PageSize: 1000}); err != nil {
			return nil, exerciseCategoriesOutput{}, fmt.Errorf("failed to fetch categories: %w", err)
		}
	}

	ids := derive.CategoriesForExercise(input.ExerciseID, s.stores.Exercises.Items(), s.stores.Tags.Items())
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if cat, ok := s.stores.Categories.Get(id); ok {
			names = append(names, cat.Name)
		} else {
			names = append(names, fmt.Sprintf("category %d", id))
		}
	}

	return nil, exerciseCategoriesOutput{
		ExerciseID: input.ExerciseID,
		Categories: names,
	}, nil
}

func (s *Server) handlePracticeStats(ctx context.Context, req *mcp.CallToolRequest, input practiceStatsInput) (*mcp.CallToolResult, practiceStatsOutput, error) {
	var rng api.DateRange
	if input.StartDate != "" {
		t, err := time.Parse("2006-01-02", input.StartDate)
		if err != nil {
			return nil, practiceStatsOutput{}, fmt.Errorf("invalid start_date: %s", input.StartDate)
		}
		rng.StartDate = &t
	}
	if input.EndDate != "" {
		t, err := time.Parse("2006-01-02", input.EndDate)
		if err != nil {
			return nil, practiceStatsOutput{}, fmt.Errorf("invalid end_date: %s", input.EndDate)
		}
		rng.EndDate = &t
	}

	payload, err := s.stores.Sessions.FetchPracticeStats(ctx, rng)
	if err != nil {
		return nil, practiceStatsOutput{}, fmt.Errorf("failed to fetch practice stats: %w", err)
	}

	return nil, practiceStatsOutput{
		TotalSessions:     payload.TotalSessions,
		TotalMinutes:      stats.TotalMinutes(payload),
		AvgSessionMinutes: stats.AvgSessionMinutes(payload),
		TopExercises:      stats.TopN(stats.ExerciseDistribution(payload), 5),
		Categories:        stats.CategoryDistribution(payload),
	}, nil
}

func (s *Server) handleBPMProgress(ctx context.Context, req *mcp.CallToolRequest, input bpmProgressInput) (*mcp.CallToolResult, any, error) {
	filter := api.HistoryFilter{
		ListFilter: api.ListFilter{PageSize: 1000},
		ExerciseID: input.ExerciseID,
	}
	if err := s.stores.History.FetchAll(ctx, filter); err != nil {
		return nil, nil, fmt.Errorf("failed to fetch history: %w", err)
	}

	progress := stats.BPMProgress(s.stores.History.Items(), input.ExerciseID)
	if len(progress) == 0 {
		return nil, map[string]any{"message": "No practice history for that exercise."}, nil
	}
	return nil, progress, nil
}

func (s *Server) handleLogPractice(ctx context.Context, req *mcp.CallToolRequest, input logPracticeInput) (*mcp.CallToolResult, simpleOutput, error) {
	entry := models.HistoryEntry{
		ExerciseID: input.ExerciseID,
		StartTime:  time.Now().UTC(),
	}
	if input.BPM > 0 {
		entry.BPM = &input.BPM
	}
	if input.Rating > 0 {
		entry.Rating = &input.Rating
	}
	if input.SessionID > 0 {
		entry.SessionID = &input.SessionID
	}

	created, err := s.stores.History.Create(ctx, entry)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to log practice: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Logged practice for exercise %d (entry %d)", input.ExerciseID, created.ID),
	}, nil
}
