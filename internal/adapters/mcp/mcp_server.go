// Package mcp provides the MCP (Model Context Protocol) server
// implementation. It exposes the task ledger, session log, stats, and
// achievements over stdio so agents can read progress and manage tasks.
// Clock control stays with the interactive TUI; a countdown only exists
// inside that process.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/hxlin/tomato-cli/internal/domain"
	"github.com/hxlin/tomato-cli/internal/ports"
	"github.com/hxlin/tomato-cli/internal/services"
)

// Server implements the MCP server using mark3labs/mcp-go.
type Server struct {
	server  *server.MCPServer
	storage ports.Storage
	tasks   *services.TaskService
}

// NewServer creates a new MCP server instance.
func NewServer(storage ports.Storage) *Server {
	s := &Server{
		storage: storage,
		tasks:   services.NewTaskService(storage),
	}

	s.server = server.NewMCPServer(
		"tomato",
		"1.0.0",
		server.WithLogging(),
	)

	s.registerTools()

	return s
}

// registerTools registers all available MCP tools.
func (s *Server) registerTools() {
	s.server.AddTool(
		mcp.NewTool(
			"get_status",
			mcp.WithDescription("Get the current Tomato status: active task, today's focus sessions, totals, and streak"),
		),
		s.handleGetStatus,
	)

	listTasksTool := mcp.NewTool(
		"list_tasks",
		mcp.WithDescription("List all tasks, optionally filtered by state"),
		mcp.WithString(
			"state",
			mcp.Description("Filter tasks: open or completed"),
			mcp.Enum("open", "completed"),
		),
	)
	s.server.AddTool(listTasksTool, s.handleListTasks)

	addTaskTool := mcp.NewTool(
		"add_task",
		mcp.WithDescription("Add a new task to the ledger"),
		mcp.WithString(
			"text",
			mcp.Required(),
			mcp.Description("The task text"),
		),
		mcp.WithString(
			"priority",
			mcp.Description("Task priority: high, medium, or low (default: medium)"),
			mcp.Enum("high", "medium", "low"),
		),
		mcp.WithString(
			"category",
			mcp.Description("Optional category label"),
		),
		mcp.WithNumber(
			"estimated_pomodoros",
			mcp.Description("Estimated number of focus sessions (default: 1)"),
		),
	)
	s.server.AddTool(addTaskTool, s.handleAddTask)

	toggleTaskTool := mcp.NewTool(
		"toggle_task",
		mcp.WithDescription("Toggle a task between open and completed"),
		mcp.WithString(
			"task_id",
			mcp.Required(),
			mcp.Description("The ID of the task to toggle"),
		),
	)
	s.server.AddTool(toggleTaskTool, s.handleToggleTask)

	setActiveTool := mcp.NewTool(
		"set_active_task",
		mcp.WithDescription("Choose which task new focus sessions are attributed to"),
		mcp.WithString(
			"task_id",
			mcp.Required(),
			mcp.Description("The ID of the task to make active"),
		),
	)
	s.server.AddTool(setActiveTool, s.handleSetActiveTask)

	sessionLogTool := mcp.NewTool(
		"get_session_log",
		mcp.WithDescription("Get completed focus sessions, newest first"),
		mcp.WithNumber(
			"limit",
			mcp.Description("Maximum number of sessions to return (default: 20)"),
		),
	)
	s.server.AddTool(sessionLogTool, s.handleGetSessionLog)

	s.server.AddTool(
		mcp.NewTool(
			"list_achievements",
			mcp.WithDescription("List all achievements and whether each is unlocked"),
		),
		s.handleListAchievements,
	)
}

// Start begins serving MCP requests via stdio.
func (s *Server) Start(ctx context.Context) error {
	return server.ServeStdio(s.server)
}

// handleGetStatus handles the get_status tool.
func (s *Server) handleGetStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessions, err := s.storage.Sessions().FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load sessions: %w", err)
	}
	log := domain.NewSessionLog(sessions)
	now := time.Now()

	result := map[string]interface{}{
		"active_task":    nil,
		"sessions_today": len(log.OnDay(now)),
		"sessions_total": log.Len(),
		"focus_minutes":  log.TotalMinutes(),
		"streak_days":    domain.Streak(sessions, now),
	}

	if task, err := s.tasks.ActiveTask(ctx); err == nil && task != nil {
		result["active_task"] = taskData(task)
	}

	return jsonResult(result)
}

// handleListTasks handles the list_tasks tool.
func (s *Server) handleListTasks(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	state := request.GetString("state", "")

	tasks, err := s.tasks.ListTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	var filtered []map[string]interface{}
	for _, task := range tasks {
		if state == "open" && task.Completed {
			continue
		}
		if state == "completed" && !task.Completed {
			continue
		}
		filtered = append(filtered, taskData(task))
	}

	result := map[string]interface{}{
		"tasks":       filtered,
		"total_count": len(filtered),
	}
	if state != "" {
		result["filter_state"] = state
	}

	return jsonResult(result)
}

// handleAddTask handles the add_task tool.
func (s *Server) handleAddTask(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError("text is required: " + err.Error()), nil
	}

	task, err := s.tasks.AddTask(ctx, services.AddTaskRequest{
		Text:               text,
		Priority:           domain.Priority(request.GetString("priority", "")),
		Category:           request.GetString("category", ""),
		EstimatedPomodoros: int(request.GetFloat("estimated_pomodoros", 1)),
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to add task: %v", err)), nil
	}
	if task == nil {
		return mcp.NewToolResultError("task text is empty"), nil
	}

	return jsonResult(taskData(task))
}

// handleToggleTask handles the toggle_task tool.
func (s *Server) handleToggleTask(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	taskID, err := request.RequireString("task_id")
	if err != nil {
		return mcp.NewToolResultError("task_id is required: " + err.Error()), nil
	}

	if err := s.tasks.ToggleTask(ctx, taskID); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to toggle task: %v", err)), nil
	}

	task, err := s.storage.Tasks().FindByID(ctx, taskID)
	if err != nil {
		// Unknown ids toggle nothing.
		return mcp.NewToolResultText(fmt.Sprintf(`{"task_id": %q, "found": false}`, taskID)), nil
	}

	return jsonResult(taskData(task))
}

// handleSetActiveTask handles the set_active_task tool.
func (s *Server) handleSetActiveTask(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	taskID, err := request.RequireString("task_id")
	if err != nil {
		return mcp.NewToolResultError("task_id is required: " + err.Error()), nil
	}

	if err := s.tasks.SetActiveTask(ctx, &taskID); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to set active task: %v", err)), nil
	}

	active, err := s.tasks.ActiveTask(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve active task: %w", err)
	}

	result := map[string]interface{}{"active_task": nil}
	if active != nil {
		result["active_task"] = taskData(active)
	}
	return jsonResult(result)
}

// handleGetSessionLog handles the get_session_log tool.
func (s *Server) handleGetSessionLog(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := int(request.GetFloat("limit", 20))
	if limit <= 0 {
		limit = 20
	}

	sessions, err := s.storage.Sessions().FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load sessions: %w", err)
	}

	log := domain.NewSessionLog(sessions)
	newest := log.Newest()
	if len(newest) > limit {
		newest = newest[:limit]
	}

	var sessionList []map[string]interface{}
	for _, session := range newest {
		data := map[string]interface{}{
			"id":               session.ID,
			"timestamp":        session.Timestamp.Format("2006-01-02T15:04:05"),
			"duration_minutes": session.DurationMinutes,
		}
		if session.TaskID != nil {
			data["task_id"] = *session.TaskID
		}
		if session.TaskText != "" {
			data["task_text"] = session.TaskText
		}
		if session.GitBranch != "" {
			data["git_branch"] = session.GitBranch
		}
		if session.GitCommit != "" {
			data["git_commit"] = session.GitCommit
		}
		sessionList = append(sessionList, data)
	}

	return jsonResult(map[string]interface{}{
		"sessions":       sessionList,
		"returned_count": len(sessionList),
		"total_count":    log.Len(),
	})
}

// handleListAchievements handles the list_achievements tool.
func (s *Server) handleListAchievements(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	unlockedIDs, err := s.storage.Achievements().FindUnlocked(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load achievements: %w", err)
	}

	unlocked := make(map[domain.AchievementID]bool, len(unlockedIDs))
	for _, id := range unlockedIDs {
		unlocked[id] = true
	}

	var list []map[string]interface{}
	for _, def := range domain.AchievementDefs() {
		list = append(list, map[string]interface{}{
			"id":          string(def.ID),
			"name":        def.Name,
			"description": def.Description,
			"unlocked":    unlocked[def.ID],
		})
	}

	return jsonResult(map[string]interface{}{
		"achievements":   list,
		"unlocked_count": len(unlockedIDs),
	})
}

// taskData converts a task to its wire representation.
func taskData(task *domain.Task) map[string]interface{} {
	data := map[string]interface{}{
		"id":                  task.ID,
		"text":                task.Text,
		"priority":            string(task.Priority),
		"estimated_pomodoros": task.EstimatedPomodoros,
		"completed_pomodoros": task.CompletedPomodoros,
		"completed":           task.Completed,
		"created_at":          task.CreatedAt.Format("2006-01-02T15:04:05"),
	}
	if task.Category != "" {
		data["category"] = task.Category
	}
	if task.CompletedAt != nil {
		data["completed_at"] = task.CompletedAt.Format("2006-01-02T15:04:05")
	}
	return data
}

// jsonResult marshals v as an indented JSON tool result.
func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}
