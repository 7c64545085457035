package taskora

import "time"

// Project represents a Taskora project
type Project struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Archived    bool      `json:"archived"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProjectInput represents the input for creating or updating a project
type ProjectInput struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Archived    *bool  `json:"archived,omitempty"`
}

// Column represents one lane of a project's kanban board.
// Names are free-form and user-editable; Position is the ordering key
// (lower sorts first). At most one column per project carries IsDefault.
// WIPLimit is informational; zero means no limit.
type Column struct {
	ID        string `json:"id"`
	ProjectID string `json:"project_id"`
	Name      string `json:"name"`
	Position  int    `json:"position"`
	IsDefault bool   `json:"is_default"`
	WIPLimit  int    `json:"wip_limit,omitempty"`
}

// ColumnInput represents the input for creating or updating a column
type ColumnInput struct {
	Name      string `json:"name,omitempty"`
	Position  *int   `json:"position,omitempty"`
	IsDefault *bool  `json:"is_default,omitempty"`
	WIPLimit  *int   `json:"wip_limit,omitempty"`
}

// Task represents a Taskora task
type Task struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"project_id"`
	ColumnID    string    `json:"column_id,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"` // "todo", "in_progress", "done", "cancelled"
	Priority    int       `json:"priority,omitempty"`
	MilestoneID string    `json:"milestone_id,omitempty"`
	GoalID      string    `json:"goal_id,omitempty"`
	Tags        []Tag     `json:"tags,omitempty"`
	DueDate     time.Time `json:"due_date,omitempty"`
	CompletedAt time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TaskInput represents the input for creating a task
type TaskInput struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status,omitempty"`
	ColumnID    string     `json:"column_id,omitempty"`
	Priority    int        `json:"priority,omitempty"`
	MilestoneID string     `json:"milestone_id,omitempty"`
	GoalID      string     `json:"goal_id,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

// TaskUpdate represents a partial update to a task.
// Empty fields are left unchanged by the API.
type TaskUpdate struct {
	Title       string     `json:"title,omitempty"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status,omitempty"`
	ColumnID    string     `json:"column_id,omitempty"`
	Priority    *int       `json:"priority,omitempty"`
	MilestoneID string     `json:"milestone_id,omitempty"`
	GoalID      string     `json:"goal_id,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

// BulkTaskUpdate pairs a task ID with the update to apply to it
type BulkTaskUpdate struct {
	TaskID string     `json:"task_id"`
	Update TaskUpdate `json:"update"`
}

// Milestone represents a project milestone
type Milestone struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"project_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	DueDate     time.Time `json:"due_date,omitempty"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
}

// MilestoneInput represents the input for creating or updating a milestone
type MilestoneInput struct {
	Name        string     `json:"name,omitempty"`
	Description string     `json:"description,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Completed   *bool      `json:"completed,omitempty"`
}

// Goal represents a workspace-level goal
type Goal struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	TargetDate  time.Time `json:"target_date,omitempty"`
	Progress    float64   `json:"progress"` // 0.0 to 1.0
	Archived    bool      `json:"archived"`
	CreatedAt   time.Time `json:"created_at"`
}

// GoalInput represents the input for creating or updating a goal
type GoalInput struct {
	Name        string     `json:"name,omitempty"`
	Description string     `json:"description,omitempty"`
	TargetDate  *time.Time `json:"target_date,omitempty"`
	Progress    *float64   `json:"progress,omitempty"`
	Archived    *bool      `json:"archived,omitempty"`
}

// Note represents a project note
type Note struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"project_id"`
	Title     string    `json:"title"`
	Body      string    `json:"body,omitempty"`
	Pinned    bool      `json:"pinned"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NoteInput represents the input for creating or updating a note
type NoteInput struct {
	Title  string `json:"title,omitempty"`
	Body   string `json:"body,omitempty"`
	Pinned *bool  `json:"pinned,omitempty"`
}

// Comment represents a comment on a task
type Comment struct {
	ID        string    `json:"id"`
	TaskID    string    `json:"task_id"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// Attachment represents file metadata attached to a task.
// Upload and download mechanics are handled by the Taskora web client;
// this API surface only exposes metadata.
type Attachment struct {
	ID          string    `json:"id"`
	TaskID      string    `json:"task_id"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type,omitempty"`
	Size        int64     `json:"size"`
	URL         string    `json:"url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Tag represents a workspace-level tag
type Tag struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// TagInput represents the input for creating or updating a tag
type TagInput struct {
	Name  string `json:"name,omitempty"`
	Color string `json:"color,omitempty"`
}

// WorkspaceProfile describes the authenticated workspace
type WorkspaceProfile struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Plan         string `json:"plan,omitempty"`
	ProjectCount int    `json:"project_count"`
	TaskCount    int    `json:"task_count"`
}
