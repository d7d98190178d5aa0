package service

import (
	"time"

	"taskhub/internal/db"
)

// List and filter responses use month/day ordering.
const viewDateFormat = "01/02/2006"

// TaskView is a read-only projection of a task with dates pre-formatted
// for display. It is never persisted.
type TaskView struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Code        string `json:"code"`
	Description string `json:"description"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Status      int    `json:"status"`
}

// TaskFilter holds optional criteria combined with logical AND. Zero
// values mean "no constraint"; both dates must be set for the date range
// to apply.
type TaskFilter struct {
	ProjectID int        `json:"project_id"`
	UserID    int        `json:"user_id"`
	Status    int        `json:"status"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
}

func toTaskView(t db.Task) TaskView {
	return TaskView{
		ID:          t.ID,
		Name:        t.Name,
		Code:        t.Code,
		Description: t.Description,
		StartDate:   t.StartDate.Format(viewDateFormat),
		EndDate:     t.EndDate.Format(viewDateFormat),
		Status:      t.Status,
	}
}

func toTaskViews(tasks []db.Task) []TaskView {
	views := make([]TaskView, 0, len(tasks))
	for _, t := range tasks {
		views = append(views, toTaskView(t))
	}
	return views
}
