package db

import "time"

type User struct {
	ID          int       `gorm:"primaryKey" json:"id"`
	UserName    string    `gorm:"index" json:"user_name"`
	Password    string    `json:"password"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	CreatedDate time.Time `json:"created_date"`
}

type Project struct {
	ID          int       `gorm:"primaryKey" json:"id"`
	Name        string    `json:"name"`
	Code        string    `json:"code"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	CreatedDate time.Time `json:"created_date"`
}

type Task struct {
	ID          int       `gorm:"primaryKey" json:"id"`
	Name        string    `json:"name"`
	Code        string    `json:"code"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Status      int       `json:"status"`
	ProjectID   int       `gorm:"index" json:"project_id"`
	UserID      int       `gorm:"index" json:"user_id"`
}

// Task statuses. Values are stored as plain integers; transitions are not
// validated anywhere, any integer may be written.
const (
	StatusBacklog  = 0
	StatusDoing    = 1
	StatusDone     = 2
	StatusPending  = 3
	StatusCanceled = 4
)

var statusLabels = map[int]string{
	StatusBacklog:  "Backlog",
	StatusDoing:    "Doing",
	StatusDone:     "Done",
	StatusPending:  "Pending",
	StatusCanceled: "Canceled",
}

// StatusLabel returns the display label for a task status. Unknown values
// read as "Backlog" rather than failing; the status column is not a
// validated enum.
func StatusLabel(status int) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return statusLabels[StatusBacklog]
}
