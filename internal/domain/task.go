package domain

import "time"

// Task is a unit of manuscript or publishing work on a book.
type Task struct {
	ID                string     `json:"id"                  db:"id"`
	BookID            string     `json:"book_id"             db:"book_id"`
	PublishingStageID *string    `json:"publishing_stage_id" db:"publishing_stage_id"`
	Title             string     `json:"title"               db:"title"`
	Description       *string    `json:"description"         db:"description"`
	Status            string     `json:"status"              db:"status"`
	Type              *string    `json:"type"                db:"type"`
	Priority          *string    `json:"priority"            db:"priority"`
	AssigneeID        *string    `json:"assignee_id"         db:"assignee_id"`
	DueDate           *time.Time `json:"due_date"            db:"due_date"`
	CreatedAt         time.Time  `json:"created_at"          db:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"          db:"updated_at"`
}

// Comment is a note left on a task. The User* fields are filled at read time.
type Comment struct {
	ID        string    `json:"id"         db:"id"`
	TaskID    string    `json:"task_id"    db:"task_id"`
	UserID    string    `json:"user_id"    db:"user_id"`
	Content   string    `json:"content"    db:"content"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`

	UserName  *string `json:"user_name"  db:"user_name"`
	UserEmail *string `json:"user_email" db:"user_email"`
	UserImage *string `json:"user_image" db:"user_image"`
}

// NeedsAuthor reports whether display fields are missing for the author.
func (c Comment) NeedsAuthor() bool {
	return c.UserID != "" && c.UserName == nil
}
