// Package models はTaskエンティティとリクエストの型を定義します。
package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Task はタスクのエンティティです。テーブル定義はこの構造体から自動生成されます。
type Task struct {
	ID          string  `json:"id" gorm:"type:char(36);primaryKey"`
	Title       *string `json:"title" gorm:"type:varchar(255)"`
	Description string  `json:"description" gorm:"type:text;not null"`
}

// TableName はテーブル名を "task" に固定します。
func (Task) TableName() string {
	return "task"
}

// BeforeCreate は挿入前にUUIDを採番します。
func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// TaskFields はリクエストボディで受け付けるキーです。
var TaskFields = []string{"title", "description"}

// CreateTaskRequest は POST /task のボディです。
type CreateTaskRequest struct {
	Title       *string `json:"title"`
	Description string  `json:"description" binding:"required"`
}

// UpdateTaskRequest は PUT /task/:id のボディです。
// Title が nil の場合、保存済みのタイトルは変更されません。
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description string  `json:"description" binding:"required"`
}
