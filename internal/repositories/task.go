package repositories

import (
	"gorm.io/gorm"

	"go-task-api/internal/models"
)

// TaskRepository はtaskテーブルのリポジトリです。
type TaskRepository = GormRepository[models.Task]

// NewTaskRepository は新しいTaskRepositoryを作成します。
func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return NewGormRepository[models.Task](db)
}
