package services

import (
	"context"

	"go-task-api/internal/models"
)

// TaskRepository はTaskServiceが利用するリポジトリです。
type TaskRepository interface {
	Find(ctx context.Context) ([]models.Task, error)
	FindOne(ctx context.Context, id string) (*models.Task, error)
	Save(ctx context.Context, task *models.Task) (*models.Task, error)
	Update(ctx context.Context, id string, patch *models.Task) error
	Delete(ctx context.Context, id string) error
}

// TaskService はリポジトリ呼び出しをそのまま中継します。
type TaskService struct {
	taskRepo TaskRepository
}

// NewTaskService は新しいTaskServiceを作成します。
func NewTaskService(taskRepo TaskRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo}
}

// FindAll はすべてのTaskを返します。
func (s *TaskService) FindAll(ctx context.Context) ([]models.Task, error) {
	return s.taskRepo.Find(ctx)
}

// FindOne は指定IDのTaskを返します。存在しない場合は nil です。
func (s *TaskService) FindOne(ctx context.Context, id string) (*models.Task, error) {
	return s.taskRepo.FindOne(ctx, id)
}

// Create は新しいTaskを保存します。
func (s *TaskService) Create(ctx context.Context, req *models.CreateTaskRequest) (*models.Task, error) {
	return s.taskRepo.Save(ctx, &models.Task{
		Title:       req.Title,
		Description: req.Description,
	})
}

// Update はTaskを更新し、更新後のレコードを再取得して返します。
func (s *TaskService) Update(ctx context.Context, id string, req *models.UpdateTaskRequest) (*models.Task, error) {
	patch := &models.Task{
		Title:       req.Title,
		Description: req.Description,
	}
	if err := s.taskRepo.Update(ctx, id, patch); err != nil {
		return nil, err
	}
	return s.taskRepo.FindOne(ctx, id)
}

// Remove は指定IDのTaskを削除します。
func (s *TaskService) Remove(ctx context.Context, id string) error {
	return s.taskRepo.Delete(ctx, id)
}
