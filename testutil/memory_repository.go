package testutil

import (
	"context"
	"sync"

	"go-task-api/internal/models"
)

// MemoryTaskRepository はテスト用のインメモリ TaskRepository です。
// Err を設定すると、すべての呼び出しがそのエラーを返します。
type MemoryTaskRepository struct {
	mu    sync.Mutex
	order []string
	tasks map[string]models.Task
	Err   error
}

// NewMemoryTaskRepository は空のリポジトリを作成します。
func NewMemoryTaskRepository() *MemoryTaskRepository {
	return &MemoryTaskRepository{tasks: make(map[string]models.Task)}
}

func (r *MemoryTaskRepository) Find(ctx context.Context) ([]models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	items := make([]models.Task, 0, len(r.order))
	for _, id := range r.order {
		items = append(items, r.tasks[id])
	}
	return items, nil
}

func (r *MemoryTaskRepository) FindOne(ctx context.Context, id string) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	t, ok := r.tasks[id]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (r *MemoryTaskRepository) Save(ctx context.Context, task *models.Task) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	if err := task.BeforeCreate(nil); err != nil {
		return nil, err
	}
	if _, exists := r.tasks[task.ID]; !exists {
		r.order = append(r.order, task.ID)
	}
	r.tasks[task.ID] = *task
	return task, nil
}

// Update はgormの構造体Updatesと同じく、ゼロ値のフィールドを無視します。
func (r *MemoryTaskRepository) Update(ctx context.Context, id string, patch *models.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	t, ok := r.tasks[id]
	if !ok {
		return nil
	}
	if patch.Title != nil {
		title := *patch.Title
		t.Title = &title
	}
	if patch.Description != "" {
		t.Description = patch.Description
	}
	r.tasks[id] = t
	return nil
}

func (r *MemoryTaskRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	if _, ok := r.tasks[id]; !ok {
		return nil
	}
	delete(r.tasks, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// Len は保存されているTaskの数を返します。
func (r *MemoryTaskRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.tasks)
}
