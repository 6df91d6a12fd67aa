// Package repositories はデータベース操作を行うリポジトリを提供します。
package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// GormRepository は任意のエンティティに対する汎用リポジトリです。
// 各メソッドはgormの呼び出しを一回だけ行い、エラーはそのまま包んで返します。
type GormRepository[T any] struct {
	DB *gorm.DB
}

// NewGormRepository は新しいGormRepositoryを作成します。
func NewGormRepository[T any](db *gorm.DB) *GormRepository[T] {
	return &GormRepository[T]{DB: db}
}

// Find はすべてのレコードを返します。レコードが無い場合は空のスライスです。
func (r *GormRepository[T]) Find(ctx context.Context) ([]T, error) {
	items := make([]T, 0)
	if err := r.DB.WithContext(ctx).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("could not query records: %w", err)
	}
	return items, nil
}

// FindOne は主キーでレコードを取得します。見つからない場合は (nil, nil) を返します。
func (r *GormRepository[T]) FindOne(ctx context.Context, id string) (*T, error) {
	var item T
	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not query record: %w", err)
	}
	return &item, nil
}

// Save は新しいレコードを挿入します。採番されたIDはitemに反映されます。
func (r *GormRepository[T]) Save(ctx context.Context, item *T) (*T, error) {
	if err := r.DB.WithContext(ctx).Create(item).Error; err != nil {
		return nil, fmt.Errorf("could not insert record: %w", err)
	}
	return item, nil
}

// Update はpatchのゼロ値でないフィールドで指定IDのレコードを更新します。
// 該当行が無くてもエラーにはしません。
func (r *GormRepository[T]) Update(ctx context.Context, id string, patch *T) error {
	err := r.DB.WithContext(ctx).Model(new(T)).Where("id = ?", id).Updates(patch).Error
	if err != nil {
		return fmt.Errorf("could not update record: %w", err)
	}
	return nil
}

// Delete は指定IDのレコードを削除します。該当行が無くてもエラーにはしません。
func (r *GormRepository[T]) Delete(ctx context.Context, id string) error {
	if err := r.DB.WithContext(ctx).Where("id = ?", id).Delete(new(T)).Error; err != nil {
		return fmt.Errorf("could not delete record: %w", err)
	}
	return nil
}
