package repositories_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-task-api/internal/models"
	"go-task-api/internal/repositories"
	"go-task-api/testutil"
)

func TestTaskRepository_CRUD(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repositories.NewTaskRepository(db)
	ctx := context.Background()

	title := "groceries"
	created, err := repo.Save(ctx, &models.Task{Title: &title, Description: "buy milk"})
	require.NoError(t, err)
	_, err = uuid.Parse(created.ID)
	require.NoError(t, err, "id should be assigned on insert")

	found, err := repo.FindOne(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.ID, found.ID)
	require.NotNil(t, found.Title)
	assert.Equal(t, "groceries", *found.Title)
	assert.Equal(t, "buy milk", found.Description)

	require.NoError(t, repo.Update(ctx, created.ID, &models.Task{Description: "buy oat milk"}))
	found, err = repo.FindOne(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, found.Title)
	assert.Equal(t, "groceries", *found.Title, "nil title in patch leaves the column untouched")
	assert.Equal(t, "buy oat milk", found.Description)

	require.NoError(t, repo.Delete(ctx, created.ID))
	found, err = repo.FindOne(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestTaskRepository_Find(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repositories.NewTaskRepository(db)
	ctx := context.Background()

	tasks, err := repo.Find(ctx)
	require.NoError(t, err)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)

	for i := 0; i < 4; i++ {
		_, err := repo.Save(ctx, &models.Task{Description: "task"})
		require.NoError(t, err)
	}

	tasks, err = repo.Find(ctx)
	require.NoError(t, err)
	assert.Len(t, tasks, 4)
}

func TestTaskRepository_MissingIDs(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repositories.NewTaskRepository(db)
	ctx := context.Background()
	missing := uuid.NewString()

	found, err := repo.FindOne(ctx, missing)
	require.NoError(t, err)
	assert.Nil(t, found)

	assert.NoError(t, repo.Update(ctx, missing, &models.Task{Description: "x"}))
	assert.NoError(t, repo.Delete(ctx, missing))
}

func TestTaskRepository_UpdateOnSQLite(t *testing.T) {
	db := testutil.SetupSQLiteDB(t)
	repo := repositories.NewTaskRepository(db)
	ctx := context.Background()

	title := "groceries"
	created, err := repo.Save(ctx, &models.Task{Title: &title, Description: "buy milk"})
	require.NoError(t, err)
	other, err := repo.Save(ctx, &models.Task{Description: "walk the dog"})
	require.NoError(t, err)

	t.Run("nil title is left untouched", func(t *testing.T) {
		require.NoError(t, repo.Update(ctx, created.ID, &models.Task{Description: "buy oat milk"}))

		found, err := repo.FindOne(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		require.NotNil(t, found.Title)
		assert.Equal(t, "groceries", *found.Title)
		assert.Equal(t, "buy oat milk", found.Description)
	})

	t.Run("title is overwritten when given", func(t *testing.T) {
		newTitle := "errands"
		require.NoError(t, repo.Update(ctx, created.ID, &models.Task{Title: &newTitle, Description: "buy oat milk"}))

		found, err := repo.FindOne(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, found.Title)
		assert.Equal(t, "errands", *found.Title)
	})

	t.Run("only the addressed row changes", func(t *testing.T) {
		found, err := repo.FindOne(ctx, other.ID)
		require.NoError(t, err)
		assert.Nil(t, found.Title)
		assert.Equal(t, "walk the dog", found.Description)
	})

	t.Run("delete removes only the addressed row", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, created.ID))

		tasks, err := repo.Find(ctx)
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.Equal(t, other.ID, tasks[0].ID)
	})
}
