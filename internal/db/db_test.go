package db_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"taskhub/internal/db"
)

func getStore(t *testing.T) *db.Store {
	t.Helper()

	store, err := db.Open(filepath.Join(t.TempDir(), "test.sqlite"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func TestOpenBadPath(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	store, err := db.Open("/nonexistent-dir/taskhub.sqlite")
	assert.Nil(store)
	assert.NotNil(err)
}

func TestUserLifecycle(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	store := getStore(t)
	ctx := context.Background()

	user := &db.User{
		UserName:    "amartin",
		Password:    "hunter2",
		Email:       "amartin@example.com",
		Name:        "Ana Martin",
		CreatedDate: time.Now(),
	}
	assert.Nil(store.CreateUser(ctx, user))
	assert.NotZero(user.ID)

	got, err := store.GetUserByID(ctx, user.ID)
	assert.Nil(err)
	assert.NotNil(got)
	assert.Equal("amartin", got.UserName)
	assert.Equal("amartin@example.com", got.Email)

	got.Name = "Ana M."
	assert.Nil(store.SaveUser(ctx, got))

	updated, err := store.GetUserByID(ctx, user.ID)
	assert.Nil(err)
	assert.Equal("Ana M.", updated.Name)

	assert.Nil(store.DeleteUser(ctx, user.ID))

	gone, err := store.GetUserByID(ctx, user.ID)
	assert.Nil(err)
	assert.Nil(gone)
}

func TestDeleteMissingUser(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	store := getStore(t)

	err := store.DeleteUser(context.Background(), 1234)
	assert.ErrorIs(err, gorm.ErrRecordNotFound)
}

func TestListUsersNewestFirst(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	store := getStore(t)
	ctx := context.Background()

	assert.Nil(store.CreateUser(ctx, &db.User{UserName: "first"}))
	assert.Nil(store.CreateUser(ctx, &db.User{UserName: "second"}))

	users, err := store.ListUsers(ctx)
	assert.Nil(err)
	assert.Len(users, 2)
	assert.Equal("second", users[0].UserName)
	assert.Equal("first", users[1].UserName)
}

func TestFindUserByCredentials(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	store := getStore(t)
	ctx := context.Background()

	assert.Nil(store.CreateUser(ctx, &db.User{UserName: "amartin", Password: "hunter2"}))

	match, err := store.FindUserByCredentials(ctx, "amartin", "hunter2")
	assert.Nil(err)
	assert.NotNil(match)

	wrongPassword, err := store.FindUserByCredentials(ctx, "amartin", "hunter3")
	assert.Nil(err)
	assert.Nil(wrongPassword)

	wrongUser, err := store.FindUserByCredentials(ctx, "bmartin", "hunter2")
	assert.Nil(err)
	assert.Nil(wrongUser)
}

func TestProjectLifecycle(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	store := getStore(t)
	ctx := context.Background()

	project := &db.Project{Name: "Website relaunch", Code: "WEB"}
	assert.Nil(store.CreateProject(ctx, project))
	assert.NotZero(project.ID)

	got, err := store.GetProjectByID(ctx, project.ID)
	assert.Nil(err)
	assert.Equal("WEB", got.Code)

	absent, err := store.GetProjectByID(ctx, 999)
	assert.Nil(err)
	assert.Nil(absent)

	projects, err := store.ListProjects(ctx)
	assert.Nil(err)
	assert.Len(projects, 1)
}

func TestTaskQueries(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	store := getStore(t)
	ctx := context.Background()

	assert.Nil(store.CreateTask(ctx, &db.Task{Name: "a", ProjectID: 1, UserID: 10}))
	assert.Nil(store.CreateTask(ctx, &db.Task{Name: "b", ProjectID: 1, UserID: 11}))
	assert.Nil(store.CreateTask(ctx, &db.Task{Name: "c", ProjectID: 2, UserID: 10}))

	byProject, err := store.ListTasksByProject(ctx, 1)
	assert.Nil(err)
	assert.Len(byProject, 2)

	byUser, err := store.ListTasksByUser(ctx, 10)
	assert.Nil(err)
	assert.Len(byUser, 2)

	all, err := store.ListTasks(ctx)
	assert.Nil(err)
	assert.Len(all, 3)
}

func TestStatusLabel(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	assert.Equal("Backlog", db.StatusLabel(db.StatusBacklog))
	assert.Equal("Doing", db.StatusLabel(db.StatusDoing))
	assert.Equal("Done", db.StatusLabel(db.StatusDone))
	assert.Equal("Pending", db.StatusLabel(db.StatusPending))
	assert.Equal("Canceled", db.StatusLabel(db.StatusCanceled))

	// unmapped values read as Backlog
	assert.Equal("Backlog", db.StatusLabel(7))
	assert.Equal("Backlog", db.StatusLabel(-1))
}
