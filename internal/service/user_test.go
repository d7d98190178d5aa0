package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"taskhub/internal/db"
)

func TestCreateUserNilInput(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	e := newEnv(t)
	ctx := context.Background()

	resp := e.users.Create(ctx, nil)
	assert.Equal(400, resp.StatusCode)

	all, err := e.store.ListUsers(ctx)
	assert.Nil(err)
	assert.Empty(all)
}

func TestCreateUserStampsCreatedDate(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	e := newEnv(t)
	ctx := context.Background()

	user := &db.User{UserName: "ana", Email: "ana@example.com"}
	resp := e.users.Create(ctx, user)
	assert.Equal(200, resp.StatusCode)
	assert.Equal(1, resp.Data)
	assert.False(user.CreatedDate.IsZero())

	got := e.users.GetByID(ctx, user.ID)
	assert.Equal(200, got.StatusCode)
	assert.NotNil(got.Data)
	assert.Equal("ana", got.Data.UserName)
}

func TestGetUserByIDAbsentIsSuccess(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	e := newEnv(t)

	resp := e.users.GetByID(context.Background(), 404)
	assert.Equal(200, resp.StatusCode)
	assert.Nil(resp.Data)
}

// Pins the inherited asymmetry: unlike projects and tasks, updating a user
// that does not exist reports success and materializes the row.
func TestUpdateMissingUserStillSucceeds(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	e := newEnv(t)
	ctx := context.Background()

	resp := e.users.Update(ctx, &db.User{ID: 77, UserName: "ghost"})
	assert.Equal(200, resp.StatusCode)

	got := e.users.GetByID(ctx, 77)
	assert.NotNil(got.Data)
	assert.Equal("ghost", got.Data.UserName)
}

func TestDeleteUser(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	e := newEnv(t)
	ctx := context.Background()

	user := &db.User{UserName: "ana"}
	assert.Equal(200, e.users.Create(ctx, user).StatusCode)

	assert.Equal(200, e.users.Delete(ctx, user.ID).StatusCode)
	assert.Equal(400, e.users.Delete(ctx, user.ID).StatusCode)
}

func TestFilterUsersCaseSensitive(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	e := newEnv(t)
	ctx := context.Background()

	assert.Equal(200, e.users.Create(ctx, &db.User{UserName: "u1", Name: "Ana Martin"}).StatusCode)
	assert.Equal(200, e.users.Create(ctx, &db.User{UserName: "u2", Name: "Brian Cole"}).StatusCode)

	resp := e.users.Filter(ctx, "Ana")
	assert.Equal(200, resp.StatusCode)
	assert.Len(resp.Data, 1)
	assert.Equal("Ana Martin", resp.Data[0].Name)

	assert.Empty(e.users.Filter(ctx, "ana").Data)
	assert.Len(e.users.Filter(ctx, "").Data, 2)
}

func TestLogin(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	e := newEnv(t)
	ctx := context.Background()

	assert.Equal(200, e.users.Create(ctx, &db.User{UserName: "ana", Password: "hunter2"}).StatusCode)

	okResp := e.users.Login(ctx, "ana", "hunter2")
	assert.Equal(200, okResp.StatusCode)
	assert.NotNil(okResp.Data)
	assert.Equal("ana", okResp.Data.UserName)

	wrongPassword := e.users.Login(ctx, "ana", "hunter3")
	assert.Equal(500, wrongPassword.StatusCode)
	assert.Nil(wrongPassword.Data)

	unknownUser := e.users.Login(ctx, "bob", "hunter2")
	assert.Equal(500, unknownUser.StatusCode)

	// the failure never reveals which field was wrong
	assert.Equal(wrongPassword.Message, unknownUser.Message)
	assert.Equal(wrongPassword.StatusCode, unknownUser.StatusCode)
}

func TestGetTasksByUserStatusFilter(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	e := newEnv(t)
	ctx := context.Background()

	assert.Equal(200, e.tasks.Create(ctx, &db.Task{Name: "a", UserID: 10, Status: db.StatusDoing}).StatusCode)
	assert.Equal(200, e.tasks.Create(ctx, &db.Task{Name: "b", UserID: 10, Status: db.StatusDone}).StatusCode)
	assert.Equal(200, e.tasks.Create(ctx, &db.Task{Name: "c", UserID: 11, Status: db.StatusDoing}).StatusCode)

	all := e.users.GetTasksByUser(ctx, 10, 0)
	assert.Equal(200, all.StatusCode)
	assert.Len(all.Data, 2)

	doing := e.users.GetTasksByUser(ctx, 10, db.StatusDoing)
	assert.Len(doing.Data, 1)
	assert.Equal("a", doing.Data[0].Name)
}

func TestForgotPassword(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	e := newEnv(t)
	ctx := context.Background()

	user := &db.User{UserName: "ana", Password: "hunter2", Email: "ana@example.com"}
	assert.Equal(200, e.users.Create(ctx, user).StatusCode)

	miss := e.users.ForgotPassword(ctx, "ana", "wrong@example.com")
	assert.Equal(400, miss.StatusCode)
	assert.Equal("user not exist", miss.Message)

	hit := e.users.ForgotPassword(ctx, "ana", "ana@example.com")
	assert.Equal(200, hit.StatusCode)

	e.drain()
	sent := e.sender.Sent()
	assert.Len(sent, 1)
	assert.Equal("ana@example.com", sent[0].To)
	assert.Contains(sent[0].HTML, "hunter2")
	assert.Contains(sent[0].HTML, "ana")
}
