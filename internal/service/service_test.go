package service_test

import (
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"taskhub/internal/db"
	"taskhub/internal/mailer"
	"taskhub/internal/service"
)

// captureSender records every email the dispatcher delivers. Safe for use
// from the dispatcher goroutine.
type captureSender struct {
	mu     sync.Mutex
	emails []mailer.Email
	fail   bool
}

func (c *captureSender) Send(e mailer.Email) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fail {
		return errors.New("transport down")
	}
	c.emails = append(c.emails, e)
	return nil
}

func (c *captureSender) Sent() []mailer.Email {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]mailer.Email(nil), c.emails...)
}

type env struct {
	store      *db.Store
	sender     *captureSender
	dispatcher *mailer.Dispatcher
	users      *service.UserService
	projects   *service.ProjectService
	tasks      *service.TaskService
}

func newEnv(t *testing.T) *env {
	t.Helper()

	store, err := db.Open(filepath.Join(t.TempDir(), "test.sqlite"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	sender := &captureSender{}
	dispatcher := mailer.NewDispatcher(sender, "TaskHub <taskhub@resend.dev>", zerolog.Nop())
	t.Cleanup(dispatcher.Close)

	return &env{
		store:      store,
		sender:     sender,
		dispatcher: dispatcher,
		users:      service.NewUserService(store, dispatcher, zerolog.Nop()),
		projects:   service.NewProjectService(store, zerolog.Nop()),
		tasks:      service.NewTaskService(store, dispatcher, "http://localhost:8080", zerolog.Nop()),
	}
}

// drain waits for every queued email to be handed to the sender.
func (e *env) drain() {
	e.dispatcher.Close()
}
