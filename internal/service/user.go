package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"taskhub/internal/db"
	"taskhub/internal/mailer"
)

type UserService struct {
	store      *db.Store
	dispatcher *mailer.Dispatcher
	log        zerolog.Logger
}

func NewUserService(store *db.Store, dispatcher *mailer.Dispatcher, log zerolog.Logger) *UserService {
	return &UserService{store: store, dispatcher: dispatcher, log: log}
}

func (s *UserService) Create(ctx context.Context, user *db.User) Response[int] {
	if user == nil {
		return fail[int](400, msgInvalidInput)
	}

	user.CreatedDate = time.Now()
	if err := s.store.CreateUser(ctx, user); err != nil {
		s.log.Error().Err(err).Msg("create user")
		return failErr[int](err)
	}

	return ok(1, msgSuccess)
}

// Update overwrites the row unconditionally. Unlike projects and tasks
// there is no existence check first; saving an unseen id inserts it. That
// asymmetry is inherited behavior and pinned by tests.
func (s *UserService) Update(ctx context.Context, user *db.User) Response[int] {
	if user == nil {
		return fail[int](400, msgInvalidInput)
	}

	if err := s.store.SaveUser(ctx, user); err != nil {
		s.log.Error().Err(err).Int("id", user.ID).Msg("update user")
		return failErr[int](err)
	}

	return ok(1, msgSuccess)
}

func (s *UserService) Delete(ctx context.Context, id int) Response[int] {
	if err := s.store.DeleteUser(ctx, id); err != nil {
		s.log.Error().Err(err).Int("id", id).Msg("delete user")
		return failErr[int](err)
	}
	return ok(1, msgSuccess)
}

func (s *UserService) GetByID(ctx context.Context, id int) Response[*db.User] {
	user, err := s.store.GetUserByID(ctx, id)
	if err != nil {
		s.log.Error().Err(err).Int("id", id).Msg("get user")
		return failErr[*db.User](err)
	}
	// Absence is not an error here: 200 with null data.
	return ok(user, msgSuccess)
}

func (s *UserService) GetAll(ctx context.Context) Response[[]db.User] {
	users, err := s.store.ListUsers(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("list users")
		return failErr[[]db.User](err)
	}
	return ok(users, msgSuccess)
}

// Filter returns users whose name contains the given text, case-sensitive.
func (s *UserService) Filter(ctx context.Context, text string) Response[[]db.User] {
	users, err := s.store.ListUsers(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("filter users")
		return failErr[[]db.User](err)
	}

	if text != "" {
		matched := users[:0]
		for _, u := range users {
			if strings.Contains(u.Name, text) {
				matched = append(matched, u)
			}
		}
		users = matched
	}

	return ok(users, msgSuccess)
}

// Login matches username and password exactly. A mismatch of either field
// yields the same generic message, so the response never reveals which one
// was wrong. The 500 on mismatch is inherited wire behavior.
func (s *UserService) Login(ctx context.Context, username, password string) Response[*db.User] {
	user, err := s.store.FindUserByCredentials(ctx, username, password)
	if err != nil {
		s.log.Error().Err(err).Msg("login")
		return failErr[*db.User](err)
	}
	if user == nil {
		return fail[*db.User](500, "wrong username or password")
	}

	return ok(user, msgSuccess)
}

// GetTasksByUser lists the user's tasks; a positive status narrows the
// result to that status.
func (s *UserService) GetTasksByUser(ctx context.Context, userID, status int) Response[[]TaskView] {
	tasks, err := s.store.ListTasksByUser(ctx, userID)
	if err != nil {
		s.log.Error().Err(err).Int("user_id", userID).Msg("list tasks by user")
		return failErr[[]TaskView](err)
	}

	if status > 0 {
		matched := tasks[:0]
		for _, t := range tasks {
			if t.Status == status {
				matched = append(matched, t)
			}
		}
		tasks = matched
	}

	return ok(toTaskViews(tasks), msgFilterSuccess)
}

// ForgotPassword mails the stored credentials back to the user when the
// username and email both match. The mail embeds the plaintext password;
// see the design notes for why this inherited contract stands.
func (s *UserService) ForgotPassword(ctx context.Context, username, email string) Response[int] {
	user, err := s.store.FindUserByNameAndEmail(ctx, username, email)
	if err != nil {
		s.log.Error().Err(err).Msg("forgot password")
		return failErr[int](err)
	}
	if user == nil {
		return fail[int](400, "user not exist")
	}

	recovery := mailer.AccountRecovery(user.UserName, user.Password)
	recovery.To = email
	s.dispatcher.Enqueue(recovery)

	return ok(0, "forgot password success")
}
