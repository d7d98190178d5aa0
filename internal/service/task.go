package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"taskhub/internal/db"
	"taskhub/internal/mailer"
)

// TaskService owns task CRUD and the filtered task views. Every create and
// update hands exactly one notification for the assignee to the dispatcher;
// delivery is best effort and never affects the returned envelope.
type TaskService struct {
	store      *db.Store
	dispatcher *mailer.Dispatcher
	baseURL    string
	log        zerolog.Logger
}

func NewTaskService(store *db.Store, dispatcher *mailer.Dispatcher, baseURL string, log zerolog.Logger) *TaskService {
	return &TaskService{store: store, dispatcher: dispatcher, baseURL: baseURL, log: log}
}

func (s *TaskService) Create(ctx context.Context, task *db.Task) Response[int] {
	if task == nil {
		return fail[int](400, msgInvalidInput)
	}

	if err := s.store.CreateTask(ctx, task); err != nil {
		s.log.Error().Err(err).Msg("create task")
		return failErr[int](err)
	}

	s.notifyAssignee(ctx, task)

	return ok(1, msgSuccess)
}

func (s *TaskService) Update(ctx context.Context, task *db.Task) Response[int] {
	if task == nil {
		return fail[int](400, msgInvalidInput)
	}

	existing, err := s.store.GetTaskByID(ctx, task.ID)
	if err != nil {
		s.log.Error().Err(err).Int("id", task.ID).Msg("update task")
		return failErr[int](err)
	}
	if existing == nil {
		return fail[int](400, msgNotFound)
	}

	if err := s.store.SaveTask(ctx, task); err != nil {
		s.log.Error().Err(err).Int("id", task.ID).Msg("update task")
		return failErr[int](err)
	}

	s.notifyAssignee(ctx, task)

	return ok(1, msgSuccess)
}

func (s *TaskService) GetByID(ctx context.Context, id int) Response[*db.Task] {
	task, err := s.store.GetTaskByID(ctx, id)
	if err != nil {
		s.log.Error().Err(err).Int("id", id).Msg("get task")
		return failErr[*db.Task](err)
	}
	// Absence is not an error here: 200 with null data.
	return ok(task, msgSuccess)
}

func (s *TaskService) GetAll(ctx context.Context) Response[[]TaskView] {
	tasks, err := s.store.ListTasks(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("list tasks")
		return failErr[[]TaskView](err)
	}
	return ok(toTaskViews(tasks), msgSuccess)
}

// Filter returns tasks whose name or code contains the given text.
// Matching is case-sensitive and runs over the full loaded set.
func (s *TaskService) Filter(ctx context.Context, text string) Response[[]TaskView] {
	tasks, err := s.store.ListTasks(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("filter tasks")
		return failErr[[]TaskView](err)
	}

	if text != "" {
		matched := tasks[:0]
		for _, t := range tasks {
			if strings.Contains(t.Name, text) || strings.Contains(t.Code, text) {
				matched = append(matched, t)
			}
		}
		tasks = matched
	}

	return ok(toTaskViews(tasks), msgSuccess)
}

// FilterTasks AND-combines the given criteria over the full loaded set.
// Combining criteria always narrows the result, never widens it.
func (s *TaskService) FilterTasks(ctx context.Context, filter TaskFilter) Response[[]TaskView] {
	tasks, err := s.store.ListTasks(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("filter tasks")
		return failErr[[]TaskView](err)
	}

	matched := make([]db.Task, 0, len(tasks))
	for _, t := range tasks {
		if filter.ProjectID > 0 && t.ProjectID != filter.ProjectID {
			continue
		}
		if filter.UserID > 0 && t.UserID != filter.UserID {
			continue
		}
		if filter.Status > 0 && t.Status != filter.Status {
			continue
		}
		if filter.StartDate != nil && filter.EndDate != nil {
			if t.StartDate.After(*filter.StartDate) || t.EndDate.Before(*filter.EndDate) {
				continue
			}
		}
		matched = append(matched, t)
	}

	return ok(toTaskViews(matched), msgFilterSuccess)
}

// DueToday lists tasks whose end date falls on the current day, shifted
// back one hour so late-evening runs still pick up the closing day.
func (s *TaskService) DueToday(ctx context.Context) Response[[]db.Task] {
	tasks, err := s.store.ListTasks(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("list due tasks")
		return failErr[[]db.Task](err)
	}

	day := time.Now().Add(-time.Hour).Format(viewDateFormat)
	due := make([]db.Task, 0)
	for _, t := range tasks {
		if t.EndDate.Format(viewDateFormat) == day {
			due = append(due, t)
		}
	}

	return ok(due, msgSuccess)
}

func (s *TaskService) notifyAssignee(ctx context.Context, task *db.Task) {
	user, err := s.store.GetUserByID(ctx, task.UserID)
	if err != nil || user == nil {
		s.log.Warn().Err(err).Int("user_id", task.UserID).Msg("skipping notification, assignee not found")
		return
	}

	link := fmt.Sprintf("%s/#/updatetask/%d", s.baseURL, task.ID)
	email := mailer.TaskNotification(task.Name, link, db.StatusLabel(task.Status), task.StartDate, task.EndDate, time.Now())
	email.To = user.Email
	s.dispatcher.Enqueue(email)
}
