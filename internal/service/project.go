package service

import (
	"context"

	"github.com/rs/zerolog"

	"taskhub/internal/db"
)

type ProjectService struct {
	store *db.Store
	log   zerolog.Logger
}

func NewProjectService(store *db.Store, log zerolog.Logger) *ProjectService {
	return &ProjectService{store: store, log: log}
}

func (s *ProjectService) Create(ctx context.Context, project *db.Project) Response[int] {
	if project == nil {
		return fail[int](400, msgInvalidInput)
	}

	if err := s.store.CreateProject(ctx, project); err != nil {
		s.log.Error().Err(err).Msg("create project")
		return failErr[int](err)
	}

	return ok(1, msgSuccess)
}

func (s *ProjectService) Update(ctx context.Context, project *db.Project) Response[int] {
	if project == nil {
		return fail[int](400, msgInvalidInput)
	}

	existing, err := s.store.GetProjectByID(ctx, project.ID)
	if err != nil {
		s.log.Error().Err(err).Int("id", project.ID).Msg("update project")
		return failErr[int](err)
	}
	if existing == nil {
		return fail[int](400, msgNotFound)
	}

	if err := s.store.SaveProject(ctx, project); err != nil {
		s.log.Error().Err(err).Int("id", project.ID).Msg("update project")
		return failErr[int](err)
	}

	return ok(1, msgSuccess)
}

func (s *ProjectService) GetByID(ctx context.Context, id int) Response[*db.Project] {
	project, err := s.store.GetProjectByID(ctx, id)
	if err != nil {
		s.log.Error().Err(err).Int("id", id).Msg("get project")
		return failErr[*db.Project](err)
	}
	// Absence is not an error here: 200 with null data.
	return ok(project, msgSuccess)
}

func (s *ProjectService) GetAll(ctx context.Context) Response[[]db.Project] {
	projects, err := s.store.ListProjects(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("list projects")
		return failErr[[]db.Project](err)
	}
	return ok(projects, msgSuccess)
}

// GetTasks lists every task belonging to the project.
func (s *ProjectService) GetTasks(ctx context.Context, projectID int) Response[[]db.Task] {
	tasks, err := s.store.ListTasksByProject(ctx, projectID)
	if err != nil {
		s.log.Error().Err(err).Int("project_id", projectID).Msg("list tasks by project")
		return failErr[[]db.Task](err)
	}
	return ok(tasks, msgSuccess)
}
