package moco

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/sommalia/moco-wrapper-sub001/pkg/moco/models"
)

// ProjectTaskService manages the tasks of a project.
type ProjectTaskService struct {
	client *Client
}

// ProjectTaskInput is the payload of Create and Update. Nil amounts are
// left untouched.
type ProjectTaskInput struct {
	Name       string
	Billable   *bool
	Active     *bool
	Budget     *float64
	HourlyRate *float64
}

func (t ProjectTaskInput) params() Params {
	return Params{}.
		Set("name", t.Name).
		Set("billable", t.Billable).
		Set("active", t.Active).
		Set("budget", t.Budget).
		Set("hourly_rate", t.HourlyRate)
}

// List returns one page of tasks of a project.
func (s *ProjectTaskService) List(ctx context.Context, projectID int, opts ListOptions) (*Listing[models.ProjectTask], error) {
	q, err := listQuery(opts)
	if err != nil {
		return nil, err
	}
	return getListing[models.ProjectTask](ctx, s.client, "project_task_getlist", byProject(projectID), q)
}

// Get returns a single task.
func (s *ProjectTaskService) Get(ctx context.Context, projectID, id int) (*models.ProjectTask, error) {
	return getObject[models.ProjectTask](ctx, s.client, "project_task_get", byProjectAndID(projectID, id), nil)
}

// Create adds a task to a project.
func (s *ProjectTaskService) Create(ctx context.Context, projectID int, t ProjectTaskInput) (*models.ProjectTask, error) {
	if err := validateInput("task", &t,
		validation.Field(&t.Name, validation.Required),
		validation.Field(&t.Budget, validation.Min(0.0)),
		validation.Field(&t.HourlyRate, validation.Min(0.0)),
	); err != nil {
		return nil, err
	}
	return sendObject[models.ProjectTask](ctx, s.client, "project_task_create", byProject(projectID), t.params())
}

// Update changes a task.
func (s *ProjectTaskService) Update(ctx context.Context, projectID, id int, t ProjectTaskInput) (*models.ProjectTask, error) {
	return sendObject[models.ProjectTask](ctx, s.client, "project_task_update", byProjectAndID(projectID, id), t.params())
}

// Delete removes a task without activities.
func (s *ProjectTaskService) Delete(ctx context.Context, projectID, id int) error {
	return sendEmpty(ctx, s.client, "project_task_delete", byProjectAndID(projectID, id), nil)
}
