package services

import (
	"context"
	"fmt"

	"github.com/emrekav/ajansly/models"
	"github.com/emrekav/ajansly/pkg"
	"github.com/emrekav/ajansly/repository"
	"github.com/emrekav/ajansly/ws"
)

// ProjectService, portfolyo projeleri iş mantığı interface'i.
type ProjectService interface {
	GetAll(ctx context.Context) ([]models.Project, error)
	GetByID(ctx context.Context, id string) (*models.Project, error)
	Create(ctx context.Context, req *models.CreateProjectRequest, imageURL *string) (*models.Project, error)
	Update(ctx context.Context, id string, req *models.UpdateProjectRequest, imageURL *string) (*models.Project, error)
	Delete(ctx context.Context, id string) error
}

type projectService struct {
	projectRepo repository.ProjectRepository
	hub         ws.EventPublisher
}

func NewProjectService(projectRepo repository.ProjectRepository, hub ws.EventPublisher) ProjectService {
	return &projectService{
		projectRepo: projectRepo,
		hub:         hub,
	}
}

func (s *projectService) GetAll(ctx context.Context) ([]models.Project, error) {
	return s.projectRepo.GetAll(ctx)
}

func (s *projectService) GetByID(ctx context.Context, id string) (*models.Project, error) {
	return s.projectRepo.GetByID(ctx, id)
}

func (s *projectService) Create(ctx context.Context, req *models.CreateProjectRequest, imageURL *string) (*models.Project, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	project := &models.Project{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		TechStack:   req.TechStack,
		ImageURL:    imageURL,
	}
	if req.ProjectURL != "" {
		project.ProjectURL = &req.ProjectURL
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	s.hub.BroadcastToAll(ws.Event{
		Op:   ws.ResourceOp("projects", ws.ActionCreate),
		Data: project,
	})

	return project, nil
}

func (s *projectService) Update(ctx context.Context, id string, req *models.UpdateProjectRequest, imageURL *string) (*models.Project, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		project.Title = *req.Title
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.Category != nil {
		project.Category = *req.Category
	}
	if req.TechStack != nil {
		project.TechStack = *req.TechStack
	}
	if req.ProjectURL != nil {
		if *req.ProjectURL == "" {
			project.ProjectURL = nil
		} else {
			project.ProjectURL = req.ProjectURL
		}
	}
	if imageURL != nil {
		project.ImageURL = imageURL
	}

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}

	s.hub.BroadcastToAll(ws.Event{
		Op:   ws.ResourceOp("projects", ws.ActionUpdate),
		Data: project,
	})

	return project, nil
}

func (s *projectService) Delete(ctx context.Context, id string) error {
	if err := s.projectRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.hub.BroadcastToAll(ws.Event{
		Op:   ws.ResourceOp("projects", ws.ActionDelete),
		Data: ws.DeleteData{ID: id},
	})

	return nil
}
