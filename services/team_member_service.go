package services

import (
	"context"
	"fmt"

	"github.com/emrekav/ajansly/models"
	"github.com/emrekav/ajansly/pkg"
	"github.com/emrekav/ajansly/repository"
	"github.com/emrekav/ajansly/ws"
)

// TeamMemberService, ekip üyeleri iş mantığı interface'i.
type TeamMemberService interface {
	GetAll(ctx context.Context) ([]models.TeamMember, error)
	GetByID(ctx context.Context, id string) (*models.TeamMember, error)
	Create(ctx context.Context, req *models.CreateTeamMemberRequest, imageURL *string) (*models.TeamMember, error)
	Update(ctx context.Context, id string, req *models.UpdateTeamMemberRequest, imageURL *string) (*models.TeamMember, error)
	Delete(ctx context.Context, id string) error
}

type teamMemberService struct {
	memberRepo repository.TeamMemberRepository
	hub        ws.EventPublisher
}

func NewTeamMemberService(memberRepo repository.TeamMemberRepository, hub ws.EventPublisher) TeamMemberService {
	return &teamMemberService{
		memberRepo: memberRepo,
		hub:        hub,
	}
}

func (s *teamMemberService) GetAll(ctx context.Context) ([]models.TeamMember, error) {
	return s.memberRepo.GetAll(ctx)
}

func (s *teamMemberService) GetByID(ctx context.Context, id string) (*models.TeamMember, error) {
	return s.memberRepo.GetByID(ctx, id)
}

func (s *teamMemberService) Create(ctx context.Context, req *models.CreateTeamMemberRequest, imageURL *string) (*models.TeamMember, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	member := &models.TeamMember{
		Name:     req.Name,
		Title:    req.Title,
		ImageURL: imageURL,
	}
	if req.Bio != "" {
		member.Bio = &req.Bio
	}
	if req.LinkedIn != "" {
		member.LinkedIn = &req.LinkedIn
	}

	if err := s.memberRepo.Create(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to create team member: %w", err)
	}

	s.hub.BroadcastToAll(ws.Event{
		Op:   ws.ResourceOp("team", ws.ActionCreate),
		Data: member,
	})

	return member, nil
}

func (s *teamMemberService) Update(ctx context.Context, id string, req *models.UpdateTeamMemberRequest, imageURL *string) (*models.TeamMember, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	member, err := s.memberRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		member.Name = *req.Name
	}
	if req.Title != nil {
		member.Title = *req.Title
	}
	if req.Bio != nil {
		if *req.Bio == "" {
			member.Bio = nil
		} else {
			member.Bio = req.Bio
		}
	}
	if req.LinkedIn != nil {
		if *req.LinkedIn == "" {
			member.LinkedIn = nil
		} else {
			member.LinkedIn = req.LinkedIn
		}
	}
	if imageURL != nil {
		member.ImageURL = imageURL
	}

	if err := s.memberRepo.Update(ctx, member); err != nil {
		return nil, err
	}

	s.hub.BroadcastToAll(ws.Event{
		Op:   ws.ResourceOp("team", ws.ActionUpdate),
		Data: member,
	})

	return member, nil
}

func (s *teamMemberService) Delete(ctx context.Context, id string) error {
	if err := s.memberRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.hub.BroadcastToAll(ws.Event{
		Op:   ws.ResourceOp("team", ws.ActionDelete),
		Data: ws.DeleteData{ID: id},
	})

	return nil
}
