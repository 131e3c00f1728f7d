package services

import (
	"context"
	"fmt"
	"time"

	"github.com/emrekav/ajansly/pkg/cache"
	"github.com/emrekav/ajansly/repository"
)

// SiteStats, landing page'deki sayaç bölümünü besleyen özet rakamlar.
type SiteStats struct {
	Projects     int `json:"projects"`
	Partners     int `json:"partners"`
	TeamMembers  int `json:"team_members"`
	Testimonials int `json:"testimonials"`
}

// AdminStats, admin dashboard'daki özet kutucukları.
type AdminStats struct {
	SiteStats
	Services       int `json:"services"`
	BlogPosts      int `json:"blog_posts"`
	Careers        int `json:"careers"`
	Messages       int `json:"messages"`
	UnreadMessages int `json:"unread_messages"`
}

// StatsService, sayaçların iş mantığı interface'i.
type StatsService interface {
	GetSiteStats(ctx context.Context) (*SiteStats, error)
	GetAdminStats(ctx context.Context) (*AdminStats, error)
}

// statsRepos, sayaçların okunduğu repository'lerin toplandığı bundle.
// Constructor parametre listesini 8 argümana şişirmemek için struct alınır.
type StatsRepos struct {
	Partners     repository.PartnerRepository
	Projects     repository.ProjectRepository
	Services     repository.ServiceRepository
	TeamMembers  repository.TeamMemberRepository
	Testimonials repository.TestimonialRepository
	BlogPosts    repository.BlogPostRepository
	Careers      repository.CareerRepository
	Messages     repository.ContactMessageRepository
}

type statsService struct {
	repos StatsRepos

	// siteCache: public endpoint her sayfa yüklemesinde çağrılır,
	// rakamlar saniyelik tazelik gerektirmez. 1 dakikalık TTL ile
	// DB'ye giden COUNT sorguları sınırlanır. Admin stats cache'lenmez —
	// panel güncel rakam görmeli.
	siteCache *cache.TTLCache[string, SiteStats]
}

const siteStatsKey = "site"

// NewStatsService, constructor.
func NewStatsService(repos StatsRepos) StatsService {
	return &statsService{
		repos:     repos,
		siteCache: cache.New[string, SiteStats](time.Minute, 5*time.Minute),
	}
}

func (s *statsService) GetSiteStats(ctx context.Context) (*SiteStats, error) {
	if cached, ok := s.siteCache.Get(siteStatsKey); ok {
		return &cached, nil
	}

	stats, err := s.collectSiteStats(ctx)
	if err != nil {
		return nil, err
	}

	s.siteCache.Set(siteStatsKey, *stats)
	return stats, nil
}

func (s *statsService) GetAdminStats(ctx context.Context) (*AdminStats, error) {
	site, err := s.collectSiteStats(ctx)
	if err != nil {
		return nil, err
	}

	stats := &AdminStats{SiteStats: *site}

	if stats.Services, err = s.repos.Services.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count services: %w", err)
	}
	if stats.BlogPosts, err = s.repos.BlogPosts.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count blog posts: %w", err)
	}
	if stats.Careers, err = s.repos.Careers.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count careers: %w", err)
	}
	if stats.Messages, err = s.repos.Messages.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count messages: %w", err)
	}
	if stats.UnreadMessages, err = s.repos.Messages.CountUnread(ctx); err != nil {
		return nil, fmt.Errorf("failed to count unread messages: %w", err)
	}

	return stats, nil
}

func (s *statsService) collectSiteStats(ctx context.Context) (*SiteStats, error) {
	stats := &SiteStats{}
	var err error

	if stats.Projects, err = s.repos.Projects.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count projects: %w", err)
	}
	if stats.Partners, err = s.repos.Partners.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count partners: %w", err)
	}
	if stats.TeamMembers, err = s.repos.TeamMembers.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count team members: %w", err)
	}
	if stats.Testimonials, err = s.repos.Testimonials.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count testimonials: %w", err)
	}

	return stats, nil
}
