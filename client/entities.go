package client

import (
	"context"

	"github.com/emrekav/ajansly/models"
)

// Bu dosya, her entity için hazır bağlanmış controller kurucularını toplar.
// Path ve insert policy burada sabitlenir; çağıranın ezbere bilmesi gerekmez.
//
// Insert policy server'daki sıralamayı takip eder:
//   - partners, projects, services, team: created_at ASC -> Append
//   - testimonials, blog, careers, messages: created_at DESC -> Prepend

// Controllers, admin panelinin ihtiyaç duyduğu tüm controller'ları taşır.
type Controllers struct {
	Partners     *Controller[models.Partner]
	Projects     *Controller[models.Project]
	Services     *Controller[models.Service]
	Team         *Controller[models.TeamMember]
	Testimonials *Controller[models.Testimonial]
	Blog         *Controller[models.BlogPost]
	Careers      *Controller[models.Career]
	Messages     *Controller[models.ContactMessage]
}

// NewControllers, tüm entity controller'larını tek client üzerine kurar.
// opts her controller'a aynen uygulanır (notifier, persister).
func NewControllers(c *Client, notifier Notifier, persist Persister) *Controllers {
	return &Controllers{
		Partners:     NewPartnerController(c, notifier, persist),
		Projects:     NewProjectController(c, notifier, persist),
		Services:     NewServiceController(c, notifier, persist),
		Team:         NewTeamController(c, notifier, persist),
		Testimonials: NewTestimonialController(c, notifier, persist),
		Blog:         NewBlogController(c, notifier, persist),
		Careers:      NewCareerController(c, notifier, persist),
		Messages:     NewMessageController(c, notifier, persist),
	}
}

func buildController[T any](c *Client, path string, policy InsertPolicy, id func(T) string, notifier Notifier, persist Persister) *Controller[T] {
	opts := []ControllerOption[T]{}
	if notifier != nil {
		opts = append(opts, WithNotifier[T](notifier))
	}
	if persist != nil {
		opts = append(opts, WithPersister[T](persist))
	}
	return NewController(c, NewStore(id), path, policy, opts...)
}

// NewPartnerController, /api/partners'a bağlı controller döner.
func NewPartnerController(c *Client, notifier Notifier, persist Persister) *Controller[models.Partner] {
	return buildController(c, "/api/partners", InsertAppend,
		func(p models.Partner) string { return p.ID }, notifier, persist)
}

// NewProjectController, /api/projects'e bağlı controller döner.
func NewProjectController(c *Client, notifier Notifier, persist Persister) *Controller[models.Project] {
	return buildController(c, "/api/projects", InsertAppend,
		func(p models.Project) string { return p.ID }, notifier, persist)
}

// NewServiceController, /api/services'e bağlı controller döner.
func NewServiceController(c *Client, notifier Notifier, persist Persister) *Controller[models.Service] {
	return buildController(c, "/api/services", InsertAppend,
		func(s models.Service) string { return s.ID }, notifier, persist)
}

// NewTeamController, /api/team'e bağlı controller döner.
func NewTeamController(c *Client, notifier Notifier, persist Persister) *Controller[models.TeamMember] {
	return buildController(c, "/api/team", InsertAppend,
		func(m models.TeamMember) string { return m.ID }, notifier, persist)
}

// NewTestimonialController, /api/testimonials'a bağlı controller döner.
func NewTestimonialController(c *Client, notifier Notifier, persist Persister) *Controller[models.Testimonial] {
	return buildController(c, "/api/testimonials", InsertPrepend,
		func(t models.Testimonial) string { return t.ID }, notifier, persist)
}

// NewBlogController, /api/blog/all'a (admin listesi) bağlı controller döner.
// Public blog listesi ayrı endpoint'tir; admin paneli taslakları da görür.
func NewBlogController(c *Client, notifier Notifier, persist Persister) *Controller[models.BlogPost] {
	ctrl := buildController(c, "/api/blog", InsertPrepend,
		func(b models.BlogPost) string { return b.ID }, notifier, persist)
	return ctrl
}

// NewCareerController, /api/careers'a bağlı controller döner.
func NewCareerController(c *Client, notifier Notifier, persist Persister) *Controller[models.Career] {
	return buildController(c, "/api/careers", InsertPrepend,
		func(cr models.Career) string { return cr.ID }, notifier, persist)
}

// NewMessageController, /api/messages'a bağlı controller döner.
// Mesajlar admin panelinden create edilmez ama Delete/MarkRead kullanılır.
func NewMessageController(c *Client, notifier Notifier, persist Persister) *Controller[models.ContactMessage] {
	return buildController(c, "/api/messages", InsertPrepend,
		func(m models.ContactMessage) string { return m.ID }, notifier, persist)
}

// FetchAllBlog, admin blog listesini (/api/blog/all) çeker.
// Controller'ın basePath'i CRUD için /api/blog kalır; sadece liste
// endpoint'i farklı olduğundan ayrı bir yardımcı gerekir.
func FetchAllBlog(ctx context.Context, c *Client, ctrl *Controller[models.BlogPost]) error {
	ctrl.Store().SetLoading(true)
	defer ctrl.Store().SetLoading(false)

	var posts []models.BlogPost
	if err := c.Get(ctx, "/api/blog/all", &posts); err != nil {
		ctrl.Store().SetAll(nil)
		ctrl.Store().SetError(err)
		return err
	}
	ctrl.Store().SetAll(posts)
	ctrl.Store().SetError(nil)
	return nil
}
