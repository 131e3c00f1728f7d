// Package main, ajansly backend uygulamasının giriş noktasıdır.
//
// Bu dosyanın görevi — Dependency Injection "wire-up":
//  1. Config'i yükle
//  2. Database'i başlat (embedded migration'lar koşar)
//  3. Upload dizinini oluştur
//  4. Repository'leri oluştur (DB bağlantısı ile)
//  5. WebSocket Hub'ı başlat
//  6. Service'leri oluştur (repository'ler + hub ile)
//  7. Bootstrap admin kullanıcısını garanti et
//  8. Handler'ları oluştur (service'ler ile)
//  9. Middleware'ları oluştur (service + repo'lar ile)
//
// 10. HTTP router'ı kur, route'ları bağla
// 11. CORS yapılandır
// 12. HTTP Server'ı başlat
// 13. Graceful shutdown
//
// Global değişken YOK — her şey bu fonksiyonda oluşturulup birbirine bağlanıyor.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/cors"

	"github.com/emrekav/ajansly/config"
	"github.com/emrekav/ajansly/database"
	"github.com/emrekav/ajansly/handlers"
	"github.com/emrekav/ajansly/middleware"
	"github.com/emrekav/ajansly/pkg/email"
	"github.com/emrekav/ajansly/pkg/ratelimit"
	"github.com/emrekav/ajansly/repository"
	"github.com/emrekav/ajansly/services"
	"github.com/emrekav/ajansly/ws"
)

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("[main] ajansly server starting...")

	// ─── 1. Config ───
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[main] failed to load config: %v", err)
	}
	log.Printf("[main] config loaded (port=%d)", cfg.Server.Port)

	// ─── 2. Database ───
	db, err := database.New(cfg.Database.Path, database.EmbeddedMigrations)
	if err != nil {
		log.Fatalf("[main] failed to initialize database: %v", err)
	}
	defer db.Close()

	// ─── 3. Upload Dizini ───
	if err := os.MkdirAll(cfg.Upload.Dir, 0755); err != nil {
		log.Fatalf("[main] failed to create upload directory: %v", err)
	}

	// ─── 4. Repository Layer ───
	userRepo := repository.NewSQLiteUserRepo(db.Conn)
	sessionRepo := repository.NewSQLiteSessionRepo(db.Conn)
	partnerRepo := repository.NewSQLitePartnerRepo(db.Conn)
	projectRepo := repository.NewSQLiteProjectRepo(db.Conn)
	serviceRepo := repository.NewSQLiteServiceRepo(db.Conn)
	teamMemberRepo := repository.NewSQLiteTeamMemberRepo(db.Conn)
	testimonialRepo := repository.NewSQLiteTestimonialRepo(db.Conn)
	blogPostRepo := repository.NewSQLiteBlogPostRepo(db.Conn)
	careerRepo := repository.NewSQLiteCareerRepo(db.Conn)
	messageRepo := repository.NewSQLiteContactMessageRepo(db.Conn)

	// ─── 5. WebSocket Hub ───
	//
	// Hub, admin panelinin canlı event feed'ini yöneten merkezi yapıdır.
	// `go hub.Run()` ayrı bir goroutine'de event loop başlatır.
	// Hub aynı zamanda EventPublisher interface'ini implement eder —
	// service'ler hub'a doğrudan bağımlı olmak yerine interface üzerinden erişir.
	hub := ws.NewHub()
	go hub.Run()

	// ─── 6. Email Sender ───
	var sender email.EmailSender
	if cfg.Email.ResendAPIKey != "" && cfg.Email.NotifyEmail != "" {
		sender = email.NewResendSender(cfg.Email.ResendAPIKey, cfg.Email.FromEmail, cfg.Email.NotifyEmail)
		log.Printf("[main] email notifications enabled (to=%s)", cfg.Email.NotifyEmail)
	} else {
		sender = email.NewNoopSender()
		log.Println("[main] email notifications disabled (no RESEND_API_KEY)")
	}

	// ─── 7. Service Layer ───
	authService := services.NewAuthService(
		userRepo,
		sessionRepo,
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)

	partnerService := services.NewPartnerService(partnerRepo, hub)
	projectService := services.NewProjectService(projectRepo, hub)
	serviceService := services.NewServiceService(serviceRepo, hub)
	teamMemberService := services.NewTeamMemberService(teamMemberRepo, hub)
	testimonialService := services.NewTestimonialService(testimonialRepo, hub)
	blogService := services.NewBlogService(blogPostRepo, hub)
	careerService := services.NewCareerService(careerRepo, hub)
	contactService := services.NewContactService(messageRepo, sender, hub)
	uploadService := services.NewUploadService(cfg.Upload.Dir, cfg.Upload.MaxSize)
	statsService := services.NewStatsService(services.StatsRepos{
		Partners:     partnerRepo,
		Projects:     projectRepo,
		Services:     serviceRepo,
		TeamMembers:  teamMemberRepo,
		Testimonials: testimonialRepo,
		BlogPosts:    blogPostRepo,
		Careers:      careerRepo,
		Messages:     messageRepo,
	})

	// ─── 8. Bootstrap Admin ───
	bootCtx, bootCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := authService.EnsureAdmin(bootCtx, cfg.Admin.Username, cfg.Admin.Password); err != nil {
		bootCancel()
		log.Fatalf("[main] failed to ensure admin user: %v", err)
	}
	bootCancel()

	// Süresi dolmuş session'ları açılışta temizle — tablo şişmesin
	cleanCtx, cleanCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := sessionRepo.DeleteExpired(cleanCtx); err != nil {
		log.Printf("[main] failed to clean expired sessions: %v", err)
	}
	cleanCancel()

	// ─── 9. Rate Limiters ───
	//
	// loginLimiter: brute-force koruması — IP başına 5 deneme / 15 dakika.
	// submitLimiter: iletişim formu spam koruması — IP başına 3 mesaj / 10 dakika.
	loginLimiter := ratelimit.New(5, 15*time.Minute)
	defer loginLimiter.Close()
	submitLimiter := ratelimit.New(3, 10*time.Minute)
	defer submitLimiter.Close()

	// ─── 10. Handler Layer ───
	authHandler := handlers.NewAuthHandler(authService, loginLimiter)
	partnerHandler := handlers.NewPartnerHandler(partnerService, uploadService, cfg.Upload.MaxSize)
	projectHandler := handlers.NewProjectHandler(projectService, uploadService, cfg.Upload.MaxSize)
	serviceHandler := handlers.NewServiceHandler(serviceService, uploadService, cfg.Upload.MaxSize)
	teamMemberHandler := handlers.NewTeamMemberHandler(teamMemberService, uploadService, cfg.Upload.MaxSize)
	testimonialHandler := handlers.NewTestimonialHandler(testimonialService, uploadService, cfg.Upload.MaxSize)
	blogHandler := handlers.NewBlogHandler(blogService, uploadService, cfg.Upload.MaxSize)
	careerHandler := handlers.NewCareerHandler(careerService)
	messageHandler := handlers.NewMessageHandler(contactService, submitLimiter)
	statsHandler := handlers.NewStatsHandler(statsService)
	wsHandler := ws.NewHandler(hub, authService, messageRepo)

	// ─── 11. Middleware ───
	authMiddleware := middleware.NewAuthMiddleware(authService, userRepo)
	admin := func(h http.HandlerFunc) http.Handler {
		return authMiddleware.Require(h)
	}

	// ─── 12. HTTP Router ───
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"status":"ok","service":"ajansly"}`)
	})

	// Auth — public endpoint'ler (token gerekmez, login rate limit'li)
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.HandleFunc("POST /api/auth/refresh", authHandler.Refresh)
	mux.HandleFunc("POST /api/auth/logout", authHandler.Logout)
	mux.Handle("GET /api/auth/me", admin(authHandler.Me))
	mux.Handle("POST /api/auth/change-password", admin(authHandler.ChangePassword))

	// Partners — listeleme herkese açık, CUD admin
	mux.HandleFunc("GET /api/partners", partnerHandler.List)
	mux.HandleFunc("GET /api/partners/{id}", partnerHandler.Get)
	mux.Handle("POST /api/partners", admin(partnerHandler.Create))
	mux.Handle("PUT /api/partners/{id}", admin(partnerHandler.Update))
	mux.Handle("DELETE /api/partners/{id}", admin(partnerHandler.Delete))

	// Projects
	mux.HandleFunc("GET /api/projects", projectHandler.List)
	mux.HandleFunc("GET /api/projects/{id}", projectHandler.Get)
	mux.Handle("POST /api/projects", admin(projectHandler.Create))
	mux.Handle("PUT /api/projects/{id}", admin(projectHandler.Update))
	mux.Handle("DELETE /api/projects/{id}", admin(projectHandler.Delete))

	// Services
	mux.HandleFunc("GET /api/services", serviceHandler.List)
	mux.HandleFunc("GET /api/services/{id}", serviceHandler.Get)
	mux.Handle("POST /api/services", admin(serviceHandler.Create))
	mux.Handle("PUT /api/services/{id}", admin(serviceHandler.Update))
	mux.Handle("DELETE /api/services/{id}", admin(serviceHandler.Delete))

	// Team
	mux.HandleFunc("GET /api/team", teamMemberHandler.List)
	mux.HandleFunc("GET /api/team/{id}", teamMemberHandler.Get)
	mux.Handle("POST /api/team", admin(teamMemberHandler.Create))
	mux.Handle("PUT /api/team/{id}", admin(teamMemberHandler.Update))
	mux.Handle("DELETE /api/team/{id}", admin(teamMemberHandler.Delete))

	// Testimonials
	mux.HandleFunc("GET /api/testimonials", testimonialHandler.List)
	mux.HandleFunc("GET /api/testimonials/{id}", testimonialHandler.Get)
	mux.Handle("POST /api/testimonials", admin(testimonialHandler.Create))
	mux.Handle("PUT /api/testimonials/{id}", admin(testimonialHandler.Update))
	mux.Handle("DELETE /api/testimonials/{id}", admin(testimonialHandler.Delete))

	// Blog — public liste yayınlanmışları döner, /all taslaklar dahil (admin).
	// Dikkat: literal path'ler ({slug}'dan önce) — Go 1.22 mux'ta spesifik
	// pattern kazanır, /api/blog/all "all" slug'ına düşmez.
	mux.HandleFunc("GET /api/blog", blogHandler.ListPublished)
	mux.Handle("GET /api/blog/all", admin(blogHandler.ListAll))
	mux.HandleFunc("GET /api/blog/{slug}", blogHandler.GetBySlug)
	mux.Handle("POST /api/blog", admin(blogHandler.Create))
	mux.Handle("PUT /api/blog/{id}", admin(blogHandler.Update))
	mux.Handle("DELETE /api/blog/{id}", admin(blogHandler.Delete))

	// Careers — public liste aktif ilanları döner, /all pasifler dahil (admin)
	mux.HandleFunc("GET /api/careers", careerHandler.ListActive)
	mux.Handle("GET /api/careers/all", admin(careerHandler.ListAll))
	mux.HandleFunc("GET /api/careers/{id}", careerHandler.Get)
	mux.Handle("POST /api/careers", admin(careerHandler.Create))
	mux.Handle("PUT /api/careers/{id}", admin(careerHandler.Update))
	mux.Handle("DELETE /api/careers/{id}", admin(careerHandler.Delete))

	// Contact messages — Submit herkese açık (rate limit'li), kalanı admin
	mux.HandleFunc("POST /api/messages", messageHandler.Submit)
	mux.Handle("GET /api/messages", admin(messageHandler.List))
	mux.Handle("GET /api/messages/{id}", admin(messageHandler.Get))
	mux.Handle("PATCH /api/messages/{id}/read", admin(messageHandler.MarkRead))
	mux.Handle("DELETE /api/messages/{id}", admin(messageHandler.Delete))

	// Stats — site sayaçları public (cache'li), dashboard özeti admin
	mux.HandleFunc("GET /api/stats", statsHandler.Site)
	mux.Handle("GET /api/stats/admin", admin(statsHandler.Admin))

	// Static file serving — yüklenen görsellere erişim
	//
	// http.StripPrefix: URL'den "/api/uploads/" kısmını çıkarır.
	// http.FileServer: Kalan path'i upload dizininde dosya olarak arar.
	// Örnek: GET /api/uploads/abc123_logo.png → ./data/uploads/abc123_logo.png
	//
	// Path traversal koruması:
	// http.FileServer zaten ".." path'lerini reddeder.
	// Ek güvenlik için sadece dosya isimlerini kabul edip subdirectory'leri reddediyoruz.
	uploadsHandler := http.StripPrefix("/api/uploads/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "/") || strings.Contains(r.URL.Path, "\\") {
			http.NotFound(w, r)
			return
		}
		http.FileServer(http.Dir(cfg.Upload.Dir)).ServeHTTP(w, r)
	}))
	mux.Handle("GET /api/uploads/", uploadsHandler)

	// WebSocket — token query parameter ile authenticate edilir
	//
	// Neden auth middleware kullanmıyoruz?
	// WebSocket upgrade sırasında tarayıcılar custom HTTP header gönderemez.
	// Bu yüzden JWT token URL query parameter olarak gönderilir:
	//   ws://server/ws?token=JWT_TOKEN
	// WS handler kendi içinde token doğrulaması yapar.
	mux.HandleFunc("GET /ws", wsHandler.HandleConnection)

	// ─── 13. CORS ───
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
		Debug:            false,
	})

	handler := corsHandler.Handler(mux)

	// ─── 14. HTTP Server ───
	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// ─── 15. Graceful Shutdown ───
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("[main] server listening on %s", cfg.Server.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[main] server error: %v", err)
		}
	}()

	<-done
	log.Println("[main] shutting down...")

	// Önce WebSocket bağlantılarını kapat — panel "server shutting down" bilir.
	// Sonra HTTP server'ı kapat — yeni request kabul etmeyi durdurur,
	// mevcut request'lerin bitmesini bekler (5sn timeout).
	hub.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("[main] forced shutdown: %v", err)
	}

	log.Println("[main] server stopped gracefully")
}
