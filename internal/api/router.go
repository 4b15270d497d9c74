package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"

	"github.com/portfolio-studio/backend/internal/api/handlers"
	mw "github.com/portfolio-studio/backend/internal/api/middleware"
	"github.com/portfolio-studio/backend/internal/auth"
)

type Dependencies struct {
	Issuer         *auth.Issuer
	AllowedOrigins []string

	AuthHandler       *handlers.AuthHandler
	ProfileHandler    *handlers.ProfileHandler
	SkillHandler      *handlers.SkillHandler
	ExperienceHandler *handlers.ExperienceHandler
	EducationHandler  *handlers.EducationHandler
	ProjectHandler    *handlers.ProjectHandler
	SocialHandler     *handlers.SocialHandler
	MessageHandler    *handlers.MessageHandler
	ResumeHandler     *handlers.ResumeHandler
	UploadHandler     *handlers.UploadHandler
	AdminHandler      *handlers.AdminHandler
}

func NewRouter(dep Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(mw.RequestID)
	r.Use(mw.Recovery)
	r.Use(mw.Logging)
	r.Use(mw.CORS(dep.AllowedOrigins))
	r.Use(chimid.Compress(5))

	hh := handlers.NewHealthHandler()
	r.Get("/healthz", hh.Liveness)
	r.Get("/readyz", hh.Readiness)

	requireAuth := mw.Auth(dep.Issuer)
	adminOnly := func(next http.Handler) http.Handler {
		return requireAuth(mw.RequireAdmin(next))
	}

	r.Route("/api", func(api chi.Router) {
		// Credential endpoints get a tight per-IP budget.
		api.Route("/auth", func(ar chi.Router) {
			ar.Use(mw.RateLimit(1, 10))
			ar.Post("/register", dep.AuthHandler.Register)
			ar.Post("/login", dep.AuthHandler.Login)
			ar.Get("/refresh", dep.AuthHandler.Refresh)
			ar.Post("/logout", dep.AuthHandler.Logout)
		})

		api.Route("/profile", func(pr chi.Router) {
			pr.Get("/", dep.ProfileHandler.Get)
			pr.With(adminOnly).Put("/", dep.ProfileHandler.Upsert)
		})

		api.Route("/skills", func(sr chi.Router) {
			sr.Get("/", dep.SkillHandler.List)
			sr.With(adminOnly).Post("/", dep.SkillHandler.Create)
			sr.With(adminOnly).Put("/{id}", dep.SkillHandler.Update)
			sr.With(adminOnly).Delete("/{id}", dep.SkillHandler.Delete)
		})

		api.Route("/experience", func(er chi.Router) {
			er.Get("/", dep.ExperienceHandler.List)
			er.With(adminOnly).Post("/", dep.ExperienceHandler.Create)
			er.With(adminOnly).Put("/{id}", dep.ExperienceHandler.Update)
			er.With(adminOnly).Delete("/{id}", dep.ExperienceHandler.Delete)
		})

		api.Route("/education", func(er chi.Router) {
			er.Get("/", dep.EducationHandler.List)
			er.With(adminOnly).Post("/", dep.EducationHandler.Create)
			er.With(adminOnly).Put("/{id}", dep.EducationHandler.Update)
			er.With(adminOnly).Delete("/{id}", dep.EducationHandler.Delete)
		})

		api.Route("/projects", func(pr chi.Router) {
			pr.Get("/", dep.ProjectHandler.List)
			pr.With(adminOnly).Get("/admin/all", dep.ProjectHandler.ListAll)
			pr.Get("/{slug}", dep.ProjectHandler.GetBySlug)
			pr.With(adminOnly).Post("/", dep.ProjectHandler.Create)
			pr.With(adminOnly).Put("/{id}", dep.ProjectHandler.Update)
			pr.With(adminOnly).Delete("/{id}", dep.ProjectHandler.Delete)
		})

		api.Route("/social", func(sr chi.Router) {
			sr.Get("/", dep.SocialHandler.List)
			sr.With(adminOnly).Post("/", dep.SocialHandler.Create)
			sr.With(adminOnly).Put("/{id}", dep.SocialHandler.Update)
			sr.With(adminOnly).Delete("/{id}", dep.SocialHandler.Delete)
		})

		api.Route("/messages", func(msgr chi.Router) {
			msgr.With(mw.OptionalAuth(dep.Issuer), mw.RateLimit(0.2, 5)).
				Post("/", dep.MessageHandler.Create)
			msgr.With(adminOnly).Get("/", dep.MessageHandler.List)
			msgr.With(adminOnly).Put("/{id}/read", dep.MessageHandler.MarkRead)
			msgr.With(adminOnly).Post("/{id}/reply", dep.MessageHandler.Reply)
			msgr.With(adminOnly).Delete("/{id}", dep.MessageHandler.Delete)
		})

		api.Route("/resume", func(rr chi.Router) {
			rr.With(adminOnly).Get("/", dep.ResumeHandler.Active)
			rr.With(requireAuth).Post("/download", dep.ResumeHandler.Download)
			rr.With(adminOnly).Post("/", dep.ResumeHandler.Upload)
			rr.With(adminOnly).Delete("/{id}", dep.ResumeHandler.Delete)
		})

		api.With(adminOnly).Post("/upload", dep.UploadHandler.Upload)
		api.With(adminOnly).Get("/admin/stats", dep.AdminHandler.Stats)
	})

	return r
}
