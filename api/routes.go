package api

import (
	"github.com/gorilla/mux"

	"github.com/meridianlaw/cms/internal/audit"
	"github.com/meridianlaw/cms/internal/auth"
	"github.com/meridianlaw/cms/internal/config"
	"github.com/meridianlaw/cms/internal/store"
)

func SetupRoutes(cfg *config.Config, version, buildTime string, st *store.Store, auditLog *audit.Log) *mux.Router {
	r := mux.NewRouter()

	// Middleware chain
	r.Use(RequestIDMiddleware)
	r.Use(LoggingMiddleware)
	r.Use(CORSMiddleware(cfg.AllowedOrigin))
	r.Use(RecoveryMiddleware)

	sessions := auth.NewSessions(cfg.JWTSecret, cfg.SessionTTL, cfg.CookieSecure)

	// Create handlers
	systemHandler := &SystemHandler{}
	authHandler := NewAuthHandler(st, sessions)
	attorneys := NewAttorneysHandler(st, sessions, auditLog)
	blogs := NewBlogsHandler(st, sessions, auditLog)
	areas := NewPracticeAreasHandler(st, sessions, auditLog)
	services := NewServicesHandler(st, sessions, auditLog)
	contacts := NewContactsHandler(st, auditLog)
	auditHandler := NewAuditHandler(auditLog)

	// Open endpoints
	r.HandleFunc("/health", systemHandler.HealthHandler).Methods("GET")
	r.HandleFunc("/version", systemHandler.VersionHandler(version, buildTime)).Methods("GET")

	v1 := r.PathPrefix("/v1").Subrouter()
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	v1.HandleFunc("/auth/logout", authHandler.Logout).Methods("POST")
	v1.HandleFunc("/auth/me", authHandler.Me).Methods("GET")

	// Public reads. Draft and inactive records surface only when the list
	// flags are combined with a valid session; the handlers check that
	// themselves, so no middleware here.
	v1.HandleFunc("/attorneys", attorneys.List).Methods("GET")
	v1.HandleFunc("/attorneys/{id}", attorneys.Get).Methods("GET")
	v1.HandleFunc("/blogs", blogs.List).Methods("GET")
	v1.HandleFunc("/blogs/{id}", blogs.Get).Methods("GET")
	v1.HandleFunc("/practice-areas", areas.List).Methods("GET")
	v1.HandleFunc("/practice-areas/{id}", areas.Get).Methods("GET")
	v1.HandleFunc("/services", services.List).Methods("GET")
	v1.HandleFunc("/services/{id}", services.Get).Methods("GET")

	// Contact form submission is the one public write.
	v1.HandleFunc("/contacts", contacts.Create).Methods("POST")

	// Session-gated writes and privileged reads. Registered after the
	// public routes so those match first.
	admin := v1.NewRoute().Subrouter()
	admin.Use(SessionMiddleware(sessions))

	admin.HandleFunc("/attorneys", attorneys.Create).Methods("POST")
	admin.HandleFunc("/attorneys/{id}", attorneys.Update).Methods("PATCH")
	admin.HandleFunc("/attorneys/{id}", attorneys.Delete).Methods("DELETE")

	admin.HandleFunc("/blogs", blogs.Create).Methods("POST")
	admin.HandleFunc("/blogs/{id}", blogs.Update).Methods("PATCH")
	admin.HandleFunc("/blogs/{id}", blogs.Delete).Methods("DELETE")

	admin.HandleFunc("/practice-areas", areas.Create).Methods("POST")
	admin.HandleFunc("/practice-areas/{id}", areas.Update).Methods("PATCH")
	admin.HandleFunc("/practice-areas/{id}", areas.Delete).Methods("DELETE")

	admin.HandleFunc("/services", services.Create).Methods("POST")
	admin.HandleFunc("/services/{id}", services.Update).Methods("PATCH")
	admin.HandleFunc("/services/{id}", services.Delete).Methods("DELETE")

	admin.HandleFunc("/contacts", contacts.List).Methods("GET")
	admin.HandleFunc("/contacts/{id}", contacts.Get).Methods("GET")
	admin.HandleFunc("/contacts/{id}", contacts.Update).Methods("PATCH")
	admin.HandleFunc("/contacts/{id}", contacts.Delete).Methods("DELETE")

	admin.HandleFunc("/admin/audit", auditHandler.List).Methods("GET")

	return r
}
