package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	"github.com/oakmont-ms/library-volunteers/backend/internal/config"
	"github.com/oakmont-ms/library-volunteers/backend/internal/domain"
	"github.com/oakmont-ms/library-volunteers/backend/internal/repository"
)

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	repository  *repository.Repository
	translator  ut.Translator
	mqChannel   *amqp.Channel
	redisClient *redis.Client

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, mqCh *amqp.Channel, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:    validate,
		config:      cfg,
		repository:  repo,
		translator:  trans,
		mqChannel:   mqCh,
		redisClient: rdb,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
	})

	// everything below requires a logged-in user
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/periods", func(r chi.Router) {
			r.Get("/", h.GetPeriodDefinitions)
			r.With(h.RequiredRole([]domain.Role{domain.RoleLibrarian})).Put("/", h.ReplacePeriodDefinitions)
		})

		r.Route("/shifts", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.Role{domain.RoleLibrarian})).Post("/", h.CreateShift)
			r.Get("/week/{startDate}", h.GetWeekShifts)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.shiftRecord)
				r.With(h.RequiredRole([]domain.Role{domain.RoleLibrarian})).Put("/", h.UpdateShift)
			})
		})

		r.Route("/events", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.Role{domain.RoleLibrarian})).Post("/", h.CreateEvent)
			r.Get("/month/{month}", h.GetMonthEvents)
			r.Get("/range", h.GetRangeEvents)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.eventRecord)
				r.With(h.RequiredRole([]domain.Role{domain.RoleLibrarian})).Put("/", h.UpdateEvent)
				r.With(h.RequiredRole([]domain.Role{domain.RoleLibrarian})).Delete("/", h.DeleteEvent)
			})
		})

		r.Route("/event-types", func(r chi.Router) {
			r.Get("/", h.GetEventTypes)
			r.With(h.RequiredRole([]domain.Role{domain.RoleLibrarian})).Post("/", h.CreateEventType)
		})

		r.Route("/schedule", func(r chi.Router) {
			r.Get("/week/{startDate}", h.GetWeekSchedule)
			r.Get("/month/{month}", h.GetMonthSchedule)
		})

		r.Route("/checkin/code", func(r chi.Router) {
			r.Get("/", h.GetCheckinCode)
			r.With(h.RequiredRole([]domain.Role{domain.RoleLibrarian})).Post("/", h.IssueCheckinCode)
		})

		r.Route("/monitor-logs", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.Role{domain.RoleLibrarian})).Get("/", h.GetMonitorLogs)
			r.With(h.myInfo).Get("/mine", h.GetMyMonitorLogs)
			r.With(h.myInfo).With(h.RequiredRole([]domain.Role{domain.RoleMonitor})).Post("/log-hours", h.LogHours)
			r.With(h.myInfo).With(h.RequiredRole([]domain.Role{domain.RoleLibrarian})).Post("/log-hours-librarian", h.LogHoursAsLibrarian)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.monitorLogRecord)
				r.Use(h.RequiredRole([]domain.Role{domain.RoleLibrarian}))
				r.With(h.myInfo).Patch("/", h.UpdateMonitorLog)
				r.With(h.myInfo).Delete("/", h.DeleteMonitorLog)
			})
		})

		r.With(h.RequiredRole([]domain.Role{domain.RoleLibrarian})).Get("/audit-logs", h.GetAuditLogs)

		r.Route("/users", func(r chi.Router) {
			r.Get("/", h.GetAllUsers)
			r.With(h.myInfo).With(h.RequiredRole([]domain.Role{domain.RoleLibrarian})).Post("/", h.CreateUser)
			r.With(h.myInfo).With(h.RequiredRole([]domain.Role{domain.RoleLibrarian})).Patch("/{id}/status", h.UpdateUserStatus)
			r.With(h.myInfo).With(h.RequiredRole([]domain.Role{domain.RoleLibrarian})).Delete("/{id}", h.DeleteUser)
		})
	})
}
