package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/employee-manager-go/internal/pkg/metrics"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

type RouterConfig struct {
	Logger         *slog.Logger
	AllowedOrigins []string
}

func NewRouter(cfg RouterConfig, employeeHandler EmployeeHandler, branchHandler BranchHandler) *chi.Mux {
	r := chi.NewRouter()

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/employees", func(r chi.Router) {
			r.Get("/", employeeHandler.Search)
			r.Post("/", employeeHandler.Create)
			r.Get("/form", employeeHandler.AddForm)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", employeeHandler.Get)
				r.Put("/", employeeHandler.Update)
				r.Delete("/", employeeHandler.Delete)
				r.Get("/form", employeeHandler.EditForm)
				r.Get("/sales", employeeHandler.SalesReport)
			})
		})

		r.Route("/branches", func(r chi.Router) {
			r.Get("/", branchHandler.List)
			r.Post("/", branchHandler.Create)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", branchHandler.Get)
				r.Put("/", branchHandler.Update)
				r.Delete("/", branchHandler.Delete)
			})
		})
	})
	return r
}
