package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/jhoicas/panel-admin/internal/application/auth"
	"github.com/jhoicas/panel-admin/internal/application/dto"
	"github.com/jhoicas/panel-admin/internal/application/usecase"
	"github.com/jhoicas/panel-admin/internal/domain/entity"
	"github.com/jhoicas/panel-admin/internal/interfaces/http/views"
	"github.com/jhoicas/panel-admin/pkg/logger"
	"github.com/jhoicas/panel-admin/pkg/metrics"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	UserUC     *usecase.UserUseCase
	RoleUC     *usecase.RoleUseCase
	SettingsUC *usecase.SettingsUseCase
	Cookie     CookieConfig
	Logger     *logger.Logger
	Metrics    *metrics.Metrics // opcional: sin métricas no se expone /metrics
	AppName    string
}

// NewApp crea la aplicación Fiber con vistas, manejo de errores y los middlewares base.
// El llamador puede montar más middlewares (p. ej. swagger) antes de Router.
func NewApp(deps RouterDeps) (*fiber.App, error) {
	engine, err := views.New()
	if err != nil {
		return nil, err
	}
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}
	app := fiber.New(fiber.Config{
		AppName:               deps.AppName,
		Views:                 engine,
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				if wantsJSON(c) {
					return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: "HTTP_ERROR", Message: fe.Message})
				}
				return c.Status(fe.Code).SendString(fe.Message)
			}
			log.Error().Err(err).Str("path", c.Path()).Msg("error no controlado")
			return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
		},
	})
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(RequestLogger(log, deps.Metrics))
	app.Use(recover.New())
	return app, nil
}

// Router registra las rutas del panel.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}
	m := deps.Metrics

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})
	if m != nil {
		app.Get("/metrics", adaptor.HTTPHandler(m.Handler()))
	}

	app.Use(LoadSession(deps.AuthUC, deps.Cookie, log))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/login", fiber.StatusFound)
	})

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Cookie, log, m)
	app.Get("/login", authHandler.LoginPage)
	app.Post("/login", authHandler.Login)
	app.Post("/logout", authHandler.Logout)
	app.Get("/register", authHandler.RegisterPage)
	app.Post("/register", authHandler.Register)

	session := RequireSession(m)
	manager := RequireRole(deps.AuthUC, entity.RoleManager, m)
	admin := RequireRole(deps.AuthUC, entity.RoleAdmin, m)

	// Dashboard (cualquier usuario con sesión)
	dashboardHandler := NewDashboardHandler(deps.SettingsUC, log)
	app.Get("/dashboard", session, dashboardHandler.Show)

	// Users: listar con sesión; alta/edición manager; baja admin
	userHandler := NewUserHandler(deps.UserUC, log)
	app.Get("/dashboard/users", session, userHandler.List)
	app.Get("/dashboard/users/new", manager, userHandler.New)
	app.Post("/dashboard/users", manager, userHandler.Create)
	app.Get("/dashboard/users/:id/edit", manager, userHandler.Edit)
	app.Post("/dashboard/users/:id/edit", manager, userHandler.Update)
	app.Post("/dashboard/users/:id/delete", admin, userHandler.Delete)
	app.Get("/dashboard/users/:id", manager, userHandler.Edit)
	app.Post("/dashboard/users/:id", manager, userHandler.Update)

	// Settings (admin)
	settingsHandler := NewSettingsHandler(deps.SettingsUC, log)
	app.Get("/dashboard/settings", admin, settingsHandler.Show)
	app.Post("/dashboard/settings", admin, settingsHandler.Update)

	// Roles (admin)
	roleHandler := NewRoleHandler(deps.RoleUC, log)
	app.Get("/roles", admin, roleHandler.List)
	app.Post("/roles", admin, roleHandler.Create)
	app.Post("/roles/:id/delete", admin, roleHandler.Delete)

	app.Use(func(c *fiber.Ctx) error {
		if wantsJSON(c) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Not found"})
		}
		return c.Status(fiber.StatusNotFound).SendString("Not found")
	})
}
