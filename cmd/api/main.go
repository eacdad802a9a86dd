package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"

	"github.com/jhoicas/panel-admin/internal/application/auth"
	"github.com/jhoicas/panel-admin/internal/application/bootstrap"
	"github.com/jhoicas/panel-admin/internal/application/usecase"
	"github.com/jhoicas/panel-admin/internal/domain/repository"
	"github.com/jhoicas/panel-admin/internal/infrastructure/memory"
	"github.com/jhoicas/panel-admin/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/panel-admin/internal/interfaces/http"
	"github.com/jhoicas/panel-admin/pkg/config"
	"github.com/jhoicas/panel-admin/pkg/logger"
	"github.com/jhoicas/panel-admin/pkg/metrics"
)

// stores puertos de persistencia según STORE_DRIVER.
type stores struct {
	users    repository.UserRepository
	roles    repository.RoleRepository
	settings repository.SettingsRepository
	sessions repository.SessionRepository
	tx       bootstrap.TxRunner
	close    func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.App.StoreDriver).
		Msg("iniciando aplicación")

	if cfg.Session.UsingDefaultSecret() {
		log.Warn().Msg("SESSION_SECRET no definido: las cookies se firman con el secreto público por defecto")
	}

	ctx := context.Background()
	st, err := openStores(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento")
	}
	defer st.close()

	hasher := auth.NewBcryptHasher(0)
	res, err := bootstrap.NewSeeder(st.tx, hasher, bootstrap.AdminConfig{
		Username: cfg.Bootstrap.AdminUsername,
		Password: cfg.Bootstrap.AdminPassword,
		Phone:    cfg.Bootstrap.AdminPhone,
	}).Run(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("siembra inicial")
	}
	if len(res.RolesCreated) > 0 || res.SettingsCreated {
		log.Info().Strs("roles", res.RolesCreated).Bool("settings", res.SettingsCreated).Msg("datos iniciales creados")
	}
	if res.AdminCreated {
		log.Warn().
			Str("username", res.AdminUsername).
			Msg("cuenta admin creada con la contraseña inicial: cámbiela con `admin rotate-password`")
	}

	sessions := auth.NewSessionManager(st.sessions, cfg.Session.TTL)
	deps := httpRouter.RouterDeps{
		AuthUC:     auth.NewAuthUseCase(st.users, sessions, hasher),
		UserUC:     usecase.NewUserUseCase(st.users, st.roles, hasher),
		RoleUC:     usecase.NewRoleUseCase(st.roles),
		SettingsUC: usecase.NewSettingsUseCase(st.settings),
		Cookie: httpRouter.CookieConfig{
			Name:   cfg.Session.CookieName,
			Secret: cfg.Session.Secret,
			Issuer: cfg.App.Name,
			Secure: cfg.Session.CookieSecure,
		},
		Logger:  log,
		Metrics: metrics.New("panel"),
		AppName: cfg.App.Name,
	}

	app, err := httpRouter.NewApp(deps)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar vistas")
	}

	// Swagger UI: http://localhost:<port>/docs
	if cfg.App.DocsPath != "" {
		if _, err := os.Stat(cfg.App.DocsPath); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: cfg.App.DocsPath,
				Path:     "docs",
				Title:    cfg.App.Name,
			}))
		} else {
			log.Warn().Str("path", cfg.App.DocsPath).Msg("swagger.json no encontrado, /docs desactivado")
		}
	}

	httpRouter.Router(app, deps)

	go func() {
		log.Info().Str("addr", cfg.HTTP.Addr()).Msg("servidor HTTP escuchando")
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// openStores abre PostgreSQL (con migraciones) o el almacén en memoria.
func openStores(ctx context.Context, cfg *config.Config, log *logger.Logger) (*stores, error) {
	if cfg.App.StoreDriver == config.StoreDriverMemory {
		log.Warn().Msg("STORE_DRIVER=memory: los datos se pierden al reiniciar")
		m := memory.NewStore()
		return &stores{
			users:    m.Users(),
			roles:    m.Roles(),
			settings: m.Settings(),
			sessions: m.Sessions(),
			tx:       m,
			close:    func() {},
		}, nil
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	txRunner := postgres.NewTxRunner(pool)
	applied, err := postgres.Migrate(ctx, txRunner)
	if err != nil {
		pool.Close()
		return nil, err
	}
	if len(applied) > 0 {
		log.Info().Strs("migrations", applied).Msg("migraciones aplicadas")
	}
	return &stores{
		users:    postgres.NewUserRepository(pool),
		roles:    postgres.NewRoleRepository(pool),
		settings: postgres.NewSettingsRepository(pool),
		sessions: postgres.NewSessionRepository(pool),
		tx:       txRunner,
		close:    pool.Close,
	}, nil
}
