// Comando admin: tareas de operación sobre la base del panel.
//
//	admin init-db
//	admin rotate-password --username admin --password '...'
//	admin purge-sessions
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/jhoicas/panel-admin/internal/application/auth"
	"github.com/jhoicas/panel-admin/internal/application/bootstrap"
	"github.com/jhoicas/panel-admin/internal/infrastructure/postgres"
	"github.com/jhoicas/panel-admin/pkg/config"
	"github.com/jhoicas/panel-admin/pkg/logger"
)

var (
	cfg *config.Config
	log *logger.Logger
)

var rootCmd = &cobra.Command{
	Use:           "admin",
	Short:         "Tareas de operación del panel de administración",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		log = logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})
		if cfg.App.StoreDriver != config.StoreDriverPostgres {
			return fmt.Errorf("STORE_DRIVER=%s: los comandos de operación requieren postgres", cfg.App.StoreDriver)
		}
		return nil
	},
}

var initDBCmd = &cobra.Command{
	Use:   "init-db",
	Short: "Crea el esquema y siembra roles, ajustes y la cuenta admin",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		return withPool(ctx, func(pool *pgxpool.Pool) error {
			txRunner := postgres.NewTxRunner(pool)
			applied, err := postgres.Migrate(ctx, txRunner)
			if err != nil {
				return err
			}
			res, err := bootstrap.NewSeeder(txRunner, auth.NewBcryptHasher(0), bootstrap.AdminConfig{
				Username: cfg.Bootstrap.AdminUsername,
				Password: cfg.Bootstrap.AdminPassword,
				Phone:    cfg.Bootstrap.AdminPhone,
			}).Run(ctx)
			if err != nil {
				return err
			}
			log.Info().
				Strs("migrations", applied).
				Strs("roles", res.RolesCreated).
				Bool("settings", res.SettingsCreated).
				Bool("admin", res.AdminCreated).
				Msg("base inicializada")
			if res.AdminCreated {
				log.Warn().Str("username", res.AdminUsername).Msg("cuenta admin creada con la contraseña inicial: ejecute rotate-password")
			}
			return nil
		})
	},
}

var rotatePasswordCmd = &cobra.Command{
	Use:   "rotate-password",
	Short: "Reemplaza la contraseña de un usuario",
	RunE: func(cmd *cobra.Command, args []string) error {
		username, _ := cmd.Flags().GetString("username")
		password, _ := cmd.Flags().GetString("password")
		ctx := cmd.Context()
		return withPool(ctx, func(pool *pgxpool.Pool) error {
			users := postgres.NewUserRepository(pool)
			sessions := auth.NewSessionManager(postgres.NewSessionRepository(pool), cfg.Session.TTL)
			uc := auth.NewAuthUseCase(users, sessions, auth.NewBcryptHasher(0))
			if err := uc.SetPassword(ctx, username, password); err != nil {
				return fmt.Errorf("rotar contraseña de %s: %w", username, err)
			}
			log.Info().Str("username", username).Msg("contraseña actualizada")
			return nil
		})
	},
}

var purgeSessionsCmd = &cobra.Command{
	Use:   "purge-sessions",
	Short: "Elimina las sesiones vencidas",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		return withPool(ctx, func(pool *pgxpool.Pool) error {
			sessions := auth.NewSessionManager(postgres.NewSessionRepository(pool), cfg.Session.TTL)
			n, err := sessions.PurgeExpired(ctx)
			if err != nil {
				return err
			}
			log.Info().Int64("deleted", n).Msg("sesiones vencidas eliminadas")
			return nil
		})
	},
}

func init() {
	rotatePasswordCmd.Flags().String("username", bootstrap.DefaultAdminUsername, "usuario a modificar")
	rotatePasswordCmd.Flags().String("password", "", "nueva contraseña")
	_ = rotatePasswordCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(initDBCmd, rotatePasswordCmd, purgeSessionsCmd)
}

func withPool(ctx context.Context, fn func(pool *pgxpool.Pool) error) error {
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer pool.Close()
	return fn(pool)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
