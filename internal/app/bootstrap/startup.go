// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"errors"

	userstore "github.com/datasea-id/webhub/internal/app/store/users"
	"github.com/datasea-id/webhub/internal/domain/models"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if appCfg.BootstrapAdminEmail != "" {
		if err := ensureBootstrapAdmin(ctx, deps, appCfg.BootstrapAdminEmail, appCfg.BootstrapAdminPassword, logger); err != nil {
			return err
		}
	}
	return nil
}

// ensureBootstrapAdmin creates a first staff account when none exist, so a
// fresh deployment has someone who can sign in. It never touches a database
// that already has accounts.
func ensureBootstrapAdmin(ctx context.Context, deps DBDeps, email, password string, logger *zap.Logger) error {
	if password == "" {
		logger.Warn("bootstrap_admin_email is set but bootstrap_admin_password is empty; skipping",
			zap.String("email", email))
		return nil
	}

	users := userstore.New(deps.MongoDatabase)

	n, err := users.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = users.Create(ctx, models.User{
		Name:         "Admin",
		Email:        email,
		Role:         models.RoleAdmin,
		PasswordHash: string(hash),
	})
	if errors.Is(err, userstore.ErrDuplicateEmail) {
		// Lost a race with another instance; the account exists.
		return nil
	}
	if err != nil {
		return err
	}

	logger.Info("bootstrap admin created", zap.String("email", email))
	return nil
}
