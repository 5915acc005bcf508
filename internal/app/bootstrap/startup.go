// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"time"

	"github.com/dalemusser/campushub/internal/app/system/status"
	"github.com/dalemusser/campushub/internal/domain/models"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/text"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if appCfg.AdminEmail != "" {
		if err := ensureAdmin(ctx, deps, appCfg.AdminEmail, logger); err != nil {
			return err
		}
	}
	return nil
}

// ensureAdmin guarantees an admin account exists for the given email:
// an existing user is promoted, a missing one is created. Used so a fresh
// deployment always has a way into the admin dashboard.
func ensureAdmin(ctx context.Context, deps DBDeps, email string, logger *zap.Logger) error {
	users := deps.CampusHubMongoDatabase.Collection("users")

	var existing models.User
	err := users.FindOne(ctx, bson.M{"email": email}).Decode(&existing)
	switch {
	case err == nil:
		if existing.Role == "admin" {
			return nil
		}
		_, err = users.UpdateOne(ctx,
			bson.M{"_id": existing.ID},
			bson.M{"$set": bson.M{"role": "admin", "updated_at": time.Now().UTC()}})
		if err != nil {
			return err
		}
		logger.Info("promoted existing user to admin", zap.String("email", email))
		return nil

	case err == mongo.ErrNoDocuments:
		now := time.Now().UTC()
		admin := models.User{
			ID:         primitive.NewObjectID(),
			AccountID:  uuid.NewString(),
			FirstName:  "Campus",
			LastName:   "Admin",
			FullNameCI: text.Fold("Campus Admin"),
			Email:      email,
			Role:       "admin",
			Status:     status.Active,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if _, err := users.InsertOne(ctx, admin); err != nil {
			return err
		}
		logger.Info("created admin user", zap.String("email", email))
		return nil

	default:
		return err
	}
}
