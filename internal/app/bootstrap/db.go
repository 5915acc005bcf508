// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/campushub/internal/app/store/activity"
	"github.com/dalemusser/campushub/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// ConnectDB establishes the MongoDB connection used by every store.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	opts := options.Client().
		ApplyURI(appCfg.MongoURI).
		SetMaxPoolSize(appCfg.MongoMaxPoolSize).
		SetMinPoolSize(appCfg.MongoMinPoolSize)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return DBDeps{}, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeouts.Ping())
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return DBDeps{}, err
	}

	logger.Info("connected to MongoDB",
		zap.String("database", appCfg.MongoDatabase))

	return DBDeps{
		CampusHubMongoClient:   client,
		CampusHubMongoDatabase: client.Database(appCfg.MongoDatabase),
	}, nil
}

// EnsureSchema creates the indexes the dashboard queries rely on. All of
// them are idempotent; CreateMany is a no-op for indexes that already
// exist with the same definition.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	db := deps.CampusHubMongoDatabase

	indexes := map[string][]mongo.IndexModel{
		"users": {
			{Keys: bson.D{{Key: "account_id", Value: 1}},
				Options: options.Index().SetName("idx_users_account").SetUnique(true)},
			{Keys: bson.D{{Key: "role", Value: 1}},
				Options: options.Index().SetName("idx_users_role")},
		},
		"enrollments": {
			{Keys: bson.D{{Key: "section_id", Value: 1}, {Key: "status", Value: 1}},
				Options: options.Index().SetName("idx_enrollments_section_status")},
			{Keys: bson.D{{Key: "student_id", Value: 1}, {Key: "status", Value: 1}},
				Options: options.Index().SetName("idx_enrollments_student_status")},
		},
		"attendance_records": {
			{Keys: bson.D{{Key: "student_id", Value: 1}, {Key: "section_id", Value: 1}},
				Options: options.Index().SetName("idx_attendance_student_section")},
			{Keys: bson.D{{Key: "section_id", Value: 1}},
				Options: options.Index().SetName("idx_attendance_section")},
		},
		"grade_records": {
			{Keys: bson.D{{Key: "section_id", Value: 1}},
				Options: options.Index().SetName("idx_grades_section")},
			{Keys: bson.D{{Key: "student_id", Value: 1}},
				Options: options.Index().SetName("idx_grades_student")},
		},
		"sections": {
			{Keys: bson.D{{Key: "faculty_id", Value: 1}},
				Options: options.Index().SetName("idx_sections_faculty")},
		},
		"exams": {
			{Keys: bson.D{{Key: "exam_date", Value: 1}},
				Options: options.Index().SetName("idx_exams_date")},
		},
		"fees": {
			{Keys: bson.D{{Key: "student_id", Value: 1}, {Key: "created_at", Value: -1}},
				Options: options.Index().SetName("idx_fees_student_created")},
			{Keys: bson.D{{Key: "created_at", Value: 1}},
				Options: options.Index().SetName("idx_fees_created")},
		},
		"hostel_assignments": {
			{Keys: bson.D{{Key: "student_id", Value: 1}, {Key: "status", Value: 1}},
				Options: options.Index().SetName("idx_hostel_student_status")},
		},
		"messages": {
			{Keys: bson.D{{Key: "recipient_id", Value: 1}, {Key: "created_at", Value: -1}},
				Options: options.Index().SetName("idx_messages_recipient_created")},
		},
		"announcements": {
			{Keys: bson.D{{Key: "is_active", Value: 1}, {Key: "created_at", Value: -1}},
				Options: options.Index().SetName("idx_announcements_active_created")},
		},
	}

	for coll, defs := range indexes {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, defs); err != nil {
			logger.Error("index creation failed", zap.String("collection", coll), zap.Error(err))
			return err
		}
	}

	if err := activity.New(db).EnsureIndexes(ctx); err != nil {
		logger.Error("activity index creation failed", zap.Error(err))
		return err
	}

	return nil
}
