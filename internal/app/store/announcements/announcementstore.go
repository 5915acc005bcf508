// internal/app/store/announcements/announcementstore.go
package announcementstore

import (
	"context"

	"github.com/dalemusser/campushub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/campushub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("announcements")}
}

// RecentForAudience returns at most limit active announcements whose
// audience includes the given role or the wildcard "all", newest first.
// An announcement tagged for another role never appears.
func (s *Store) RecentForAudience(ctx context.Context, role string, limit int64) ([]models.Announcement, error) {
	filter := bson.M{
		"is_active":       true,
		"target_audience": bson.M{"$in": []string{role, models.AudienceAll}},
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(limit)
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []models.Announcement
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	// Announcement bodies are author-supplied HTML; scrub them before they
	// reach any feed.
	for i := range out {
		out[i].Content = htmlsanitize.Sanitize(out[i].Content)
	}
	return out, nil
}
