// internal/app/store/queries/departmentload/departmentload.go

// Package departmentload computes per-department enrollment load from the
// authoritative rows: active enrollments counted through each department's
// sections, and capacity summed from the sections' seat limits. Stored
// per-department counters are never consulted.
package departmentload

import (
	"context"

	"github.com/dalemusser/campushub/internal/app/system/status"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type DepartmentLoad struct {
	DepartmentID primitive.ObjectID `bson:"_id" json:"department_id"`
	Name         string             `bson:"name" json:"name"`
	Students     int64              `bson:"students" json:"students"`
	Capacity     int64              `bson:"capacity" json:"capacity"`
}

// Fetch returns one row per department, ordered by name. Departments with
// no sections appear with zero students and zero capacity.
func Fetch(ctx context.Context, db *mongo.Database) ([]DepartmentLoad, error) {
	pipe := mongo.Pipeline{
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "subjects",
			"localField":   "subject_id",
			"foreignField": "_id",
			"as":           "subject",
		}}},
		bson.D{{Key: "$unwind", Value: "$subject"}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from": "enrollments",
			"let":  bson.M{"sec": "$_id"},
			"pipeline": bson.A{
				bson.M{"$match": bson.M{
					"status": status.Active,
					"$expr":  bson.M{"$eq": bson.A{"$section_id", "$$sec"}},
				}},
				bson.M{"$project": bson.M{"_id": 1}},
			},
			"as": "active",
		}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":      "$subject.department_id",
			"students": bson.M{"$sum": bson.M{"$size": "$active"}},
			"capacity": bson.M{"$sum": "$max_students"},
		}}},
	}
	cur, err := db.Collection("sections").Aggregate(ctx, pipe)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var grouped []struct {
		ID       primitive.ObjectID `bson:"_id"`
		Students int64              `bson:"students"`
		Capacity int64              `bson:"capacity"`
	}
	if err := cur.All(ctx, &grouped); err != nil {
		return nil, err
	}
	byDept := make(map[primitive.ObjectID]int, len(grouped))
	for i, g := range grouped {
		byDept[g.ID] = i
	}

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	dcur, err := db.Collection("departments").Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer dcur.Close(ctx)

	var depts []struct {
		ID   primitive.ObjectID `bson:"_id"`
		Name string             `bson:"name"`
	}
	if err := dcur.All(ctx, &depts); err != nil {
		return nil, err
	}

	out := make([]DepartmentLoad, 0, len(depts))
	for _, d := range depts {
		row := DepartmentLoad{DepartmentID: d.ID, Name: d.Name}
		if i, ok := byDept[d.ID]; ok {
			row.Students = grouped[i].Students
			row.Capacity = grouped[i].Capacity
		}
		out = append(out, row)
	}
	return out, nil
}
