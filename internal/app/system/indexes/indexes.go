// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

/*
EnsureAll is called at startup. Index creation is idempotent, so reruns
against an already-provisioned database are no-ops. Errors are aggregated
so every problem is visible and startup can fail fast.

The unique indexes here are load-bearing: the registration and selection
endpoints are check-free inserts that rely on the store rejecting
duplicates for users.email and selectedClasses.(email, class_id).
*/
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := ensureUsers(ctx, db); err != nil {
		problems = append(problems, "users: "+err.Error())
	}
	if err := ensureClasses(ctx, db); err != nil {
		problems = append(problems, "classes: "+err.Error())
	}
	if err := ensureSelectedClasses(ctx, db); err != nil {
		problems = append(problems, "selectedClasses: "+err.Error())
	}
	if err := ensurePaymentClasses(ctx, db); err != nil {
		problems = append(problems, "paymentClasses: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func ensureUsers(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetName("uniq_email").SetUnique(true),
	})
	return err
}

func ensureClasses(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("classes").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "instructor_email", Value: 1}},
			Options: options.Index().SetName("by_instructor_email"),
		},
		{
			Keys:    bson.D{{Key: "status", Value: 1}},
			Options: options.Index().SetName("by_status"),
		},
	})
	return err
}

func ensureSelectedClasses(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("selectedClasses").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}, {Key: "class_id", Value: 1}},
			Options: options.Index().SetName("uniq_email_class").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "class_id", Value: 1}},
			Options: options.Index().SetName("by_class_id"),
		},
	})
	return err
}

func ensurePaymentClasses(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("paymentClasses").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetName("by_email"),
	})
	return err
}
