// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

/*
EnsureAll is called at startup. Each ensure* function is idempotent.
We aggregate errors so any problem is visible and startup can fail fast.

The visi_misi collection is a singleton document and needs no indexes.
*/
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := ensureUsers(ctx, db); err != nil {
		problems = append(problems, "users: "+err.Error())
	}
	if err := ensureEvents(ctx, db); err != nil {
		problems = append(problems, "acara: "+err.Error())
	}
	if err := ensureWorkPrograms(ctx, db); err != nil {
		problems = append(problems, "program_kerja: "+err.Error())
	}
	if err := ensureTeam(ctx, db); err != nil {
		problems = append(problems, "tim_datasea: "+err.Error())
	}
	if err := ensurePositions(ctx, db); err != nil {
		problems = append(problems, "positions: "+err.Error())
	}
	if err := ensureApplicants(ctx, db); err != nil {
		problems = append(problems, "applicants: "+err.Error())
	}
	if err := ensureMessages(ctx, db); err != nil {
		problems = append(problems, "messages: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

/* -------------------------------------------------------------------------- */
/* Core helper: reconcile a set of desired indexes for one collection         */
/* -------------------------------------------------------------------------- */

type existingIndex struct {
	Name   string `bson:"name"`
	Key    bson.D `bson:"key"`
	Unique *bool  `bson:"unique,omitempty"`
}

func keySig(keys bson.D) string {
	parts := make([]string, 0, len(keys))
	for _, kv := range keys {
		parts = append(parts, fmt.Sprintf("%s:%v", kv.Key, kv.Value))
	}
	return strings.Join(parts, ", ")
}

func sameBoolPtr(a, b *bool) bool {
	av := false
	bv := false
	if a != nil {
		av = *a
	}
	if b != nil {
		bv = *b
	}
	return av == bv
}

// Best-effort duplicate-detector (works cross-vendors)
func isDuplicateKeyErr(err error) bool {
	if err == nil {
		return false
	}
	var we mongo.WriteException
	if errors.As(err, &we) {
		for _, e := range we.WriteErrors {
			if e.Code == 11000 { // E11000 duplicate key error index
				return true
			}
		}
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && ce.Code == 11000 {
		return true
	}
	s := err.Error()
	return strings.Contains(s, "E11000") || strings.Contains(strings.ToLower(s), "duplicate key")
}

// Mongo/DocDB sometimes returns IndexOptionsConflict when an index with the
// same keys already exists under a different name (or options differ).
func isOptionsConflictErr(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "IndexOptionsConflict")
}

func ensureIndexSet(ctx context.Context, coll *mongo.Collection, models []mongo.IndexModel) error {
	var errs []string

	for _, m := range models {
		var desiredName string
		var desiredUnique *bool
		if m.Options != nil {
			if m.Options.Name != nil {
				desiredName = *m.Options.Name
			}
			if m.Options.Unique != nil {
				desiredUnique = m.Options.Unique
			}
		}
		desiredSig := keySig(m.Keys.(bson.D))

		start := time.Now()
		zap.L().Info("ensuring index",
			zap.String("collection", coll.Name()),
			zap.String("name", desiredName),
			zap.String("keys", desiredSig),
			zap.Bool("unique", desiredUnique != nil && *desiredUnique))

		// 1) Load existing indexes
		existing := map[string]existingIndex{} // sig -> index
		cur, err := coll.Indexes().List(ctx)
		if err == nil {
			defer cur.Close(ctx)
			for cur.Next(ctx) {
				var idx existingIndex
				if err := cur.Decode(&idx); err != nil {
					zap.L().Warn("failed to decode existing index",
						zap.String("collection", coll.Name()),
						zap.Error(err))
					continue
				}
				existing[keySig(idx.Key)] = idx
			}
		}

		if ex, ok := existing[desiredSig]; ok {
			// Same key pattern exists already.
			if sameBoolPtr(desiredUnique, ex.Unique) {
				// Name alignment: if the name differs, drop & recreate with the desired name.
				if desiredName != "" && ex.Name != desiredName {
					zap.L().Info("renaming index to align with desired name",
						zap.String("collection", coll.Name()),
						zap.String("from", ex.Name),
						zap.String("to", desiredName),
						zap.String("keys", desiredSig))

					if _, err := coll.Indexes().DropOne(ctx, ex.Name); err != nil {
						errs = append(errs, fmt.Sprintf("%s(%s): rename drop failed: %v", coll.Name(), desiredName, err))
						continue
					}
					if _, err := coll.Indexes().CreateOne(ctx, m); err != nil {
						errs = append(errs, fmt.Sprintf("%s(%s): rename create failed: %v", coll.Name(), desiredName, err))
						continue
					}
					zap.L().Info("index renamed",
						zap.String("collection", coll.Name()),
						zap.String("name", desiredName),
						zap.String("keys", desiredSig),
						zap.String("took", time.Since(start).String()))
					continue
				}

				zap.L().Info("reusing existing index",
					zap.String("collection", coll.Name()),
					zap.String("name", ex.Name),
					zap.String("keys", desiredSig),
					zap.String("took", time.Since(start).String()))
				continue
			}

			// Options mismatch (e.g., upgrading to unique). Drop & recreate.
			if _, err := coll.Indexes().DropOne(ctx, ex.Name); err != nil {
				errs = append(errs, fmt.Sprintf("%s(%s): drop failed: %v", coll.Name(), desiredName, err))
				continue
			}
			if _, err := coll.Indexes().CreateOne(ctx, m); err != nil {
				if isDuplicateKeyErr(err) && desiredUnique != nil && *desiredUnique {
					errs = append(errs, fmt.Sprintf("%s(%s): cannot create unique index (duplicates present)", coll.Name(), desiredName))
				} else {
					errs = append(errs, fmt.Sprintf("%s(%s): %v", coll.Name(), desiredName, err))
				}
				continue
			}
			zap.L().Info("index dropped and recreated",
				zap.String("collection", coll.Name()),
				zap.String("name", desiredName),
				zap.String("keys", desiredSig),
				zap.String("took", time.Since(start).String()))
			continue
		}

		// 2) No existing index with the same keys: create it.
		created, err := coll.Indexes().CreateOne(ctx, m)
		if err != nil {
			if isOptionsConflictErr(err) {
				// Another index with the same keys appeared under a different
				// name or options. Reconcile by listing again.
				if reconciled := reconcileConflict(ctx, coll, m, desiredSig, desiredUnique, &errs); reconciled {
					continue
				}
			}
			zap.L().Warn("index ensure failed",
				zap.String("collection", coll.Name()),
				zap.String("name", desiredName),
				zap.String("keys", desiredSig),
				zap.Error(err))
			errs = append(errs, fmt.Sprintf("%s(%s): %v", coll.Name(), desiredName, err))
			continue
		}
		zap.L().Info("index ensured",
			zap.String("collection", coll.Name()),
			zap.String("name", desiredName),
			zap.String("created_name", created),
			zap.String("keys", desiredSig),
			zap.String("took", time.Since(start).String()))
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

// reconcileConflict handles IndexOptionsConflict: find the existing index with
// the same key pattern, reuse it when the options match, otherwise drop and
// recreate. Reports whether the conflict was resolved.
func reconcileConflict(ctx context.Context, coll *mongo.Collection, m mongo.IndexModel, desiredSig string, desiredUnique *bool, errs *[]string) bool {
	cur, err := coll.Indexes().List(ctx)
	if err != nil {
		return false
	}
	var match *existingIndex
	for cur.Next(ctx) {
		var idx existingIndex
		if err := cur.Decode(&idx); err != nil {
			continue
		}
		if keySig(idx.Key) == desiredSig {
			match = &idx
			break
		}
	}
	cur.Close(ctx)
	if match == nil {
		return false
	}

	if sameBoolPtr(desiredUnique, match.Unique) {
		zap.L().Info("reusing existing index (post-conflict)",
			zap.String("collection", coll.Name()),
			zap.String("name", match.Name),
			zap.String("keys", desiredSig))
		return true
	}

	if _, err := coll.Indexes().DropOne(ctx, match.Name); err != nil {
		zap.L().Warn("failed to drop conflicting index",
			zap.String("collection", coll.Name()),
			zap.String("name", match.Name),
			zap.Error(err))
	}
	if _, err := coll.Indexes().CreateOne(ctx, m); err != nil {
		*errs = append(*errs, fmt.Sprintf("%s(%s): %v", coll.Name(), desiredSig, err))
		return true
	}
	zap.L().Info("index dropped and recreated (post-conflict)",
		zap.String("collection", coll.Name()),
		zap.String("keys", desiredSig))
	return true
}

/* -------------------------------------------------------------------------- */
/* Collection-specific index sets                                             */
/* -------------------------------------------------------------------------- */

func ensureUsers(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("users")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// Email must be unique across all admin accounts (case/diacritics folded).
		{
			Keys:    bson.D{{Key: "email_ci", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_users_emailci"),
		},
		// Google sign-in lookup. Sparse because password-only accounts have no sub.
		{
			Keys:    bson.D{{Key: "google_sub", Value: 1}},
			Options: options.Index().SetSparse(true).SetName("idx_users_googlesub"),
		},
	})
}

func ensureEvents(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("acara")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// Home page and public listing: upcoming events by date.
		{
			Keys:    bson.D{{Key: "status_acara", Value: 1}, {Key: "tanggal_acara", Value: 1}},
			Options: options.Index().SetName("idx_acara_status_tanggal"),
		},
		// Admin listing sorted by event date.
		{
			Keys:    bson.D{{Key: "tanggal_acara", Value: -1}, {Key: "_id", Value: 1}},
			Options: options.Index().SetName("idx_acara_tanggal__id"),
		},
	})
}

func ensureWorkPrograms(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("program_kerja")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// Category tab plus status filter, sorted by folded name.
		{
			Keys: bson.D{
				{Key: "kategori", Value: 1},
				{Key: "status", Value: 1},
				{Key: "nama_ci", Value: 1},
				{Key: "_id", Value: 1},
			},
			Options: options.Index().SetName("idx_proker_kategori_status_namaci__id"),
		},
		{
			Keys:    bson.D{{Key: "nama_ci", Value: 1}, {Key: "_id", Value: 1}},
			Options: options.Index().SetName("idx_proker_namaci__id"),
		},
	})
}

func ensureTeam(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("tim_datasea")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// Division filter with name sort (BPH-first ordering is applied in code).
		{
			Keys: bson.D{
				{Key: "divisi", Value: 1},
				{Key: "nama_ci", Value: 1},
				{Key: "_id", Value: 1},
			},
			Options: options.Index().SetName("idx_tim_divisi_namaci__id"),
		},
	})
}

func ensurePositions(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("positions")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// Public listing shows only open positions, newest first.
		{
			Keys:    bson.D{{Key: "isOpen", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_positions_isopen_createdat"),
		},
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: 1}},
			Options: options.Index().SetName("idx_positions_createdat__id"),
		},
	})
}

func ensureApplicants(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("applicants")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// Applications per position, newest first.
		{
			Keys:    bson.D{{Key: "jobId", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_applicants_jobid_createdat"),
		},
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: 1}},
			Options: options.Index().SetName("idx_applicants_createdat__id"),
		},
	})
}

func ensureMessages(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("messages")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// Inbox filter by status, newest first.
		{
			Keys:    bson.D{{Key: "status", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("idx_messages_status_createdat"),
		},
		{
			Keys:    bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: 1}},
			Options: options.Index().SetName("idx_messages_createdat__id"),
		},
	})
}
