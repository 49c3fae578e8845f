package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/workclock/attendance-core-go/internal/domain/counter"
	"github.com/workclock/attendance-core-go/internal/pkg/database"
)

type CounterRepositoryImpl struct {
	collection *mongo.Collection
}

func NewCounterRepository(db *database.DB) counter.CounterRepository {
	return &CounterRepositoryImpl{collection: db.Collection("counters")}
}

// NextValue implements counter.CounterRepository. The atomic $inc upsert is
// what makes sequence numbers unique under concurrent callers; values are
// never reused even if the caller later fails.
func (r *CounterRepositoryImpl) NextValue(ctx context.Context, key string) (int64, error) {
	var doc struct {
		Value int64 `bson:"value"`
	}

	err := r.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": key},
		bson.M{"$inc": bson.M{"value": 1}},
		options.FindOneAndUpdate().
			SetUpsert(true).
			SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return 0, fmt.Errorf("failed to increment counter %s: %w", key, err)
	}

	return doc.Value, nil
}
