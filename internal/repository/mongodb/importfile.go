package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/workclock/attendance-core-go/internal/domain/clocklog"
	"github.com/workclock/attendance-core-go/internal/pkg/database"
)

type ImportFileRepositoryImpl struct {
	collection *mongo.Collection
}

func NewImportFileRepository(ctx context.Context, db *database.DB) (clocklog.ImportFileRepository, error) {
	collection := db.Collection("import_files")

	if _, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "path", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return nil, fmt.Errorf("failed to create import file index: %w", err)
	}

	return &ImportFileRepositoryImpl{collection: collection}, nil
}

// GetByPath implements clocklog.ImportFileRepository.
func (r *ImportFileRepositoryImpl) GetByPath(ctx context.Context, path string) (*clocklog.ImportFile, error) {
	var file clocklog.ImportFile
	err := r.collection.FindOne(ctx, bson.M{"path": path}).Decode(&file)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find import file: %w", err)
	}
	return &file, nil
}

// Upsert implements clocklog.ImportFileRepository.
func (r *ImportFileRepositoryImpl) Upsert(ctx context.Context, file clocklog.ImportFile) error {
	_, err := r.collection.ReplaceOne(ctx,
		bson.M{"path": file.Path},
		file,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert import file: %w", err)
	}
	return nil
}
