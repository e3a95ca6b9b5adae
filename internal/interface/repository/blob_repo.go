package repository

import (
	"context"
	"errors"
	"io"

	"shavtzak-service/internal/domain/entity"
	"shavtzak-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GridFSBlobRepository implements BlobRepository on a GridFS bucket;
// it backs the single frequency-table image.
type GridFSBlobRepository struct {
	bucket *gridfs.Bucket
}

// NewGridFSBlobRepository creates a new GridFS-backed blob repository
func NewGridFSBlobRepository(db *mongo.Database) (repository.BlobRepository, error) {
	bucket, err := gridfs.NewBucket(db, options.GridFSBucket().SetName("frequencyTable"))
	if err != nil {
		return nil, err
	}
	return &GridFSBlobRepository{bucket: bucket}, nil
}

// Upload stores the blob under name, replacing any previous version.
func (r *GridFSBlobRepository) Upload(ctx context.Context, name string, src io.Reader) error {
	// Drop the previous file first so the name stays single-valued.
	if err := r.Delete(ctx, name); err != nil && !errors.Is(err, entity.ErrNotFound) {
		return err
	}
	if _, err := r.bucket.UploadFromStream(name, src); err != nil {
		return &entity.StoreError{Op: "upload blob", Err: err}
	}
	return nil
}

// Download streams the named blob into w.
func (r *GridFSBlobRepository) Download(ctx context.Context, name string, w io.Writer) error {
	_, err := r.bucket.DownloadToStreamByName(name, w)
	if errors.Is(err, gridfs.ErrFileNotFound) {
		return entity.ErrNotFound
	}
	if err != nil {
		return &entity.StoreError{Op: "download blob", Err: err}
	}
	return nil
}

// Delete removes the named blob.
func (r *GridFSBlobRepository) Delete(ctx context.Context, name string) error {
	cursor, err := r.bucket.GetFilesCollection().Find(ctx, bson.M{"filename": name})
	if err != nil {
		return &entity.StoreError{Op: "delete blob", Err: err}
	}
	defer cursor.Close(ctx)

	found := false
	for cursor.Next(ctx) {
		var file struct {
			ID interface{} `bson:"_id"`
		}
		if err := cursor.Decode(&file); err != nil {
			return &entity.StoreError{Op: "delete blob", Err: err}
		}
		if err := r.bucket.Delete(file.ID); err != nil {
			return &entity.StoreError{Op: "delete blob", Err: err}
		}
		found = true
	}
	if !found {
		return entity.ErrNotFound
	}
	return nil
}
