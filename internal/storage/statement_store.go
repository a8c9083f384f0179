package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"seatbill/internal/billing"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// StatementStore archives monthly statements as JSON objects.
type StatementStore interface {
	EnsureBucket(ctx context.Context) error
	PutStatement(ctx context.Context, customerID uuid.UUID, statement *billing.Statement) (string, error)
	PresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error)
}

type minioStatementStore struct {
	client *minio.Client
	bucket string
}

func NewMinioStatementStore(endpoint, accessKey, secretKey, bucket string, useSSL bool) (StatementStore, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, err
	}
	return &minioStatementStore{client: client, bucket: bucket}, nil
}

// StatementKey is the object key of a customer's statement for month.
func StatementKey(customerID uuid.UUID, month billing.Month) string {
	return fmt.Sprintf("statements/%s/%s.json", customerID.String(), month.String())
}

func (m *minioStatementStore) EnsureBucket(ctx context.Context) error {
	found, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return err
	}
	if !found {
		return m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{})
	}
	return nil
}

func (m *minioStatementStore) PutStatement(ctx context.Context, customerID uuid.UUID, statement *billing.Statement) (string, error) {
	data, err := json.Marshal(statement)
	if err != nil {
		return "", err
	}
	key := StatementKey(customerID, statement.Month)
	_, err = m.client.PutObject(ctx, m.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return "", fmt.Errorf("upload statement %s: %w", key, err)
	}
	return key, nil
}

func (m *minioStatementStore) PresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	u, err := m.client.PresignedGetObject(ctx, m.bucket, key, expiry, nil)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}
