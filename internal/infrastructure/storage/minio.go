// Package storage implementa o gateway de armazenamento de objetos para
// os PDFs gerados, sobre um endpoint compatível com S3 (MinIO, Supabase
// Storage em modo S3, etc.).
package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/livo/contratos-api/pkg/config"
)

// MinioStorage client de object storage para o bucket de contratos.
type MinioStorage struct {
	client *minio.Client
	cfg    config.StorageConfig
}

// NewMinioStorage constrói o client a partir da configuração.
func NewMinioStorage(cfg config.StorageConfig) (*MinioStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("criar client minio: %w", err)
	}
	return &MinioStorage{client: client, cfg: cfg}, nil
}

// EnsureBucket cria o bucket se ainda não existir. Chamado no boot.
func (s *MinioStorage) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.cfg.Bucket)
	if err != nil {
		return fmt.Errorf("verificar bucket: %w", err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("criar bucket: %w", err)
		}
	}
	return nil
}

// UploadPDF sobe o PDF e devolve a URL pública durável do objeto.
// O bucket de contratos tem política de leitura pública; a URL devolvida
// não expira (diferente de uma presigned URL).
func (s *MinioStorage) UploadPDF(ctx context.Context, objectName string, data []byte) (string, error) {
	_, err := s.client.PutObject(ctx, s.cfg.Bucket, objectName,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{
			ContentType:  "application/pdf",
			CacheControl: "max-age=3600",
		},
	)
	if err != nil {
		return "", fmt.Errorf("upload do objeto %s: %w", objectName, err)
	}
	return s.PublicURL(objectName), nil
}

// PublicURL monta a URL pública de um objeto do bucket.
func (s *MinioStorage) PublicURL(objectName string) string {
	scheme := "http"
	if s.cfg.UseSSL {
		scheme = "https"
	}
	if s.cfg.PublicBaseURL != "" {
		return fmt.Sprintf("%s/%s/%s", s.cfg.PublicBaseURL, s.cfg.Bucket, objectName)
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.cfg.Endpoint, s.cfg.Bucket, objectName)
}

// Delete remove um objeto do bucket (limpeza após exclusão de contrato).
func (s *MinioStorage) Delete(ctx context.Context, objectName string) error {
	err := s.client.RemoveObject(ctx, s.cfg.Bucket, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("remover objeto %s: %w", objectName, err)
	}
	return nil
}
