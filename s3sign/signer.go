// Package s3sign emite URLs pré-assinadas do S3 — a única forma de acesso a
// arquivos que o sistema expõe — e reescreve o host para o alias de CDN da
// região do chamador.
package s3sign

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// PresignAPI interface mínima do presigner (permite mocking)
type PresignAPI interface {
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
	PresignPutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

type Signer struct {
	api    PresignAPI
	bucket string
}

// New cria um signer sobre um presigner já construído.
func New(api PresignAPI, bucket string) *Signer {
	return &Signer{api: api, bucket: bucket}
}

// NewFromClient cria um signer a partir do cliente S3 do cold start.
func NewFromClient(client *s3.Client, bucket string) *Signer {
	return New(s3.NewPresignClient(client), bucket)
}

// DownloadURL emite uma URL de GET com o tempo de vida informado.
func (s *Signer) DownloadURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	req, err := s.api.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(expiry))
	if err != nil {
		return "", fmt.Errorf("s3sign: presign get failed: %w", err)
	}
	return req.URL, nil
}

// UploadURL emite uma URL de PUT anotando a identidade de quem sobe e o
// timestamp como metadados do objeto.
func (s *Signer) UploadURL(ctx context.Context, key, contentType string, metadata map[string]string, expiry time.Duration) (string, error) {
	input := &s3.PutObjectInput{
		Bucket:   aws.String(s.bucket),
		Key:      aws.String(key),
		Metadata: metadata,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	req, err := s.api.PresignPutObject(ctx, input, s3.WithPresignExpires(expiry))
	if err != nil {
		return "", fmt.Errorf("s3sign: presign put failed: %w", err)
	}
	return req.URL, nil
}
