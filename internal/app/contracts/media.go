package contracts

import (
	"context"
	"io"
	"medrecord-service/internal/pkg/dto/responses"
)

type MediaUsecase interface {
	ResolveReference(ctx context.Context, rawURL string) (*responses.ResolvedMedia, error)
}

type Storage interface {
	GetObject(ctx context.Context, bucketName, objectName string) (io.ReadCloser, string, int64, error)
}
