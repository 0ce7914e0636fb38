package download

import (
	"context"

	"github.com/ytget/amdl-client/internal/model"
)

// Enqueuer is the backend call used to add downloads
type Enqueuer interface {
	Enqueue(ctx context.Context, req model.DownloadRequest) error
}

// Downloader defines the interface for the download service.
type Downloader interface {
	SetUpdateCallback(func(model.DownloadRequest))

	// SetCodec sets the codec used for requests that do not name one
	SetCodec(codec string)
	Codec() string

	Add(ctx context.Context, req model.DownloadRequest) error
	AddBatch(ctx context.Context, reqs []model.DownloadRequest) (int, error)
	Retry(ctx context.Context, task model.Task) error
}
