package service

//go:generate go run go.uber.org/mock/mockgen -source=./archiver.go -destination=../mocks/archiver_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"path"
	"time"

	"hotelpos/infras/otel"
	"hotelpos/infras/redis"
	"hotelpos/infras/s3"
	"hotelpos/internal/domains/document/model"
	"hotelpos/shared"
	"hotelpos/shared/constant"

	"github.com/rs/zerolog/log"
)

const (
	lockPrefix = "document:lock"
	lockTTL    = 30 * time.Second
)

// Archiver renders final documents and stores them in object storage. Archiving is
// idempotent: a document already stored is not rendered again. While another worker
// holds the document lock the call fails with an error wrapping redis.ErrLockHeld, so
// the message is retried rather than committed.
type Archiver interface {
	ArchiveInvoice(ctx context.Context, invoice model.Invoice) (url string, err error)
	ArchiveTicket(ctx context.Context, ticket model.Ticket) (url string, err error)
}

type archiverImpl struct {
	renderer Renderer
	storage  s3.S3
	locker   redis.Locker
	otel     otel.Otel
}

func NewArchiver(renderer Renderer, storage s3.S3, locker redis.Locker, otel otel.Otel) Archiver {
	return &archiverImpl{
		renderer: renderer,
		storage:  storage,
		locker:   locker,
		otel:     otel,
	}
}

func (a *archiverImpl) ArchiveInvoice(ctx context.Context, invoice model.Invoice) (url string, err error) {
	ctx, scope := a.otel.NewScope(ctx, constant.OtelDocumentScopeName, constant.OtelDocumentScopeName+".ArchiveInvoice")
	defer scope.End()
	defer scope.TraceIfError(err)

	return a.archive(ctx, model.KindInvoice, invoice.StayID, model.DirectoryInvoices, func(ctx context.Context) ([]byte, error) {
		return a.renderer.Invoice(ctx, invoice)
	})
}

func (a *archiverImpl) ArchiveTicket(ctx context.Context, ticket model.Ticket) (url string, err error) {
	ctx, scope := a.otel.NewScope(ctx, constant.OtelDocumentScopeName, constant.OtelDocumentScopeName+".ArchiveTicket")
	defer scope.End()
	defer scope.TraceIfError(err)

	return a.archive(ctx, model.KindTicket, ticket.OrderID, model.DirectoryTickets, func(ctx context.Context) ([]byte, error) {
		return a.renderer.Ticket(ctx, ticket)
	})
}

func (a *archiverImpl) archive(
	ctx context.Context,
	kind, id, directory string,
	render func(ctx context.Context) ([]byte, error),
) (string, error) {
	release, err := a.locker.Obtain(ctx, shared.BuildCacheKey(lockPrefix, kind, id), lockTTL)
	if errors.Is(err, redis.ErrLockHeld) {
		log.Info().Str("kind", kind).Str("id", id).Msg("document is being archived by another worker")

		return "", fmt.Errorf("%s %s: %w", kind, id, err)
	}

	if err != nil {
		log.Error().Err(err).Str("kind", kind).Str("id", id).Msg("failed to lock document")

		return "", fmt.Errorf("failed to lock %s %s: %w", kind, id, err)
	}

	defer func() {
		if err := release(context.WithoutCancel(ctx)); err != nil {
			log.Warn().Err(err).Str("kind", kind).Str("id", id).Msg("failed to release document lock")
		}
	}()

	key := path.Join(directory, id+".pdf")

	stored, err := a.storage.Exists(ctx, key)
	if err != nil {
		return "", fmt.Errorf("failed to check %s %s: %w", kind, id, err)
	}

	if stored {
		log.Debug().Str("kind", kind).Str("id", id).Msg("document already archived")

		return a.storage.URL(key), nil
	}

	doc, err := render(ctx)
	if err != nil {
		return "", err
	}

	url, err := a.storage.Put(ctx, key, constant.ContentTypePDF, doc)
	if err != nil {
		log.Error().Err(err).Str("kind", kind).Str("id", id).Msg("failed to upload document")

		return "", fmt.Errorf("failed to upload %s %s: %w", kind, id, err)
	}

	log.Info().Str("kind", kind).Str("id", id).Str("url", url).Msg("document archived")

	return url, nil
}
