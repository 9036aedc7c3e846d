package impl

import (
	"context"
	"log/slog"
	"time"

	"phonebook/config"
	deliverycontext "phonebook/internal/delivery/context"
	"phonebook/internal/domain/entity"
	domainerrors "phonebook/internal/domain/errors"
	"phonebook/internal/domain/ownership"
	"phonebook/internal/domain/repository"
	"phonebook/internal/domain/service"
	"phonebook/internal/errors"
	"phonebook/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// searchService implements the SearchUsecase interface.
type searchService struct {
	txManager       repository.TransactionManager
	codec           service.IdentifierCodec
	qrCode          service.QRCodeService
	metrics         service.MetricsRecorder
	validate        *validator.Validate
	defaultPageSize int
	maxPageSize     int
	logger          *slog.Logger
}

// NewSearchService is the constructor for searchService.
func NewSearchService(
	txManager repository.TransactionManager,
	codec service.IdentifierCodec,
	qrCode service.QRCodeService,
	metricsRecorder service.MetricsRecorder,
	validate *validator.Validate,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.SearchUsecase {
	srv := &searchService{
		txManager:       txManager,
		codec:           codec,
		qrCode:          qrCode,
		metrics:         metricsRecorder,
		validate:        validate,
		defaultPageSize: 20,
		maxPageSize:     100,
		logger:          logger,
	}
	if cfg != nil && cfg.Phonebook != nil {
		srv.defaultPageSize = cfg.Phonebook.DefaultPageSize
		srv.maxPageSize = cfg.Phonebook.MaxPageSize
	}

	return srv
}

// List searches every entry.
func (srv *searchService) List(ctx context.Context, input usecase.ListEntriesInput) (page *usecase.EntryPage, err error) {
	defer srv.observe(ctx, usecase.OpList, time.Now(), &err)

	return srv.list(ctx, nil, input)
}

// ListMine searches the entries owned by the caller.
func (srv *searchService) ListMine(ctx context.Context, caller uuid.UUID, input usecase.ListEntriesInput) (page *usecase.EntryPage, err error) {
	defer srv.observe(ctx, usecase.OpList, time.Now(), &err)

	if caller == uuid.Nil {
		return nil, domainerrors.ErrUnauthorized
	}

	return srv.list(ctx, &caller, input)
}

func (srv *searchService) list(ctx context.Context, owner *uuid.UUID, input usecase.ListEntriesInput) (*usecase.EntryPage, error) {
	if err := srv.validate.StructCtx(ctx, input); err != nil {
		return nil, validationError(err)
	}

	filter := repository.EntryFilter{
		Type:    input.Type,
		City:    input.City,
		Search:  input.Search,
		OwnerID: owner,
	}
	page := repository.Page{
		Limit:      srv.pageSize(input.Limit),
		Offset:     input.Offset,
		Descending: input.OrderBy == usecase.OrderCreatedAtDesc,
	}

	result := &usecase.EntryPage{Limit: page.Limit, Offset: page.Offset}
	err := srv.txManager.Read(ctx, func(repoFactory repository.RepositoryFactory) error {
		entries, total, err := repoFactory.NewEntryRepository().List(ctx, filter, page)
		if err != nil {
			return errors.Wrap(err, "failed to list entries")
		}

		items, err := attachRatings(ctx, repoFactory.NewRatingRepository(), entries)
		if err != nil {
			return err
		}
		result.Items = items
		result.Total = total

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// Get returns an entry the caller owns.
func (srv *searchService) Get(ctx context.Context, caller uuid.UUID, entryToken string) (view *entity.EntryView, err error) {
	defer srv.observe(ctx, usecase.OpGet, time.Now(), &err)

	return srv.getOwned(ctx, caller, entryToken)
}

// ContactCard renders an owned entry as a vCard QR code.
func (srv *searchService) ContactCard(ctx context.Context, caller uuid.UUID, entryToken string) (png []byte, err error) {
	defer srv.observe(ctx, usecase.OpGet, time.Now(), &err)

	view, err := srv.getOwned(ctx, caller, entryToken)
	if err != nil {
		return nil, err
	}

	png, err = srv.qrCode.GenerateEntryCard(view.Entry)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render contact card")
	}

	return png, nil
}

func (srv *searchService) getOwned(ctx context.Context, caller uuid.UUID, entryToken string) (*entity.EntryView, error) {
	entryID, err := srv.codec.Decode(entryToken, entity.KindEntry)
	if err != nil {
		return nil, identifierError(err, usecase.ReasonInvalidEntryID, usecase.ReasonMalformedEntryID)
	}

	var view *entity.EntryView
	err = srv.txManager.Read(ctx, func(repoFactory repository.RepositoryFactory) error {
		entry, err := repoFactory.NewEntryRepository().FindByID(ctx, entryID)
		if err != nil {
			return mapEntryError(err, "failed to find entry")
		}

		// Entries of other users are indistinguishable from missing ones
		if ownership.Authorize(caller, entry) != nil {
			return errors.Wrap(domainerrors.ErrNotFound, "entry not owned by caller")
		}

		views, err := attachRatings(ctx, repoFactory.NewRatingRepository(), []*entity.Entry{entry})
		if err != nil {
			return err
		}
		view = views[0]

		return nil
	})
	if err != nil {
		return nil, err
	}

	return view, nil
}

// pageSize applies the configured default and upper bound to a requested limit.
func (srv *searchService) pageSize(requested int) int {
	switch {
	case requested <= 0:
		return srv.defaultPageSize
	case requested > srv.maxPageSize:
		return srv.maxPageSize
	default:
		return requested
	}
}

func (srv *searchService) observe(ctx context.Context, op string, start time.Time, errp *error) {
	*errp = usecase.WithOperationReason(op, *errp)

	outcome := service.OutcomeOK
	if *errp != nil {
		outcome = errorCode(*errp)
		logOperationFailure(deliverycontext.GetLoggerOrDefault(ctx, srv.logger), op, *errp)
	}
	srv.metrics.ObserveOperation(op, outcome, time.Since(start))
}
