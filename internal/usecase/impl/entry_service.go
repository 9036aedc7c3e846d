// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strconv"
	"time"

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

// entryService implements the EntryUsecase interface.
type entryService struct {
	txManager repository.TransactionManager
	codec     service.IdentifierCodec
	publisher service.EventPublisher
	metrics   service.MetricsRecorder
	validate  *validator.Validate
	logger    *slog.Logger
}

// NewEntryService is the constructor for entryService.
func NewEntryService(
	txManager repository.TransactionManager,
	codec service.IdentifierCodec,
	publisher service.EventPublisher,
	metricsRecorder service.MetricsRecorder,
	validate *validator.Validate,
	logger *slog.Logger,
) usecase.EntryUsecase {
	return &entryService{
		txManager: txManager,
		codec:     codec,
		publisher: publisher,
		metrics:   metricsRecorder,
		validate:  validate,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *entryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create stores a new entry with its groups and numbers.
func (srv *entryService) Create(ctx context.Context, caller uuid.UUID, input usecase.CreateEntryInput) (view *entity.EntryView, err error) {
	defer srv.observe(ctx, usecase.OpCreate, time.Now(), &err)

	if err := srv.validate.StructCtx(ctx, input); err != nil {
		return nil, validationError(err)
	}

	owner := caller
	entry := &entity.Entry{
		Name:       input.Name,
		City:       input.City,
		Street:     input.Street,
		PostalCode: input.PostalCode,
		Country:    input.Country,
		Type:       input.Type,
		OwnerID:    &owner,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		entryRepo := repoFactory.NewEntryRepository()
		groupRepo := repoFactory.NewGroupRepository()
		numberRepo := repoFactory.NewNumberRepository()

		if err := entryRepo.Create(ctx, entry); err != nil {
			return errors.Wrap(err, "failed to create entry")
		}

		for _, name := range uniqueNames(input.Groups) {
			group, err := groupRepo.GetOrCreate(ctx, name)
			if err != nil {
				return errors.Wrap(err, "failed to get or create group")
			}
			if err := entryRepo.AttachGroup(ctx, entry.ID, group.ID); err != nil {
				return errors.Wrap(err, "failed to attach group")
			}
		}

		for _, numberInput := range input.Numbers {
			number := &entity.Number{EntryID: entry.ID, Number: numberInput.Number, Type: numberInput.Type}
			if err := numberRepo.Create(ctx, number); err != nil {
				return errors.Wrap(err, "failed to create number")
			}
		}

		view, err = loadView(ctx, repoFactory, entry.ID)

		return err
	})
	if err != nil {
		return nil, err
	}

	srv.publish(ctx, caller, service.EntryCreated, entry.ID, nil)

	return view, nil
}

// Update changes the supplied fields of an owned entry.
func (srv *entryService) Update(ctx context.Context, caller uuid.UUID, entryToken string, input usecase.UpdateEntryInput) (view *entity.EntryView, err error) {
	defer srv.observe(ctx, usecase.OpUpdate, time.Now(), &err)

	entryID, err := srv.decodeEntry(entryToken)
	if err != nil {
		return nil, err
	}

	var changed []repository.EntryField
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		entryRepo := repoFactory.NewEntryRepository()

		entry, err := lockOwnedEntry(ctx, entryRepo, caller, entryID)
		if err != nil {
			return err
		}

		if err := srv.validate.StructCtx(ctx, input); err != nil {
			return validationError(err)
		}

		changed = applyEntryUpdates(entry, input)
		if len(changed) > 0 {
			if err := entryRepo.Update(ctx, entry, changed); err != nil {
				return mapEntryError(err, "failed to update entry")
			}
		}

		view, err = loadView(ctx, repoFactory, entry.ID)

		return err
	})
	if err != nil {
		return nil, err
	}

	if len(changed) > 0 {
		srv.publish(ctx, caller, service.EntryUpdated, entryID, nil)
	} else {
		srv.log(ctx).Debug("Entry update changed nothing", slog.Int64("entry_id", entryID))
	}

	return view, nil
}

// Delete removes an owned entry with its numbers, group links and ratings.
func (srv *entryService) Delete(ctx context.Context, caller uuid.UUID, entryToken string) (err error) {
	defer srv.observe(ctx, usecase.OpDelete, time.Now(), &err)

	entryID, err := srv.decodeEntry(entryToken)
	if err != nil {
		return err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		entryRepo := repoFactory.NewEntryRepository()

		if _, err := lockOwnedEntry(ctx, entryRepo, caller, entryID); err != nil {
			return err
		}

		return mapEntryError(entryRepo.Delete(ctx, entryID), "failed to delete entry")
	})
	if err != nil {
		return err
	}

	srv.publish(ctx, caller, service.EntryDeleted, entryID, nil)

	return nil
}

// AddToGroup attaches an owned entry to a group, creating the group if needed.
func (srv *entryService) AddToGroup(ctx context.Context, caller uuid.UUID, entryToken, groupName string) (view *entity.EntryView, err error) {
	defer srv.observe(ctx, usecase.OpAddToGroup, time.Now(), &err)

	entryID, err := srv.decodeEntry(entryToken)
	if err != nil {
		return nil, err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		entryRepo := repoFactory.NewEntryRepository()

		if _, err := lockOwnedEntry(ctx, entryRepo, caller, entryID); err != nil {
			return err
		}

		if err := srv.validate.VarCtx(ctx, groupName, "required,max=50"); err != nil {
			return usecase.ValidationFailed(err, "name")
		}

		group, err := repoFactory.NewGroupRepository().GetOrCreate(ctx, groupName)
		if err != nil {
			return errors.Wrap(err, "failed to get or create group")
		}
		if err := entryRepo.AttachGroup(ctx, entryID, group.ID); err != nil {
			return errors.Wrap(err, "failed to attach group")
		}

		view, err = loadView(ctx, repoFactory, entryID)

		return err
	})
	if err != nil {
		return nil, err
	}

	srv.publish(ctx, caller, service.EntryGroupAdded, entryID, func(event *service.EntryEvent) {
		event.Group = groupName
	})

	return view, nil
}

// RemoveFromGroup detaches an owned entry from an existing group. The group itself is kept.
func (srv *entryService) RemoveFromGroup(ctx context.Context, caller uuid.UUID, entryToken, groupName string) (view *entity.EntryView, err error) {
	defer srv.observe(ctx, usecase.OpRemoveFromGroup, time.Now(), &err)

	entryID, err := srv.decodeEntry(entryToken)
	if err != nil {
		return nil, err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		entryRepo := repoFactory.NewEntryRepository()

		if _, err := lockOwnedEntry(ctx, entryRepo, caller, entryID); err != nil {
			return err
		}

		group, err := repoFactory.NewGroupRepository().FindByName(ctx, groupName)
		if err != nil {
			if errors.Is(err, repository.ErrGroupNotFound) {
				return domainerrors.ErrGroupNotFound
			}

			return errors.Wrap(err, "failed to find group")
		}
		if err := entryRepo.DetachGroup(ctx, entryID, group.ID); err != nil {
			return errors.Wrap(err, "failed to detach group")
		}

		view, err = loadView(ctx, repoFactory, entryID)

		return err
	})
	if err != nil {
		return nil, err
	}

	srv.publish(ctx, caller, service.EntryGroupRemoved, entryID, func(event *service.EntryEvent) {
		event.Group = groupName
	})

	return view, nil
}

// AddNumber adds a phone number to an owned entry.
func (srv *entryService) AddNumber(ctx context.Context, caller uuid.UUID, entryToken string, input usecase.NumberInput) (view *entity.EntryView, err error) {
	defer srv.observe(ctx, usecase.OpAddNumber, time.Now(), &err)

	entryID, err := srv.decodeEntry(entryToken)
	if err != nil {
		return nil, err
	}

	var number *entity.Number
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := lockOwnedEntry(ctx, repoFactory.NewEntryRepository(), caller, entryID); err != nil {
			return err
		}

		if err := srv.validate.StructCtx(ctx, input); err != nil {
			return validationError(err)
		}

		number = &entity.Number{EntryID: entryID, Number: input.Number, Type: input.Type}
		if err := repoFactory.NewNumberRepository().Create(ctx, number); err != nil {
			return mapEntryError(err, "failed to create number")
		}

		view, err = loadView(ctx, repoFactory, entryID)

		return err
	})
	if err != nil {
		return nil, err
	}

	srv.publish(ctx, caller, service.EntryNumberAdded, entryID, func(event *service.EntryEvent) {
		event.NumberID = srv.codec.Encode(entity.KindNumber, number.ID)
	})

	return view, nil
}

// RemoveNumber deletes a number whose entry the caller owns and returns that entry.
func (srv *entryService) RemoveNumber(ctx context.Context, caller uuid.UUID, numberToken string) (view *entity.EntryView, err error) {
	defer srv.observe(ctx, usecase.OpRemoveNumber, time.Now(), &err)

	numberID, err := srv.codec.Decode(numberToken, entity.KindNumber)
	if err != nil {
		return nil, identifierError(err, usecase.ReasonInvalidNumberID, usecase.ReasonMalformedNumberID)
	}

	var entryID int64
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		numberRepo := repoFactory.NewNumberRepository()

		number, err := numberRepo.FindWithOwner(ctx, numberID)
		if err != nil {
			if errors.Is(err, repository.ErrNumberNotFound) {
				return domainerrors.ErrNotFound
			}

			return errors.Wrap(err, "failed to find number")
		}
		if err := ownership.Authorize(caller, number); err != nil {
			return err
		}
		entryID = number.EntryID

		// Serialise with concurrent mutations of the parent entry
		if _, err := lockOwnedEntry(ctx, repoFactory.NewEntryRepository(), caller, entryID); err != nil {
			return err
		}

		if err := numberRepo.Delete(ctx, numberID); err != nil {
			if errors.Is(err, repository.ErrNumberNotFound) {
				return domainerrors.ErrNotFound
			}

			return errors.Wrap(err, "failed to delete number")
		}

		view, err = loadView(ctx, repoFactory, entryID)

		return err
	})
	if err != nil {
		return nil, err
	}

	srv.publish(ctx, caller, service.EntryNumberRemoved, entryID, func(event *service.EntryEvent) {
		event.NumberID = numberToken
	})

	return view, nil
}

// AddRating records the caller's rate for an entry. Any authenticated user may rate any entry.
func (srv *entryService) AddRating(ctx context.Context, caller uuid.UUID, entryToken string, rate int) (view *entity.EntryView, err error) {
	defer srv.observe(ctx, usecase.OpAddRating, time.Now(), &err)

	entryID, err := srv.decodeEntry(entryToken)
	if err != nil {
		return nil, err
	}

	if err := srv.validate.VarCtx(ctx, rate, "gte=0,lte="+strconv.Itoa(entity.MaxRate)); err != nil {
		return nil, usecase.ValidationFailed(err, "rate")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		// Locked so the rating cannot outlive a concurrently deleted entry
		if _, err := repoFactory.NewEntryRepository().FindByIDForUpdate(ctx, entryID); err != nil {
			return mapEntryError(err, "failed to find entry")
		}

		rater := caller
		rating := &entity.Rating{EntryID: entryID, Rate: rate, CreatedBy: &rater}
		if err := repoFactory.NewRatingRepository().Create(ctx, rating); err != nil {
			return errors.Wrap(err, "failed to create rating")
		}

		view, err = loadView(ctx, repoFactory, entryID)

		return err
	})
	if err != nil {
		return nil, err
	}

	srv.publish(ctx, caller, service.EntryRated, entryID, func(event *service.EntryEvent) {
		event.Rate = &rate
	})

	return view, nil
}

func (srv *entryService) decodeEntry(token string) (int64, error) {
	id, err := srv.codec.Decode(token, entity.KindEntry)
	if err != nil {
		return 0, identifierError(err, usecase.ReasonInvalidEntryID, usecase.ReasonMalformedEntryID)
	}

	return id, nil
}

// observe finalises the error of an operation and records its outcome.
func (srv *entryService) observe(ctx context.Context, op string, start time.Time, errp *error) {
	*errp = usecase.WithOperationReason(op, *errp)

	outcome := service.OutcomeOK
	if *errp != nil {
		outcome = errorCode(*errp)
		logOperationFailure(srv.log(ctx), op, *errp)
	}
	srv.metrics.ObserveOperation(op, outcome, time.Since(start))
}

// publish announces a committed mutation. Failures are logged and counted, never returned.
func (srv *entryService) publish(ctx context.Context, caller uuid.UUID, eventType service.EntryEventType, entryID int64, decorate func(*service.EntryEvent)) {
	event := &service.EntryEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		EntryID:    srv.codec.Encode(entity.KindEntry, entryID),
		ActorID:    caller.String(),
		OccurredAt: time.Now().UTC(),
	}
	if decorate != nil {
		decorate(event)
	}

	if err := srv.publisher.PublishEntryEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish entry event",
			slog.String("type", string(eventType)),
			slog.String("entry_id", event.EntryID),
			slog.Any("error", err),
		)
		srv.metrics.ObservePublishFailure(eventType)
	}
}
