package impl

import (
	"context"
	"log/slog"

	"phonebook/internal/domain/entity"
	domainerrors "phonebook/internal/domain/errors"
	"phonebook/internal/domain/ownership"
	"phonebook/internal/domain/repository"
	"phonebook/internal/errors"
	"phonebook/internal/usecase"

	"github.com/google/uuid"
)

// lockOwnedEntry loads the entry under a row lock and checks the caller owns it.
func lockOwnedEntry(ctx context.Context, entryRepo repository.EntryRepository, caller uuid.UUID, entryID int64) (*entity.Entry, error) {
	entry, err := entryRepo.FindByIDForUpdate(ctx, entryID)
	if err != nil {
		return nil, mapEntryError(err, "failed to find entry")
	}

	if err := ownership.Authorize(caller, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

// loadView reads the entry back with its rating summary.
func loadView(ctx context.Context, repoFactory repository.RepositoryFactory, entryID int64) (*entity.EntryView, error) {
	entry, err := repoFactory.NewEntryRepository().FindByID(ctx, entryID)
	if err != nil {
		return nil, mapEntryError(err, "failed to reload entry")
	}

	views, err := attachRatings(ctx, repoFactory.NewRatingRepository(), []*entity.Entry{entry})
	if err != nil {
		return nil, err
	}

	return views[0], nil
}

func attachRatings(ctx context.Context, ratingRepo repository.RatingRepository, entries []*entity.Entry) ([]*entity.EntryView, error) {
	views := make([]*entity.EntryView, 0, len(entries))
	if len(entries) == 0 {
		return views, nil
	}

	ids := make([]int64, 0, len(entries))
	for _, entry := range entries {
		ids = append(ids, entry.ID)
	}

	summaries, err := ratingRepo.Summaries(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to summarise ratings")
	}

	for _, entry := range entries {
		views = append(views, &entity.EntryView{Entry: entry, Rating: summaries[entry.ID]})
	}

	return views, nil
}

func mapEntryError(err error, message string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, repository.ErrEntryNotFound) {
		return errors.Wrap(domainerrors.ErrNotFound, "entry not found")
	}

	return errors.Wrap(err, message)
}

// applyEntryUpdates copies supplied fields onto the entry and reports the columns that changed.
func applyEntryUpdates(entry *entity.Entry, input usecase.UpdateEntryInput) []repository.EntryField {
	var changed []repository.EntryField

	set := func(field repository.EntryField, target *string, value *string) {
		if value == nil || *target == *value {
			return
		}
		*target = *value
		changed = append(changed, field)
	}

	set(repository.EntryFieldName, &entry.Name, input.Name)
	set(repository.EntryFieldCity, &entry.City, input.City)
	set(repository.EntryFieldStreet, &entry.Street, input.Street)
	set(repository.EntryFieldPostalCode, &entry.PostalCode, input.PostalCode)
	set(repository.EntryFieldCountry, &entry.Country, input.Country)

	if input.Type != nil && entry.Type != *input.Type {
		entry.Type = *input.Type
		changed = append(changed, repository.EntryFieldType)
	}

	return changed
}

// uniqueNames drops repeated group names, keeping the first occurrence order.
func uniqueNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	unique := make([]string, 0, len(names))
	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		unique = append(unique, name)
	}

	return unique
}

func validationError(err error) error {
	return usecase.ValidationFailed(err, "")
}

// identifierError gives codec failures the reason matching the expected kind.
func identifierError(err error, mismatchReason, malformedReason string) error {
	switch {
	case errors.Is(err, domainerrors.ErrMismatchedIdentifierKind):
		return domainerrors.ErrMismatchedIdentifierKind.WithReason(mismatchReason)
	case errors.Is(err, domainerrors.ErrMalformedIdentifier):
		return domainerrors.ErrMalformedIdentifier.WithReason(malformedReason)
	default:
		return err
	}
}

func errorCode(err error) string {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.ErrorCode()
	}

	return domainerrors.CodeInternalError
}

func logOperationFailure(logger *slog.Logger, op string, err error) {
	code := errorCode(err)
	if code == domainerrors.CodeInternalError {
		logger.Error("Phonebook operation failed",
			slog.String("operation", op),
			slog.Any("error", errors.Cause(err)),
			slog.String("details", err.Error()),
		)

		return
	}

	logger.Debug("Phonebook operation rejected",
		slog.String("operation", op),
		slog.String("code", code),
	)
}
