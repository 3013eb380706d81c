// ABOUTME: Clip service manages each owner's list of saved articles
// ABOUTME: Uses indicator matching to keep clip, unclip and toggle consistent with the stored list

package clip

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"clipper-app-api/core/domain"
	"clipper-app-api/core/errors"
	"clipper-app-api/core/interfaces"
	"clipper-app-api/pkg/metrics"
)

// AnnotatedItem is an article paired with whether the owner already clipped it
type AnnotatedItem struct {
	Item    domain.Clipped
	Clipped bool
}

// ClipService handles clip operations
type ClipService struct {
	storage interfaces.ClipStorage
	logger  interfaces.Logger
	now     func() time.Time

	// mu serializes read-modify-write sequences against storage
	mu sync.Mutex
}

// NewClipService creates a new clip service instance
func NewClipService(storage interfaces.ClipStorage, logger interfaces.Logger) *ClipService {
	return &ClipService{
		storage: storage,
		logger:  logger,
		now:     time.Now,
	}
}

// List returns the owner's clips in the order they were saved
func (s *ClipService) List(ctx context.Context, owner string) ([]domain.Clipped, error) {
	if err := validateOwner(owner); err != nil {
		return nil, err
	}

	clips, err := s.storage.List(ctx, owner)
	if err != nil {
		return nil, errors.WrapError(err, "failed to list clips")
	}
	return clips, nil
}

// Indicators returns the indicator list for the owner's clips
func (s *ClipService) Indicators(ctx context.Context, owner string) ([]domain.ClippedIndicator, error) {
	clips, err := s.List(ctx, owner)
	if err != nil {
		return nil, err
	}
	return Indicators(clips), nil
}

// Clip saves item for owner. It reports false without writing when the item is already clipped.
func (s *ClipService) Clip(ctx context.Context, owner string, item domain.Clipped) (added bool, err error) {
	defer func() { metrics.RecordClipOperation("clip", err) }()

	if err := validateOwner(owner); err != nil {
		return false, err
	}
	if err := validateIndicator(item.Indicator()); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.clipLocked(ctx, owner, item)
}

// Unclip removes the clip denoted by indicator
func (s *ClipService) Unclip(ctx context.Context, owner string, indicator domain.ClippedIndicator) (err error) {
	defer func() { metrics.RecordClipOperation("unclip", err) }()

	if err := validateOwner(owner); err != nil {
		return err
	}
	if err := validateIndicator(indicator); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.unclipLocked(ctx, owner, indicator)
}

// Toggle clips item when it is not clipped and unclips it otherwise.
// It returns whether the item is clipped afterwards.
func (s *ClipService) Toggle(ctx context.Context, owner string, item domain.Clipped) (clipped bool, err error) {
	defer func() { metrics.RecordClipOperation("toggle", err) }()

	if err := validateOwner(owner); err != nil {
		return false, err
	}
	if err := validateIndicator(item.Indicator()); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	clips, err := s.storage.List(ctx, owner)
	if err != nil {
		return false, errors.WrapError(err, "failed to list clips")
	}

	if IsIndicated(Indicators(clips), item) {
		if err := s.unclipLocked(ctx, owner, item.Indicator()); err != nil {
			return false, err
		}
		return false, nil
	}

	if _, err := s.clipLocked(ctx, owner, item); err != nil {
		return false, err
	}
	return true, nil
}

// Check returns the position of indicator in the owner's list and whether it is clipped
func (s *ClipService) Check(ctx context.Context, owner string, indicator domain.ClippedIndicator) (int, bool, error) {
	indicators, err := s.Indicators(ctx, owner)
	if err != nil {
		return NotFound, false, err
	}

	index := GetIndicatorIndex(indicators, indicator)
	return index, index != NotFound, nil
}

// Annotate flags each item with whether the owner already clipped it
func (s *ClipService) Annotate(ctx context.Context, owner string, items []domain.Clipped) ([]AnnotatedItem, error) {
	var indicators []domain.ClippedIndicator
	if strings.TrimSpace(owner) != "" {
		var err error
		indicators, err = s.Indicators(ctx, owner)
		if err != nil {
			return nil, err
		}
	}

	set := NewIndicatorSet(indicators)
	annotated := make([]AnnotatedItem, 0, len(items))
	for _, item := range items {
		annotated = append(annotated, AnnotatedItem{
			Item:    item,
			Clipped: set.Contains(item),
		})
	}
	return annotated, nil
}

func (s *ClipService) clipLocked(ctx context.Context, owner string, item domain.Clipped) (bool, error) {
	clips, err := s.storage.List(ctx, owner)
	if err != nil {
		return false, errors.WrapError(err, "failed to list clips")
	}

	if IsIndicated(Indicators(clips), item) {
		return false, nil
	}

	clippedAt := s.now().UTC()
	item.ClippedAt = &clippedAt

	if err := s.storage.Save(ctx, owner, item); err != nil {
		return false, errors.WrapError(err, "failed to save clip")
	}

	s.log("Article clipped", owner, item.Indicator())
	return true, nil
}

func (s *ClipService) unclipLocked(ctx context.Context, owner string, indicator domain.ClippedIndicator) error {
	clips, err := s.storage.List(ctx, owner)
	if err != nil {
		return errors.WrapError(err, "failed to list clips")
	}

	if GetIndicatorIndex(Indicators(clips), indicator) == NotFound {
		return errors.NewNotFound("clip", indicator.Publisher+"/"+indicator.ID)
	}

	if err := s.storage.Delete(ctx, owner, indicator); err != nil {
		return errors.WrapError(err, "failed to delete clip")
	}

	s.log("Article unclipped", owner, indicator)
	return nil
}

func (s *ClipService) log(msg, owner string, indicator domain.ClippedIndicator) {
	if s.logger == nil {
		return
	}
	s.logger.Info(msg, map[string]interface{}{
		"owner":     owner,
		"publisher": indicator.Publisher,
		"id":        indicator.ID,
	})
}

func validateOwner(owner string) error {
	if strings.TrimSpace(owner) == "" {
		return errors.NewValidation("owner", "owner cannot be empty")
	}
	return validateKeyLength("owner", owner)
}

func validateIndicator(indicator domain.ClippedIndicator) error {
	if indicator.ID == "" {
		return errors.NewValidation("id", "article id cannot be empty")
	}
	if indicator.Publisher == "" {
		return errors.NewValidation("publisher", "article publisher cannot be empty")
	}
	if err := validateKeyLength("id", indicator.ID); err != nil {
		return err
	}
	return validateKeyLength("publisher", indicator.Publisher)
}

func validateKeyLength(field, value string) error {
	if utf8.RuneCountInString(value) > domain.MaxKeyLength {
		return errors.NewValidation(field, fmt.Sprintf("cannot exceed %d characters", domain.MaxKeyLength))
	}
	return nil
}
