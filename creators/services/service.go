// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"
	"fmt"
	"strings"

	uuid "github.com/gofrs/uuid"

	"github.com/ankitsaini000/rwew-sub002/creators/completion"
	creatorErrors "github.com/ankitsaini000/rwew-sub002/creators/errors"
	"github.com/ankitsaini000/rwew-sub002/creators/models"
	"github.com/ankitsaini000/rwew-sub002/creators/repository"
	"github.com/ankitsaini000/rwew-sub002/creators/validation"
	"github.com/ankitsaini000/rwew-sub002/internal/cache"
	"github.com/ankitsaini000/rwew-sub002/internal/draftstore"
	"github.com/ankitsaini000/rwew-sub002/internal/pkg/log"
)

const (
	usernameCacheKeyPrefix = "creators:username:"
	publicProfilePrefix    = "creators:public:"
)

type service struct {
	repo     repository.CreatorRepository
	drafts   *draftstore.Store
	cache    *cache.GenericCacheService
	notifier Notifier
}

var _ CreatorService = (*service)(nil)

// NewService constructs a creator service. The notifier may be nil; lifecycle
// events are then dropped.
func NewService(repo repository.CreatorRepository, drafts *draftstore.Store, cacheService *cache.GenericCacheService, notifier Notifier) CreatorService {
	return &service{
		repo:     repo,
		drafts:   drafts,
		cache:    cacheService,
		notifier: notifier,
	}
}

// CreateProfile starts a creator profile from the personal-info step. The
// profile is born in draft status with completion derived server side.
func (s *service) CreateProfile(ctx context.Context, userID uuid.UUID, req *models.CreateCreatorRequest) (*models.Creator, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: missing request body", creatorErrors.ErrValidationFailed)
	}
	if err := validation.ValidatePersonalInfo(&req.PersonalInfo); err != nil {
		return nil, fmt.Errorf("%w: %v", creatorErrors.ErrValidationFailed, err)
	}

	if existing, err := s.repo.FindByUserID(ctx, userID); err == nil && existing != nil {
		return nil, creatorErrors.ErrCreatorAlreadyExists
	}

	username := strings.ToLower(req.PersonalInfo.Username)
	taken, err := s.repo.UsernameExists(ctx, username)
	if err != nil {
		return nil, creatorErrors.WrapDatabaseError(err)
	}
	if taken {
		return nil, creatorErrors.ErrUsernameTaken
	}

	creator := &models.Creator{
		ObjectId:       userID,
		Username:       username,
		Status:         models.StatusDraft,
		OnboardingStep: models.SectionPersonalInfo,
		PersonalInfo:   req.PersonalInfo,
	}
	creator.PersonalInfo.Username = username
	creator.CompletionStatus = completion.Evaluate(creator)

	if err := s.repo.Create(ctx, creator); err != nil {
		if strings.Contains(err.Error(), "username already exists") {
			return nil, creatorErrors.ErrUsernameTaken
		}
		return nil, creatorErrors.WrapDatabaseError(err)
	}

	s.mirrorDraft(ctx, userID, models.SectionPersonalInfo, creator.PersonalInfo)
	s.invalidateUsername(ctx, username)

	return creator, nil
}

func (s *service) GetMyProfile(ctx context.Context, userID uuid.UUID) (*models.Creator, error) {
	creator, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return nil, creatorErrors.ErrCreatorNotFound
		}
		return nil, creatorErrors.WrapDatabaseError(err)
	}
	// Stored flags may predate a predicate change; always serve derived ones.
	creator.CompletionStatus = completion.Evaluate(creator)
	return creator, nil
}

// GetByUsername serves the public profile page. Only published profiles are
// visible; suspended ones surface as suspended, everything else as not found.
func (s *service) GetByUsername(ctx context.Context, username string) (*models.Creator, error) {
	if err := validation.ValidateUsername(username); err != nil {
		return nil, fmt.Errorf("%w: %v", creatorErrors.ErrValidationFailed, err)
	}

	cacheKey := publicProfilePrefix + strings.ToLower(username)
	if s.cache != nil {
		var cached models.Creator
		if err := s.cache.GetCached(ctx, cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	creator, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return nil, creatorErrors.ErrCreatorNotFound
		}
		return nil, creatorErrors.WrapDatabaseError(err)
	}

	switch creator.Status {
	case models.StatusPublished:
		// visible
	case models.StatusSuspended:
		return nil, creatorErrors.ErrProfileSuspended
	default:
		return nil, creatorErrors.ErrCreatorNotFound
	}

	creator.CompletionStatus = completion.Evaluate(creator)

	if s.cache != nil {
		if err := s.cache.CacheData(ctx, cacheKey, creator); err != nil && err != cache.ErrCacheDisabled {
			log.WarnWithContext(ctx, "public profile cache write failed for %s: %v", username, err)
		}
	}

	return creator, nil
}

// GetProfileData returns the working copy the onboarding wizard edits: the
// persisted document with draft-cache payloads overlaid on any section that is
// still incomplete. A user with drafts but no persisted row gets an ephemeral
// draft document.
func (s *service) GetProfileData(ctx context.Context, userID uuid.UUID) (*models.Creator, error) {
	creator, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		if !strings.Contains(err.Error(), "not found") {
			return nil, creatorErrors.WrapDatabaseError(err)
		}
		creator = &models.Creator{
			ObjectId: userID,
			Status:   models.StatusDraft,
		}
	}

	s.overlayDrafts(ctx, creator)
	creator.CompletionStatus = completion.Evaluate(creator)

	return creator, nil
}

func (s *service) GetCompletionStatus(ctx context.Context, userID uuid.UUID) (*models.CompletionStatusResponse, error) {
	creator, err := s.GetProfileData(ctx, userID)
	if err != nil {
		return nil, err
	}

	status := completion.Evaluate(creator)
	return &models.CompletionStatusResponse{
		CompletionStatus: status,
		Percentage:       completion.Percentage(status),
		ReadyToPublish:   completion.RequiredComplete(status),
	}, nil
}

func (s *service) CheckUsername(ctx context.Context, username string) (*models.UsernameAvailabilityResponse, error) {
	if err := validation.ValidateUsername(username); err != nil {
		return nil, fmt.Errorf("%w: %v", creatorErrors.ErrValidationFailed, err)
	}

	normalized := strings.ToLower(username)
	cacheKey := usernameCacheKeyPrefix + normalized

	if s.cache != nil {
		var cached models.UsernameAvailabilityResponse
		if err := s.cache.GetCached(ctx, cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	taken, err := s.repo.UsernameExists(ctx, normalized)
	if err != nil {
		return nil, creatorErrors.WrapDatabaseError(err)
	}

	resp := &models.UsernameAvailabilityResponse{
		Username:  normalized,
		Available: !taken,
	}

	// Short TTL: availability goes stale the moment someone registers.
	if s.cache != nil && taken {
		if err := s.cache.CacheData(ctx, cacheKey, resp); err != nil && err != cache.ErrCacheDisabled {
			log.WarnWithContext(ctx, "username cache write failed for %s: %v", normalized, err)
		}
	}

	return resp, nil
}

// UpdateSections applies one or more section payloads in a single write. The
// first validation failure aborts the whole submit. Completion flags and
// social reach are rederived from the merged document; any client-sent flags
// are discarded.
func (s *service) UpdateSections(ctx context.Context, userID uuid.UUID, req *models.UpdateSectionsRequest) (*models.Creator, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: missing request body", creatorErrors.ErrValidationFailed)
	}
	if err := validation.ValidateUpdateSectionsRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", creatorErrors.ErrValidationFailed, err)
	}

	creator, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return nil, creatorErrors.ErrCreatorNotFound
		}
		return nil, creatorErrors.WrapDatabaseError(err)
	}

	oldUsername := creator.Username

	if req.PersonalInfo != nil {
		newUsername := strings.ToLower(req.PersonalInfo.Username)
		if newUsername != oldUsername {
			taken, err := s.repo.UsernameExists(ctx, newUsername)
			if err != nil {
				return nil, creatorErrors.WrapDatabaseError(err)
			}
			if taken {
				return nil, creatorErrors.ErrUsernameTaken
			}
			creator.Username = newUsername
		}
		creator.PersonalInfo = *req.PersonalInfo
		creator.PersonalInfo.Username = creator.Username
	}
	if req.ProfessionalInfo != nil {
		creator.ProfessionalInfo = *req.ProfessionalInfo
	}
	if req.DescriptionFaq != nil {
		creator.DescriptionFaq = *req.DescriptionFaq
	}
	if req.Pricing != nil {
		creator.Pricing = *req.Pricing
	}
	if req.GalleryPortfolio != nil {
		creator.GalleryPortfolio = *req.GalleryPortfolio
	}
	if req.SocialMedia != nil {
		creator.SocialMedia = *req.SocialMedia
		creator.SocialMedia.RecomputeReach()
	}
	if req.OnboardingStep != "" {
		creator.OnboardingStep = req.OnboardingStep
	}

	creator.CompletionStatus = completion.Evaluate(creator)

	if err := s.repo.Update(ctx, creator); err != nil {
		if strings.Contains(err.Error(), "username already exists") {
			return nil, creatorErrors.ErrUsernameTaken
		}
		return nil, creatorErrors.WrapDatabaseError(err)
	}

	s.mirrorRequestDrafts(ctx, userID, req)

	s.invalidateUsername(ctx, creator.Username)
	if oldUsername != creator.Username {
		s.invalidateUsername(ctx, oldUsername)
	}
	s.invalidatePublicProfile(ctx, creator.Username)

	return creator, nil
}

func (s *service) ResetDrafts(ctx context.Context, userID uuid.UUID) error {
	if s.drafts != nil {
		s.drafts.Purge(ctx, userID.String())
	}
	return nil
}

func (s *service) PublishProfile(ctx context.Context, userID uuid.UUID) (*models.Creator, error) {
	creator, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return nil, creatorErrors.ErrCreatorNotFound
		}
		return nil, creatorErrors.WrapDatabaseError(err)
	}

	if creator.Status == models.StatusPublished {
		return nil, creatorErrors.ErrAlreadyPublished
	}
	if creator.Status == models.StatusSuspended {
		return nil, creatorErrors.ErrProfileSuspended
	}

	status := completion.Evaluate(creator)
	if !completion.RequiredComplete(status) {
		return nil, creatorErrors.ErrNotPublishable
	}

	creator.Status = models.StatusPublished
	creator.CompletionStatus = status
	creator.ProfileURL = "/creator/" + creator.Username

	if err := s.repo.Update(ctx, creator); err != nil {
		return nil, creatorErrors.WrapDatabaseError(err)
	}

	// Published data is authoritative; the working drafts are spent.
	if s.drafts != nil {
		s.drafts.Purge(ctx, userID.String())
	}
	s.invalidatePublicProfile(ctx, creator.Username)

	if s.notifier != nil {
		s.notifier.ProfilePublished(ctx, userID, creator.Username)
	}

	return creator, nil
}

func (s *service) ListCreators(ctx context.Context, filter repository.CreatorFilter, page, limit int) (*models.CreatorsResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	creators, err := s.repo.Find(ctx, filter, limit, offset)
	if err != nil {
		return nil, creatorErrors.WrapDatabaseError(err)
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, creatorErrors.WrapDatabaseError(err)
	}

	for _, c := range creators {
		c.CompletionStatus = completion.Evaluate(c)
	}

	return &models.CreatorsResponse{
		Creators: creators,
		Total:    total,
	}, nil
}

func (s *service) UpdateCreatorStatus(ctx context.Context, userID uuid.UUID, status string) error {
	switch status {
	case models.StatusDraft, models.StatusPublished, models.StatusSuspended:
	default:
		return fmt.Errorf("%w: unknown status %q", creatorErrors.ErrValidationFailed, status)
	}

	creator, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return creatorErrors.ErrCreatorNotFound
		}
		return creatorErrors.WrapDatabaseError(err)
	}

	if status == models.StatusPublished && !completion.RequiredComplete(completion.Evaluate(creator)) {
		return creatorErrors.ErrNotPublishable
	}

	if err := s.repo.UpdateStatus(ctx, userID, status); err != nil {
		return creatorErrors.WrapDatabaseError(err)
	}

	s.invalidatePublicProfile(ctx, creator.Username)

	if s.notifier != nil {
		s.notifier.ProfileStatusChanged(ctx, userID, status)
	}

	return nil
}

// mirrorRequestDrafts keeps the draft cache in sync with persisted submits so
// the wizard resumes from the same place even if the primary store is briefly
// unreachable on the next read.
func (s *service) mirrorRequestDrafts(ctx context.Context, userID uuid.UUID, req *models.UpdateSectionsRequest) {
	if req.PersonalInfo != nil {
		s.mirrorDraft(ctx, userID, models.SectionPersonalInfo, req.PersonalInfo)
	}
	if req.ProfessionalInfo != nil {
		s.mirrorDraft(ctx, userID, models.SectionProfessionalInfo, req.ProfessionalInfo)
	}
	if req.DescriptionFaq != nil {
		s.mirrorDraft(ctx, userID, models.SectionDescriptionFaq, req.DescriptionFaq)
	}
	if req.Pricing != nil {
		s.mirrorDraft(ctx, userID, models.SectionPricing, req.Pricing)
	}
	if req.GalleryPortfolio != nil {
		s.mirrorDraft(ctx, userID, models.SectionGalleryPortfolio, req.GalleryPortfolio)
	}
	if req.SocialMedia != nil {
		s.mirrorDraft(ctx, userID, models.SectionSocialMedia, req.SocialMedia)
	}
}

func (s *service) mirrorDraft(ctx context.Context, userID uuid.UUID, section string, v interface{}) {
	if s.drafts == nil {
		return
	}
	if !s.drafts.SetJSON(ctx, userID.String(), section, v) {
		log.WarnWithContext(ctx, "draft mirror for %s/%s skipped", userID, section)
	}
}

// overlayDrafts fills incomplete sections from the draft cache. Persisted
// complete sections always win over drafts.
func (s *service) overlayDrafts(ctx context.Context, creator *models.Creator) {
	if s.drafts == nil {
		return
	}

	userID := creator.ObjectId.String()
	status := completion.Evaluate(creator)

	if !status[models.SectionPersonalInfo] {
		var draft models.PersonalInfo
		if s.drafts.GetJSON(ctx, userID, models.SectionPersonalInfo, &draft) {
			creator.PersonalInfo = draft
		}
	}
	if !status[models.SectionProfessionalInfo] {
		var draft models.ProfessionalInfo
		if s.drafts.GetJSON(ctx, userID, models.SectionProfessionalInfo, &draft) {
			creator.ProfessionalInfo = draft
		}
	}
	if !status[models.SectionDescriptionFaq] {
		var draft models.DescriptionFaq
		if s.drafts.GetJSON(ctx, userID, models.SectionDescriptionFaq, &draft) {
			creator.DescriptionFaq = draft
		}
	}
	if !status[models.SectionPricing] {
		var draft models.Pricing
		if s.drafts.GetJSON(ctx, userID, models.SectionPricing, &draft) {
			creator.Pricing = draft
		}
	}
	if !status[models.SectionGalleryPortfolio] {
		var draft models.GalleryPortfolio
		if s.drafts.GetJSON(ctx, userID, models.SectionGalleryPortfolio, &draft) {
			creator.GalleryPortfolio = draft
		}
	}
	if !status[models.SectionSocialMedia] {
		var draft models.SocialMedia
		if s.drafts.GetJSON(ctx, userID, models.SectionSocialMedia, &draft) {
			creator.SocialMedia = draft
			creator.SocialMedia.RecomputeReach()
		}
	}
}

func (s *service) invalidateUsername(ctx context.Context, username string) {
	if s.cache == nil || username == "" {
		return
	}
	if err := s.cache.Invalidate(ctx, usernameCacheKeyPrefix+username); err != nil && err != cache.ErrCacheDisabled && err != cache.ErrKeyNotFound {
		log.WarnWithContext(ctx, "username cache invalidation failed for %s: %v", username, err)
	}
}

func (s *service) invalidatePublicProfile(ctx context.Context, username string) {
	if s.cache == nil || username == "" {
		return
	}
	if err := s.cache.Invalidate(ctx, publicProfilePrefix+username); err != nil && err != cache.ErrCacheDisabled && err != cache.ErrKeyNotFound {
		log.WarnWithContext(ctx, "public profile cache invalidation failed for %s: %v", username, err)
	}
}
