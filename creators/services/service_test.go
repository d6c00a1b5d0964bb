package services

import (
	"context"
	"errors"
	"testing"

	uuid "github.com/gofrs/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	creatorErrors "github.com/ankitsaini000/rwew-sub002/creators/errors"
	"github.com/ankitsaini000/rwew-sub002/creators/models"
	"github.com/ankitsaini000/rwew-sub002/creators/repository"
)

// MockNotifier records lifecycle announcements.
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) ProfilePublished(ctx context.Context, userID uuid.UUID, username string) {
	m.Called(ctx, userID, username)
}

func (m *MockNotifier) ProfileStatusChanged(ctx context.Context, userID uuid.UUID, status string) {
	m.Called(ctx, userID, status)
}

func validPersonalInfo() models.PersonalInfo {
	return models.PersonalInfo{
		FirstName:         "Jane",
		LastName:          "Doe",
		Username:          "jane_doe",
		Location:          models.Location{State: "California", Country: "US"},
		YearsOfExperience: 4,
	}
}

// completeCreator has every publish-gating section filled in.
func completeCreator(userID uuid.UUID) *models.Creator {
	return &models.Creator{
		ObjectId:     userID,
		Username:     "jane_doe",
		Status:       models.StatusDraft,
		PersonalInfo: validPersonalInfo(),
		ProfessionalInfo: models.ProfessionalInfo{
			Title:        "Lifestyle Creator",
			Categories:   []string{"lifestyle"},
			ContentTypes: []string{"video"},
			Tags:         []string{"travel"},
		},
		DescriptionFaq: models.DescriptionFaq{
			BriefDescription: "Travel and lifestyle content for adventurous brands everywhere.",
			LongDescription:  "I make travel videos.",
			Faqs:             []models.FaqItem{{Question: "Where?", Answer: "Everywhere."}},
		},
		SocialMedia: models.SocialMedia{
			Platforms: map[string]models.SocialLink{
				"instagram": {URL: "https://instagram.com/janedoe", Followers: 12000},
			},
		},
	}
}

func TestCreateProfile(t *testing.T) {
	ctx := context.Background()
	userID := uuid.Must(uuid.NewV4())

	t.Run("creates a draft profile with derived completion", func(t *testing.T) {
		mockRepo := new(MockCreatorRepository)
		mockRepo.On("FindByUserID", ctx, userID).Return(nil, errors.New("creator not found")).Once()
		mockRepo.On("UsernameExists", ctx, "jane_doe").Return(false, nil).Once()
		mockRepo.On("Create", ctx, mock.MatchedBy(func(c *models.Creator) bool {
			return c.Status == models.StatusDraft &&
				c.Username == "jane_doe" &&
				c.CompletionStatus[models.SectionPersonalInfo] &&
				!c.CompletionStatus[models.SectionSocialMedia]
		})).Return(nil).Once()

		svc := NewService(mockRepo, nil, nil, nil)
		creator, err := svc.CreateProfile(ctx, userID, &models.CreateCreatorRequest{PersonalInfo: validPersonalInfo()})

		require.NoError(t, err)
		require.Equal(t, models.StatusDraft, creator.Status)
		require.True(t, creator.CompletionStatus[models.SectionPersonalInfo])
		mockRepo.AssertExpectations(t)
	})

	t.Run("lowercases the username", func(t *testing.T) {
		mockRepo := new(MockCreatorRepository)
		mockRepo.On("FindByUserID", ctx, userID).Return(nil, errors.New("creator not found")).Once()
		mockRepo.On("UsernameExists", ctx, "jane_doe").Return(false, nil).Once()
		mockRepo.On("Create", ctx, mock.Anything).Return(nil).Once()

		info := validPersonalInfo()
		info.Username = "Jane_Doe"

		svc := NewService(mockRepo, nil, nil, nil)
		creator, err := svc.CreateProfile(ctx, userID, &models.CreateCreatorRequest{PersonalInfo: info})

		require.NoError(t, err)
		require.Equal(t, "jane_doe", creator.Username)
		require.Equal(t, "jane_doe", creator.PersonalInfo.Username)
		mockRepo.AssertExpectations(t)
	})

	t.Run("rejects taken usernames", func(t *testing.T) {
		mockRepo := new(MockCreatorRepository)
		mockRepo.On("FindByUserID", ctx, userID).Return(nil, errors.New("creator not found")).Once()
		mockRepo.On("UsernameExists", ctx, "jane_doe").Return(true, nil).Once()

		svc := NewService(mockRepo, nil, nil, nil)
		_, err := svc.CreateProfile(ctx, userID, &models.CreateCreatorRequest{PersonalInfo: validPersonalInfo()})

		require.ErrorIs(t, err, creatorErrors.ErrUsernameTaken)
		mockRepo.AssertExpectations(t)
	})

	t.Run("rejects a second profile for the same user", func(t *testing.T) {
		mockRepo := new(MockCreatorRepository)
		mockRepo.On("FindByUserID", ctx, userID).Return(completeCreator(userID), nil).Once()

		svc := NewService(mockRepo, nil, nil, nil)
		_, err := svc.CreateProfile(ctx, userID, &models.CreateCreatorRequest{PersonalInfo: validPersonalInfo()})

		require.ErrorIs(t, err, creatorErrors.ErrCreatorAlreadyExists)
		mockRepo.AssertExpectations(t)
	})

	t.Run("rejects invalid personal info before touching the repository", func(t *testing.T) {
		mockRepo := new(MockCreatorRepository)

		info := validPersonalInfo()
		info.FirstName = ""

		svc := NewService(mockRepo, nil, nil, nil)
		_, err := svc.CreateProfile(ctx, userID, &models.CreateCreatorRequest{PersonalInfo: info})

		require.ErrorIs(t, err, creatorErrors.ErrValidationFailed)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestUpdateSections(t *testing.T) {
	ctx := context.Background()
	userID := uuid.Must(uuid.NewV4())

	t.Run("recomputes completion and ignores client flags", func(t *testing.T) {
		existing := completeCreator(userID)
		existing.ProfessionalInfo = models.ProfessionalInfo{}
		existing.CompletionStatus = models.CompletionStatus{models.SectionProfessionalInfo: true} // stale

		mockRepo := new(MockCreatorRepository)
		mockRepo.On("FindByUserID", ctx, userID).Return(existing, nil).Once()
		mockRepo.On("Update", ctx, mock.MatchedBy(func(c *models.Creator) bool {
			return c.CompletionStatus[models.SectionProfessionalInfo] &&
				c.CompletionStatus[models.SectionPersonalInfo]
		})).Return(nil).Once()

		req := &models.UpdateSectionsRequest{
			ProfessionalInfo: &models.ProfessionalInfo{
				Title:        "Food Creator",
				Categories:   []string{"food"},
				ContentTypes: []string{"reels"},
				Tags:         []string{"cooking"},
			},
		}

		svc := NewService(mockRepo, nil, nil, nil)
		creator, err := svc.UpdateSections(ctx, userID, req)

		require.NoError(t, err)
		require.True(t, creator.CompletionStatus[models.SectionProfessionalInfo])
		mockRepo.AssertExpectations(t)
	})

	t.Run("recomputes social reach from platform entries", func(t *testing.T) {
		existing := completeCreator(userID)

		mockRepo := new(MockCreatorRepository)
		mockRepo.On("FindByUserID", ctx, userID).Return(existing, nil).Once()
		mockRepo.On("Update", ctx, mock.Anything).Return(nil).Once()

		req := &models.UpdateSectionsRequest{
			SocialMedia: &models.SocialMedia{
				Platforms: map[string]models.SocialLink{
					"instagram": {URL: "https://instagram.com/janedoe", Followers: 5000},
					"youtube":   {URL: "https://youtube.com/@janedoe", Followers: 7000},
				},
				TotalReach: 999, // client value must be discarded
			},
		}

		svc := NewService(mockRepo, nil, nil, nil)
		creator, err := svc.UpdateSections(ctx, userID, req)

		require.NoError(t, err)
		require.Equal(t, int64(12000), creator.SocialMedia.TotalReach)
		mockRepo.AssertExpectations(t)
	})

	t.Run("rejects username changes onto a taken name", func(t *testing.T) {
		existing := completeCreator(userID)

		mockRepo := new(MockCreatorRepository)
		mockRepo.On("FindByUserID", ctx, userID).Return(existing, nil).Once()
		mockRepo.On("UsernameExists", ctx, "other_name").Return(true, nil).Once()

		info := validPersonalInfo()
		info.Username = "other_name"

		svc := NewService(mockRepo, nil, nil, nil)
		_, err := svc.UpdateSections(ctx, userID, &models.UpdateSectionsRequest{PersonalInfo: &info})

		require.ErrorIs(t, err, creatorErrors.ErrUsernameTaken)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("aborts the whole submit on the first invalid section", func(t *testing.T) {
		mockRepo := new(MockCreatorRepository)

		req := &models.UpdateSectionsRequest{
			ProfessionalInfo: &models.ProfessionalInfo{Title: ""},
		}

		svc := NewService(mockRepo, nil, nil, nil)
		_, err := svc.UpdateSections(ctx, userID, req)

		require.ErrorIs(t, err, creatorErrors.ErrValidationFailed)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("returns not found for missing profiles", func(t *testing.T) {
		mockRepo := new(MockCreatorRepository)
		mockRepo.On("FindByUserID", ctx, userID).Return(nil, errors.New("creator not found")).Once()

		svc := NewService(mockRepo, nil, nil, nil)
		_, err := svc.UpdateSections(ctx, userID, &models.UpdateSectionsRequest{})

		require.ErrorIs(t, err, creatorErrors.ErrCreatorNotFound)
	})
}

func TestPublishProfile(t *testing.T) {
	ctx := context.Background()
	userID := uuid.Must(uuid.NewV4())

	t.Run("publishes a complete draft and notifies", func(t *testing.T) {
		mockRepo := new(MockCreatorRepository)
		mockNotifier := new(MockNotifier)
		mockRepo.On("FindByUserID", ctx, userID).Return(completeCreator(userID), nil).Once()
		mockRepo.On("Update", ctx, mock.MatchedBy(func(c *models.Creator) bool {
			return c.Status == models.StatusPublished && c.ProfileURL == "/creator/jane_doe"
		})).Return(nil).Once()
		mockNotifier.On("ProfilePublished", ctx, userID, "jane_doe").Once()

		svc := NewService(mockRepo, nil, nil, mockNotifier)
		creator, err := svc.PublishProfile(ctx, userID)

		require.NoError(t, err)
		require.Equal(t, models.StatusPublished, creator.Status)
		mockRepo.AssertExpectations(t)
		mockNotifier.AssertExpectations(t)
	})

	t.Run("refuses to publish with an incomplete required section", func(t *testing.T) {
		incomplete := completeCreator(userID)
		incomplete.DescriptionFaq = models.DescriptionFaq{}

		mockRepo := new(MockCreatorRepository)
		mockRepo.On("FindByUserID", ctx, userID).Return(incomplete, nil).Once()

		svc := NewService(mockRepo, nil, nil, nil)
		_, err := svc.PublishProfile(ctx, userID)

		require.ErrorIs(t, err, creatorErrors.ErrNotPublishable)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("publishes without optional pricing and gallery", func(t *testing.T) {
		// completeCreator leaves pricing and gallery empty on purpose
		mockRepo := new(MockCreatorRepository)
		mockRepo.On("FindByUserID", ctx, userID).Return(completeCreator(userID), nil).Once()
		mockRepo.On("Update", ctx, mock.Anything).Return(nil).Once()

		svc := NewService(mockRepo, nil, nil, nil)
		creator, err := svc.PublishProfile(ctx, userID)

		require.NoError(t, err)
		require.False(t, creator.CompletionStatus[models.SectionPricing])
		require.False(t, creator.CompletionStatus[models.SectionGalleryPortfolio])
		mockRepo.AssertExpectations(t)
	})

	t.Run("rejects republish", func(t *testing.T) {
		published := completeCreator(userID)
		published.Status = models.StatusPublished

		mockRepo := new(MockCreatorRepository)
		mockRepo.On("FindByUserID", ctx, userID).Return(published, nil).Once()

		svc := NewService(mockRepo, nil, nil, nil)
		_, err := svc.PublishProfile(ctx, userID)

		require.ErrorIs(t, err, creatorErrors.ErrAlreadyPublished)
	})

	t.Run("rejects suspended profiles", func(t *testing.T) {
		suspended := completeCreator(userID)
		suspended.Status = models.StatusSuspended

		mockRepo := new(MockCreatorRepository)
		mockRepo.On("FindByUserID", ctx, userID).Return(suspended, nil).Once()

		svc := NewService(mockRepo, nil, nil, nil)
		_, err := svc.PublishProfile(ctx, userID)

		require.ErrorIs(t, err, creatorErrors.ErrProfileSuspended)
	})
}

func TestGetCompletionStatus(t *testing.T) {
	ctx := context.Background()
	userID := uuid.Must(uuid.NewV4())

	creator := completeCreator(userID) // 4 of 6 sections complete

	mockRepo := new(MockCreatorRepository)
	mockRepo.On("FindByUserID", ctx, userID).Return(creator, nil).Once()

	svc := NewService(mockRepo, nil, nil, nil)
	resp, err := svc.GetCompletionStatus(ctx, userID)

	require.NoError(t, err)
	require.Equal(t, 67, resp.Percentage)
	require.True(t, resp.ReadyToPublish)
	require.False(t, resp.CompletionStatus[models.SectionPricing])
	mockRepo.AssertExpectations(t)
}

func TestGetByUsername(t *testing.T) {
	ctx := context.Background()
	userID := uuid.Must(uuid.NewV4())

	t.Run("serves published profiles", func(t *testing.T) {
		published := completeCreator(userID)
		published.Status = models.StatusPublished

		mockRepo := new(MockCreatorRepository)
		mockRepo.On("FindByUsername", ctx, "jane_doe").Return(published, nil).Once()

		svc := NewService(mockRepo, nil, nil, nil)
		creator, err := svc.GetByUsername(ctx, "jane_doe")

		require.NoError(t, err)
		require.Equal(t, "jane_doe", creator.Username)
	})

	t.Run("hides draft profiles", func(t *testing.T) {
		mockRepo := new(MockCreatorRepository)
		mockRepo.On("FindByUsername", ctx, "jane_doe").Return(completeCreator(userID), nil).Once()

		svc := NewService(mockRepo, nil, nil, nil)
		_, err := svc.GetByUsername(ctx, "jane_doe")

		require.ErrorIs(t, err, creatorErrors.ErrCreatorNotFound)
	})

	t.Run("reports suspended profiles", func(t *testing.T) {
		suspended := completeCreator(userID)
		suspended.Status = models.StatusSuspended

		mockRepo := new(MockCreatorRepository)
		mockRepo.On("FindByUsername", ctx, "jane_doe").Return(suspended, nil).Once()

		svc := NewService(mockRepo, nil, nil, nil)
		_, err := svc.GetByUsername(ctx, "jane_doe")

		require.ErrorIs(t, err, creatorErrors.ErrProfileSuspended)
	})
}

func TestCheckUsername(t *testing.T) {
	ctx := context.Background()

	t.Run("reports availability", func(t *testing.T) {
		mockRepo := new(MockCreatorRepository)
		mockRepo.On("UsernameExists", ctx, "fresh_name").Return(false, nil).Once()

		svc := NewService(mockRepo, nil, nil, nil)
		resp, err := svc.CheckUsername(ctx, "fresh_name")

		require.NoError(t, err)
		require.True(t, resp.Available)
	})

	t.Run("normalizes case before the lookup", func(t *testing.T) {
		mockRepo := new(MockCreatorRepository)
		mockRepo.On("UsernameExists", ctx, "mixedcase").Return(true, nil).Once()

		svc := NewService(mockRepo, nil, nil, nil)
		resp, err := svc.CheckUsername(ctx, "MixedCase")

		require.NoError(t, err)
		require.False(t, resp.Available)
		require.Equal(t, "mixedcase", resp.Username)
	})

	t.Run("rejects malformed usernames", func(t *testing.T) {
		svc := NewService(new(MockCreatorRepository), nil, nil, nil)
		_, err := svc.CheckUsername(ctx, "a")

		require.ErrorIs(t, err, creatorErrors.ErrValidationFailed)
	})
}

func TestUpdateCreatorStatus(t *testing.T) {
	ctx := context.Background()
	userID := uuid.Must(uuid.NewV4())

	t.Run("suspends a creator and notifies", func(t *testing.T) {
		mockRepo := new(MockCreatorRepository)
		mockNotifier := new(MockNotifier)
		mockRepo.On("FindByUserID", ctx, userID).Return(completeCreator(userID), nil).Once()
		mockRepo.On("UpdateStatus", ctx, userID, models.StatusSuspended).Return(nil).Once()
		mockNotifier.On("ProfileStatusChanged", ctx, userID, models.StatusSuspended).Once()

		svc := NewService(mockRepo, nil, nil, mockNotifier)
		err := svc.UpdateCreatorStatus(ctx, userID, models.StatusSuspended)

		require.NoError(t, err)
		mockRepo.AssertExpectations(t)
		mockNotifier.AssertExpectations(t)
	})

	t.Run("rejects unknown statuses", func(t *testing.T) {
		svc := NewService(new(MockCreatorRepository), nil, nil, nil)
		err := svc.UpdateCreatorStatus(ctx, userID, "archived")

		require.ErrorIs(t, err, creatorErrors.ErrValidationFailed)
	})

	t.Run("gates admin publish on required sections", func(t *testing.T) {
		incomplete := completeCreator(userID)
		incomplete.SocialMedia = models.SocialMedia{}

		mockRepo := new(MockCreatorRepository)
		mockRepo.On("FindByUserID", ctx, userID).Return(incomplete, nil).Once()

		svc := NewService(mockRepo, nil, nil, nil)
		err := svc.UpdateCreatorStatus(ctx, userID, models.StatusPublished)

		require.ErrorIs(t, err, creatorErrors.ErrNotPublishable)
		mockRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestListCreators(t *testing.T) {
	ctx := context.Background()
	userID := uuid.Must(uuid.NewV4())

	status := models.StatusPublished
	filter := repository.CreatorFilter{Status: &status}

	mockRepo := new(MockCreatorRepository)
	mockRepo.On("Find", ctx, filter, 20, 0).Return([]*models.Creator{completeCreator(userID)}, nil).Once()
	mockRepo.On("Count", ctx, filter).Return(int64(1), nil).Once()

	svc := NewService(mockRepo, nil, nil, nil)
	resp, err := svc.ListCreators(ctx, filter, 1, 20)

	require.NoError(t, err)
	require.Len(t, resp.Creators, 1)
	require.Equal(t, int64(1), resp.Total)
	mockRepo.AssertExpectations(t)
}
