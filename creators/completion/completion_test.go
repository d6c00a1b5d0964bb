package completion

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ankitsaini000/rwew-sub002/creators/models"
)

func completePersonalInfo() models.PersonalInfo {
	return models.PersonalInfo{
		FirstName:         "Jane",
		LastName:          "Doe",
		Username:          "jane_doe",
		Location:          models.Location{State: "California", Country: "US"},
		YearsOfExperience: 4,
	}
}

func TestPersonalInfoComplete(t *testing.T) {
	t.Run("complete when identity and location present", func(t *testing.T) {
		require.True(t, PersonalInfoComplete(completePersonalInfo()))
	})

	t.Run("incomplete without experience", func(t *testing.T) {
		p := completePersonalInfo()
		p.YearsOfExperience = 0
		require.False(t, PersonalInfoComplete(p))
	})

	t.Run("incomplete without country", func(t *testing.T) {
		p := completePersonalInfo()
		p.Location.Country = ""
		require.False(t, PersonalInfoComplete(p))
	})
}

func TestPricingComplete(t *testing.T) {
	pkg := models.Package{Name: "Basic", Price: 100, Description: "One post"}

	t.Run("all three packages required", func(t *testing.T) {
		require.True(t, PricingComplete(models.Pricing{Basic: pkg, Standard: pkg, Premium: pkg}))
		require.False(t, PricingComplete(models.Pricing{Basic: pkg, Standard: pkg}))
	})

	t.Run("partially filled package does not count", func(t *testing.T) {
		partial := models.Package{Name: "Basic", Price: 0, Description: "free?"}
		require.False(t, PricingComplete(models.Pricing{Basic: partial, Standard: pkg, Premium: pkg}))
	})
}

func TestSocialMediaComplete(t *testing.T) {
	t.Run("one linked platform suffices", func(t *testing.T) {
		require.True(t, SocialMediaComplete(models.SocialMedia{
			Platforms: map[string]models.SocialLink{
				"instagram": {URL: "https://instagram.com/jane", Followers: 5000},
			},
		}))
	})

	t.Run("follower counts without URLs do not count", func(t *testing.T) {
		require.False(t, SocialMediaComplete(models.SocialMedia{
			Platforms: map[string]models.SocialLink{
				"instagram": {Followers: 5000},
			},
		}))
	})

	t.Run("empty map is incomplete", func(t *testing.T) {
		require.False(t, SocialMediaComplete(models.SocialMedia{}))
	})
}

func TestEvaluate(t *testing.T) {
	creator := &models.Creator{
		PersonalInfo: completePersonalInfo(),
		ProfessionalInfo: models.ProfessionalInfo{
			Title:        "Lifestyle Creator",
			Categories:   []string{"lifestyle"},
			ContentTypes: []string{"reels"},
			Tags:         []string{"fashion"},
		},
		DescriptionFaq: models.DescriptionFaq{
			BriefDescription: "Lifestyle and travel content for growing consumer brands worldwide.",
			LongDescription:  "Full length description.",
			Faqs:             []models.FaqItem{{Question: "Q", Answer: "A"}},
		},
		SocialMedia: models.SocialMedia{
			Platforms: map[string]models.SocialLink{
				"instagram": {URL: "https://instagram.com/jane", Followers: 5000},
			},
		},
	}

	status := Evaluate(creator)

	require.True(t, status[models.SectionPersonalInfo])
	require.True(t, status[models.SectionProfessionalInfo])
	require.True(t, status[models.SectionDescriptionFaq])
	require.True(t, status[models.SectionSocialMedia])
	require.False(t, status[models.SectionPricing])
	require.False(t, status[models.SectionGalleryPortfolio])

	t.Run("stored flags never leak into the result", func(t *testing.T) {
		creator.CompletionStatus = models.CompletionStatus{models.SectionPricing: true}
		require.False(t, Evaluate(creator)[models.SectionPricing])
	})
}

func TestPercentage(t *testing.T) {
	t.Run("four of six rounds to 67", func(t *testing.T) {
		status := models.CompletionStatus{
			models.SectionPersonalInfo:     true,
			models.SectionProfessionalInfo: true,
			models.SectionDescriptionFaq:   true,
			models.SectionSocialMedia:      true,
		}
		require.Equal(t, 67, Percentage(status))
	})

	t.Run("empty map is zero", func(t *testing.T) {
		require.Equal(t, 0, Percentage(models.CompletionStatus{}))
	})

	t.Run("all sections is 100", func(t *testing.T) {
		status := models.CompletionStatus{}
		for _, section := range models.AllSections {
			status[section] = true
		}
		require.Equal(t, 100, Percentage(status))
	})
}

func TestRequiredComplete(t *testing.T) {
	required := models.CompletionStatus{
		models.SectionPersonalInfo:     true,
		models.SectionProfessionalInfo: true,
		models.SectionDescriptionFaq:   true,
		models.SectionSocialMedia:      true,
	}

	t.Run("pricing and gallery do not gate", func(t *testing.T) {
		require.True(t, RequiredComplete(required))
	})

	t.Run("any missing required section blocks", func(t *testing.T) {
		partial := models.CompletionStatus{}
		for k, v := range required {
			partial[k] = v
		}
		partial[models.SectionSocialMedia] = false
		require.False(t, RequiredComplete(partial))
	})
}
