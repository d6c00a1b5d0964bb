// Package completion holds the single canonical completeness predicate for
// creator profiles. Every layer that needs a completion flag calls into this
// package; flags are never stored authoritatively or accepted from clients.
package completion

import (
	"math"

	"github.com/ankitsaini000/rwew-sub002/creators/models"
)

// PersonalInfoComplete requires the identity and location basics.
func PersonalInfoComplete(p models.PersonalInfo) bool {
	return p.FirstName != "" &&
		p.LastName != "" &&
		p.Username != "" &&
		p.Location.State != "" &&
		p.Location.Country != "" &&
		p.YearsOfExperience > 0
}

// ProfessionalInfoComplete requires a title plus at least one category,
// content type, and tag.
func ProfessionalInfoComplete(p models.ProfessionalInfo) bool {
	return p.Title != "" &&
		len(p.Categories) > 0 &&
		len(p.ContentTypes) > 0 &&
		len(p.Tags) > 0
}

// DescriptionFaqComplete requires both descriptions and at least one FAQ.
func DescriptionFaqComplete(d models.DescriptionFaq) bool {
	return d.BriefDescription != "" &&
		d.LongDescription != "" &&
		len(d.Faqs) > 0
}

// PricingComplete requires all three packages to be independently complete.
func PricingComplete(p models.Pricing) bool {
	return p.Basic.Complete() && p.Standard.Complete() && p.Premium.Complete()
}

// GalleryPortfolioComplete requires any media or at least one portfolio item.
func GalleryPortfolioComplete(g models.GalleryPortfolio) bool {
	return len(g.Images) > 0 || len(g.Videos) > 0 || len(g.PortfolioItems) > 0
}

// SocialMediaComplete requires at least one platform with a non-empty URL.
func SocialMediaComplete(s models.SocialMedia) bool {
	for _, link := range s.Platforms {
		if link.URL != "" {
			return true
		}
	}
	return false
}

// Evaluate derives the full completion map from the creator's current field
// values. It always works on the document as submitted, never on cached
// flags.
func Evaluate(c *models.Creator) models.CompletionStatus {
	return models.CompletionStatus{
		models.SectionPersonalInfo:     PersonalInfoComplete(c.PersonalInfo),
		models.SectionProfessionalInfo: ProfessionalInfoComplete(c.ProfessionalInfo),
		models.SectionDescriptionFaq:   DescriptionFaqComplete(c.DescriptionFaq),
		models.SectionPricing:          PricingComplete(c.Pricing),
		models.SectionGalleryPortfolio: GalleryPortfolioComplete(c.GalleryPortfolio),
		models.SectionSocialMedia:      SocialMediaComplete(c.SocialMedia),
	}
}

// Percentage converts a completion map into a whole-number percentage over
// all sections, optional ones included.
func Percentage(status models.CompletionStatus) int {
	if len(models.AllSections) == 0 {
		return 0
	}
	completed := 0
	for _, section := range models.AllSections {
		if status[section] {
			completed++
		}
	}
	return int(math.Round(100 * float64(completed) / float64(len(models.AllSections))))
}

// RequiredComplete reports whether every publish-gating section is complete.
// Pricing and gallery do not gate publish.
func RequiredComplete(status models.CompletionStatus) bool {
	for _, section := range models.RequiredSections {
		if !status[section] {
			return false
		}
	}
	return true
}
