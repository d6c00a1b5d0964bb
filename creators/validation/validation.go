package validation

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/ankitsaini000/rwew-sub002/creators/models"
)

// Validation bounds
const (
	usernameMinLength = 3
	usernameMaxLength = 30

	briefDescriptionMin = 50
	briefDescriptionMax = 150
	longDescriptionMax  = 2000

	maxTags        = 5
	maxFaqs        = 20
	maxLanguages   = 10
	maxFeatures    = 10
	maxGalleryURLs = 50
)

var (
	// usernamePattern: URL-safe slug, letters/digits/underscore only.
	usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

	// phonePattern: E.164-style numbers with an optional leading plus.
	phonePattern = regexp.MustCompile(`^\+?[0-9]{7,15}$`)
)

// ValidateUsername checks length first, then format, so the caller always
// gets the most specific violated rule.
func ValidateUsername(username string) error {
	if len(username) < usernameMinLength {
		return fmt.Errorf("username must be at least %d characters", usernameMinLength)
	}
	if len(username) > usernameMaxLength {
		return fmt.Errorf("username cannot exceed %d characters", usernameMaxLength)
	}
	if !usernamePattern.MatchString(username) {
		return fmt.Errorf("username may only contain letters, numbers, and underscores")
	}
	return nil
}

// ValidatePhone checks the phone number used in publish verification.
func ValidatePhone(phone string) error {
	if strings.TrimSpace(phone) == "" {
		return fmt.Errorf("phone number is required")
	}
	if !phonePattern.MatchString(phone) {
		return fmt.Errorf("invalid phone number format")
	}
	return nil
}

// ValidatePersonalInfo enforces the personal-info submit rules. Empty
// optional fields are fine; present fields must be well-formed.
func ValidatePersonalInfo(p *models.PersonalInfo) error {
	if p == nil {
		return fmt.Errorf("personalInfo is required")
	}
	if strings.TrimSpace(p.FirstName) == "" {
		return fmt.Errorf("firstName is required")
	}
	if strings.TrimSpace(p.LastName) == "" {
		return fmt.Errorf("lastName is required")
	}
	if err := ValidateUsername(p.Username); err != nil {
		return err
	}
	if strings.TrimSpace(p.Location.State) == "" {
		return fmt.Errorf("state is required")
	}
	if strings.TrimSpace(p.Location.Country) == "" {
		return fmt.Errorf("country is required")
	}
	if p.YearsOfExperience <= 0 {
		return fmt.Errorf("yearsOfExperience must be greater than zero")
	}
	if len(p.Languages) > maxLanguages {
		return fmt.Errorf("cannot list more than %d languages", maxLanguages)
	}
	if p.ProfileImage != "" && !isValidURL(p.ProfileImage) {
		return fmt.Errorf("invalid profileImage URL")
	}
	return nil
}

// ValidateProfessionalInfo enforces the professional-info submit rules.
func ValidateProfessionalInfo(p *models.ProfessionalInfo) error {
	if p == nil {
		return fmt.Errorf("professionalInfo is required")
	}
	if strings.TrimSpace(p.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if len(p.Categories) == 0 {
		return fmt.Errorf("at least one category is required")
	}
	if len(p.ContentTypes) == 0 {
		return fmt.Errorf("at least one content type is required")
	}
	if len(p.Tags) == 0 {
		return fmt.Errorf("at least one tag is required")
	}
	if len(p.Tags) > maxTags {
		return fmt.Errorf("cannot use more than %d tags", maxTags)
	}
	return nil
}

// ValidateDescriptionFaq enforces the description submit rules, including
// the brief-description length window.
func ValidateDescriptionFaq(d *models.DescriptionFaq) error {
	if d == nil {
		return fmt.Errorf("descriptionFaq is required")
	}
	brief := strings.TrimSpace(d.BriefDescription)
	if brief == "" {
		return fmt.Errorf("briefDescription is required")
	}
	if len(brief) < briefDescriptionMin || len(brief) > briefDescriptionMax {
		return fmt.Errorf("briefDescription must be between %d and %d characters", briefDescriptionMin, briefDescriptionMax)
	}
	if strings.TrimSpace(d.LongDescription) == "" {
		return fmt.Errorf("longDescription is required")
	}
	if len(d.LongDescription) > longDescriptionMax {
		return fmt.Errorf("longDescription cannot exceed %d characters", longDescriptionMax)
	}
	if len(d.Faqs) == 0 {
		return fmt.Errorf("at least one FAQ is required")
	}
	if len(d.Faqs) > maxFaqs {
		return fmt.Errorf("cannot list more than %d FAQs", maxFaqs)
	}
	for i, faq := range d.Faqs {
		if strings.TrimSpace(faq.Question) == "" || strings.TrimSpace(faq.Answer) == "" {
			return fmt.Errorf("FAQ %d must have both a question and an answer", i+1)
		}
	}
	return nil
}

// ValidatePricing enforces the three-package invariant. Packages may be left
// empty (the section stays incomplete), but a package with any field set
// must be fully specified.
func ValidatePricing(p *models.Pricing) error {
	if p == nil {
		return fmt.Errorf("pricing is required")
	}
	for _, pkg := range []struct {
		name string
		p    models.Package
	}{
		{"basic", p.Basic},
		{"standard", p.Standard},
		{"premium", p.Premium},
	} {
		if err := validatePackage(pkg.name, pkg.p); err != nil {
			return err
		}
	}
	return nil
}

func validatePackage(name string, p models.Package) error {
	empty := p.Name == "" && p.Price == 0 && p.Description == "" &&
		p.DeliveryTimeDays == 0 && p.Revisions == 0 && len(p.Features) == 0
	if empty {
		return nil
	}
	if p.Name == "" {
		return fmt.Errorf("%s package requires a name", name)
	}
	if p.Price <= 0 {
		return fmt.Errorf("%s package price must be greater than zero", name)
	}
	if p.Description == "" {
		return fmt.Errorf("%s package requires a description", name)
	}
	if len(p.Features) > maxFeatures {
		return fmt.Errorf("%s package cannot list more than %d features", name, maxFeatures)
	}
	return nil
}

// ValidateGalleryPortfolio checks media URLs and portfolio items.
func ValidateGalleryPortfolio(g *models.GalleryPortfolio) error {
	if g == nil {
		return fmt.Errorf("galleryPortfolio is required")
	}
	if len(g.Images)+len(g.Videos) > maxGalleryURLs {
		return fmt.Errorf("cannot store more than %d media URLs", maxGalleryURLs)
	}
	for _, u := range g.Images {
		if !isValidURL(u) {
			return fmt.Errorf("invalid image URL: %s", u)
		}
	}
	for _, u := range g.Videos {
		if !isValidURL(u) {
			return fmt.Errorf("invalid video URL: %s", u)
		}
	}
	for i, item := range g.PortfolioItems {
		if strings.TrimSpace(item.Title) == "" {
			return fmt.Errorf("portfolio item %d requires a title", i+1)
		}
	}
	return nil
}

// ValidateSocialMedia rejects unknown platforms and negative follower counts.
func ValidateSocialMedia(s *models.SocialMedia) error {
	if s == nil {
		return fmt.Errorf("socialMedia is required")
	}
	known := make(map[string]struct{}, len(models.SocialPlatforms))
	for _, platform := range models.SocialPlatforms {
		known[platform] = struct{}{}
	}
	for platform, link := range s.Platforms {
		if _, ok := known[platform]; !ok {
			return fmt.Errorf("unknown social platform: %s", platform)
		}
		if link.Followers < 0 {
			return fmt.Errorf("%s follower count cannot be negative", platform)
		}
		if link.URL != "" && !isValidURL(link.URL) && !strings.HasPrefix(link.URL, "@") {
			return fmt.Errorf("invalid %s profile URL", platform)
		}
	}
	return nil
}

// ValidateUpdateSectionsRequest runs every provided section through its
// validator. The first violated rule aborts the whole submit; there is no
// partial save.
func ValidateUpdateSectionsRequest(req *models.UpdateSectionsRequest) error {
	if req == nil {
		return fmt.Errorf("request is required")
	}
	if req.PersonalInfo != nil {
		if err := ValidatePersonalInfo(req.PersonalInfo); err != nil {
			return err
		}
	}
	if req.ProfessionalInfo != nil {
		if err := ValidateProfessionalInfo(req.ProfessionalInfo); err != nil {
			return err
		}
	}
	if req.DescriptionFaq != nil {
		if err := ValidateDescriptionFaq(req.DescriptionFaq); err != nil {
			return err
		}
	}
	if req.Pricing != nil {
		if err := ValidatePricing(req.Pricing); err != nil {
			return err
		}
	}
	if req.GalleryPortfolio != nil {
		if err := ValidateGalleryPortfolio(req.GalleryPortfolio); err != nil {
			return err
		}
	}
	if req.SocialMedia != nil {
		if err := ValidateSocialMedia(req.SocialMedia); err != nil {
			return err
		}
	}
	return nil
}

func isValidURL(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}
