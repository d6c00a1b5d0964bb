package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	uuid "github.com/gofrs/uuid"
)

// Creator statuses
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusSuspended = "suspended"
)

// Section names. These are the keys used in completion tracking, draft
// storage, and the wire payloads.
const (
	SectionPersonalInfo     = "personalInfo"
	SectionProfessionalInfo = "professionalInfo"
	SectionDescriptionFaq   = "descriptionFaq"
	SectionPricing          = "pricing"
	SectionGalleryPortfolio = "galleryPortfolio"
	SectionSocialMedia      = "socialMedia"
)

// AllSections lists every profile section in wizard order.
var AllSections = []string{
	SectionPersonalInfo,
	SectionProfessionalInfo,
	SectionDescriptionFaq,
	SectionPricing,
	SectionGalleryPortfolio,
	SectionSocialMedia,
}

// RequiredSections must be complete before a profile can go live. Pricing and
// gallery stay optional for publish gating.
var RequiredSections = []string{
	SectionPersonalInfo,
	SectionProfessionalInfo,
	SectionDescriptionFaq,
	SectionSocialMedia,
}

// CompletionStatus maps a section name to its derived completion flag.
// It is recomputed on every write and never accepted from clients.
type CompletionStatus map[string]bool

// Language pairs a spoken language with a proficiency level
type Language struct {
	Language    string `json:"language"`
	Proficiency string `json:"proficiency"`
}

// Location holds the creator's state and country
type Location struct {
	State   string `json:"state"`
	Country string `json:"country"`
}

// PersonalInfo is the first onboarding section
type PersonalInfo struct {
	FirstName         string     `json:"firstName"`
	LastName          string     `json:"lastName"`
	Username          string     `json:"username"`
	ProfileImage      string     `json:"profileImage"`
	Location          Location   `json:"location"`
	Languages         []Language `json:"languages"`
	YearsOfExperience int        `json:"yearsOfExperience"`
}

// TargetAudience describes who the creator's content reaches
type TargetAudience struct {
	Gender   string `json:"gender"`
	AgeRange string `json:"ageRange"`
}

// EventAvailability captures in-person event details
type EventAvailability struct {
	Available     bool     `json:"available"`
	EventTypes    []string `json:"eventTypes"`
	PricingTier   string   `json:"pricingTier"`
	TravelWilling bool     `json:"travelWilling"`
	LeadTimeDays  int      `json:"leadTimeDays"`
}

// ProfessionalInfo is the second onboarding section
type ProfessionalInfo struct {
	Title             string            `json:"title"`
	Categories        []string          `json:"categories"`
	Subcategories     []string          `json:"subcategories"`
	Tags              []string          `json:"tags"`
	ContentTypes      []string          `json:"contentTypes"`
	TargetAudience    TargetAudience    `json:"targetAudience"`
	SocialPreference  string            `json:"socialPreference"`
	EventAvailability EventAvailability `json:"eventAvailability"`
}

// FaqItem is a question/answer pair
type FaqItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// DescriptionFaq is the description section
type DescriptionFaq struct {
	BriefDescription string    `json:"briefDescription"`
	LongDescription  string    `json:"longDescription"`
	Faqs             []FaqItem `json:"faqs"`
	Specialties      []string  `json:"specialties"`
	WorkProcess      string    `json:"workProcess"`
}

// Package is one of the three fixed pricing tiers
type Package struct {
	Name             string   `json:"name"`
	Price            float64  `json:"price"`
	Description      string   `json:"description"`
	DeliveryTimeDays int      `json:"deliveryTimeDays"`
	Revisions        int      `json:"revisions"`
	Features         []string `json:"features"`
}

// Complete reports whether the package carries the minimum fields for
// publish accounting. A partially priced package leaves the whole pricing
// section incomplete.
func (p Package) Complete() bool {
	return p.Name != "" && p.Price > 0 && p.Description != ""
}

// Pricing holds exactly three packages plus the custom-offer switch
type Pricing struct {
	Basic             Package `json:"basic"`
	Standard          Package `json:"standard"`
	Premium           Package `json:"premium"`
	AllowCustomOffers bool    `json:"allowCustomOffers"`
}

// PortfolioLink is a titled external URL
type PortfolioLink struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// PortfolioItem is a case-study entry
type PortfolioItem struct {
	Title         string `json:"title"`
	Image         string `json:"image,omitempty"`
	VideoURL      string `json:"videoUrl,omitempty"`
	Category      string `json:"category"`
	Client        string `json:"client"`
	Description   string `json:"description"`
	PromotionType string `json:"promotionType"`
	ProjectDate   string `json:"projectDate"`
}

// GalleryPortfolio is the media section
type GalleryPortfolio struct {
	Images         []string        `json:"images"`
	Videos         []string        `json:"videos"`
	PortfolioLinks []PortfolioLink `json:"portfolioLinks"`
	PortfolioItems []PortfolioItem `json:"portfolioItems"`
}

// SocialPlatforms is the fixed platform set tracked per creator.
var SocialPlatforms = []string{"instagram", "youtube", "tiktok", "twitter", "facebook", "linkedin"}

// SocialLink is a per-platform handle and audience size
type SocialLink struct {
	URL       string `json:"url"`
	Followers int64  `json:"followers"`
}

// SocialMedia is the social reach section. TotalReach is derived from the
// follower counts and recomputed on every write.
type SocialMedia struct {
	Platforms  map[string]SocialLink `json:"platforms"`
	TotalReach int64                 `json:"totalReach"`
}

// RecomputeReach refreshes the derived total from the platform entries.
func (s *SocialMedia) RecomputeReach() {
	var total int64
	for _, link := range s.Platforms {
		total += link.Followers
	}
	s.TotalReach = total
}

// Creator is the aggregate profile document
type Creator struct {
	ObjectId         uuid.UUID        `json:"objectId" db:"user_id"`
	Username         string           `json:"username" db:"username"`
	Status           string           `json:"status" db:"status"`
	OnboardingStep   string           `json:"onboardingStep" db:"onboarding_step"`
	PersonalInfo     PersonalInfo     `json:"personalInfo" db:"personal_info"`
	ProfessionalInfo ProfessionalInfo `json:"professionalInfo" db:"professional_info"`
	DescriptionFaq   DescriptionFaq   `json:"descriptionFaq" db:"description_faq"`
	Pricing          Pricing          `json:"pricing" db:"pricing"`
	GalleryPortfolio GalleryPortfolio `json:"galleryPortfolio" db:"gallery_portfolio"`
	SocialMedia      SocialMedia      `json:"socialMedia" db:"social_media"`
	CompletionStatus CompletionStatus `json:"completionStatus" db:"completion_status"`
	ProfileURL       string           `json:"profileUrl" db:"profile_url"`
	CreatedAt        time.Time        `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time        `json:"updatedAt" db:"updated_at"`
}

// CreateCreatorRequest starts a profile with the personal-info step
type CreateCreatorRequest struct {
	PersonalInfo PersonalInfo `json:"personalInfo"`
}

// UpdateSectionsRequest carries one or more section payloads. Nil sections
// are left untouched. Any client-supplied completionStatus is ignored; the
// server re-derives it.
type UpdateSectionsRequest struct {
	PersonalInfo     *PersonalInfo     `json:"personalInfo,omitempty"`
	ProfessionalInfo *ProfessionalInfo `json:"professionalInfo,omitempty"`
	DescriptionFaq   *DescriptionFaq   `json:"descriptionFaq,omitempty"`
	Pricing          *Pricing          `json:"pricing,omitempty"`
	GalleryPortfolio *GalleryPortfolio `json:"galleryPortfolio,omitempty"`
	SocialMedia      *SocialMedia      `json:"socialMedia,omitempty"`
	OnboardingStep   string            `json:"onboardingStep,omitempty"`
}

// CompletionStatusResponse is the completion-status endpoint payload
type CompletionStatusResponse struct {
	CompletionStatus CompletionStatus `json:"completionStatus"`
	Percentage       int              `json:"percentage"`
	ReadyToPublish   bool             `json:"readyToPublish"`
}

// UsernameAvailabilityResponse is the availability endpoint payload
type UsernameAvailabilityResponse struct {
	Username  string `json:"username"`
	Available bool   `json:"available"`
}

// CreatorListFilter is used by the admin listing page
type CreatorListFilter struct {
	Status string `json:"status,omitempty"`
	Search string `json:"search,omitempty"`
}

// CreatorsResponse is a paginated listing payload
type CreatorsResponse struct {
	Creators []*Creator `json:"creators"`
	Total    int64      `json:"total"`
}

// JSONB column plumbing. Each section type round-trips through a jsonb
// column via database/sql Valuer/Scanner.

func jsonbValue(v interface{}) (driver.Value, error) {
	return json.Marshal(v)
}

func jsonbScan(src, dst interface{}) error {
	switch data := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(data, dst)
	case string:
		return json.Unmarshal([]byte(data), dst)
	default:
		return fmt.Errorf("unsupported jsonb source type %T", src)
	}
}

func (p PersonalInfo) Value() (driver.Value, error) { return jsonbValue(p) }
func (p *PersonalInfo) Scan(src interface{}) error  { return jsonbScan(src, p) }

func (p ProfessionalInfo) Value() (driver.Value, error) { return jsonbValue(p) }
func (p *ProfessionalInfo) Scan(src interface{}) error  { return jsonbScan(src, p) }

func (d DescriptionFaq) Value() (driver.Value, error) { return jsonbValue(d) }
func (d *DescriptionFaq) Scan(src interface{}) error  { return jsonbScan(src, d) }

func (p Pricing) Value() (driver.Value, error) { return jsonbValue(p) }
func (p *Pricing) Scan(src interface{}) error  { return jsonbScan(src, p) }

func (g GalleryPortfolio) Value() (driver.Value, error) { return jsonbValue(g) }
func (g *GalleryPortfolio) Scan(src interface{}) error  { return jsonbScan(src, g) }

func (s SocialMedia) Value() (driver.Value, error) { return jsonbValue(s) }
func (s *SocialMedia) Scan(src interface{}) error  { return jsonbScan(src, s) }

func (c CompletionStatus) Value() (driver.Value, error) { return jsonbValue(c) }
func (c *CompletionStatus) Scan(src interface{}) error  { return jsonbScan(src, c) }
