package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/ankitsaini000/rwew-sub002/categories/models"
	"github.com/ankitsaini000/rwew-sub002/categories/repository"
	"github.com/ankitsaini000/rwew-sub002/internal/cache"
	"github.com/ankitsaini000/rwew-sub002/internal/pkg/log"
)

const listCacheKey = "categories:all"

// CategoryService serves the category taxonomy used in creator onboarding
type CategoryService interface {
	List(ctx context.Context) ([]*models.Category, error)
	Create(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error)
}

type service struct {
	repo  repository.CategoryRepository
	cache *cache.GenericCacheService
}

// NewService constructs a category service
func NewService(repo repository.CategoryRepository, cacheService *cache.GenericCacheService) CategoryService {
	return &service{repo: repo, cache: cacheService}
}

// List returns the taxonomy, cached. The list changes rarely so the cache
// takes almost all reads.
func (s *service) List(ctx context.Context) ([]*models.Category, error) {
	if s.cache != nil {
		var cached []*models.Category
		if err := s.cache.GetCached(ctx, listCacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	categories, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []*models.Category{}
	}

	if s.cache != nil {
		if err := s.cache.CacheData(ctx, listCacheKey, categories); err != nil && err != cache.ErrCacheDisabled {
			log.WarnWithContext(ctx, "category cache write failed: %v", err)
		}
	}

	return categories, nil
}

// Create adds a category and invalidates the cached list
func (s *service) Create(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error) {
	if req == nil || strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("category name is required")
	}

	slug := req.Slug
	if slug == "" {
		slug = strings.ToLower(strings.ReplaceAll(strings.TrimSpace(req.Name), " ", "-"))
	}

	category := &models.Category{
		Name:          strings.TrimSpace(req.Name),
		Slug:          slug,
		Subcategories: req.Subcategories,
		SortOrder:     req.SortOrder,
	}

	if err := s.repo.Create(ctx, category); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, listCacheKey); err != nil && err != cache.ErrCacheDisabled && err != cache.ErrKeyNotFound {
			log.WarnWithContext(ctx, "category cache invalidation failed: %v", err)
		}
	}

	return category, nil
}
