package repository

import (
	"context"
	"errors"

	"govportal/internal/cache"
	"govportal/internal/models"

	"gorm.io/gorm"
)

// ProfileRepository defines persistence operations for profiles.
type ProfileRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Profile, error)
	GetByEmail(ctx context.Context, email string) (*models.Profile, error)
	GetByStaticID(ctx context.Context, staticID string) (*models.Profile, error)
	GetByIDs(ctx context.Context, ids []uint) (map[uint]models.Profile, error)
	Create(ctx context.Context, profile *models.Profile) error
	Update(ctx context.Context, profile *models.Profile) error
	List(ctx context.Context, limit, offset int) ([]models.Profile, error)
	SearchByName(ctx context.Context, query string, limit int) ([]models.Profile, error)
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository returns a new ProfileRepository implementation.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) GetByID(ctx context.Context, id uint) (*models.Profile, error) {
	var profile models.Profile
	key := cache.ProfileKey(id)

	err := cache.Aside(ctx, key, &profile, cache.ProfileTTL, func() error {
		if err := readDB(r.db).WithContext(ctx).First(&profile, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Profile", id)
			}
			return models.NewInternalError(err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) GetByEmail(ctx context.Context, email string) (*models.Profile, error) {
	var profile models.Profile
	if err := readDB(r.db).WithContext(ctx).Where("email = ?", email).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &profile, nil
}

func (r *profileRepository) GetByStaticID(ctx context.Context, staticID string) (*models.Profile, error) {
	var profile models.Profile
	if err := readDB(r.db).WithContext(ctx).Where("static_id = ?", staticID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &profile, nil
}

// GetByIDs fetches display fields for a batch of profile ids in one query.
// Listing endpoints use this to resolve author names without N+1 lookups.
func (r *profileRepository) GetByIDs(ctx context.Context, ids []uint) (map[uint]models.Profile, error) {
	result := make(map[uint]models.Profile, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var profiles []models.Profile
	if err := readDB(r.db).WithContext(ctx).
		Select("id", "nickname", "static_id", "faction", "gov_role").
		Where("id IN ?", ids).
		Find(&profiles).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	for _, p := range profiles {
		result[p.ID] = p
	}
	return result, nil
}

func (r *profileRepository) Create(ctx context.Context, profile *models.Profile) error {
	if err := r.db.WithContext(ctx).Create(profile).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("Profile already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *profileRepository) Update(ctx context.Context, profile *models.Profile) error {
	if err := r.db.WithContext(ctx).Save(profile).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateProfile(ctx, profile.ID)
	return nil
}

func (r *profileRepository) List(ctx context.Context, limit, offset int) ([]models.Profile, error) {
	var profiles []models.Profile
	if err := readDB(r.db).WithContext(ctx).
		Limit(clampLimit(limit, 50)).
		Offset(offset).
		Order("created_at DESC").
		Find(&profiles).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return profiles, nil
}

func (r *profileRepository) SearchByName(ctx context.Context, query string, limit int) ([]models.Profile, error) {
	var profiles []models.Profile
	pattern := "%" + query + "%"
	if err := readDB(r.db).WithContext(ctx).
		Where("nickname LIKE ? OR static_id LIKE ?", pattern, pattern).
		Limit(clampLimit(limit, 50)).
		Order("nickname ASC").
		Find(&profiles).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return profiles, nil
}
