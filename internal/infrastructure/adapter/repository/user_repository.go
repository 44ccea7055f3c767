package repository

import (
	"context"
	"strings"

	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/entity"
	errs "github.com/amirhossein-jamali/fanattics-portal/internal/domain/error"
	coreport "github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/core"
	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/fanattics-portal/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

var _ persistence.UserRepository = (*UserRepository)(nil)

// UserRepository implements UserRepository interface using GORM
type UserRepository struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	dbErrors
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
		dbErrors:     newDBErrors(logger, errs.ErrUserNotFound),
	}
}

// modelToEntity converts a user model to an entity
func (r *UserRepository) modelToEntity(m *model.User) *entity.User {
	return &entity.User{
		ID:         m.ID,
		ExternalID: m.ExternalID,
		Email:      m.Email,
		Name:       m.Name,
		Bio:        m.Bio,
		Company:    m.Company,
		AvatarURL:  m.AvatarURL,
		Timezone:   m.Timezone,
		Roles:      decodeRoles(m.Roles),
		Onboarded:  m.Onboarded,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func (r *UserRepository) entityToModel(u *entity.User) *model.User {
	return &model.User{
		ID:         u.ID,
		ExternalID: u.ExternalID,
		Email:      u.Email,
		Name:       u.Name,
		Bio:        u.Bio,
		Company:    u.Company,
		AvatarURL:  u.AvatarURL,
		Timezone:   u.Timezone,
		Roles:      encodeRoles(u.Roles),
		Onboarded:  u.Onboarded,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}

func encodeRoles(roles []entity.Role) string {
	if len(roles) == 0 {
		return string(entity.RoleUser)
	}
	parts := make([]string, 0, len(roles))
	for _, r := range roles {
		parts = append(parts, string(r))
	}
	return strings.Join(parts, ",")
}

func decodeRoles(s string) []entity.Role {
	var roles []entity.Role
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			roles = append(roles, entity.Role(part))
		}
	}
	if len(roles) == 0 {
		roles = []entity.Role{entity.RoleUser}
	}
	return roles
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*entity.User, error) {
	r.logger.Debug("Getting user by ID", map[string]any{
		"user_id": id,
	})

	var userModel model.User
	if err := r.db.WithContext(ctx).First(&userModel, id).Error; err != nil {
		return nil, r.handleDatabaseError("getting user", err, map[string]any{"user_id": id})
	}

	return r.modelToEntity(&userModel), nil
}

// GetByExternalID retrieves a user by the identity-provider subject
func (r *UserRepository) GetByExternalID(ctx context.Context, externalID string) (*entity.User, error) {
	var userModel model.User
	err := r.db.WithContext(ctx).Where("external_id = ?", externalID).First(&userModel).Error
	if err != nil {
		return nil, r.handleDatabaseError("getting user by external id", err, map[string]any{"external_id": externalID})
	}

	return r.modelToEntity(&userModel), nil
}

// Create stores a new user and assigns its ID
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := r.entityToModel(user)
	userModel.ID = 0
	if userModel.CreatedAt.IsZero() {
		now := r.timeProvider.Now()
		userModel.CreatedAt = now
		userModel.UpdatedAt = now
	}

	if err := r.db.WithContext(ctx).Create(userModel).Error; err != nil {
		return r.handleDatabaseError("creating user", err, map[string]any{"external_id": user.ExternalID})
	}

	user.ID = userModel.ID
	user.CreatedAt = userModel.CreatedAt
	user.UpdatedAt = userModel.UpdatedAt

	r.logger.Info("User created", map[string]any{
		"user_id":     user.ID,
		"external_id": user.ExternalID,
	})
	return nil
}

// Update saves profile changes
func (r *UserRepository) Update(ctx context.Context, user *entity.User) error {
	if user.UpdatedAt.IsZero() {
		user.UpdatedAt = r.timeProvider.Now()
	}

	result := r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", user.ID).Updates(map[string]any{
		"email":      user.Email,
		"name":       user.Name,
		"bio":        user.Bio,
		"company":    user.Company,
		"avatar_url": user.AvatarURL,
		"timezone":   user.Timezone,
		"roles":      encodeRoles(user.Roles),
		"onboarded":  user.Onboarded,
		"updated_at": user.UpdatedAt,
	})
	if result.Error != nil {
		return r.handleDatabaseError("updating user", result.Error, map[string]any{"user_id": user.ID})
	}
	if result.RowsAffected == 0 {
		return errs.ErrUserNotFound
	}

	r.logger.Debug("User updated", map[string]any{"user_id": user.ID})
	return nil
}

// List returns every user ordered by ID
func (r *UserRepository) List(ctx context.Context) ([]*entity.User, error) {
	var models []model.User
	if err := r.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, r.handleDatabaseError("listing users", err, nil)
	}
	return r.toEntities(models), nil
}

// Search returns users whose name or company contains query (case-insensitive)
func (r *UserRepository) Search(ctx context.Context, query string, limit int) ([]*entity.User, error) {
	db := r.db.WithContext(ctx).Order("id")
	if q := strings.ToLower(strings.TrimSpace(query)); q != "" {
		pattern := "%" + escapeLike(q) + "%"
		db = db.Where("LOWER(name) LIKE ? ESCAPE '\\' OR LOWER(company) LIKE ? ESCAPE '\\'", pattern, pattern)
	}
	if limit > 0 {
		db = db.Limit(limit)
	}

	var models []model.User
	if err := db.Find(&models).Error; err != nil {
		return nil, r.handleDatabaseError("searching users", err, map[string]any{"query": query})
	}
	return r.toEntities(models), nil
}

func (r *UserRepository) toEntities(models []model.User) []*entity.User {
	users := make([]*entity.User, 0, len(models))
	for i := range models {
		users = append(users, r.modelToEntity(&models[i]))
	}
	return users
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
