package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/atharvaaa699/mishika/internal/domain/entities"
	"github.com/atharvaaa699/mishika/internal/domain/repositories"
	"github.com/atharvaaa699/mishika/internal/infrastructure/clients/postgres"
	apperrors "github.com/atharvaaa699/mishika/pkg/errors"
	"github.com/doug-martin/goqu/v9"
)

// ProfileAdapter implements the ProfileRepository interface
type ProfileAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewProfileAdapter creates a new profile adapter
func NewProfileAdapter(client *postgres.Client) repositories.ProfileRepository {
	return &ProfileAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

var profileColumns = []interface{}{
	"id", "email", "full_name", "phone", "avatar_url", "role",
	"membership_tier", "membership_expiry", "created_at", "updated_at",
}

// GetByID retrieves a member profile by user ID
func (a *ProfileAdapter) GetByID(ctx context.Context, userID string) (*entities.Profile, error) {
	query, args, err := a.db.Select(profileColumns...).
		From("profiles").
		Where(goqu.Ex{"id": userID}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	profile, err := scanProfile(a.client.DB().QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("profile with id %s not found", userID))
	}
	if err != nil {
		return nil, apperrors.NewDataAccessError("failed to get profile", err)
	}

	if err := parseProfileEnums(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// List retrieves every profile, newest first
func (a *ProfileAdapter) List(ctx context.Context) ([]*entities.Profile, error) {
	query, args, err := a.db.Select(profileColumns...).
		From("profiles").
		Order(goqu.I("created_at").Desc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewDataAccessError("failed to list profiles", err)
	}
	defer rows.Close()

	profiles := make([]*entities.Profile, 0)
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, apperrors.NewDataAccessError("failed to scan profile", err)
		}
		if err := parseProfileEnums(profile); err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewDataAccessError("failed to iterate profiles", err)
	}

	return profiles, nil
}

// scanProfile leaves the raw role and tier in Role and MembershipTier for
// parseProfileEnums to validate
func scanProfile(row rowScanner) (*entities.Profile, error) {
	profile := &entities.Profile{}
	var fullName, phone, avatarURL, role, tier sql.NullString
	var expiry sql.NullTime

	err := row.Scan(
		&profile.ID,
		&profile.Email,
		&fullName,
		&phone,
		&avatarURL,
		&role,
		&tier,
		&expiry,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	profile.FullName = fullName.String
	profile.Phone = phone.String
	profile.AvatarURL = avatarURL.String
	if expiry.Valid {
		profile.MembershipExpiry = &expiry.Time
	}
	profile.Role = entities.Role(role.String)
	profile.MembershipTier = entities.MembershipTier(tier.String)
	return profile, nil
}

func parseProfileEnums(profile *entities.Profile) error {
	var err error
	if profile.Role, err = entities.ParseRole(string(profile.Role)); err != nil {
		return apperrors.NewInternalError(fmt.Sprintf("profile %s has an invalid role", profile.ID), err)
	}
	if profile.MembershipTier, err = entities.ParseMembershipTier(string(profile.MembershipTier)); err != nil {
		return apperrors.NewInternalError(fmt.Sprintf("profile %s has an invalid membership tier", profile.ID), err)
	}
	return nil
}
