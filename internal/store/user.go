package store

import (
	"context"

	"helloteam.app/api/core/db/sqlc"
	"helloteam.app/api/internal/model"
)

type userStore struct {
	queries *sqlc.Queries
}

func newUserStore(queries *sqlc.Queries) UserStore {
	return &userStore{queries: queries}
}

func (s *userStore) GetByID(ctx context.Context, id int64) (*model.User, error) {
	row, err := s.queries.GetUser(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	return toUserModel(row), nil
}

func (s *userStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	row, err := s.queries.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, mapError(err)
	}
	return toUserModel(row), nil
}

func (s *userStore) GetByWorkOSID(ctx context.Context, workosID string) (*model.User, error) {
	row, err := s.queries.GetUserByWorkOSID(ctx, workosID)
	if err != nil {
		return nil, mapError(err)
	}
	return toUserModel(row), nil
}

func (s *userStore) ListByIDs(ctx context.Context, ids []int64) ([]model.User, error) {
	if len(ids) == 0 {
		return []model.User{}, nil
	}
	rows, err := s.queries.ListUsersByIDs(ctx, ids)
	if err != nil {
		return nil, mapError(err)
	}
	users := make([]model.User, len(rows))
	for i, row := range rows {
		users[i] = *toUserModel(row)
	}
	return users, nil
}

func (s *userStore) EmailExists(ctx context.Context, email string) (bool, error) {
	exists, err := s.queries.UserEmailExists(ctx, email)
	return exists, mapError(err)
}

func (s *userStore) Create(ctx context.Context, user *model.User) error {
	row, err := s.queries.CreateUser(ctx, sqlc.CreateUserParams{
		ID:            user.ID,
		Email:         user.Email,
		PasswordHash:  user.PasswordHash,
		FirstName:     user.FirstName,
		LastName:      user.LastName,
		Phone:         user.Phone,
		Country:       user.Country,
		ZipCode:       user.ZipCode,
		Timezone:      user.Timezone,
		AvatarUrl:     user.AvatarURL,
		WorkosID:      user.WorkOSID,
		IsActive:      user.IsActive,
		IsStaff:       user.IsStaff,
		IsSuperuser:   user.IsSuperuser,
		VerifiedEmail: user.VerifiedEmail,
	})
	if err != nil {
		return mapError(err)
	}
	*user = *toUserModel(row)
	return nil
}

// UpdateProfile writes the editable profile fields. Password, superuser flag
// and federated identity have dedicated methods.
func (s *userStore) UpdateProfile(ctx context.Context, user *model.User) error {
	row, err := s.queries.UpdateUserProfile(ctx, sqlc.UpdateUserProfileParams{
		ID:            user.ID,
		Email:         user.Email,
		FirstName:     user.FirstName,
		LastName:      user.LastName,
		Phone:         user.Phone,
		Country:       user.Country,
		ZipCode:       user.ZipCode,
		Timezone:      user.Timezone,
		AvatarUrl:     user.AvatarURL,
		IsActive:      user.IsActive,
		IsStaff:       user.IsStaff,
		VerifiedEmail: user.VerifiedEmail,
	})
	if err != nil {
		return mapError(err)
	}
	*user = *toUserModel(row)
	return nil
}

func (s *userStore) SetPassword(ctx context.Context, id int64, passwordHash string) error {
	return mapError(s.queries.SetUserPassword(ctx, sqlc.SetUserPasswordParams{
		ID:           id,
		PasswordHash: passwordHash,
	}))
}

func (s *userStore) SetLastLogin(ctx context.Context, id int64) error {
	return mapError(s.queries.SetUserLastLogin(ctx, id))
}

func (s *userStore) MarkEmailVerified(ctx context.Context, id int64) error {
	return mapError(s.queries.SetUserEmailVerified(ctx, id))
}

func (s *userStore) LinkWorkOSID(ctx context.Context, id int64, workosID string) error {
	return mapError(s.queries.LinkUserWorkOSID(ctx, sqlc.LinkUserWorkOSIDParams{
		ID:       id,
		WorkosID: workosID,
	}))
}

func toUserModel(row sqlc.User) *model.User {
	return &model.User{
		ID:            row.ID,
		Email:         row.Email,
		PasswordHash:  row.PasswordHash,
		FirstName:     row.FirstName,
		LastName:      row.LastName,
		Phone:         row.Phone,
		Country:       row.Country,
		ZipCode:       row.ZipCode,
		Timezone:      row.Timezone,
		AvatarURL:     row.AvatarUrl,
		WorkOSID:      row.WorkosID,
		IsActive:      row.IsActive,
		IsStaff:       row.IsStaff,
		IsSuperuser:   row.IsSuperuser,
		VerifiedEmail: row.VerifiedEmail,
		LastLogin:     timePtr(row.LastLogin),
		CreatedAt:     row.CreatedAt.Time,
		UpdatedAt:     row.UpdatedAt.Time,
	}
}
