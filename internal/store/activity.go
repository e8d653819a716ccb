package store

import (
	"context"

	"helloteam.app/api/core/db/sqlc"
	"helloteam.app/api/internal/model"
)

type activityStore struct {
	queries *sqlc.Queries
}

func newActivityStore(queries *sqlc.Queries) ActivityStore {
	return &activityStore{queries: queries}
}

func (s *activityStore) Create(ctx context.Context, activity *model.Activity) error {
	row, err := s.queries.CreateActivity(ctx, sqlc.CreateActivityParams{
		ID:           activity.ID,
		WorkspaceID:  activity.WorkspaceID,
		UserID:       activity.UserID,
		ActivityType: string(activity.ActivityType),
		TargetType:   string(activity.TargetType),
		TargetID:     activity.TargetID,
	})
	if err != nil {
		return mapError(err)
	}
	*activity = *toActivityModel(row)
	return nil
}

func (s *activityStore) Get(ctx context.Context, id int64, workspaceID *int64) (*model.Activity, error) {
	row, err := s.queries.GetActivity(ctx, sqlc.GetActivityParams{ID: id, WorkspaceID: workspaceID})
	if err != nil {
		return nil, mapError(err)
	}
	return toActivityModel(row), nil
}

func (s *activityStore) List(ctx context.Context, workspaceID *int64, targetType *model.TargetType, targetID *int64) ([]model.Activity, error) {
	var tt *string
	if targetType != nil {
		v := string(*targetType)
		tt = &v
	}
	rows, err := s.queries.ListActivities(ctx, sqlc.ListActivitiesParams{
		WorkspaceID: workspaceID,
		TargetType:  tt,
		TargetID:    targetID,
	})
	if err != nil {
		return nil, mapError(err)
	}
	return toActivityModels(rows), nil
}

func (s *activityStore) ListForTargets(ctx context.Context, activityType model.ActivityType, targetType model.TargetType, targetIDs []int64) ([]model.Activity, error) {
	if len(targetIDs) == 0 {
		return []model.Activity{}, nil
	}
	rows, err := s.queries.ListActivitiesForTargets(ctx, sqlc.ListActivitiesForTargetsParams{
		ActivityType: string(activityType),
		TargetType:   string(targetType),
		TargetIds:    targetIDs,
	})
	if err != nil {
		return nil, mapError(err)
	}
	return toActivityModels(rows), nil
}

func (s *activityStore) Delete(ctx context.Context, id int64, workspaceID *int64) error {
	return affected(s.queries.DeleteActivity(ctx, sqlc.DeleteActivityParams{ID: id, WorkspaceID: workspaceID}))
}

func toActivityModel(row sqlc.Activity) *model.Activity {
	return &model.Activity{
		ID:           row.ID,
		WorkspaceID:  row.WorkspaceID,
		UserID:       row.UserID,
		ActivityType: model.ActivityType(row.ActivityType),
		TargetType:   model.TargetType(row.TargetType),
		TargetID:     row.TargetID,
		CreatedAt:    row.CreatedAt.Time,
	}
}

func toActivityModels(rows []sqlc.Activity) []model.Activity {
	result := make([]model.Activity, len(rows))
	for i, row := range rows {
		result[i] = *toActivityModel(row)
	}
	return result
}
