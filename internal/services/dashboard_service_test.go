package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"match2b/pkg/utils"
)

func TestDashboardStats(t *testing.T) {
	svc := NewDashboardService(&fakeDashboardRepo{users: 10, providers: 3, responses: 25, solutions: 7}, zap.NewNop())

	got, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(10), got.TotalUsers)
	assert.Equal(t, int64(3), got.TotalProviders)
	assert.Equal(t, int64(25), got.TotalSurveyResponses)
	assert.Equal(t, int64(7), got.TotalSolutions)
}

func TestDashboardStats_Error(t *testing.T) {
	svc := NewDashboardService(&fakeDashboardRepo{err: errors.New("down")}, zap.NewNop())

	_, err := svc.Stats(context.Background())
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}
