package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Egor213/LogiGraph/internal/domain"
	repository_mock "github.com/Egor213/LogiGraph/internal/mocks/repository"
	"github.com/Egor213/LogiGraph/internal/repo/repoerrs"
	"github.com/Egor213/LogiGraph/internal/repo/repotypes"
	"github.com/Egor213/LogiGraph/internal/service"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func strPtr(s string) *string {
	return &s
}

func TestLogService_GetLogs(t *testing.T) {
	type args struct {
		ctx    context.Context
		filter repotypes.LogFilter
		page   repotypes.Page
	}

	type mockBehavior func(r *repository_mock.MockLog, args args)

	rows := []domain.LogRecord{
		{ID: 2, Timestamp: "2025-03-01T10:00:01Z", LogLevel: strPtr("ERROR")},
		{ID: 1, Timestamp: "2025-03-01T10:00:00Z", LogLevel: strPtr("ERROR")},
	}

	testCases := []struct {
		name         string
		args         args
		mockBehavior mockBehavior
		want         domain.LogsPage
		wantErr      error
	}{
		{
			name: "middle page",
			args: args{
				ctx:    context.Background(),
				filter: repotypes.LogFilter{Level: "ERROR"},
				page:   repotypes.Page{Limit: 100, Offset: 100},
			},
			mockBehavior: func(r *repository_mock.MockLog, args args) {
				r.EXPECT().GetLogs(args.ctx, args.filter, args.page).Return(rows, nil)
				r.EXPECT().CountLogs(args.ctx, args.filter).Return(250, nil)
			},
			want: domain.LogsPage{
				Logs:            rows,
				TotalCount:      250,
				HasNextPage:     true,
				HasPreviousPage: true,
			},
		},
		{
			name: "last page",
			args: args{
				ctx:    context.Background(),
				filter: repotypes.LogFilter{},
				page:   repotypes.Page{Limit: 100, Offset: 200},
			},
			mockBehavior: func(r *repository_mock.MockLog, args args) {
				r.EXPECT().GetLogs(args.ctx, args.filter, args.page).Return(rows, nil)
				r.EXPECT().CountLogs(args.ctx, args.filter).Return(250, nil)
			},
			want: domain.LogsPage{
				Logs:            rows,
				TotalCount:      250,
				HasNextPage:     false,
				HasPreviousPage: true,
			},
		},
		{
			name: "rows query fails",
			args: args{
				ctx:  context.Background(),
				page: repotypes.DefaultPage(),
			},
			mockBehavior: func(r *repository_mock.MockLog, args args) {
				r.EXPECT().GetLogs(args.ctx, args.filter, args.page).Return(nil, errors.New("db error"))
			},
			wantErr: service.ErrStorage,
		},
		{
			name: "count query fails",
			args: args{
				ctx:  context.Background(),
				page: repotypes.DefaultPage(),
			},
			mockBehavior: func(r *repository_mock.MockLog, args args) {
				r.EXPECT().GetLogs(args.ctx, args.filter, args.page).Return(rows, nil)
				r.EXPECT().CountLogs(args.ctx, args.filter).Return(0, errors.New("db error"))
			},
			wantErr: service.ErrStorage,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := repository_mock.NewMockLog(ctrl)
			tc.mockBehavior(mockRepo, tc.args)

			s := service.NewLogService(mockRepo)

			got, err := s.GetLogs(tc.args.ctx, tc.args.filter, tc.args.page)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestLogService_GetLog(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name         string
		mockBehavior func(r *repository_mock.MockLog)
		want         *domain.LogRecord
		wantErr      error
	}{
		{
			name: "found",
			mockBehavior: func(r *repository_mock.MockLog) {
				r.EXPECT().GetLogByID(ctx, int64(42)).Return(domain.LogRecord{ID: 42, Timestamp: "t"}, nil)
			},
			want: &domain.LogRecord{ID: 42, Timestamp: "t"},
		},
		{
			name: "absent id is not an error",
			mockBehavior: func(r *repository_mock.MockLog) {
				r.EXPECT().GetLogByID(ctx, int64(42)).Return(domain.LogRecord{}, repoerrs.ErrNotFound)
			},
			want: nil,
		},
		{
			name: "storage failure",
			mockBehavior: func(r *repository_mock.MockLog) {
				r.EXPECT().GetLogByID(ctx, int64(42)).Return(domain.LogRecord{}, errors.New("db error"))
			},
			wantErr: service.ErrStorage,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockRepo := repository_mock.NewMockLog(ctrl)
			tc.mockBehavior(mockRepo)

			got, err := service.NewLogService(mockRepo).GetLog(ctx, 42)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestLogService_GetStats(t *testing.T) {
	ctx := context.Background()
	stats := domain.LogStats{
		TotalLogs: 4,
		ByLevel: []domain.KeyCount[string]{
			{Key: "INFO", Count: 2},
			{Key: "ERROR", Count: 1},
		},
	}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := repository_mock.NewMockLog(ctrl)
		mockRepo.EXPECT().GetStats(ctx).Return(stats, nil)

		got, err := service.NewLogService(mockRepo).GetStats(ctx)

		assert.NoError(t, err)
		assert.Equal(t, stats, got)
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := repository_mock.NewMockLog(ctrl)
		mockRepo.EXPECT().GetStats(ctx).Return(domain.LogStats{}, errors.New("db error"))

		_, err := service.NewLogService(mockRepo).GetStats(ctx)

		assert.ErrorIs(t, err, service.ErrStorage)
	})
}

func TestHealthService_Check(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockRepo := repository_mock.NewMockLog(ctrl)

	mockRepo.EXPECT().Ping(ctx).Return(nil)
	assert.NoError(t, service.NewHealthService(mockRepo).Check(ctx))

	mockRepo.EXPECT().Ping(ctx).Return(errors.New("down"))
	assert.ErrorIs(t, service.NewHealthService(mockRepo).Check(ctx), service.ErrStorage)
}
