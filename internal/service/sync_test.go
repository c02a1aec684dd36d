package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/bszymi/tv-shows-api/internal/config"
	"github.com/bszymi/tv-shows-api/internal/domain"
	"github.com/bszymi/tv-shows-api/internal/service/mocks"
)

type SyncServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	source     *mocks.MockSource
	detector   *mocks.MockChangeDetector
	reconciler *mocks.MockShowReconciler
	syncState  *mocks.MockSyncStateStore

	service *SyncService
	cfg     config.SyncConfig
	logger  *slog.Logger
}

func (s *SyncServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.source = mocks.NewMockSource(s.ctrl)
	s.detector = mocks.NewMockChangeDetector(s.ctrl)
	s.reconciler = mocks.NewMockShowReconciler(s.ctrl)
	s.syncState = mocks.NewMockSyncStateStore(s.ctrl)

	s.cfg = config.SyncConfig{
		Interval: 1 * time.Hour,
	}

	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.source.EXPECT().ID().Return("tvmaze").AnyTimes()
	s.source.EXPECT().Name().Return("TVMaze Schedule").AnyTimes()

	s.service = NewSyncService(
		s.source,
		s.detector,
		s.reconciler,
		s.syncState,
		s.logger,
		s.cfg,
	)
}

func (s *SyncServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestSyncServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SyncServiceTestSuite))
}

func (s *SyncServiceTestSuite) expectSyncStateUpdate() {
	s.syncState.EXPECT().Get(gomock.Any(), "tvmaze").Return(&domain.SyncState{SourceID: "tvmaze"}, nil)
	s.syncState.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
}

func scheduleRecords() []domain.EpisodeRecord {
	return []domain.EpisodeRecord{
		{ID: 101, AirDate: "2024-01-01", Show: &domain.ShowInfo{ID: 1, Name: "Night Watch"}},
		{ID: 102, AirDate: "2024-01-02", Show: &domain.ShowInfo{ID: 2, Name: "Day Watch"}},
	}
}

func (s *SyncServiceTestSuite) TestSync_DeltaPersisted() {
	ctx := context.Background()
	records := scheduleRecords()

	s.source.EXPECT().FetchSchedule(ctx).Return(records, nil)
	s.detector.EXPECT().Detect(records, false).Return(domain.Outcome{
		Kind:          domain.OutcomeDelta,
		Records:       records[:1],
		Changes:       1,
		Examined:      2,
		Skipped:       1,
		SnapshotSaved: true,
	})
	s.reconciler.EXPECT().Persist(ctx, records[:1]).Return(&domain.ReconcileStats{
		Processed: 1,
		Created:   1,
		Published: 1,
	}, nil)
	s.expectSyncStateUpdate()

	stats, err := s.service.Sync(ctx)

	s.NoError(err)
	s.Equal(domain.OutcomeDelta, stats.Outcome)
	s.Equal(2, stats.Fetched)
	s.Equal(1, stats.Changes)
	s.Equal(1, stats.Created)
	s.Equal(1, stats.Skipped)
	s.Equal(1, stats.Published)
	s.True(stats.SnapshotSaved)
}

func (s *SyncServiceTestSuite) TestSync_NoChangeSkipsReconciler() {
	ctx := context.Background()
	records := scheduleRecords()

	s.source.EXPECT().FetchSchedule(ctx).Return(records, nil)
	s.detector.EXPECT().Detect(records, false).Return(domain.Outcome{
		Kind:     domain.OutcomeNoChange,
		Examined: 2,
		Skipped:  2,
	})
	s.expectSyncStateUpdate()

	stats, err := s.service.Sync(ctx)

	s.NoError(err)
	s.Equal(domain.OutcomeNoChange, stats.Outcome)
	s.Equal(2, stats.Skipped)
	s.Equal(0, stats.Created)
}

func (s *SyncServiceTestSuite) TestSync_EmptyDeltaSkipsReconciler() {
	ctx := context.Background()
	records := scheduleRecords()

	s.source.EXPECT().FetchSchedule(ctx).Return(records, nil)
	s.detector.EXPECT().Detect(records, false).Return(domain.Outcome{
		Kind:     domain.OutcomeDelta,
		Examined: 2,
		Skipped:  2,
	})
	s.expectSyncStateUpdate()

	stats, err := s.service.Sync(ctx)

	s.NoError(err)
	s.Equal(0, stats.Created)
	s.Equal(0, stats.Errors)
}

func (s *SyncServiceTestSuite) TestSync_FetchErrorIsFatal() {
	ctx := context.Background()

	s.source.EXPECT().FetchSchedule(ctx).Return(nil, errors.New("HTTP 503: Service Unavailable"))

	stats, err := s.service.Sync(ctx)

	s.Error(err)
	s.Nil(stats)
	s.Contains(err.Error(), "fetch schedule")
}

func (s *SyncServiceTestSuite) TestSync_RecordErrorsDoNotFailCycle() {
	ctx := context.Background()
	records := scheduleRecords()

	s.source.EXPECT().FetchSchedule(ctx).Return(records, nil)
	s.detector.EXPECT().Detect(records, false).Return(domain.Outcome{
		Kind:     domain.OutcomeFullDataset,
		Records:  records,
		Changes:  2,
		Examined: 2,
	})
	s.reconciler.EXPECT().Persist(ctx, records).Return(&domain.ReconcileStats{
		Processed: 2,
		Created:   1,
		Errors: []domain.RecordError{
			{RecordID: "2|102|2024-01-02", Message: "tv show name is required"},
		},
	}, nil)
	s.expectSyncStateUpdate()

	stats, err := s.service.Sync(ctx)

	s.NoError(err, "a partially-successful batch is not a cycle failure")
	s.Equal(1, stats.Created)
	s.Equal(1, stats.Errors)
}

func (s *SyncServiceTestSuite) TestSync_ReconcilerFailureIsFatal() {
	ctx := context.Background()
	records := scheduleRecords()

	s.source.EXPECT().FetchSchedule(ctx).Return(records, nil)
	s.detector.EXPECT().Detect(records, false).Return(domain.Outcome{
		Kind:     domain.OutcomeFullDataset,
		Records:  records,
		Changes:  2,
		Examined: 2,
	})
	s.reconciler.EXPECT().Persist(ctx, records).Return(nil, errors.New("connection lost"))

	stats, err := s.service.Sync(ctx)

	s.Error(err)
	s.NotNil(stats)
	s.Contains(err.Error(), "persist records")
}

func (s *SyncServiceTestSuite) TestSync_ForceFullRefreshPassedThrough() {
	ctx := context.Background()
	records := scheduleRecords()

	cfg := s.cfg
	cfg.ForceFullRefresh = true
	service := NewSyncService(s.source, s.detector, s.reconciler, s.syncState, s.logger, cfg)

	s.source.EXPECT().FetchSchedule(ctx).Return(records, nil)
	s.detector.EXPECT().Detect(records, true).Return(domain.Outcome{
		Kind:     domain.OutcomeFullDataset,
		Records:  records,
		Changes:  2,
		Examined: 2,
	})
	s.reconciler.EXPECT().Persist(ctx, records).Return(&domain.ReconcileStats{Processed: 2, Created: 2}, nil)
	s.expectSyncStateUpdate()

	stats, err := service.Sync(ctx)

	s.NoError(err)
	s.Equal(domain.OutcomeFullDataset, stats.Outcome)
	s.Equal(2, stats.Created)
}

func (s *SyncServiceTestSuite) TestSync_UpdatesSyncStateTotals() {
	ctx := context.Background()
	records := scheduleRecords()

	s.source.EXPECT().FetchSchedule(ctx).Return(records, nil)
	s.detector.EXPECT().Detect(records, false).Return(domain.Outcome{
		Kind:     domain.OutcomeFullDataset,
		Records:  records,
		Changes:  2,
		Examined: 2,
	})
	s.reconciler.EXPECT().Persist(ctx, records).Return(&domain.ReconcileStats{
		Processed: 2,
		Created:   1,
		Updated:   1,
	}, nil)

	s.syncState.EXPECT().Get(ctx, "tvmaze").Return(&domain.SyncState{SourceID: "tvmaze", TotalSynced: 10}, nil)
	s.syncState.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, state *domain.SyncState) error {
			s.Equal(int64(12), state.TotalSynced)
			s.False(state.LastSyncedAt.IsZero())
			return nil
		},
	)

	stats, err := s.service.Sync(ctx)

	s.NoError(err)
	s.Equal(1, stats.Created)
	s.Equal(1, stats.Updated)
}
