package handler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"news-remix/domain"
	"news-remix/service"
	"news-remix/service/mocks"
)

func TestNextMidnightUTC(t *testing.T) {
	tests := map[string]struct {
		now  time.Time
		want time.Time
	}{
		"midday": {
			now:  time.Date(2025, 6, 15, 13, 45, 12, 0, time.UTC),
			want: time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC),
		},
		"just after midnight": {
			now:  time.Date(2025, 6, 15, 0, 0, 1, 0, time.UTC),
			want: time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC),
		},
		"month boundary": {
			now:  time.Date(2025, 6, 30, 23, 59, 59, 0, time.UTC),
			want: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		},
		"non-utc input": {
			now:  time.Date(2025, 6, 15, 22, 0, 0, 0, time.FixedZone("JST", 9*3600)),
			want: time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC),
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, nextMidnightUTC(tc.now))
		})
	}
}

func TestRunOnceSurvivesFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	ingestion := mocks.NewMockIngestionService(ctrl)
	ingestion.EXPECT().
		DailyFetchAndClean(gomock.Any(), 10, 50).
		Return(nil, domain.ErrUpstream)

	h := NewJobHandler(ingestion, 10, 50, testLogger())

	assert.NotPanics(t, func() { h.runOnce(context.Background()) })
}

func TestRunOnceReportsOutcome(t *testing.T) {
	ctrl := gomock.NewController(t)
	ingestion := mocks.NewMockIngestionService(ctrl)
	ingestion.EXPECT().
		DailyFetchAndClean(gomock.Any(), 10, 50).
		Return(&service.IngestOutcome{
			Source:   service.SourceFetched,
			Articles: []*domain.Article{{ID: "a1"}},
		}, nil)

	h := NewJobHandler(ingestion, 10, 50, testLogger())

	assert.NotPanics(t, func() { h.runOnce(context.Background()) })
}
