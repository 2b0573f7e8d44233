package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yeonsu-kim/iljung/internal/domain"
)

// --- CheckConflictUseCase.Execute 테스트 ---

func TestCheckConflict_FindsOverlaps(t *testing.T) {
	mockSource := new(MockEventSource)
	uc := NewCheckConflictUseCase(mockSource, time.UTC)

	events := []domain.Event{
		{ID: "1", Title: "팀 회의", Date: "2024-07-01", StartTime: "10:00", EndTime: "12:00"},
		{ID: "2", Title: "점심 약속", Date: "2024-07-01", StartTime: "12:00", EndTime: "13:00"},
	}
	mockSource.On("Events", mock.Anything).Return(events, nil)

	candidate := domain.Event{ID: "3", Date: "2024-07-01", StartTime: "11:00", EndTime: "12:30"}
	conflicts, err := uc.Execute(context.Background(), candidate)
	require.NoError(t, err)

	// [12:00, 13:00)는 12:30 이전에 시작하므로 둘 다 겹친다
	assert.Equal(t, events, conflicts)
	mockSource.AssertExpectations(t)
}

func TestCheckConflict_NoOverlap(t *testing.T) {
	mockSource := new(MockEventSource)
	uc := NewCheckConflictUseCase(mockSource, time.UTC)

	events := []domain.Event{
		{ID: "1", Title: "팀 회의", Date: "2024-07-01", StartTime: "10:00", EndTime: "12:00"},
	}
	mockSource.On("Events", mock.Anything).Return(events, nil)

	candidate := domain.Event{ID: "3", Date: "2024-07-01", StartTime: "12:00", EndTime: "13:00"}
	conflicts, err := uc.Execute(context.Background(), candidate)
	require.NoError(t, err)
	assert.Empty(t, conflicts)
	assert.NotNil(t, conflicts)
}

func TestCheckConflict_SourceError(t *testing.T) {
	mockSource := new(MockEventSource)
	uc := NewCheckConflictUseCase(mockSource, time.UTC)

	mockSource.On("Events", mock.Anything).Return(nil, errors.New("읽기 실패"))

	_, err := uc.Execute(context.Background(), domain.Event{})
	assert.Error(t, err)
}

func TestConflictWarning(t *testing.T) {
	ev := domain.Event{Title: "팀 회의", Date: "2024-07-01", StartTime: "10:00", EndTime: "12:00"}
	assert.Equal(t, "팀 회의 (2024-07-01 10:00~12:00) 일정과 겹칩니다.", ConflictWarning(ev))
}
