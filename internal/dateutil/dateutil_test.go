package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeonsu-kim/iljung/internal/domain"
)

// date 테스트용 자정 기준 날짜 생성 헬퍼
func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestDaysInMonth(t *testing.T) {
	t.Run("1월은 31일 수를 반환한다", func(t *testing.T) {
		days, err := DaysInMonth(2023, 1)
		require.NoError(t, err)
		assert.Equal(t, 31, days)
	})

	t.Run("4월은 30일 일수를 반환한다", func(t *testing.T) {
		days, err := DaysInMonth(2023, 4)
		require.NoError(t, err)
		assert.Equal(t, 30, days)
	})

	t.Run("윤년의 2월에 대해 29일을 반환한다", func(t *testing.T) {
		days, err := DaysInMonth(2024, 2)
		require.NoError(t, err)
		assert.Equal(t, 29, days)
	})

	t.Run("평년의 2월에 대해 28일을 반환한다", func(t *testing.T) {
		days, err := DaysInMonth(2023, 2)
		require.NoError(t, err)
		assert.Equal(t, 28, days)
	})

	t.Run("유효하지 않은 월에 대해 ErrInvalidMonth를 반환한다", func(t *testing.T) {
		for _, month := range []int{0, 13, -1} {
			_, err := DaysInMonth(2023, month)
			assert.ErrorIs(t, err, ErrInvalidMonth)
		}
	})

	t.Run("세기 연도는 400으로 나누어떨어질 때만 윤년이다", func(t *testing.T) {
		days, err := DaysInMonth(1900, 2)
		require.NoError(t, err)
		assert.Equal(t, 28, days)

		days, err = DaysInMonth(2000, 2)
		require.NoError(t, err)
		assert.Equal(t, 29, days)
	})
}

func TestWeekOf(t *testing.T) {
	tests := []struct {
		name  string
		input time.Time
		want  [7]time.Time
	}{
		{
			name:  "주중의 날짜(수요일)에 대해 올바른 주의 날짜들을 반환한다",
			input: date(2023, 4, 5),
			want: [7]time.Time{
				date(2023, 4, 2), date(2023, 4, 3), date(2023, 4, 4), date(2023, 4, 5),
				date(2023, 4, 6), date(2023, 4, 7), date(2023, 4, 8),
			},
		},
		{
			name:  "월요일에 대해 올바른 주의 날짜들을 반환한다",
			input: date(2023, 4, 3),
			want: [7]time.Time{
				date(2023, 4, 2), date(2023, 4, 3), date(2023, 4, 4), date(2023, 4, 5),
				date(2023, 4, 6), date(2023, 4, 7), date(2023, 4, 8),
			},
		},
		{
			name:  "일요일에 대해 올바른 주의 날짜들을 반환한다",
			input: date(2023, 4, 2),
			want: [7]time.Time{
				date(2023, 4, 2), date(2023, 4, 3), date(2023, 4, 4), date(2023, 4, 5),
				date(2023, 4, 6), date(2023, 4, 7), date(2023, 4, 8),
			},
		},
		{
			name:  "연도를 넘어가는 주를 정확히 처리한다 (연말)",
			input: date(2023, 12, 31),
			want: [7]time.Time{
				date(2023, 12, 31), date(2024, 1, 1), date(2024, 1, 2), date(2024, 1, 3),
				date(2024, 1, 4), date(2024, 1, 5), date(2024, 1, 6),
			},
		},
		{
			name:  "연도를 넘어가는 주를 정확히 처리한다 (연초)",
			input: date(2024, 1, 1),
			want: [7]time.Time{
				date(2023, 12, 31), date(2024, 1, 1), date(2024, 1, 2), date(2024, 1, 3),
				date(2024, 1, 4), date(2024, 1, 5), date(2024, 1, 6),
			},
		},
		{
			name:  "윤년의 2월 29일을 포함한 주를 올바르게 처리한다",
			input: date(2024, 2, 29),
			want: [7]time.Time{
				date(2024, 2, 25), date(2024, 2, 26), date(2024, 2, 27), date(2024, 2, 28),
				date(2024, 2, 29), date(2024, 3, 1), date(2024, 3, 2),
			},
		},
		{
			name:  "월의 마지막 날짜를 포함한 주를 올바르게 처리한다",
			input: date(2023, 4, 30),
			want: [7]time.Time{
				date(2023, 4, 30), date(2023, 5, 1), date(2023, 5, 2), date(2023, 5, 3),
				date(2023, 5, 4), date(2023, 5, 5), date(2023, 5, 6),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WeekOf(tt.input)
			assert.Equal(t, tt.want, got)

			// 어떤 입력이든 일요일로 시작해 토요일로 끝난다
			assert.Equal(t, time.Sunday, got[0].Weekday())
			assert.Equal(t, time.Saturday, got[6].Weekday())
		})
	}
}

func TestMonthGrid(t *testing.T) {
	t.Run("2024년 7월의 올바른 주 정보를 반환한다", func(t *testing.T) {
		grid := MonthGrid(date(2024, 7, 1))

		want := []WeekGrid{
			{EmptyCell, 1, 2, 3, 4, 5, 6},
			{7, 8, 9, 10, 11, 12, 13},
			{14, 15, 16, 17, 18, 19, 20},
			{21, 22, 23, 24, 25, 26, 27},
			{28, 29, 30, 31, EmptyCell, EmptyCell, EmptyCell},
		}
		assert.Equal(t, want, grid)
	})

	t.Run("모든 월에서 각 날이 정확히 한 번씩 나타난다", func(t *testing.T) {
		for month := 1; month <= 12; month++ {
			grid := MonthGrid(date(2024, time.Month(month), 15))
			days, err := DaysInMonth(2024, month)
			require.NoError(t, err)

			seen := make(map[int]int)
			for _, week := range grid {
				for _, cell := range week {
					if cell != EmptyCell {
						seen[cell]++
					}
				}
			}
			assert.Len(t, seen, days, "%d월", month)
			for d := 1; d <= days; d++ {
				assert.Equal(t, 1, seen[d], "%d월 %d일", month, d)
			}
		}
	})

	t.Run("1일이 일요일인 달은 앞쪽 패딩이 없다", func(t *testing.T) {
		// 2023년 1월 1일은 일요일
		grid := MonthGrid(date(2023, 1, 10))
		assert.Equal(t, WeekGrid{1, 2, 3, 4, 5, 6, 7}, grid[0])
	})
}

func TestWeekOfMonth(t *testing.T) {
	tests := []struct {
		name      string
		input     time.Time
		wantYear  int
		wantMonth time.Month
		wantWeek  int
	}{
		{"월의 중간 날짜는 해당 월의 주 번호를 반환한다", date(2024, 7, 15), 2024, time.July, 3},
		{"월의 첫 주는 1주로 귀속된다", date(2024, 7, 1), 2024, time.July, 1},
		{"월말이 다음 달 주간에 속하면 다음 달 1주로 귀속된다", date(2024, 7, 31), 2024, time.August, 1},
		{"연말의 주는 해당 연도에 남는다", date(2023, 12, 30), 2023, time.December, 4},
		{"윤년 2월 29일은 2월 5주로 귀속된다", date(2024, 2, 29), 2024, time.February, 5},
		{"평년 2월 28일은 3월 1주로 귀속된다", date(2023, 2, 28), 2023, time.March, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			year, month, week := WeekOfMonth(tt.input)
			assert.Equal(t, tt.wantYear, year)
			assert.Equal(t, tt.wantMonth, month)
			assert.Equal(t, tt.wantWeek, week)
		})
	}
}

func TestEventsForDay(t *testing.T) {
	events := []domain.Event{
		{ID: "1", Title: "Event 1", Date: "2024-07-01"},
		{ID: "2", Title: "Event 2", Date: "2024-07-01"},
		{ID: "3", Title: "Event 3", Date: "2024-07-02"},
	}

	t.Run("특정 날짜(1일)에 해당하는 이벤트만 정확히 반환한다", func(t *testing.T) {
		result := EventsForDay(events, 1)
		assert.Equal(t, []domain.Event{events[0], events[1]}, result)
	})

	t.Run("해당 날짜에 이벤트가 없을 경우 빈 배열을 반환한다", func(t *testing.T) {
		result := EventsForDay(events, 3)
		assert.Empty(t, result)
		assert.NotNil(t, result)
	})

	t.Run("날짜가 0일 경우 빈 배열을 반환한다", func(t *testing.T) {
		assert.Empty(t, EventsForDay(events, 0))
	})

	t.Run("날짜가 32일 이상인 경우 빈 배열을 반환한다", func(t *testing.T) {
		assert.Empty(t, EventsForDay(events, 32))
	})

	t.Run("날짜를 해석할 수 없는 이벤트는 제외한다", func(t *testing.T) {
		broken := append([]domain.Event{{ID: "x", Date: "not-a-date"}}, events...)
		result := EventsForDay(broken, 1)
		assert.Equal(t, []domain.Event{events[0], events[1]}, result)
	})
}

func TestIsDateInRange(t *testing.T) {
	rangeStart := date(2024, 7, 1)
	rangeEnd := date(2024, 7, 31)

	tests := []struct {
		name  string
		input time.Time
		want  bool
	}{
		{"범위 내의 날짜 2024-07-10에 대해 true를 반환한다", date(2024, 7, 10), true},
		{"범위의 시작일 2024-07-01에 대해 true를 반환한다", date(2024, 7, 1), true},
		{"범위의 종료일 2024-07-31에 대해 true를 반환한다", date(2024, 7, 31), true},
		{"범위 이전의 날짜 2024-06-30에 대해 false를 반환한다", date(2024, 6, 30), false},
		{"범위 이후의 날짜 2024-08-01에 대해 false를 반환한다", date(2024, 8, 1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDateInRange(tt.input, rangeStart, rangeEnd))
		})
	}

	t.Run("시작일이 종료일보다 늦은 경우 모든 날짜에 대해 false를 반환한다", func(t *testing.T) {
		assert.False(t, IsDateInRange(date(2024, 7, 10), rangeEnd, rangeStart))
	})
}
