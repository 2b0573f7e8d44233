// Package dateutil 캘린더 그리드 계산을 위한 날짜 연산 유틸리티
package dateutil

import (
	"errors"
	"fmt"
	"time"

	"github.com/yeonsu-kim/iljung/internal/domain"
)

// ErrInvalidMonth 1~12 범위를 벗어난 월이 주어진 경우의 에러
var ErrInvalidMonth = errors.New("유효하지 않은 월입니다")

// dateLayout 일정 날짜 문자열의 형식
const dateLayout = "2006-01-02"

// daysPerMonth 평년 기준 각 월의 일수 (1월부터)
var daysPerMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeapYear 그레고리력 윤년 여부
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth 해당 연월의 일수를 반환
//
// 월이 1~12 범위를 벗어나면 ErrInvalidMonth를 반환한다.
// 호출자가 사전에 검증해야 하는 프로그래밍 오류로 취급한다.
func DaysInMonth(year, month int) (int, error) {
	if month < 1 || month > 12 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidMonth, month)
	}
	if month == 2 && IsLeapYear(year) {
		return 29, nil
	}
	return daysPerMonth[month-1], nil
}

// WeekOf 주어진 날짜가 속한 주의 일요일~토요일 7일을 반환
//
// 월/연도 경계와 윤년 2월 29일을 넘어가는 주도 올바르게 처리한다.
// 반환되는 각 날짜는 자정(해당 위치의 로컬) 기준이다.
func WeekOf(t time.Time) [7]time.Time {
	sunday := time.Date(t.Year(), t.Month(), t.Day()-int(t.Weekday()), 0, 0, 0, 0, t.Location())

	var week [7]time.Time
	for i := range week {
		week[i] = sunday.AddDate(0, 0, i)
	}
	return week
}

// WeekGrid 일요일 시작의 한 주를 나타내는 7칸 그리드
//
// 각 칸은 해당 월의 일(日) 값이며, 월에 속하지 않는 칸은 EmptyCell이다.
type WeekGrid [7]int

// EmptyCell 해당 월에 속하지 않는 그리드 칸의 값
const EmptyCell = 0

// MonthGrid 주어진 날짜가 속한 월의 주 단위 그리드를 반환
//
// 첫 주는 1일 앞쪽이, 마지막 주는 말일 뒤쪽이 EmptyCell로 채워지며
// 모든 주는 정확히 7칸이다. 월의 모든 날이 한 번씩만 나타난다.
func MonthGrid(t time.Time) []WeekGrid {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())

	// time.Month는 항상 1~12이므로 ErrInvalidMonth는 발생하지 않는다
	days, _ := DaysInMonth(first.Year(), int(first.Month()))

	lead := int(first.Weekday())
	grid := make([]WeekGrid, (lead+days+6)/7)
	for d := 1; d <= days; d++ {
		cell := lead + d - 1
		grid[cell/7][cell%7] = d
	}
	return grid
}

// WeekOfMonth 주어진 날짜가 속한 주를 어느 연월의 몇 번째 주로 볼지 반환
//
// 한 주(일~토)가 두 달에 걸치는 경우 그 주의 목요일이 속한 달로
// 귀속시킨다. 따라서 월말 며칠이 다음 달의 1주로 보고될 수 있는데,
// 이는 화면 표기와 일치시키기 위한 고정된 정책이다.
func WeekOfMonth(t time.Time) (year int, month time.Month, week int) {
	thursday := time.Date(t.Year(), t.Month(), t.Day()-int(t.Weekday())+4, 0, 0, 0, 0, t.Location())
	return thursday.Year(), thursday.Month(), (thursday.Day()-1)/7 + 1
}

// EventsForDay 일(日)이 day인 일정만 순서를 유지하며 반환
//
// 날짜를 해석할 수 없는 일정은 제외한다. 결과는 nil이 아닌 빈 슬라이스일 수 있다.
func EventsForDay(events []domain.Event, day int) []domain.Event {
	matched := make([]domain.Event, 0)
	for _, ev := range events {
		parsed, err := time.Parse(dateLayout, ev.Date)
		if err != nil {
			continue
		}
		if parsed.Day() == day {
			matched = append(matched, ev)
		}
	}
	return matched
}

// IsDateInRange d가 [start, end] 범위(양 끝 포함)에 있는지 여부
//
// start가 end보다 늦으면 모든 날짜에 대해 false를 반환한다.
func IsDateInRange(d, start, end time.Time) bool {
	return !d.Before(start) && !d.After(end)
}
