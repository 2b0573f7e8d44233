// Package overlap 일정 시간 구간의 해석과 겹침 판정
package overlap

import (
	"time"

	"github.com/yeonsu-kim/iljung/internal/domain"
)

// 일정 날짜/시각 문자열의 허용 형식
const (
	dateLayout        = "2006-01-02"
	clockLayout       = "15:04"
	clockLayoutSecond = "15:04:05"
)

// Resolver 설정된 타임존 기준으로 일정 문자열을 시점으로 해석
type Resolver struct {
	loc *time.Location
}

// NewResolver Resolver를 생성. loc이 nil이면 로컬 타임존을 사용
func NewResolver(loc *time.Location) *Resolver {
	if loc == nil {
		loc = time.Local
	}
	return &Resolver{loc: loc}
}

// ParseDateTime 날짜와 시각 문자열을 하나의 시점으로 해석
//
// 실패해도 에러를 반환하지 않는다. 빈 문자열, 형식 오류,
// 달력 범위를 벗어난 날짜(7월 32일)나 시각(25:00)은 모두
// 무효한 Instant가 되어 이후 겹침/알림 판정에서 제외된다.
// 시각은 "HH:MM"과 "HH:MM:SS" 두 형식을 허용한다.
func (r *Resolver) ParseDateTime(date, clock string) domain.Instant {
	if date == "" || clock == "" {
		return domain.InvalidInstant()
	}

	for _, layout := range []string{clockLayout, clockLayoutSecond} {
		t, err := time.ParseInLocation(dateLayout+"T"+layout, date+"T"+clock, r.loc)
		if err == nil {
			return domain.NewInstant(t)
		}
	}
	return domain.InvalidInstant()
}

// EventRange 일정의 날짜와 시작/종료 시각을 시간 구간으로 변환
//
// 시작과 종료는 독립적으로 해석되며 각각 무효할 수 있다.
func (r *Resolver) EventRange(ev domain.Event) domain.Interval {
	return domain.Interval{
		Start: r.ParseDateTime(ev.Date, ev.StartTime),
		End:   r.ParseDateTime(ev.Date, ev.EndTime),
	}
}

// IntervalsOverlap 두 반열린 구간 [start, end)가 교차하는지 판정
//
// 한 구간이 끝나는 시각에 다른 구간이 시작하는 경우는 겹침이 아니다.
// 무효한 시점을 포함한 구간은 어떤 구간과도 겹치지 않는다.
func IntervalsOverlap(a, b domain.Interval) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}

// IsOverlapping 두 일정의 시간 구간이 겹치는지 판정
//
// 해석할 수 없는 일정은 겹치지 않는 것으로 보아 잘못된 항목 하나가
// 등록을 막지 않게 한다.
func (r *Resolver) IsOverlapping(a, b domain.Event) bool {
	return IntervalsOverlap(r.EventRange(a), r.EventRange(b))
}

// FindOverlapping candidate와 시간이 겹치는 일정들을 순서를 유지하며 반환
//
// candidate와 같은 ID의 항목은 자기 자신으로 보고 제외한다.
// 겹치는 일정이 없으면 nil이 아닌 빈 슬라이스를 반환한다.
func (r *Resolver) FindOverlapping(candidate domain.Event, events []domain.Event) []domain.Event {
	overlapping := make([]domain.Event, 0)
	for _, ev := range events {
		if candidate.ID != "" && ev.ID == candidate.ID {
			continue
		}
		if r.IsOverlapping(candidate, ev) {
			overlapping = append(overlapping, ev)
		}
	}
	return overlapping
}
