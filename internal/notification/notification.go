// Package notification 알림 대상 일정 선별과 알림 메시지 생성
package notification

import (
	"fmt"
	"time"

	"github.com/yeonsu-kim/iljung/internal/domain"
	"github.com/yeonsu-kim/iljung/internal/overlap"
)

// Selector 설정된 타임존 기준으로 알림 시점이 도래한 일정을 선별
type Selector struct {
	resolver *overlap.Resolver
}

// NewSelector Selector를 생성. loc이 nil이면 로컬 타임존을 사용
func NewSelector(loc *time.Location) *Selector {
	return &Selector{resolver: overlap.NewResolver(loc)}
}

// UpcomingEvents 알림 구간이 열린 일정들을 순서를 유지하며 반환
//
// 일정 시작 NotificationMinutes분 전부터 시작 시각까지(양 끝 포함)가
// 알림 구간이다. notifiedIDs에 포함된 일정과 시작 시각을 해석할 수
// 없는 일정은 제외한다. notifiedIDs는 변경하지 않는다. 알림 전송
// 기록은 호출자의 책임이다.
func (s *Selector) UpcomingEvents(events []domain.Event, now time.Time, notifiedIDs []string) []domain.Event {
	notified := make(map[string]struct{}, len(notifiedIDs))
	for _, id := range notifiedIDs {
		notified[id] = struct{}{}
	}

	due := make([]domain.Event, 0)
	for _, ev := range events {
		if _, ok := notified[ev.ID]; ok {
			continue
		}

		start := s.resolver.ParseDateTime(ev.Date, ev.StartTime)
		if !start.IsValid() {
			continue
		}

		leadStart := start.Time().Add(-time.Duration(ev.NotificationMinutes) * time.Minute)
		if now.Before(leadStart) || now.After(start.Time()) {
			continue
		}
		due = append(due, ev)
	}
	return due
}

// CreateMessage 일정에 대한 알림 메시지를 생성
func CreateMessage(ev domain.Event) string {
	return fmt.Sprintf("%d분 후 %s 일정이 시작됩니다.", ev.NotificationMinutes, ev.Title)
}
