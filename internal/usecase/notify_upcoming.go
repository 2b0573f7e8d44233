package usecase

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/yeonsu-kim/iljung/internal/domain"
	"github.com/yeonsu-kim/iljung/internal/notification"
)

// EventSource 일정 목록을 제공하는 포트
type EventSource interface {
	Events(ctx context.Context) ([]domain.Event, error)
}

// NotificationSink 알림 메시지를 전달하는 포트
type NotificationSink interface {
	Send(ctx context.Context, message string) error
}

// NotifyUpcomingUseCase 알림 시점이 도래한 일정을 찾아 통지하는 유스케이스
//
// 이미 알림을 보낸 일정 ID의 장부를 직접 보유한다. 선별 로직은
// 장부를 읽기만 하므로 기록 책임은 여기에 있다. 스캔이 주기보다
// 오래 걸려 Execute가 겹쳐 호출되어도 장부가 깨지거나 같은 일정이
// 두 번 통지되지 않도록 스캔 전체를 직렬화한다.
type NotifyUpcomingUseCase struct {
	source   EventSource
	sink     NotificationSink
	selector *notification.Selector

	mu       sync.Mutex
	notified map[string]struct{}
}

// NewNotifyUpcomingUseCase 유스케이스를 생성
func NewNotifyUpcomingUseCase(source EventSource, sink NotificationSink, loc *time.Location) *NotifyUpcomingUseCase {
	return &NotifyUpcomingUseCase{
		source:   source,
		sink:     sink,
		selector: notification.NewSelector(loc),
		notified: make(map[string]struct{}),
	}
}

// Execute 한 번의 스캔을 수행해 알림 구간이 열린 일정을 통지
//
// 전송에 성공한 일정의 ID를 장부에 기록하므로 같은 일정이 두 번
// 통지되지 않는다. 전송 실패 시 해당 일정은 기록하지 않고 중단해
// 다음 스캔에서 재시도되게 한다. 보낸 메시지 수를 반환한다.
func (uc *NotifyUpcomingUseCase) Execute(ctx context.Context, now time.Time) (int, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	events, err := uc.source.Events(ctx)
	if err != nil {
		log.Printf("일정 목록 조회에 실패했습니다: %v", err)
		return 0, err
	}

	notifiedIDs := make([]string, 0, len(uc.notified))
	for id := range uc.notified {
		notifiedIDs = append(notifiedIDs, id)
	}

	sent := 0
	for _, ev := range uc.selector.UpcomingEvents(events, now, notifiedIDs) {
		if err := uc.sink.Send(ctx, notification.CreateMessage(ev)); err != nil {
			log.Printf("알림 전송에 실패했습니다: %v", err)
			return sent, err
		}
		uc.notified[ev.ID] = struct{}{}
		sent++
	}
	return sent, nil
}
