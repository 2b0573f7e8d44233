package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/yeonsu-kim/iljung/internal/domain"
	"github.com/yeonsu-kim/iljung/internal/overlap"
)

// CheckConflictUseCase 새 일정 등록 전에 기존 일정과의 겹침을 검사하는 유스케이스
type CheckConflictUseCase struct {
	source   EventSource
	resolver *overlap.Resolver
}

// NewCheckConflictUseCase 유스케이스를 생성
func NewCheckConflictUseCase(source EventSource, loc *time.Location) *CheckConflictUseCase {
	return &CheckConflictUseCase{
		source:   source,
		resolver: overlap.NewResolver(loc),
	}
}

// Execute candidate와 시간이 겹치는 기존 일정들을 반환
//
// 겹침이 없으면 빈 슬라이스를 반환한다. 등록 여부의 결정은
// 호출자의 몫이다.
func (uc *CheckConflictUseCase) Execute(ctx context.Context, candidate domain.Event) ([]domain.Event, error) {
	events, err := uc.source.Events(ctx)
	if err != nil {
		log.Printf("일정 목록 조회에 실패했습니다: %v", err)
		return nil, err
	}
	return uc.resolver.FindOverlapping(candidate, events), nil
}

// ConflictWarning 겹치는 일정 한 건에 대한 경고 문구를 생성
func ConflictWarning(ev domain.Event) string {
	return fmt.Sprintf("%s (%s %s~%s) 일정과 겹칩니다.", ev.Title, ev.Date, ev.StartTime, ev.EndTime)
}
