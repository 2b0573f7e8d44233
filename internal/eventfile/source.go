package eventfile

import (
	"context"

	"github.com/yeonsu-kim/iljung/internal/domain"
)

// Source 파일에서 일정을 읽는 EventSource 구현
//
// 호출 시마다 파일을 다시 읽으므로 파일 수정이 다음 스캔에 바로 반영된다.
type Source struct {
	Path                       string
	DefaultNotificationMinutes int
}

// Events 일정 목록을 읽어 반환
func (s *Source) Events(_ context.Context) ([]domain.Event, error) {
	return Load(s.Path, s.DefaultNotificationMinutes)
}
