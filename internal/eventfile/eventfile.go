// Package eventfile 협력자(UI/스케줄러)가 넘겨주는 일정 목록 파일의 로딩
package eventfile

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/yeonsu-kim/iljung/internal/domain"
)

// entry YAML 파일 상의 일정 한 건
type entry struct {
	ID                  string `yaml:"id"`
	Title               string `yaml:"title"`
	Date                string `yaml:"date"`
	StartTime           string `yaml:"start_time"`
	EndTime             string `yaml:"end_time"`
	Description         string `yaml:"description"`
	Location            string `yaml:"location"`
	NotificationMinutes int    `yaml:"notification_minutes"`
}

// document 일정 목록 YAML 문서의 최상위 구조
type document struct {
	Events []entry `yaml:"events"`
}

// Load 일정 목록 YAML 파일을 읽어 도메인 이벤트로 변환
//
// ID가 없는 항목에는 UUID를 생성해 부여하고, 알림 시간이 없거나
// 0 이하인 항목에는 defaultNotificationMinutes를 적용한다.
// 날짜/시각 문자열의 형식 검증은 하지 않는다. 잘못된 항목은
// 겹침/알림 판정 단계에서 조용히 제외된다.
func Load(path string, defaultNotificationMinutes int) ([]domain.Event, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("일정 파일 읽기에 실패했습니다: %v", err)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("일정 파일 해석에 실패했습니다: %v", err)
	}

	events := make([]domain.Event, 0, len(doc.Events))
	for _, e := range doc.Events {
		if e.ID == "" {
			e.ID = uuid.New().String()
		}
		if e.NotificationMinutes <= 0 {
			e.NotificationMinutes = defaultNotificationMinutes
		}
		events = append(events, domain.Event{
			ID:                  e.ID,
			Title:               e.Title,
			Date:                e.Date,
			StartTime:           e.StartTime,
			EndTime:             e.EndTime,
			Description:         e.Description,
			Location:            e.Location,
			NotificationMinutes: e.NotificationMinutes,
		})
	}
	return events, nil
}
