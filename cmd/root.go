package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/yeonsu-kim/iljung/internal/config"
	"github.com/yeonsu-kim/iljung/internal/eventfile"
)

// rootCmd iljung CLI의 최상위 커맨드
var rootCmd = &cobra.Command{
	Use:   "iljung",
	Short: "캘린더 그리드 출력, 일정 충돌 검사, 알림 스캔 도구",
	Long: `iljung은 일정 목록 파일을 입력으로 받아

  - 월 단위 캘린더 그리드와 주 라벨을 출력하고 (view)
  - 새 일정이 기존 일정과 겹치는지 검사하고 (check)
  - 알림 시점이 도래한 일정을 찾아 통지한다 (notify, watch)

일정 파일 경로와 타임존은 환경 변수(EVENTS_FILE, TIMEZONE)로 설정한다.`,
	SilenceUsage: true,
}

// Execute CLI의 진입점
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newViewCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newNotifyCmd())
	rootCmd.AddCommand(newWatchCmd())
}

// loadEnv 설정과 타임존을 읽어들인다
func loadEnv() (*config.Config, *time.Location, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("설정 읽기에 실패했습니다: %v", err)
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, nil, err
	}
	return cfg, loc, nil
}

// newEventSource 설정된 일정 파일에 대한 EventSource를 생성
func newEventSource(cfg *config.Config) *eventfile.Source {
	return &eventfile.Source{
		Path:                       cfg.EventsFile,
		DefaultNotificationMinutes: cfg.DefaultNotificationMinutes,
	}
}

// parseDateFlag "--date YYYY-MM-DD" 플래그 값을 해석. 비어있으면 now를 사용
func parseDateFlag(value string, now time.Time, loc *time.Location) (time.Time, error) {
	if value == "" {
		return now.In(loc), nil
	}
	t, err := time.ParseInLocation("2006-01-02", value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("날짜 %q 해석에 실패했습니다 (YYYY-MM-DD 형식): %v", value, err)
	}
	return t, nil
}
