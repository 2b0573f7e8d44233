package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/yeonsu-kim/iljung/internal/usecase"
)

// consoleSink 알림 메시지를 표준 출력으로 내보내는 NotificationSink
type consoleSink struct {
	w io.Writer
}

// Send 메시지 한 줄을 출력
func (s *consoleSink) Send(_ context.Context, message string) error {
	_, err := fmt.Fprintln(s.w, message)
	return err
}

// newNotifyCmd 알림 스캔을 한 번 수행하는 커맨드
func newNotifyCmd() *cobra.Command {
	var atFlag string

	notifyCmd := &cobra.Command{
		Use:   "notify",
		Short: "알림 시점이 도래한 일정을 한 번 스캔해 출력",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, loc, err := loadEnv()
			if err != nil {
				return err
			}

			now := time.Now().In(loc)
			if atFlag != "" {
				now, err = time.ParseInLocation("2006-01-02T15:04", atFlag, loc)
				if err != nil {
					return fmt.Errorf("기준 시각 %q 해석에 실패했습니다 (YYYY-MM-DDTHH:MM 형식): %v", atFlag, err)
				}
			}

			uc := usecase.NewNotifyUpcomingUseCase(
				newEventSource(cfg),
				&consoleSink{w: cmd.OutOrStdout()},
				loc,
			)
			sent, err := uc.Execute(cmd.Context(), now)
			if err != nil {
				return err
			}
			if sent == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "알림 대상 일정이 없습니다.")
			}
			return nil
		},
	}

	notifyCmd.Flags().StringVar(&atFlag, "at", "", "기준 시각 (YYYY-MM-DDTHH:MM, 기본값 현재 시각)")
	return notifyCmd
}
