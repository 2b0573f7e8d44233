package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/yeonsu-kim/iljung/internal/usecase"
)

// newWatchCmd 알림 스캔을 주기적으로 반복하는 커맨드
func newWatchCmd() *cobra.Command {
	var cronFlag string

	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "알림 스캔을 크론 주기로 반복 (SIGINT로 종료)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, loc, err := loadEnv()
			if err != nil {
				return err
			}

			uc := usecase.NewNotifyUpcomingUseCase(
				newEventSource(cfg),
				&consoleSink{w: cmd.OutOrStdout()},
				loc,
			)

			// 스캔이 주기보다 오래 걸리면 그 회차는 건너뛴다.
			// cron은 매 회차를 새 고루틴에서 실행하므로 겹침을 막지 않으면
			// 같은 유스케이스에 스캔이 동시에 들어간다.
			scheduler := cron.New(
				cron.WithLocation(loc),
				cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)),
			)
			_, err = scheduler.AddFunc(cronFlag, func() {
				if _, err := uc.Execute(cmd.Context(), time.Now().In(loc)); err != nil {
					log.Printf("알림 스캔에 실패했습니다: %v", err)
				}
			})
			if err != nil {
				return err
			}

			log.Printf("알림 감시를 시작합니다: 주기=%q 일정파일=%s 타임존=%s",
				cronFlag, cfg.EventsFile, cfg.Timezone)
			scheduler.Start()

			// SIGINT/SIGTERM까지 대기 후 진행 중인 잡을 마치고 종료
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			<-sigCh

			<-scheduler.Stop().Done()
			log.Printf("알림 감시를 종료합니다")
			return nil
		},
	}

	watchCmd.Flags().StringVar(&cronFlag, "cron", "* * * * *", "스캔 주기 (크론 형식)")
	return watchCmd
}
