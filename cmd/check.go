package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yeonsu-kim/iljung/internal/domain"
	"github.com/yeonsu-kim/iljung/internal/usecase"
)

// newCheckCmd 새 일정의 시간 겹침을 검사하는 커맨드
func newCheckCmd() *cobra.Command {
	var (
		idFlag    string
		titleFlag string
		dateFlag  string
		startFlag string
		endFlag   string
	)

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "새 일정이 기존 일정과 겹치는지 검사",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, loc, err := loadEnv()
			if err != nil {
				return err
			}

			candidate := domain.Event{
				ID:        idFlag,
				Title:     titleFlag,
				Date:      dateFlag,
				StartTime: startFlag,
				EndTime:   endFlag,
			}

			uc := usecase.NewCheckConflictUseCase(newEventSource(cfg), loc)
			conflicts, err := uc.Execute(cmd.Context(), candidate)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(conflicts) == 0 {
				fmt.Fprintln(out, "겹치는 일정이 없습니다.")
				return nil
			}

			fmt.Fprintf(out, "겹치는 일정 %d건:\n", len(conflicts))
			for _, ev := range conflicts {
				fmt.Fprintf(out, "  %s\n", usecase.ConflictWarning(ev))
			}
			return nil
		},
	}

	checkCmd.Flags().StringVar(&idFlag, "id", "", "일정 ID (기존 일정 수정 시 자기 자신 제외용)")
	checkCmd.Flags().StringVar(&titleFlag, "title", "", "일정 제목")
	checkCmd.Flags().StringVar(&dateFlag, "date", "", "일정 날짜 (YYYY-MM-DD)")
	checkCmd.Flags().StringVar(&startFlag, "start", "", "시작 시각 (HH:MM)")
	checkCmd.Flags().StringVar(&endFlag, "end", "", "종료 시각 (HH:MM)")
	_ = checkCmd.MarkFlagRequired("date")
	_ = checkCmd.MarkFlagRequired("start")
	_ = checkCmd.MarkFlagRequired("end")
	return checkCmd
}
