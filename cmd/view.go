package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/yeonsu-kim/iljung/internal/dateutil"
	"github.com/yeonsu-kim/iljung/internal/domain"
	"github.com/yeonsu-kim/iljung/internal/format"
)

// newViewCmd 월 캘린더 그리드를 출력하는 커맨드
func newViewCmd() *cobra.Command {
	var dateFlag string

	viewCmd := &cobra.Command{
		Use:   "view",
		Short: "지정한 날짜가 속한 월의 캘린더 그리드를 출력",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, loc, err := loadEnv()
			if err != nil {
				return err
			}

			target, err := parseDateFlag(dateFlag, time.Now(), loc)
			if err != nil {
				return err
			}

			renderMonth(cmd.OutOrStdout(), target)

			// 일정 파일이 있으면 해당 날짜의 일정도 같이 보여준다
			events, err := newEventSource(cfg).Events(cmd.Context())
			if err != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "일정 없이 그리드만 출력합니다: %v\n", err)
				return nil
			}
			renderDayEvents(cmd.OutOrStdout(), target, events)
			return nil
		},
	}

	viewCmd.Flags().StringVar(&dateFlag, "date", "", "기준 날짜 (YYYY-MM-DD, 기본값 오늘)")
	return viewCmd
}

// renderMonth 월 라벨, 주 라벨, 그리드를 출력
func renderMonth(w io.Writer, t time.Time) {
	fmt.Fprintln(w, format.FormatMonth(t))
	fmt.Fprintln(w, format.FormatWeek(t))
	fmt.Fprintln(w, "일 월 화 수 목 금 토")

	for _, week := range dateutil.MonthGrid(t) {
		cells := make([]string, len(week))
		for i, day := range week {
			if day == dateutil.EmptyCell {
				cells[i] = "  "
			} else {
				cells[i] = fmt.Sprintf("%2d", day)
			}
		}
		fmt.Fprintln(w, strings.Join(cells, " "))
	}
}

// renderDayEvents 기준 날짜의 일정 목록을 출력
func renderDayEvents(w io.Writer, t time.Time, events []domain.Event) {
	sameDay := make([]domain.Event, 0)
	for _, ev := range dateutil.EventsForDay(events, t.Day()) {
		if ev.Date == format.FormatDate(t) {
			sameDay = append(sameDay, ev)
		}
	}

	if len(sameDay) == 0 {
		fmt.Fprintf(w, "\n%s: 일정 없음\n", format.FormatDate(t))
		return
	}

	fmt.Fprintf(w, "\n%s 일정 (%d건):\n", format.FormatDate(t), len(sameDay))
	for _, ev := range sameDay {
		fmt.Fprintf(w, "  %s~%s %s\n", ev.StartTime, ev.EndTime, ev.Title)
		if ev.Location != "" {
			fmt.Fprintf(w, "    장소: %s\n", ev.Location)
		}
	}
}
