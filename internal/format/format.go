// Package format 캘린더 화면에 표시되는 날짜/주 라벨 포맷팅
package format

import (
	"fmt"
	"strconv"
	"time"

	"github.com/yeonsu-kim/iljung/internal/dateutil"
)

// FillZero 값의 십진 문자열 표현을 왼쪽 0으로 size 자리 이상으로 채운다
//
// size를 생략하면 2를 사용한다. 소수부가 있는 값은 소수부를 그대로
// 유지한 채 전체 문자열 길이를 기준으로 채우며, 이미 size 이상의
// 길이면 원래 값을 그대로 반환한다.
func FillZero(value float64, size ...int) string {
	width := 2
	if len(size) > 0 {
		width = size[0]
	}

	s := strconv.FormatFloat(value, 'f', -1, 64)
	for len(s) < width {
		s = "0" + s
	}
	return s
}

// FormatDate 날짜를 "YYYY-MM-DD" 형식으로 포맷팅
//
// dayOverride가 주어지면 일(日) 자리에 해당 값을 사용한다.
// 월 그리드의 셀(일 숫자만 보유)을 날짜 문자열로 바꿀 때 쓰인다.
func FormatDate(t time.Time, dayOverride ...int) string {
	day := t.Day()
	if len(dayOverride) > 0 {
		day = dayOverride[0]
	}
	return fmt.Sprintf("%d-%s-%s",
		t.Year(),
		FillZero(float64(t.Month())),
		FillZero(float64(day)),
	)
}

// FormatMonth 날짜가 속한 월을 "YYYY년 M월" 라벨로 포맷팅
func FormatMonth(t time.Time) string {
	return fmt.Sprintf("%d년 %d월", t.Year(), int(t.Month()))
}

// FormatWeek 날짜가 속한 주를 "YYYY년 M월 W주" 라벨로 포맷팅
//
// 연/월은 주가 귀속되는 달(dateutil.WeekOfMonth)을 따르므로
// 월말 날짜가 다음 달 1주로 표기될 수 있다.
func FormatWeek(t time.Time) string {
	year, month, week := dateutil.WeekOfMonth(t)
	return fmt.Sprintf("%d년 %d월 %d주", year, int(month), week)
}
