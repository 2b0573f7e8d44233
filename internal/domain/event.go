package domain

// Event 캘린더 일정의 도메인 엔티티
type Event struct {
	ID          string
	Title       string
	Date        string // "YYYY-MM-DD"
	StartTime   string // "HH:MM"
	EndTime     string // "HH:MM"
	Description string
	Location    string

	// NotificationMinutes 일정 시작 몇 분 전에 알림을 보낼지
	NotificationMinutes int
}
