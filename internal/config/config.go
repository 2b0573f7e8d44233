package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// 설정 기본값
const (
	defaultTimezone            = "Asia/Seoul"
	defaultEventsFile          = "events.yaml"
	defaultNotificationMinutes = 10
	defaultLogLevel            = "INFO"
)

// Config 애플리케이션 설정 구조체
type Config struct {
	// Timezone 일정 해석에 사용하는 IANA 타임존
	Timezone string

	// EventsFile 일정 목록 YAML 파일 경로
	EventsFile string

	// DefaultNotificationMinutes 일정에 알림 시간이 없을 때 사용하는 기본 분
	DefaultNotificationMinutes int

	// LogLevel 로그 레벨
	LogLevel string
}

// Load 환경 변수에서 설정을 읽어들인다
//
// .env 파일이 있으면 먼저 읽어들이고, 없어도 에러로 취급하지 않는다.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		// .env 파일이 없는 환경은 정상 동작으로 본다
		fmt.Printf("Warning: .env 파일을 읽지 못했습니다: %v\n", err)
	}

	cfg := &Config{
		Timezone:                   getEnvOrDefault("TIMEZONE", defaultTimezone),
		EventsFile:                 getEnvOrDefault("EVENTS_FILE", defaultEventsFile),
		DefaultNotificationMinutes: getEnvIntOrDefault("DEFAULT_NOTIFICATION_MINUTES", defaultNotificationMinutes),
		LogLevel:                   getEnvOrDefault("LOG_LEVEL", defaultLogLevel),
	}

	// 타임존과 기본 알림 시간은 기동 시점에 검증한다
	if _, err := cfg.Location(); err != nil {
		return nil, err
	}
	if cfg.DefaultNotificationMinutes <= 0 {
		return nil, fmt.Errorf("DEFAULT_NOTIFICATION_MINUTES는 1 이상이어야 합니다: %d", cfg.DefaultNotificationMinutes)
	}

	return cfg, nil
}

// Location 설정된 타임존을 *time.Location으로 해석
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("타임존 %q 읽기에 실패했습니다: %v", c.Timezone, err)
	}
	return loc, nil
}

// getEnvOrDefault 환경 변수를 가져오고, 없으면 기본값을 반환
func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

// getEnvIntOrDefault 정수형 환경 변수를 가져오고, 없거나 숫자가 아니면 기본값을 반환
func getEnvIntOrDefault(key string, defaultValue int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		fmt.Printf("Warning: %s 값 %q을(를) 숫자로 해석하지 못해 기본값 %d을(를) 사용합니다\n", key, raw, defaultValue)
		return defaultValue
	}
	return value
}
