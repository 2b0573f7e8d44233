package domain

import "time"

// Instant 해석된 시점을 나타내는 값 타입
//
// 날짜/시각 문자열 파싱이 실패한 경우 "무효" 상태가 되며,
// 무효한 Instant는 어떤 시점보다도 이전/이후/동일이 아니다.
// 잘못된 입력 하나가 전체 일정 검사를 중단시키지 않도록
// 예외 대신 무효 값으로 전파한다.
type Instant struct {
	t     time.Time
	valid bool
}

// NewInstant 유효한 Instant를 생성
func NewInstant(t time.Time) Instant {
	return Instant{t: t, valid: true}
}

// InvalidInstant 무효한 Instant를 생성
func InvalidInstant() Instant {
	return Instant{}
}

// IsValid 유효한 시점인지 여부
func (i Instant) IsValid() bool {
	return i.valid
}

// Time 내부 시각을 반환 (무효한 경우 제로 값)
func (i Instant) Time() time.Time {
	return i.t
}

// Before i가 other보다 이전인지 여부. 둘 중 하나라도 무효하면 false
func (i Instant) Before(other Instant) bool {
	if !i.valid || !other.valid {
		return false
	}
	return i.t.Before(other.t)
}

// After i가 other보다 이후인지 여부. 둘 중 하나라도 무효하면 false
func (i Instant) After(other Instant) bool {
	if !i.valid || !other.valid {
		return false
	}
	return i.t.After(other.t)
}

// Equal i와 other가 같은 시점인지 여부. 둘 중 하나라도 무효하면 false
func (i Instant) Equal(other Instant) bool {
	if !i.valid || !other.valid {
		return false
	}
	return i.t.Equal(other.t)
}

// Interval 하나의 일정이 차지하는 반열린 시간 구간 [Start, End)
type Interval struct {
	Start Instant
	End   Instant
}

// IsValid 양 끝 시점이 모두 유효한지 여부
func (iv Interval) IsValid() bool {
	return iv.Start.IsValid() && iv.End.IsValid()
}
