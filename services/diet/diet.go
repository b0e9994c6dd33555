package diet

import "strings"

const (
	InvalidAge = "Please enter a valid age."
	Growth     = "High-protein balanced diet for growth."
	Balanced   = "Balanced diet with cardio exercise."
	LowSodium  = "Low-sodium heart-friendly diet."
)

// Recommend picks the diet for an age bucket. Ages below 1 are invalid.
func Recommend(age int) string {
	if age < 1 {
		return InvalidAge
	}
	if age < 18 {
		return Growth
	} else if age <= 40 {
		return Balanced
	}
	return LowSodium
}

// ParseAge 取字串開頭的整數，"25.9" -> 25，無法解析回傳 0
func ParseAge(raw string) int {
	s := strings.TrimLeft(raw, " \t\n\r\v\f")
	sign := 1
	if s != "" && (s[0] == '+' || s[0] == '-') {
		if s[0] == '-' {
			sign = -1
		}
		s = s[1:]
	}

	age, digits := 0, 0
	for _, c := range s {
		if c < '0' || c > '9' {
			break
		}
		// 超過合理範圍就不用再累加
		if age < 1<<20 {
			age = age*10 + int(c-'0')
		}
		digits++
	}
	if digits == 0 {
		return 0
	}
	return sign * age
}
