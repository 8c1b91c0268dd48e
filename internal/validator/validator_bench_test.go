package validator

import (
	"testing"
)

func BenchmarkValidateSubmission(b *testing.B) {
	v := NewValidator()
	s := validSubmission()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.ValidateSubmission(s)
	}
}

func BenchmarkKeywordsRegex(b *testing.B) {
	keywords := "Chola bronzes, lost-wax casting, temple art, South India, iconography"
	for i := 0; i < b.N; i++ {
		_ = keywordsRegex.MatchString(keywords)
	}
}
