package mentor

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thanvish21/systemx/internal/profile"
)

func TestSystemInstructionCombinations(t *testing.T) {
	tests := []struct {
		attempt profile.Attempt
		year    profile.CollegeYear
		want    []string
		reject  []string
	}{
		{profile.AttemptJanuary, profile.FirstYear,
			[]string{"Attempt is JANUARY", "1ST YEAR MODE"},
			[]string{"Attempt is APRIL", "2ND YEAR MODE"}},
		{profile.AttemptJanuary, profile.SecondYear,
			[]string{"Attempt is JANUARY", "2ND YEAR MODE"},
			[]string{"Attempt is APRIL", "1ST YEAR MODE"}},
		{profile.AttemptApril, profile.FirstYear,
			[]string{"Attempt is APRIL", "1ST YEAR MODE"},
			[]string{"Attempt is JANUARY", "2ND YEAR MODE"}},
		{profile.AttemptApril, profile.SecondYear,
			[]string{"Attempt is APRIL", "2ND YEAR MODE"},
			[]string{"Attempt is JANUARY", "1ST YEAR MODE"}},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s %s", tt.attempt, tt.year), func(t *testing.T) {
			p := testProfile()
			p.JEEAttempt = tt.attempt
			p.CollegeYear = tt.year
			sys := SystemInstruction(p)

			for _, want := range tt.want {
				assert.Contains(t, sys, want)
			}
			for _, reject := range tt.reject {
				assert.NotContains(t, sys, reject)
			}
		})
	}
}

func TestSystemInstructionContext(t *testing.T) {
	p := testProfile()
	p.Level = profile.LevelStrong
	sys := SystemInstruction(p)

	require.Contains(t, sys, "ACADEMIC CONTEXT:")
	assert.Contains(t, sys, "- Level: Strong")
	assert.Contains(t, sys, fmt.Sprintf("- Attempt: %s", p.JEEAttempt))
}

func TestSystemInstructionStaticProtocol(t *testing.T) {
	sys := SystemInstruction(testProfile())

	for _, want := range []string{
		"SYSTEM-X PROTOCOL",
		"SLIDE PROTOCOL (STRICT)",
		"ZERO DATE QUESTIONS",
		"MARKS OVER EGO",
	} {
		assert.Contains(t, sys, want)
	}
}
