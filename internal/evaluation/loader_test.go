package evaluation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/atharvaaa699/mishika/internal/domain/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadGoldenCases_ValidFile(t *testing.T) {
	content := `[
		{"id": "c1", "user_id": "u-100", "segment": "gold", "expected_service_ids": ["jet-1", "yacht-2"], "difficulty": "easy"},
		{"id": "c2", "user_id": "u-200", "segment": "", "expected_service_ids": ["spa-3"], "difficulty": "hard"}
	]`
	path := writeTempFile(t, content)

	cases, err := LoadGoldenCases(path)
	require.NoError(t, err)
	require.Len(t, cases, 2)
	assert.Equal(t, "u-100", cases[0].UserID)
	assert.Equal(t, entities.MembershipTierGold, cases[0].Segment)
	assert.Equal(t, []string{"jet-1", "yacht-2"}, cases[0].ExpectedServiceIDs)
	assert.Equal(t, DifficultyHard, cases[1].Difficulty)
}

func TestLoadGoldenCases_Errors(t *testing.T) {
	_, err := LoadGoldenCases("/nonexistent/cases.json")
	assert.Error(t, err)

	_, err = LoadGoldenCases(writeTempFile(t, `not valid json`))
	assert.Error(t, err)
}

func TestValidateGoldenCases(t *testing.T) {
	valid := func() GoldenCase {
		return GoldenCase{ID: "c1", UserID: "u-1", Segment: "silver", ExpectedServiceIDs: []string{"jet-1"}, Difficulty: DifficultyEasy}
	}

	tests := []struct {
		name   string
		mutate func(c *GoldenCase)
	}{
		{"missing id", func(c *GoldenCase) { c.ID = "" }},
		{"missing user", func(c *GoldenCase) { c.UserID = "" }},
		{"no expected services", func(c *GoldenCase) { c.ExpectedServiceIDs = nil }},
		{"unknown segment", func(c *GoldenCase) { c.Segment = "diamond" }},
		{"invalid difficulty", func(c *GoldenCase) { c.Difficulty = "impossible" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)
			assert.Error(t, ValidateGoldenCases([]GoldenCase{c}))
		})
	}

	t.Run("duplicate ids", func(t *testing.T) {
		assert.Error(t, ValidateGoldenCases([]GoldenCase{valid(), valid()}))
	})

	t.Run("normalizes empty segment", func(t *testing.T) {
		c := valid()
		c.Segment = ""
		cases := []GoldenCase{c}

		require.NoError(t, ValidateGoldenCases(cases))
		assert.Equal(t, entities.MembershipTierNone, cases[0].Segment)
	})
}

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "cases.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}
	return path
}
