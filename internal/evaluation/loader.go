package evaluation

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/atharvaaa699/mishika/internal/domain/entities"
)

// LoadGoldenCases reads and parses a golden case set from a JSON file.
func LoadGoldenCases(path string) ([]GoldenCase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read golden cases file: %w", err)
	}

	var cases []GoldenCase
	if err := json.Unmarshal(data, &cases); err != nil {
		return nil, fmt.Errorf("failed to parse golden cases: %w", err)
	}

	return cases, nil
}

// ValidateGoldenCases checks that all golden cases have required fields and
// valid values. Empty segments are normalized to none.
func ValidateGoldenCases(cases []GoldenCase) error {
	seen := make(map[string]struct{}, len(cases))

	for i := range cases {
		c := &cases[i]
		if c.ID == "" {
			return fmt.Errorf("case at index %d: missing id", i)
		}
		if _, dup := seen[c.ID]; dup {
			return fmt.Errorf("case at index %d: duplicate id %q", i, c.ID)
		}
		seen[c.ID] = struct{}{}

		if c.UserID == "" {
			return fmt.Errorf("case %q: missing user_id", c.ID)
		}
		if len(c.ExpectedServiceIDs) == 0 {
			return fmt.Errorf("case %q: expected_service_ids is empty", c.ID)
		}

		segment, err := entities.ParseMembershipTier(string(c.Segment))
		if err != nil {
			return fmt.Errorf("case %q: %w", c.ID, err)
		}
		c.Segment = segment

		if !c.Difficulty.IsValid() {
			return fmt.Errorf("case %q: invalid difficulty %q (must be easy/medium/hard)", c.ID, c.Difficulty)
		}
	}

	return nil
}
