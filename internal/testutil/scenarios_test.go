package testutil

import "testing"

func TestScenarios(t *testing.T) {
	seen := make(map[string]bool)
	for _, s := range Scenarios() {
		if seen[s.Name] {
			t.Errorf("duplicate scenario %q", s.Name)
		}
		seen[s.Name] = true
		if err := s.Config.Validate(); err != nil {
			t.Errorf("scenario %q: %v", s.Name, err)
		}
	}
	if len(seen) != 3 {
		t.Errorf("scenarios = %d, want 3", len(seen))
	}
}
