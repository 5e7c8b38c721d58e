package main

import (
	"encoding/json"
	"testing"
)

func TestListCommand(t *testing.T) {
	tests := []struct {
		name           string
		limit          int
		wantContain    []string
		wantNotContain []string
	}{
		{
			name:        "all entries",
			wantContain: []string{"small.1.1.2", "small.10.10.2", "    30  "},
		},
		{
			name:           "limited",
			limit:          3,
			wantContain:    []string{"small.1.1.2", "small.3.3.2"},
			wantNotContain: []string{"small.4.4.2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			listLimit = tt.limit

			output, err := captureOutput(t, func() error {
				return runList([]string{smallFile(t)})
			})
			if err != nil {
				t.Fatalf("runList() error = %v", err)
			}
			assertContains(t, output, tt.wantContain)
			assertNotContains(t, output, tt.wantNotContain)
		})
	}
}

func TestListCommand_JSON(t *testing.T) {
	resetFlags()
	jsonOut = true
	listLimit = 2

	output, err := captureOutput(t, func() error {
		return runList([]string{smallFile(t)})
	})
	if err != nil {
		t.Fatalf("runList() error = %v", err)
	}

	var entries []listEntry
	if err := json.Unmarshal([]byte(output), &entries); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, output)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	// MASS=..., SEARCH=... and a blank line precede the first block.
	if entries[0].Offset != 30 || entries[0].ID != firstTitle {
		t.Errorf("entries[0] = %+v", entries[0])
	}
	if entries[1].Position != 1 || entries[1].Offset <= entries[0].Offset {
		t.Errorf("entries[1] = %+v", entries[1])
	}
}
