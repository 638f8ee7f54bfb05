package uri

import "testing"

func TestOpen(t *testing.T) {
	tests := []struct {
		name      string
		vaultName string
		filePath  string
		want      string
	}{
		{
			name:      "simple path",
			vaultName: "vault",
			filePath:  "combined_notes/2024-01-02-0304_Notes-combined.md",
			want:      "obsidian://open?vault=vault&file=combined_notes%2F2024-01-02-0304_Notes-combined.md",
		},
		{
			name:      "leading slash in file path",
			vaultName: "vault",
			filePath:  "/notes/test.md",
			want:      "obsidian://open?vault=vault&file=notes%2Ftest.md",
		},
		{
			name:      "spaces",
			vaultName: "my vault",
			filePath:  "my notes/test file.md",
			want:      "obsidian://open?vault=my%20vault&file=my%20notes%2Ftest%20file.md",
		},
		{
			name:      "query characters",
			vaultName: "a&b",
			filePath:  "c=d+e.md",
			want:      "obsidian://open?vault=a%26b&file=c%3Dd%2Be.md",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Open(tt.vaultName, tt.filePath)
			if got != tt.want {
				t.Errorf("Open() = %q, want %q", got, tt.want)
			}
		})
	}
}
