package vault

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveTagFromContent(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		tag       string
		want      string
		wantCount int
	}{
		{
			name:      "frontmatter list entry",
			content:   "---\ntags:\n  - daily\n  - keep\n---\nbody\n",
			tag:       "daily",
			want:      "---\ntags:\n  - keep\n---\nbody\n",
			wantCount: 1,
		},
		{
			name:      "frontmatter entry with hash and quotes",
			content:   "---\ntags:\n  - \"#daily\"\n---\nbody\n",
			tag:       "daily",
			want:      "---\ntags:\n---\nbody\n",
			wantCount: 1,
		},
		{
			name:      "body hashtag",
			content:   "no frontmatter #daily here\n",
			tag:       "daily",
			want:      "no frontmatter  here\n",
			wantCount: 1,
		},
		{
			name:      "case insensitive",
			content:   "---\ntags:\n  - Daily\n---\ntext #DAILY end\n",
			tag:       "daily",
			want:      "---\ntags:\n---\ntext  end\n",
			wantCount: 2,
		},
		{
			name:      "bare word in body not removed",
			content:   "the daily standup\n",
			tag:       "daily",
			want:      "the daily standup\n",
			wantCount: 0,
		},
		{
			name:      "tag prefix not removed",
			content:   "keep #dailynote\n",
			tag:       "daily",
			want:      "keep #dailynote\n",
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, count := RemoveTagFromContent(tt.content, tt.tag)
			assert.Equal(t, tt.wantCount, count)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRemoveTag(t *testing.T) {
	dir := t.TempDir()
	hit := writeFile(t, dir, "hit.md", "---\ntags:\n  - daily\n---\ntext #daily\n")
	miss := writeFile(t, dir, "miss.md", "nothing to do\n")

	result, err := RemoveTag(dir, "", "daily")
	require.NoError(t, err)

	assert.Equal(t, 2, result.Scanned)
	assert.Equal(t, []string{hit}, result.Modified)
	assert.Equal(t, 2, result.Replacements)

	content, err := os.ReadFile(hit)
	require.NoError(t, err)
	assert.Equal(t, "---\ntags:\n---\ntext \n", string(content))

	unchanged, err := os.ReadFile(miss)
	require.NoError(t, err)
	assert.Equal(t, "nothing to do\n", string(unchanged))
}
