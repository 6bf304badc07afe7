package markdown

import "testing"

func TestTitleReader_Title(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "first level-1 heading",
			src:  "# Epic: Accounts\n\n**Epic ID**: MS-1\n\n# Appendix\n",
			want: "Epic: Accounts",
		},
		{
			name: "inline formatting stripped",
			src:  "# Payments *v2* `beta`\n",
			want: "Payments v2 beta",
		},
		{
			name: "setext heading",
			src:  "Search\n======\n",
			want: "Search",
		},
		{
			name: "level-2 only",
			src:  "## Stories\n\n**Story ID**: MS-10\n",
			want: "",
		},
		{
			name: "heading inside code fence ignored",
			src:  "```\n# not a title\n```\n",
			want: "",
		},
		{
			name: "empty",
			src:  "",
			want: "",
		},
	}

	r := NewTitleReader()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Title(tt.src); got != tt.want {
				t.Errorf("Title() = %q, expected %q", got, tt.want)
			}
		})
	}
}
