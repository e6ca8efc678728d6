package origin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRepoURL(t *testing.T) {
	cases := map[string]string{
		"git+https://github.com/org/left-pad.git":   "https://github.com/org/left-pad",
		"git+ssh://git@github.com/org/left-pad.git": "https://github.com/org/left-pad",
		"git://github.com/org/left-pad.git":         "https://github.com/org/left-pad",
		"http://github.com/org/left-pad":            "https://github.com/org/left-pad",
		"git@github.com:org/left-pad.git":           "https://github.com/org/left-pad",
		"ssh://git@gitlab.com/org/project":          "https://gitlab.com/org/project",
		"https://github.com/org/left-pad/":          "https://github.com/org/left-pad",
		"https://github.com/org/left-pad#readme":    "https://github.com/org/left-pad",
		"  https://github.com/org/left-pad  ":       "https://github.com/org/left-pad",
		"":                                          "",
	}

	for in, expected := range cases {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, expected, NormalizeRepoURL(in))
		})
	}
}

func TestRepoPath(t *testing.T) {
	org, project := RepoPath("https://github.com/org/left-pad")
	assert.Equal(t, "org", org)
	assert.Equal(t, "left-pad", project)

	org, project = RepoPath("https://salsa.debian.org/python-team/packages/six.git")
	assert.Equal(t, "python-team", org)
	assert.Equal(t, "packages", project)

	org, project = RepoPath("https://example.com/only")
	assert.Empty(t, org)
	assert.Empty(t, project)
}
