package origin

import (
	"regexp"
	"strings"
)

var scpLikeURL = regexp.MustCompile(`^([\w.-]+@)?([\w.-]+):([^/][^:]*)$`)

var repoURLRewrites = []struct{ from, to string }{
	{"git+https://", "https://"},
	{"git+ssh://git@", "https://"},
	{"git+ssh://", "https://"},
	{"git+http://", "https://"},
	{"git+", ""},
	{"ssh://git@", "https://"},
	{"git://", "https://"},
	{"http://", "https://"},
}

// NormalizeRepoURL rewrites the many ways registries spell a repository url
// into a fetchable https url without .git suffix.
func NormalizeRepoURL(repoURL string) string {
	repoURL = strings.TrimSpace(repoURL)
	if repoURL == "" {
		return ""
	}

	// git@github.com:org/repo.git
	if !strings.Contains(repoURL, "://") {
		if m := scpLikeURL.FindStringSubmatch(repoURL); m != nil {
			repoURL = "https://" + m[2] + "/" + m[3]
		}
	}

	for _, r := range repoURLRewrites {
		if strings.HasPrefix(repoURL, r.from) {
			repoURL = r.to + strings.TrimPrefix(repoURL, r.from)
			break
		}
	}

	if i := strings.IndexAny(repoURL, "#?"); i >= 0 {
		repoURL = repoURL[:i]
	}
	repoURL = strings.TrimRight(repoURL, "/")
	repoURL = strings.TrimSuffix(repoURL, ".git")
	return repoURL
}

// RepoPath splits a repository url into organization and project,
// e.g. https://github.com/org/left-pad -> org, left-pad.
// Both are empty if the url has less than host/org/project segments.
func RepoPath(repoURL string) (string, string) {
	repoURL = strings.ReplaceAll(repoURL, ".git", "")
	repoURL = strings.TrimPrefix(strings.TrimPrefix(repoURL, "https://"), "http://")
	segments := strings.Split(strings.Trim(repoURL, "/"), "/")
	if len(segments) < 3 {
		return "", ""
	}
	return segments[1], segments[2]
}
