package origin

import (
	"bytes"
	"context"
	"regexp"
	"strings"

	"github.com/l3montree-dev/deppkg/normalize"
	"pault.ag/go/debian/control"
	"pault.ag/go/debian/version"
)

type debianStrategy struct {
	baseURL string
}

type dscFile struct {
	Source string
	VcsGit string `control:"Vcs-Git"`
}

var vcsGitLine = regexp.MustCompile(`(?m)^Vcs-Git:\s*(.*)$`)

// legacy debian git hosts, all of them moved to salsa
var debianLegacyGitHosts = []string{
	"git://git.debian.org/git",
	"git://git.debian.org/users",
	"git://anonscm.debian.org/users",
	"git://git.debian.org",
	"git://anonscm.debian.org",
}

var debianTeamPath = regexp.MustCompile(`pkg-(\w+)`)

// stripEpoch drops the epoch of a debian version, source file names never carry it.
func stripEpoch(v string) string {
	parsed, err := version.Parse(v)
	if err != nil {
		return v
	}
	if parsed.Revision == "" {
		return parsed.Version
	}
	return parsed.Version + "-" + parsed.Revision
}

func (s debianStrategy) lookup(ctx context.Context, fetcher *registryFetcher, c normalize.PackageCoordinate) (registryResult, error) {
	v := stripEpoch(c.Version)
	body, err := fetcher.get(ctx, s.baseURL+"/"+c.Name+"/"+v+"/"+c.Name+"_"+v+".dsc")
	if err != nil {
		return registryResult{}, err
	}

	return registryResult{RepoURL: rewriteDebianVcs(parseVcsGit(body))}, nil
}

func parseVcsGit(body []byte) string {
	var dsc dscFile
	if err := control.Unmarshal(&dsc, bytes.NewReader(body)); err == nil && dsc.VcsGit != "" {
		return dsc.VcsGit
	}

	// signed or slightly broken files, fall back to a plain line match
	m := vcsGitLine.FindSubmatch(body)
	if m == nil {
		return ""
	}
	return string(m[1])
}

func rewriteDebianVcs(repoURL string) string {
	repoURL = strings.TrimSpace(repoURL)
	// "<url> -b <branch>"
	if i := strings.IndexByte(repoURL, ' '); i >= 0 {
		repoURL = repoURL[:i]
	}
	if repoURL == "" {
		return ""
	}

	for _, host := range debianLegacyGitHosts {
		if strings.Contains(repoURL, host) {
			repoURL = strings.ReplaceAll(strings.Replace(repoURL, host, "https://salsa.debian.org", 1), ".git", "")
			break
		}
	}

	return debianTeamPath.ReplaceAllString(repoURL, "${1}-team")
}
