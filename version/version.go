// Package version tracks the application version and discovers new releases.
package version

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/CalebBrendel/mov-cli-openmovies/constant"
	"github.com/CalebBrendel/mov-cli-openmovies/filesystem"
	"github.com/CalebBrendel/mov-cli-openmovies/network"
	"github.com/CalebBrendel/mov-cli-openmovies/where"
	"github.com/metafates/gache"
)

var versionCacher = gache.New[string](&gache.Options{
	Path:       filepath.Join(where.Cache(), "version.json"),
	Lifetime:   time.Hour * 24 * 2,
	FileSystem: &filesystem.GacheFs{},
})

// Latest returns the most recent released version, without the v prefix.
// Releases are looked up through the GitHub API and cached for two days to
// stay clear of its rate limits.
func Latest() (string, error) {
	cached, expired, err := versionCacher.Get()
	if err != nil {
		return "", err
	}

	if !expired && cached != "" {
		return cached, nil
	}

	var release struct {
		TagName string `json:"tag_name"`
	}

	url := fmt.Sprintf("https://api.github.com/repos/%s/releases/latest", constant.Repository)
	if err = network.FetchJSON(url, nil, &release); err != nil {
		return "", err
	}

	if release.TagName == "" {
		return "", errors.New("empty tag name")
	}

	version := strings.TrimPrefix(release.TagName, "v")
	_ = versionCacher.Set(version)

	return version, nil
}
