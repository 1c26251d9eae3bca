// This file is part of Gomotion.
//
// Gomotion is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gomotion is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gomotion.  If not, see <https://www.gnu.org/licenses/>.

// Package paths resolves the location of files that persist between runs of
// the program, such as the preferences file.
package paths

import (
	"os"
	"path/filepath"
)

// the base path for all resources. getBasePath() should be used instead of
// this value directly.
const baseResourcePath = ".gomotion"

// ResourcePath returns the path of the resource. Empty elements are ignored.
// The resources are in the baseResourcePath directory of the current
// directory if that directory exists. Otherwise they are in the user's
// configuration directory.
func ResourcePath(resource ...string) string {
	p := make([]string, 0, len(resource)+1)
	p = append(p, getBasePath())
	p = append(p, resource...)
	return filepath.Join(p...)
}

// MakeResourcePath is like ResourcePath() but also creates the directory that
// will contain the resource.
func MakeResourcePath(resource ...string) (string, error) {
	p := ResourcePath(resource...)
	if err := os.MkdirAll(filepath.Dir(p), 0o700); err != nil {
		return "", err
	}
	return p, nil
}

func getBasePath() string {
	if _, err := os.Stat(baseResourcePath); err == nil {
		return baseResourcePath
	}

	home, err := os.UserConfigDir()
	if err != nil {
		return baseResourcePath
	}
	return filepath.Join(home, baseResourcePath[1:])
}
