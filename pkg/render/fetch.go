/*
Copyright © 2025 Jorge C. Riveros
SPDX-License-Identifier: Apache-2.0
*/
package render

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	getter "github.com/hashicorp/go-getter/v2"

	"github.com/jcriveros/devaci/pkg/errors"
)

// FetchTemplates resolves a template source into a sorted list of local
// template files. Local files and directories are used in place; anything
// else (http, git, s3 URLs in go-getter syntax) is fetched under workdir
// first.
func FetchTemplates(ctx context.Context, src, workdir string) ([]string, error) {
	if info, err := os.Stat(src); err == nil {
		if !info.IsDir() {
			return []string{src}, nil
		}
		return listTemplates(src)
	}

	sum := sha256.Sum256([]byte(src))
	dst := filepath.Join(workdir, hex.EncodeToString(sum[:8]))

	res, err := getter.GetAny(ctx, dst, src)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidTemplate, "fetching template source failed", err)
	}
	return listTemplates(res.Dst)
}

// listTemplates walks dir collecting regular files, skipping dotfiles.
func listTemplates(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if path != dir && name[0] == '.' {
				return filepath.SkipDir
			}
			return nil
		}
		if name[0] == '.' {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}
