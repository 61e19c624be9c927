package run

import (
	"path/filepath"
)

// FileJob is a resolved (source, destination) path pair for one file.
type FileJob struct {
	Source string // absolute or root-relative source path
	Dest   string // where the transformed content is written
}

// ResolveJobs turns the slash-separated relative paths produced by the
// scanner into FileJobs. With no output root the destination equals the
// source (in-place editing); otherwise the destination mirrors the source's
// path relative to root, rebased under the output root. An output root equal
// to the scan root is an ordinary overwrite.
func ResolveJobs(root, output string, relPaths []string) []FileJob {
	jobs := make([]FileJob, 0, len(relPaths))
	for _, rel := range relPaths {
		nativeRel := filepath.FromSlash(rel)
		src := filepath.Join(root, nativeRel)
		dst := src
		if output != "" {
			dst = filepath.Join(output, nativeRel)
		}
		jobs = append(jobs, FileJob{Source: src, Dest: dst})
	}
	return jobs
}
