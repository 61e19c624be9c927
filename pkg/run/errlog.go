// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package run

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gitlab.com/tozd/go/errors"
)

// ErrorRecord captures one failed file job.
type ErrorRecord struct {
	Path    string
	Message string
	Time    time.Time
}

const logStampFormat = "20060102_150405"

// WriteErrorLog flushes the collected records to a timestamped log file under
// dir and returns the path of the file it wrote.
func WriteErrorLog(dir string, records []ErrorRecord) (string, error) {
	now := time.Now()
	name := fmt.Sprintf("capedit_log_%s.txt", now.Format(logStampFormat))
	path := filepath.Join(dir, name)

	var b strings.Builder
	fmt.Fprintf(&b, "capedit error log - %s\n", now.Format(time.RFC3339))
	b.WriteString(strings.Repeat("=", 50) + "\n\n")
	for _, rec := range records {
		fmt.Fprintf(&b, "[%s] error processing %s: %s\n",
			rec.Time.Format(time.RFC3339), rec.Path, rec.Message)
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", errors.Errorf("writing error log: %w", err)
	}

	return path, nil
}
