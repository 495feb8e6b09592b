package storage

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var spaceRun = regexp.MustCompile(`\s+`)

// ObjectKey builds the storage key for an uploaded file:
// folder/<unix-ms>-<cleaned original name>.
func ObjectKey(folder, originalName string) string {
	clean := strings.ToLower(spaceRun.ReplaceAllString(originalName, "-"))
	return fmt.Sprintf("%s/%d-%s", folder, time.Now().UnixMilli(), clean)
}
