package facades

import (
	"errors"
	"path"
	"strconv"
	"strings"
	"time"
)

// ErrUploadFailed is returned when the media host rejects an image or cannot be reached.
var ErrUploadFailed = errors.New("image upload failed")

// objectName builds a unique object name that keeps the original extension.
func objectName(prefix, filename string) string {
	base := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	if base == "." || base == "/" {
		base = "image"
	}
	return prefix + strconv.FormatInt(time.Now().UnixNano(), 10) + "_" + base
}
