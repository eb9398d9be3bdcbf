package capture

import (
	"fmt"
	"time"
)

const (
	ScreenshotPrefix = "mockup"
	VideoPrefix      = "mockup-video"
	VideoExt         = "webm"
)

// FileName returns the download name stamped with the unix time in
// milliseconds, e.g. mockup-1700000000000.png.
func FileName(prefix string, t time.Time, ext string) string {
	return fmt.Sprintf("%s-%d.%s", prefix, t.UnixMilli(), ext)
}
