// Package classify maps an uploaded file's content type to a media category.
package classify

import (
	"mime"
	"path/filepath"
	"strings"
)

// Category and media type labels exposed to clients.
const (
	CategoryImages = "Images"
	CategoryVideos = "Videos"

	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

// Result is the classification of a single upload.
type Result struct {
	Tags        []string `json:"tags"`
	Category    string   `json:"category"`
	MediaType   string   `json:"media_type"`
	ContentType string   `json:"content_type"`
}

// extensionTypes covers the conventional image and video extensions that are
// missing from Go's built-in table, so inference does not depend on the
// host's /etc/mime.types.
var extensionTypes = map[string]string{
	".bmp":  "image/bmp",
	".heic": "image/heic",
	".ico":  "image/vnd.microsoft.icon",
	".tif":  "image/tiff",
	".tiff": "image/tiff",

	".3gp":  "video/3gpp",
	".avi":  "video/x-msvideo",
	".flv":  "video/x-flv",
	".m4v":  "video/x-m4v",
	".mkv":  "video/x-matroska",
	".mov":  "video/quicktime",
	".mp4":  "video/mp4",
	".mpeg": "video/mpeg",
	".mpg":  "video/mpeg",
	".webm": "video/webm",
	".wmv":  "video/x-ms-wmv",
}

func init() {
	for ext, typ := range extensionTypes {
		// AddExtensionType only fails on extensions without a leading dot.
		_ = mime.AddExtensionType(ext, typ)
	}
}

// Resolve returns the content type used for classification: the declared
// type when non-empty, otherwise a lookup by filename extension, otherwise
// the empty string.
func Resolve(declared, filename string) string {
	if declared != "" {
		return declared
	}
	return mime.TypeByExtension(filepath.Ext(filename))
}

// Classify resolves the effective content type for an upload and maps it to
// a category. Uploads that resolve to neither image/* nor video/* land in
// Images; that fallback is deliberate, not an error.
func Classify(declared, filename string) Result {
	contentType := Resolve(declared, filename)

	switch {
	case strings.HasPrefix(contentType, "image/"):
		return Result{
			Tags:        []string{"images", "media", "image"},
			Category:    CategoryImages,
			MediaType:   MediaTypeImage,
			ContentType: contentType,
		}
	case strings.HasPrefix(contentType, "video/"):
		return Result{
			Tags:        []string{"videos", "media", "video"},
			Category:    CategoryVideos,
			MediaType:   MediaTypeVideo,
			ContentType: contentType,
		}
	default:
		return Result{
			Tags:        []string{"images", "media", "unknown"},
			Category:    CategoryImages,
			MediaType:   MediaTypeImage,
			ContentType: contentType,
		}
	}
}
