// Package attachment picks the single best downloadable reference out of
// a news object's attachment list and ships it to durable storage.
package attachment

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"coverage_migrator/internal/domain"
	"coverage_migrator/internal/retry"
)

// Per-type preference orders. Page scans degrade from the original print
// evidence down to crops; Rtv clips prefer the player rendition over raw
// streams. Webpage and Twitter only ever rank ORIGINAL.
var (
	PagePreference    = []domain.Representation{domain.RepresentationOriginal, domain.RepresentationDetail, domain.RepresentationLarge, domain.RepresentationSmall, domain.RepresentationCroptop}
	RtvPreference     = []domain.Representation{domain.RepresentationMDPlayer, domain.RepresentationStream, domain.RepresentationSmall, domain.RepresentationMedium}
	WebpagePreference = []domain.Representation{domain.RepresentationOriginal}
	TwitterPreference = []domain.Representation{domain.RepresentationOriginal}
)

// SelectBest returns the reference of the given attachment type whose
// representation ranks first in preference order, or nil when no usable
// reference exists. Representations absent from the order all rank
// equally last, keeping their input order.
func SelectBest(attachments []domain.Attachment, typ domain.AttachmentType, preference []domain.Representation) *domain.AttachmentReference {
	var candidates []domain.AttachmentReference
	for _, attachment := range attachments {
		if attachment.Type != typ {
			continue
		}
		for _, ref := range attachment.References {
			if ref.Href == "" {
				continue
			}
			candidates = append(candidates, ref)
		}
	}

	if len(candidates) == 0 {
		return nil
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return rank(preference, candidates[i].Representation) < rank(preference, candidates[j].Representation)
	})

	return &candidates[0]
}

// rank is a total order over representations: the index in the
// preference list, with unranked entries after every ranked one.
func rank(preference []domain.Representation, representation domain.Representation) int {
	for i, p := range preference {
		if p == representation {
			return i
		}
	}
	return len(preference)
}

// RepairMimeType corrects the unreliable declared mime type of a
// reference. Hrefs carrying a ":png:" path segment are png no matter
// what the metadata claims.
func RepairMimeType(ref *domain.AttachmentReference, logger *slog.Logger) string {
	if strings.Contains(ref.Href, ":png:") {
		return "image/png"
	}

	switch strings.ToLower(ref.MimeType) {
	case "pdf":
		return "application/pdf"
	case "jpg", "image_jpg":
		return "image/jpeg"
	case "png":
		return "image/png"
	case "m3u", "m3u8":
		return "audio/x-mpequrl"
	default:
		logger.Warn("unrecognized mime type", "mime_type", ref.MimeType, "href", ref.Href)
		return ref.MimeType
	}
}

// ExtensionForMimeType returns the filename extension for a repaired
// mime type, or "" when none is known.
func ExtensionForMimeType(mimeType string) string {
	switch mimeType {
	case "application/pdf":
		return "pdf"
	case "image/jpeg":
		return "jpg"
	case "image/png":
		return "png"
	case "audio/x-mpequrl":
		return "m3u8"
	default:
		return ""
	}
}

// Uploader stores the binary at a URI and returns a durable descriptor.
type Uploader interface {
	UploadFromURL(ctx context.Context, sourceURL, filename string) (*domain.UploadedFile, error)
}

// Resolver combines best-reference selection with the upload side
// effect.
type Resolver struct {
	uploader    Uploader
	maxAttempts int
	logger      *slog.Logger
}

func NewResolver(uploader Uploader, maxAttempts int, logger *slog.Logger) *Resolver {
	return &Resolver{
		uploader:    uploader,
		maxAttempts: maxAttempts,
		logger:      logger,
	}
}

// UploadBest selects the best reference of the given type and uploads
// its binary. An upload failure is not an error: the attachment is
// dropped with a warning and (nil, nil) is returned so the record's sync
// continues without it.
func (r *Resolver) UploadBest(ctx context.Context, object *domain.NewsObject, typ domain.AttachmentType, preference []domain.Representation) (*domain.UploadedFile, *domain.AttachmentReference) {
	best := SelectBest(object.Attachments, typ, preference)
	if best == nil {
		return nil, nil
	}

	mimeType := RepairMimeType(best, r.logger)
	filename := uploadFilename(object, mimeType)

	file, err := retry.DoValue(ctx, r.logger, r.maxAttempts, func(ctx context.Context) (*domain.UploadedFile, error) {
		return r.uploader.UploadFromURL(ctx, best.Href, filename)
	})
	if err != nil {
		r.logger.Warn("best attachment failed to download",
			"news_object", object.UUID,
			"href", best.Href,
			"error", err,
		)
		return nil, nil
	}

	file.MimeType = mimeType
	file.Filename = filename

	return file, best
}

func uploadFilename(object *domain.NewsObject, mimeType string) string {
	name := fmt.Sprintf("%s - %s", object.SubSource, publishTime(object).Format(time.RFC1123))
	if ext := ExtensionForMimeType(mimeType); ext != "" {
		name += "." + ext
	}
	return name
}

func publishTime(object *domain.NewsObject) time.Time {
	if parsed, err := time.Parse(time.RFC3339, object.PublishDate); err == nil {
		return parsed
	}
	return time.Time{}
}
