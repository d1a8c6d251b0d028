// Package mapper converts Belga news objects into Prezly coverage
// create payloads, one mapping branch per medium type group.
package mapper

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"coverage_migrator/internal/attachment"
	"coverage_migrator/internal/domain"
)

// Mapper is pure aside from the resolver's upload side effect.
type Mapper struct {
	resolver *attachment.Resolver
	logger   *slog.Logger
}

func New(resolver *attachment.Resolver, logger *slog.Logger) *Mapper {
	return &Mapper{
		resolver: resolver,
		logger:   logger,
	}
}

// Map converts one news object into a coverage create payload. A nil
// payload with a nil error means the record's category is unsupported
// and the record is dropped.
func (m *Mapper) Map(ctx context.Context, object *domain.NewsObject, raw []byte) (*domain.CoverageCreateRequest, error) {
	switch object.MediumTypeGroup {
	case domain.MediumTypeGroupPrint:
		return m.mapPrint(ctx, object, raw)
	case domain.MediumTypeGroupSocial:
		return m.mapSocial(object, raw)
	case domain.MediumTypeGroupOnline:
		return m.mapOnline(object, raw)
	case domain.MediumTypeGroupMultimedia:
		return m.mapMultimedia(object, raw)
	default:
		return nil, nil
	}
}

// mapPrint always yields a payload: organisation and note text are
// derivable without attachments. When a page scan uploads successfully
// the payload additionally carries a link preview for the source page.
func (m *Mapper) mapPrint(ctx context.Context, object *domain.NewsObject, raw []byte) (*domain.CoverageCreateRequest, error) {
	coverage, err := m.base(object, raw)
	if err != nil {
		return nil, err
	}

	coverage.Headline = object.Title

	if author := firstAuthor(object); author != "" {
		coverage.Author = &author
	}

	file, best := m.resolver.UploadBest(ctx, object, domain.AttachmentTypePage, attachment.PagePreference)
	if file != nil {
		encoded, err := file.PrezlyFileJSON()
		if err != nil {
			return nil, fmt.Errorf("encode attachment descriptor: %w", err)
		}
		coverage.Attachment = &encoded

		oembed := &domain.CoverageOembed{
			Type:  "link",
			Title: object.Title,
			URL:   best.Href,
		}
		if object.Lead != "" {
			oembed.Description = object.Lead
		}
		if coverage.Organisation != nil {
			oembed.ProviderName = *coverage.Organisation
		}
		coverage.AttachmentOembed = oembed
	}

	return coverage, nil
}

// mapSocial maps to none without a usable link; a social post is only
// its URL.
func (m *Mapper) mapSocial(object *domain.NewsObject, raw []byte) (*domain.CoverageCreateRequest, error) {
	best := attachment.SelectBest(object.Attachments, domain.AttachmentTypeTwitter, attachment.TwitterPreference)
	if best == nil {
		return nil, nil
	}

	coverage, err := m.base(object, raw)
	if err != nil {
		return nil, err
	}

	coverage.URL = &best.Href

	return coverage, nil
}

func (m *Mapper) mapOnline(object *domain.NewsObject, raw []byte) (*domain.CoverageCreateRequest, error) {
	coverage, err := m.base(object, raw)
	if err != nil {
		return nil, err
	}

	if best := attachment.SelectBest(object.Attachments, domain.AttachmentTypeWebpage, attachment.WebpagePreference); best != nil {
		coverage.URL = &best.Href
	}

	return coverage, nil
}

func (m *Mapper) mapMultimedia(object *domain.NewsObject, raw []byte) (*domain.CoverageCreateRequest, error) {
	coverage, err := m.base(object, raw)
	if err != nil {
		return nil, err
	}

	if best := attachment.SelectBest(object.Attachments, domain.AttachmentTypeRtv, attachment.RtvPreference); best != nil {
		coverage.URL = &best.Href
	}

	return coverage, nil
}

func (m *Mapper) base(object *domain.NewsObject, raw []byte) (*domain.CoverageCreateRequest, error) {
	publishedAt, err := canonicalTimestamp(object.PublishDate)
	if err != nil {
		return nil, fmt.Errorf("parse publish date of %s: %w", object.UUID, err)
	}

	coverage := &domain.CoverageCreateRequest{
		ExternalReferenceID:    object.UUID,
		PublishedAt:            publishedAt,
		NoteContent:            &domain.NoteContent{Text: titleCase(object.MediumType)},
		OriginalMetadataSource: json.RawMessage(raw),
	}

	if organisation := organisationName(object); organisation != "" {
		coverage.Organisation = &organisation
	}

	return coverage, nil
}

func organisationName(object *domain.NewsObject) string {
	if object.Source != nil {
		if source := strings.TrimSpace(*object.Source); source != "" {
			return source
		}
	}
	return strings.TrimSpace(object.SubSource)
}

func firstAuthor(object *domain.NewsObject) string {
	if len(object.Authors) == 0 {
		return ""
	}
	return strings.TrimSpace(object.Authors[0])
}

var publishDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// canonicalTimestamp renders the upstream publish date as RFC3339 UTC.
func canonicalTimestamp(value string) (string, error) {
	for _, layout := range publishDateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed.UTC().Format(time.RFC3339), nil
		}
	}
	return "", fmt.Errorf("unrecognized timestamp %q", value)
}

// titleCase renders an upstream medium type constant like
// "PRINT_MAGAZINE" as "Print Magazine".
func titleCase(value string) string {
	words := strings.FieldsFunc(strings.ToLower(value), func(r rune) bool {
		return r == ' ' || r == '_' || r == '-'
	})
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
