package mapper

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coverage_migrator/internal/attachment"
	"coverage_migrator/internal/domain"
	"coverage_migrator/testdata/utils"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

type fakeUploader struct {
	err   error
	calls int
}

func (f *fakeUploader) UploadFromURL(ctx context.Context, sourceURL, filename string) (*domain.UploadedFile, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &domain.UploadedFile{UUID: "upload-1", Size: 2048, IsImage: true}, nil
}

func newMapper(uploads *fakeUploader) *Mapper {
	resolver := attachment.NewResolver(uploads, 2, testLogger())
	return New(resolver, testLogger())
}

func rawFor(t *testing.T, object *domain.NewsObject) []byte {
	t.Helper()
	raw, err := json.Marshal(object)
	require.NoError(t, err)
	return raw
}

func TestMap_PrintWithoutAttachments(t *testing.T) {
	object := &domain.NewsObject{
		UUID:            "0a1b2c3d",
		Title:           "Markets rally",
		Body:            utils.Ptr("Hello"),
		PublishDate:     "2021-03-05T08:00:00+01:00",
		Source:          utils.Ptr("Reuters"),
		SubSource:       "Reuters Brussels",
		MediumType:      "MAGAZINE",
		MediumTypeGroup: domain.MediumTypeGroupPrint,
	}
	raw := rawFor(t, object)

	coverage, err := newMapper(&fakeUploader{}).Map(context.Background(), object, raw)

	require.NoError(t, err)
	require.NotNil(t, coverage)
	assert.Equal(t, "0a1b2c3d", coverage.ExternalReferenceID)
	assert.Equal(t, "Markets rally", coverage.Headline)
	require.NotNil(t, coverage.Organisation)
	assert.Equal(t, "Reuters", *coverage.Organisation)
	require.NotNil(t, coverage.NoteContent)
	assert.Equal(t, "Magazine", coverage.NoteContent.Text)
	assert.Equal(t, "2021-03-05T07:00:00Z", coverage.PublishedAt)
	assert.Nil(t, coverage.Attachment)
	assert.Nil(t, coverage.AttachmentOembed)
	assert.JSONEq(t, string(raw), string(coverage.OriginalMetadataSource))
}

func TestMap_PrintFallsBackToSubSource(t *testing.T) {
	object := &domain.NewsObject{
		UUID:            "print-2",
		Title:           "Local story",
		PublishDate:     "2021-04-01T10:00:00Z",
		Source:          utils.Ptr("   "),
		SubSource:       "  Gazet van Antwerpen  ",
		MediumType:      "NEWSPAPER",
		MediumTypeGroup: domain.MediumTypeGroupPrint,
	}

	coverage, err := newMapper(&fakeUploader{}).Map(context.Background(), object, rawFor(t, object))

	require.NoError(t, err)
	require.NotNil(t, coverage)
	require.NotNil(t, coverage.Organisation)
	assert.Equal(t, "Gazet van Antwerpen", *coverage.Organisation)
}

func TestMap_PrintWithPageAttachment(t *testing.T) {
	object := &domain.NewsObject{
		UUID:            "print-3",
		Title:           "Front page news",
		Lead:            "A big story",
		PublishDate:     "2021-04-01T10:00:00Z",
		Source:          utils.Ptr("De Morgen"),
		MediumType:      "NEWSPAPER",
		MediumTypeGroup: domain.MediumTypeGroupPrint,
		Authors:         []string{"Jan Peeters", "Ignored Second"},
		Attachments: []domain.Attachment{
			{
				Type: domain.AttachmentTypePage,
				References: []domain.AttachmentReference{
					{MimeType: "jpg", Representation: domain.RepresentationSmall, Href: "https://cdn.example/small.jpg"},
					{MimeType: "pdf", Representation: domain.RepresentationOriginal, Href: "https://cdn.example/page.pdf"},
				},
			},
		},
	}

	uploads := &fakeUploader{}
	coverage, err := newMapper(uploads).Map(context.Background(), object, rawFor(t, object))

	require.NoError(t, err)
	require.NotNil(t, coverage)
	require.NotNil(t, coverage.Author)
	assert.Equal(t, "Jan Peeters", *coverage.Author)
	assert.Equal(t, 1, uploads.calls)

	require.NotNil(t, coverage.Attachment)
	var file map[string]any
	require.NoError(t, json.Unmarshal([]byte(*coverage.Attachment), &file))
	assert.Equal(t, "upload-1", file["uuid"])
	assert.Equal(t, "application/pdf", file["mime_type"])

	require.NotNil(t, coverage.AttachmentOembed)
	assert.Equal(t, "https://cdn.example/page.pdf", coverage.AttachmentOembed.URL)
	assert.Equal(t, "Front page news", coverage.AttachmentOembed.Title)
	assert.Equal(t, "A big story", coverage.AttachmentOembed.Description)
	assert.Equal(t, "De Morgen", coverage.AttachmentOembed.ProviderName)
}

func TestMap_PrintStillMapsWhenUploadFails(t *testing.T) {
	object := &domain.NewsObject{
		UUID:            "print-4",
		Title:           "Story without evidence",
		PublishDate:     "2021-04-01T10:00:00Z",
		Source:          utils.Ptr("De Tijd"),
		MediumType:      "NEWSPAPER",
		MediumTypeGroup: domain.MediumTypeGroupPrint,
		Attachments: []domain.Attachment{
			{
				Type: domain.AttachmentTypePage,
				References: []domain.AttachmentReference{
					{MimeType: "pdf", Representation: domain.RepresentationOriginal, Href: "https://cdn.example/missing.pdf"},
				},
			},
		},
	}

	coverage, err := newMapper(&fakeUploader{err: errors.New("timeout")}).Map(context.Background(), object, rawFor(t, object))

	require.NoError(t, err)
	require.NotNil(t, coverage)
	assert.Nil(t, coverage.Attachment)
	assert.Nil(t, coverage.AttachmentOembed)
}

func TestMap_SocialWithTwitterReference(t *testing.T) {
	object := &domain.NewsObject{
		UUID:            "social-1",
		Title:           "A tweet",
		PublishDate:     "2021-05-02T12:00:00Z",
		MediumType:      "TWITTER",
		MediumTypeGroup: domain.MediumTypeGroupSocial,
		Attachments: []domain.Attachment{
			{
				Type: domain.AttachmentTypeTwitter,
				References: []domain.AttachmentReference{
					{Representation: domain.RepresentationOriginal, Href: "https://x.example/1"},
				},
			},
		},
	}

	coverage, err := newMapper(&fakeUploader{}).Map(context.Background(), object, rawFor(t, object))

	require.NoError(t, err)
	require.NotNil(t, coverage)
	require.NotNil(t, coverage.URL)
	assert.Equal(t, "https://x.example/1", *coverage.URL)
}

func TestMap_SocialWithoutUsableLinkMapsToNone(t *testing.T) {
	object := &domain.NewsObject{
		UUID:            "social-2",
		Title:           "A tweet without link",
		PublishDate:     "2021-05-02T12:00:00Z",
		MediumType:      "TWITTER",
		MediumTypeGroup: domain.MediumTypeGroupSocial,
	}

	coverage, err := newMapper(&fakeUploader{}).Map(context.Background(), object, rawFor(t, object))

	require.NoError(t, err)
	assert.Nil(t, coverage)
}

func TestMap_OnlineURLIsOptional(t *testing.T) {
	withURL := &domain.NewsObject{
		UUID:            "online-1",
		Title:           "Web article",
		PublishDate:     "2021-06-01T09:00:00Z",
		SubSource:       "vrt.be",
		MediumType:      "WEBSITE",
		MediumTypeGroup: domain.MediumTypeGroupOnline,
		Attachments: []domain.Attachment{
			{
				Type: domain.AttachmentTypeWebpage,
				References: []domain.AttachmentReference{
					{MimeType: "NOT_SPECIFIED", Representation: domain.RepresentationOriginal, Href: "https://vrt.example/article"},
				},
			},
		},
	}

	coverage, err := newMapper(&fakeUploader{}).Map(context.Background(), withURL, rawFor(t, withURL))
	require.NoError(t, err)
	require.NotNil(t, coverage)
	require.NotNil(t, coverage.URL)
	assert.Equal(t, "https://vrt.example/article", *coverage.URL)

	withoutURL := &domain.NewsObject{
		UUID:            "online-2",
		Title:           "Web article without link",
		PublishDate:     "2021-06-01T09:00:00Z",
		SubSource:       "vrt.be",
		MediumType:      "WEBSITE",
		MediumTypeGroup: domain.MediumTypeGroupOnline,
	}

	coverage, err = newMapper(&fakeUploader{}).Map(context.Background(), withoutURL, rawFor(t, withoutURL))
	require.NoError(t, err)
	require.NotNil(t, coverage)
	assert.Nil(t, coverage.URL)
}

func TestMap_MultimediaPrefersPlayerRendition(t *testing.T) {
	object := &domain.NewsObject{
		UUID:            "rtv-1",
		Title:           "Evening news segment",
		PublishDate:     "2021-06-05T19:00:00Z",
		SubSource:       "VTM",
		MediumType:      "TELEVISION",
		MediumTypeGroup: domain.MediumTypeGroupMultimedia,
		Attachments: []domain.Attachment{
			{
				Type: domain.AttachmentTypeRtv,
				References: []domain.AttachmentReference{
					{MimeType: "m3u8", Representation: domain.RepresentationStream, Href: "https://media.example/stream.m3u8"},
					{MimeType: "NOT_SPECIFIED", Representation: domain.RepresentationMDPlayer, Href: "https://media.example/player"},
				},
			},
		},
	}

	coverage, err := newMapper(&fakeUploader{}).Map(context.Background(), object, rawFor(t, object))

	require.NoError(t, err)
	require.NotNil(t, coverage)
	require.NotNil(t, coverage.URL)
	assert.Equal(t, "https://media.example/player", *coverage.URL)
	assert.Equal(t, "Television", coverage.NoteContent.Text)
}

func TestMap_UnknownCategoryMapsToNone(t *testing.T) {
	object := &domain.NewsObject{
		UUID:            "odd-1",
		Title:           "Something new",
		PublishDate:     "2021-06-05T19:00:00Z",
		MediumTypeGroup: "PODCAST",
	}

	coverage, err := newMapper(&fakeUploader{}).Map(context.Background(), object, rawFor(t, object))

	require.NoError(t, err)
	assert.Nil(t, coverage)
}

func TestMap_UnparseablePublishDateIsAnError(t *testing.T) {
	object := &domain.NewsObject{
		UUID:            "bad-date",
		Title:           "Bad date",
		PublishDate:     "yesterday",
		MediumTypeGroup: domain.MediumTypeGroupPrint,
	}

	_, err := newMapper(&fakeUploader{}).Map(context.Background(), object, rawFor(t, object))
	assert.Error(t, err)
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Magazine", titleCase("MAGAZINE"))
	assert.Equal(t, "Print Magazine", titleCase("PRINT_MAGAZINE"))
	assert.Equal(t, "Web Site", titleCase("web site"))
}

func TestCanonicalTimestamp(t *testing.T) {
	value, err := canonicalTimestamp("2021-03-05T08:00:00+01:00")
	require.NoError(t, err)
	assert.Equal(t, "2021-03-05T07:00:00Z", value)

	value, err = canonicalTimestamp("2021-03-05")
	require.NoError(t, err)
	assert.Equal(t, "2021-03-05T00:00:00Z", value)

	_, err = canonicalTimestamp("not a date")
	assert.Error(t, err)
}
