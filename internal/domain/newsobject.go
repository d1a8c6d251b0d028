package domain

// MediumTypeGroup is the coarse category Belga assigns to a news object.
// The mapper branches on it; anything outside the known set is unsupported.
type MediumTypeGroup string

const (
	MediumTypeGroupPrint      MediumTypeGroup = "PRINT"
	MediumTypeGroupSocial     MediumTypeGroup = "SOCIAL"
	MediumTypeGroupOnline     MediumTypeGroup = "ONLINE"
	MediumTypeGroupMultimedia MediumTypeGroup = "MULTIMEDIA"
)

// AttachmentType determines which mapping branch may use an attachment.
type AttachmentType string

const (
	AttachmentTypePage    AttachmentType = "Page"
	AttachmentTypeWebpage AttachmentType = "Webpage"
	AttachmentTypeTwitter AttachmentType = "Twitter"
	AttachmentTypeRtv     AttachmentType = "Rtv"
)

// Representation is the quality/format tag on an attachment reference.
type Representation string

const (
	RepresentationOriginal Representation = "ORIGINAL"
	RepresentationDetail   Representation = "DETAIL"
	RepresentationLarge    Representation = "LARGE"
	RepresentationSmall    Representation = "SMALL"
	RepresentationCroptop  Representation = "CROPTOP"
	RepresentationMDPlayer Representation = "MD_PLAYER"
	RepresentationStream   Representation = "STREAM"
	RepresentationMedium   Representation = "MEDIUM"
)

// NewsObject is one record from the Belga feed. The paginated listing
// returns the same shape with most fields empty; the full detail is
// re-fetched per record before mapping.
type NewsObject struct {
	UUID            string          `json:"uuid"`
	Title           string          `json:"title"`
	Lead            string          `json:"lead"`
	Body            *string         `json:"body"`
	CreateDate      *string         `json:"createDate"`
	PublishDate     string          `json:"publishDate"`
	Source          *string         `json:"source"`
	SubSource       string          `json:"subSource"`
	MediumType      string          `json:"mediumType"`
	MediumTypeGroup MediumTypeGroup `json:"mediumTypeGroup"`
	Language        string          `json:"language"`
	Page            int             `json:"page"`
	WordCount       int             `json:"wordCount"`
	Authors         []string        `json:"authors"`
	Attachments     []Attachment    `json:"attachments"`
}

type Attachment struct {
	Title      *string               `json:"title"`
	Type       AttachmentType        `json:"type"`
	Date       string                `json:"date"`
	From       int                   `json:"from"`
	To         int                   `json:"to"`
	Duration   int                   `json:"duration"`
	References []AttachmentReference `json:"references"`
}

// AttachmentReference points at one downloadable rendition of an
// attachment. MimeType as declared upstream is unreliable; see the
// attachment package for the repair rules.
type AttachmentReference struct {
	MimeType       string         `json:"mimeType"`
	Representation Representation `json:"representation"`
	Href           string         `json:"href"`
}

// NewsObjectPage is one page of the board listing together with the
// pagination envelope the feed wraps it in.
type NewsObjectPage struct {
	Objects []NewsObject
	Next    string
	Self    string
	Total   int
}
