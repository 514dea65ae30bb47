package contentunderstanding

import "time"

// Analyzer extracts content and fields from documents, audio and video.
// Custom analyzers are created from a JSON template and derive from one of
// the prebuilt base analyzers.
type Analyzer struct {
	AnalyzerID     string            `json:"analyzerId,omitempty"`
	Description    string            `json:"description,omitempty"`
	BaseAnalyzerID string            `json:"baseAnalyzerId,omitempty"`
	Mode           string            `json:"mode,omitempty"`
	Config         *AnalyzerConfig   `json:"config,omitempty"`
	FieldSchema    *FieldSchema      `json:"fieldSchema,omitempty"`
	TrainingData   *DataSource       `json:"trainingData,omitempty"`
	Tags           map[string]string `json:"tags,omitempty"`
	Status         string            `json:"status,omitempty"`
	CreatedAt      *time.Time        `json:"createdAt,omitempty"`
	LastModifiedAt *time.Time        `json:"lastModifiedAt,omitempty"`
	Warnings       []*ErrorDetail    `json:"warnings,omitempty"`
}

type AnalyzerConfig struct {
	ReturnDetails           *bool    `json:"returnDetails,omitempty"`
	EnableOcr               *bool    `json:"enableOcr,omitempty"`
	EnableLayout            *bool    `json:"enableLayout,omitempty"`
	EnableFormula           *bool    `json:"enableFormula,omitempty"`
	EnableFace              *bool    `json:"enableFace,omitempty"`
	DisableContentFiltering *bool    `json:"disableContentFiltering,omitempty"`
	SegmentationMode        string   `json:"segmentationMode,omitempty"`
	TableFormat             string   `json:"tableFormat,omitempty"`
	Locales                 []string `json:"locales,omitempty"`
}

// FieldSchema declares the fields an analyzer extracts or generates.
type FieldSchema struct {
	Name        string                      `json:"name,omitempty"`
	Description string                      `json:"description,omitempty"`
	Fields      map[string]*FieldDefinition `json:"fields,omitempty"`
	Definitions map[string]*FieldDefinition `json:"definitions,omitempty"`
}

type FieldDefinition struct {
	Type        string                      `json:"type,omitempty"`
	Method      string                      `json:"method,omitempty"`
	Description string                      `json:"description,omitempty"`
	Items       *FieldDefinition            `json:"items,omitempty"`
	Properties  map[string]*FieldDefinition `json:"properties,omitempty"`
	Enum        []string                    `json:"enum,omitempty"`
	Ref         string                      `json:"$ref,omitempty"`
}

// DataSource points an analyzer at labeled training documents or reference
// documents in a blob container.
type DataSource struct {
	Kind         string `json:"kind,omitempty"`
	ContainerURL string `json:"containerUrl,omitempty"`
	Prefix       string `json:"prefix,omitempty"`
	FileListPath string `json:"fileListPath,omitempty"`
}

type AnalyzerListResponse struct {
	Value    []*Analyzer `json:"value"`
	NextLink string      `json:"nextLink,omitempty"`
}

// Classifier routes document sections into categories, optionally forwarding
// each category to an analyzer.
type Classifier struct {
	ClassifierID   string                         `json:"classifierId,omitempty"`
	Description    string                         `json:"description,omitempty"`
	SplitMode      string                         `json:"splitMode,omitempty"`
	Categories     map[string]*ClassifierCategory `json:"categories,omitempty"`
	Tags           map[string]string              `json:"tags,omitempty"`
	Status         string                         `json:"status,omitempty"`
	CreatedAt      *time.Time                     `json:"createdAt,omitempty"`
	LastModifiedAt *time.Time                     `json:"lastModifiedAt,omitempty"`
}

type ClassifierCategory struct {
	Description string `json:"description,omitempty"`
	AnalyzerID  string `json:"analyzerId,omitempty"`
}

type ClassifierListResponse struct {
	Value    []*Classifier `json:"value"`
	NextLink string        `json:"nextLink,omitempty"`
}

// AnalyzeResult is the payload embedded in a succeeded analyze operation.
type AnalyzeResult struct {
	AnalyzerID string          `json:"analyzerId,omitempty"`
	APIVersion string          `json:"apiVersion,omitempty"`
	CreatedAt  *time.Time      `json:"createdAt,omitempty"`
	Warnings   []*ErrorDetail  `json:"warnings,omitempty"`
	Contents   []*MediaContent `json:"contents,omitempty"`

	// ResultID is the id of the analyze operation that produced this result,
	// used to fetch result files such as keyframe images.
	ResultID string `json:"-"`
}

func (r *AnalyzeResult) setOperationID(id string) {
	r.ResultID = id
}

// ClassifyResult is the payload embedded in a succeeded classify operation.
// Content sections carry the assigned category and, when the category routes
// to an analyzer, that analyzer's fields.
type ClassifyResult struct {
	ClassifierID string          `json:"classifierId,omitempty"`
	APIVersion   string          `json:"apiVersion,omitempty"`
	CreatedAt    *time.Time      `json:"createdAt,omitempty"`
	Warnings     []*ErrorDetail  `json:"warnings,omitempty"`
	Contents     []*MediaContent `json:"contents,omitempty"`
}

// MediaContent is one unit of analyzed content: a document span, an audio
// segment or a video segment. Only the fields for the matching kind are set.
type MediaContent struct {
	Kind     string                   `json:"kind,omitempty"`
	MimeType string                   `json:"mimeType,omitempty"`
	Category string                   `json:"category,omitempty"`
	Markdown string                   `json:"markdown,omitempty"`
	Fields   map[string]*ContentField `json:"fields,omitempty"`

	// Document content
	StartPageNumber int `json:"startPageNumber,omitempty"`
	EndPageNumber   int `json:"endPageNumber,omitempty"`

	// Audio/video content
	StartTimeMs       int64               `json:"startTimeMs,omitempty"`
	EndTimeMs         int64               `json:"endTimeMs,omitempty"`
	TranscriptPhrases []*TranscriptPhrase `json:"transcriptPhrases,omitempty"`

	// Video content
	Width           int     `json:"width,omitempty"`
	Height          int     `json:"height,omitempty"`
	KeyFrameTimesMs []int64 `json:"keyFrameTimesMs,omitempty"`
	SegmentID       string  `json:"segmentId,omitempty"`
}

// ContentField is a single extracted or generated field value. Exactly one of
// the Value* members is set, per Type.
type ContentField struct {
	Type         string                   `json:"type,omitempty"`
	ValueString  string                   `json:"valueString,omitempty"`
	ValueNumber  *float64                 `json:"valueNumber,omitempty"`
	ValueInteger *int64                   `json:"valueInteger,omitempty"`
	ValueBoolean *bool                    `json:"valueBoolean,omitempty"`
	ValueDate    string                   `json:"valueDate,omitempty"`
	ValueTime    string                   `json:"valueTime,omitempty"`
	ValueArray   []*ContentField          `json:"valueArray,omitempty"`
	ValueObject  map[string]*ContentField `json:"valueObject,omitempty"`
	Confidence   *float64                 `json:"confidence,omitempty"`
	Source       string                   `json:"source,omitempty"`
	Spans        []*ContentSpan           `json:"spans,omitempty"`
}

type ContentSpan struct {
	Offset int `json:"offset"`
	Length int `json:"length"`
}

type TranscriptPhrase struct {
	Speaker     string            `json:"speaker,omitempty"`
	StartTimeMs int64             `json:"startTimeMs"`
	EndTimeMs   int64             `json:"endTimeMs"`
	Text        string            `json:"text"`
	Confidence  *float64          `json:"confidence,omitempty"`
	Locale      string            `json:"locale,omitempty"`
	Words       []*TranscriptWord `json:"words,omitempty"`
}

type TranscriptWord struct {
	StartTimeMs int64  `json:"startTimeMs"`
	EndTimeMs   int64  `json:"endTimeMs"`
	Text        string `json:"text"`
}

type ErrorDetail struct {
	Code    string         `json:"code,omitempty"`
	Message string         `json:"message,omitempty"`
	Target  string         `json:"target,omitempty"`
	Details []*ErrorDetail `json:"details,omitempty"`
}

// AnalyzeInput identifies the content to analyze or classify: either a
// publicly reachable URL or raw bytes.
type AnalyzeInput struct {
	// URL of the content. Mutually exclusive with Data.
	URL string

	// Raw content bytes, sent as the request body.
	Data []byte

	// MIME type for Data. Defaults to application/octet-stream.
	ContentType string
}
