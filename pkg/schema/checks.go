package schema

// Canonical check names. Anything outside this list flows into the unknown
// checks sink during constraint extraction instead of failing.
const (
	CheckMinLength   = "min_length"
	CheckMaxLength   = "max_length"
	CheckRegex       = "regex"
	CheckFormat      = "format"
	CheckGreaterThan = "greater_than"
	CheckLessThan    = "less_than"
	CheckInt         = "int"
	CheckMultipleOf  = "multiple_of"
)

// Check is a single validation rule attached to a node. Number carries the
// numeric parameter for bound checks, Text the pattern source or format name.
type Check struct {
	Name   string
	Number float64
	Text   string
}

// Recognized format names. Formats outside this list are ignored by the
// constraint extractor and land in the unknown checks sink.
const (
	FormatEmail    = "email"
	FormatURL      = "url"
	FormatUUID     = "uuid"
	FormatULID     = "ulid"
	FormatIP       = "ip"
	FormatDatetime = "datetime"
	FormatTime     = "time"
	FormatBase64   = "base64"
)

var knownFormats = map[string]struct{}{
	FormatEmail:    {},
	FormatURL:      {},
	FormatUUID:     {},
	FormatULID:     {},
	FormatIP:       {},
	FormatDatetime: {},
	FormatTime:     {},
	FormatBase64:   {},
}

// IsKnownFormat reports whether name belongs to the fixed format allow-list.
func IsKnownFormat(name string) bool {
	_, ok := knownFormats[name]
	return ok
}
