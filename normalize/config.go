package normalize

import (
	"github.com/vortex-fintech/fieldnorm/foundation/geo"
	"github.com/vortex-fintech/fieldnorm/foundation/warnset"
)

// OutputMode selects how normalized fields are combined with the input record.
type OutputMode string

const (
	// OutputMerge copies the record and overwrites normalized keys.
	OutputMerge OutputMode = "merge"
	// OutputOnly returns the normalized keys alone.
	OutputOnly OutputMode = "only"
)

// NewlineMode selects line ending handling in the whitespace cleaner.
type NewlineMode string

const (
	NewlinesLF   NewlineMode = "lf"
	NewlinesNone NewlineMode = "none"
)

// StateFormat selects how recognized US states are written.
type StateFormat string

const (
	StateAbbr StateFormat = "abbr"
	StateFull StateFormat = "full"
)

// Common holds the keys every processor understands.
type Common struct {
	OutputMode        OutputMode `toml:"OUTPUT_MODE" json:"OUTPUT_MODE" validate:"oneof=merge only"`
	EmitChangedFields bool       `toml:"EMIT_CHANGED_FIELDS" json:"EMIT_CHANGED_FIELDS"`
	EmitWarnings      bool       `toml:"EMIT_WARNINGS" json:"EMIT_WARNINGS"`
	CoerceNonString   bool       `toml:"COERCE_NON_STRING" json:"COERCE_NON_STRING"`
	// FieldMap maps output key to dotted input path. Empty means domain defaults
	// or, with AutoDetect, keys picked from each record.
	FieldMap    map[string]string `toml:"FIELD_MAP" json:"FIELD_MAP,omitempty" validate:"dive,keys,required,endkeys,fieldpath"`
	WarningMode warnset.Mode      `toml:"WARNING_MODE" json:"WARNING_MODE" validate:"oneof=dedupe all"`
	AutoDetect  bool              `toml:"AUTO_DETECT" json:"AUTO_DETECT"`
}

type WhitespaceConfig struct {
	Common
	EmptyToNull        bool        `toml:"EMPTY_TO_NULL" json:"EMPTY_TO_NULL"`
	TrimEdges          bool        `toml:"TRIM_EDGES" json:"TRIM_EDGES"`
	CollapseSpaces     bool        `toml:"COLLAPSE_SPACES" json:"COLLAPSE_SPACES"`
	NormalizeNewlines  NewlineMode `toml:"NORMALIZE_NEWLINES" json:"NORMALIZE_NEWLINES" validate:"oneof=lf none"`
	CollapseBlankLines bool        `toml:"COLLAPSE_BLANK_LINES" json:"COLLAPSE_BLANK_LINES"`
	RemoveZeroWidth    bool        `toml:"REMOVE_ZERO_WIDTH" json:"REMOVE_ZERO_WIDTH"`
	UnicodeNFKC        bool        `toml:"UNICODE_NFKC" json:"UNICODE_NFKC"`
}

type EmailConfig struct {
	Common
	EmptyToNull       bool `toml:"EMPTY_TO_NULL" json:"EMPTY_TO_NULL"`
	Lowercase         bool `toml:"LOWERCASE" json:"LOWERCASE"`
	ExtractEmail      bool `toml:"EXTRACT_EMAIL" json:"EXTRACT_EMAIL"`
	ValidateFormat    bool `toml:"VALIDATE_FORMAT" json:"VALIDATE_FORMAT"`
	StripMailto       bool `toml:"STRIP_MAILTO" json:"STRIP_MAILTO"`
	ProviderCanonical bool `toml:"PROVIDER_CANONICAL" json:"PROVIDER_CANONICAL"`
}

type PhoneConfig struct {
	Common
	DefaultCountry string `toml:"DEFAULT_COUNTRY" json:"DEFAULT_COUNTRY" validate:"omitempty,iso2"`
	// FieldCountries maps output key to the country used for bare national numbers.
	FieldCountries     map[string]string `toml:"FIELD_COUNTRIES" json:"FIELD_COUNTRIES,omitempty" validate:"dive,keys,required,endkeys,iso2"`
	AllowMultipleSplit bool              `toml:"ALLOW_MULTIPLE_SPLIT" json:"ALLOW_MULTIPLE_SPLIT"`
	StripExtension     bool              `toml:"STRIP_EXTENSION" json:"STRIP_EXTENSION"`
	ValidateLength     bool              `toml:"VALIDATE_LENGTH" json:"VALIDATE_LENGTH"`
	InferUSLocal       bool              `toml:"INFER_US_LOCAL" json:"INFER_US_LOCAL"`
}

type NameConfig struct {
	Common
	PreferSplitFields  bool `toml:"PREFER_SPLIT_FIELDS" json:"PREFER_SPLIT_FIELDS"`
	DeriveFullName     bool `toml:"DERIVE_FULL_NAME" json:"DERIVE_FULL_NAME"`
	SplitFullName      bool `toml:"SPLIT_FULL_NAME" json:"SPLIT_FULL_NAME"`
	ApplySafeTitlecase bool `toml:"APPLY_SAFE_TITLECASE" json:"APPLY_SAFE_TITLECASE"`
	// OutputFields maps logical name (first, last, full_name) to output key.
	OutputFields map[string]string `toml:"OUTPUT_FIELDS" json:"OUTPUT_FIELDS,omitempty" validate:"dive,keys,oneof=first last full_name,endkeys,required"`
}

type WebsiteConfig struct {
	Common
	EmptyToNull bool `toml:"EMPTY_TO_NULL" json:"EMPTY_TO_NULL"`
	EnsureWWW   bool `toml:"ENSURE_WWW" json:"ENSURE_WWW"`
}

type SocialConfig struct {
	Common
	EmptyToNull bool `toml:"EMPTY_TO_NULL" json:"EMPTY_TO_NULL"`
	// FieldNetworks maps output key to linkedin, facebook or instagram. Keys
	// without an entry are matched by name, e.g. "company_linkedin".
	FieldNetworks map[string]string `toml:"FIELD_NETWORKS" json:"FIELD_NETWORKS,omitempty" validate:"dive,keys,required,endkeys,oneof=linkedin facebook instagram"`
}

type ZIPConfig struct {
	Common
	EmptyToNull bool `toml:"EMPTY_TO_NULL" json:"EMPTY_TO_NULL"`
	KeepPlus4   bool `toml:"KEEP_PLUS4" json:"KEEP_PLUS4"`
	// PadNumeric restores leading zeros of ZIPs that arrive as numbers.
	PadNumeric bool `toml:"PAD_NUMERIC" json:"PAD_NUMERIC"`
}

type StateConfig struct {
	Common
	EmptyToNull bool        `toml:"EMPTY_TO_NULL" json:"EMPTY_TO_NULL"`
	Format      StateFormat `toml:"STATE_FORMAT" json:"STATE_FORMAT" validate:"oneof=abbr full"`
}

func DefaultCommon() Common {
	return Common{
		OutputMode:        OutputMerge,
		EmitChangedFields: true,
		EmitWarnings:      true,
		CoerceNonString:   true,
		WarningMode:       warnset.ModeDedupe,
	}
}

func DefaultWhitespaceConfig() WhitespaceConfig {
	return WhitespaceConfig{
		Common:            DefaultCommon(),
		EmptyToNull:       true,
		TrimEdges:         true,
		CollapseSpaces:    true,
		NormalizeNewlines: NewlinesLF,
		RemoveZeroWidth:   true,
	}
}

func DefaultEmailConfig() EmailConfig {
	return EmailConfig{
		Common:         DefaultCommon(),
		EmptyToNull:    true,
		Lowercase:      true,
		ExtractEmail:   true,
		ValidateFormat: true,
		StripMailto:    true,
	}
}

func DefaultPhoneConfig() PhoneConfig {
	return PhoneConfig{
		Common:             DefaultCommon(),
		DefaultCountry:     geo.DefaultCountry,
		AllowMultipleSplit: true,
		StripExtension:     true,
		ValidateLength:     true,
		InferUSLocal:       true,
	}
}

func DefaultNameConfig() NameConfig {
	return NameConfig{
		Common:             DefaultCommon(),
		PreferSplitFields:  true,
		DeriveFullName:     true,
		SplitFullName:      true,
		ApplySafeTitlecase: true,
	}
}

func DefaultWebsiteConfig() WebsiteConfig {
	return WebsiteConfig{Common: DefaultCommon(), EmptyToNull: true, EnsureWWW: true}
}

func DefaultSocialConfig() SocialConfig {
	return SocialConfig{Common: DefaultCommon(), EmptyToNull: true}
}

func DefaultZIPConfig() ZIPConfig {
	return ZIPConfig{Common: DefaultCommon(), EmptyToNull: true, PadNumeric: true}
}

func DefaultStateConfig() StateConfig {
	return StateConfig{Common: DefaultCommon(), EmptyToNull: true, Format: StateAbbr}
}
