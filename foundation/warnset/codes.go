package warnset

// Code is a stable machine-readable warning. Downstream workflow steps branch on it,
// so values must never change once published.
type Code string

const (
	FieldMissing   Code = "FIELD_MISSING"
	ValueNotString Code = "VALUE_NOT_STRING"
	CleanedToEmpty Code = "CLEANED_TO_EMPTY"

	EmailExtracted Code = "EMAIL_EXTRACTED"
	InvalidEmail   Code = "INVALID_EMAIL"

	MultiplePhonesFound Code = "MULTIPLE_PHONES_FOUND"
	PhoneHasExtension   Code = "PHONE_HAS_EXTENSION"
	InvalidPhone        Code = "INVALID_PHONE"
	PhoneNeedsCountry   Code = "PHONE_NEEDS_COUNTRY"

	StrippedEdgePunct Code = "STRIPPED_EDGE_PUNCT"
	BuiltFullName     Code = "BUILT_FULL_NAME"
	UsedFullNameSplit Code = "USED_FULL_NAME_SPLIT"
	MissingLast       Code = "MISSING_LAST"
	MissingName       Code = "MISSING_NAME"

	InvalidURL           Code = "INVALID_URL"
	InvalidSocialURL     Code = "INVALID_SOCIAL_URL"
	SocialNetworkUnknown Code = "SOCIAL_NETWORK_UNKNOWN"

	InvalidZIP   Code = "INVALID_ZIP"
	ZIPPadded    Code = "ZIP_PADDED"
	InvalidState Code = "INVALID_STATE"
)

var known = map[Code]struct{}{
	FieldMissing:         {},
	ValueNotString:       {},
	CleanedToEmpty:       {},
	EmailExtracted:       {},
	InvalidEmail:         {},
	MultiplePhonesFound:  {},
	PhoneHasExtension:    {},
	InvalidPhone:         {},
	PhoneNeedsCountry:    {},
	StrippedEdgePunct:    {},
	BuiltFullName:        {},
	UsedFullNameSplit:    {},
	MissingLast:          {},
	MissingName:          {},
	InvalidURL:           {},
	InvalidSocialURL:     {},
	SocialNetworkUnknown: {},
	InvalidZIP:           {},
	ZIPPadded:            {},
	InvalidState:         {},
}

// IsKnown reports whether c belongs to the published vocabulary.
func IsKnown(c Code) bool {
	_, ok := known[c]
	return ok
}
