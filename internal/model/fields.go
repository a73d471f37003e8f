package model

import (
	"time"
)

// CustomField is a caller-defined value with an optional protected flag.
type CustomField struct {
	Value     string `json:"value"`
	Protected bool   `json:"protected,omitempty"`
}

// AltURL is a secondary URL on a record, with an optional label.
type AltURL struct {
	URL   string `json:"url"`
	Label string `json:"label,omitempty"`
}

// Fields is the per-record field bag: canonical single-valued slots plus
// open-ended custom fields, tags and attachments.
//
// Custom-field and attachment keys are unique within one record; callers
// are responsible for resolving collisions before writing (the importer
// never overwrites silently).
type Fields struct {
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
	URL      string `json:"url,omitempty"`
	Email    string `json:"email,omitempty"`
	Notes    string `json:"notes,omitempty"`

	OTP *OTPToken `json:"otp,omitempty"`

	Tags    []string `json:"tags,omitempty"`
	AltURLs []AltURL `json:"altUrls,omitempty"`

	CustomFields map[string]CustomField `json:"customFields,omitempty"`
	// customOrder remembers insertion order so serialization and display
	// are deterministic regardless of map iteration.
	customOrder []string

	// Attachments maps file name to raw payload bytes. Persisted
	// separately from the JSON envelope.
	Attachments map[string][]byte `json:"-"`
	attOrder    []string

	Created  *time.Time `json:"created,omitempty"`
	Modified *time.Time `json:"modified,omitempty"`
}

// NewFields returns an empty field bag.
func NewFields() *Fields {
	return &Fields{
		CustomFields: make(map[string]CustomField),
		Attachments:  make(map[string][]byte),
	}
}

// HasCustomField reports whether a custom field with the exact name exists.
func (f *Fields) HasCustomField(name string) bool {
	_, ok := f.CustomFields[name]
	return ok
}

// SetCustomField stores a custom field under name. An existing field with
// the same name is replaced; collision-averse callers must check
// HasCustomField first.
func (f *Fields) SetCustomField(name string, cf CustomField) {
	if _, ok := f.CustomFields[name]; !ok {
		f.customOrder = append(f.customOrder, name)
	}
	f.CustomFields[name] = cf
}

// CustomFieldNames returns custom-field names in insertion order.
func (f *Fields) CustomFieldNames() []string {
	out := make([]string, len(f.customOrder))
	copy(out, f.customOrder)
	return out
}

// AddTag appends a tag unless it is already present.
func (f *Fields) AddTag(tag string) {
	for _, t := range f.Tags {
		if t == tag {
			return
		}
	}
	f.Tags = append(f.Tags, tag)
}

// AddAltURL appends a secondary URL with an optional label.
func (f *Fields) AddAltURL(url, label string) {
	f.AltURLs = append(f.AltURLs, AltURL{URL: url, Label: label})
}

// HasAttachment reports whether an attachment with the exact name exists.
func (f *Fields) HasAttachment(name string) bool {
	_, ok := f.Attachments[name]
	return ok
}

// SetAttachment stores an attachment payload under name, replacing any
// existing one. Collision-averse callers must check HasAttachment first.
func (f *Fields) SetAttachment(name string, data []byte) {
	if _, ok := f.Attachments[name]; !ok {
		f.attOrder = append(f.attOrder, name)
	}
	f.Attachments[name] = data
}

// AttachmentNames returns attachment names in insertion order.
func (f *Fields) AttachmentNames() []string {
	out := make([]string, len(f.attOrder))
	copy(out, f.attOrder)
	return out
}

// SetCreated records the creation timestamp.
func (f *Fields) SetCreated(t time.Time) {
	f.Created = &t
}

// SetModified records the last-modification timestamp.
func (f *Fields) SetModified(t time.Time) {
	f.Modified = &t
}

// Legacy supplementary custom-field names written by SetTOTP when
// requested. These mirror the conventions other password managers read.
const (
	TOTPSeedFieldName     = "TOTP Seed"
	TOTPSettingsFieldName = "TOTP Settings"
	OTPAuthURLFieldName   = "otpauth"
)

// SetTOTP installs a one-time-password token on the record. When
// addLegacyFields is set, supplementary seed/settings custom fields are
// written alongside; when addOTPAuthURL is set, the canonical otpauth URL
// is stored as a protected custom field.
func (f *Fields) SetTOTP(token *OTPToken, addLegacyFields, addOTPAuthURL bool) {
	f.OTP = token

	if addLegacyFields {
		f.SetCustomField(TOTPSeedFieldName, CustomField{Value: token.Secret(), Protected: true})
		f.SetCustomField(TOTPSettingsFieldName, CustomField{Value: token.Settings(), Protected: true})
	}

	if addOTPAuthURL {
		f.SetCustomField(OTPAuthURLFieldName, CustomField{Value: token.URL(), Protected: true})
	}
}
