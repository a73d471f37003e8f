package onepux

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/puxvault/internal/logging"
	"github.com/dmitrijs2005/puxvault/internal/model"
)

// classifier maps decoded fields onto canonical slots or custom fields.
// One policy underlies both entry points: the first claimed slot wins,
// everything else becomes a custom field.
type classifier struct {
	opts   ImportOptions
	linker *attachmentLinker
	log    logging.Logger
}

// classifyLoginField routes one login-form field. A recognized designation
// with a non-empty value claims the matching canonical slot; an already
// claimed slot demotes the field to a custom field instead of overwriting.
func (c *classifier) classifyLoginField(ctx context.Context, fields *model.Fields, f LoginField) {
	demotedPassword := false

	switch f.Designation {
	case "username", "password":
		if f.Value == "" {
			return
		}
		if f.Designation == "username" && fields.Username == "" {
			fields.Username = f.Value
			return
		}
		if f.Designation == "password" {
			if fields.Password == "" {
				fields.Password = f.Value
				return
			}
			demotedPassword = true
		}
	}

	name := f.Name
	if name == "" {
		name = uniqueToken()
	}

	value := f.Value
	protected := demotedPassword

	switch f.FieldType {
	case LoginFieldTypePassword:
		protected = true
	case LoginFieldTypeCheckBox:
		if f.Value != "" {
			value = "true"
		} else {
			value = "false"
		}
	}

	if value == "" {
		return
	}

	addCustomField(fields, name, value, protected)
}

// ruleInput is the evaluation context shared by the section-field rules.
type ruleInput struct {
	fields     *model.Fields
	field      SectionField
	key        string
	value      FieldValue
	name       string // collision-resolved field name for custom-field output
	categoryID string
}

// sectionRule is one predicate/handler pair. apply reports whether the
// rule consumed the field; once one fires, no later rule runs.
type sectionRule struct {
	name  string
	apply func(c *classifier, ctx context.Context, in *ruleInput) bool
}

// sectionRules is evaluated strictly in order. The ordering is load-bearing
// and mirrors the descending priority of the interchange format's
// canonical keys.
var sectionRules = []sectionRule{
	{"username", (*classifier).ruleUsername},
	{"password", (*classifier).rulePassword},
	{"totp", (*classifier).ruleTOTP},
	{"category", (*classifier).ruleCategory},
	{"address", (*classifier).ruleAddress},
	{"email", (*classifier).ruleEmail},
	{"date", (*classifier).ruleDate},
	{"monthYear", (*classifier).ruleMonthYear},
	{"file", (*classifier).ruleFile},
	{"fallback", (*classifier).ruleFallback},
}

// classifySectionField routes one section field. A field carrying a file
// reference is handed to the attachment linker up front and never treated
// as text.
func (c *classifier) classifySectionField(ctx context.Context, fields *model.Fields, sectionTitle string, f SectionField, categoryID string) {
	if f.File != nil {
		if err := c.linker.linkRef(ctx, fields, f.File); err != nil {
			c.log.Warn(ctx, "skipping unreadable attachment", "error", err)
		}
		return
	}

	if f.Value.IsZero() {
		c.log.Warn(ctx, "no value or key found for section field")
		return
	}

	in := &ruleInput{
		fields:     fields,
		field:      f,
		key:        f.Value.Key,
		value:      f.Value.Value,
		name:       dedupeFieldName(fields, sectionFieldName(f), sectionTitle),
		categoryID: categoryID,
	}

	for _, r := range sectionRules {
		if r.apply(c, ctx, in) {
			return
		}
	}
}

// identifiesAs reports whether the field's canonical key, title or id
// equals ident.
func (in *ruleInput) identifiesAs(ident string) bool {
	return in.key == ident || in.field.Title == ident || in.field.ID == ident
}

func (c *classifier) ruleUsername(ctx context.Context, in *ruleInput) bool {
	if !in.identifiesAs("username") || in.fields.Username != "" {
		return false
	}
	str, ok := in.value.AsString()
	if !ok {
		return false
	}
	in.fields.Username = str
	return true
}

func (c *classifier) rulePassword(ctx context.Context, in *ruleInput) bool {
	if !in.identifiesAs("password") {
		return false
	}
	str, ok := in.value.AsString()
	if !ok {
		return false
	}
	if in.fields.Password == "" {
		in.fields.Password = str
	} else {
		addCustomField(in.fields, in.name, str, true)
	}
	return true
}

func (c *classifier) ruleTOTP(ctx context.Context, in *ruleInput) bool {
	if in.key != "totp" {
		return false
	}
	str, ok := in.value.AsString()
	if !ok {
		return false
	}

	token, err := model.NewOTPTokenFromString(str)
	if err != nil {
		// Unparseable seed: let later rules store the raw text.
		c.log.Warn(ctx, "could not build otp token from seed", "error", err)
		return false
	}

	if in.fields.OTP == nil {
		in.fields.SetTOTP(token, c.opts.AddLegacyTOTPFields, c.opts.AddOTPAuthURL)
	} else {
		in.fields.AddAltURL(token.URL(), in.name)
	}
	return true
}

func (c *classifier) ruleCategory(ctx context.Context, in *ruleInput) bool {
	if _, ok := lookupCategory(in.categoryID); !ok {
		return false
	}

	if in.categoryID == categoryServer && in.field.ID == "url" {
		if str, ok := in.value.AsString(); ok {
			in.fields.AddAltURL(str, in.name)
			return true
		}
	}

	if in.categoryID == categoryAPICredential && in.field.ID == "credential" && in.fields.Password == "" {
		if str, ok := in.value.AsString(); ok {
			in.fields.Password = str
			return true
		}
	}

	return false
}

// addressPartOrder fixes the line order of the flattened address field.
var addressPartOrder = []string{"street", "zip", "city", "state", "country"}

func (c *classifier) ruleAddress(ctx context.Context, in *ruleInput) bool {
	if in.key != "address" {
		return false
	}
	if _, ok := in.value.AsMap(); !ok {
		return false
	}

	var b strings.Builder
	for _, part := range addressPartOrder {
		if s := in.value.MapString(part); s != "" {
			b.WriteString(s)
			b.WriteString("\n")
		}
	}

	if b.Len() > 0 {
		addCustomField(in.fields, "address", b.String(), false)
	}
	return true
}

func (c *classifier) ruleEmail(ctx context.Context, in *ruleInput) bool {
	if in.key != "email" {
		return false
	}
	if _, ok := in.value.AsMap(); !ok {
		return false
	}

	if addr := in.value.MapString("email_address"); addr != "" {
		if in.fields.Email == "" {
			in.fields.Email = addr
		} else {
			addCustomField(in.fields, in.name, addr, false)
		}
	}

	if provider := in.value.MapString("provider"); provider != "" {
		addCustomField(in.fields, "provider", provider, false)
	}

	return true
}

func (c *classifier) ruleDate(ctx context.Context, in *ruleInput) bool {
	if in.key != "date" {
		return false
	}
	epoch, ok := in.value.AsInt()
	if !ok || epoch == 0 {
		return false
	}

	formatted := time.Unix(epoch, 0).UTC().Format("January 2, 2006")
	addCustomField(in.fields, in.name, formatted, false)
	return true
}

func (c *classifier) ruleMonthYear(ctx context.Context, in *ruleInput) bool {
	if in.key != "monthYear" {
		return false
	}
	u, ok := in.value.AsInt()
	if !ok || u == 0 {
		return false
	}

	year := u / 100
	month := u % 100
	addCustomField(in.fields, in.name, fmt2d4d(month, year), false)
	return true
}

// fmt2d4d renders "MM/YYYY" with zero padding.
func fmt2d4d(month, year int64) string {
	m := strconv.FormatInt(month, 10)
	if len(m) < 2 {
		m = "0" + m
	}
	y := strconv.FormatInt(year, 10)
	for len(y) < 4 {
		y = "0" + y
	}
	return m + "/" + y
}

func (c *classifier) ruleFile(ctx context.Context, in *ruleInput) bool {
	if in.key != "file" {
		return false
	}
	if _, ok := in.value.AsMap(); !ok {
		return false
	}

	fileName := in.value.MapString("fileName")
	documentID := in.value.MapString("documentId")
	if fileName == "" || documentID == "" {
		c.log.Warn(ctx, "no document id or file name for file field, skipping")
		return true
	}

	if err := c.linker.link(ctx, in.fields, documentID, fileName); err != nil {
		c.log.Warn(ctx, "skipping unreadable attachment", "error", err)
	}
	return true
}

func (c *classifier) ruleFallback(ctx context.Context, in *ruleInput) bool {
	switch in.value.Kind() {
	case ValueString:
		str, _ := in.value.AsString()
		if str != "" {
			addCustomField(in.fields, in.name, str, in.field.Guarded)
		}
	case ValueInt:
		num, _ := in.value.AsInt()
		addCustomField(in.fields, in.name, strconv.FormatInt(num, 10), in.field.Guarded)
	case ValueNull:
		// Nothing to store.
	default:
		c.log.Warn(ctx, "dropping field with unrecognized value shape", "key", in.key)
	}
	return true
}
