package canon

import (
	"strconv"
	"strings"
	"time"

	"qayd/internal/core/arabic"
)

// DateFormat is the one canonical textual date format records carry
const DateFormat = "2006-01-02"

// dateLayouts are tried in order; first parse wins. Day-first layouts come
// before month-first because submissions are predominantly day-first
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"02/01/2006",
	"01/02/2006",
	"02-01-2006",
	"2.1.2006",
	"2 January 2006",
	"January 2, 2006",
}

// requiredFields trigger a missing_required error when blank
var requiredFields = []string{
	FieldFullName,
	FieldLastSeenLocation,
	FieldContactInfo,
	FieldGender,
	FieldStatus,
	FieldAge,
	FieldDetentionDate,
}

// Options controls mapping policy
type Options struct {
	// StrictEnums escalates an unrecognized gender or status value to an
	// unknown_enum field error instead of silently coercing to the unknown
	// value. The coercion itself happens either way
	StrictEnums bool
}

// Mapper resolves field aliases and validates one row at a time.
// Safe for concurrent use
type Mapper struct {
	norm     *arabic.Normalizer
	opts     Options
	aliases  map[string][]string
	genders  map[string]Gender
	statuses map[string]Status
}

// NewMapper builds a Mapper with alias and synonym tables keyed by their
// normalized forms
func NewMapper(opts Options) *Mapper {
	m := &Mapper{
		norm:     arabic.New(),
		opts:     opts,
		aliases:  make(map[string][]string, len(fieldAliases)),
		genders:  make(map[string]Gender, len(genderSynonyms)),
		statuses: make(map[string]Status, len(statusSynonyms)),
	}
	for field, list := range fieldAliases {
		nl := make([]string, len(list))
		for i, a := range list {
			nl[i] = m.norm.Normalize(a)
		}
		m.aliases[field] = nl
	}
	for k, g := range genderSynonyms {
		m.genders[m.norm.Normalize(k)] = g
	}
	for k, s := range statusSynonyms {
		m.statuses[m.norm.Normalize(k)] = s
	}
	return m
}

// MapRow maps a raw row onto the canonical record shape. Every validation
// failure is collected; the row is never short-circuited after the first.
// A non-empty error list means the record must not be persisted as-is
func (m *Mapper) MapRow(row map[string]string) (Record, []FieldError) {
	byKey := make(map[string]string, len(row))
	for k, v := range row {
		byKey[m.norm.Normalize(k)] = strings.TrimSpace(v)
	}

	var errs []FieldError
	rec := Record{
		FullName:         m.resolve(byKey, FieldFullName),
		OriginalName:     m.resolve(byKey, FieldOriginalName),
		LastSeenLocation: m.resolve(byKey, FieldLastSeenLocation),
		Facility:         m.resolve(byKey, FieldFacility),
		Description:      m.resolve(byKey, FieldDescription),
		ContactInfo:      m.resolve(byKey, FieldContactInfo),
		Organization:     m.resolve(byKey, FieldOrganization),
		Notes:            m.resolve(byKey, FieldNotes),
	}

	rawByField := map[string]string{
		FieldFullName:         rec.FullName,
		FieldLastSeenLocation: rec.LastSeenLocation,
		FieldContactInfo:      rec.ContactInfo,
		FieldGender:           m.resolve(byKey, FieldGender),
		FieldStatus:           m.resolve(byKey, FieldStatus),
		FieldAge:              m.resolve(byKey, FieldAge),
		FieldDetentionDate:    m.resolve(byKey, FieldDetentionDate),
	}
	for _, f := range requiredFields {
		if rawByField[f] == "" {
			errs = append(errs, FieldError{Field: f, Code: CodeMissingRequired})
		}
	}

	if raw := rawByField[FieldAge]; raw != "" {
		age, ok := parseAge(raw)
		if !ok {
			errs = append(errs, FieldError{Field: FieldAge, Code: CodeInvalidAge, Raw: raw})
		}
		rec.Age = age
	}

	if raw := rawByField[FieldDetentionDate]; raw != "" {
		if d, ok := parseDate(raw); ok {
			rec.DetentionDate = d
		} else {
			// keep the raw value for operator review
			rec.DetentionDate = raw
			errs = append(errs, FieldError{Field: FieldDetentionDate, Code: CodeInvalidDate, Raw: raw})
		}
	}

	rec.Gender = GenderUnknown
	if raw := rawByField[FieldGender]; raw != "" {
		g, ok := m.lookupGender(raw)
		rec.Gender = g
		if !ok && m.opts.StrictEnums {
			errs = append(errs, FieldError{Field: FieldGender, Code: CodeUnknownEnum, Raw: raw})
		}
	}
	rec.Status = StatusUnknown
	if raw := rawByField[FieldStatus]; raw != "" {
		s, ok := m.lookupStatus(raw)
		rec.Status = s
		if !ok && m.opts.StrictEnums {
			errs = append(errs, FieldError{Field: FieldStatus, Code: CodeUnknownEnum, Raw: raw})
		}
	}

	rec.NormalizedName = m.norm.Normalize(rec.FullName)
	rec.NormalizedLocation = m.norm.Normalize(rec.LastSeenLocation)

	return rec, errs
}

// Normalize exposes the mapper's normalizer for callers that need the same
// canonical form it used (duplicate checks, search shadows)
func (m *Mapper) Normalize(s string) string { return m.norm.Normalize(s) }

// parseAge strips every non-digit rune then parses; valid range is 0..120
func parseAge(raw string) (int, bool) {
	var b strings.Builder
	for _, r := range foldEasternDigits(raw) {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0, false
	}
	v, err := strconv.Atoi(b.String())
	if err != nil || v < 0 || v > 120 {
		return 0, false
	}
	return v, true
}

// parseDate tries the accepted layouts in order and canonicalizes the first
// match to DateFormat
func parseDate(raw string) (string, bool) {
	s := strings.TrimSpace(foldEasternDigits(raw))
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(DateFormat), true
		}
	}
	return "", false
}

// foldEasternDigits maps Arabic-Indic and extended digits to ASCII so ages
// and dates written with them still parse
func foldEasternDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= '٠' && r <= '٩':
			b.WriteRune('0' + (r - '٠'))
		case r >= '۰' && r <= '۹':
			b.WriteRune('0' + (r - '۰'))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
