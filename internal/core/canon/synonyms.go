package canon

// Synonym tables for the closed enum sets. Keys are stored normalized, so a
// lookup of normalized input is insensitive to case, diacritics and Arabic
// letter variants

var genderSynonyms = map[string]Gender{
	"male":   GenderMale,
	"m":      GenderMale,
	"man":    GenderMale,
	"ذكر":    GenderMale,
	"رجل":    GenderMale,
	"female": GenderFemale,
	"f":      GenderFemale,
	"woman":  GenderFemale,
	"أنثى":   GenderFemale,
	"امرأة":  GenderFemale,
	"سيدة":   GenderFemale,
}

var statusSynonyms = map[string]Status{
	"detained":             StatusDetained,
	"in detention":         StatusDetained,
	"arrested":             StatusDetained,
	"معتقل":                StatusDetained,
	"محتجز":                StatusDetained,
	"موقوف":                StatusDetained,
	"released":             StatusReleased,
	"freed":                StatusReleased,
	"مفرج عنه":             StatusReleased,
	"محرر":                 StatusReleased,
	"deceased":             StatusDeceased,
	"dead":                 StatusDeceased,
	"متوفى":                StatusDeceased,
	"ميت":                  StatusDeceased,
	"disappeared":          StatusDisappeared,
	"missing":              StatusDisappeared,
	"forcibly disappeared": StatusDisappeared,
	"مفقود":                StatusDisappeared,
	"مختفي":                StatusDisappeared,
	"مخفي قسرا":            StatusDisappeared,
	"unknown":              StatusUnknown,
	"غير معروف":            StatusUnknown,
	"مجهول":                StatusUnknown,
}

// lookupGender resolves raw input to the canonical gender. ok is false when
// the input matched nothing and the caller coerced to GenderUnknown
func (m *Mapper) lookupGender(raw string) (Gender, bool) {
	if g, ok := m.genders[m.norm.Normalize(raw)]; ok {
		return g, true
	}
	return GenderUnknown, false
}

// lookupStatus resolves raw input to the canonical status
func (m *Mapper) lookupStatus(raw string) (Status, bool) {
	if s, ok := m.statuses[m.norm.Normalize(raw)]; ok {
		return s, true
	}
	return StatusUnknown, false
}
