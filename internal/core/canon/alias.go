package canon

// Input rows arrive keyed by whichever header spelling the submitting
// organization uses, in English or Arabic. Each canonical field owns an
// ordered alias list; the first alias with a non-empty value wins.
// Alias matching is done on normalized keys so header casing, diacritics
// and letter-variant differences do not matter

var fieldAliases = map[string][]string{
	FieldFullName:         {"full_name", "name", "detainee_name", "الاسم الكامل", "اسم المعتقل", "الاسم"},
	FieldOriginalName:     {"original_name", "arabic_name", "name_ar", "الاسم الأصلي", "الاسم بالعربية"},
	FieldDetentionDate:    {"detention_date", "date_of_detention", "arrest_date", "تاريخ الاعتقال", "تاريخ الاحتجاز", "التاريخ"},
	FieldLastSeenLocation: {"last_seen_location", "last_seen", "location", "مكان آخر مشاهدة", "آخر مكان", "الموقع", "المكان"},
	FieldFacility:         {"facility", "detention_facility", "prison", "السجن", "مكان الاحتجاز", "المنشأة"},
	FieldDescription:      {"description", "physical_description", "الوصف الجسدي", "الوصف"},
	FieldAge:              {"age", "العمر", "السن"},
	FieldGender:           {"gender", "sex", "الجنس", "النوع"},
	FieldStatus:           {"status", "detention_status", "الحالة", "الوضع"},
	FieldContactInfo:      {"contact_info", "contact", "phone", "معلومات الاتصال", "رقم الهاتف", "جهة الاتصال"},
	FieldOrganization:     {"organization", "submitting_organization", "org", "المنظمة", "الجهة المقدمة", "الجهة"},
	FieldNotes:            {"notes", "additional_info", "comments", "ملاحظات", "معلومات إضافية"},
}

// resolve picks the value for a canonical field out of a row that has been
// re-keyed by normalized header. Returns "" when no alias carries a value
func (m *Mapper) resolve(byKey map[string]string, field string) string {
	for _, alias := range m.aliases[field] {
		if v, ok := byKey[alias]; ok && v != "" {
			return v
		}
	}
	return ""
}
