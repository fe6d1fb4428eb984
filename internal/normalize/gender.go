package normalize

// Canonical gender values. Anything that matches no synonym set maps to
// GenderOther, so the normalizer is total: it never rejects input.
const (
	GenderMale   = "Masculino"
	GenderFemale = "Femenino"
	GenderOther  = "Otro"
)

var maleTokens = map[string]struct{}{
	"m": {}, "male": {}, "masculino": {}, "hombre": {}, "man": {}, "varon": {},
}

var femaleTokens = map[string]struct{}{
	"f": {}, "female": {}, "femenino": {}, "mujer": {}, "woman": {}, "fem": {},
}

// Gender maps free-form input onto one of the three canonical values.
func Gender(input string) string {
	token := fold(input)
	if _, ok := maleTokens[token]; ok {
		return GenderMale
	}
	if _, ok := femaleTokens[token]; ok {
		return GenderFemale
	}
	return GenderOther
}
