package normalize

// Suggested canonical terrain categories. The field stays an open string:
// a race on cobblestones is still a valid race.
const (
	TerrainFlat  = "Llano"
	TerrainHilly = "Montañoso"
	TerrainMixed = "Mixto"
	TerrainTrail = "Trail"
	TerrainTrack = "Pista"
)

var terrainTokens = map[string]string{
	"llano": TerrainFlat, "flat": TerrainFlat, "carretera": TerrainFlat, "urbano": TerrainFlat,
	"montanoso": TerrainHilly, "montana": TerrainHilly, "hilly": TerrainHilly,
	"mixto": TerrainMixed, "mixed": TerrainMixed,
	"trail": TerrainTrail,
	"pista": TerrainTrack, "track": TerrainTrack,
}

// Terrain soft-normalizes a terrain description: known synonyms collapse to
// the canonical set, everything else is returned title-cased.
func Terrain(input string) string {
	folded := fold(input)
	if folded == "" {
		return ""
	}
	if t, ok := terrainTokens[folded]; ok {
		return t
	}
	return titleCase(input)
}
