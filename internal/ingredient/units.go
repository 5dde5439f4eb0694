package ingredient

// Dimension is the physical dimension a unit measures. Quantities are
// only ever summed within a single dimension.
type Dimension string

const (
	Mass    Dimension = "mass"
	Volume  Dimension = "volume"
	Count   Dimension = "count"
	Unknown Dimension = "unknown"
)

// Canonical units per dimension: grams, milliliters, pieces.
const (
	CanonicalMass   = "g"
	CanonicalVolume = "ml"
	CanonicalCount  = "piece"
)

// UnitInfo describes how a unit maps onto its dimension. Factor converts
// one of the unit into the dimension's canonical unit.
type UnitInfo struct {
	Dimension Dimension
	Canonical string
	Factor    float64
}

var unitTable = map[string]UnitInfo{
	// volume, canonical ml
	"ml":           {Volume, CanonicalVolume, 1},
	"milliliter":   {Volume, CanonicalVolume, 1},
	"milliliters":  {Volume, CanonicalVolume, 1},
	"l":            {Volume, CanonicalVolume, 1000},
	"liter":        {Volume, CanonicalVolume, 1000},
	"liters":       {Volume, CanonicalVolume, 1000},
	"litre":        {Volume, CanonicalVolume, 1000},
	"litres":       {Volume, CanonicalVolume, 1000},
	"tsp":          {Volume, CanonicalVolume, 5},
	"teaspoon":     {Volume, CanonicalVolume, 5},
	"teaspoons":    {Volume, CanonicalVolume, 5},
	"tbsp":         {Volume, CanonicalVolume, 15},
	"tablespoon":   {Volume, CanonicalVolume, 15},
	"tablespoons":  {Volume, CanonicalVolume, 15},
	"cup":          {Volume, CanonicalVolume, 240},
	"cups":         {Volume, CanonicalVolume, 240},
	"fl oz":        {Volume, CanonicalVolume, 30},
	"floz":         {Volume, CanonicalVolume, 30},
	"fluid ounce":  {Volume, CanonicalVolume, 30},
	"fluid ounces": {Volume, CanonicalVolume, 30},
	"pint":         {Volume, CanonicalVolume, 473},
	"pints":        {Volume, CanonicalVolume, 473},
	"quart":        {Volume, CanonicalVolume, 946},
	"quarts":       {Volume, CanonicalVolume, 946},

	// mass, canonical g
	"mg":        {Mass, CanonicalMass, 0.001},
	"g":         {Mass, CanonicalMass, 1},
	"gram":      {Mass, CanonicalMass, 1},
	"grams":     {Mass, CanonicalMass, 1},
	"kg":        {Mass, CanonicalMass, 1000},
	"kilogram":  {Mass, CanonicalMass, 1000},
	"kilograms": {Mass, CanonicalMass, 1000},
	"oz":        {Mass, CanonicalMass, 28.35},
	"ounce":     {Mass, CanonicalMass, 28.35},
	"ounces":    {Mass, CanonicalMass, 28.35},
	"lb":        {Mass, CanonicalMass, 453.59},
	"lbs":       {Mass, CanonicalMass, 453.59},
	"pound":     {Mass, CanonicalMass, 453.59},
	"pounds":    {Mass, CanonicalMass, 453.59},

	// count, canonical piece
	"piece":  {Count, CanonicalCount, 1},
	"pieces": {Count, CanonicalCount, 1},
	"pc":     {Count, CanonicalCount, 1},
	"clove":  {Count, CanonicalCount, 1},
	"cloves": {Count, CanonicalCount, 1},
	"slice":  {Count, CanonicalCount, 1},
	"slices": {Count, CanonicalCount, 1},
	"whole":  {Count, CanonicalCount, 1},
	"can":    {Count, CanonicalCount, 1},
	"cans":   {Count, CanonicalCount, 1},
}

// NormalizeUnit maps a lowercased, trimmed unit onto its dimension. Units
// not in the table, including the empty unit, come back as Unknown and
// are never merged with anything.
func NormalizeUnit(unit string) UnitInfo {
	if info, ok := unitTable[unit]; ok {
		return info
	}
	return UnitInfo{Dimension: Unknown, Canonical: unit, Factor: 1}
}
