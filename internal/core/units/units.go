package units

// UnitType 計量類型
type UnitType string

const (
	// UnitVolume 容量（基準單位：毫升）
	UnitVolume UnitType = "volume"
	// UnitWeight 重量（基準單位：公克）
	UnitWeight UnitType = "weight"
	// UnitCount 個數（不做單位換算）
	UnitCount UnitType = "count"
)

// System 顯示單位制
type System string

const (
	// SystemImperial 英制（cups/tbsp/tsp、oz/lb）
	SystemImperial System = "imperial"
	// SystemMetric 公制（ml、g）
	SystemMetric System = "metric"
)

// IsValid 檢查單位制是否有效
func (s System) IsValid() bool {
	return s == SystemImperial || s == SystemMetric
}

// 基準單位名稱
const (
	BaseVolumeUnit = "ml"
	BaseWeightUnit = "g"
)

// 烹飪用換算常數（採廚房慣用的整數近似值）
const (
	mlPerTeaspoon   = 5
	mlPerTablespoon = 15
	mlPerFluidOunce = 30
	mlPerCup        = 240
	mlPerPint       = 480
	mlPerQuart      = 960
	mlPerGallon     = 3840
	mlPerLiter      = 1000

	gPerOunce    = 28.35
	gPerPound    = 453.6
	gPerKilogram = 1000
)

// VolumeFactors 容量單位換算表：每一種拼法都對應到毫升係數
var VolumeFactors = map[string]float64{
	"cups": mlPerCup, "cup": mlPerCup, "c.": mlPerCup, "c": mlPerCup,
	"tablespoons": mlPerTablespoon, "tablespoon": mlPerTablespoon,
	"tbsp.": mlPerTablespoon, "tbsp": mlPerTablespoon, "tbs": mlPerTablespoon, "tb": mlPerTablespoon,
	"teaspoons": mlPerTeaspoon, "teaspoon": mlPerTeaspoon,
	"tsp.": mlPerTeaspoon, "tsp": mlPerTeaspoon, "ts": mlPerTeaspoon,
	"fluid ounces": mlPerFluidOunce, "fluid ounce": mlPerFluidOunce,
	"fl. oz.": mlPerFluidOunce, "fl.oz.": mlPerFluidOunce, "fl oz": mlPerFluidOunce, "floz": mlPerFluidOunce,
	"pints": mlPerPint, "pint": mlPerPint, "pt": mlPerPint,
	"quarts": mlPerQuart, "quart": mlPerQuart, "qt": mlPerQuart,
	"gallons": mlPerGallon, "gallon": mlPerGallon, "gal": mlPerGallon,
	"liters": mlPerLiter, "litres": mlPerLiter, "liter": mlPerLiter, "litre": mlPerLiter, "l": mlPerLiter,
	"milliliters": 1, "millilitres": 1, "milliliter": 1, "millilitre": 1, "ml": 1,
}

// WeightFactors 重量單位換算表：每一種拼法都對應到公克係數
var WeightFactors = map[string]float64{
	"pounds": gPerPound, "pound": gPerPound, "lbs": gPerPound, "lb.": gPerPound, "lb": gPerPound,
	"ounces": gPerOunce, "ounce": gPerOunce, "oz.": gPerOunce, "oz": gPerOunce,
	"kilograms": gPerKilogram, "kilogram": gPerKilogram, "kgs": gPerKilogram, "kg": gPerKilogram,
	"grams": 1, "gram": 1, "g.": 1, "g": 1,
}
