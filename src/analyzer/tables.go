package analyzer

// Reference tables collected from real cat measurements (veterinary data).
// They are fixed after definition; nothing in this package mutates them.

// realTorsoHeightCm is the average torso height of an adult domestic cat.
// It is the only scale anchor available without camera calibration.
const realTorsoHeightCm = 25.0

// breedModifier scales the weight estimate by breed build.
var breedModifier = map[string]float64{
	"maine_coon":         1.15,
	"ragdoll":            1.10,
	"british_shorthair":  1.05,
	"persian":            1.03,
	"siamese":            0.95,
	"bengal":             1.02,
	"scottish_fold":      1.00,
	"russian_blue":       0.98,
	"sphynx":             0.93,
	"munchkin":           0.85,
	"domestic_shorthair": 1.0,
	"domestic_longhair":  1.02,
	"unknown":            1.0,
}

// ageWeightModifier scales the weight estimate by life stage.
var ageWeightModifier = map[string]float64{
	"kitten": 0.3,  // 0-6 months
	"young":  0.7,  // 6-12 months
	"adult":  1.0,  // 1-7 years
	"senior": 0.95, // 7+ years
}

// torsoRatio is the fraction of the bounding-box height attributable to torso
// depth for each posture; the rest is limbs, tail and background.
var torsoRatio = map[Posture]float64{
	PostureLying:    0.55,
	PostureCurled:   0.50,
	PostureSitting:  0.60,
	PostureStanding: 0.65,
}

// conditionTier maps a BMI upper bound to a body-condition score. Tiers are
// ordered and half-open: a BMI equal to the bound falls into the next tier.
type conditionTier struct {
	upperBMI    float64
	score       int
	condition   string
	description string
}

var conditionTiers = []conditionTier{
	{3.5, 3, "underweight", "ผอมเกินไป ควรเพิ่มน้ำหนัก"},
	{4.5, 4, "lean", "ผอม แต่ยังอยู่ในเกณฑ์ปกติ"},
	{6.0, 5, "ideal", "น้ำหนักเหมาะสม สุขภาพดี"},
	{7.5, 6, "overweight", "น้ำหนักเกินเล็กน้อย ควรควบคุม"},
	{9.0, 7, "overweight", "น้ำหนักเกิน ควรลดน้ำหนัก"},
}

// obeseTier catches everything at or above the last bound.
var obeseTier = conditionTier{score: 8, condition: "obese", description: "อ้วน ควรปรึกษาสัตวแพทย์"}

// sizeRanges describes the band each clothing size covers, shown to the user
// alongside the recommendation.
var sizeRanges = map[string]SizeRange{
	"XS": {Weight: "< 2.5 kg", Chest: "< 24 cm", Neck: "< 15 cm"},
	"S":  {Weight: "2.5-4 kg", Chest: "24-32 cm", Neck: "15-20 cm"},
	"M":  {Weight: "4-6 kg", Chest: "32-38 cm", Neck: "20-24 cm"},
	"L":  {Weight: "6-8.5 kg", Chest: "38-45 cm", Neck: "24-28 cm"},
	"XL": {Weight: "> 8.5 kg", Chest: "> 45 cm", Neck: "> 28 cm"},
}
