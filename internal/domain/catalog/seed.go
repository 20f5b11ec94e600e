package catalog

// Seed returns the canonical biomarker catalog. Ranges follow standard US
// clinical laboratory reference intervals; optimal ranges reflect the
// tighter targets used for longevity-focused care. Gender overrides replace
// the whole range for that gender.
func Seed() []*Biomarker {
	return []*Biomarker{
		// Hormones
		{Code: "TESTOSTERONE_TOTAL", Name: "Total Testosterone", Category: "Hormones", DefaultUnit: "ng/dL",
			GenderRanges: map[Gender]RangeOverride{
				GenderMale:   {RefLow: fp(264), RefHigh: fp(916), OptimalLow: fp(500), OptimalHigh: fp(900)},
				GenderFemale: {RefLow: fp(8), RefHigh: fp(60)},
			}, DisplayOrder: 10},
		{Code: "TESTOSTERONE_FREE", Name: "Free Testosterone", Category: "Hormones", DefaultUnit: "pg/mL",
			GenderRanges: map[Gender]RangeOverride{
				GenderMale:   {RefLow: fp(8.7), RefHigh: fp(25.1), OptimalLow: fp(15), OptimalHigh: fp(25)},
				GenderFemale: {RefLow: fp(0.3), RefHigh: fp(1.9)},
			}, DisplayOrder: 11},
		{Code: "ESTRADIOL", Name: "Estradiol", Category: "Hormones", DefaultUnit: "pg/mL",
			GenderRanges: map[Gender]RangeOverride{
				GenderMale:   {RefLow: fp(10), RefHigh: fp(40), OptimalLow: fp(20), OptimalHigh: fp(30)},
				GenderFemale: {RefLow: fp(15), RefHigh: fp(350)},
			}, DisplayOrder: 12},
		{Code: "DHEA_S", Name: "DHEA-Sulfate", Category: "Hormones", DefaultUnit: "ug/dL",
			GenderRanges: map[Gender]RangeOverride{
				GenderMale:   {RefLow: fp(89), RefHigh: fp(457), OptimalLow: fp(350), OptimalHigh: fp(450)},
				GenderFemale: {RefLow: fp(57), RefHigh: fp(279)},
			}, DisplayOrder: 13},
		{Code: "SHBG", Name: "Sex Hormone Binding Globulin", Category: "Hormones", DefaultUnit: "nmol/L",
			GenderRanges: map[Gender]RangeOverride{
				GenderMale:   {RefLow: fp(16.5), RefHigh: fp(55.9)},
				GenderFemale: {RefLow: fp(24.6), RefHigh: fp(122)},
			}, DisplayOrder: 14},
		{Code: "LH", Name: "Luteinizing Hormone", Category: "Hormones", DefaultUnit: "mIU/mL",
			RefLow: fp(1.7), RefHigh: fp(8.6), DisplayOrder: 15},
		{Code: "FSH", Name: "Follicle Stimulating Hormone", Category: "Hormones", DefaultUnit: "mIU/mL",
			RefLow: fp(1.5), RefHigh: fp(12.4), DisplayOrder: 16},
		{Code: "PROLACTIN", Name: "Prolactin", Category: "Hormones", DefaultUnit: "ng/mL",
			GenderRanges: map[Gender]RangeOverride{
				GenderMale:   {RefLow: fp(4.0), RefHigh: fp(15.2)},
				GenderFemale: {RefLow: fp(4.8), RefHigh: fp(23.3)},
			}, DisplayOrder: 17},
		{Code: "PROGESTERONE", Name: "Progesterone", Category: "Hormones", DefaultUnit: "ng/mL",
			GenderRanges: map[Gender]RangeOverride{
				GenderMale:   {RefLow: fp(0), RefHigh: fp(0.5)},
				GenderFemale: {RefLow: fp(0.1), RefHigh: fp(25)},
			}, DisplayOrder: 18},
		{Code: "CORTISOL", Name: "Cortisol", Category: "Hormones", DefaultUnit: "ug/dL",
			RefLow: fp(6.2), RefHigh: fp(19.4), DisplayOrder: 19},
		{Code: "IGF_1", Name: "IGF-1", Category: "Hormones", DefaultUnit: "ng/mL",
			RefLow: fp(88), RefHigh: fp(246), OptimalLow: fp(150), OptimalHigh: fp(250), DisplayOrder: 20},

		// Thyroid
		{Code: "TSH", Name: "Thyroid Stimulating Hormone", Category: "Thyroid", DefaultUnit: "uIU/mL",
			RefLow: fp(0.45), RefHigh: fp(4.5), OptimalLow: fp(0.5), OptimalHigh: fp(2.0), DisplayOrder: 30},
		{Code: "FREE_T3", Name: "Free T3", Category: "Thyroid", DefaultUnit: "pg/mL",
			RefLow: fp(2.0), RefHigh: fp(4.4), OptimalLow: fp(3.0), OptimalHigh: fp(4.2), DisplayOrder: 31},
		{Code: "FREE_T4", Name: "Free T4", Category: "Thyroid", DefaultUnit: "ng/dL",
			RefLow: fp(0.82), RefHigh: fp(1.77), OptimalLow: fp(1.0), OptimalHigh: fp(1.5), DisplayOrder: 32},
		{Code: "TPO_AB", Name: "Thyroid Peroxidase Antibodies", Category: "Thyroid", DefaultUnit: "IU/mL",
			RefLow: fp(0), RefHigh: fp(34), DisplayOrder: 33},
		{Code: "REVERSE_T3", Name: "Reverse T3", Category: "Thyroid", DefaultUnit: "ng/dL",
			RefLow: fp(9.2), RefHigh: fp(24.1), DisplayOrder: 34},

		// Metabolic
		{Code: "GLUCOSE", Name: "Glucose", Category: "Metabolic", DefaultUnit: "mg/dL",
			RefLow: fp(65), RefHigh: fp(99), OptimalLow: fp(70), OptimalHigh: fp(90), DisplayOrder: 40},
		{Code: "HBA1C", Name: "Hemoglobin A1c", Category: "Metabolic", DefaultUnit: "%",
			RefLow: fp(4.0), RefHigh: fp(5.6), OptimalLow: fp(4.5), OptimalHigh: fp(5.3), DisplayOrder: 41},
		{Code: "INSULIN", Name: "Fasting Insulin", Category: "Metabolic", DefaultUnit: "uIU/mL",
			RefLow: fp(2.6), RefHigh: fp(24.9), OptimalLow: fp(2), OptimalHigh: fp(6), DisplayOrder: 42},
		{Code: "URIC_ACID", Name: "Uric Acid", Category: "Metabolic", DefaultUnit: "mg/dL",
			GenderRanges: map[Gender]RangeOverride{
				GenderMale:   {RefLow: fp(3.8), RefHigh: fp(8.4)},
				GenderFemale: {RefLow: fp(2.8), RefHigh: fp(6.9)},
			}, DisplayOrder: 43},

		// Lipids
		{Code: "CHOLESTEROL_TOTAL", Name: "Total Cholesterol", Category: "Lipids", DefaultUnit: "mg/dL",
			RefLow: fp(100), RefHigh: fp(199), DisplayOrder: 50},
		{Code: "LDL_C", Name: "LDL Cholesterol", Category: "Lipids", DefaultUnit: "mg/dL",
			RefLow: fp(0), RefHigh: fp(99), OptimalLow: fp(0), OptimalHigh: fp(70), DisplayOrder: 51},
		{Code: "HDL_C", Name: "HDL Cholesterol", Category: "Lipids", DefaultUnit: "mg/dL",
			GenderRanges: map[Gender]RangeOverride{
				GenderMale:   {RefLow: fp(40), RefHigh: fp(100), OptimalLow: fp(50), OptimalHigh: fp(90)},
				GenderFemale: {RefLow: fp(50), RefHigh: fp(100), OptimalLow: fp(60), OptimalHigh: fp(95)},
			}, DisplayOrder: 52},
		{Code: "TRIGLYCERIDES", Name: "Triglycerides", Category: "Lipids", DefaultUnit: "mg/dL",
			RefLow: fp(0), RefHigh: fp(149), OptimalLow: fp(0), OptimalHigh: fp(80), DisplayOrder: 53},
		{Code: "APOB", Name: "Apolipoprotein B", Category: "Lipids", DefaultUnit: "mg/dL",
			RefLow: fp(0), RefHigh: fp(90), OptimalLow: fp(0), OptimalHigh: fp(60), DisplayOrder: 54},
		{Code: "LP_A", Name: "Lipoprotein (a)", Category: "Lipids", DefaultUnit: "nmol/L",
			RefLow: fp(0), RefHigh: fp(75), DisplayOrder: 55},

		// CBC
		{Code: "WBC", Name: "White Blood Cell Count", Category: "CBC", DefaultUnit: "x10E3/uL",
			RefLow: fp(3.4), RefHigh: fp(10.8), DisplayOrder: 60},
		{Code: "RBC", Name: "Red Blood Cell Count", Category: "CBC", DefaultUnit: "x10E6/uL",
			GenderRanges: map[Gender]RangeOverride{
				GenderMale:   {RefLow: fp(4.14), RefHigh: fp(5.80)},
				GenderFemale: {RefLow: fp(3.77), RefHigh: fp(5.28)},
			}, DisplayOrder: 61},
		{Code: "HEMOGLOBIN", Name: "Hemoglobin", Category: "CBC", DefaultUnit: "g/dL",
			GenderRanges: map[Gender]RangeOverride{
				GenderMale:   {RefLow: fp(13.0), RefHigh: fp(17.7)},
				GenderFemale: {RefLow: fp(11.1), RefHigh: fp(15.9)},
			}, DisplayOrder: 62},
		{Code: "HEMATOCRIT", Name: "Hematocrit", Category: "CBC", DefaultUnit: "%",
			GenderRanges: map[Gender]RangeOverride{
				GenderMale:   {RefLow: fp(37.5), RefHigh: fp(51.0)},
				GenderFemale: {RefLow: fp(34.0), RefHigh: fp(46.6)},
			}, DisplayOrder: 63},
		{Code: "PLATELETS", Name: "Platelet Count", Category: "CBC", DefaultUnit: "x10E3/uL",
			RefLow: fp(150), RefHigh: fp(450), DisplayOrder: 64},

		// Inflammation
		{Code: "HS_CRP", Name: "hs-CRP", Category: "Inflammation", DefaultUnit: "mg/L",
			RefLow: fp(0), RefHigh: fp(3.0), OptimalLow: fp(0), OptimalHigh: fp(1.0), DisplayOrder: 70},
		{Code: "HOMOCYSTEINE", Name: "Homocysteine", Category: "Inflammation", DefaultUnit: "umol/L",
			RefLow: fp(0), RefHigh: fp(14.5), OptimalLow: fp(0), OptimalHigh: fp(9), DisplayOrder: 71},
		{Code: "ESR", Name: "Erythrocyte Sedimentation Rate", Category: "Inflammation", DefaultUnit: "mm/hr",
			RefLow: fp(0), RefHigh: fp(20), DisplayOrder: 72},

		// Vitamins & Minerals
		{Code: "VITAMIN_D", Name: "Vitamin D, 25-Hydroxy", Category: "Vitamins & Minerals", DefaultUnit: "ng/mL",
			RefLow: fp(30), RefHigh: fp(100), OptimalLow: fp(50), OptimalHigh: fp(80), DisplayOrder: 80},
		{Code: "VITAMIN_B12", Name: "Vitamin B12", Category: "Vitamins & Minerals", DefaultUnit: "pg/mL",
			RefLow: fp(232), RefHigh: fp(1245), OptimalLow: fp(500), OptimalHigh: fp(1200), DisplayOrder: 81},
		{Code: "FOLATE", Name: "Folate", Category: "Vitamins & Minerals", DefaultUnit: "ng/mL",
			RefLow: fp(3.0), RefHigh: fp(20), DisplayOrder: 82},
		{Code: "FERRITIN", Name: "Ferritin", Category: "Vitamins & Minerals", DefaultUnit: "ng/mL",
			GenderRanges: map[Gender]RangeOverride{
				GenderMale:   {RefLow: fp(30), RefHigh: fp(400), OptimalLow: fp(50), OptimalHigh: fp(150)},
				GenderFemale: {RefLow: fp(15), RefHigh: fp(150), OptimalLow: fp(50), OptimalHigh: fp(150)},
			}, DisplayOrder: 83},
		{Code: "IRON", Name: "Iron", Category: "Vitamins & Minerals", DefaultUnit: "ug/dL",
			RefLow: fp(38), RefHigh: fp(169), DisplayOrder: 84},
		{Code: "MAGNESIUM", Name: "Magnesium", Category: "Vitamins & Minerals", DefaultUnit: "mg/dL",
			RefLow: fp(1.6), RefHigh: fp(2.3), DisplayOrder: 85},
		{Code: "ZINC", Name: "Zinc", Category: "Vitamins & Minerals", DefaultUnit: "ug/dL",
			RefLow: fp(44), RefHigh: fp(115), DisplayOrder: 86},

		// Liver
		{Code: "ALT", Name: "ALT", Category: "Liver", DefaultUnit: "IU/L",
			GenderRanges: map[Gender]RangeOverride{
				GenderMale:   {RefLow: fp(0), RefHigh: fp(44)},
				GenderFemale: {RefLow: fp(0), RefHigh: fp(32)},
			}, DisplayOrder: 90},
		{Code: "AST", Name: "AST", Category: "Liver", DefaultUnit: "IU/L",
			RefLow: fp(0), RefHigh: fp(40), DisplayOrder: 91},
		{Code: "GGT", Name: "GGT", Category: "Liver", DefaultUnit: "IU/L",
			RefLow: fp(0), RefHigh: fp(65), DisplayOrder: 92},
		{Code: "BILIRUBIN_TOTAL", Name: "Total Bilirubin", Category: "Liver", DefaultUnit: "mg/dL",
			RefLow: fp(0), RefHigh: fp(1.2), DisplayOrder: 93},
		{Code: "ALBUMIN", Name: "Albumin", Category: "Liver", DefaultUnit: "g/dL",
			RefLow: fp(3.8), RefHigh: fp(4.9), DisplayOrder: 94},

		// Kidney
		{Code: "CREATININE", Name: "Creatinine", Category: "Kidney", DefaultUnit: "mg/dL",
			GenderRanges: map[Gender]RangeOverride{
				GenderMale:   {RefLow: fp(0.76), RefHigh: fp(1.27)},
				GenderFemale: {RefLow: fp(0.57), RefHigh: fp(1.00)},
			}, DisplayOrder: 100},
		{Code: "BUN", Name: "Blood Urea Nitrogen", Category: "Kidney", DefaultUnit: "mg/dL",
			RefLow: fp(6), RefHigh: fp(24), DisplayOrder: 101},
		{Code: "EGFR", Name: "eGFR", Category: "Kidney", DefaultUnit: "mL/min/1.73", RefLow: fp(90),
			DisplayOrder: 102},
		{Code: "CYSTATIN_C", Name: "Cystatin C", Category: "Kidney", DefaultUnit: "mg/L",
			RefLow: fp(0.52), RefHigh: fp(1.10), DisplayOrder: 103},

		// Prostate
		{Code: "PSA_TOTAL", Name: "PSA, Total", Category: "Prostate", DefaultUnit: "ng/mL",
			RefLow: fp(0), RefHigh: fp(4.0), OptimalLow: fp(0), OptimalHigh: fp(2.5), DisplayOrder: 110},
	}
}

func fp(v float64) *float64 { return &v }
