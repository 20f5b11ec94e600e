package alias

// Vendor identifiers used across seed data and extraction adapters.
const (
	ProviderQuest         = "QUEST"
	ProviderLabcorp       = "LABCORP"
	ProviderAccessMedical = "ACCESS_MEDICAL"
	ProviderEvexia        = "EVEXIA"
)

// Seed returns the shipped vendor alias registry. Conversion factors convert
// the vendor's reporting unit into the catalog default unit; aliases with no
// factor report in the default unit already. Evexia reports steroid hormones
// in SI units, hence the nmol/L and pmol/L conversions.
func Seed() []*AddAliasRequest {
	return []*AddAliasRequest{
		// Quest Diagnostics
		{BiomarkerCode: "TESTOSTERONE_TOTAL", LabProvider: ProviderQuest, AliasName: "Testosterone, Total, MS", AliasCode: sp("15983"), LabUnit: "ng/dL", ConversionFactor: 1.0, LabRefLow: fp(264), LabRefHigh: fp(916)},
		{BiomarkerCode: "TESTOSTERONE_FREE", LabProvider: ProviderQuest, AliasName: "Testosterone, Free", AliasCode: sp("36170"), LabUnit: "pg/mL", ConversionFactor: 1.0},
		{BiomarkerCode: "ESTRADIOL", LabProvider: ProviderQuest, AliasName: "Estradiol, Ultrasensitive", AliasCode: sp("30289"), LabUnit: "pg/mL", ConversionFactor: 1.0},
		{BiomarkerCode: "DHEA_S", LabProvider: ProviderQuest, AliasName: "DHEA Sulfate", AliasCode: sp("402"), LabUnit: "ug/dL", ConversionFactor: 1.0},
		{BiomarkerCode: "SHBG", LabProvider: ProviderQuest, AliasName: "Sex Hormone Binding Globulin", AliasCode: sp("30740"), LabUnit: "nmol/L", ConversionFactor: 1.0},
		{BiomarkerCode: "TSH", LabProvider: ProviderQuest, AliasName: "TSH", AliasCode: sp("899"), LabUnit: "uIU/mL", ConversionFactor: 1.0},
		{BiomarkerCode: "FREE_T3", LabProvider: ProviderQuest, AliasName: "T3, Free", AliasCode: sp("34429"), LabUnit: "pg/mL", ConversionFactor: 1.0},
		{BiomarkerCode: "FREE_T4", LabProvider: ProviderQuest, AliasName: "T4, Free", AliasCode: sp("866"), LabUnit: "ng/dL", ConversionFactor: 1.0},
		{BiomarkerCode: "GLUCOSE", LabProvider: ProviderQuest, AliasName: "Glucose", AliasCode: sp("483"), LabUnit: "mg/dL", ConversionFactor: 1.0, LabRefLow: fp(65), LabRefHigh: fp(99)},
		{BiomarkerCode: "HBA1C", LabProvider: ProviderQuest, AliasName: "Hemoglobin A1c", AliasCode: sp("496"), LabUnit: "%", ConversionFactor: 1.0},
		{BiomarkerCode: "INSULIN", LabProvider: ProviderQuest, AliasName: "Insulin", AliasCode: sp("561"), LabUnit: "uIU/mL", ConversionFactor: 1.0},
		{BiomarkerCode: "CHOLESTEROL_TOTAL", LabProvider: ProviderQuest, AliasName: "Cholesterol, Total", AliasCode: sp("334"), LabUnit: "mg/dL", ConversionFactor: 1.0},
		{BiomarkerCode: "LDL_C", LabProvider: ProviderQuest, AliasName: "LDL-Cholesterol", AliasCode: sp("3015"), LabUnit: "mg/dL", ConversionFactor: 1.0},
		{BiomarkerCode: "HDL_C", LabProvider: ProviderQuest, AliasName: "HDL Cholesterol", AliasCode: sp("608"), LabUnit: "mg/dL", ConversionFactor: 1.0},
		{BiomarkerCode: "TRIGLYCERIDES", LabProvider: ProviderQuest, AliasName: "Triglycerides", AliasCode: sp("896"), LabUnit: "mg/dL", ConversionFactor: 1.0},
		{BiomarkerCode: "APOB", LabProvider: ProviderQuest, AliasName: "Apolipoprotein B", AliasCode: sp("5224"), LabUnit: "mg/dL", ConversionFactor: 1.0},
		{BiomarkerCode: "HS_CRP", LabProvider: ProviderQuest, AliasName: "hs-CRP", AliasCode: sp("10124"), LabUnit: "mg/L", ConversionFactor: 1.0},
		{BiomarkerCode: "VITAMIN_D", LabProvider: ProviderQuest, AliasName: "Vitamin D, 25-OH, Total", AliasCode: sp("17306"), LabUnit: "ng/mL", ConversionFactor: 1.0},
		{BiomarkerCode: "FERRITIN", LabProvider: ProviderQuest, AliasName: "Ferritin", AliasCode: sp("457"), LabUnit: "ng/mL", ConversionFactor: 1.0},
		{BiomarkerCode: "PSA_TOTAL", LabProvider: ProviderQuest, AliasName: "PSA, Total", AliasCode: sp("5363"), LabUnit: "ng/mL", ConversionFactor: 1.0},

		// Labcorp
		{BiomarkerCode: "TESTOSTERONE_TOTAL", LabProvider: ProviderLabcorp, AliasName: "Testosterone", AliasCode: sp("004226"), LabUnit: "ng/dL", ConversionFactor: 1.0, LabRefLow: fp(264), LabRefHigh: fp(916)},
		{BiomarkerCode: "TESTOSTERONE_FREE", LabProvider: ProviderLabcorp, AliasName: "Testosterone, Free (Direct)", AliasCode: sp("144980"), LabUnit: "pg/mL", ConversionFactor: 1.0},
		{BiomarkerCode: "ESTRADIOL", LabProvider: ProviderLabcorp, AliasName: "Estradiol, Sensitive", AliasCode: sp("140244"), LabUnit: "pg/mL", ConversionFactor: 1.0},
		{BiomarkerCode: "TSH", LabProvider: ProviderLabcorp, AliasName: "TSH", AliasCode: sp("004259"), LabUnit: "uIU/mL", ConversionFactor: 1.0},
		{BiomarkerCode: "FREE_T3", LabProvider: ProviderLabcorp, AliasName: "Triiodothyronine (T3), Free", AliasCode: sp("010389"), LabUnit: "pg/mL", ConversionFactor: 1.0},
		{BiomarkerCode: "FREE_T4", LabProvider: ProviderLabcorp, AliasName: "T4, Free (Direct)", AliasCode: sp("001974"), LabUnit: "ng/dL", ConversionFactor: 1.0},
		{BiomarkerCode: "GLUCOSE", LabProvider: ProviderLabcorp, AliasName: "Glucose, Serum", AliasCode: sp("001032"), LabUnit: "mg/dL", ConversionFactor: 1.0},
		{BiomarkerCode: "HBA1C", LabProvider: ProviderLabcorp, AliasName: "Hemoglobin A1c", AliasCode: sp("001453"), LabUnit: "%", ConversionFactor: 1.0},
		{BiomarkerCode: "LDL_C", LabProvider: ProviderLabcorp, AliasName: "LDL Chol Calc (NIH)", AliasCode: sp("012059"), LabUnit: "mg/dL", ConversionFactor: 1.0},
		{BiomarkerCode: "HDL_C", LabProvider: ProviderLabcorp, AliasName: "HDL Cholesterol", AliasCode: sp("011817"), LabUnit: "mg/dL", ConversionFactor: 1.0},
		{BiomarkerCode: "TRIGLYCERIDES", LabProvider: ProviderLabcorp, AliasName: "Triglycerides", AliasCode: sp("001172"), LabUnit: "mg/dL", ConversionFactor: 1.0},
		{BiomarkerCode: "HS_CRP", LabProvider: ProviderLabcorp, AliasName: "C-Reactive Protein, Cardiac", AliasCode: sp("120766"), LabUnit: "mg/L", ConversionFactor: 1.0},
		{BiomarkerCode: "VITAMIN_D", LabProvider: ProviderLabcorp, AliasName: "Vitamin D, 25-Hydroxy", AliasCode: sp("081950"), LabUnit: "ng/mL", ConversionFactor: 1.0},
		{BiomarkerCode: "VITAMIN_B12", LabProvider: ProviderLabcorp, AliasName: "Vitamin B12", AliasCode: sp("001503"), LabUnit: "pg/mL", ConversionFactor: 1.0},
		{BiomarkerCode: "FERRITIN", LabProvider: ProviderLabcorp, AliasName: "Ferritin, Serum", AliasCode: sp("004598"), LabUnit: "ng/mL", ConversionFactor: 1.0},
		{BiomarkerCode: "HOMOCYSTEINE", LabProvider: ProviderLabcorp, AliasName: "Homocyst(e)ine", AliasCode: sp("706994"), LabUnit: "umol/L", ConversionFactor: 1.0},
		{BiomarkerCode: "IGF_1", LabProvider: ProviderLabcorp, AliasName: "Insulin-Like Growth Factor I", AliasCode: sp("010363"), LabUnit: "ng/mL", ConversionFactor: 1.0},

		// Access Medical Labs
		{BiomarkerCode: "TESTOSTERONE_TOTAL", LabProvider: ProviderAccessMedical, AliasName: "TESTOSTERONE TOTAL", LabUnit: "ng/dL", ConversionFactor: 1.0},
		{BiomarkerCode: "TESTOSTERONE_FREE", LabProvider: ProviderAccessMedical, AliasName: "TESTOSTERONE FREE", LabUnit: "pg/mL", ConversionFactor: 1.0},
		{BiomarkerCode: "ESTRADIOL", LabProvider: ProviderAccessMedical, AliasName: "ESTRADIOL", LabUnit: "pg/mL", ConversionFactor: 1.0},
		{BiomarkerCode: "DHEA_S", LabProvider: ProviderAccessMedical, AliasName: "DHEA-SULFATE", LabUnit: "ug/dL", ConversionFactor: 1.0},
		{BiomarkerCode: "TSH", LabProvider: ProviderAccessMedical, AliasName: "TSH", LabUnit: "uIU/mL", ConversionFactor: 1.0},
		{BiomarkerCode: "FREE_T3", LabProvider: ProviderAccessMedical, AliasName: "FREE T3", LabUnit: "pg/mL", ConversionFactor: 1.0},
		{BiomarkerCode: "FREE_T4", LabProvider: ProviderAccessMedical, AliasName: "FREE T4", LabUnit: "ng/dL", ConversionFactor: 1.0},
		{BiomarkerCode: "PROLACTIN", LabProvider: ProviderAccessMedical, AliasName: "PROLACTIN", LabUnit: "ng/mL", ConversionFactor: 1.0},
		{BiomarkerCode: "SHBG", LabProvider: ProviderAccessMedical, AliasName: "SHBG", LabUnit: "nmol/L", ConversionFactor: 1.0},
		{BiomarkerCode: "PSA_TOTAL", LabProvider: ProviderAccessMedical, AliasName: "PSA TOTAL", LabUnit: "ng/mL", ConversionFactor: 1.0},

		// Evexia Diagnostics (SI reporting for steroid hormones)
		{BiomarkerCode: "TESTOSTERONE_TOTAL", LabProvider: ProviderEvexia, AliasName: "Testosterone, Total", LabUnit: "nmol/L", ConversionFactor: 28.842},
		{BiomarkerCode: "ESTRADIOL", LabProvider: ProviderEvexia, AliasName: "Estradiol (E2)", LabUnit: "pmol/L", ConversionFactor: 0.2724},
		{BiomarkerCode: "CORTISOL", LabProvider: ProviderEvexia, AliasName: "Cortisol, AM", LabUnit: "nmol/L", ConversionFactor: 0.03625},
		{BiomarkerCode: "TSH", LabProvider: ProviderEvexia, AliasName: "Thyroid Stimulating Hormone (TSH)", LabUnit: "mIU/L", ConversionFactor: 1.0},
		{BiomarkerCode: "VITAMIN_D", LabProvider: ProviderEvexia, AliasName: "25-Hydroxyvitamin D", LabUnit: "nmol/L", ConversionFactor: 0.4006},
		{BiomarkerCode: "GLUCOSE", LabProvider: ProviderEvexia, AliasName: "Glucose, Fasting", LabUnit: "mmol/L", ConversionFactor: 18.016},
		{BiomarkerCode: "CHOLESTEROL_TOTAL", LabProvider: ProviderEvexia, AliasName: "Total Cholesterol", LabUnit: "mmol/L", ConversionFactor: 38.67},
		{BiomarkerCode: "FERRITIN", LabProvider: ProviderEvexia, AliasName: "Ferritin", LabUnit: "ug/L", ConversionFactor: 1.0},
	}
}

func sp(v string) *string { return &v }

func fp(v float64) *float64 { return &v }
