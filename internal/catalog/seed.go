package catalog

// SampleProducts is the starter data set: common OTC pain relievers plus one
// prescription antihypertensive so that searches, filters and the
// prescription-flag paths all have something to hit.
var SampleProducts = []Product{
	{
		Name:                 "Acetaminophen 500mg",
		Category:             "Pain Relief",
		BrandName:            "Tylenol",
		GenericName:          "Acetaminophen",
		Description:          "Over-the-counter pain reliever and fever reducer",
		Indications:          "Headache, muscle aches, arthritis, backache, toothache, cold, flu, fever",
		Contraindications:    "Severe liver disease, alcohol dependence",
		DosageForms:          "Tablets, capsules, liquid, chewable tablets",
		Strength:             "500mg",
		DosageAdult:          "500-1000mg every 4-6 hours, maximum 4000mg daily",
		DosagePediatric:      "10-15mg/kg every 4-6 hours",
		SideEffects:          "Rare: nausea, stomach upset, allergic reactions",
		DrugInteractions:     "Warfarin, isoniazid, phenytoin, carbamazepine",
		Warnings:             "Do not exceed recommended dose, avoid alcohol",
		Manufacturer:         "Johnson & Johnson",
		NDCNumber:            "50580-488-01",
		Price:                8.99,
		InsuranceCoverage:    "Most insurance plans",
		Availability:         "In Stock",
		PrescriptionRequired: false,
		ControlledSubstance:  false,
		FDAApprovalDate:      "1955-01-01",
		StorageConditions:    "Store at room temperature, protect from moisture",
	},
	{
		Name:                 "Ibuprofen 400mg",
		Category:             "Pain Relief",
		BrandName:            "Advil",
		GenericName:          "Ibuprofen",
		Description:          "Nonsteroidal anti-inflammatory drug (NSAID)",
		Indications:          "Pain, inflammation, fever, menstrual cramps, arthritis",
		Contraindications:    "Peptic ulcer disease, severe heart failure, severe kidney disease",
		DosageForms:          "Tablets, capsules, liquid gel, suspension",
		Strength:             "400mg",
		DosageAdult:          "400-600mg every 6-8 hours with food, maximum 2400mg daily",
		DosagePediatric:      "5-10mg/kg every 6-8 hours",
		SideEffects:          "Stomach upset, heartburn, dizziness, increased bleeding risk",
		DrugInteractions:     "Aspirin, warfarin, ACE inhibitors, diuretics",
		Warnings:             "Take with food, avoid if allergic to aspirin",
		Manufacturer:         "Pfizer",
		NDCNumber:            "0573-0164-40",
		Price:                12.49,
		InsuranceCoverage:    "Most insurance plans",
		Availability:         "In Stock",
		PrescriptionRequired: false,
		ControlledSubstance:  false,
		FDAApprovalDate:      "1961-01-01",
		StorageConditions:    "Store at room temperature, protect from light",
	},
	{
		Name:                 "Lisinopril 10mg",
		Category:             "Blood Pressure",
		BrandName:            "Prinivil",
		GenericName:          "Lisinopril",
		Description:          "ACE inhibitor for high blood pressure and heart failure",
		Indications:          "Hypertension, heart failure, post-myocardial infarction",
		Contraindications:    "Pregnancy, angioedema, bilateral renal artery stenosis",
		DosageForms:          "Tablets",
		Strength:             "10mg",
		DosageAdult:          "10-40mg once daily, adjust based on blood pressure",
		DosagePediatric:      "Consult pediatric cardiologist",
		SideEffects:          "Dry cough, dizziness, hyperkalemia, angioedema",
		DrugInteractions:     "NSAIDs, potassium supplements, diuretics",
		Warnings:             "Monitor kidney function, avoid pregnancy",
		Manufacturer:         "Merck & Co",
		NDCNumber:            "0006-0207-31",
		Price:                15.99,
		InsuranceCoverage:    "Covered by most insurance",
		Availability:         "In Stock",
		PrescriptionRequired: true,
		ControlledSubstance:  false,
		FDAApprovalDate:      "1987-12-29",
		StorageConditions:    "Store at room temperature, protect from moisture",
	},
}

// Seed inserts the sample data, but only into an empty catalog so repeated
// startups don't duplicate rows.
func (s *Store) Seed() error {
	var count int
	if err := s.DB.QueryRow(`SELECT COUNT(*) FROM medical_products`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return s.Insert(SampleProducts...)
}

// Insert adds products to the catalog. Used by seeding and by tests.
func (s *Store) Insert(products ...Product) error {
	query := `INSERT INTO medical_products
		(name, category, brand_name, generic_name, description, indications,
		 contraindications, dosage_forms, strength, dosage_adult, dosage_pediatric,
		 side_effects, drug_interactions, warnings, manufacturer, ndc_number,
		 price, insurance_coverage, availability, prescription_required,
		 controlled_substance, fda_approval_date, storage_conditions)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	for _, p := range products {
		_, err := s.DB.Exec(query, p.Name, p.Category, p.BrandName, p.GenericName,
			p.Description, p.Indications, p.Contraindications, p.DosageForms,
			p.Strength, p.DosageAdult, p.DosagePediatric, p.SideEffects,
			p.DrugInteractions, p.Warnings, p.Manufacturer, p.NDCNumber,
			p.Price, p.InsuranceCoverage, p.Availability, p.PrescriptionRequired,
			p.ControlledSubstance, p.FDAApprovalDate, p.StorageConditions)
		if err != nil {
			return err
		}
	}
	return nil
}
