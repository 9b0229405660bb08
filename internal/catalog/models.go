package catalog

// Product is one medical product row.
type Product struct {
	ID                   int64
	Name                 string
	Category             string
	BrandName            string
	GenericName          string
	Description          string
	Indications          string
	Contraindications    string
	DosageForms          string
	Strength             string
	DosageAdult          string
	DosagePediatric      string
	SideEffects          string
	DrugInteractions     string
	Warnings             string
	Manufacturer         string
	NDCNumber            string
	Price                float64
	InsuranceCoverage    string
	Availability         string
	PrescriptionRequired bool
	ControlledSubstance  bool
	FDAApprovalDate      string
	StorageConditions    string
}

// Filters narrows a text search. Zero values mean "no filter".
type Filters struct {
	Category             string
	PrescriptionRequired *bool
	MinPrice             *float64
	MaxPrice             *float64
}
