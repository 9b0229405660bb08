package catalog

import (
	"database/sql"
	"fmt"

	_ "github.com/glebarez/go-sqlite"
	"github.com/microcosm-cc/bluemonday"
)

// maxResults caps a search so downstream rendering stays bounded.
const maxResults = 20

// Store is the product catalog plus its interaction audit log,
// backed by a single sqlite database.
type Store struct {
	DB        *sql.DB
	sanitizer *bluemonday.Policy
}

func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	// Create tables if not exist
	queries := []string{
		`CREATE TABLE IF NOT EXISTS medical_products (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			category TEXT NOT NULL,
			brand_name TEXT,
			generic_name TEXT,
			description TEXT,
			indications TEXT,
			contraindications TEXT,
			dosage_forms TEXT,
			strength TEXT,
			dosage_adult TEXT,
			dosage_pediatric TEXT,
			side_effects TEXT,
			drug_interactions TEXT,
			warnings TEXT,
			manufacturer TEXT,
			ndc_number TEXT,
			price REAL,
			insurance_coverage TEXT,
			availability TEXT,
			prescription_required BOOLEAN DEFAULT 0,
			controlled_substance BOOLEAN DEFAULT 0,
			fda_approval_date TEXT,
			storage_conditions TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS interactions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			user_text TEXT,
			response_text TEXT,
			response_time_ms INTEGER,
			timestamp DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
	}
	for _, q := range queries {
		if _, err := db.Exec(q); err != nil {
			return nil, err
		}
	}

	return &Store{DB: db, sanitizer: bluemonday.StrictPolicy()}, nil
}

func (s *Store) Close() error {
	return s.DB.Close()
}

const productColumns = `id, name, category, brand_name, generic_name, description,
	indications, contraindications, dosage_forms, strength, dosage_adult,
	dosage_pediatric, side_effects, drug_interactions, warnings, manufacturer,
	ndc_number, price, insurance_coverage, availability, prescription_required,
	controlled_substance, fda_approval_date, storage_conditions`

// Search performs a case-insensitive substring match of query against name,
// generic name, brand name, indications and description, then applies any
// filters as conjunctions. Results are ordered by product name ascending and
// capped at 20 rows. No match returns an empty slice, not an error.
func (s *Store) Search(query string, filters *Filters) ([]Product, error) {
	sqlQuery := `SELECT ` + productColumns + ` FROM medical_products
		WHERE (name LIKE ? OR generic_name LIKE ? OR brand_name LIKE ?
		       OR indications LIKE ? OR description LIKE ?)`

	pattern := "%" + query + "%"
	args := []any{pattern, pattern, pattern, pattern, pattern}

	if filters != nil {
		if filters.Category != "" {
			sqlQuery += " AND category = ?"
			args = append(args, filters.Category)
		}
		if filters.PrescriptionRequired != nil {
			sqlQuery += " AND prescription_required = ?"
			args = append(args, *filters.PrescriptionRequired)
		}
		if filters.MinPrice != nil && filters.MaxPrice != nil {
			sqlQuery += " AND price BETWEEN ? AND ?"
			args = append(args, *filters.MinPrice, *filters.MaxPrice)
		}
	}

	sqlQuery += fmt.Sprintf(" ORDER BY name LIMIT %d", maxResults)

	rows, err := s.DB.Query(sqlQuery, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// GetByName returns the best (first) match for a product name, or nil when
// nothing matches.
func (s *Store) GetByName(name string) (*Product, error) {
	products, err := s.Search(name, nil)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, nil
	}
	return &products[0], nil
}

// LogInteraction appends one audit row. HTML in the stored text is stripped
// so the audit trail only ever holds plain text. The caller treats a failed
// write as non-fatal.
func (s *Store) LogInteraction(sessionID, userText, responseText string, elapsedMs int64) error {
	query := `INSERT INTO interactions (session_id, user_text, response_text, response_time_ms)
		VALUES (?, ?, ?, ?)`
	_, err := s.DB.Exec(query, sessionID,
		s.sanitizer.Sanitize(userText),
		s.sanitizer.Sanitize(responseText),
		elapsedMs)
	return err
}

func scanProduct(rows *sql.Rows) (Product, error) {
	var p Product
	var brand, generic, desc, ind, contra, forms, strength sql.NullString
	var adult, pediatric, side, inter, warn, mfr, ndc sql.NullString
	var coverage, avail, fda, storage sql.NullString
	var price sql.NullFloat64

	err := rows.Scan(&p.ID, &p.Name, &p.Category, &brand, &generic, &desc,
		&ind, &contra, &forms, &strength, &adult, &pediatric, &side, &inter,
		&warn, &mfr, &ndc, &price, &coverage, &avail,
		&p.PrescriptionRequired, &p.ControlledSubstance, &fda, &storage)
	if err != nil {
		return Product{}, err
	}

	p.BrandName = brand.String
	p.GenericName = generic.String
	p.Description = desc.String
	p.Indications = ind.String
	p.Contraindications = contra.String
	p.DosageForms = forms.String
	p.Strength = strength.String
	p.DosageAdult = adult.String
	p.DosagePediatric = pediatric.String
	p.SideEffects = side.String
	p.DrugInteractions = inter.String
	p.Warnings = warn.String
	p.Manufacturer = mfr.String
	p.NDCNumber = ndc.String
	p.Price = price.Float64
	p.InsuranceCoverage = coverage.String
	p.Availability = avail.String
	p.FDAApprovalDate = fda.String
	p.StorageConditions = storage.String
	return p, nil
}
