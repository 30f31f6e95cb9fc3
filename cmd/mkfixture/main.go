// mkfixture generates a small EMR export workbook with representative
// dirty cells for tests and demos. Output is deterministic for a given
// seed. Key columns stay valid so the workbook survives a full load;
// --broken-keys injects rows whose keys degrade to NULL and abort it.
// Usage: go run ./cmd/mkfixture --out testdata/emr_export.xlsx --patients 40 --visits 100 --labs 160
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

func main() {
	out := flag.String("out", "testdata/emr_export.xlsx", "output workbook path")
	patients := flag.Int("patients", 40, "patient rows to generate")
	visits := flag.Int("visits", 100, "visit rows to generate")
	labs := flag.Int("labs", 160, "lab result rows to generate")
	seed := flag.Int64("seed", 42, "random seed")
	brokenKeys := flag.Bool("broken-keys", false, "inject rows with unusable key cells (the load is expected to fail)")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))

	icdRows, icdCodes := genICDReference(rng)
	patientRows, patientIDs := genPatients(rng, *patients, *brokenKeys)
	visitRows, visitIDs := genVisits(rng, *visits, patientIDs, icdCodes, *brokenKeys)
	labRows := genLabResults(rng, *labs, visitIDs, *brokenKeys)

	f := excelize.NewFile()
	sheets := []struct {
		name   string
		header []string
		rows   [][]string
	}{
		{"ICD Reference",
			[]string{"icd_code", "description", "effective_date", "status"},
			icdRows},
		{"Patient Data",
			[]string{"patient_id", "first_name", "last_name", "date_of_birth",
				"gender", "address", "city", "state", "zip", "phone",
				"insurance_id", "insurance_effective_date"},
			patientRows},
		{"Visit Data",
			[]string{"visit_id", "patient_id", "provider_id", "visit_date",
				"location", "reason_for_visit", "icd_code", "visit_status",
				"billable_amount", "currency", "follow_up_date"},
			visitRows},
		{"Lab Results",
			[]string{"lab_id", "visit_id", "test_name", "test_value",
				"test_units", "reference_range", "date_performed", "date_resulted"},
			labRows},
	}
	for _, s := range sheets {
		if _, err := f.NewSheet(s.name); err != nil {
			fatal("create sheet %s: %v", s.name, err)
		}
		if err := writeRows(f, s.name, s.header, s.rows); err != nil {
			fatal("write sheet %s: %v", s.name, err)
		}
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		fatal("delete default sheet: %v", err)
	}

	if dir := filepath.Dir(*out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fatal("create output dir: %v", err)
		}
	}
	if err := f.SaveAs(*out); err != nil {
		fatal("save workbook: %v", err)
	}

	fmt.Printf("Wrote %s (seed %d)\n", *out, *seed)
	for _, s := range sheets {
		fmt.Printf("  %-14s %d rows\n", s.name, len(s.rows))
	}
	if *brokenKeys {
		fmt.Println("broken-keys set: one row per entity has an unusable key")
	}
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func writeRows(f *excelize.File, sheet string, header []string, rows [][]string) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func pick(rng *rand.Rand, xs []string) string {
	return xs[rng.Intn(len(xs))]
}

// missingToken returns one of the spellings exports use for an absent value.
func missingToken(rng *rand.Rand) string {
	return pick(rng, []string{"", "nan", "None", "NULL"})
}

// someDate formats a random 2019-2024 date in one of the layouts the
// exports actually carry.
func someDate(rng *rand.Rand) string {
	layouts := []string{"2006-01-02", "2006/01/02", "01/02/2006", "1/2/2006", "02-01-2006", "2006.01.02"}
	t := time.Date(2019+rng.Intn(6), time.Month(1+rng.Intn(12)), 1+rng.Intn(28), 0, 0, 0, 0, time.UTC)
	return t.Format(pick(rng, layouts))
}

func genICDReference(rng *rand.Rand) ([][]string, []string) {
	refs := []struct{ code, desc string }{
		{"J20.9", "Acute bronchitis, unspecified"},
		{"E11.9", "Type 2 diabetes mellitus without complications"},
		{"I10", "Essential (primary) hypertension"},
		{"M54.5", "Low back pain"},
		{"K21.9", "Gastro-esophageal reflux disease"},
		{"F41.1", "Generalized anxiety disorder"},
		{"R07.9", "Chest pain, unspecified"},
		{"N39.0", "Urinary tract infection, site not specified"},
		{"A09", "Infectious gastroenteritis and colitis"},
		{"S72.001A", "Fracture of right femur, initial encounter"},
		{"B34.9", "Viral infection, unspecified"},
		{"Z00.00", "General adult medical examination"},
	}
	// "retired" is not a recognized status and gets rejected.
	statuses := []string{"active", "Active", "ACTIVE", "inactive", "Inactive", "retired"}

	rows := make([][]string, 0, len(refs))
	codes := make([]string, 0, len(refs))
	for i, ref := range refs {
		date := someDate(rng)
		if i%6 == 5 {
			date = missingToken(rng)
		}
		desc := ref.desc
		if i%8 == 7 {
			desc = ""
		}
		rows = append(rows, []string{ref.code, desc, date, statuses[i%len(statuses)]})
		codes = append(codes, ref.code)
	}
	return rows, codes
}

func genPatients(rng *rand.Rand, n int, broken bool) ([][]string, []string) {
	firsts := []string{"James", "Maria", "Robert", "Linda", "Michael", "Sofia", "David", "Emma", "José", "Olivia"}
	lasts := []string{"Smith", "García", "Johnson", "Lee", "Brown", "Martínez", "Davis", "Wilson", "Moore", "Clark"}
	addresses := []string{"123 Main St", "456 Oak Ave Apt 2", "789 Pine Rd", "12 Elm Street", "300 Cedar Blvd"}
	cities := []string{"New York", "Boston", "San Francisco", "Austin", "Winston-Salem"}
	states := []string{"NY", "MA", "CA", "TX", "nc"}
	zips := []string{"10001", "02134", "94105", "73301", "27101-4428", "94105.0"}
	phones := []string{"(212) 555-0142", "617-555-0198", "415.555.0177", "5125550123"}

	rows := make([][]string, 0, n)
	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("P%04d", 1000+i)
		first := pick(rng, firsts)
		last := pick(rng, lasts)
		dob := someDate(rng)
		gender := pick(rng, []string{"M", "F", "m", "f", "male", "Female"})
		address := pick(rng, addresses)
		city := pick(rng, cities)
		state := pick(rng, states)
		zip := pick(rng, zips)
		phone := pick(rng, phones)
		insurance := fmt.Sprintf("%s%03d", pick(rng, []string{"AET", "BCB", "CIG", "UHC"}), rng.Intn(1000))
		insDate := someDate(rng)

		// Sprinkle the defects the normalizer exists for.
		switch i % 9 {
		case 1:
			first = "jane" // lowercase, rejected
		case 2:
			gender = "unknown"
			city = "unknown"
		case 3:
			zip = "7305" // four digits, rejected rather than padded
			phone = "555-0142"
		case 4:
			address = "N/A"
			insurance = "invalid"
		case 5:
			dob = missingToken(rng)
			state = "XX"
		case 6:
			last = "lastname" // header token leaked into the data
		case 7:
			insDate = "13/45/2020" // no layout parses this
		}
		if broken && i == n/2 {
			id = "invalid" // classified as absent, aborts the load on the key
		}
		rows = append(rows, []string{id, first, last, dob, gender, address, city,
			state, zip, phone, insurance, insDate})
		if id != "invalid" {
			ids = append(ids, id)
		}
	}
	return rows, ids
}

func genVisits(rng *rand.Rand, n int, patientIDs, icdCodes []string, broken bool) ([][]string, []string) {
	locations := []string{"Main Campus", "North Clinic", "East Wing", "Telehealth"}
	reasons := []string{"Annual physical", "Persistent cough", "Back pain", "Medication review", "Chest pain"}
	statuses := []string{"Completed", "Cancelled", "In Progress", "Scheduled", "Open"}
	amounts := []string{"150", "249.99", "1200.5", "85", "480.00"}

	rows := make([][]string, 0, n)
	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("V%04d", 2000+i)
		patientID := pick(rng, patientIDs)
		providerID := fmt.Sprintf("PR%03d", 100+rng.Intn(40))
		visitDate := someDate(rng)
		location := pick(rng, locations)
		reason := pick(rng, reasons)
		icd := pick(rng, icdCodes)
		status := pick(rng, statuses)
		amount := pick(rng, amounts)
		currency := pick(rng, []string{"USD", "USD", "USD", "EUR", "CAD"})
		followUp := someDate(rng)

		switch i % 11 {
		case 1:
			// Code landed inside the reason column, icd_code left empty.
			reason = reason + ", " + pick(rng, icdCodes)
			icd = ""
		case 2:
			// Currency code entered under billable_amount.
			amount = currency
			currency = ""
		case 3:
			status = "completed" // wrong case, rejected
			followUp = missingToken(rng)
		case 4:
			location = "unknown"
			amount = "1,200" // thousands separator, rejected
		case 5:
			icd = strings.ToLower(icd) // lowercase code fails the format
		case 6:
			patientID = missingToken(rng)
			currency = "usd" // wrong case, rejected
		case 7:
			reason = reason + ", see notes" // fragment, discarded
		case 8:
			providerID = "DR45" // wrong prefix, rejected
		}
		if broken && i == n/2 {
			id = missingToken(rng)
		}
		rows = append(rows, []string{id, patientID, providerID, visitDate, location,
			reason, icd, status, amount, currency, followUp})
		if strings.HasPrefix(id, "V") {
			ids = append(ids, id)
		}
	}
	return rows, ids
}

func genLabResults(rng *rand.Rand, n int, visitIDs []string, broken bool) [][]string {
	tests := []struct{ name, value, units, refRange string }{
		{"CBC", "5.678", "x10^9/L", "4.0 - 11.0"},
		{"Hemoglobin A1c", "6.125", "%", "4.0-5.6"},
		{"Glucose", "98.6", "mg/dL", "70 - 99"},
		{"TSH", "2.41", "mIU/L", "0.4-4.0"},
		{"Rapid strep", "negative", "", "negative"},
		{"Urine culture", "Positive", "", "negative"},
	}

	rows := make([][]string, 0, n)
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("L%04d", 1000+i)
		visitID := pick(rng, visitIDs)
		t := tests[rng.Intn(len(tests))]
		name, value, units, refRange := t.name, t.value, t.units, t.refRange
		performed := someDate(rng)
		resulted := someDate(rng)

		switch i % 10 {
		case 1:
			units = missingToken(rng) // numeric value left without units
		case 2:
			value = "PENDING"
			units = ""
		case 3:
			value = "high" // neither numeric nor a recognized term
		case 4:
			refRange = "up to 99" // not a low-high range
		case 5:
			visitID = missingToken(rng)
		case 6:
			resulted = missingToken(rng)
		case 7:
			performed = "31.02.2021" // no such day in any layout
		}
		if broken && i == n/2 {
			id = "LAB-1" // fails the key format, degrades to NULL
		}
		rows = append(rows, []string{id, visitID, name, value, units, refRange, performed, resulted})
	}
	return rows
}
