package usecase

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"log"
	"strconv"
	"strings"
	"time"

	"protese_lab/internal/domain/entities"
	"protese_lab/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var ErrImportUnreadable = errors.New("import file is not readable as CSV")

const importedNotes = "Importado da planilha legada"

// IImportUseCase ingests legacy spreadsheet exports.
//
// The input has no fixed schema or controlled vocabulary: columns are located
// by keyword, stages are inferred from free text, and any value that fails to
// parse falls back to a safe default. Rows are persisted one by one so a bad
// row never aborts the batch, which fits a one-time migration tool.

type IImportUseCase interface {
	ImportPatients(ctx context.Context, r io.Reader) (int, error)
}

type ImportUseCase struct {
	repo interfaces.IPatientRepository
}

var _ IImportUseCase = (*ImportUseCase)(nil)

func NewImportUseCase(repo interfaces.IPatientRepository) *ImportUseCase {
	return &ImportUseCase{repo: repo}
}

// columnIndexes maps the located legacy columns; -1 means absent.
type columnIndexes struct {
	date    int
	name    int
	clinic  int
	doctor  int
	service int
	value   int
	status  int
}

// ImportPatients reads the CSV stream and returns the number of rows that
// became persisted patients. Unusable rows are logged and skipped.
func (u *ImportUseCase) ImportPatients(ctx context.Context, r io.Reader) (int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return 0, ErrImportUnreadable
	}
	cols := locateColumns(header)

	imported := 0
	row := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		row++
		if err != nil {
			// Only per-row parse errors are skippable. An I/O failure on the
			// underlying stream would repeat forever, so it ends the batch.
			var parseErr *csv.ParseError
			if !errors.As(err, &parseErr) {
				log.Printf("[import][usecase] stream failed after %d imported err=%v", imported, err)
				return imported, err
			}
			log.Printf("[import][usecase] row %d unparseable, skipping err=%v", row, err)
			continue
		}
		if isBlankRow(record) {
			continue
		}

		p, ok := normalizeRow(record, cols)
		if !ok {
			log.Printf("[import][usecase] row %d missing patient/clinic, skipping", row)
			continue
		}

		if err := u.repo.Save(ctx, p); err != nil {
			log.Printf("[import][usecase] row %d save failed, skipping err=%v", row, err)
			continue
		}
		imported++
	}

	log.Printf("[import][usecase] import finished rows=%d imported=%d", row-1, imported)
	return imported, nil
}

// locateColumns matches header cells against keywords. Legacy exports name
// columns freely ("Data de Entrada", "Paciente", "Valor Total"...), so a
// substring match is the best available contract.
func locateColumns(header []string) columnIndexes {
	cols := columnIndexes{date: -1, name: -1, clinic: -1, doctor: -1, service: -1, value: -1, status: -1}
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(strings.Trim(h, `"`)))
		switch {
		case cols.date == -1 && (strings.Contains(h, "data") || strings.Contains(h, "entrada")):
			cols.date = i
		case cols.name == -1 && (strings.Contains(h, "paciente") || strings.Contains(h, "nome") || strings.Contains(h, "patient")):
			cols.name = i
		case cols.clinic == -1 && (strings.Contains(h, "clinica") || strings.Contains(h, "clínica") || strings.Contains(h, "clinic")):
			cols.clinic = i
		case cols.doctor == -1 && (strings.Contains(h, "dentista") || strings.Contains(h, "doutor") || strings.Contains(h, "doctor") || strings.Contains(h, "dr.") || h == "dr" || h == "dra"):
			cols.doctor = i
		case cols.service == -1 && (strings.Contains(h, "servico") || strings.Contains(h, "serviço") || strings.Contains(h, "protese") || strings.Contains(h, "prótese") || strings.Contains(h, "tipo")):
			cols.service = i
		case cols.value == -1 && (strings.Contains(h, "valor") || strings.Contains(h, "preco") || strings.Contains(h, "preço") || strings.Contains(h, "total") || strings.Contains(h, "price")):
			cols.value = i
		case cols.status == -1 && (strings.Contains(h, "status") || strings.Contains(h, "situacao") || strings.Contains(h, "situação") || strings.Contains(h, "etapa")):
			cols.status = i
		}
	}
	return cols
}

// normalizeRow builds a valid Patient from a raw record. A row that cannot
// yield at least a patient name and a clinic is rejected.
func normalizeRow(record []string, cols columnIndexes) (entities.Patient, bool) {
	name := cellAt(record, cols.name)
	clinic := cellAt(record, cols.clinic)
	if name == "" || clinic == "" {
		return entities.Patient{}, false
	}

	entry := parseLegacyDate(cellAt(record, cols.date))
	status := inferStatus(cellAt(record, cols.status))

	p := entities.Patient{
		ID:             "import-" + uuid.NewString(),
		Name:           name,
		Clinic:         clinic,
		DoctorName:     cellAt(record, cols.doctor),
		ProsthesisType: cellAt(record, cols.service),
		Notes:          importedNotes,
		ServiceValue:   parseCurrency(cellAt(record, cols.value)),
		EntryDate:      entry,
		DueDate:        entry.AddDate(0, 0, 7),
		PaymentStatus:  entities.PaymentStatusPendente,
	}
	p.AppendStep(entities.WorkflowStep{
		ID:        uuid.NewString(),
		Status:    status,
		Timestamp: entry,
		Notes:     importedNotes,
	})
	return p, true
}

func cellAt(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(strings.Trim(strings.TrimSpace(record[idx]), `"`))
}

func isBlankRow(record []string) bool {
	for _, c := range record {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// parseCurrency handles Brazilian formatting: optional "R$" prefix, "." as
// thousands separator and "," as decimal separator. Unparseable cells
// default to zero rather than failing the row.
func parseCurrency(raw string) float64 {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "R$")
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// parseLegacyDate reads DD/MM/YYYY. An absent or malformed date defaults to
// the import moment.
func parseLegacyDate(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw != "" {
		if t, err := time.Parse("02/01/2006", raw); err == nil {
			return t.UTC()
		}
	}
	return time.Now().UTC()
}

// inferStatus maps legacy free-text stage descriptions to the closed stage
// set. Checked in priority order; the first keyword hit wins and anything
// unrecognized lands at the start of the pipeline.
func inferStatus(raw string) entities.WorkflowStatus {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case containsAny(s, "finaliz", "conclu", "entreg", "pronto"):
		return entities.StatusFinalizado
	case containsAny(s, "remont", "ajust"):
		return entities.StatusRemontarDentes
	case strings.Contains(s, "acriliz"):
		return entities.StatusAcrilizar
	case strings.Contains(s, "montagem"):
		return entities.StatusMontagemDentes
	case strings.Contains(s, "moldeira"):
		return entities.StatusMoldeiraIndividual
	default:
		return entities.StatusPlanoCera
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
