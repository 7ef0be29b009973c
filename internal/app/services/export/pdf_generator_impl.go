package export

import (
	"bytes"
	"fmt"
	"medrecord-service/internal/app/contracts"
	"medrecord-service/internal/pkg/dto/responses"
	"medrecord-service/internal/pkg/exceptions"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

type pdfGenerator struct{}

func NewPDFGenerator() contracts.DocumentGenerator {
	return &pdfGenerator{}
}

// Generate renders the record as a single printable document with the profile
// header followed by one section per collection.
func (g *pdfGenerator) Generate(record *responses.PatientRecord) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Medical Record", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 11)
	g.writeLine(pdf, fmt.Sprintf("Name: %s", record.Profile.Name))
	g.writeLine(pdf, fmt.Sprintf("CNP: %s", record.Profile.CNP))
	g.writeLine(pdf, fmt.Sprintf("Age: %d", record.Profile.Age))
	g.writeLine(pdf, fmt.Sprintf("Gender: %s", record.Profile.Gender))
	g.writeLine(pdf, fmt.Sprintf("Last visit: %s", record.Profile.LastVisit))
	if len(record.Profile.Conditions) > 0 {
		g.writeLine(pdf, fmt.Sprintf("Conditions: %s", strings.Join(record.Profile.Conditions, ", ")))
	}

	g.writeSectionTitle(pdf, "Consultations")
	for _, consultation := range record.Consultations {
		g.writeLine(pdf, fmt.Sprintf("%s - %s (%s)", consultation.Date, consultation.Diagnosis, consultation.DoctorName))
	}

	g.writeSectionTitle(pdf, "Medications")
	for _, medication := range record.Medications {
		g.writeLine(pdf, fmt.Sprintf("%s %s, %s", medication.Name, medication.Dose, medication.Frequency))
	}

	g.writeSectionTitle(pdf, "Vaccinations")
	for _, vaccination := range record.Vaccinations {
		g.writeLine(pdf, fmt.Sprintf("%s - %s (%s)", vaccination.Date, vaccination.Name, vaccination.Status))
	}

	g.writeSectionTitle(pdf, "Lab Results")
	for _, labResult := range record.LabResults {
		g.writeLine(pdf, fmt.Sprintf("%s - %s: %s (%s)", labResult.Date, labResult.Name, labResult.Value, labResult.Status))
	}

	g.writeSectionTitle(pdf, "Medical Images")
	for _, medicalImage := range record.MedicalImages {
		g.writeLine(pdf, fmt.Sprintf("%s - %s", medicalImage.Date, medicalImage.Type))
	}

	var buffer bytes.Buffer
	if err := pdf.Output(&buffer); err != nil {
		return nil, exceptions.ErrDocumentGenerate(err)
	}
	return buffer.Bytes(), nil
}

func (g *pdfGenerator) writeSectionTitle(pdf *gofpdf.Fpdf, title string) {
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
}

func (g *pdfGenerator) writeLine(pdf *gofpdf.Fpdf, text string) {
	pdf.CellFormat(0, 6, text, "", 1, "L", false, 0, "")
}
