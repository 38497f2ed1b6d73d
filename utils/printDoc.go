package utils

import (
	"MedicareClinic/models"
	"bytes"
	"fmt"
	"html/template"
	"regexp"
	"time"
)

// PrescriptionDocument carries everything the printable prescription needs.
type PrescriptionDocument struct {
	Title         string
	ClinicName    string
	ClinicTagline string
	PatientName   string
	PatientID     int
	VisitID       int
	Date          string
	Age           int
	Gender        string
	Weight        string
	BloodPressure string
	Symptoms      string
	Findings      string
	Diagnosis     string
	Medicines     []models.PrescriptionMedicine
	GeneratedAt   string
}

var filenameSanitizer = regexp.MustCompile(`[^a-zA-Z0-9]`)

// DocumentTitle builds the print-window title, which browsers use as the
// suggested PDF filename.
func DocumentTitle(patientName string, now time.Time) string {
	name := patientName
	if name == "" {
		name = "Patient"
	}
	sanitized := filenameSanitizer.ReplaceAllString(name, "_")
	return fmt.Sprintf("prescription_%s_%s", sanitized, now.Format("20060102_150405"))
}

// RenderPrescriptionDocument renders the printable prescription as a
// standalone HTML page handed to the browser's print dialog.
func RenderPrescriptionDocument(doc PrescriptionDocument) (string, error) {
	var buf bytes.Buffer
	if err := prescriptionTmpl.Execute(&buf, doc); err != nil {
		return "", fmt.Errorf("failed to render prescription document: %w", err)
	}
	return buf.String(), nil
}

var prescriptionTmpl = template.Must(template.New("prescription").Parse(`<!DOCTYPE html>
<html>
<head>
  <title>{{.Title}}</title>
  <style>
    * { margin: 0; padding: 0; box-sizing: border-box; }
    body { font-family: Arial, sans-serif; padding: 40px; background: white; color: #333; }
    .header { text-align: center; margin-bottom: 30px; padding-bottom: 20px; border-bottom: 3px solid #E8D5C4; }
    .header h1 { color: #D4B5A0; font-size: 32px; margin-bottom: 8px; }
    .header p { color: #666; font-size: 14px; }
    .patient-info { display: grid; grid-template-columns: 1fr 1fr; gap: 15px 30px; margin-bottom: 30px; padding: 20px; background: #FDFBF7; border-radius: 8px; }
    .info-field { display: flex; gap: 10px; }
    .info-label { font-weight: bold; color: #555; min-width: 140px; }
    .info-value { color: #333; }
    .section { margin-bottom: 25px; }
    .section-title { font-size: 18px; font-weight: bold; color: #D4B5A0; margin-bottom: 10px; padding-bottom: 5px; border-bottom: 2px solid #E8D5C4; }
    .section-content { padding: 15px; background: #FDFBF7; border-radius: 8px; line-height: 1.8; white-space: pre-wrap; }
    .medicines-table { width: 100%; border-collapse: collapse; background: white; }
    .medicines-table th { background: #E8D5C4; color: #444; font-weight: 700; padding: 12px; text-align: left; border-bottom: 2px solid #D4B5A0; font-size: 14px; }
    .medicines-table td { padding: 12px; border-bottom: 1px solid #E8D5C4; font-size: 13px; color: #333; }
    .signature-section { margin-top: 50px; display: flex; justify-content: flex-end; padding-right: 50px; }
    .signature-box { text-align: center; min-width: 250px; }
    .signature-line { height: 60px; border-bottom: 2px solid #333; margin-bottom: 8px; }
    .signature-label { font-size: 13px; color: #666; font-weight: 600; }
    .footer { margin-top: 60px; text-align: center; font-size: 12px; color: #999; }
    @media print { body { padding: 20px; } }
  </style>
</head>
<body onload="window.print()">
  <div class="header">
    <h1>{{.ClinicName}}</h1>
    <p>{{.ClinicTagline}}</p>
  </div>

  <div class="patient-info">
    <div class="info-field"><span class="info-label">Patient Name:</span><span class="info-value">{{.PatientName}}</span></div>
    <div class="info-field"><span class="info-label">Date:</span><span class="info-value">{{.Date}}</span></div>
    <div class="info-field"><span class="info-label">Patient ID:</span><span class="info-value">{{.PatientID}}</span></div>
    <div class="info-field"><span class="info-label">Visit ID:</span><span class="info-value">{{.VisitID}}</span></div>
    <div class="info-field"><span class="info-label">Age:</span><span class="info-value">{{.Age}}</span></div>
    <div class="info-field"><span class="info-label">Gender:</span><span class="info-value">{{.Gender}}</span></div>
    {{if .Weight}}<div class="info-field"><span class="info-label">Weight:</span><span class="info-value">{{.Weight}}</span></div>{{end}}
    {{if .BloodPressure}}<div class="info-field"><span class="info-label">Blood Pressure:</span><span class="info-value">{{.BloodPressure}}</span></div>{{end}}
  </div>

  {{if .Symptoms}}
  <div class="section">
    <div class="section-title">Symptoms</div>
    <div class="section-content">{{.Symptoms}}</div>
  </div>
  {{end}}

  {{if .Findings}}
  <div class="section">
    <div class="section-title">Findings</div>
    <div class="section-content">{{.Findings}}</div>
  </div>
  {{end}}

  {{if .Diagnosis}}
  <div class="section">
    <div class="section-title">Diagnosis</div>
    <div class="section-content">{{.Diagnosis}}</div>
  </div>
  {{end}}

  {{if .Medicines}}
  <div class="section">
    <div class="section-title">Medicines</div>
    <table class="medicines-table">
      <thead>
        <tr>
          <th>Medicine</th>
          <th>Quantity</th>
          <th>Timing</th>
          <th>Frequency</th>
          <th>Duration</th>
          <th>Instructions</th>
        </tr>
      </thead>
      <tbody>
        {{range $m := .Medicines}}
        <tr>
          <td>{{$m.MedicineName}}</td>
          <td>{{$m.Quantity}}</td>
          <td>{{$m.Timing}}</td>
          <td>{{$m.Frequency}}</td>
          <td>{{$m.Duration}}</td>
          <td>{{$m.Instructions}}</td>
        </tr>
        {{end}}
      </tbody>
    </table>
  </div>
  {{end}}

  <div class="signature-section">
    <div class="signature-box">
      <div class="signature-line"></div>
      <div class="signature-label">Doctor's Signature</div>
    </div>
  </div>

  <div class="footer">Generated on {{.GeneratedAt}}</div>
</body>
</html>
`))
