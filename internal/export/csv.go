// Package export renders complaint and survey lists as CSV for the
// admin dashboard's download buttons. encoding/csv handles quoting, so
// embedded commas and quotes survive a round trip.
package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"campusvoice/backend/internal/models"
)

var complaintHeader = []string{
	"ID", "Title", "Description", "Status", "Priority",
	"Student", "Department", "Roll No", "Created At",
}

// Complaints writes one CSV row per complaint. profiles maps student id
// to profile; unknown students leave their columns blank rather than
// failing the export.
func Complaints(w io.Writer, complaints []models.Complaint, profiles map[string]*models.Profile) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(complaintHeader); err != nil {
		return err
	}

	for _, c := range complaints {
		var name, department, rollNo string
		if p := profiles[c.StudentID]; p != nil {
			name, department, rollNo = p.Name, p.Department, p.RollNo
		}
		record := []string{
			c.ID, c.Title, c.Description, c.Status, c.Priority,
			name, department, rollNo,
			c.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

var surveyHeader = []string{
	"ID", "Complaint Title", "Rating", "Response Time Rating",
	"Support Quality Rating", "Would Recommend", "Feedback", "Submitted At",
}

// Surveys writes one CSV row per survey. titles maps complaint id to
// title. Unsubmitted surveys export with blank answer columns.
func Surveys(w io.Writer, surveys []models.SatisfactionSurvey, titles map[string]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(surveyHeader); err != nil {
		return err
	}

	for _, s := range surveys {
		record := []string{s.ID, titles[s.ComplaintID]}
		if s.SubmittedAt != nil {
			record = append(record,
				strconv.Itoa(s.Rating),
				strconv.Itoa(s.ResponseTimeRating),
				strconv.Itoa(s.SupportQualityRating),
				strconv.FormatBool(s.WouldRecommend),
				s.Feedback,
				s.SubmittedAt.Format("2006-01-02 15:04:05"),
			)
		} else {
			record = append(record, "", "", "", "", "", "")
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
