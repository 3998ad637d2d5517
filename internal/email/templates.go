package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"
)

//go:embed templates/*.html
var templateFS embed.FS

type baseEmailData struct {
	Title   string
	Heading string
}

type newLeadEmailData struct {
	baseEmailData
	LeadID   string
	Role     string
	Name     string
	Email    string
	Phone    string
	ZipCode  string
	Timeline string
	Score    int
}

func renderEmailTemplate(name string, data any) (string, error) {
	templates := []string{"templates/base.html", "templates/" + name}
	tmpl, err := template.New("base.html").ParseFS(templateFS, templates...)
	if err != nil {
		return "", fmt.Errorf("parse email template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "email", data); err != nil {
		return "", fmt.Errorf("execute email template %s: %w", name, err)
	}
	return buf.String(), nil
}

func newLeadData(params NewLeadEmailParams) newLeadEmailData {
	name := strings.TrimSpace(params.FirstName + " " + params.LastName)
	if name == "" {
		name = "(no name)"
	}
	return newLeadEmailData{
		baseEmailData: baseEmailData{
			Title:   "New lead captured",
			Heading: "New lead captured",
		},
		LeadID:   params.LeadID,
		Role:     params.Role,
		Name:     name,
		Email:    params.Email,
		Phone:    params.Phone,
		ZipCode:  params.ZipCode,
		Timeline: params.Timeline,
		Score:    params.Score,
	}
}

func newLeadSubject(params NewLeadEmailParams) string {
	name := strings.TrimSpace(params.FirstName + " " + params.LastName)
	if name == "" {
		name = "(no name)"
	}
	return fmt.Sprintf(subjectNewLeadFmt, params.Role, name, params.Score)
}
