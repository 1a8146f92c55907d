package handlers

import "sgwebsitebuilder.com/web/internal/contact"

// Contact form endpoints.
const (
	ContactPath           = "/contact"
	ContactBannerFragment = "/fragments/contact/banner"
	ContactDismissField   = "dismiss"
)

// Option is one choice of a select element.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// ContactData is the body of the contact page, and of the form fragment
// returned to htmx submits.
type ContactData struct {
	ContactContent
	Form         contact.Form
	Budgets      []Option
	ProjectTypes []Option
	Sending      bool
}

// BuildContactData renders form. sending marks a submission still in flight
// for the visitor's session.
func BuildContactData(form contact.Form, sending bool) ContactData {
	data := ContactData{ContactContent: Contact, Form: form, Sending: sending}
	for _, b := range contact.Budgets {
		data.Budgets = append(data.Budgets, Option{Value: string(b), Label: b.Label(), Selected: b == form.Fields.Budget})
	}
	for _, p := range contact.ProjectTypes {
		data.ProjectTypes = append(data.ProjectTypes, Option{Value: string(p), Label: p.Label(), Selected: p == form.Fields.ProjectType})
	}
	return data
}
