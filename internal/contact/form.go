package contact

import (
	"net/url"
	"strings"
)

// Form field names shared by the template and the handler.
const (
	FieldName               = "name"
	FieldEmail              = "email"
	FieldCompany            = "company"
	FieldBudget             = "budget"
	FieldProjectType        = "projectType"
	FieldProjectDescription = "projectDescription"
)

// Budget is the optional budget range.
type Budget string

const (
	BudgetUnder5k  Budget = "under-5k"
	Budget5kTo10k  Budget = "5k-10k"
	Budget10kTo20k Budget = "10k-20k"
	Budget20kPlus  Budget = "20k-plus"
)

// Budgets lists the ranges in display order.
var Budgets = []Budget{BudgetUnder5k, Budget5kTo10k, Budget10kTo20k, Budget20kPlus}

var budgetLabels = map[Budget]string{
	BudgetUnder5k:  "Under $5,000",
	Budget5kTo10k:  "$5,000 - $10,000",
	Budget10kTo20k: "$10,000 - $20,000",
	Budget20kPlus:  "$20,000+",
}

// Valid reports whether b is a known range.
func (b Budget) Valid() bool {
	_, ok := budgetLabels[b]
	return ok
}

// Label returns the display text, or "" for an unknown range.
func (b Budget) Label() string { return budgetLabels[b] }

// ProjectType is the optional kind of project.
type ProjectType string

const (
	ProjectEcommerce ProjectType = "ecommerce"
	ProjectBusiness  ProjectType = "business"
	ProjectCustom    ProjectType = "custom"
	ProjectSaaS      ProjectType = "saas"
	ProjectPortfolio ProjectType = "portfolio"
	ProjectOther     ProjectType = "other"
)

// ProjectTypes lists the project kinds in display order.
var ProjectTypes = []ProjectType{ProjectEcommerce, ProjectBusiness, ProjectCustom, ProjectSaaS, ProjectPortfolio, ProjectOther}

var projectTypeLabels = map[ProjectType]string{
	ProjectEcommerce: "E-commerce Store",
	ProjectBusiness:  "Business Website",
	ProjectCustom:    "Custom Web App",
	ProjectSaaS:      "SaaS Platform",
	ProjectPortfolio: "Portfolio",
	ProjectOther:     "Something Else",
}

// Valid reports whether p is a known kind.
func (p ProjectType) Valid() bool {
	_, ok := projectTypeLabels[p]
	return ok
}

// Label returns the display text, or "" for an unknown kind.
func (p ProjectType) Label() string { return projectTypeLabels[p] }

// Fields are the values a visitor enters.
type Fields struct {
	Name               string
	Email              string
	Company            string
	Budget             Budget
	ProjectType        ProjectType
	ProjectDescription string
}

// FieldsFromForm reads trimmed field values. Unknown enum values are dropped.
func FieldsFromForm(values url.Values) Fields {
	get := func(key string) string { return strings.TrimSpace(values.Get(key)) }
	f := Fields{
		Name:               get(FieldName),
		Email:              get(FieldEmail),
		Company:            get(FieldCompany),
		Budget:             Budget(get(FieldBudget)),
		ProjectType:        ProjectType(get(FieldProjectType)),
		ProjectDescription: get(FieldProjectDescription),
	}
	if !f.Budget.Valid() {
		f.Budget = ""
	}
	if !f.ProjectType.Valid() {
		f.ProjectType = ""
	}
	return f
}

// Missing returns the names of required fields left empty.
func (f Fields) Missing() []string {
	var missing []string
	if f.Name == "" {
		missing = append(missing, FieldName)
	}
	if f.Email == "" {
		missing = append(missing, FieldEmail)
	}
	if f.ProjectDescription == "" {
		missing = append(missing, FieldProjectDescription)
	}
	return missing
}

// TemplateParams binds the fields to the email template variables.
func (f Fields) TemplateParams() map[string]string {
	return map[string]string{
		"from_name":           f.Name,
		"from_email":          f.Email,
		"reply_to":            f.Email,
		"company":             f.Company,
		"budget":              f.Budget.Label(),
		"project_type":        f.ProjectType.Label(),
		"project_description": f.ProjectDescription,
	}
}

// Banner kinds.
const (
	BannerSuccess = "success"
	BannerError   = "error"
	BannerNotice  = "notice"
)

// Banner messages.
const (
	SuccessMessage       = "Thanks for reaching out! Your message is on its way and we'll reply within 24 hours."
	NotConfiguredMessage = "Our contact form isn't set up yet. Please email us at hello@sgwebsitebuilder.com instead."
	GenericErrorMessage  = "Something went wrong sending your message. Please try again, or email us at hello@sgwebsitebuilder.com."
	InFlightMessage      = "We're still sending your previous message. Please wait a moment."
)

// Banner is the dismissible status line shown above the form.
type Banner struct {
	Kind    string
	Message string
}

// Form is the state rendered for the contact form.
type Form struct {
	Fields Fields
	Banner *Banner
}

// Dismiss removes the banner and leaves the fields alone.
func (f *Form) Dismiss() {
	f.Banner = nil
}
