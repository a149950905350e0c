package form

import "regexp"

var httpURLPattern = regexp.MustCompile(`^https?://.*`)

// Validate reports every rule the draft currently violates. It does not touch
// the visible error map.
func (d *Draft) Validate() Errors {
	errs := Errors{}
	p := d.Project

	if isBlank(p.Name) {
		errs[FieldName] = "Project name is required"
	}
	if isBlank(p.Description) {
		errs[FieldDescription] = "Description is required"
	}
	if isBlank(p.ProblemStatement) {
		errs[FieldProblemStatement] = "Problem statement is required"
	}
	if p.ProjectType == "" {
		errs[FieldProjectType] = "Project type is required"
	}
	if p.Status == "" {
		errs[FieldStatus] = "Project status is required"
	}
	if !hasFeature(p.KeyFeatures) {
		errs[FieldKeyFeatures] = "At least one key feature is required"
	}
	if len(d.Contributors) == 0 {
		errs[FieldContributors] = "At least one user is required"
	}
	if d.PrivateRepository && isBlank(p.GithubURL) {
		errs[FieldGithubURL] = "GitHub URL is required when private repository is enabled"
	}
	if p.DemoURL != "" && !httpURLPattern.MatchString(p.DemoURL) {
		errs[FieldDemoURL] = "Invalid demo URL format"
	}
	if p.ImageURL != "" && !httpURLPattern.MatchString(p.ImageURL) {
		errs[FieldImageURL] = "Invalid image URL format"
	}

	return errs
}

// Check validates the draft and publishes the result as the visible error map.
func (d *Draft) Check() bool {
	d.Errors = d.Validate()
	return len(d.Errors) == 0
}

// IsSubmittable gates the submit control without publishing errors.
func (d *Draft) IsSubmittable() bool {
	return len(d.Validate()) == 0
}

func hasFeature(features []string) bool {
	for _, feature := range features {
		if !isBlank(feature) {
			return true
		}
	}
	return false
}
